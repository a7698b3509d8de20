// Copyright 2016 The DefIE Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package graph

import (
	"sort"

	"github.com/claudio-db/defIE/definition"
	log "github.com/sirupsen/logrus"
)

// SynSemGraph is the syntactic-semantic extension of a dependency graph:
// disambiguated spans are collapsed into shared SemanticNode vertices,
// the rest of the sentence stays as Word vertices.
type SynSemGraph struct {
	*Graph
	senses map[definition.Disambiguation]*SemanticNode
}

// NewSynSemGraph returns an empty syntactic-semantic graph for a source
// definition.
func NewSynSemGraph(source *definition.Definition) *SynSemGraph {
	return &SynSemGraph{
		Graph:  NewGraph(source),
		senses: map[definition.Disambiguation]*SemanticNode{},
	}
}

// AddNode inserts a node, registering semantic nodes by their sense
// attachment.
func (ssg *SynSemGraph) AddNode(n Node) {
	if sn, ok := n.(*SemanticNode); ok {
		ssg.senses[sn.SenseAttachment()] = sn
	}
	ssg.Graph.AddNode(n)
}

// SemanticNodes returns the semantic vertices ordered by span start,
// then sense identifier.
func (ssg *SynSemGraph) SemanticNodes() []*SemanticNode {
	nodes := make([]*SemanticNode, 0, len(ssg.senses))
	for _, sn := range ssg.senses {
		nodes = append(nodes, sn)
	}
	sort.Slice(nodes, func(i, j int) bool {
		a, b := nodes[i].SenseAttachment(), nodes[j].SenseAttachment()
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.SenseID < b.SenseID
	})
	return nodes
}

// BuildFrom collapses a dependency graph into a syntactic-semantic graph
// using the given node-to-sense mapping. All vertices mapped to the same
// disambiguation merge into one semantic node; every other vertex and
// edge carries over, with edge endpoints re-pointed at the semantic
// replacements. Edges between vertices of the same semantic node move
// into its private subgraph.
//
// Merge failures are reported per vertex and do not stop the build; the
// affected vertex is absorbed by whatever merge progress was made before
// the failure was detected.
func BuildFrom(g *Graph, senseMap map[Node]definition.Disambiguation) (*SynSemGraph, []error) {
	ssg := NewSynSemGraph(g.Source)
	var errs []error

	// Mapped vertices are processed in sentence order so that merge
	// results do not depend on map iteration.
	mapped := make([]Node, 0, len(senseMap))
	for n := range senseMap {
		mapped = append(mapped, n)
	}
	sort.Slice(mapped, func(i, j int) bool {
		return mapped[i].Token().Less(mapped[j].Token())
	})

	for _, n := range mapped {
		sense := senseMap[n]
		if !g.HasNode(n) {
			log.WithFields(log.Fields{
				"node":  n.String(),
				"sense": sense.SenseID,
			}).Warn("Content node in sense mapping not present in the original graph")
			continue
		}
		existing, ok := ssg.senses[sense]
		if !ok {
			ssg.AddNode(NewSemanticNode(n.Token(), sense))
			continue
		}
		// The span already has a semantic node: merge this vertex into
		// it through its connection in the dependency graph, if any.
		connection := Edge{Type: "", Source: n, Target: n}
		for _, m := range existing.Subgraph().Nodes() {
			if e, found := g.EdgeBetween(n, m); found {
				connection = e
				break
			}
		}
		if err := existing.Merge(n, connection); err != nil {
			errs = append(errs, err)
		}
	}

	// Carry over the remaining edges, re-pointing endpoints at their
	// semantic replacements.
	for _, e := range g.Edges() {
		source := e.Source
		if sense, ok := senseMap[e.Source]; ok {
			source = ssg.senses[sense]
		}
		target := e.Target
		if sense, ok := senseMap[e.Target]; ok {
			target = ssg.senses[sense]
		}

		if source == target {
			// Both endpoints live inside the same semantic node.
			if sn, ok := source.(*SemanticNode); ok {
				sn.Subgraph().AddEdge(e)
			}
			continue
		}
		ssg.AddNode(source)
		ssg.AddNode(target)
		ssg.Graph.AddEdge(Edge{Type: e.Type, Source: source, Target: target})
	}

	return ssg, errs
}

// MatchNodesWithSenses maps each vertex of a dependency graph to the
// disambiguation covering its token, if any. When two matches overlap on
// a vertex the longest span wins.
func MatchNodesWithSenses(g *Graph, senses []definition.Disambiguation) map[Node]definition.Disambiguation {
	matched := map[Node]definition.Disambiguation{}
	for _, n := range g.Nodes() {
		index := n.Token().Index
		for _, match := range senses {
			if index < match.Start || index >= match.End {
				continue
			}
			if current, ok := matched[n]; !ok || match.Length() > current.Length() {
				matched[n] = match
			}
		}
	}
	return matched
}
