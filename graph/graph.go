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
	"math"
	"sort"
	"strings"

	"github.com/claudio-db/defIE/definition"
)

// Graph is a simple undirected graph with typed edges. Self loops and
// parallel edges are not allowed. Nodes and edges keep their insertion
// order, which makes iteration deterministic.
type Graph struct {
	// Source is the definition the graph was built from.
	Source *definition.Definition

	nodes    []Node
	nodeSet  map[Node]bool
	edges    []Edge
	adjacent map[Node][]Edge
}

// NewGraph returns an empty graph for the given source definition.
func NewGraph(source *definition.Definition) *Graph {
	return &Graph{
		Source:   source,
		nodeSet:  map[Node]bool{},
		adjacent: map[Node][]Edge{},
	}
}

// NewDependencyGraph builds the dependency graph of a parsed definition,
// one Word vertex per token and one edge per dependency.
func NewDependencyGraph(source *definition.Definition) *Graph {
	g := NewGraph(source)
	for _, dep := range source.Dependencies {
		g.AddEdge(Edge{
			Type:   dep.Type,
			Source: NewWord(dep.Head),
			Target: NewWord(dep.Dependent),
		})
	}
	return g
}

// AddNode inserts a node. Re-adding an existing node is a no-op.
func (g *Graph) AddNode(n Node) {
	if !g.nodeSet[n] {
		g.nodeSet[n] = true
		g.nodes = append(g.nodes, n)
	}
}

// AddEdge inserts an edge and both its endpoints. Self loops and
// duplicate connections are dropped.
func (g *Graph) AddEdge(e Edge) {
	if e.Source == e.Target {
		return
	}
	if _, ok := g.EdgeBetween(e.Source, e.Target); ok {
		return
	}
	g.AddNode(e.Source)
	g.AddNode(e.Target)
	g.edges = append(g.edges, e)
	g.adjacent[e.Source] = append(g.adjacent[e.Source], e)
	g.adjacent[e.Target] = append(g.adjacent[e.Target], e)
}

// HasNode reports whether n is a vertex of the graph.
func (g *Graph) HasNode(n Node) bool {
	return g.nodeSet[n]
}

// Nodes returns the vertices in insertion order. The slice is shared;
// callers must not modify it.
func (g *Graph) Nodes() []Node {
	return g.nodes
}

// Edges returns the edges in insertion order. The slice is shared;
// callers must not modify it.
func (g *Graph) Edges() []Edge {
	return g.edges
}

// EdgesOf returns the edges incident to n.
func (g *Graph) EdgesOf(n Node) []Edge {
	return g.adjacent[n]
}

// EdgeBetween returns the edge connecting a and b in either stored
// orientation.
func (g *Graph) EdgeBetween(a, b Node) (Edge, bool) {
	for _, e := range g.adjacent[a] {
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return e, true
		}
	}
	return Edge{}, false
}

// Head returns the root of the dependency structure: the lowest-indexed
// vertex that is never a dependent. ok is false for an empty graph.
func (g *Graph) Head() (Node, bool) {
	sorted := g.sortedNodes()
	for _, n := range sorted {
		inDegree := 0
		for _, e := range g.adjacent[n] {
			if e.Target == n {
				inDegree++
			}
		}
		if inDegree == 0 {
			return n, true
		}
	}
	if len(sorted) > 0 {
		return sorted[0], true
	}
	return nil, false
}

// Sentence returns the tokens of the graph in sentence order.
func (g *Graph) Sentence() []definition.Token {
	tokens := make([]definition.Token, 0, len(g.nodes))
	for _, n := range g.sortedNodes() {
		tokens = append(tokens, n.Token())
	}
	return tokens
}

func (g *Graph) sortedNodes() []Node {
	sorted := make([]Node, len(g.nodes))
	copy(sorted, g.nodes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Token().Less(sorted[j].Token())
	})
	return sorted
}

// Path is a traversal between two vertices. Edges are listed in
// traversal order but keep their stored orientation.
type Path struct {
	Start Node
	End   Node
	Edges []Edge
}

// Length returns the number of edges on the path.
func (p Path) Length() int {
	return len(p.Edges)
}

// Nodes returns the vertices of the path in traversal order, extremes
// included.
func (p Path) Nodes() []Node {
	nodes := []Node{p.Start}
	current := p.Start
	for _, e := range p.Edges {
		next, ok := e.Other(current)
		if !ok {
			break
		}
		nodes = append(nodes, next)
		current = next
	}
	return nodes
}

// ShortestPath runs Dijkstra's algorithm between two vertices under the
// directional edge weights: an edge may only be crossed left to right in
// sentence order. ok is false when either vertex is missing or no finite
// path exists, which includes every query against sentence order.
func (g *Graph) ShortestPath(i, j Node) (Path, bool) {
	if !g.HasNode(i) || !g.HasNode(j) {
		return Path{}, false
	}
	if i == j {
		return Path{Start: i, End: j}, true
	}

	dist := map[Node]float64{i: 0}
	prev := map[Node]Edge{}
	done := map[Node]bool{}

	for {
		// Pick the unvisited node with the smallest distance, breaking
		// ties on token order so traversal is deterministic.
		var current Node
		best := math.Inf(1)
		for _, n := range g.nodes {
			d, reached := dist[n]
			if !reached || done[n] {
				continue
			}
			if d < best || (d == best && (current == nil || n.Token().Less(current.Token()))) {
				best = d
				current = n
			}
		}
		if current == nil {
			return Path{}, false
		}
		if current == j {
			break
		}
		done[current] = true

		for _, e := range g.adjacent[current] {
			next, _ := e.Other(current)
			if done[next] {
				continue
			}
			w := e.Weight(current, next)
			if math.IsInf(w, 1) {
				continue
			}
			if d, reached := dist[next]; !reached || best+w < d {
				dist[next] = best + w
				prev[next] = e
			}
		}
	}

	// Walk the predecessor edges back from the target.
	var edges []Edge
	for current := j; current != i; {
		e := prev[current]
		edges = append([]Edge{e}, edges...)
		current, _ = e.Other(current)
	}
	return Path{Start: i, End: j, Edges: edges}, true
}

func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("[\t")
	for _, e := range g.edges {
		sb.WriteString("(" + e.Source.String() + e.String() + e.Target.String() + ")\t")
	}
	sb.WriteString("]")
	return sb.String()
}
