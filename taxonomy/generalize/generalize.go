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

// Package generalize induces superclass edges between relations. Two
// relations are compared when their patterns differ only in a single
// interior semantic node; the node pair then decides the edge, either
// through concept hypernymy or through lexical inclusion.
package generalize

import (
	"github.com/claudio-db/defIE/graph"
	"github.com/claudio-db/defIE/pattern"
	"github.com/claudio-db/defIE/relation"
	"github.com/claudio-db/defIE/taxonomy"
	log "github.com/sirupsen/logrus"
)

// Generalizer decides whether one relation is a superclass of another.
type Generalizer interface {
	Strategy() taxonomy.Strategy
	// IsGeneralization reports whether super generalizes sub.
	IsGeneralization(sub, super *relation.Relation) bool
}

// comparablePatterns holds when both patterns carry exactly one interior
// semantic node and their vertex sequences match lemma by lemma
// everywhere else.
func comparablePatterns(p1, p2 *pattern.Pattern) bool {
	if len(p1.SemanticNodes()) != 1 || len(p2.SemanticNodes()) != 1 {
		return false
	}
	nodes1, nodes2 := p1.Nodes(), p2.Nodes()
	if len(nodes1) != len(nodes2) {
		return false
	}
	for i := range nodes1 {
		_, sem1 := nodes1[i].(*graph.SemanticNode)
		_, sem2 := nodes2[i].(*graph.SemanticNode)
		if sem1 && sem2 {
			continue
		}
		if nodes1[i].Token().Lemma != nodes2[i].Token().Lemma {
			return false
		}
	}
	return true
}

// interiorNode returns the single interior semantic node of a pattern.
func interiorNode(p *pattern.Pattern) *graph.SemanticNode {
	return p.SemanticNodes()[0]
}

// Hypernym generalizes through the concept taxonomy: super generalizes
// sub when the sense of its interior node is a superclass of the sense
// of sub's interior node.
type Hypernym struct {
	taxo relation.ConceptTaxonomy
}

// NewHypernym creates a hypernym generalizer over a concept taxonomy.
func NewHypernym(taxo relation.ConceptTaxonomy) Hypernym {
	return Hypernym{taxo: taxo}
}

func (Hypernym) Strategy() taxonomy.Strategy {
	return taxonomy.Hypernym
}

func (h Hypernym) IsGeneralization(sub, super *relation.Relation) bool {
	if h.taxo == nil || !comparablePatterns(sub.Pattern(), super.Pattern()) {
		return false
	}
	return h.taxo.IsSuperclass(
		relation.Concept{ID: interiorNode(super.Pattern()).Sense()},
		relation.Concept{ID: interiorNode(sub.Pattern()).Sense()},
	)
}

// Substring generalizes lexically: super generalizes sub when its
// interior node has the same head lemma and its subgraph lemmas are a
// subset of sub's.
type Substring struct{}

func (Substring) Strategy() taxonomy.Strategy {
	return taxonomy.Substring
}

func (Substring) IsGeneralization(sub, super *relation.Relation) bool {
	if !comparablePatterns(sub.Pattern(), super.Pattern()) {
		return false
	}
	return nodeIncluded(interiorNode(super.Pattern()), interiorNode(sub.Pattern()))
}

// nodeIncluded holds when inner has the same head lemma as outer and
// every lemma of inner's subgraph also occurs in outer's.
func nodeIncluded(inner, outer *graph.SemanticNode) bool {
	if inner.Token().Lemma != outer.Token().Lemma {
		return false
	}
	outerLemmas := map[string]bool{}
	for _, n := range outer.Subgraph().Nodes() {
		outerLemmas[n.Token().Lemma] = true
	}
	for _, n := range inner.Subgraph().Nodes() {
		if !outerLemmas[n.Token().Lemma] {
			return false
		}
	}
	return true
}

// Induce compares every distinct pair of relations in both directions
// and collects the resulting edges into a relation taxonomy. When
// several generalizers accept the same pair the first one listed wins,
// so callers rank them by reliability.
func Induce(relations []*relation.Relation, generalizers ...Generalizer) *taxonomy.Relations {
	rt := taxonomy.NewRelations()
	log.WithField("relations", len(relations)).Debug("Inducing relation taxonomy")
	for i, sub := range relations {
		for _, super := range relations[i+1:] {
			direct(rt, sub, super, generalizers)
			direct(rt, super, sub, generalizers)
		}
	}
	log.WithFields(log.Fields{
		"nodes": rt.Size(),
		"edges": rt.NumberOfEdges(),
	}).Debug("Induced relation taxonomy")
	return rt
}

func direct(rt *taxonomy.Relations, sub, super *relation.Relation, generalizers []Generalizer) {
	for _, g := range generalizers {
		if g.IsGeneralization(sub, super) {
			rt.AddEdge(sub, super, g.Strategy())
			return
		}
	}
}
