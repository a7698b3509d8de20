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
	"fmt"
	"strings"

	"github.com/claudio-db/defIE/definition"
)

// SemanticNode is a vertex carrying a sense attachment. It absorbs the
// plain word vertices spanned by its disambiguation into a private
// subgraph and exposes the subgraph's head token as its own. Semantic
// nodes are shared by pointer: one instance per disambiguation within a
// graph.
type SemanticNode struct {
	head     definition.Token
	sense    definition.Disambiguation
	subgraph *Graph
}

// NewSemanticNode creates a semantic node around a single head token.
func NewSemanticNode(head definition.Token, sense definition.Disambiguation) *SemanticNode {
	sub := NewGraph(nil)
	sub.AddNode(NewWord(head))
	return &SemanticNode{head: head, sense: sense, subgraph: sub}
}

// Token implements Node; it returns the current head token.
func (sn *SemanticNode) Token() definition.Token {
	return sn.head
}

// Sense returns the attached sense identifier.
func (sn *SemanticNode) Sense() string {
	return sn.sense.SenseID
}

// SenseAttachment returns the full disambiguation record.
func (sn *SemanticNode) SenseAttachment() definition.Disambiguation {
	return sn.sense
}

// Subgraph returns the private graph of absorbed vertices.
func (sn *SemanticNode) Subgraph() *Graph {
	return sn.subgraph
}

// TextFragment renders the absorbed tokens in sentence order.
func (sn *SemanticNode) TextFragment(lemmatized bool) string {
	var words []string
	for _, t := range sn.subgraph.Sentence() {
		if lemmatized {
			words = append(words, t.Lemma)
		} else {
			words = append(words, t.Surface)
		}
	}
	return strings.Join(words, " ")
}

func (sn *SemanticNode) String() string {
	return sn.Sense()
}

// VerboseString renders fragment, sense attachment and head.
func (sn *SemanticNode) VerboseString() string {
	return sn.TextFragment(false) + definition.Separator + sn.sense.String() + definition.Separator + sn.head.Surface
}

// MergeConflictError reports a failed merge of a vertex into a semantic
// node.
type MergeConflictError struct {
	Reason string
	Node   *SemanticNode
	Other  Node
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("unable to merge nodes '%s' and '%s': %s", e.Node, e.Other, e.Reason)
}

// Merge absorbs node into the semantic node's subgraph. edge is the
// connection between node and the subgraph in the original dependency
// graph; an edge with an empty type and identical endpoints marks a
// disconnected absorption.
//
// When node heads the connecting edge and the edge's dependent is
// already absorbed, node becomes the new head of this semantic node.
// When node is the dependent, it is absorbed below the existing head.
// Otherwise the vertex is absorbed without a connection.
//
// Merging a semantic node with a different sense attachment fails with a
// MergeConflictError.
func (sn *SemanticNode) Merge(node Node, edge Edge) error {
	if other, ok := node.(*SemanticNode); ok && other.sense != sn.sense {
		return &MergeConflictError{Reason: "unable to align sense attachments", Node: sn, Other: node}
	}

	switch {
	// Node to be merged is the new head.
	case edge.Source == node && sn.subgraph.HasNode(edge.Target):
		sn.absorb(node)
		sn.subgraph.AddEdge(edge)
		sn.head = node.Token()

	// Node to be merged is a dependent.
	case edge.Target == node && sn.subgraph.HasNode(edge.Source):
		sn.absorb(node)
		sn.subgraph.AddEdge(edge)

	// Node to be merged is not connected.
	default:
		sn.absorb(node)
	}
	return nil
}

// absorb adds node to the subgraph; a semantic node contributes its
// whole subgraph.
func (sn *SemanticNode) absorb(node Node) {
	if other, ok := node.(*SemanticNode); ok {
		for _, n := range other.subgraph.Nodes() {
			sn.subgraph.AddNode(n)
		}
		for _, e := range other.subgraph.Edges() {
			sn.subgraph.AddEdge(e)
		}
		return
	}
	sn.subgraph.AddNode(node)
}
