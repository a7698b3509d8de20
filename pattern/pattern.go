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

// Package pattern mines relation patterns from syntactic-semantic
// graphs: shortest paths between two semantic nodes that read left to
// right through a verb or copula.
package pattern

import (
	"fmt"
	"sort"
	"strings"

	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/graph"
)

// Placeholders standing in for the two arguments in argument-free
// signatures.
const (
	LeftPlaceholder  = "X"
	RightPlaceholder = "Y"
)

// InvalidPatternError rejects a path that cannot form a pattern.
type InvalidPatternError struct {
	Reason string
	Path   graph.Path
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern '%s': %s", pathText(e.Path), e.Reason)
}

func pathText(p graph.Path) string {
	var words []string
	for _, n := range p.Nodes() {
		words = append(words, n.Token().Surface)
	}
	return strings.Join(words, " ")
}

// Pattern is a mined path between two semantic argument nodes, together
// with its source definition. The extremes are the relation arguments;
// the vertices in between are the relation text, anchored on the leading
// verb.
type Pattern struct {
	path   graph.Path
	source *definition.Definition
	verb   definition.Token
	// Semantic nodes strictly between the two extremes.
	semanticNodes []*graph.SemanticNode

	// Signature cache, keyed by (lemmatized, withArguments).
	signatures map[signatureKey]string
}

type signatureKey struct {
	lemmatized    bool
	withArguments bool
}

// New builds a Pattern from a path in the syntactic-semantic graph of
// source. The path must contain a verb or copula vertex; otherwise an
// InvalidPatternError is returned.
func New(path graph.Path, source *definition.Definition) (*Pattern, error) {
	p := &Pattern{
		path:       path,
		source:     source,
		signatures: map[signatureKey]string{},
	}

	if path.Length() == 0 {
		return nil, &InvalidPatternError{Reason: "empty path", Path: path}
	}
	nodes := path.Nodes()
	verbFound := false
	for _, n := range nodes {
		if n.Token().IsVerb() {
			p.verb = n.Token()
			verbFound = true
			break
		}
	}
	if !verbFound {
		return nil, &InvalidPatternError{Reason: "no verb node found", Path: path}
	}

	for _, n := range nodes[1 : len(nodes)-1] {
		if sn, ok := n.(*graph.SemanticNode); ok {
			p.semanticNodes = append(p.semanticNodes, sn)
		}
	}
	return p, nil
}

// EdgePath returns the edges of the mined path in traversal order.
func (p *Pattern) EdgePath() []graph.Edge {
	return p.path.Edges
}

// Extremes returns the two argument nodes, left first.
func (p *Pattern) Extremes() (graph.Node, graph.Node) {
	return p.path.Start, p.path.End
}

// Verb returns the leading verb or copula token.
func (p *Pattern) Verb() definition.Token {
	return p.verb
}

// SemanticNodes returns the semantic nodes strictly inside the pattern,
// extremes excluded.
func (p *Pattern) SemanticNodes() []*graph.SemanticNode {
	return p.semanticNodes
}

// Source returns the definition the pattern was mined from.
func (p *Pattern) Source() *definition.Definition {
	return p.source
}

// Length returns the number of edges of the pattern.
func (p *Pattern) Length() int {
	return p.path.Length()
}

// Nodes returns the pattern vertices in sentence order, arguments
// included.
func (p *Pattern) Nodes() []graph.Node {
	return p.sortedNodeSequence(true)
}

// ArgumentScore is the product of the disambiguation confidences of the
// two arguments.
func (p *Pattern) ArgumentScore() float64 {
	score := 1.0
	for _, n := range []graph.Node{p.path.Start, p.path.End} {
		if sn, ok := n.(*graph.SemanticNode); ok {
			score *= sn.SenseAttachment().Confidence
		}
	}
	return score
}

// PatternScore is the product of the disambiguation confidences of the
// interior semantic nodes; 1 when there are none.
func (p *Pattern) PatternScore() float64 {
	score := 1.0
	for _, sn := range p.semanticNodes {
		score *= sn.SenseAttachment().Confidence
	}
	return score
}

// sortedNodeSequence returns the pattern vertices in sentence order.
// Without arguments, the extremes are replaced by the X and Y
// placeholder vertices.
func (p *Pattern) sortedNodeSequence(arguments bool) []graph.Node {
	nodes := p.path.Nodes()
	sequence := make([]graph.Node, len(nodes))
	copy(sequence, nodes)
	if !arguments {
		sequence[0] = graph.NewWord(definition.Token{
			Surface: LeftPlaceholder, Lemma: LeftPlaceholder, POS: LeftPlaceholder,
			Index: p.path.Start.Token().Index,
		})
		sequence[len(sequence)-1] = graph.NewWord(definition.Token{
			Surface: RightPlaceholder, Lemma: RightPlaceholder, POS: RightPlaceholder,
			Index: p.path.End.Token().Index,
		})
	}
	sort.SliceStable(sequence, func(i, j int) bool {
		return sequence[i].Token().Index < sequence[j].Token().Index
	})
	return sequence
}

// Signature renders the pattern as the space-joined sequence of its
// vertices in sentence order. Semantic vertices render as their sense,
// word vertices as lemma or surface form. Results are memoized.
func (p *Pattern) Signature(lemmatized, withArguments bool) string {
	key := signatureKey{lemmatized: lemmatized, withArguments: withArguments}
	if s, ok := p.signatures[key]; ok {
		return s
	}
	var words []string
	for _, n := range p.sortedNodeSequence(withArguments) {
		if sn, ok := n.(*graph.SemanticNode); ok {
			words = append(words, sn.String())
			continue
		}
		if lemmatized {
			words = append(words, n.Token().Lemma)
		} else {
			words = append(words, n.Token().Surface)
		}
	}
	s := strings.Join(words, " ")
	p.signatures[key] = s
	return s
}

// String is the surface signature with argument placeholders.
func (p *Pattern) String() string {
	return p.Signature(false, false)
}

// Lemmatized is the lemma signature with argument placeholders.
func (p *Pattern) Lemmatized() string {
	return p.Signature(true, false)
}

// WithArguments is the surface signature including the arguments.
func (p *Pattern) WithArguments() string {
	return p.Signature(false, true)
}

// LemmatizedWithArguments is the lemma signature including the
// arguments.
func (p *Pattern) LemmatizedWithArguments() string {
	return p.Signature(true, true)
}

// VerboseString renders every vertex with full token detail.
func (p *Pattern) VerboseString(withArguments bool) string {
	var words []string
	for _, n := range p.sortedNodeSequence(withArguments) {
		if sn, ok := n.(*graph.SemanticNode); ok {
			words = append(words, sn.VerboseString())
		} else {
			words = append(words, n.Token().VerboseString())
		}
	}
	return strings.Join(words, " ")
}
