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

package relation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/claudio-db/defIE/graph"
	"github.com/claudio-db/defIE/pattern"
	"github.com/claudio-db/defIE/util/prob"
)

// Errors returned by relation construction and accessors.
var (
	// ErrNoPatterns rejects building a relation from an empty group.
	ErrNoPatterns = errors.New("relation: empty set of patterns")
	// ErrEmptyRelation rejects type distributions of a relation with no
	// extractions.
	ErrEmptyRelation = errors.New("relation: no extractions")
)

// InconsistentGroupError reports a pattern whose lemmatized signature
// does not match the canonical pattern of its group. The offending
// pattern is dropped; the rest of the group still forms the relation.
type InconsistentGroupError struct {
	Pattern   *pattern.Pattern
	Canonical *pattern.Pattern
	Reason    string
}

func (e *InconsistentGroupError) Error() string {
	return fmt.Sprintf("relation: pattern '%s' does not belong to group '%s': %s",
		e.Pattern.Lemmatized(), e.Canonical.Lemmatized(), e.Reason)
}

// Relation is a semantic relation: a canonical pattern plus the set of
// argument pairs extracted for it across the corpus. Identity is the
// lemmatized argument-free signature of the pattern.
type Relation struct {
	pattern *pattern.Pattern
	taxo    ConceptTaxonomy

	extractions []ArgumentPair
	seen        map[[2]string]bool

	domainTypes   *prob.Distribution[Concept]
	rangeTypes    *prob.Distribution[Concept]
	hypernymLevel int
}

// New creates an empty relation around a canonical pattern. Argument
// type distributions generalize concepts through taxo up to
// hypernymLevel superclass steps.
func New(p *pattern.Pattern, hypernymLevel int, taxo ConceptTaxonomy) *Relation {
	return &Relation{
		pattern:       p,
		taxo:          taxo,
		seen:          map[[2]string]bool{},
		hypernymLevel: hypernymLevel,
	}
}

// Pattern returns the canonical pattern.
func (r *Relation) Pattern() *pattern.Pattern {
	return r.pattern
}

// Signature is the relation identity: the lemmatized argument-free
// pattern signature.
func (r *Relation) Signature() string {
	return r.pattern.Lemmatized()
}

// HypernymLevel returns the generalization level of the type
// distributions.
func (r *Relation) HypernymLevel() int {
	return r.hypernymLevel
}

// AddArgumentPair inserts one extraction, dropping duplicates of the
// same concept pair. Cached type distributions are invalidated.
func (r *Relation) AddArgumentPair(ap ArgumentPair) {
	if r.seen[ap.Key()] {
		return
	}
	r.seen[ap.Key()] = true
	r.extractions = append(r.extractions, ap)
	r.domainTypes = nil
	r.rangeTypes = nil
}

// AddExtractions inserts a batch of extractions.
func (r *Relation) AddExtractions(pairs []ArgumentPair) {
	for _, ap := range pairs {
		r.AddArgumentPair(ap)
	}
}

// Extractions returns the argument pairs in insertion order.
func (r *Relation) Extractions() []ArgumentPair {
	return r.extractions
}

// Frequency returns the number of distinct extractions.
func (r *Relation) Frequency() int {
	return len(r.extractions)
}

// Domain lists the left argument concepts, one per extraction.
func (r *Relation) Domain() []Concept {
	out := make([]Concept, len(r.extractions))
	for i, ap := range r.extractions {
		out[i] = ap.Domain
	}
	return out
}

// Range lists the right argument concepts, one per extraction.
func (r *Relation) Range() []Concept {
	out := make([]Concept, len(r.extractions))
	for i, ap := range r.extractions {
		out[i] = ap.Range
	}
	return out
}

// DomainTypes returns the probability distribution over the
// generalized types of the left arguments. ErrEmptyRelation when the
// relation has no extractions.
func (r *Relation) DomainTypes() (*prob.Distribution[Concept], error) {
	if len(r.extractions) == 0 {
		return nil, ErrEmptyRelation
	}
	if r.domainTypes == nil {
		r.domainTypes = r.typeDistribution(r.Domain())
	}
	return r.domainTypes, nil
}

// RangeTypes returns the probability distribution over the generalized
// types of the right arguments. ErrEmptyRelation when the relation has
// no extractions.
func (r *Relation) RangeTypes() (*prob.Distribution[Concept], error) {
	if len(r.extractions) == 0 {
		return nil, ErrEmptyRelation
	}
	if r.rangeTypes == nil {
		r.rangeTypes = r.typeDistribution(r.Range())
	}
	return r.rangeTypes, nil
}

// SetHypernymLevel changes the generalization level and recomputes both
// type distributions on next access.
func (r *Relation) SetHypernymLevel(level int) {
	r.hypernymLevel = level
	r.domainTypes = nil
	r.rangeTypes = nil
}

// typeDistribution maps each concept to its hypernymLevel-distant
// superclass and builds the distribution over the results. A concept
// with no ancestors types as itself. Concepts sharing an ID collapse
// onto the first lexicalization seen, matching identity by ID.
func (r *Relation) typeDistribution(concepts []Concept) *prob.Distribution[Concept] {
	canonical := map[string]Concept{}
	types := make([]Concept, 0, len(concepts))
	for _, c := range concepts {
		generalized := c
		if r.taxo != nil {
			if chain := r.taxo.AncestorChain(c, r.hypernymLevel); len(chain) > 0 {
				generalized = chain[len(chain)-1]
			}
		}
		if first, ok := canonical[generalized.ID]; ok {
			generalized = first
		} else {
			canonical[generalized.ID] = generalized
		}
		types = append(types, generalized)
	}
	return prob.FromCounts(types)
}

// String renders the surface signature with the most probable argument
// types in place of the placeholders, when distributions are available.
func (r *Relation) String() string {
	left, right := pattern.LeftPlaceholder, pattern.RightPlaceholder
	if domain, err := r.DomainTypes(); err == nil {
		if c, ok := domain.ArgMax(); ok {
			left = "<" + c.String() + ">"
		}
	}
	if rng, err := r.RangeTypes(); err == nil {
		if c, ok := rng.ArgMax(); ok {
			right = "<" + c.String() + ">"
		}
	}
	words := strings.Fields(r.pattern.Signature(false, false))
	if len(words) > 0 {
		words[0] = left
		words[len(words)-1] = right
	}
	return strings.Join(words, " ")
}

// FromPatterns builds a relation from a group of patterns sharing the
// same lemmatized signature. The first pattern is canonical. Patterns
// with a mismatched signature or non-semantic arguments are dropped;
// the returned error joins one InconsistentGroupError per dropped
// pattern while the relation is still built from the rest. An empty
// group returns ErrNoPatterns.
func FromPatterns(patterns []*pattern.Pattern, hypernymLevel int, taxo ConceptTaxonomy) (*Relation, error) {
	if len(patterns) == 0 {
		return nil, ErrNoPatterns
	}
	canonical := patterns[0]
	r := New(canonical, hypernymLevel, taxo)

	var dropped []error
	for _, p := range patterns {
		if p.Lemmatized() != canonical.Lemmatized() {
			dropped = append(dropped, &InconsistentGroupError{
				Pattern:   p,
				Canonical: canonical,
				Reason:    "lemmatized signatures differ",
			})
			continue
		}
		ap, ok := argumentPairOf(p)
		if !ok {
			dropped = append(dropped, &InconsistentGroupError{
				Pattern:   p,
				Canonical: canonical,
				Reason:    "arguments are not semantic nodes",
			})
			continue
		}
		r.AddArgumentPair(ap)
	}
	return r, errors.Join(dropped...)
}

// argumentPairOf converts a pattern's extremes into an extraction.
func argumentPairOf(p *pattern.Pattern) (ArgumentPair, bool) {
	left, right := p.Extremes()
	leftSem, okLeft := left.(*graph.SemanticNode)
	rightSem, okRight := right.(*graph.SemanticNode)
	if !okLeft || !okRight {
		return ArgumentPair{}, false
	}
	return ArgumentPair{
		Domain:     Concept{ID: leftSem.Sense(), Lex: leftSem.TextFragment(true)},
		Range:      Concept{ID: rightSem.Sense(), Lex: rightSem.TextFragment(true)},
		Source:     p.Source(),
		Confidence: p.ArgumentScore(),
	}, true
}
