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

// Package relation aggregates mined patterns into semantic relations
// with typed argument distributions.
package relation

import "github.com/claudio-db/defIE/definition"

// Concept is an element of the reference sense inventory. Concepts are
// values: identity is the ID alone, the lexicalization is a display
// hint.
type Concept struct {
	ID  string
	Lex string
}

func (c Concept) String() string {
	if c.Lex == "" {
		return c.ID
	}
	return c.Lex + "_" + c.ID
}

// Equal compares concepts by ID.
func (c Concept) Equal(other Concept) bool {
	return c.ID == other.ID
}

// ArgumentPair is one extracted (domain, range) concept pair of a
// relation, with the definition it came from and the combined
// disambiguation confidence of its arguments.
type ArgumentPair struct {
	Domain     Concept
	Range      Concept
	Source     *definition.Definition
	Confidence float64
}

// Key identifies the pair by its two concepts only: re-extractions of
// the same concepts from other definitions collapse.
func (ap ArgumentPair) Key() [2]string {
	return [2]string{ap.Domain.ID, ap.Range.ID}
}

func (ap ArgumentPair) String() string {
	return "<" + ap.Domain.String() + "\t" + ap.Range.String() + ">"
}

// ConceptTaxonomy is the view of an external concept inventory needed
// to type and generalize relations. Implementations are injected; this
// package never builds one.
type ConceptTaxonomy interface {
	// AncestorChain returns up to level superclasses of c, nearest
	// first. The chain is empty when c is unknown or a root.
	AncestorChain(c Concept, level int) []Concept
	// IsSuperclass reports whether super is a (transitive) superclass
	// of c.
	IsSuperclass(super, c Concept) bool
}
