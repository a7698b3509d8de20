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

// Package definition holds the input data model of the extraction
// pipeline: tagged tokens, typed dependencies, sense disambiguations and
// the definitions that carry them. Definitions arrive already parsed and
// disambiguated; this package never runs a parser or a disambiguator.
package definition

import (
	"fmt"
	"strings"
)

// Separator joins the fields of verbose token and disambiguation strings.
const Separator = "|"

// Token is a single tagged word of a definition. Tokens are immutable
// values: two tokens are equal iff all four fields are equal.
type Token struct {
	// Surface is the form of the word as it appears in the text.
	Surface string
	// Lemma is the lemmatized form.
	Lemma string
	// POS is the part-of-speech tag (Penn Treebank style).
	POS string
	// Index is the zero-based position of the token in the sentence.
	Index int
}

// IsNoun reports whether the token is tagged as a noun.
func (t Token) IsNoun() bool {
	return strings.HasPrefix(t.POS, "N")
}

// IsVerb reports whether the token is tagged as a verb (or copula).
func (t Token) IsVerb() bool {
	return strings.HasPrefix(t.POS, "V")
}

// Less orders tokens by sentence position, breaking ties on the surface
// form.
func (t Token) Less(other Token) bool {
	if t.Index != other.Index {
		return t.Index < other.Index
	}
	return t.Surface < other.Surface
}

func (t Token) String() string {
	return t.Surface
}

// VerboseString renders every field of the token, separated by Separator.
func (t Token) VerboseString() string {
	return fmt.Sprintf("%s%s%s%s%s%s%d", t.Surface, Separator, t.Lemma, Separator, t.POS, Separator, t.Index)
}

// Dependency is a typed syntactic relation between a head token and a
// dependent token, as produced by a dependency parser.
type Dependency struct {
	Type      string
	Head      Token
	Dependent Token
}

func (d Dependency) String() string {
	return fmt.Sprintf("%s(%s, %s)", d.Type, d.Head, d.Dependent)
}

// VerboseString renders the dependency with fully expanded tokens.
func (d Dependency) VerboseString() string {
	return fmt.Sprintf("%s(%s, %s)", d.Type, d.Head.VerboseString(), d.Dependent.VerboseString())
}
