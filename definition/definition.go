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

package definition

import "sort"

// Definition is one textual definition from the corpus, together with
// the output of the upstream dependency parser and word-sense
// disambiguator. The ID names the concept being defined.
type Definition struct {
	ID           string
	Text         string
	Dependencies []Dependency
	Senses       []Disambiguation
}

// Parsed reports whether the definition carries a dependency parse.
func (d *Definition) Parsed() bool {
	return len(d.Dependencies) > 0
}

// Disambiguated reports whether the definition carries sense annotations.
func (d *Definition) Disambiguated() bool {
	return len(d.Senses) > 0
}

// Tokens returns the distinct tokens mentioned by the dependency parse,
// ordered by sentence position.
func (d *Definition) Tokens() []Token {
	seen := map[Token]bool{}
	var out []Token
	for _, dep := range d.Dependencies {
		for _, t := range []Token{dep.Head, dep.Dependent} {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Less(out[j])
	})
	return out
}
