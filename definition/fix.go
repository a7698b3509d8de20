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

// FixDependencies unrolls collapsed constructions so the connective
// particle appears on extracted paths.
//
// Copulas: the parser attaches the nominal root straight to its referent
// and hangs the verb "to be" off the noun. The cop edge is redirected to
// connect verb and referent, and a fresh nsubj edge connects noun and
// verb, putting the copula in between.
//
// Conjunctions: the parser connects the two conjunct heads directly with
// the particle hanging off the first. The conj edge is re-headed on the
// particle found through the cc edge.
//
// The input slice is not modified.
func FixDependencies(deps []Dependency) []Dependency {
	remove := map[int]bool{}
	var add []Dependency

	for i, cop := range deps {
		if cop.Type != "cop" {
			continue
		}
		verb := cop.Dependent
		noun := cop.Head
		for j, ref := range deps {
			if ref.Type != "nsubj" || ref.Head != noun {
				continue
			}
			referent := ref.Dependent
			add = append(add,
				Dependency{Type: "cop", Head: verb, Dependent: referent},
				Dependency{Type: "nsubj", Head: noun, Dependent: verb})
			remove[i] = true
			remove[j] = true
			break
		}
	}

	for i, conj := range deps {
		if conj.Type != "conj" {
			continue
		}
		noun1 := conj.Head
		noun2 := conj.Dependent
		for _, cc := range deps {
			if cc.Type != "cc" || cc.Head != noun1 {
				continue
			}
			add = append(add, Dependency{Type: "conj", Head: cc.Dependent, Dependent: noun2})
			remove[i] = true
			break
		}
	}

	updated := make([]Dependency, 0, len(deps)+len(add))
	for i, dep := range deps {
		if !remove[i] {
			updated = append(updated, dep)
		}
	}
	return append(updated, add...)
}
