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

package pattern

// Rejector flags a pattern that should be discarded.
type Rejector func(*Pattern) bool

// NonNominalArguments rejects patterns whose arguments are not both
// nouns.
func NonNominalArguments(p *Pattern) bool {
	left, right := p.Extremes()
	return !left.Token().IsNoun() || !right.Token().IsNoun()
}

// StartsWithModifier rejects patterns starting on a noun-modifier edge.
func StartsWithModifier(p *Pattern) bool {
	edges := p.EdgePath()
	return len(edges) > 0 && isModifier(edges[0].Type)
}

// EndsWithModifier rejects patterns ending on a noun-modifier edge.
func EndsWithModifier(p *Pattern) bool {
	edges := p.EdgePath()
	return len(edges) > 0 && isModifier(edges[len(edges)-1].Type)
}

func isModifier(depType string) bool {
	return depType == "nn" || depType == "ncmod"
}

// Filter is an ordered pipeline of rejectors. A pattern survives only if
// no rejector flags it.
type Filter struct {
	pipeline []Rejector
}

// NewFilter builds a filter from the given rejectors. With none, every
// pattern survives.
func NewFilter(rejectors ...Rejector) *Filter {
	return &Filter{pipeline: rejectors}
}

// Add appends rejectors to the pipeline.
func (f *Filter) Add(rejectors ...Rejector) *Filter {
	f.pipeline = append(f.pipeline, rejectors...)
	return f
}

// Clear drops every rejector.
func (f *Filter) Clear() *Filter {
	f.pipeline = nil
	return f
}

// Keep reports whether the pattern survives the pipeline.
func (f *Filter) Keep(p *Pattern) bool {
	for _, reject := range f.pipeline {
		if reject(p) {
			return false
		}
	}
	return true
}

// Apply filters a slice of patterns, preserving order.
func (f *Filter) Apply(patterns []*Pattern) []*Pattern {
	kept := make([]*Pattern, 0, len(patterns))
	for _, p := range patterns {
		if f.Keep(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
