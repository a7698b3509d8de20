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

package taxonomy

import (
	"fmt"
	"io"

	"github.com/claudio-db/defIE/relation"
)

// Strategy is the kind of generalization that produced a relation
// taxonomy edge. Hypernym edges are the most reliable and rank first.
type Strategy int

const (
	Hypernym Strategy = iota
	Substring
)

func (s Strategy) String() string {
	switch s {
	case Hypernym:
		return "HYPERNYM"
	case Substring:
		return "SUBSTRING"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Relations is the induced taxonomy over relations. Nodes are keyed by
// the relation signature; edges carry the generalization strategy that
// produced them.
type Relations struct {
	taxo      *Taxonomy[string, Strategy]
	relations map[string]*relation.Relation
}

// NewRelations creates an empty relation taxonomy.
func NewRelations() *Relations {
	return &Relations{
		taxo:      New[string, Strategy](),
		relations: map[string]*relation.Relation{},
	}
}

// AddEdge records super as a generalization of sub found by the given
// strategy.
func (rt *Relations) AddEdge(sub, super *relation.Relation, strategy Strategy) {
	rt.relations[sub.Signature()] = sub
	rt.relations[super.Signature()] = super
	rt.taxo.AddEdge(sub.Signature(), super.Signature(), strategy)
}

// Relation resolves a signature back to its relation.
func (rt *Relations) Relation(signature string) (*relation.Relation, bool) {
	r, ok := rt.relations[signature]
	return r, ok
}

// Nodes returns the relations with at least one superclass, in
// insertion order.
func (rt *Relations) Nodes() []*relation.Relation {
	return rt.resolve(rt.taxo.Nodes())
}

// Roots returns the top relations of the taxonomy, those that
// generalize others but have no generalization themselves.
func (rt *Relations) Roots() []*relation.Relation {
	return rt.resolve(rt.taxo.Roots())
}

// Superclasses returns the direct generalizations of r, most reliable
// strategy first.
func (rt *Relations) Superclasses(r *relation.Relation) []*relation.Relation {
	return rt.resolve(rt.taxo.Superclasses(r.Signature()))
}

// Superclass returns the primary generalization of r.
func (rt *Relations) Superclass(r *relation.Relation) (*relation.Relation, bool) {
	sig, ok := rt.taxo.Superclass(r.Signature())
	if !ok {
		return nil, false
	}
	return rt.relations[sig], true
}

// HasSuperclass reports whether super transitively generalizes r.
func (rt *Relations) HasSuperclass(r, super *relation.Relation) bool {
	return rt.taxo.HasSuperclass(r.Signature(), super.Signature())
}

// Edges returns the generalization edges of r, most reliable first.
func (rt *Relations) Edges(r *relation.Relation) []Edge[string, Strategy] {
	return rt.taxo.Edges(r.Signature())
}

// NumberOfEdges counts every generalization edge.
func (rt *Relations) NumberOfEdges() int {
	return rt.taxo.NumberOfEdges()
}

// Size returns the number of relations with at least one
// generalization.
func (rt *Relations) Size() int {
	return len(rt.taxo.Nodes())
}

func (rt *Relations) resolve(signatures []string) []*relation.Relation {
	out := make([]*relation.Relation, 0, len(signatures))
	for _, sig := range signatures {
		if r, ok := rt.relations[sig]; ok {
			out = append(out, r)
		}
	}
	return out
}

// WriteTo dumps the taxonomy as one edge per line:
//
//	SUB_SIGNATURE <tab> SUPER_SIGNATURE <tab> STRATEGY
func (rt *Relations) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, sig := range rt.taxo.Nodes() {
		for _, e := range rt.taxo.Edges(sig) {
			n, err := fmt.Fprintf(w, "%s\t%s\t%s\n", sig, e.Target, e.Type)
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
