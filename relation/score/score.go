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

// Package score ranks relations by the quality of their patterns: high
// frequency, low argument type entropy and short paths score best.
package score

import (
	"errors"
	"fmt"
	"sort"

	"github.com/claudio-db/defIE/relation"
)

// Weights of the two argument type entropies in the combined entropy
// term. They sum to one.
const (
	domainEntropyWeight = 0.5
	rangeEntropyWeight  = 0.5
)

// Score is the quality of one relation together with the quantities it
// is computed from.
type Score struct {
	Value     float64
	Entropy   float64
	Frequency int
	Length    int
}

func (s Score) String() string {
	return fmt.Sprintf("%.6f", s.Value)
}

// VerboseString spells out every component of the score.
func (s Score) VerboseString() string {
	return fmt.Sprintf("[ score: %.6f, entropy: %.6f, frequency: %d, length: %d ]",
		s.Value, s.Entropy, s.Frequency, s.Length)
}

// Of scores a relation. The score grows with the number of distinct
// extractions and shrinks with the combined entropy of the argument
// type distributions and with the pattern length. Relations without
// extractions cannot be scored.
func Of(r *relation.Relation) (Score, error) {
	domain, err := r.DomainTypes()
	if err != nil {
		return Score{}, err
	}
	rng, err := r.RangeTypes()
	if err != nil {
		return Score{}, err
	}
	entropy := domainEntropyWeight*domain.Entropy() + rangeEntropyWeight*rng.Entropy()
	frequency := r.Frequency()
	length := r.Pattern().Length()
	return Score{
		Value:     float64(frequency) / ((entropy + 1) * float64(length)),
		Entropy:   entropy,
		Frequency: frequency,
		Length:    length,
	}, nil
}

// Ranked pairs a relation with its score.
type Ranked struct {
	Relation *relation.Relation
	Score    Score
}

// Rank scores a set of relations and orders them by decreasing score,
// breaking ties by signature. Relations that cannot be scored are left
// out; their errors come back joined alongside the ranking of the rest.
func Rank(relations []*relation.Relation) ([]Ranked, error) {
	ranked := make([]Ranked, 0, len(relations))
	var failed []error
	for _, r := range relations {
		s, err := Of(r)
		if err != nil {
			failed = append(failed, fmt.Errorf("scoring '%s': %w", r.Signature(), err))
			continue
		}
		ranked = append(ranked, Ranked{Relation: r, Score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score.Value != ranked[j].Score.Value {
			return ranked[i].Score.Value > ranked[j].Score.Value
		}
		return ranked[i].Relation.Signature() < ranked[j].Relation.Signature()
	})
	return ranked, errors.Join(failed...)
}
