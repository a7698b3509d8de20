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

// Package prob provides a small discrete probability distribution used
// for argument type distributions and their entropies.
package prob

import (
	"math"
	"math/rand"
	"sort"
)

// Distribution is a discrete probability distribution over comparable
// entries. Probabilities are kept either in linear or in log space.
type Distribution[T comparable] struct {
	entries  map[T]float64
	logSpace bool
}

// Entry pairs a distribution entry with its probability.
type Entry[T comparable] struct {
	Key  T
	Prob float64
}

// FromWeights builds a distribution from a weight map. Unless the
// weights are already log probabilities they are normalized to sum 1.
func FromWeights[T comparable](weights map[T]float64, logSpace bool) *Distribution[T] {
	entries := make(map[T]float64, len(weights))
	for k, v := range weights {
		if logSpace {
			entries[k] = v
		} else {
			entries[k] = math.Abs(v)
		}
	}
	d := &Distribution[T]{entries: entries, logSpace: logSpace}
	if !logSpace {
		d.normalize()
	}
	return d
}

// FromCounts builds a distribution from a multiset of observations.
func FromCounts[T comparable](observations []T) *Distribution[T] {
	entries := map[T]float64{}
	for _, o := range observations {
		entries[o]++
	}
	d := &Distribution[T]{entries: entries}
	d.normalize()
	return d
}

func (d *Distribution[T]) normalize() {
	var sum float64
	for _, v := range d.entries {
		sum += v
	}
	for k := range d.entries {
		d.entries[k] /= sum
	}
}

// Size returns the number of entries the distribution is defined for.
func (d *Distribution[T]) Size() int {
	return len(d.entries)
}

// ProbabilityOf returns the probability of an entry; 0 in linear space
// and -Inf in log space for undefined entries.
func (d *Distribution[T]) ProbabilityOf(entry T) float64 {
	if p, ok := d.entries[entry]; ok {
		return p
	}
	if d.logSpace {
		return math.Inf(-1)
	}
	return 0
}

// DefinedFor reports whether the distribution has an entry.
func (d *Distribution[T]) DefinedFor(entry T) bool {
	_, ok := d.entries[entry]
	return ok
}

// ArgMax returns the entry with the highest probability. ok is false for
// an empty distribution.
func (d *Distribution[T]) ArgMax() (T, bool) {
	return d.pick(func(candidate, best float64) bool { return candidate > best })
}

// ArgMin returns the entry with the lowest probability. ok is false for
// an empty distribution.
func (d *Distribution[T]) ArgMin() (T, bool) {
	return d.pick(func(candidate, best float64) bool { return candidate < best })
}

func (d *Distribution[T]) pick(better func(candidate, best float64) bool) (T, bool) {
	var bestKey T
	var bestProb float64
	found := false
	for k, v := range d.entries {
		if !found || better(v, bestProb) {
			bestKey, bestProb = k, v
			found = true
		}
	}
	return bestKey, found
}

// Descending returns the entries in order of decreasing probability.
func (d *Distribution[T]) Descending() []Entry[T] {
	entries := d.sorted()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries
}

// Ascending returns the entries in order of increasing probability.
func (d *Distribution[T]) Ascending() []Entry[T] {
	return d.sorted()
}

func (d *Distribution[T]) sorted() []Entry[T] {
	entries := make([]Entry[T], 0, len(d.entries))
	for k, v := range d.entries {
		entries = append(entries, Entry[T]{Key: k, Prob: v})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Prob < entries[j].Prob
	})
	return entries
}

// Sample draws an entry according to the distribution.
func (d *Distribution[T]) Sample(rng *rand.Rand) (T, bool) {
	r := rng.Float64()
	sum := 0.0
	var last T
	found := false
	for _, e := range d.sorted() {
		last, found = e.Key, true
		sum += e.Prob
		if r < sum {
			return e.Key, true
		}
	}
	// Rounding may leave the accumulated mass a hair under r.
	return last, found
}

// ToLogSpace converts the probabilities to log space in place and
// returns the distribution.
func (d *Distribution[T]) ToLogSpace() *Distribution[T] {
	if !d.logSpace {
		for k, v := range d.entries {
			d.entries[k] = math.Log(v)
		}
		d.logSpace = true
	}
	return d
}

// ToLinearSpace converts the probabilities back from log space in place
// and returns the distribution.
func (d *Distribution[T]) ToLinearSpace() *Distribution[T] {
	if d.logSpace {
		for k, v := range d.entries {
			d.entries[k] = math.Exp(v)
		}
		d.logSpace = false
	}
	return d
}

// Entropy computes the Shannon entropy of the distribution in nats.
func (d *Distribution[T]) Entropy() float64 {
	var sum float64
	for _, v := range d.entries {
		if d.logSpace {
			sum += -math.Exp(v) * v
		} else if v > 0 {
			sum += -v * math.Log(v)
		}
	}
	return sum
}

// AsMap returns a copy of the entries.
func (d *Distribution[T]) AsMap() map[T]float64 {
	out := make(map[T]float64, len(d.entries))
	for k, v := range d.entries {
		out[k] = v
	}
	return out
}

// PruneBelow removes every entry with probability under the threshold
// and renormalizes.
func (d *Distribution[T]) PruneBelow(threshold float64) {
	d.Prune(func(entry T) bool {
		return d.entries[entry] < threshold
	})
}

// Prune removes every entry satisfying the constraint and renormalizes.
func (d *Distribution[T]) Prune(constraint func(T) bool) {
	wasLog := d.logSpace
	if wasLog {
		d.ToLinearSpace()
	}
	for k := range d.entries {
		if constraint(k) {
			delete(d.entries, k)
		}
	}
	d.normalize()
	if wasLog {
		d.ToLogSpace()
	}
}
