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

import (
	"fmt"

	"github.com/claudio-db/defIE/graph"
	log "github.com/sirupsen/logrus"
)

// Identifier mines all patterns of one syntactic-semantic graph: for
// every ordered pair of semantic nodes in sentence order, the shortest
// left-to-right path between them, if it forms a valid pattern and
// survives the filter.
type Identifier struct {
	graph    *graph.SynSemGraph
	filter   *Filter
	patterns []*Pattern
	done     bool
}

// NewIdentifier creates an Identifier over a graph. A nil filter keeps
// every valid pattern.
func NewIdentifier(g *graph.SynSemGraph, filter *Filter) *Identifier {
	if filter == nil {
		filter = NewFilter()
	}
	return &Identifier{graph: g, filter: filter}
}

// SetFilter replaces the filter. It has no effect once Patterns has run.
func (id *Identifier) SetFilter(filter *Filter) {
	id.filter = filter
}

// Patterns mines and returns the patterns of the graph. The result is
// memoized: repeated calls return the same slice without re-mining.
func (id *Identifier) Patterns() []*Pattern {
	if id.done {
		return id.patterns
	}
	id.patterns = id.run()
	id.done = true
	return id.patterns
}

func (id *Identifier) run() []*Pattern {
	var mined []*Pattern
	covered := map[string]bool{}
	semantic := id.graph.SemanticNodes()
	for _, subject := range semantic {
		for _, object := range semantic {
			if subject == object {
				continue
			}
			// Left arguments stay on the left.
			if subject.Token().Index >= object.Token().Index {
				continue
			}
			if covered[pairID(subject, object)] || covered[pairID(object, subject)] {
				continue
			}
			path, ok := id.graph.ShortestPath(subject, object)
			if !ok {
				continue
			}
			p, err := New(path, id.graph.Source)
			if err != nil {
				log.WithFields(log.Fields{
					"definition": id.graph.Source.ID,
					"error":      err,
				}).Debug("Discarding invalid pattern")
				continue
			}
			mined = append(mined, p)
			covered[pairID(subject, object)] = true
		}
	}
	return id.filter.Apply(mined)
}

func pairID(a, b *graph.SemanticNode) string {
	return fmt.Sprintf("%s_%d_%s_%d", a.Sense(), a.Token().Index, b.Sense(), b.Token().Index)
}
