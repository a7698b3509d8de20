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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/claudio-db/defIE/relation"
	log "github.com/sirupsen/logrus"
)

// Concepts is the reference taxonomy over the sense inventory. Edges
// carry an integer tier, 0 being the most reliable. It satisfies
// relation.ConceptTaxonomy.
type Concepts struct {
	taxo *Taxonomy[string, int]
}

// NewConcepts creates an empty concept taxonomy.
func NewConcepts() *Concepts {
	return &Concepts{taxo: New[string, int]()}
}

// Add records super as a direct superclass of sub with the given tier.
func (c *Concepts) Add(sub, super relation.Concept, tier int) {
	c.taxo.AddEdge(sub.ID, super.ID, tier)
}

// Size returns the number of concepts with at least one superclass.
func (c *Concepts) Size() int {
	return len(c.taxo.Nodes())
}

// NumberOfEdges counts every superclass edge.
func (c *Concepts) NumberOfEdges() int {
	return c.taxo.NumberOfEdges()
}

// AncestorChain walks the primary superclass chain of a concept for at
// most level hops, nearest first. A cyclic chain is cut where it closes
// and logged.
func (c *Concepts) AncestorChain(concept relation.Concept, level int) []relation.Concept {
	ids, err := c.taxo.Taxonomize(concept.ID, level)
	if err != nil {
		log.WithFields(log.Fields{
			"concept": concept.ID,
			"error":   err,
		}).Warn("Concept taxonomy contains a cycle")
	}
	chain := make([]relation.Concept, len(ids))
	for i, id := range ids {
		chain[i] = relation.Concept{ID: id}
	}
	return chain
}

// IsSuperclass reports whether super is a transitive superclass of
// concept.
func (c *Concepts) IsSuperclass(super, concept relation.Concept) bool {
	return c.taxo.HasSuperclass(concept.ID, super.ID)
}

// DepthOf returns the depth of a concept, 0 for roots. The second
// result is false for concepts without edges.
func (c *Concepts) DepthOf(concept relation.Concept) (int, bool) {
	return c.taxo.DepthOf(concept.ID)
}

// ConceptLoadError reports an unparsable line of a concept taxonomy
// file.
type ConceptLoadError struct {
	Line   int
	Text   string
	Reason string
}

func (e *ConceptLoadError) Error() string {
	return fmt.Sprintf("concept taxonomy line %d: %s: '%s'", e.Line, e.Reason, e.Text)
}

// LoadConcepts reads a concept taxonomy, one edge per line:
//
//	SUBCLASS_ID <tab> SUPERCLASS_ID <tab> TIER
//
// where TIER is an integer ranking the edge, 0 being the most reliable.
// Blank lines are skipped.
func LoadConcepts(r io.Reader) (*Concepts, error) {
	concepts := NewConcepts()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, &ConceptLoadError{Line: lineNo, Text: line, Reason: "expected 3 tab-separated fields"}
		}
		tier, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, &ConceptLoadError{Line: lineNo, Text: line, Reason: "tier is not an integer"}
		}
		concepts.Add(relation.Concept{ID: fields[0]}, relation.Concept{ID: fields[1]}, tier)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading concept taxonomy: %w", err)
	}
	return concepts, nil
}

// OpenConcepts loads a concept taxonomy from a file.
func OpenConcepts(path string) (*Concepts, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening concept taxonomy: %w", err)
	}
	defer f.Close()
	concepts, err := LoadConcepts(f)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":  path,
		"nodes": concepts.Size(),
		"edges": concepts.NumberOfEdges(),
	}).Info("Loaded concept taxonomy")
	return concepts, nil
}
