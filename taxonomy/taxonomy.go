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

// Package taxonomy models superclass forests: a generic taxonomy over
// comparable nodes with typed, ordered edges, plus the two concrete
// taxonomies of the pipeline, one over concepts and one over relations.
package taxonomy

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/google/btree"
)

// ErrCycle reports a superclass chain that returns to a node it already
// visited.
var ErrCycle = errors.New("taxonomy: superclass cycle")

// Edge points from a node to one of its direct superclasses. The type
// orders edges from most to least reliable; the smallest type wins.
type Edge[N comparable, E cmp.Ordered] struct {
	Target N
	Type   E
}

func (e Edge[N, E]) String() string {
	return fmt.Sprintf("%v_%v", e.Target, e.Type)
}

// item decorates an edge with its insertion sequence so that edges of
// equal type keep a stable order in the tree.
type item[N comparable, E cmp.Ordered] struct {
	edge Edge[N, E]
	seq  uint64
}

func lessItem[N comparable, E cmp.Ordered](a, b item[N, E]) bool {
	if a.edge.Type != b.edge.Type {
		return a.edge.Type < b.edge.Type
	}
	return a.seq < b.seq
}

// Taxonomy is a forest of superclass edges over nodes of type N. Nodes
// may have several superclasses; edge types rank them. The zero value
// is not usable, construct with New.
type Taxonomy[N comparable, E cmp.Ordered] struct {
	edges map[N]*btree.BTreeG[item[N, E]]
	// Insertion order of source nodes, for deterministic iteration.
	order []N
	seq   uint64
}

// New creates an empty taxonomy.
func New[N comparable, E cmp.Ordered]() *Taxonomy[N, E] {
	return &Taxonomy[N, E]{edges: map[N]*btree.BTreeG[item[N, E]]{}}
}

// AddEdge records target as a direct superclass of node. A second edge
// between the same pair replaces the previous type.
func (t *Taxonomy[N, E]) AddEdge(node, target N, edgeType E) {
	tree, ok := t.edges[node]
	if !ok {
		tree = btree.NewG(2, lessItem[N, E])
		t.edges[node] = tree
		t.order = append(t.order, node)
	}
	var stale []item[N, E]
	tree.Ascend(func(it item[N, E]) bool {
		if it.edge.Target == target {
			stale = append(stale, it)
		}
		return true
	})
	for _, it := range stale {
		tree.Delete(it)
	}
	t.seq++
	tree.ReplaceOrInsert(item[N, E]{edge: Edge[N, E]{Target: target, Type: edgeType}, seq: t.seq})
}

// Nodes returns the nodes with at least one superclass, in insertion
// order.
func (t *Taxonomy[N, E]) Nodes() []N {
	out := make([]N, len(t.order))
	copy(out, t.order)
	return out
}

// Roots returns the edge targets that have no superclass of their own,
// in first-seen order.
func (t *Taxonomy[N, E]) Roots() []N {
	var roots []N
	seen := map[N]bool{}
	for _, node := range t.order {
		t.edges[node].Ascend(func(it item[N, E]) bool {
			target := it.edge.Target
			if _, isSource := t.edges[target]; !isSource && !seen[target] {
				seen[target] = true
				roots = append(roots, target)
			}
			return true
		})
	}
	return roots
}

// Edges returns the superclass edges of node, most reliable first.
func (t *Taxonomy[N, E]) Edges(node N) []Edge[N, E] {
	tree, ok := t.edges[node]
	if !ok {
		return nil
	}
	out := make([]Edge[N, E], 0, tree.Len())
	tree.Ascend(func(it item[N, E]) bool {
		out = append(out, it.edge)
		return true
	})
	return out
}

// Superclasses returns the direct superclasses of node, most reliable
// first.
func (t *Taxonomy[N, E]) Superclasses(node N) []N {
	edges := t.Edges(node)
	out := make([]N, len(edges))
	for i, e := range edges {
		out[i] = e.Target
	}
	return out
}

// Superclass returns the most reliable direct superclass of node.
func (t *Taxonomy[N, E]) Superclass(node N) (N, bool) {
	tree, ok := t.edges[node]
	if !ok || tree.Len() == 0 {
		var zero N
		return zero, false
	}
	it, _ := tree.Min()
	return it.edge.Target, true
}

// NumberOfEdges counts every edge of the taxonomy.
func (t *Taxonomy[N, E]) NumberOfEdges() int {
	total := 0
	for _, tree := range t.edges {
		total += tree.Len()
	}
	return total
}

// HasSuperclass reports whether superclass is reachable from node
// through superclass edges. The search never revisits a node, so it
// terminates on cyclic inputs.
func (t *Taxonomy[N, E]) HasSuperclass(node, superclass N) bool {
	visited := map[N]bool{node: true}
	frontier := []N{node}
	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, parent := range t.Superclasses(current) {
			if parent == superclass {
				return true
			}
			if !visited[parent] {
				visited[parent] = true
				frontier = append(frontier, parent)
			}
		}
	}
	return false
}

// Taxonomize follows the chain of primary superclasses from node for at
// most maxLevel hops. When the chain comes back to a node already on
// it, the chain built so far is returned together with ErrCycle.
func (t *Taxonomy[N, E]) Taxonomize(node N, maxLevel int) ([]N, error) {
	var chain []N
	visited := map[N]bool{node: true}
	current := node
	for hop := 0; hop < maxLevel; hop++ {
		parent, ok := t.Superclass(current)
		if !ok {
			return chain, nil
		}
		if visited[parent] {
			return chain, fmt.Errorf("%w through %v", ErrCycle, parent)
		}
		visited[parent] = true
		chain = append(chain, parent)
		current = parent
	}
	return chain, nil
}

// DepthOf returns the length of the primary superclass chain of node.
// The second result is false when the node has no edges at all.
func (t *Taxonomy[N, E]) DepthOf(node N) (int, bool) {
	if _, ok := t.edges[node]; !ok {
		return 0, false
	}
	chain, _ := t.Taxonomize(node, int(^uint(0)>>1))
	return len(chain), true
}
