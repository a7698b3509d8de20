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
	"strings"
	"testing"

	"github.com/claudio-db/defIE/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Taxonomy_EdgesOrderedByType(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 2)
	taxo.AddEdge("album", "artifact", 0)
	taxo.AddEdge("album", "creation", 1)

	assert.Equal([]string{"artifact", "creation", "work"}, taxo.Superclasses("album"))
	primary, ok := taxo.Superclass("album")
	require.True(t, ok)
	assert.Equal("artifact", primary)
	assert.Equal(3, taxo.NumberOfEdges())
}

func Test_Taxonomy_AddEdgeReplacesType(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 0)
	taxo.AddEdge("album", "artifact", 1)
	taxo.AddEdge("album", "work", 2)

	assert.Equal(2, taxo.NumberOfEdges())
	assert.Equal([]string{"artifact", "work"}, taxo.Superclasses("album"))
}

func Test_Taxonomy_Roots(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 0)
	taxo.AddEdge("work", "entity", 0)
	taxo.AddEdge("band", "group", 0)

	assert.Equal([]string{"entity", "group"}, taxo.Roots())
	assert.Equal([]string{"album", "work", "band"}, taxo.Nodes())
}

func Test_Taxonomy_HasSuperclass(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 0)
	taxo.AddEdge("work", "entity", 0)

	assert.True(taxo.HasSuperclass("album", "work"))
	assert.True(taxo.HasSuperclass("album", "entity"))
	assert.False(taxo.HasSuperclass("entity", "album"))
	// A node is not its own superclass.
	assert.False(taxo.HasSuperclass("album", "album"))
	assert.False(taxo.HasSuperclass("unknown", "entity"))
}

func Test_Taxonomy_HasSuperclass_Cyclic(t *testing.T) {
	taxo := New[string, int]()
	taxo.AddEdge("a", "b", 0)
	taxo.AddEdge("b", "a", 0)
	assert.True(t, taxo.HasSuperclass("a", "b"))
	assert.False(t, taxo.HasSuperclass("a", "c"))
}

func Test_Taxonomize(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 0)
	taxo.AddEdge("work", "creation", 0)
	taxo.AddEdge("creation", "entity", 0)

	chain, err := taxo.Taxonomize("album", 2)
	require.NoError(t, err)
	assert.Equal([]string{"work", "creation"}, chain)

	chain, err = taxo.Taxonomize("album", 10)
	require.NoError(t, err)
	assert.Equal([]string{"work", "creation", "entity"}, chain)

	chain, err = taxo.Taxonomize("entity", 10)
	require.NoError(t, err)
	assert.Empty(chain)
}

func Test_Taxonomize_Cycle(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("a", "b", 0)
	taxo.AddEdge("b", "c", 0)
	taxo.AddEdge("c", "a", 0)

	chain, err := taxo.Taxonomize("a", 10)
	require.Error(t, err)
	assert.ErrorIs(err, ErrCycle)
	assert.Equal([]string{"b", "c"}, chain)
}

func Test_DepthOf(t *testing.T) {
	assert := assert.New(t)
	taxo := New[string, int]()
	taxo.AddEdge("album", "work", 0)
	taxo.AddEdge("work", "entity", 0)

	depth, ok := taxo.DepthOf("album")
	require.True(t, ok)
	assert.Equal(2, depth)

	depth, ok = taxo.DepthOf("work")
	require.True(t, ok)
	assert.Equal(1, depth)

	// Roots carry no outgoing edges.
	_, ok = taxo.DepthOf("entity")
	assert.False(ok)
	_, ok = taxo.DepthOf("unknown")
	assert.False(ok)
}

const conceptFixture = "bn:album\tbn:work\t0\n" +
	"bn:work\tbn:entity\t0\n" +
	"bn:album\tbn:medium\t1\n" +
	"\n" +
	"bn:band\tbn:group\t0\n"

func Test_LoadConcepts(t *testing.T) {
	assert := assert.New(t)
	concepts, err := LoadConcepts(strings.NewReader(conceptFixture))
	require.NoError(t, err)

	assert.Equal(3, concepts.Size())
	assert.Equal(4, concepts.NumberOfEdges())

	chain := concepts.AncestorChain(relation.Concept{ID: "bn:album"}, 2)
	require.Len(t, chain, 2)
	assert.Equal("bn:work", chain[0].ID)
	assert.Equal("bn:entity", chain[1].ID)

	assert.True(concepts.IsSuperclass(relation.Concept{ID: "bn:entity"}, relation.Concept{ID: "bn:album"}))
	assert.True(concepts.IsSuperclass(relation.Concept{ID: "bn:medium"}, relation.Concept{ID: "bn:album"}))
	assert.False(concepts.IsSuperclass(relation.Concept{ID: "bn:group"}, relation.Concept{ID: "bn:album"}))

	depth, ok := concepts.DepthOf(relation.Concept{ID: "bn:album"})
	require.True(t, ok)
	assert.Equal(2, depth)
}

func Test_LoadConcepts_BadLine(t *testing.T) {
	assert := assert.New(t)
	_, err := LoadConcepts(strings.NewReader("bn:album\tbn:work\tzero\n"))
	require.Error(t, err)
	var loadErr *ConceptLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(1, loadErr.Line)

	_, err = LoadConcepts(strings.NewReader("bn:album\tbn:work\n"))
	assert.ErrorAs(err, &loadErr)
}
