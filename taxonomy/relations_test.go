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

	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/graph"
	"github.com/claudio-db/defIE/pattern"
	"github.com/claudio-db/defIE/relation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkRelation mines "Something is a <noun> by Someone" into a one-pattern
// relation.
func mkRelation(t *testing.T, noun string) *relation.Relation {
	tokX := definition.Token{Surface: "Something", Lemma: "something", POS: "NNP", Index: 0}
	tokIs := definition.Token{Surface: "is", Lemma: "be", POS: "VBZ", Index: 1}
	tokA := definition.Token{Surface: "a", Lemma: "a", POS: "DT", Index: 2}
	tokNoun := definition.Token{Surface: noun, Lemma: noun, POS: "NN", Index: 3}
	tokY := definition.Token{Surface: "Someone", Lemma: "someone", POS: "NNP", Index: 5}
	def := &definition.Definition{
		ID:   noun,
		Text: "Something is a " + noun + " by Someone",
		Dependencies: []definition.Dependency{
			{Type: "cop", Head: tokIs, Dependent: tokX},
			{Type: "nsubj", Head: tokNoun, Dependent: tokIs},
			{Type: "det", Head: tokNoun, Dependent: tokA},
			{Type: "prep_by", Head: tokNoun, Dependent: tokY},
		},
		Senses: []definition.Disambiguation{
			{Start: 0, End: 1, SenseID: "bn:x_" + noun, Confidence: 0.9},
			{Start: 3, End: 4, SenseID: "bn:" + noun, Confidence: 0.8},
			{Start: 5, End: 6, SenseID: "bn:y_" + noun, Confidence: 0.7},
		},
	}
	g := graph.NewDependencyGraph(def)
	ssg, errs := graph.BuildFrom(g, graph.MatchNodesWithSenses(g, def.Senses))
	require.Empty(t, errs)
	semantic := ssg.SemanticNodes()
	require.Len(t, semantic, 3)
	path, ok := ssg.ShortestPath(semantic[0], semantic[2])
	require.True(t, ok)
	p, err := pattern.New(path, def)
	require.NoError(t, err)
	r, err := relation.FromPatterns([]*pattern.Pattern{p}, 1, nil)
	require.NoError(t, err)
	return r
}

func Test_Relations_Taxonomy(t *testing.T) {
	assert := assert.New(t)
	album := mkRelation(t, "album")
	song := mkRelation(t, "song")
	work := mkRelation(t, "work")

	rt := NewRelations()
	rt.AddEdge(album, work, Hypernym)
	rt.AddEdge(song, work, Hypernym)

	assert.Equal(2, rt.Size())
	assert.Equal(2, rt.NumberOfEdges())

	supers := rt.Superclasses(album)
	require.Len(t, supers, 1)
	assert.Same(work, supers[0])

	primary, ok := rt.Superclass(song)
	require.True(t, ok)
	assert.Same(work, primary)
	_, ok = rt.Superclass(work)
	assert.False(ok)

	assert.True(rt.HasSuperclass(album, work))
	assert.False(rt.HasSuperclass(work, album))

	roots := rt.Roots()
	require.Len(t, roots, 1)
	assert.Same(work, roots[0])

	resolved, ok := rt.Relation(album.Signature())
	require.True(t, ok)
	assert.Same(album, resolved)
}

func Test_Relations_EdgeRanking(t *testing.T) {
	assert := assert.New(t)
	album := mkRelation(t, "album")
	work := mkRelation(t, "work")
	record := mkRelation(t, "record")

	rt := NewRelations()
	rt.AddEdge(album, record, Substring)
	rt.AddEdge(album, work, Hypernym)

	// The hypernym edge outranks the substring edge.
	supers := rt.Superclasses(album)
	require.Len(t, supers, 2)
	assert.Same(work, supers[0])
	assert.Same(record, supers[1])
}

func Test_Relations_WriteTo(t *testing.T) {
	assert := assert.New(t)
	album := mkRelation(t, "album")
	work := mkRelation(t, "work")

	rt := NewRelations()
	rt.AddEdge(album, work, Hypernym)

	var sb strings.Builder
	_, err := rt.WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(album.Signature()+"\t"+work.Signature()+"\tHYPERNYM\n", sb.String())
}
