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

package graph

import (
	"strings"
	"testing"

	"github.com/claudio-db/defIE/definition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_BuildFrom_SingleTokenSpans(t *testing.T) {
	assert := assert.New(t)
	def := romeDefinition()
	g := NewDependencyGraph(def)
	ssg, errs := BuildFrom(g, MatchNodesWithSenses(g, def.Senses))
	assert.Empty(errs)

	semantic := ssg.SemanticNodes()
	require.Len(t, semantic, 2)
	assert.Equal("bn:Rome", semantic[0].Sense())
	assert.Equal("bn:city", semantic[1].Sense())

	// The two word vertices survive, the semantic ones replace Rome and
	// city in every edge.
	assert.Len(ssg.Nodes(), 4)
	assert.Len(ssg.Edges(), 3)
	path, ok := ssg.ShortestPath(semantic[0], semantic[1])
	require.True(t, ok)
	assert.Equal(2, path.Length())
}

func Test_BuildFrom_MultiTokenSpan(t *testing.T) {
	assert := assert.New(t)
	// "X is a rock band": the disambiguation covers "rock band" and both
	// vertices collapse into one semantic node.
	tokX := definition.Token{Surface: "X", Lemma: "X", POS: "NNP", Index: 0}
	def := &definition.Definition{
		ID:   "X",
		Text: "X is a rock band",
		Dependencies: []definition.Dependency{
			{Type: "cop", Head: tokIs, Dependent: tokX},
			{Type: "nsubj", Head: tokBand, Dependent: tokIs},
			{Type: "det", Head: tokBand, Dependent: definition.Token{Surface: "a", Lemma: "a", POS: "DT", Index: 2}},
			{Type: "nn", Head: tokBand, Dependent: tokRock},
		},
		Senses: []definition.Disambiguation{
			{Start: 0, End: 1, SenseID: "bn:X", Confidence: 1.0},
			bandSense,
		},
	}
	g := NewDependencyGraph(def)
	ssg, errs := BuildFrom(g, MatchNodesWithSenses(g, def.Senses))
	assert.Empty(errs)

	semantic := ssg.SemanticNodes()
	require.Len(t, semantic, 2)
	band := semantic[1]
	assert.Equal("bn:rock_band", band.Sense())
	assert.Equal("rock band", band.TextFragment(false))
	assert.Equal(tokBand, band.Token())
	// The nn edge moved inside the span's subgraph.
	assert.Len(band.Subgraph().Edges(), 1)
	for _, e := range ssg.Edges() {
		assert.NotEqual("nn", e.Type)
	}
}

func Test_MatchNodesWithSenses_LongestSpanWins(t *testing.T) {
	assert := assert.New(t)
	def := &definition.Definition{
		ID: "overlap",
		Dependencies: []definition.Dependency{
			{Type: "nn", Head: tokBand, Dependent: tokRock},
		},
	}
	g := NewDependencyGraph(def)
	short := definition.Disambiguation{Start: 4, End: 5, SenseID: "bn:rock", Confidence: 1.0}
	matched := MatchNodesWithSenses(g, []definition.Disambiguation{short, bandSense})
	assert.Equal(bandSense, matched[NewWord(tokRock)])
	assert.Equal(bandSense, matched[NewWord(tokBand)])
}

func Test_MatchNodesWithSenses_NoMatch(t *testing.T) {
	def := romeDefinition()
	g := NewDependencyGraph(def)
	matched := MatchNodesWithSenses(g, nil)
	assert.Empty(t, matched)
}

func Test_BuildFrom_UnknownNodeSkipped(t *testing.T) {
	assert := assert.New(t)
	def := romeDefinition()
	g := NewDependencyGraph(def)
	outside := NewWord(definition.Token{Surface: "Paris", Lemma: "Paris", POS: "NNP", Index: 9})
	senseMap := MatchNodesWithSenses(g, def.Senses)
	senseMap[outside] = definition.Disambiguation{Start: 9, End: 10, SenseID: "bn:Paris"}

	ssg, errs := BuildFrom(g, senseMap)
	assert.Empty(errs)
	assert.Len(ssg.SemanticNodes(), 2)
}

func Test_WriteDot(t *testing.T) {
	assert := assert.New(t)
	def := romeDefinition()
	g := NewDependencyGraph(def)
	ssg, _ := BuildFrom(g, MatchNodesWithSenses(g, def.Senses))

	var sb strings.Builder
	ssg.WriteDot(&sb)
	out := sb.String()
	assert.Contains(out, "graph {")
	assert.Contains(out, "bn:Rome")
	assert.Contains(out, "shape=box")
	assert.Contains(out, "--")
}
