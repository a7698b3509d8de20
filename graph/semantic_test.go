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
	"testing"

	"github.com/claudio-db/defIE/definition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tokRock = definition.Token{Surface: "rock", Lemma: "rock", POS: "NN", Index: 4}
	tokBand = definition.Token{Surface: "band", Lemma: "band", POS: "NN", Index: 5}

	bandSense = definition.Disambiguation{Start: 4, End: 6, SenseID: "bn:rock_band", Confidence: 0.95}
)

func Test_Merge_NewHead(t *testing.T) {
	assert := assert.New(t)
	sn := NewSemanticNode(tokRock, bandSense)

	// "band" heads the nn edge into the absorbed "rock", so it becomes
	// the new head of the semantic node.
	err := sn.Merge(NewWord(tokBand), Edge{Type: "nn", Source: NewWord(tokBand), Target: NewWord(tokRock)})
	require.NoError(t, err)
	assert.Equal(tokBand, sn.Token())
	assert.Len(sn.Subgraph().Nodes(), 2)
	assert.Len(sn.Subgraph().Edges(), 1)
	assert.Equal("rock band", sn.TextFragment(false))
}

func Test_Merge_Dependent(t *testing.T) {
	assert := assert.New(t)
	sn := NewSemanticNode(tokBand, bandSense)

	// "rock" is the dependent of the absorbed head, which stays head.
	err := sn.Merge(NewWord(tokRock), Edge{Type: "nn", Source: NewWord(tokBand), Target: NewWord(tokRock)})
	require.NoError(t, err)
	assert.Equal(tokBand, sn.Token())
	assert.Len(sn.Subgraph().Nodes(), 2)
	assert.Len(sn.Subgraph().Edges(), 1)
}

func Test_Merge_Disconnected(t *testing.T) {
	assert := assert.New(t)
	sn := NewSemanticNode(tokBand, bandSense)

	// An empty-typed self edge marks an absorption with no connection:
	// the vertex joins the subgraph without an edge and the head stays.
	word := NewWord(tokRock)
	err := sn.Merge(word, Edge{Type: "", Source: word, Target: word})
	require.NoError(t, err)
	assert.Equal(tokBand, sn.Token())
	assert.Len(sn.Subgraph().Nodes(), 2)
	assert.Empty(sn.Subgraph().Edges())
}

func Test_Merge_SenseMismatch(t *testing.T) {
	assert := assert.New(t)
	sn := NewSemanticNode(tokBand, bandSense)
	other := NewSemanticNode(tokRock, definition.Disambiguation{Start: 4, End: 5, SenseID: "bn:rock", Confidence: 0.5})

	err := sn.Merge(other, Edge{Type: "nn", Source: NewWord(tokBand), Target: NewWord(tokRock)})
	require.Error(t, err)
	var conflict *MergeConflictError
	assert.ErrorAs(err, &conflict)
	assert.Equal(sn, conflict.Node)
	// Nothing was absorbed.
	assert.Len(sn.Subgraph().Nodes(), 1)
}

func Test_Merge_AbsorbsSemanticNodeSubgraph(t *testing.T) {
	assert := assert.New(t)
	sn := NewSemanticNode(tokBand, bandSense)
	same := NewSemanticNode(tokRock, bandSense)

	word := NewWord(tokRock)
	err := sn.Merge(same, Edge{Type: "", Source: same, Target: same})
	require.NoError(t, err)
	assert.True(sn.Subgraph().HasNode(word))
}

func Test_TextFragment_Lemmatized(t *testing.T) {
	sn := NewSemanticNode(tokRock, bandSense)
	require.NoError(t, sn.Merge(NewWord(tokBand), Edge{Type: "nn", Source: NewWord(tokBand), Target: NewWord(tokRock)}))
	assert.Equal(t, "rock band", sn.TextFragment(true))
	assert.Equal(t, "bn:rock_band", sn.String())
}
