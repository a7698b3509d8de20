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

package relation

import (
	"testing"

	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/graph"
	"github.com/claudio-db/defIE/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTaxonomy resolves superclasses through a flat child-to-parent map.
type stubTaxonomy struct {
	parents map[string]Concept
}

func (s stubTaxonomy) AncestorChain(c Concept, level int) []Concept {
	var chain []Concept
	current := c
	for i := 0; i < level; i++ {
		parent, ok := s.parents[current.ID]
		if !ok {
			break
		}
		chain = append(chain, parent)
		current = parent
	}
	return chain
}

func (s stubTaxonomy) IsSuperclass(super, c Concept) bool {
	current := c
	for {
		parent, ok := s.parents[current.ID]
		if !ok {
			return false
		}
		if parent.Equal(super) {
			return true
		}
		current = parent
	}
}

// mkDefinition builds "<x> is an <noun> by <y>" with the three content
// words disambiguated.
func mkDefinition(id, noun, xSense, ySense string) *definition.Definition {
	tokX := definition.Token{Surface: "Something", Lemma: "something", POS: "NNP", Index: 0}
	tokIs := definition.Token{Surface: "is", Lemma: "be", POS: "VBZ", Index: 1}
	tokAn := definition.Token{Surface: "an", Lemma: "a", POS: "DT", Index: 2}
	tokNoun := definition.Token{Surface: noun, Lemma: noun, POS: "NN", Index: 3}
	tokY := definition.Token{Surface: "Someone", Lemma: "someone", POS: "NNP", Index: 5}
	return &definition.Definition{
		ID:   id,
		Text: "Something is an " + noun + " by Someone",
		Dependencies: []definition.Dependency{
			{Type: "cop", Head: tokIs, Dependent: tokX},
			{Type: "nsubj", Head: tokNoun, Dependent: tokIs},
			{Type: "det", Head: tokNoun, Dependent: tokAn},
			{Type: "prep_by", Head: tokNoun, Dependent: tokY},
		},
		Senses: []definition.Disambiguation{
			{Start: 0, End: 1, SenseID: xSense, Confidence: 0.9},
			{Start: 3, End: 4, SenseID: "bn:" + noun, Confidence: 0.8},
			{Start: 5, End: 6, SenseID: ySense, Confidence: 0.7},
		},
	}
}

func minePattern(t *testing.T, def *definition.Definition) *pattern.Pattern {
	g := graph.NewDependencyGraph(def)
	ssg, errs := graph.BuildFrom(g, graph.MatchNodesWithSenses(g, def.Senses))
	require.Empty(t, errs)
	semantic := ssg.SemanticNodes()
	require.Len(t, semantic, 3)
	path, ok := ssg.ShortestPath(semantic[0], semantic[2])
	require.True(t, ok)
	p, err := pattern.New(path, def)
	require.NoError(t, err)
	return p
}

func Test_FromPatterns_Empty(t *testing.T) {
	_, err := FromPatterns(nil, 1, nil)
	assert.ErrorIs(t, err, ErrNoPatterns)
}

func Test_FromPatterns_Group(t *testing.T) {
	assert := assert.New(t)
	patterns := []*pattern.Pattern{
		minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd")),
		minePattern(t, mkDefinition("d2", "album", "bn:abbey_road", "bn:beatles")),
	}
	r, err := FromPatterns(patterns, 1, nil)
	require.NoError(t, err)

	assert.Equal("X be bn:album Y", r.Signature())
	assert.Equal(2, r.Frequency())
	assert.Equal("bn:dark_side", r.Extractions()[0].Domain.ID)
	assert.Equal("bn:beatles", r.Extractions()[1].Range.ID)
	assert.InDelta(0.9*0.7, r.Extractions()[0].Confidence, 1e-9)
}

func Test_FromPatterns_DropsMismatched(t *testing.T) {
	assert := assert.New(t)
	patterns := []*pattern.Pattern{
		minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd")),
		minePattern(t, mkDefinition("d2", "song", "bn:money", "bn:pink_floyd")),
	}
	r, err := FromPatterns(patterns, 1, nil)
	require.Error(t, err)
	var inconsistent *InconsistentGroupError
	require.ErrorAs(t, err, &inconsistent)
	assert.Equal("X be bn:song Y", inconsistent.Pattern.Lemmatized())

	// The relation is still built from the consistent patterns.
	assert.Equal(1, r.Frequency())
	assert.Equal("X be bn:album Y", r.Signature())
}

func Test_FromPatterns_NonSemanticArguments(t *testing.T) {
	assert := assert.New(t)
	wordA := graph.NewWord(definition.Token{Surface: "A", Lemma: "A", POS: "NN", Index: 0})
	wordIs := graph.NewWord(definition.Token{Surface: "is", Lemma: "be", POS: "VBZ", Index: 1})
	wordB := graph.NewWord(definition.Token{Surface: "B", Lemma: "B", POS: "NN", Index: 2})
	path := graph.Path{
		Start: wordA,
		End:   wordB,
		Edges: []graph.Edge{
			{Type: "cop", Source: wordIs, Target: wordA},
			{Type: "nsubj", Source: wordB, Target: wordIs},
		},
	}
	p, err := pattern.New(path, &definition.Definition{ID: "t"})
	require.NoError(t, err)

	r, err := FromPatterns([]*pattern.Pattern{p}, 1, nil)
	require.Error(t, err)
	var inconsistent *InconsistentGroupError
	assert.ErrorAs(err, &inconsistent)
	assert.Equal(0, r.Frequency())

	_, err = r.DomainTypes()
	assert.ErrorIs(err, ErrEmptyRelation)
	_, err = r.RangeTypes()
	assert.ErrorIs(err, ErrEmptyRelation)
}

func Test_AddArgumentPair_Dedup(t *testing.T) {
	assert := assert.New(t)
	p := minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd"))
	r := New(p, 1, nil)

	ap := ArgumentPair{
		Domain:     Concept{ID: "bn:dark_side", Lex: "dark side"},
		Range:      Concept{ID: "bn:pink_floyd", Lex: "pink floyd"},
		Confidence: 0.63,
	}
	r.AddArgumentPair(ap)
	r.AddArgumentPair(ap)
	assert.Equal(1, r.Frequency())

	// A different range concept is a new extraction.
	other := ap
	other.Range = Concept{ID: "bn:beatles", Lex: "beatles"}
	r.AddArgumentPair(other)
	assert.Equal(2, r.Frequency())
}

func Test_TypeDistributions(t *testing.T) {
	assert := assert.New(t)
	taxo := stubTaxonomy{parents: map[string]Concept{
		"bn:dark_side":  {ID: "bn:album", Lex: "album"},
		"bn:abbey_road": {ID: "bn:album", Lex: "album"},
		"bn:album":      {ID: "bn:work", Lex: "work"},
		"bn:pink_floyd": {ID: "bn:band", Lex: "band"},
		"bn:beatles":    {ID: "bn:band", Lex: "band"},
	}}
	patterns := []*pattern.Pattern{
		minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd")),
		minePattern(t, mkDefinition("d2", "album", "bn:abbey_road", "bn:beatles")),
	}
	r, err := FromPatterns(patterns, 1, taxo)
	require.NoError(t, err)

	domain, err := r.DomainTypes()
	require.NoError(t, err)
	assert.Equal(1, domain.Size())
	assert.InDelta(1.0, domain.ProbabilityOf(Concept{ID: "bn:album", Lex: "album"}), 1e-9)

	rng, err := r.RangeTypes()
	require.NoError(t, err)
	top, ok := rng.ArgMax()
	require.True(t, ok)
	assert.Equal("bn:band", top.ID)
}

func Test_SetHypernymLevel(t *testing.T) {
	assert := assert.New(t)
	taxo := stubTaxonomy{parents: map[string]Concept{
		"bn:dark_side": {ID: "bn:album", Lex: "album"},
		"bn:album":     {ID: "bn:work", Lex: "work"},
	}}
	p := minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd"))
	r, err := FromPatterns([]*pattern.Pattern{p}, 0, taxo)
	require.NoError(t, err)

	// Level zero keeps the concepts themselves.
	domain, err := r.DomainTypes()
	require.NoError(t, err)
	top, ok := domain.ArgMax()
	require.True(t, ok)
	assert.Equal("bn:dark_side", top.ID)

	r.SetHypernymLevel(2)
	assert.Equal(2, r.HypernymLevel())
	domain, err = r.DomainTypes()
	require.NoError(t, err)
	top, ok = domain.ArgMax()
	require.True(t, ok)
	assert.Equal("bn:work", top.ID)

	// The range concept has no ancestors and types as itself.
	rng, err := r.RangeTypes()
	require.NoError(t, err)
	top, ok = rng.ArgMax()
	require.True(t, ok)
	assert.Equal("bn:pink_floyd", top.ID)
}

func Test_Relation_String(t *testing.T) {
	assert := assert.New(t)
	taxo := stubTaxonomy{parents: map[string]Concept{
		"bn:dark_side":  {ID: "bn:album", Lex: "album"},
		"bn:pink_floyd": {ID: "bn:band", Lex: "band"},
	}}
	p := minePattern(t, mkDefinition("d1", "album", "bn:dark_side", "bn:pink_floyd"))
	r, err := FromPatterns([]*pattern.Pattern{p}, 1, taxo)
	require.NoError(t, err)
	assert.Equal("<album_bn:album> is bn:album <band_bn:band>", r.String())

	// Without extractions the placeholders stay.
	empty := New(p, 1, taxo)
	assert.Equal("X is bn:album Y", empty.String())
}
