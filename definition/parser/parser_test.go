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

package parser

import (
	"strings"
	"testing"

	"github.com/claudio-db/defIE/definition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseSingleRow(t *testing.T) {
	assert := assert.New(t)
	deps, err := ParseSingleRow("nsubj(city_city_NN_3, Rome_Rome_NNP_0) cop(city_city_NN_3, is_be_VBZ_1)")
	require.NoError(t, err)
	require.Len(t, deps, 2)
	assert.Equal(definition.Dependency{
		Type:      "nsubj",
		Head:      definition.Token{Surface: "city", Lemma: "city", POS: "NN", Index: 3},
		Dependent: definition.Token{Surface: "Rome", Lemma: "Rome", POS: "NNP", Index: 0},
	}, deps[0])
	assert.Equal("cop", deps[1].Type)
	assert.Equal("be", deps[1].Dependent.Lemma)
}

func Test_ParseSingleRow_UnderscoreSurface(t *testing.T) {
	// Multi-word surfaces keep their internal underscores; the lemma,
	// POS and index are always the last three fields.
	deps, err := ParseSingleRow("nsubj(band_band_NN_4, Pink_Floyd_floyd_NNP_0)")
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "Pink_Floyd", deps[0].Dependent.Surface)
	assert.Equal(t, "floyd", deps[0].Dependent.Lemma)
	assert.Equal(t, "NNP", deps[0].Dependent.POS)
	assert.Equal(t, 0, deps[0].Dependent.Index)
}

func Test_ParseSingleRow_Invalid(t *testing.T) {
	assert := assert.New(t)
	_, err := ParseSingleRow("nsubj(city_city_NN_3")
	assert.Error(err)
	var parseErr *ParseError
	assert.ErrorAs(err, &parseErr)
	_, err = ParseSingleRow("nsubj(city_NN, Rome_NNP)")
	assert.Error(err)
}

func Test_ParseSenses(t *testing.T) {
	assert := assert.New(t)
	senses, err := ParseSenses("0_1_bn:03566112n_1.0 3_4_bn:00019439n_0.85")
	require.NoError(t, err)
	require.Len(t, senses, 2)
	assert.Equal(definition.Disambiguation{Start: 0, End: 1, SenseID: "bn:03566112n", Confidence: 1.0}, senses[0])
	assert.Equal("bn:00019439n", senses[1].SenseID)
	assert.Equal(0.85, senses[1].Confidence)
}

func Test_ParseCoNLL(t *testing.T) {
	assert := assert.New(t)
	lines := []string{
		"1\tRome\tRome\tNNP\tNNP\t-\t4\tnsubj",
		"2\tis\tbe\tVBZ\tVBZ\t-\t4\tcop",
		"3\ta\ta\tDT\tDT\t-\t4\tdet",
		"4\tcity\tcity\tNN\tNN\t-\t0\troot",
	}
	deps, err := ParseCoNLL(lines)
	require.NoError(t, err)
	require.Len(t, deps, 4)
	city := definition.Token{Surface: "city", Lemma: "city", POS: "NN", Index: 4}
	assert.Equal(definition.Dependency{
		Type:      "nsubj",
		Head:      city,
		Dependent: definition.Token{Surface: "Rome", Lemma: "Rome", POS: "NNP", Index: 1},
	}, deps[0])
	// The root row attaches to the artificial ROOT token.
	assert.Equal("ROOT", deps[3].Head.Surface)
	assert.Equal(city, deps[3].Dependent)
}

func Test_ParseCoNLL_BadInput(t *testing.T) {
	assert := assert.New(t)
	_, err := ParseCoNLL([]string{"1\tRome"})
	assert.Error(err)
	_, err = ParseCoNLL([]string{"1\tRome\tRome\tNNP\tNNP\t-\t9\tnsubj"})
	assert.Error(err)
}

func Test_ReadCorpus(t *testing.T) {
	assert := assert.New(t)
	corpus := strings.Join([]string{
		"Rome\tRome is a city\tnsubj(city_city_NN_3, Rome_Rome_NNP_0) cop(city_city_NN_3, is_be_VBZ_1) det(city_city_NN_3, a_a_DT_2)\t0_1_bn:03566112n_1.0 3_4_bn:00019439n_0.9",
		"",
		"broken\tbad line\tnsubj(oops",
	}, "\n")
	defs, err := ReadCorpus(strings.NewReader(corpus))
	require.NoError(t, err)
	// The unparsable line is skipped, not fatal.
	require.Len(t, defs, 1)
	def := defs[0]
	assert.Equal("Rome", def.ID)
	assert.True(def.Parsed())
	assert.True(def.Disambiguated())
	// The copular construction is unrolled on load.
	assert.Contains(def.Dependencies, definition.Dependency{
		Type:      "cop",
		Head:      definition.Token{Surface: "is", Lemma: "be", POS: "VBZ", Index: 1},
		Dependent: definition.Token{Surface: "Rome", Lemma: "Rome", POS: "NNP", Index: 0},
	})
}
