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

// Package parser reads the two corpus formats produced by the upstream
// annotation pipeline: single-row Stanford-style dependency lists and
// CoNLL token-per-line blocks.
package parser

import (
	"strconv"
	"strings"

	"github.com/claudio-db/defIE/definition"
	p "github.com/vektah/goparsify"
)

var (
	// dependencyRow is the parser function called by ParseSingleRow. It
	// extracts a whole sentence worth of typed dependencies, one
	// TYPE(TOKEN, TOKEN) term per dependency.
	dependencyRow p.Parser
	// senseRow is the parser function called by ParseSenses. It extracts
	// a list of START_END_SENSE_CONFIDENCE annotations.
	senseRow p.Parser
)

func init() {
	// dependency type, e.g. nsubj, prep_of, ncmod
	depType := p.Chars("a-zA-Z0-9_:", 1)

	// SURFACE_LEMMA_POS_INDEX packed token
	token := packedToken()

	dep := p.Seq(depType, "(", p.Cut(), token, ",", token, ")").Map(func(n *p.Result) {
		n.Result = definition.Dependency{
			Type:      n.Child[0].Token,
			Head:      n.Child[3].Result.(definition.Token),
			Dependent: n.Child[5].Result.(definition.Token),
		}
	})
	dependencyRow = p.Many(dep).Map(func(n *p.Result) {
		deps := make([]definition.Dependency, 0, len(n.Child))
		for _, c := range n.Child {
			deps = append(deps, c.Result.(definition.Dependency))
		}
		n.Result = deps
	})

	sense := packedSense()
	senseRow = p.Many(sense).Map(func(n *p.Result) {
		senses := make([]definition.Disambiguation, 0, len(n.Child))
		for _, c := range n.Child {
			senses = append(senses, c.Result.(definition.Disambiguation))
		}
		n.Result = senses
	})
}

// packedToken parses a SURFACE_LEMMA_POS_INDEX sequence into a Token.
// The packed form ends at the ',' or ')' that closes the enclosing
// dependency term.
func packedToken() p.Parser {
	return p.NewParser("token", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		maxPos := ps.Pos
		input := ps.Input
		for maxPos < len(input) && input[maxPos] != ',' && input[maxPos] != ')' && input[maxPos] != '\t' && input[maxPos] != '\n' {
			maxPos++
		}
		fields := strings.Split(input[ps.Pos:maxPos], "_")
		if len(fields) < 4 {
			ps.ErrorHere("SURFACE_LEMMA_POS_INDEX")
			return
		}
		index, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
		if err != nil {
			ps.ErrorHere("token index")
			return
		}
		node.Result = definition.Token{
			Surface: strings.Join(fields[:len(fields)-3], "_"),
			Lemma:   fields[len(fields)-3],
			POS:     fields[len(fields)-2],
			Index:   index,
		}
		ps.Pos = maxPos
	})
}

// packedSense parses a START_END_SENSE_CONFIDENCE sequence into a
// Disambiguation. Sense identifiers may themselves contain underscores,
// so the numeric fields are taken from the outside in.
func packedSense() p.Parser {
	return p.NewParser("sense", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		maxPos := ps.Pos
		input := ps.Input
		for maxPos < len(input) && input[maxPos] != ' ' && input[maxPos] != '\t' && input[maxPos] != '\n' {
			maxPos++
		}
		fields := strings.Split(input[ps.Pos:maxPos], "_")
		if len(fields) < 4 {
			ps.ErrorHere("START_END_SENSE_CONFIDENCE")
			return
		}
		start, err1 := strconv.Atoi(fields[0])
		end, err2 := strconv.Atoi(fields[1])
		confidence, err3 := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err1 != nil || err2 != nil || err3 != nil {
			ps.ErrorHere("START_END_SENSE_CONFIDENCE")
			return
		}
		node.Result = definition.Disambiguation{
			Start:      start,
			End:        end,
			SenseID:    strings.Join(fields[2:len(fields)-1], "_"),
			Confidence: confidence,
		}
		ps.Pos = maxPos
	})
}
