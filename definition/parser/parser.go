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
	"fmt"

	"github.com/claudio-db/defIE/definition"
	"github.com/vektah/goparsify"
)

// ParseSingleRow parses one sentence in the single-row dependency
// format:
//
//	TYPE(SURFACE_LEMMA_POS_INDEX, SURFACE_LEMMA_POS_INDEX)	...
//
// where the first packed token of each term is the head.
func ParseSingleRow(in string) ([]definition.Dependency, error) {
	result, err := parse("dependencies", in, dependencyRow)
	if err != nil {
		return nil, err
	}
	return result.Result.([]definition.Dependency), nil
}

// ParseSenses parses a whitespace-separated list of sense annotations in
// the START_END_SENSE_CONFIDENCE packed format.
func ParseSenses(in string) ([]definition.Disambiguation, error) {
	result, err := parse("senses", in, senseRow)
	if err != nil {
		return nil, err
	}
	return result.Result.([]definition.Disambiguation), nil
}

// parse runs one of the root parsers over the full input. The entire
// input must be consumed.
func parse(typ string, in string, parser goparsify.Parser) (*goparsify.Result, error) {
	state := goparsify.NewState(in)
	result := &goparsify.Result{}
	parser(state, result)
	if state.Errored() {
		return nil, &ParseError{
			ParseType: typ,
			Input:     in,
			Offset:    state.Error.Pos(),
			Details:   state.Error.Error(),
		}
	}
	state.WS(state)
	if unparsed := state.Get(); unparsed != "" {
		return nil, &ParseError{
			ParseType: typ,
			Input:     in,
			Offset:    state.Pos,
			Details:   fmt.Sprintf("unparsed text: '%s'", unparsed),
		}
	}
	return result, nil
}

// ParseError reports where in the input a parse failed.
type ParseError struct {
	// dependencies, senses, etc.
	ParseType string
	// The input string that failed to parse.
	Input string
	// Offset is the byte offset into Input at which the error occurred.
	Offset int
	// The underlying parser error.
	Details string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s at offset %d: %s", e.ParseType, e.Offset, e.Details)
}
