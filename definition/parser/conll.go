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
	"sort"
	"strconv"
	"strings"

	"github.com/claudio-db/defIE/definition"
)

// ParseCoNLL parses one sentence in the CoNLL token-per-line format:
//
//	INDEX	TOKEN	LEMMA	POS	POS_UD	-	HEAD_INDEX	TYPE
//
// INDEX is one-based; a HEAD_INDEX of 0 attaches the token to the
// artificial root. The dependency on each line is TYPE(HEAD, TOKEN).
func ParseCoNLL(lines []string) ([]definition.Dependency, error) {
	type row struct {
		index     int
		headIndex int
		depType   string
	}
	tokens := make([]definition.Token, 0, len(lines))
	rows := make([]row, 0, len(lines))
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) < 8 {
			return nil, fmt.Errorf("parser: CoNLL line has %d fields, want 8: %q", len(fields), line)
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("parser: bad CoNLL token index %q: %v", fields[0], err)
		}
		headIndex, err := strconv.Atoi(fields[6])
		if err != nil {
			return nil, fmt.Errorf("parser: bad CoNLL head index %q: %v", fields[6], err)
		}
		tokens = append(tokens, definition.Token{
			Surface: fields[1],
			Lemma:   fields[2],
			POS:     fields[4],
			Index:   index,
		})
		rows = append(rows, row{index: index, headIndex: headIndex, depType: fields[7]})
	}
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Less(tokens[j])
	})

	root := definition.Token{Surface: "ROOT", Lemma: "ROOT"}
	lookup := func(oneBased int) (definition.Token, error) {
		if oneBased == 0 {
			return root, nil
		}
		if oneBased < 1 || oneBased > len(tokens) {
			return definition.Token{}, fmt.Errorf("parser: CoNLL head index %d out of range", oneBased)
		}
		return tokens[oneBased-1], nil
	}

	deps := make([]definition.Dependency, 0, len(rows))
	for _, r := range rows {
		head, err := lookup(r.headIndex)
		if err != nil {
			return nil, err
		}
		dependent, err := lookup(r.index)
		if err != nil {
			return nil, err
		}
		deps = append(deps, definition.Dependency{Type: r.depType, Head: head, Dependent: dependent})
	}
	return deps, nil
}
