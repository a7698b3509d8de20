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
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/claudio-db/defIE/definition"
	log "github.com/sirupsen/logrus"
)

// ReadCorpus reads annotated definitions, one per line:
//
//	ID	TEXT	DEPENDENCIES	SENSES
//
// DEPENDENCIES is in the single-row format accepted by ParseSingleRow,
// its terms separated by spaces. SENSES is a space-separated list of
// START_END_SENSE_CONFIDENCE annotations and may be empty. Lines that
// fail to parse are logged and skipped.
func ReadCorpus(r io.Reader) ([]*definition.Definition, error) {
	var defs []*definition.Definition
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		def, err := parseCorpusLine(line)
		if err != nil {
			log.WithFields(log.Fields{
				"line":  lineNo,
				"error": err,
			}).Warn("Skipping unparsable corpus line")
			continue
		}
		defs = append(defs, def)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parser: reading corpus: %v", err)
	}
	return defs, nil
}

func parseCorpusLine(line string) (*definition.Definition, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < 3 {
		return nil, fmt.Errorf("parser: corpus line has %d fields, want at least 3", len(fields))
	}
	deps, err := ParseSingleRow(fields[2])
	if err != nil {
		return nil, err
	}
	def := &definition.Definition{
		ID:           fields[0],
		Text:         fields[1],
		Dependencies: definition.FixDependencies(deps),
	}
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		senses, err := ParseSenses(fields[3])
		if err != nil {
			return nil, err
		}
		def.Senses = senses
	}
	return def, nil
}
