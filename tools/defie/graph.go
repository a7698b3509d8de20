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

package main

import (
	"fmt"
	"os"

	"github.com/claudio-db/defIE/config"
	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/graph"
	log "github.com/sirupsen/logrus"
)

// renderGraph builds the syntactic-semantic graph of one definition and
// writes it as a Graphviz spec on stdout, or as an image when a filename
// is given.
func renderGraph(cfg *config.DefIE, options *options) error {
	defs, err := readCorpus(cfg)
	if err != nil {
		return err
	}
	def := findDefinition(defs, options.DefinitionID)
	if def == nil {
		return fmt.Errorf("definition %q not found in corpus", options.DefinitionID)
	}
	if !def.Parsed() || !def.Disambiguated() {
		return fmt.Errorf("definition %q carries no dependencies or no disambiguations", def.ID)
	}
	g := graph.NewDependencyGraph(def)
	ssg, merges := graph.BuildFrom(g, graph.MatchNodesWithSenses(g, def.Senses))
	for _, mergeErr := range merges {
		log.WithFields(log.Fields{
			"definition": def.ID,
			"error":      mergeErr,
		}).Warn("Merge conflict while building graph")
	}
	if options.Filename == "" {
		ssg.WriteDot(os.Stdout)
		return nil
	}
	if err := ssg.CreateImage(options.Filename); err != nil {
		return err
	}
	log.WithField("path", options.Filename).Info("Wrote graph image")
	return nil
}

func findDefinition(defs []*definition.Definition, id string) *definition.Definition {
	for _, def := range defs {
		if def.ID == id {
			return def
		}
	}
	return nil
}
