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
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/cheggaaa/pb"
	"github.com/claudio-db/defIE/config"
	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/definition/parser"
	"github.com/claudio-db/defIE/pattern"
	"github.com/claudio-db/defIE/pipeline"
	"github.com/claudio-db/defIE/relation/score"
	"github.com/claudio-db/defIE/taxonomy"
	"github.com/claudio-db/defIE/util/cmp"
	utilerrors "github.com/claudio-db/defIE/util/errors"
	log "github.com/sirupsen/logrus"
)

func extract(ctx context.Context, cfg *config.DefIE, options *options) error {
	defs, err := readCorpus(cfg)
	if err != nil {
		return err
	}
	opts, err := pipelineOptions(cfg)
	if err != nil {
		return err
	}
	result, err := pipeline.Run(ctx, defs, opts)
	if err != nil {
		return err
	}
	ranked, err := score.Rank(result.Relations)
	if err != nil {
		log.WithError(err).Warn("Some relations could not be scored")
	}

	fmtr.Printf("Definitions:     %d\n", len(defs))
	fmtr.Printf("Graphs:          %d\n", len(result.Graphs))
	fmtr.Printf("Patterns:        %d\n", len(result.Patterns))
	fmtr.Printf("Relations:       %d\n", len(result.Relations))
	fmtr.Printf("Taxonomy edges:  %d\n", result.Taxonomy.NumberOfEdges())
	fmt.Println()

	top := cmp.Min(options.Top, len(ranked))
	for i := 0; i < top; i++ {
		fmtr.Printf("%4d. %-60s %s\n", i+1, ranked[i].Relation.String(), ranked[i].Score.VerboseString())
	}

	if options.DumpFile != "" {
		return dumpRelations(options.DumpFile, ranked)
	}
	return nil
}

func dumpTaxonomy(ctx context.Context, cfg *config.DefIE, options *options) error {
	defs, err := readCorpus(cfg)
	if err != nil {
		return err
	}
	opts, err := pipelineOptions(cfg)
	if err != nil {
		return err
	}
	result, err := pipeline.Run(ctx, defs, opts)
	if err != nil {
		return err
	}
	if options.OutFile == "" {
		_, err = result.Taxonomy.WriteTo(os.Stdout)
		return err
	}
	f, err := os.Create(options.OutFile)
	if err != nil {
		return err
	}
	_, err = result.Taxonomy.WriteTo(f)
	err = utilerrors.Any(err, f.Close())
	if err == nil {
		log.WithFields(log.Fields{
			"path":  options.OutFile,
			"edges": result.Taxonomy.NumberOfEdges(),
		}).Info("Wrote relation taxonomy")
	}
	return err
}

// readCorpus reads the definitions file named by the configuration,
// showing byte progress on the terminal.
func readCorpus(cfg *config.DefIE) ([]*definition.Definition, error) {
	f, err := os.Open(cfg.Corpus.Definitions)
	if err != nil {
		return nil, fmt.Errorf("opening corpus: %w", err)
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	bar := pb.New(int(fi.Size())).SetUnits(pb.U_BYTES).Prefix("Reading corpus ")
	bar.Start()
	defs, err := parser.ReadCorpus(bar.NewProxyReader(f))
	bar.Finish()
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"path":        cfg.Corpus.Definitions,
		"definitions": len(defs),
	}).Info("Read corpus")
	return defs, nil
}

func pipelineOptions(cfg *config.DefIE) (pipeline.Options, error) {
	opts := pipeline.Options{
		Workers:       cfg.Pipeline.Workers,
		BatchSize:     cfg.Pipeline.BatchSize,
		HypernymLevel: cfg.Pipeline.HypernymLevel,
		Filter:        filterFrom(cfg.Pipeline.Filters),
	}
	if cfg.Corpus.ConceptTaxonomy != "" {
		concepts, err := taxonomy.OpenConcepts(cfg.Corpus.ConceptTaxonomy)
		if err != nil {
			return pipeline.Options{}, err
		}
		opts.Concepts = concepts
	}
	return opts, nil
}

func filterFrom(f config.Filters) *pattern.Filter {
	var rejectors []pattern.Rejector
	if f.NonNominalArguments {
		rejectors = append(rejectors, pattern.NonNominalArguments)
	}
	if f.StartsWithModifier {
		rejectors = append(rejectors, pattern.StartsWithModifier)
	}
	if f.EndsWithModifier {
		rejectors = append(rejectors, pattern.EndsWithModifier)
	}
	return pattern.NewFilter(rejectors...)
}

func dumpRelations(filename string, ranked []score.Ranked) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	for _, r := range ranked {
		fmt.Fprintf(w, "%s\t%s\n", r.Relation.String(), r.Score.VerboseString())
		for _, ap := range r.Relation.Extractions() {
			fmt.Fprintf(w, "\t%s\n", ap.String())
		}
	}
	err = utilerrors.Any(w.Flush(), f.Close())
	if err == nil {
		log.WithFields(log.Fields{
			"path":      filename,
			"relations": len(ranked),
		}).Info("Wrote scored relations")
	}
	return err
}
