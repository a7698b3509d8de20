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

// Package pipeline drives the full extraction over a corpus: definitions
// become syntactic-semantic graphs, graphs yield patterns, patterns
// aggregate into relations, and relations are arranged into a taxonomy.
// Per-item failures are logged and skipped; only context cancellation
// aborts a run.
package pipeline

import (
	"context"
	"errors"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/claudio-db/defIE/definition"
	"github.com/claudio-db/defIE/graph"
	"github.com/claudio-db/defIE/pattern"
	"github.com/claudio-db/defIE/relation"
	"github.com/claudio-db/defIE/taxonomy"
	"github.com/claudio-db/defIE/taxonomy/generalize"
	"github.com/claudio-db/defIE/util/cmp"
	"github.com/claudio-db/defIE/util/parallel"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// Options tune a pipeline run. The zero value picks sensible defaults.
type Options struct {
	// Workers is the number of concurrent workers per stage.
	Workers int
	// BatchSize is the number of definitions per work batch.
	BatchSize int
	// HypernymLevel is the number of superclass hops when typing
	// relation arguments.
	HypernymLevel int
	// Filter rejects unwanted patterns. Nil installs the standard
	// pipeline: nominal arguments only, no modifier edges at either end.
	Filter *pattern.Filter
	// Concepts types relation arguments and powers hypernym
	// generalization. May be nil.
	Concepts relation.ConceptTaxonomy
	// Generalizers build the relation taxonomy, ranked by reliability.
	// Nil installs hypernym (when Concepts is set) then substring.
	Generalizers []generalize.Generalizer
}

func (o Options) withDefaults() Options {
	if o.Workers < 1 {
		o.Workers = 4
	}
	if o.BatchSize < 1 {
		o.BatchSize = 64
	}
	if o.Filter == nil {
		o.Filter = pattern.NewFilter(
			pattern.NonNominalArguments,
			pattern.StartsWithModifier,
			pattern.EndsWithModifier,
		)
	}
	if o.Generalizers == nil {
		if o.Concepts != nil {
			o.Generalizers = append(o.Generalizers, generalize.NewHypernym(o.Concepts))
		}
		o.Generalizers = append(o.Generalizers, generalize.Substring{})
	}
	return o
}

// Result is the outcome of a full pipeline run.
type Result struct {
	Graphs    []*graph.SynSemGraph
	Patterns  []*pattern.Pattern
	Relations []*relation.Relation
	Taxonomy  *taxonomy.Relations
}

// Run executes all four stages over the given definitions.
func Run(ctx context.Context, defs []*definition.Definition, opts Options) (*Result, error) {
	opts = opts.withDefaults()

	graphs, err := BuildGraphs(ctx, defs, opts)
	if err != nil {
		return nil, err
	}
	groups, patterns, err := ExtractPatterns(ctx, graphs, opts)
	if err != nil {
		return nil, err
	}
	relations, err := BuildRelations(ctx, groups, opts)
	if err != nil {
		return nil, err
	}
	return &Result{
		Graphs:    graphs,
		Patterns:  patterns,
		Relations: relations,
		Taxonomy:  InduceTaxonomy(ctx, relations, opts),
	}, nil
}

// BuildGraphs turns definitions into syntactic-semantic graphs in
// parallel batches. Definitions without dependencies or disambiguations
// are skipped; merge conflicts are logged and leave the affected vertex
// unmerged.
func BuildGraphs(ctx context.Context, defs []*definition.Definition, opts Options) ([]*graph.SynSemGraph, error) {
	opts = opts.withDefaults()
	span, ctx := opentracing.StartSpanFromContext(ctx, "BuildGraphs")
	defer span.Finish()
	timer := prometheus.NewTimer(metrics.stageSeconds.WithLabelValues("build_graphs"))
	defer timer.ObserveDuration()

	batches := parallel.Batches(len(defs), opts.BatchSize)
	results := make([][]*graph.SynSemGraph, len(batches))
	err := forEachStrided(ctx, opts.Workers, len(batches), func(ctx context.Context, i int) error {
		b := batches[i]
		out := make([]*graph.SynSemGraph, 0, b.End-b.Start)
		for _, def := range defs[b.Start:b.End] {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !def.Parsed() || !def.Disambiguated() {
				metrics.definitionsSkipped.Inc()
				log.WithField("definition", def.ID).Debug("Skipping unprocessed definition")
				continue
			}
			g := graph.NewDependencyGraph(def)
			ssg, merges := graph.BuildFrom(g, graph.MatchNodesWithSenses(g, def.Senses))
			for _, mergeErr := range merges {
				metrics.mergeConflicts.Inc()
				log.WithFields(log.Fields{
					"definition": def.ID,
					"error":      mergeErr,
				}).Warn("Merge conflict while building graph")
			}
			out = append(out, ssg)
			metrics.definitionsProcessed.Inc()
		}
		results[i] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	var graphs []*graph.SynSemGraph
	for _, batch := range results {
		graphs = append(graphs, batch...)
	}
	span.SetTag("graphs", len(graphs))
	return graphs, nil
}

// ExtractPatterns mines and filters the patterns of every graph, then
// groups them by their argument-free surface signature. Grouping is
// sharded across workers by signature hash; each shard owns a disjoint
// signature range, so the maps merge without locking.
func ExtractPatterns(ctx context.Context, graphs []*graph.SynSemGraph, opts Options) (map[string][]*pattern.Pattern, []*pattern.Pattern, error) {
	opts = opts.withDefaults()
	span, ctx := opentracing.StartSpanFromContext(ctx, "ExtractPatterns")
	defer span.Finish()
	timer := prometheus.NewTimer(metrics.stageSeconds.WithLabelValues("extract_patterns"))
	defer timer.ObserveDuration()

	mined := make([][]*pattern.Pattern, len(graphs))
	err := forEachStrided(ctx, opts.Workers, len(graphs), func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		patterns := pattern.NewIdentifier(graphs[i], opts.Filter).Patterns()
		metrics.patternsMined.Add(float64(len(patterns)))
		mined[i] = patterns
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	// Barrier passed: every pattern is mined. Shard the group merge.
	shards := make([]map[string][]*pattern.Pattern, opts.Workers)
	err = parallel.InvokeN(ctx, opts.Workers, func(ctx context.Context, w int) error {
		groups := map[string][]*pattern.Pattern{}
		for _, patterns := range mined {
			for _, p := range patterns {
				sig := p.String()
				if int(xxhash.Sum64String(sig)%uint64(opts.Workers)) != w {
					continue
				}
				groups[sig] = append(groups[sig], p)
			}
		}
		shards[w] = groups
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	groups := map[string][]*pattern.Pattern{}
	var all []*pattern.Pattern
	for _, shard := range shards {
		for sig, patterns := range shard {
			groups[sig] = patterns
		}
	}
	for _, patterns := range mined {
		all = append(all, patterns...)
	}
	span.SetTag("patterns", len(all))
	span.SetTag("groups", len(groups))
	return groups, all, nil
}

// BuildRelations regroups the patterns by lemmatized signature and
// aggregates each group into a relation. Groups with inconsistent
// members lose those members; empty groups are skipped. The result is
// sorted by signature.
func BuildRelations(ctx context.Context, groups map[string][]*pattern.Pattern, opts Options) ([]*relation.Relation, error) {
	opts = opts.withDefaults()
	span, ctx := opentracing.StartSpanFromContext(ctx, "BuildRelations")
	defer span.Finish()
	timer := prometheus.NewTimer(metrics.stageSeconds.WithLabelValues("build_relations"))
	defer timer.ObserveDuration()

	surfaceSigs := make([]string, 0, len(groups))
	for sig := range groups {
		surfaceSigs = append(surfaceSigs, sig)
	}
	sort.Strings(surfaceSigs)

	lemmaGroups := map[string][]*pattern.Pattern{}
	var lemmaSigs []string
	for _, sig := range surfaceSigs {
		for _, p := range groups[sig] {
			lemma := p.Lemmatized()
			if _, ok := lemmaGroups[lemma]; !ok {
				lemmaSigs = append(lemmaSigs, lemma)
			}
			lemmaGroups[lemma] = append(lemmaGroups[lemma], p)
		}
	}

	built := make([]*relation.Relation, len(lemmaSigs))
	err := forEachStrided(ctx, opts.Workers, len(lemmaSigs), func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := relation.FromPatterns(lemmaGroups[lemmaSigs[i]], opts.HypernymLevel, opts.Concepts)
		if err != nil {
			if errors.Is(err, relation.ErrNoPatterns) {
				return nil
			}
			dropped := 1
			if joined, ok := err.(interface{ Unwrap() []error }); ok {
				dropped = len(joined.Unwrap())
			}
			metrics.patternsDropped.Add(float64(dropped))
			log.WithFields(log.Fields{
				"signature": lemmaSigs[i],
				"error":     err,
			}).Warn("Dropped inconsistent patterns from relation group")
		}
		if r != nil && r.Frequency() > 0 {
			built[i] = r
			metrics.relationsBuilt.Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	relations := make([]*relation.Relation, 0, len(built))
	for _, r := range built {
		if r != nil {
			relations = append(relations, r)
		}
	}
	sort.Slice(relations, func(i, j int) bool {
		return relations[i].Signature() < relations[j].Signature()
	})
	span.SetTag("relations", len(relations))
	return relations, nil
}

// InduceTaxonomy runs the generalization pass over the relations. The
// pairwise comparison is sequential.
func InduceTaxonomy(ctx context.Context, relations []*relation.Relation, opts Options) *taxonomy.Relations {
	opts = opts.withDefaults()
	span, _ := opentracing.StartSpanFromContext(ctx, "InduceTaxonomy")
	defer span.Finish()
	timer := prometheus.NewTimer(metrics.stageSeconds.WithLabelValues("induce_taxonomy"))
	defer timer.ObserveDuration()

	rt := generalize.Induce(relations, opts.Generalizers...)
	metrics.taxonomyEdges.Set(float64(rt.NumberOfEdges()))
	span.SetTag("edges", rt.NumberOfEdges())
	return rt
}

// forEachStrided spreads the index range [0, n) over a fixed pool of
// workers, worker w taking indexes w, w+workers, w+2*workers and so on.
func forEachStrided(ctx context.Context, workers, n int, call func(ctx context.Context, i int) error) error {
	workers = cmp.Min(workers, n)
	if workers < 1 {
		return nil
	}
	return parallel.InvokeN(ctx, workers, func(ctx context.Context, w int) error {
		for i := w; i < n; i += workers {
			if err := call(ctx, i); err != nil {
				return err
			}
		}
		return nil
	})
}
