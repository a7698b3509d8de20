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

// Command defie provides command line access to the DefIE extraction
// pipeline.
package main

import (
	"context"
	"time"

	"github.com/claudio-db/defIE/config"
	"github.com/claudio-db/defIE/util/debuglog"
	"github.com/claudio-db/defIE/util/tracing"
	docopt "github.com/docopt/docopt-go"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fmtr = message.NewPrinter(language.English)

const usage = `defie is a command-line tool for running the DefIE extraction pipeline.

Usage:
  defie [--config=FILE -t=DUR --trace=HOST --metrics=ADDR] extract [--top=NUM --dump=FILE]
  defie [--config=FILE -t=DUR --trace=HOST --metrics=ADDR] taxonomy [--out=FILE]
  defie [--config=FILE] graph ID [FILE]

Options:
  --config=FILE          Configuration file to load [default: config.json]
  -t=DUR, --timeout=DUR  Timeout for the whole run. 0s means one hour [default: 0s]
  --trace=HOST           Send OpenTracing traces to this Jaeger collector URL.
  --metrics=ADDR         Serve Prometheus metrics and debug endpoints on this address.
  --top=NUM              Number of top-scored relations to print [default: 25]
  --dump=FILE            Also write every scored relation to this file.
  --out=FILE             Write the taxonomy edges to this file instead of stdout.

Examples:
  # Run the full pipeline and print the 50 best relations.
  defie --config=defie.json extract --top=50

  # Run the pipeline and dump the induced relation taxonomy to a file.
  defie --config=defie.json taxonomy --out=taxonomy.tsv

  # Render the syntactic-semantic graph of one definition as an image.
  defie --config=defie.json graph wiki:Atom_Heart_Mother ahm.png

  # Same graph as a Graphviz spec on stdout.
  defie --config=defie.json graph wiki:Atom_Heart_Mother
`

type options struct {
	// Options
	ConfigFile string `docopt:"--config"`
	// Timeout is never zero; it's set to 1 hour if the user passes 0s.
	Timeout          time.Duration
	TimeoutString    string `docopt:"--timeout"`
	TracingCollector string `docopt:"--trace"`
	MetricsAddress   string `docopt:"--metrics"`

	// Extract
	Extract  bool
	Top      int
	DumpFile string `docopt:"--dump"`

	// Taxonomy
	Taxonomy bool
	OutFile  string `docopt:"--out"`

	// Graph
	Graph        bool
	DefinitionID string `docopt:"ID"`
	Filename     string `docopt:"FILE"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	if options.TimeoutString != "" {
		options.Timeout, err = time.ParseDuration(options.TimeoutString)
		if err != nil {
			log.Fatalf("Unable to parse timeout value: %v", err)
		}
	}
	if options.Timeout == 0 {
		options.Timeout = time.Hour
	}
	return &options
}

func main() {
	debuglog.Configure(debuglog.Options{})
	options := parseArgs()
	ctx := context.Background()

	cfg, err := config.Load(options.ConfigFile)
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	if options.TracingCollector != "" {
		cfg.Tracing = &config.Tracing{
			Type:         "jaeger",
			CollectorURL: options.TracingCollector,
		}
	}
	if options.MetricsAddress != "" {
		cfg.Metrics.Address = options.MetricsAddress
	}

	if cfg.Tracing != nil {
		tracer, err := tracing.New("defie", cfg.Tracing)
		if err != nil {
			log.WithError(err).Warn("Could not initialize OpenTracing tracer")
		} else {
			defer tracer.Close()
		}
	}
	span, ctx := opentracing.StartSpanFromContext(ctx, "defie run")
	defer span.Finish()

	if cfg.Metrics.Address != "" {
		go func() {
			if err := serveDebug(cfg.Metrics.Address); err != nil {
				log.WithError(err).Warn("Debug HTTP server stopped")
			}
		}()
	}

	// The graph subcommand ignores timeoutCtx: it only touches a single
	// definition and may shell out to "dot".
	timeoutCtx, cancelFunc := context.WithTimeout(ctx, options.Timeout)
	defer cancelFunc()

	switch {
	case options.Extract:
		err := extract(timeoutCtx, cfg, options)
		if err != nil {
			log.Fatalf("Error executing extract: %v", err)
		}
	case options.Taxonomy:
		err := dumpTaxonomy(timeoutCtx, cfg, options)
		if err != nil {
			log.Fatalf("Error executing taxonomy: %v", err)
		}
	case options.Graph:
		err := renderGraph(cfg, options)
		if err != nil {
			log.Fatalf("Error executing graph: %v", err)
		}
	default:
		log.Fatalf("command not implemented")
	}
}
