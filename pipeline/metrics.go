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

package pipeline

import (
	metricsutil "github.com/claudio-db/defIE/util/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type pipelineMetrics struct {
	definitionsProcessed prometheus.Counter
	definitionsSkipped   prometheus.Counter
	mergeConflicts       prometheus.Counter
	patternsMined        prometheus.Counter
	patternsDropped      prometheus.Counter
	relationsBuilt       prometheus.Counter
	taxonomyEdges        prometheus.Gauge
	stageSeconds         *prometheus.HistogramVec
}

var metrics pipelineMetrics

func init() {
	mr := metricsutil.Registry{R: prometheus.DefaultRegisterer}
	metrics = pipelineMetrics{
		definitionsProcessed: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "definitions_processed_total",
			Help:      "The number of definitions turned into syntactic-semantic graphs.",
		}),
		definitionsSkipped: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "definitions_skipped_total",
			Help:      "The number of definitions skipped because they carry no dependencies or no disambiguations.",
		}),
		mergeConflicts: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "merge_conflicts_total",
			Help: `The number of vertices left unmerged while building graphs.

A conflict arises when two disambiguations disagree about a vertex. The
vertex keeps its first sense and the definition is still processed.
`,
		}),
		patternsMined: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "patterns_mined_total",
			Help:      "The number of patterns that survived mining and filtering.",
		}),
		patternsDropped: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "patterns_dropped_total",
			Help:      "The number of patterns dropped from relation groups as inconsistent.",
		}),
		relationsBuilt: mr.NewCounter(prometheus.CounterOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "relations_built_total",
			Help:      "The number of relations aggregated from pattern groups.",
		}),
		taxonomyEdges: mr.NewGauge(prometheus.GaugeOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "taxonomy_edges",
			Help:      "The number of edges in the last induced relation taxonomy.",
		}),
		stageSeconds: mr.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "defie",
			Subsystem: "pipeline",
			Name:      "stage_seconds",
			Help:      "Wall-clock duration of each pipeline stage.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4.0, 10),
		}, []string{"stage"}),
	}
}
