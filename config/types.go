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

// Package config defines the on-disk configuration of the extraction
// pipeline and its loader.
package config

// DefIE is the root of the configuration.
type DefIE struct {
	// Corpus locates the input data.
	Corpus Corpus `json:"corpus"`
	// Pipeline tunes the extraction run.
	Pipeline Pipeline `json:"pipeline"`
	// Metrics configures the embedded metrics/debug HTTP server. Empty
	// address disables it.
	Metrics Metrics `json:"metrics"`
	// Tracing configures trace reporting. Nil disables it.
	Tracing *Tracing `json:"tracing,omitempty"`
}

// Corpus locates the definition corpus and the concept taxonomy on
// disk.
type Corpus struct {
	// Path of the parsed and disambiguated definitions file.
	Definitions string `json:"definitions"`
	// Path of the concept taxonomy edge file. Empty disables concept
	// typing and hypernym generalization.
	ConceptTaxonomy string `json:"conceptTaxonomy"`
}

// Pipeline tunes the extraction stages.
type Pipeline struct {
	// Number of concurrent workers per stage. Zero picks a default.
	Workers int `json:"workers"`
	// Number of definitions per work batch. Zero picks a default.
	BatchSize int `json:"batchSize"`
	// Number of superclass hops when typing relation arguments.
	HypernymLevel int `json:"hypernymLevel"`
	// Filters toggles the pattern rejectors.
	Filters Filters `json:"filters"`
}

// Filters toggles the individual pattern rejectors.
type Filters struct {
	NonNominalArguments bool `json:"nonNominalArguments"`
	StartsWithModifier  bool `json:"startsWithModifier"`
	EndsWithModifier    bool `json:"endsWithModifier"`
}

// Metrics configures the metrics/debug HTTP server.
type Metrics struct {
	// Listen address, like ":9980". Empty disables the server.
	Address string `json:"address"`
}

// Tracing configures trace reporting.
type Tracing struct {
	// Type of the tracing backend. Only "jaeger" is supported.
	Type string `json:"type"`
	// CollectorURL accepts jaeger.thrift over HTTP, like
	// "http://localhost:14268/api/traces".
	CollectorURL string `json:"collectorURL"`
}
