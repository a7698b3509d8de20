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

// Package tracing assists with reporting OpenTracing traces.
package tracing

import (
	"fmt"
	"strings"

	"github.com/claudio-db/defIE/config"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
	jaeger "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// A Tracer reports OpenTracing traces to a server.
type Tracer struct {
	// If not nil, called by Close.
	close func()
}

// New constructs a tracer and sets it as the global opentracing tracer.
// Call this early on from main functions to initialize Jaeger/OpenTracing. The
// collector URL in cfg should accept jaeger.thrift over HTTP directly from
// clients. If err == nil, the returned tracer should be Closed to clean up
// resources and flush its buffer before program exit.
func New(serviceName string, cfg *config.Tracing) (*Tracer, error) {
	if cfg == nil {
		log.Warn("Skipping Jaeger setup: nil Tracing configuration")
		return &Tracer{}, nil
	}
	if cfg.Type != "" && cfg.Type != "jaeger" {
		return nil, fmt.Errorf("unsupported tracing type: %v", cfg.Type)
	}
	jcfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			CollectorEndpoint: cfg.CollectorURL,
		},
	}
	logger := (*logrusAdapter)(log.WithFields(log.Fields{"component": "jaeger"}))
	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(logger))
	if err != nil {
		return nil, fmt.Errorf("could not initialize Jaeger tracer: %v", err)
	}
	opentracing.SetGlobalTracer(tracer)
	return &Tracer{
		close: func() {
			err := closer.Close()
			if err != nil {
				log.WithError(err).Warn("Error shutting down Jaeger tracer")
			}
		},
	}, nil
}

// Close stops the Tracer and cleans up resources. It is not thread-safe.
func (t *Tracer) Close() {
	if t.close != nil {
		t.close()
	}
	t.close = nil
}

type logrusAdapter log.Entry

func (_log *logrusAdapter) Error(msg string) {
	log := (*log.Entry)(_log)
	log.Error(strings.TrimSpace(msg))
}

func (_log *logrusAdapter) Infof(msg string, args ...interface{}) {
	log := (*log.Entry)(_log)
	log.Infof(strings.TrimSpace(msg), args...)
}
