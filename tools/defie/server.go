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
	"net/http"
	_ "net/http/pprof" // enable pprof endpoints
	"time"

	"github.com/claudio-db/defIE/util/profiling"
	"github.com/claudio-db/defIE/util/web"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// serveDebug runs the metrics and debug HTTP server. It blocks until
// the listener fails.
func serveDebug(address string) error {
	m := httprouter.New()

	// prometheus metrics
	m.Handler("GET", "/metrics", promhttp.Handler())
	m.POST("/profile", profile)
	m.POST("/logLevel/:level", setLogLevel)

	m.NotFound = http.DefaultServeMux
	logger := func(w http.ResponseWriter, r *http.Request) {
		log.Debugf("[debug] %v %v", r.Method, r.URL)
		m.ServeHTTP(w, r)
	}
	log.WithField("address", address).Info("Starting metrics/debug HTTP server")
	return http.ListenAndServe(address, http.HandlerFunc(logger))
}

// profile starts CPU profiling the process for the posted duration,
// writing the result to the posted filename.
func profile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseForm(); err != nil {
		web.WriteError(w, http.StatusBadRequest, "Unable to parse POST data: %v", err)
		return
	}
	duration, err := time.ParseDuration(r.Form.Get("duration"))
	if err != nil {
		web.WriteError(w, http.StatusBadRequest, "Unable to parse duration: %v", err)
		return
	}
	filename := r.Form.Get("filename")
	if filename == "" {
		web.WriteError(w, http.StatusBadRequest, "Missing filename")
		return
	}
	go func() {
		if err := profiling.CPUProfileForDuration(filename, duration); err != nil {
			log.WithError(err).Warn("CPU profiling failed")
		}
	}()
	web.Write(w, "Profiling started\n")
}

// setLogLevel changes the debug log level. The level remains at the
// provided setting until another request or a process restart.
func setLogLevel(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	level, err := log.ParseLevel(params.ByName("level"))
	if err != nil {
		web.WriteError(w, http.StatusBadRequest, "Unknown log level: %v", err)
		return
	}
	log.SetLevel(level)
	web.Write(w, "Log level set to "+level.String()+"\n")
}
