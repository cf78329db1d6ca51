// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the calculation pipeline, the simulation bridge, and
// the snapshot store over HTTP.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/pdiddy/skid-engine/internal/simulator"
	"github.com/pdiddy/skid-engine/internal/snapshot"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// Server routes HTTP requests to the calculation pipeline, the simulation
// bridge, and the snapshot store.
type Server struct {
	cfg    types.Config
	store  *snapshot.Store
	runner simulator.Runner
	log    *slog.Logger

	http *http.Server
}

// NewServer builds a Server from the service configuration. The runner may
// be nil when no bridge is configured; simulation requests then only work
// with estimate_only set.
func NewServer(cfg types.Config, store *snapshot.Store, runner simulator.Runner, log *slog.Logger) *Server {
	s := &Server{cfg: cfg, store: store, runner: runner, log: log}
	s.http = &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}
	return s
}

// Router returns the bare route table, without access logging.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	v1 := r.PathPrefix("/api/v1").Subrouter()
	v1.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	v1.HandleFunc("/calculate", s.handleCalculate).Methods(http.MethodPost)
	v1.HandleFunc("/simulations", s.handleSimulate).Methods(http.MethodPost)
	v1.HandleFunc("/snapshots", s.handleListSnapshots).Methods(http.MethodGet)
	v1.HandleFunc("/snapshots/{id}", s.handleGetSnapshot).Methods(http.MethodGet)
	return r
}

// Handler returns the handler stack served by Start.
func (s *Server) Handler() http.Handler {
	return handlers.LoggingHandler(os.Stdout, s.Router())
}

// Start listens on the configured address until Stop is called or the
// listener fails.
func (s *Server) Start() error {
	s.log.Info("http server starting", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	s.log.Info("http server stopping")
	return s.http.Shutdown(ctx)
}
