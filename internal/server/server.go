// Package server exposes the ranking pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                  liveness and build version
//	GET  /v1/samples               built-in sample topologies
//	GET  /v1/samples/{name}/rank   rank a sample; solver options as query parameters
//	POST /v1/rank                  rank a graph document posted as JSON
//	GET  /metrics                  prometheus exposition
//
// Errors are returned as {"error": "...", "code": "..."} with a status
// derived from the error code.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/pagerank/pkg/pipeline"
)

const (
	maxBodyBytes    = 10 << 20
	shutdownTimeout = 5 * time.Second
)

// Server serves the HTTP API on top of a pipeline runner.
type Server struct {
	runner     *pipeline.Runner
	logger     *log.Logger
	httpServer *http.Server
}

// New creates a server listening on addr. A nil logger uses log.Default.
func New(runner *pipeline.Runner, addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the router. It is exported so tests can drive it with
// httptest without opening a socket.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/samples", s.handleSamples)
		r.Get("/samples/{name}/rank", s.handleSampleRank)
		r.Post("/rank", s.handleRank)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "route not found", Code: "NOT_FOUND"})
	})
	return r
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	return s.httpServer.Shutdown(ctx)
}
