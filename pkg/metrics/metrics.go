// Package metrics exports Prometheus metrics for solves, pipeline stages,
// cache traffic and HTTP requests.
//
// The collectors are registered with the default registry on import.
// [Install] routes the observability hooks into them; the API server calls
// it at startup and serves the registry on /metrics.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/observability"
)

var (
	SolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagerank_solves_total",
			Help: "Solver runs by outcome",
		},
		[]string{"outcome"}, // ok, converged, invalid, error
	)

	SolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagerank_solve_duration_seconds",
			Help:    "Wall time of a solver run",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	SolveRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagerank_solve_rounds",
			Help:    "Rounds run per solve",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 1000},
		},
	)

	GraphNodes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagerank_graph_nodes",
			Help:    "Node count of ranked graphs",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagerank_stage_duration_seconds",
			Help:    "Duration of pipeline stages",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)

	CacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagerank_cache_requests_total",
			Help: "Cache lookups by entry kind and result",
		},
		[]string{"kind", "result"},
	)

	CacheBytesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagerank_cache_bytes_written_total",
			Help: "Bytes written to the cache by entry kind",
		},
		[]string{"kind"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagerank_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pagerank_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)
)

// Install registers the Prometheus-backed hooks with the observability
// package.
func Install() {
	observability.SetSolverHooks(SolverHooks{})
	observability.SetPipelineHooks(PipelineHooks{})
	observability.SetCacheHooks(CacheHooks{})
	observability.SetHTTPHooks(HTTPHooks{})
}

// SolverHooks records solver runs.
type SolverHooks struct{}

func (SolverHooks) OnSolveStart(_ context.Context, nodes, _ int) {
	GraphNodes.Observe(float64(nodes))
}

func (SolverHooks) OnSolveComplete(_ context.Context, rounds int, converged bool, d time.Duration, err error) {
	SolvesTotal.WithLabelValues(solveOutcome(converged, err)).Inc()
	if err != nil {
		return
	}
	SolveDuration.Observe(d.Seconds())
	SolveRounds.Observe(float64(rounds))
}

func solveOutcome(converged bool, err error) string {
	switch {
	case perrors.Is(err, perrors.ErrCodeInvalidConfiguration), perrors.Is(err, perrors.ErrCodeInvalidGraph):
		return "invalid"
	case err != nil:
		return "error"
	case converged:
		return "converged"
	default:
		return "ok"
	}
}

// PipelineHooks records stage durations.
type PipelineHooks struct{}

func (PipelineHooks) OnLoadStart(context.Context, string) {}

func (PipelineHooks) OnLoadComplete(_ context.Context, _ string, _ int, d time.Duration, _ error) {
	StageDuration.WithLabelValues("load").Observe(d.Seconds())
}

func (PipelineHooks) OnRenderStart(context.Context, []string) {}

func (PipelineHooks) OnRenderComplete(_ context.Context, _ []string, d time.Duration, _ error) {
	StageDuration.WithLabelValues("render").Observe(d.Seconds())
}

// CacheHooks records cache traffic.
type CacheHooks struct{}

func (CacheHooks) OnCacheHit(_ context.Context, kind string) {
	CacheRequests.WithLabelValues(kind, "hit").Inc()
}

func (CacheHooks) OnCacheMiss(_ context.Context, kind string) {
	CacheRequests.WithLabelValues(kind, "miss").Inc()
}

func (CacheHooks) OnCacheSet(_ context.Context, kind string, size int) {
	CacheBytesWritten.WithLabelValues(kind).Add(float64(size))
}

// HTTPHooks records served requests.
type HTTPHooks struct{}

func (HTTPHooks) OnRequest(context.Context, string, string) {}

func (HTTPHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
