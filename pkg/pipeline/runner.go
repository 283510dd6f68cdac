package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/pagerank/pkg/cache"
	"github.com/matzehuels/pagerank/pkg/graph"
	pkgio "github.com/matzehuels/pagerank/pkg/io"
	"github.com/matzehuels/pagerank/pkg/observability"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use it so caching behaves the same everywhere.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → rank → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	logger := r.Logger.With("run", result.RunID[:8])

	// Stage 1: Load
	loadStart := time.Now()
	g, err := r.Load(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Graph = g
	result.GraphHash = GraphHash(g)
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()

	logger.Info("loaded graph",
		"source", opts.SourceLabel(),
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Rank
	rankStart := time.Now()
	ranking, rankHit, err := r.RankWithCacheInfo(ctx, g, opts)
	if err != nil {
		return nil, fmt.Errorf("rank: %w", err)
	}
	result.Ranking = ranking
	result.Stats.RankTime = time.Since(rankStart)
	result.Stats.Rounds = ranking.Rounds
	result.CacheInfo.RankHit = rankHit

	logger.Info("ranked graph",
		"rounds", ranking.Rounds,
		"converged", ranking.Converged,
		"cached", rankHit,
		"duration", result.Stats.RankTime)

	// Stage 3: Render
	if len(opts.Formats) == 0 {
		return result, nil
	}
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, g, ranking, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the graph source named by opts.
func (r *Runner) Load(ctx context.Context, opts Options) (g *graph.Graph, err error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}

	source := opts.SourceLabel()
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()
	defer func() {
		n := 0
		if g != nil {
			n = g.NodeCount()
		}
		hooks.OnLoadComplete(ctx, source, n, time.Since(start), err)
	}()

	switch {
	case opts.Graph != nil:
		return opts.Graph, nil
	case opts.Source != "":
		return pkgio.Import(opts.Source)
	default:
		return graph.Sample(opts.Sample)
	}
}

// RankWithCacheInfo ranks g with caching and returns cache hit info.
func (r *Runner) RankWithCacheInfo(ctx context.Context, g *graph.Graph, opts Options) (*pagerank.Result, bool, error) {
	if err := opts.ValidateForRank(); err != nil {
		return nil, false, err
	}

	cacheKey := r.Keyer.ResultKey(GraphHash(g), opts.ResultKeyOpts())
	hooks := observability.Cache()

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached pagerank.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				hooks.OnCacheHit(ctx, "result")
				return &cached, true, nil
			}
			// If deserialization fails, fall through to recompute
		} else if err != nil {
			r.Logger.Warn("cache read failed", "err", err)
		}
		hooks.OnCacheMiss(ctx, "result")
	}

	res, err := pagerank.Solve(ctx, g, opts.SolverOptions())
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, cache.TTLResult); err != nil {
			r.Logger.Warn("cache write failed", "err", err)
		} else {
			hooks.OnCacheSet(ctx, "result", len(data))
		}
	}

	return res, false, nil
}

// Rank is a convenience wrapper that calls RankWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Rank(ctx context.Context, g *graph.Graph, opts Options) (*pagerank.Result, error) {
	res, _, err := r.RankWithCacheInfo(ctx, g, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. The hit flag is set only when every format came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, g *graph.Graph, res *pagerank.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	resultHash := ResultHash(g, res)
	hooks := observability.Cache()

	artifacts := make(map[string][]byte, len(opts.Formats))
	var missing []string
	for _, format := range opts.Formats {
		if !opts.Refresh {
			key := r.Keyer.ArtifactKey(resultHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
				hooks.OnCacheHit(ctx, "artifact")
				artifacts[format] = data
				continue
			}
			hooks.OnCacheMiss(ctx, "artifact")
		}
		missing = append(missing, format)
	}
	if len(missing) == 0 {
		return artifacts, true, nil
	}

	renderOpts := opts
	renderOpts.Formats = missing
	rendered, err := Render(ctx, g, res, renderOpts)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		artifacts[format] = data
		key := r.Keyer.ArtifactKey(resultHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}

	return artifacts, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// GraphHash returns the content hash of g's JSON document. Node and edge
// order are part of the hash.
func GraphHash(g *graph.Graph) string {
	var buf bytes.Buffer
	_ = pkgio.WriteJSON(g, &buf)
	return cache.Hash(buf.Bytes())
}

// ResultHash identifies a ranking of a particular graph, for artifact keys.
func ResultHash(g *graph.Graph, res *pagerank.Result) string {
	data, _ := json.Marshal(res.Scores)
	return cache.Hash(append([]byte(GraphHash(g)), data...))
}
