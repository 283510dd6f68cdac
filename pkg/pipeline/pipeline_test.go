package pipeline

import (
	"context"
	"io"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagerank/pkg/cache"
	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
	pkgio "github.com/matzehuels/pagerank/pkg/io"
	"github.com/matzehuels/pagerank/pkg/observability"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"dot", false},
		{"json", false},
		{"csv", false},
		{"txt", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}
	if opts.Sample != graph.SampleDefault {
		t.Errorf("Sample = %q, want %q", opts.Sample, graph.SampleDefault)
	}
	if opts.Iterations != pagerank.DefaultIterations || opts.Damping != pagerank.DefaultDamping {
		t.Errorf("solver defaults = %d/%v", opts.Iterations, opts.Damping)
	}
	if opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("canvas = %dx%d", opts.Width, opts.Height)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code perrors.Code
	}{
		{"two sources", Options{Source: "g.json", Sample: "chain"}, perrors.ErrCodeInvalidInput},
		{"negative iterations", Options{Iterations: -1}, perrors.ErrCodeInvalidConfiguration},
		{"bad damping", Options{Damping: 1.2}, perrors.ErrCodeInvalidConfiguration},
		{"bad format", Options{Formats: []string{"gif"}}, perrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !perrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{
		Sample:  graph.SampleStar,
		Formats: []string{FormatJSON, FormatCSV, FormatDOT, FormatText},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.RunID == "" {
		t.Error("RunID should be set")
	}
	if res.Stats.NodeCount != 5 || res.Stats.Rounds != pagerank.DefaultIterations {
		t.Errorf("stats = %+v", res.Stats)
	}
	if math.Abs(res.Ranking.Sum()-1) > 1e-9 {
		t.Errorf("scores sum to %v", res.Ranking.Sum())
	}
	if top := res.Ranking.Top(1); top[0].ID != "CENTER" {
		t.Errorf("top node = %s, want CENTER", top[0].ID)
	}
	for _, f := range []string{FormatJSON, FormatCSV, FormatDOT, FormatText} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("artifact %s is empty", f)
		}
	}
	dot := string(res.Artifacts[FormatDOT])
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Error("dot artifact should be a digraph")
	}
	if !strings.Contains(dot, `label="PageRank Scores (Ranked): CENTER: `) {
		t.Errorf("dot artifact should carry the ranking caption:\n%s", dot)
	}
}

func TestExecuteFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	if err := pkgio.Export(graph.Chain(), path); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(nil, nil, quietLogger())
	res, err := r.Execute(context.Background(), Options{Source: path})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if res.Graph.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", res.Graph.NodeCount())
	}
	if len(res.Artifacts) != 0 {
		t.Errorf("no formats requested but got %d artifacts", len(res.Artifacts))
	}
}

func TestExecuteUnknownSample(t *testing.T) {
	r := NewRunner(nil, nil, quietLogger())
	_, err := r.Execute(context.Background(), Options{Sample: "nope"})
	if !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("err = %v, want NOT_FOUND", err)
	}
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses, sets map[string]int
}

func newCountingCacheHooks() *countingCacheHooks {
	return &countingCacheHooks{hits: map[string]int{}, misses: map[string]int{}, sets: map[string]int{}}
}

func (h *countingCacheHooks) OnCacheHit(_ context.Context, k string)     { h.hits[k]++ }
func (h *countingCacheHooks) OnCacheMiss(_ context.Context, k string)    { h.misses[k]++ }
func (h *countingCacheHooks) OnCacheSet(_ context.Context, k string, _ int) { h.sets[k]++ }

func TestExecuteCaching(t *testing.T) {
	hooks := newCountingCacheHooks()
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, quietLogger())
	ctx := context.Background()
	opts := Options{Formats: []string{FormatJSON, FormatDOT}}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.RankHit || first.CacheInfo.RenderHit {
		t.Errorf("first run should miss: %+v", first.CacheInfo)
	}

	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.RankHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit: %+v", second.CacheInfo)
	}
	for id, v := range first.Ranking.Scores {
		if second.Ranking.Scores[id] != v {
			t.Errorf("cached score[%s] = %v, want %v", id, second.Ranking.Scores[id], v)
		}
	}
	if string(second.Artifacts[FormatDOT]) != string(first.Artifacts[FormatDOT]) {
		t.Error("cached DOT differs from rendered DOT")
	}

	if hooks.hits["result"] != 1 || hooks.misses["result"] != 1 || hooks.sets["result"] != 1 {
		t.Errorf("result hooks: hits %d misses %d sets %d", hooks.hits["result"], hooks.misses["result"], hooks.sets["result"])
	}
	if hooks.hits["artifact"] != 2 || hooks.sets["artifact"] != 2 {
		t.Errorf("artifact hooks: hits %d sets %d", hooks.hits["artifact"], hooks.sets["artifact"])
	}

	// Different solver options must not reuse the cached ranking.
	opts.Damping = 0.5
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.RankHit {
		t.Error("changed damping should miss the cache")
	}

	// Refresh bypasses reads.
	refreshed, err := r.Execute(ctx, Options{Formats: []string{FormatJSON}, Refresh: true})
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if refreshed.CacheInfo.RankHit || refreshed.CacheInfo.RenderHit {
		t.Errorf("refresh should not hit: %+v", refreshed.CacheInfo)
	}
}

func TestGraphHash(t *testing.T) {
	if GraphHash(graph.Default()) != GraphHash(graph.Default()) {
		t.Error("GraphHash should be deterministic")
	}
	if GraphHash(graph.Default()) == GraphHash(graph.Chain()) {
		t.Error("different graphs should hash differently")
	}
}
