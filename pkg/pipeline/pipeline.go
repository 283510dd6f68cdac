// Package pipeline runs the load → rank → render sequence shared by the
// CLI and the API server.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a graph file, build a named sample, or take a graph the
//     caller already holds
//  2. Rank: run the PageRank solver, cached by graph content and solver
//     options
//  3. Render: produce reports and diagrams, cached per format
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "web.json",
//	    Formats: []string{"svg", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/pagerank/pkg/cache"
	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatJSON = "json" // ranked scores
	FormatCSV  = "csv"  // ranked scores
	FormatText = "txt"  // the ranked report table
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatJSON: true,
	FormatCSV:  true,
	FormatText: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. At most one source may be set; none loads the default
	// sample.
	Source string       `json:"source,omitempty"` // graph file path
	Sample string       `json:"sample,omitempty"` // built-in sample name
	Graph  *graph.Graph `json:"-"`                // graph supplied in memory

	// Rank options. Zero Iterations and Damping take the solver defaults.
	Iterations int     `json:"iterations,omitempty"`
	Damping    float64 `json:"damping,omitempty"`
	Tolerance  float64 `json:"tolerance,omitempty"`
	Workers    int     `json:"workers,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"` // bypass cached rankings and artifacts

	// Render options
	Formats []string `json:"formats,omitempty"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs and API responses.
	RunID string

	// Graph is the loaded graph.
	Graph *graph.Graph

	// GraphHash is the content hash of the graph.
	GraphHash string

	// Ranking is the solver output.
	Ranking *pagerank.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Rounds     int
	LoadTime   time.Duration
	RankTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RankHit   bool // Whether the ranking came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		names := make([]string, 0, len(ValidFormats))
		for f := range ValidFormats {
			names = append(names, f)
		}
		slices.Sort(names)
		return perrors.New(perrors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: %s)", format, strings.Join(names, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults for the
// full pipeline. It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRank(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that at most one graph source is set. With none,
// the default sample is used.
func (o *Options) ValidateForLoad() error {
	set := 0
	for _, ok := range []bool{o.Source != "", o.Sample != "", o.Graph != nil} {
		if ok {
			set++
		}
	}
	if set > 1 {
		return perrors.New(perrors.ErrCodeInvalidInput, "only one of source, sample or graph may be set")
	}
	if set == 0 {
		o.Sample = graph.SampleDefault
	}
	return nil
}

// SetRankDefaults fills zero solver options with the solver defaults.
func (o *Options) SetRankDefaults() {
	if o.Iterations == 0 {
		o.Iterations = pagerank.DefaultIterations
	}
	if o.Damping == 0 {
		o.Damping = pagerank.DefaultDamping
	}
}

// ValidateForRank applies rank defaults and validates the solver options.
func (o *Options) ValidateForRank() error {
	o.SetRankDefaults()
	return o.SolverOptions().Validate()
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
}

// ValidateForRender validates and sets defaults for rendering. An empty
// format list is valid and renders nothing.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Width < 0 || o.Height < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "canvas size must be positive, got %dx%d", o.Width, o.Height)
	}
	return ValidateFormats(o.Formats)
}

// SolverOptions returns the solver configuration.
func (o *Options) SolverOptions() pagerank.Options {
	return pagerank.Options{
		Iterations: o.Iterations,
		Damping:    o.Damping,
		Tolerance:  o.Tolerance,
		Workers:    o.Workers,
	}
}

// ResultKeyOpts returns cache key options for a ranking. Workers is left
// out: it never changes the scores.
func (o *Options) ResultKeyOpts() cache.ResultKeyOpts {
	return cache.ResultKeyOpts{
		Iterations: o.Iterations,
		Damping:    o.Damping,
		Tolerance:  o.Tolerance,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Width:  o.Width,
		Height: o.Height,
	}
}

// SourceLabel describes where the graph comes from, for logs.
func (o *Options) SourceLabel() string {
	switch {
	case o.Graph != nil:
		return "<inline>"
	case o.Source != "":
		return o.Source
	default:
		return fmt.Sprintf("sample:%s", o.Sample)
	}
}
