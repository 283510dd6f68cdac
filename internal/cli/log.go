// Package cli implements the pagerank command-line interface.
//
// Commands load a graph (file or built-in sample), rank it through the
// shared pipeline runner and print or write the result. The CLI is built
// using cobra, reads configuration through viper and logs via
// charmbracelet/log.
//
// # Commands
//
//   - rank: Rank a graph and print the ranked table
//   - info: Describe a graph's structure
//   - render: Write diagrams (svg, png, pdf, dot) and reports (json, csv, txt)
//   - samples: List or interactively pick a built-in sample
//   - edit: Build a graph by typing edges
//   - watch: Re-rank a file on every save
//   - serve: Run the HTTP API
//   - cache: Manage the local ranking cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context.
//
// # Example
//
//	c := cli.New(os.Stderr, cli.LogInfo)
//	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	    os.Exit(1)
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pagerank/pkg/pipeline"
)

// newLogger returns a logger writing to w with "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command and logs what the pipeline did.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// ranked logs the solve behind result at debug level: graph size, rounds
// run, whether the tolerance was met and the stage timings.
func (p *progress) ranked(result *pipeline.Result) {
	res := result.Ranking
	if res == nil {
		return
	}
	p.logger.Debug("ranked",
		"run", result.RunID,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"rounds", res.Rounds,
		"converged", res.Converged,
		"delta", res.Delta,
		"cached", result.CacheInfo.RankHit,
		"load", result.Stats.LoadTime.Round(time.Microsecond),
		"rank", result.Stats.RankTime.Round(time.Microsecond),
	)
}

// done logs msg at info level with the time since newProgress, e.g.
// "rendered formats=svg,png cached=false elapsed=41ms".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger set by withLogger, or log.Default.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
