package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/pagerank/pkg/buildinfo"
	"github.com/matzehuels/pagerank/pkg/cache"
	"github.com/matzehuels/pagerank/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pagerank"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	v   *viper.Viper
	cfg Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		v:      viper.New(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:   appName,
		Short: "Rank the nodes of a directed graph with PageRank",
		Long: `pagerank scores the nodes of a directed graph by power iteration over the
link structure. Graphs are read from JSON, YAML, TOML, HCL, DOT or edge-list
files, or taken from the built-in samples.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.v, cfgFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default .pagerank.yaml)")
	flags.Int("iterations", 0, "power iteration rounds (default 100)")
	flags.Float64("damping", 0, "damping factor in (0,1) (default 0.85)")
	flags.Float64("tolerance", 0, "stop early once the largest per-node change drops below this")
	flags.Int("workers", 0, "goroutines per round (default 1)")
	for _, name := range []string{"iterations", "damping", "tolerance", "workers"} {
		_ = c.v.BindPFlag(name, flags.Lookup(name))
	}

	// Register all subcommands
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.samplesCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Keys are namespaced
// with cache.prefix whichever backend is picked.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(nil, c.cfg.Cache.Prefix)
	return pipeline.NewRunner(backend, keyer, c.Logger), nil
}

// newCache picks the cache backend: none when disabled, redis when a URL is
// configured, else the file cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || !c.cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	if c.cfg.Cache.RedisURL != "" {
		return cache.NewRedisCache(ctx, c.cfg.Cache.RedisURL)
	}
	dir := c.cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/pagerank/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// graphSource fills the load options from a positional file argument or
// the --sample flag. Neither set means the default sample.
func graphSource(opts *pipeline.Options, args []string, sample string) {
	if len(args) > 0 {
		opts.Source = args[0]
	}
	if sample != "" {
		opts.Sample = sample
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
