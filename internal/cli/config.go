package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/pagerank/pkg/pagerank"
	"github.com/matzehuels/pagerank/pkg/pipeline"
)

// Config holds runtime configuration. Values come from .pagerank.yaml,
// PAGERANK_* environment variables and command-line flags, in increasing
// order of precedence.
type Config struct {
	Iterations int          `mapstructure:"iterations"`
	Damping    float64      `mapstructure:"damping"`
	Tolerance  float64      `mapstructure:"tolerance"`
	Workers    int          `mapstructure:"workers"`
	Width      int          `mapstructure:"width"`
	Height     int          `mapstructure:"height"`
	Cache      CacheConfig  `mapstructure:"cache"`
	Server     ServerConfig `mapstructure:"server"`
}

// CacheConfig selects the result cache backend.
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Dir      string `mapstructure:"dir"`       // file cache location; empty uses the XDG cache dir
	RedisURL string `mapstructure:"redis_url"` // when set, redis replaces the file cache
	Prefix   string `mapstructure:"prefix"`    // namespace for every cache key
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("iterations", pagerank.DefaultIterations)
	v.SetDefault("damping", pagerank.DefaultDamping)
	v.SetDefault("tolerance", 0.0)
	v.SetDefault("workers", 1)
	v.SetDefault("width", pipeline.DefaultWidth)
	v.SetDefault("height", pipeline.DefaultHeight)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.prefix", appName+":")
	v.SetDefault("server.addr", ":8080")
}

// loadConfig reads the config file (if any) and environment into cfg.
// A missing default config file is not an error; a missing explicit one is.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("." + appName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("PAGERANK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// pipelineOptions seeds pipeline options from the loaded configuration.
// Solver settings are validated as given: the pipeline reads a zero as
// "unset", but a configured iterations of 0 is an error.
func (c Config) pipelineOptions() (pipeline.Options, error) {
	solver := pagerank.Options{
		Iterations: c.Iterations,
		Damping:    c.Damping,
		Tolerance:  c.Tolerance,
		Workers:    c.Workers,
	}
	if err := solver.Validate(); err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Iterations: c.Iterations,
		Damping:    c.Damping,
		Tolerance:  c.Tolerance,
		Workers:    c.Workers,
		Width:      c.Width,
		Height:     c.Height,
	}, nil
}
