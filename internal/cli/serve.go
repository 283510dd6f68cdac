package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagerank/internal/server"
	"github.com/matzehuels/pagerank/pkg/metrics"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ranking API over HTTP",
		Long: `Serve the ranking API over HTTP.

Rankings are cached in redis when cache.redis_url is configured, otherwise
in the local cache directory. Prometheus metrics are exposed on /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			metrics.Install()
			return server.New(runner, c.cfg.Server.Addr, c.Logger).Run(ctx)
		},
	}

	cmd.Flags().String("addr", "", "listen address (default :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	_ = c.v.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))

	return cmd
}
