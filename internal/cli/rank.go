package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/pagerank/pkg/io"
	"github.com/matzehuels/pagerank/pkg/pagerank"
	"github.com/matzehuels/pagerank/pkg/pipeline"
	"github.com/matzehuels/pagerank/pkg/render"
)

// rankOpts holds the command-line flags for the rank command.
type rankOpts struct {
	sample  string // built-in sample instead of a file
	top     int    // rows to show; 0 shows all
	output  string // score export path (.json or .csv)
	plain   bool   // fixed-width text report instead of the styled table
	noCache bool
	refresh bool
}

// rankCommand creates the rank command.
func (c *CLI) rankCommand() *cobra.Command {
	var opts rankOpts

	cmd := &cobra.Command{
		Use:   "rank [file]",
		Short: "Rank the nodes of a graph",
		Long: `Rank the nodes of a graph file or a built-in sample.

The file format is picked by extension: .json, .yaml/.yml, .toml, .hcl,
.dot/.gv, or .txt/.edges for "source destination" edge lists. Without a file
or --sample the default sample graph is ranked.`,
		Example: `  pagerank rank web.json
  pagerank rank --sample star --iterations 50
  pagerank rank links.txt --tolerance 1e-9 -o scores.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRank(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "rank a built-in sample (see 'pagerank samples')")
	cmd.Flags().IntVarP(&opts.top, "top", "n", 0, "show only the n highest ranked nodes")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write scores to a .json or .csv file")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "print the plain text report")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached rankings")

	return cmd
}

func (c *CLI) runRank(cmd *cobra.Command, args []string, opts rankOpts) error {
	ctx := cmd.Context()

	popts, err := c.cfg.pipelineOptions()
	if err != nil {
		return err
	}
	graphSource(&popts, args, opts.sample)
	popts.Refresh = opts.refresh

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		return err
	}
	prog.ranked(result)
	res := result.Ranking

	if opts.plain {
		if err := render.WriteReport(os.Stdout, res); err != nil {
			return err
		}
	} else {
		printStats(result, result.CacheInfo.RankHit)
		printNewline()
		fmt.Println(scoreTable(res, opts.top))
		printNewline()
		printConvergence(res)
	}

	if opts.output != "" {
		if err := pkgio.ExportScores(res, opts.output); err != nil {
			return err
		}
		printSuccess("Saved scores")
		printFile(opts.output)
	}
	return nil
}

// scoreTable renders the ranking as a bordered table. Node names are
// tinted with the same red to green scale the diagrams use.
func scoreTable(res *pagerank.Result, top int) string {
	ranked := res.Ranked()
	if top > 0 {
		ranked = res.Top(top)
	}

	total := res.Sum()
	lo, hi := res.Bounds()
	rows := make([][]string, len(ranked))
	for i, s := range ranked {
		pct := 0.0
		if total > 0 {
			pct = s.Value / total * 100
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			s.ID,
			strconv.FormatFloat(s.Value, 'f', 6, 64),
			strconv.FormatFloat(pct, 'f', 2, 64) + "%",
		}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Rank", "Node", "Score", "Share").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case 0:
				return cellStyle.Foreground(colorDim)
			case 1:
				norm := render.Normalize(ranked[row].Value, lo, hi)
				return cellStyle.Foreground(lipgloss.Color(render.NodeColor(norm))).Bold(true)
			case 2:
				return cellStyle.Foreground(colorCyan)
			}
			return cellStyle
		}).
		Render()
}

// printConvergence reports how the solve ended.
func printConvergence(res *pagerank.Result) {
	if res.Converged {
		printInfo("Converged after %d rounds (max change %.2e)", res.Rounds, res.Delta)
	} else {
		printInfo("Ran %d rounds (max change %.2e)", res.Rounds, res.Delta)
	}
	printDetail("Total: %.6f", res.Sum())
}

// sampleOptions returns pipeline options for ranking one sample
// with the configured solver settings.
func (c *CLI) sampleOptions(name string) (pipeline.Options, error) {
	opts, err := c.cfg.pipelineOptions()
	if err != nil {
		return opts, err
	}
	opts.Sample = name
	return opts, nil
}
