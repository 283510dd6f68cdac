package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
	pkgio "github.com/matzehuels/pagerank/pkg/io"
)

// editCommand creates the edit command for entering edges interactively.
func (c *CLI) editCommand() *cobra.Command {
	var noRank bool

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Build or extend a graph by typing edges",
		Long: `Build a graph interactively, one "source destination" edge per line.

When a file is given, its edges are loaded first (if it exists) and the
result is saved back to it. A line starting with "-" removes that edge.
Lines that are not exactly two node names are rejected and the prompt
stays open. Finish with 'done' or ctrl+d.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) > 0 {
				path = args[0]
			}
			return c.runEdit(cmd, path, !noRank)
		},
	}

	cmd.Flags().BoolVar(&noRank, "no-rank", false, "skip ranking the finished graph")
	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, path string, rank bool) error {
	ctx := cmd.Context()

	g := graph.New()
	if path != "" {
		format, err := pkgio.DetectFormat(path)
		if err != nil {
			return err
		}
		if format == pkgio.FormatDOT {
			return perrors.New(perrors.ErrCodeUnsupported, "cannot save edited graphs as DOT; use .json, .yaml, .toml, .hcl or .txt")
		}
		if _, err := os.Stat(path); err == nil {
			if g, err = pkgio.Import(path); err != nil {
				return err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	final, err := tea.NewProgram(NewEdgeEditorModel(g), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("edge editor: %w", err)
	}
	m := final.(EdgeEditorModel)
	if m.Cancelled {
		printWarning("Edit cancelled, nothing saved")
		return nil
	}

	printSuccess("Graph has %d nodes and %d edges (%d added, %d removed)",
		m.Graph.NodeCount(), m.Graph.EdgeCount(), len(m.Added), len(m.Removed))

	if path != "" {
		if err := pkgio.Export(m.Graph, path); err != nil {
			return err
		}
		printFile(path)
	}
	if !rank || m.Graph.NodeCount() == 0 {
		return nil
	}

	opts, err := c.cfg.pipelineOptions()
	if err != nil {
		return err
	}
	opts.Graph = m.Graph

	runner, err := c.newRunner(ctx, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	printNewline()
	fmt.Println(scoreTable(result.Ranking, 0))
	printNewline()
	printConvergence(result.Ranking)
	return nil
}
