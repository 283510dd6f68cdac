package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pagerank/pkg/graph"
)

// samplesCommand creates the samples command.
func (c *CLI) samplesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample graphs",
		Long: `List the built-in sample graphs.

With -i, pick one from an interactive list and rank it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				fmt.Println(samplesTable(graph.Samples()))
				printNextStep("Rank one", "pagerank rank --sample <name>")
				return nil
			}
			return c.pickSample(cmd)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a sample and rank it")
	return cmd
}

func (c *CLI) pickSample(cmd *cobra.Command) error {
	model := NewSampleListModel(graph.Samples())
	final, err := tea.NewProgram(model, tea.WithContext(cmd.Context())).Run()
	if err != nil {
		return fmt.Errorf("sample picker: %w", err)
	}

	selected := final.(SampleListModel).Selected
	if selected == nil {
		printInfo("No sample selected")
		return nil
	}

	opts, err := c.sampleOptions(selected.Name)
	if err != nil {
		return err
	}
	runner, err := c.newRunner(cmd.Context(), false)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(cmd.Context(), opts)
	if err != nil {
		return err
	}

	printSuccess("Ranked %s", styleHighlight.Render(selected.Name))
	printStats(result, result.CacheInfo.RankHit)
	printNewline()
	fmt.Println(scoreTable(result.Ranking, 0))
	printNewline()
	printConvergence(result.Ranking)
	return nil
}

func samplesTable(samples []graph.SampleInfo) string {
	rows := make([][]string, len(samples))
	for i, s := range samples {
		g := s.Build()
		rows[i] = []string{s.Name, strconv.Itoa(g.NodeCount()), strconv.Itoa(g.EdgeCount()), s.Description}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Sample", "Nodes", "Edges", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle.Foreground(colorCyan)
			case col == 3:
				return cellStyle.Foreground(colorGray)
			}
			return cellStyle
		}).
		Render()
}
