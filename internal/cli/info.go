package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagerank/pkg/graph"
	"github.com/matzehuels/pagerank/pkg/pipeline"
)

// graphInfo summarizes the structure that matters to the solver.
type graphInfo struct {
	Nodes     int
	Edges     int
	Dangling  []string // nodes with no outgoing links
	Sources   []string // nodes nothing links to
	SelfLoops int
	MaxOut    int
	MaxIn     int
}

func describeGraph(g *graph.Graph) graphInfo {
	info := graphInfo{
		Nodes:    g.NodeCount(),
		Edges:    g.EdgeCount(),
		Dangling: g.Sinks(),
		Sources:  g.Sources(),
	}
	for _, id := range g.Nodes() {
		info.MaxOut = max(info.MaxOut, g.OutDegree(id))
		info.MaxIn = max(info.MaxIn, g.InDegree(id))
		if g.HasEdge(id, id) {
			info.SelfLoops++
		}
	}
	return info
}

// infoCommand creates the info command.
func (c *CLI) infoCommand() *cobra.Command {
	var sample string

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Show graph structure without ranking",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts pipeline.Options
			graphSource(&opts, args, sample)

			runner := pipeline.NewRunner(nil, nil, c.Logger)
			g, err := runner.Load(cmd.Context(), opts)
			if err != nil {
				return err
			}

			info := describeGraph(g)
			printKeyValue("Source", opts.SourceLabel())
			printKeyValue("Nodes", strconv.Itoa(info.Nodes))
			printKeyValue("Edges", strconv.Itoa(info.Edges))
			printKeyValue("Dangling", listOrNone(info.Dangling))
			printKeyValue("Sources", listOrNone(info.Sources))
			printKeyValue("Self loops", strconv.Itoa(info.SelfLoops))
			printKeyValue("Max out", strconv.Itoa(info.MaxOut))
			printKeyValue("Max in", strconv.Itoa(info.MaxIn))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sample, "sample", "s", "", "describe a built-in sample")
	return cmd
}

func listOrNone(ids []string) string {
	if len(ids) == 0 {
		return "none"
	}
	return strings.Join(ids, ", ")
}
