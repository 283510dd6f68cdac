package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pagerank/pkg/graph"
	"github.com/matzehuels/pagerank/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	sample  string   // built-in sample instead of a file
	output  string   // output file (single format) or base path (multiple)
	formats []string // svg (default), png, pdf, dot, json, csv, txt
	noCache bool
	refresh bool
}

// renderCommand creates the render command for generating diagrams and
// score reports.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts
	var formatsStr string

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Rank a graph and draw it",
		Long: `Rank a graph and write the result in one or more formats.

Diagram formats (svg, png, pdf, dot) place nodes on a circle, sized and
colored by score from red (lowest) to green (highest). Report formats
(json, csv, txt) hold the ranked scores.`,
		Example: `  pagerank render web.json
  pagerank render --sample complete -f svg,png -o complete
  pagerank render links.txt -f txt,csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sample, "sample", "s", "", "render a built-in sample")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, json, csv, txt (comma-separated)")
	cmd.Flags().Int("width", 0, "canvas width in pixels (default 800)")
	cmd.Flags().Int("height", 0, "canvas height in pixels (default 600)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached rankings and drawings")
	_ = c.v.BindPFlag("width", cmd.Flags().Lookup("width"))
	_ = c.v.BindPFlag("height", cmd.Flags().Lookup("height"))

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, args []string, opts renderOpts) error {
	ctx := cmd.Context()

	popts, err := c.cfg.pipelineOptions()
	if err != nil {
		return err
	}
	graphSource(&popts, args, opts.sample)
	popts.Formats = opts.formats
	popts.Refresh = opts.refresh

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spin := newSpinner(ctx, os.Stderr, "Rendering...")
	spin.Start()
	result, err := runner.Execute(ctx, popts)
	if err != nil {
		spin.Fail("Render failed")
		return err
	}
	spin.Stop()
	prog.ranked(result)
	prog.done("rendered", "formats", strings.Join(opts.formats, ","), "cached", result.CacheInfo.RenderHit)

	printStats(result, result.CacheInfo.RenderHit)

	base := basePath(opts.output, args, popts.Sample)
	paths := outputPaths(base, opts.output, opts.formats)
	for _, format := range opts.formats {
		path := paths[format]
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printSuccess("Rendered %d file(s)", len(opts.formats))
	return nil
}

// basePath derives the output base from --output, the input file, or the
// sample name, in that order. A known format extension on --output is
// stripped.
func basePath(output string, args []string, sample string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if len(args) > 0 {
		return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
	}
	if sample == "" {
		sample = graph.SampleDefault
	}
	return sample
}

// outputPaths maps each format to its file. A single format written to an
// explicit --output keeps that exact name.
func outputPaths(base, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" && slices.Contains(formats, strings.TrimPrefix(filepath.Ext(output), ".")) {
		paths[formats[0]] = output
		return paths
	}
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
