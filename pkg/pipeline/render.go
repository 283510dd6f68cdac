package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/pagerank/pkg/graph"
	pkgio "github.com/matzehuels/pagerank/pkg/io"
	"github.com/matzehuels/pagerank/pkg/observability"
	"github.com/matzehuels/pagerank/pkg/pagerank"
	"github.com/matzehuels/pagerank/pkg/render"
)

const captionPrecision = 4

// Render produces every requested format without touching the cache.
// The diagram formats share one DOT source.
func Render(ctx context.Context, g *graph.Graph, res *pagerank.Result, opts Options) (artifacts map[string][]byte, err error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	ropts := render.DefaultOptions()
	ropts.Width, ropts.Height = opts.Width, opts.Height
	if len(res.Scores) > 0 {
		ropts.Caption = render.Summary(res, captionPrecision)
	}
	dot := render.ToDOT(g, res.Scores, ropts)

	artifacts = make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(ctx, format, dot, res)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, format, dot string, res *pagerank.Result) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return render.RenderSVG(ctx, dot)
	case FormatPNG:
		return render.RenderPNG(ctx, dot)
	case FormatPDF:
		return render.RenderPDF(ctx, dot)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJSON:
		err = pkgio.WriteScoresJSON(res, &buf)
	case FormatCSV:
		err = pkgio.WriteScoresCSV(res, &buf)
	case FormatText:
		err = render.WriteReport(&buf, res)
	default:
		err = ValidateFormat(format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
