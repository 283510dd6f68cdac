package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pagerank/pkg/graph"
)

// Options configures diagram rendering.
type Options struct {
	// Width and Height are the canvas size in pixels.
	Width  int
	Height int

	// Precision is the number of decimals shown under each node ID.
	// Zero hides the score.
	Precision int

	// Caption is drawn under the graph; see [Summary].
	Caption string
}

// DefaultOptions returns an 800×600 canvas with three-decimal labels.
func DefaultOptions() Options {
	return Options{Width: 800, Height: 600, Precision: 3}
}

// ToDOT converts a ranked graph to Graphviz DOT. Every node is pinned at its
// [CircularLayout] position, filled with [NodeColor] and sized with
// [NodeSize]; nodes missing from scores render at the midpoint style.
// The result is meant for neato, see [RenderSVG].
func ToDOT(g *graph.Graph, scores map[string]float64, opts Options) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	nodes := g.Nodes()
	pos := CircularLayout(nodes, opts.Width, opts.Height)
	lo, hi := bounds(nodes, scores)

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	if opts.Caption != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Caption)
		buf.WriteString("  labelloc=\"b\";\n")
		buf.WriteString("  fontname=\"Arial\";\n")
		buf.WriteString("  fontsize=14;\n")
	}
	buf.WriteString("  node [shape=circle, style=filled, fixedsize=true, fontname=\"Arial Bold\", fontsize=12, fontcolor=white, color=white, penwidth=3];\n")
	buf.WriteString("  edge [color=\"#666666\", penwidth=2, arrowsize=0.8];\n")
	buf.WriteString("\n")

	for _, id := range nodes {
		norm := 0.5
		label := id
		if s, ok := scores[id]; ok {
			norm = Normalize(s, lo, hi)
			if opts.Precision > 0 {
				label = fmt.Sprintf("%s\n%.*f", id, opts.Precision, s)
			}
		}
		p := pos[id]
		size := NodeSize(norm) / 72
		// Graphviz puts the origin bottom-left.
		fmt.Fprintf(&buf, "  %q [label=%q, pos=\"%.2f,%.2f!\", width=%.3f, fillcolor=%q];\n",
			id, label, p.X, float64(opts.Height)-p.Y, size, NodeColor(norm))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func bounds(nodes []string, scores map[string]float64) (lo, hi float64) {
	first := true
	for _, id := range nodes {
		s, ok := scores[id]
		if !ok {
			continue
		}
		if first {
			lo, hi, first = s, s, false
			continue
		}
		lo = min(lo, s)
		hi = max(hi, s)
	}
	return lo, hi
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG lays out a DOT graph with neato and renders it to PNG.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

// RenderPDF lays out the drawing as SVG and converts it with [ToPDF].
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return ToPDF(ctx, svg)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
