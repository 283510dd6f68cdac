// Package render turns a ranked graph into something to look at.
//
// # Layout and Style
//
// [CircularLayout] places nodes on a circle in graph order, starting at the
// top and going clockwise. [Normalize] maps a score into [0,1] relative to
// the smallest and largest score of the run; [NodeColor] and [NodeSize] turn
// that into a red→green fill and a diameter between 40 and 80 pixels.
//
// # Reports
//
// [WriteReport] prints the ranked score table used by the CLI and [Summary]
// gives the one-line caption:
//
//	PageRank Scores (Ranked): C: 0.4292 | A: 0.2199 | D: 0.2199 | B: 0.1310
//
// # Diagrams
//
// [ToDOT] emits a Graphviz digraph with every node pinned at its circular
// layout position, sized and colored by score. [RenderSVG] and [RenderPNG]
// lay it out with neato through go-graphviz; [ToPDF] converts an SVG with
// the external rsvg-convert tool.
//
//	dot := render.ToDOT(g, res.Scores, render.DefaultOptions())
//	svg, err := render.RenderSVG(ctx, dot)
package render
