// Package pkg provides the core libraries for ranking directed graphs with
// PageRank.
//
// # Overview
//
// A graph is loaded from a file or a built-in sample, ranked by power
// iteration, and presented as a ranked report or a circular diagram. The
// pkg directory is organized into four areas:
//
//  1. Domain: [graph] (the directed graph) and [pagerank] (the solver)
//  2. Presentation and I/O: [render] and [io]
//  3. Orchestration: [pipeline] (load → rank → render) and [cache]
//  4. Support: [errors], [observability], [metrics], [buildinfo]
//
// # Architecture
//
// The typical data flow:
//
//	graph file / sample
//	         ↓
//	    [io] or [graph] package (build the graph)
//	         ↓
//	    [pagerank] package (scores per node)
//	         ↓
//	    [render] package (report, DOT, SVG/PNG/PDF)
//
// # Quick Start
//
//	g := graph.Default()
//	res, err := pagerank.Solve(ctx, g, pagerank.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	render.WriteReport(os.Stdout, res)
//
// # Main Packages
//
// [graph] - Directed graph with set semantics for nodes and edges, the
// sample topologies, and "source destination" edge-list parsing.
//
// [pagerank] - The solver. Builds a sparse pull-oriented transition from the
// graph, then runs double-buffered power iteration with dangling-mass
// redistribution. Optional early stop on a tolerance and optional parallel
// rounds.
//
// [io] - Graph files in JSON, YAML, TOML, HCL, DOT and edge-list form, and
// score export as JSON or CSV.
//
// [render] - Circular layout, score-to-color and score-to-size scales, the
// ranked text report, and Graphviz rendering.
//
// [pipeline] - The load → rank → render sequence shared by the CLI and the
// HTTP API, with rankings and drawings cached by content.
//
// [cache] - File, null and redis caches behind one interface.
//
// [observability] - Hook registry for solver, pipeline, cache and HTTP
// events. [metrics] implements the hooks with prometheus collectors.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test -run Example ./pkg/...       # Examples only
//	go test -tags integration ./pkg/...  # Include redis integration tests
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/graph
// [pagerank]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/pagerank
// [io]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/observability
// [metrics]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/metrics
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pagerank/pkg/buildinfo
package pkg
