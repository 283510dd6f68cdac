// Package graph provides the directed graph consumed by the PageRank solver.
//
// # Overview
//
// A [Graph] is a set of string-identified nodes plus a set of directed,
// unweighted edges. Duplicate edges collapse, so [Graph.OutDegree] always
// counts distinct successors. Node enumeration follows insertion order,
// which keeps solver indexing and every rendered report deterministic.
//
// # Basic Usage
//
// Create a graph with [New], then either add nodes and edges separately or
// use [Graph.Link], which creates missing endpoints on the fly:
//
//	g := graph.New()
//	_ = g.Link("A", "B")
//	_ = g.Link("B", "A")
//
// Query the structure with [Graph.Successors], [Graph.Predecessors],
// [Graph.OutDegree] and [Graph.Sinks] (the dangling nodes).
//
// # Samples
//
// [Samples] returns the built-in topologies (default, chain, star, complete)
// used by the CLI and the HTTP API. [Sample] looks one up by name.
//
// # Edge Lists
//
// [ParseEdgeLine] and [ReadEdgeList] turn "source destination" lines into
// edges. A malformed line is rejected as a whole and never half-applied.
//
// # Concurrency
//
// Graph is not safe for concurrent mutation. The solver only reads, so any
// number of solves may share one graph while nobody writes to it.
package graph
