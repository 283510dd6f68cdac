// Package io reads and writes directed graphs and PageRank results.
//
// # Graph Documents
//
// The structured formats share one document shape: a list of nodes and a
// list of edges.
//
//	{
//	  "nodes": [{"id": "A"}, {"id": "B"}],
//	  "edges": [{"from": "A", "to": "B"}]
//	}
//
// The same shape is accepted as YAML and TOML ([[nodes]] / [[edges]] tables).
// HCL uses labelled blocks:
//
//	node "A" {}
//	edge "A" "B" {}
//
// Listing nodes is optional: an edge endpoint that was not declared is added
// on first use, and a repeated edge collapses into one. Declared nodes keep
// their document order, which is the order the solver and the reports see.
//
// Graphviz DOT files are parsed with go-graphviz; every node and every edge of
// the root graph is imported, attributes are ignored. Plain edge lists
// ("source destination" per line) are handled by [graph.ReadEdgeList].
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension:
//
//	g, err := io.Import("web.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.Export(g, "web.json")
//
// Unknown extensions are rejected with an INVALID_FORMAT error.
//
// # Scores
//
// [WriteScoresJSON] and [WriteScoresCSV] write a ranked result, highest score
// first; [ExportScores] chooses between them by extension.
//
// [graph.ReadEdgeList]: github.com/matzehuels/pagerank/pkg/graph.ReadEdgeList
package io
