package io

import (
	"fmt"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

type document struct {
	Nodes []node `json:"nodes" yaml:"nodes" toml:"nodes"`
	Edges []edge `json:"edges" yaml:"edges" toml:"edges"`
}

type node struct {
	ID string `json:"id" yaml:"id" toml:"id"`
}

type edge struct {
	From string `json:"from" yaml:"from" toml:"from"`
	To   string `json:"to" yaml:"to" toml:"to"`
}

func fromGraph(g *graph.Graph) document {
	ids := g.Nodes()
	edges := g.Edges()
	doc := document{
		Nodes: make([]node, len(ids)),
		Edges: make([]edge, len(edges)),
	}
	for i, id := range ids {
		doc.Nodes[i] = node{ID: id}
	}
	for i, e := range edges {
		doc.Edges[i] = edge{From: e.From, To: e.To}
	}
	return doc
}

// toGraph builds a graph from a decoded document. Node IDs are checked
// with perrors.ValidateNodeID so every format enforces the same rules.
func (d document) toGraph() (*graph.Graph, error) {
	g := graph.New()
	for _, n := range d.Nodes {
		if err := perrors.ValidateNodeID(n.ID); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.ID, err)
		}
		if err := g.EnsureNode(n.ID); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range d.Edges {
		for _, id := range []string{e.From, e.To} {
			if err := perrors.ValidateNodeID(id); err != nil {
				return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
			}
		}
		if err := g.Link(e.From, e.To); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}
