package io

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

// ReadDOT parses a Graphviz digraph and imports its nodes and edges.
// Attributes, subgraph structure and edge keys are ignored; parallel edges
// collapse into one.
func ReadDOT(data []byte) (*graph.Graph, error) {
	dg, err := graphviz.ParseBytes(data)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer dg.Close()

	g := graph.New()
	var nodes []*cgraph.Node
	n, err := dg.FirstNode()
	for ; err == nil && n != nil; n, err = dg.NextNode(n) {
		name, err := n.Name()
		if err != nil {
			return nil, fmt.Errorf("node name: %w", err)
		}
		if err := perrors.ValidateNodeID(name); err != nil {
			return nil, fmt.Errorf("node %q: %w", name, err)
		}
		if err := g.EnsureNode(name); err != nil {
			return nil, fmt.Errorf("node %s: %w", name, err)
		}
		nodes = append(nodes, n)
	}
	if err != nil {
		return nil, fmt.Errorf("walk nodes: %w", err)
	}

	for _, n := range nodes {
		from, _ := n.Name()
		e, err := dg.FirstOut(n)
		for ; err == nil && e != nil; e, err = dg.NextOut(e) {
			head, herr := e.Head()
			if herr != nil {
				return nil, fmt.Errorf("edge head: %w", herr)
			}
			to, herr := head.Name()
			if herr != nil {
				return nil, fmt.Errorf("node name: %w", herr)
			}
			if err := g.Link(from, to); err != nil {
				return nil, fmt.Errorf("edge %s->%s: %w", from, to, err)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("walk edges of %s: %w", from, err)
		}
	}
	return g, nil
}
