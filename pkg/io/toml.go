package io

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

// ReadTOML decodes a TOML graph document from r:
//
//	[[nodes]]
//	id = "A"
//
//	[[edges]]
//	from = "A"
//	to = "B"
func ReadTOML(r io.Reader) (*graph.Graph, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode TOML graph")
	}
	return doc.toGraph()
}

// WriteTOML encodes g as a TOML graph document.
func WriteTOML(g *graph.Graph, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
