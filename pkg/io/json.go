package io

import (
	"encoding/json"
	"fmt"
	"io"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

// ReadJSON decodes a JSON graph document from r.
//
// The input must be a JSON object with "nodes" and "edges" arrays:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}],
//	  "edges": [{"from": "a", "to": "b"}]
//	}
//
// Malformed JSON is reported as INVALID_FORMAT; a bad node ID as
// INVALID_NODE. Errors name the node or edge that caused them.
//
// The returned graph is independent of r. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode JSON graph")
	}
	return doc.toGraph()
}

// WriteJSON encodes g as an indented JSON graph document.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *graph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
