package io

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

// ReadYAML decodes a YAML graph document from r.
//
//	nodes:
//	  - id: A
//	edges:
//	  - {from: A, to: B}
func ReadYAML(r io.Reader) (*graph.Graph, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return graph.New(), nil
		}
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode YAML graph")
	}
	return doc.toGraph()
}

// WriteYAML encodes g as a YAML graph document.
func WriteYAML(g *graph.Graph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}
