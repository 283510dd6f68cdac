package io

import (
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

type hclDocument struct {
	Nodes []hclNode `hcl:"node,block"`
	Edges []hclEdge `hcl:"edge,block"`
}

type hclNode struct {
	ID string `hcl:"id,label"`
}

type hclEdge struct {
	From string `hcl:"from,label"`
	To   string `hcl:"to,label"`
}

// ReadHCL decodes an HCL graph document. filename is only used in
// diagnostics.
//
//	node "A" {}
//	edge "A" "B" {}
func ReadHCL(data []byte, filename string) (*graph.Graph, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, diags, "parse HCL file %s", filename)
	}

	var parsed hclDocument
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, diags, "decode HCL file %s", filename)
	}

	doc := document{
		Nodes: make([]node, len(parsed.Nodes)),
		Edges: make([]edge, len(parsed.Edges)),
	}
	for i, n := range parsed.Nodes {
		doc.Nodes[i] = node{ID: n.ID}
	}
	for i, e := range parsed.Edges {
		doc.Edges[i] = edge{From: e.From, To: e.To}
	}
	return doc.toGraph()
}

// WriteHCL encodes g as HCL node and edge blocks.
func WriteHCL(g *graph.Graph, w io.Writer) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for _, id := range g.Nodes() {
		body.AppendNewBlock("node", []string{id})
	}
	if g.EdgeCount() > 0 {
		body.AppendNewline()
	}
	for _, e := range g.Edges() {
		body.AppendNewBlock("edge", []string{e.From, e.To})
	}
	_, err := f.WriteTo(w)
	return err
}
