package io

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

// Format names a graph file format.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
	FormatHCL      Format = "hcl"
	FormatDOT      Format = "dot"
	FormatEdgeList Format = "edges"
)

var extFormats = map[string]Format{
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
	".hcl":   FormatHCL,
	".dot":   FormatDOT,
	".gv":    FormatDOT,
	".txt":   FormatEdgeList,
	".edges": FormatEdgeList,
}

// Extensions lists the file extensions [Import] understands.
func Extensions() []string {
	return []string{".json", ".yaml", ".yml", ".toml", ".hcl", ".dot", ".gv", ".txt", ".edges"}
}

// DetectFormat maps a file name to its format by extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}
	return "", perrors.New(perrors.ErrCodeInvalidFormat,
		"unsupported graph file %q (expected one of %s)", filepath.Base(path), strings.Join(Extensions(), ", "))
}

// Read decodes a graph in the given format. name is used for diagnostics.
func Read(data []byte, format Format, name string) (*graph.Graph, error) {
	switch format {
	case FormatJSON:
		return ReadJSON(bytes.NewReader(data))
	case FormatYAML:
		return ReadYAML(bytes.NewReader(data))
	case FormatTOML:
		return ReadTOML(bytes.NewReader(data))
	case FormatHCL:
		return ReadHCL(data, name)
	case FormatDOT:
		return ReadDOT(data)
	case FormatEdgeList:
		g, err := graph.ReadEdgeList(bytes.NewReader(data))
		if err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "read edge list %s", name)
		}
		return g, nil
	}
	return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unsupported graph format %q", format)
}

// Write encodes g in the given format. DOT output is produced by
// pkg/render, not here.
func Write(g *graph.Graph, format Format, w io.Writer) error {
	switch format {
	case FormatJSON:
		return WriteJSON(g, w)
	case FormatYAML:
		return WriteYAML(g, w)
	case FormatTOML:
		return WriteTOML(g, w)
	case FormatHCL:
		return WriteHCL(g, w)
	case FormatEdgeList:
		return graph.WriteEdgeList(g, w)
	}
	return perrors.New(perrors.ErrCodeUnsupported, "cannot write graphs as %q", format)
}

// Import reads the graph file at path, choosing the decoder by extension.
func Import(path string) (*graph.Graph, error) {
	if err := perrors.ValidatePath(path); err != nil {
		return nil, err
	}
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perrors.Wrap(perrors.ErrCodeFileNotFound, err, "graph file %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	g, err := Read(data, format, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Export writes g to path in the format implied by its extension.
func Export(g *graph.Graph, path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, format, f)
}
