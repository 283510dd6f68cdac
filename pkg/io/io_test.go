package io

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/graph"
)

func assertGraph(t *testing.T, g *graph.Graph, nodes []string, edges []graph.Edge) {
	t.Helper()
	if got := g.Nodes(); !slices.Equal(got, nodes) {
		t.Errorf("Nodes() = %v, want %v", got, nodes)
	}
	if got := g.Edges(); !slices.Equal(got, edges) {
		t.Errorf("Edges() = %v, want %v", got, edges)
	}
}

var defaultEdges = []graph.Edge{
	{From: "A", To: "B"}, {From: "A", To: "C"}, {From: "B", To: "C"},
	{From: "C", To: "A"}, {From: "C", To: "D"}, {From: "D", To: "C"},
}

func TestReadJSON(t *testing.T) {
	in := `{
	  "nodes": [{"id": "A"}, {"id": "B"}, {"id": "Z"}],
	  "edges": [{"from": "A", "to": "B"}, {"from": "B", "to": "C"}, {"from": "A", "to": "B"}]
	}`
	g, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	assertGraph(t, g, []string{"A", "B", "Z", "C"}, []graph.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code perrors.Code
	}{
		{"malformed", `{"nodes": [`, perrors.ErrCodeInvalidFormat},
		{"empty id", `{"nodes": [{"id": ""}]}`, perrors.ErrCodeInvalidNode},
		{"whitespace id", `{"edges": [{"from": "a b", "to": "c"}]}`, perrors.ErrCodeInvalidNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if !perrors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	src := graph.Default()
	_ = src.EnsureNode("LONELY")

	tests := []struct {
		name  string
		write func(*graph.Graph, *bytes.Buffer) error
		read  func([]byte) (*graph.Graph, error)
	}{
		{
			"json",
			func(g *graph.Graph, b *bytes.Buffer) error { return WriteJSON(g, b) },
			func(d []byte) (*graph.Graph, error) { return ReadJSON(bytes.NewReader(d)) },
		},
		{
			"yaml",
			func(g *graph.Graph, b *bytes.Buffer) error { return WriteYAML(g, b) },
			func(d []byte) (*graph.Graph, error) { return ReadYAML(bytes.NewReader(d)) },
		},
		{
			"toml",
			func(g *graph.Graph, b *bytes.Buffer) error { return WriteTOML(g, b) },
			func(d []byte) (*graph.Graph, error) { return ReadTOML(bytes.NewReader(d)) },
		},
		{
			"hcl",
			func(g *graph.Graph, b *bytes.Buffer) error { return WriteHCL(g, b) },
			func(d []byte) (*graph.Graph, error) { return ReadHCL(d, "graph.hcl") },
		},
		{
			"edges",
			func(g *graph.Graph, b *bytes.Buffer) error { return graph.WriteEdgeList(g, b) },
			func(d []byte) (*graph.Graph, error) { return graph.ReadEdgeList(bytes.NewReader(d)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.write(src, &buf); err != nil {
				t.Fatalf("write: %v", err)
			}
			got, err := tt.read(buf.Bytes())
			if err != nil {
				t.Fatalf("read: %v\n%s", err, buf.String())
			}
			if got.NodeCount() != src.NodeCount() || got.EdgeCount() != src.EdgeCount() {
				t.Errorf("got %d nodes/%d edges, want %d/%d",
					got.NodeCount(), got.EdgeCount(), src.NodeCount(), src.EdgeCount())
			}
			if !slices.Equal(got.Edges(), src.Edges()) {
				t.Errorf("Edges() = %v, want %v", got.Edges(), src.Edges())
			}
			if !got.HasNode("LONELY") {
				t.Error("isolated node lost in round trip")
			}
		})
	}
}

func TestReadYAML(t *testing.T) {
	in := `
nodes:
  - id: A
edges:
  - {from: A, to: B}
  - {from: B, to: A}
`
	g, err := ReadYAML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadYAML: %v", err)
	}
	assertGraph(t, g, []string{"A", "B"}, []graph.Edge{{From: "A", To: "B"}, {From: "B", To: "A"}})

	empty, err := ReadYAML(strings.NewReader(""))
	if err != nil {
		t.Fatalf("ReadYAML(empty): %v", err)
	}
	if empty.NodeCount() != 0 {
		t.Errorf("empty document gave %d nodes", empty.NodeCount())
	}
}

func TestReadTOML(t *testing.T) {
	in := `
[[edges]]
from = "A"
to = "B"

[[edges]]
from = "B"
to = "C"
`
	g, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	assertGraph(t, g, []string{"A", "B", "C"}, []graph.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})
}

func TestReadHCL(t *testing.T) {
	in := `
node "A" {}
node "B" {}

edge "A" "B" {}
edge "B" "C" {}
`
	g, err := ReadHCL([]byte(in), "web.hcl")
	if err != nil {
		t.Fatalf("ReadHCL: %v", err)
	}
	assertGraph(t, g, []string{"A", "B", "C"}, []graph.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}})

	_, err = ReadHCL([]byte(`node {`), "bad.hcl")
	if !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v, want INVALID_FORMAT", err)
	}
}

func TestReadDOT(t *testing.T) {
	in := `digraph G {
  A -> B;
  A -> C;
  B -> C;
  C -> A;
  C -> D;
  D -> C;
}`
	g, err := ReadDOT([]byte(in))
	if err != nil {
		t.Fatalf("ReadDOT: %v", err)
	}
	if g.NodeCount() != 4 || g.EdgeCount() != 6 {
		t.Fatalf("got %d nodes/%d edges, want 4/6", g.NodeCount(), g.EdgeCount())
	}
	for _, e := range defaultEdges {
		if !g.HasEdge(e.From, e.To) {
			t.Errorf("missing edge %s", e)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]Format{
		"a.json":      FormatJSON,
		"a.YAML":      FormatYAML,
		"a.yml":       FormatYAML,
		"dir/a.toml":  FormatTOML,
		"a.hcl":       FormatHCL,
		"a.gv":        FormatDOT,
		"a.dot":       FormatDOT,
		"edges.txt":   FormatEdgeList,
		"links.edges": FormatEdgeList,
	}
	for path, want := range tests {
		got, err := DetectFormat(path)
		if err != nil || got != want {
			t.Errorf("DetectFormat(%q) = %q, %v; want %q", path, got, err, want)
		}
	}

	if _, err := DetectFormat("graph.xml"); !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("DetectFormat(graph.xml) err = %v, want INVALID_FORMAT", err)
	}
}

func TestImportExport(t *testing.T) {
	dir := t.TempDir()
	src := graph.Default()

	for _, name := range []string{"g.json", "g.yaml", "g.toml", "g.hcl", "g.txt"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Export(src, path); err != nil {
				t.Fatalf("Export: %v", err)
			}
			got, err := Import(path)
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			assertGraph(t, got, src.Nodes(), src.Edges())
		})
	}
}

func TestImportErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Import(filepath.Join(dir, "missing.json")); !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("missing file err = %v, want FILE_NOT_FOUND", err)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("A B C\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Import(bad)
	if !perrors.Is(err, perrors.ErrCodeInvalidFormat) {
		t.Errorf("malformed edge list err = %v, want INVALID_FORMAT", err)
	}
	if err != nil && !strings.Contains(err.Error(), "line 1") {
		t.Errorf("error %q should name the line", err)
	}

	if err := Export(graph.Default(), filepath.Join(dir, "g.dot")); !perrors.Is(err, perrors.ErrCodeUnsupported) {
		t.Errorf("Export(.dot) err = %v, want UNSUPPORTED", err)
	}
}
