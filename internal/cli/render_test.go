package cli

import (
	"testing"

	"github.com/matzehuels/pagerank/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces and blanks", " svg , ,csv", []string{"svg", "csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"valid svg", []string{"svg"}, false},
		{"valid reports", []string{"json", "csv", "txt"}, false},
		{"valid all", []string{"svg", "png", "pdf", "dot", "json", "csv", "txt"}, false},
		{"invalid format", []string{"gif"}, true},
		{"mixed valid invalid", []string{"svg", "gif"}, true},
		{"empty slice", []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := pipeline.ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		args   []string
		sample string
		want   string
	}{
		{"output with format ext", "out/web.svg", nil, "", "out/web"},
		{"output without ext", "out/web", nil, "", "out/web"},
		{"output with other ext", "web.v2", nil, "", "web.v2"},
		{"from input file", "", []string{"data/links.json"}, "", "data/links"},
		{"from sample", "", nil, "star", "star"},
		{"default sample", "", nil, "", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.args, tt.sample); got != tt.want {
				t.Errorf("basePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	t.Run("single format keeps explicit name", func(t *testing.T) {
		got := outputPaths("graph", "graph.svg", []string{"svg"})
		if got["svg"] != "graph.svg" {
			t.Errorf("svg path = %q", got["svg"])
		}
	})

	t.Run("multiple formats use base", func(t *testing.T) {
		got := outputPaths("out/graph", "out/graph.svg", []string{"svg", "csv"})
		if got["svg"] != "out/graph.svg" || got["csv"] != "out/graph.csv" {
			t.Errorf("paths = %v", got)
		}
	})

	t.Run("mismatched extension uses base", func(t *testing.T) {
		got := outputPaths("graph", "graph.svg", []string{"png"})
		if got["png"] != "graph.png" {
			t.Errorf("png path = %q", got["png"])
		}
	})
}

func TestDefaultConstants(t *testing.T) {
	if pipeline.DefaultWidth != 800 {
		t.Errorf("pipeline.DefaultWidth = %v, want 800", pipeline.DefaultWidth)
	}
	if pipeline.DefaultHeight != 600 {
		t.Errorf("pipeline.DefaultHeight = %v, want 600", pipeline.DefaultHeight)
	}
}
