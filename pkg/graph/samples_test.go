package graph

import (
	"testing"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

func TestSamples(t *testing.T) {
	tests := []struct {
		name      string
		wantNodes int
		wantEdges int
	}{
		{SampleDefault, 4, 6},
		{SampleChain, 4, 3},
		{SampleStar, 5, 8},
		{SampleComplete, 4, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Sample(tt.name)
			if err != nil {
				t.Fatalf("Sample(%q) error: %v", tt.name, err)
			}
			if g.NodeCount() != tt.wantNodes {
				t.Errorf("NodeCount = %d, want %d", g.NodeCount(), tt.wantNodes)
			}
			if g.EdgeCount() != tt.wantEdges {
				t.Errorf("EdgeCount = %d, want %d", g.EdgeCount(), tt.wantEdges)
			}
			if err := g.Validate(); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

func TestSampleUnknown(t *testing.T) {
	_, err := Sample("nope")
	if !perrors.Is(err, perrors.ErrCodeNotFound) {
		t.Errorf("Sample(nope) error = %v, want NOT_FOUND", err)
	}
}

func TestSamplesOrder(t *testing.T) {
	got := Samples()
	want := []string{SampleDefault, SampleChain, SampleStar, SampleComplete}
	if len(got) != len(want) {
		t.Fatalf("len(Samples) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Name != want[i] {
			t.Errorf("Samples()[%d] = %s, want %s", i, got[i].Name, want[i])
		}
		if got[i].Description == "" {
			t.Errorf("Samples()[%d] has no description", i)
		}
	}
}

func TestStarIsBidirectional(t *testing.T) {
	g := Star()
	for _, leaf := range []string{"A", "B", "C", "D"} {
		if !g.HasEdge("CENTER", leaf) || !g.HasEdge(leaf, "CENTER") {
			t.Errorf("missing spoke CENTER<->%s", leaf)
		}
	}
	if g.OutDegree("CENTER") != 4 {
		t.Errorf("OutDegree(CENTER) = %d, want 4", g.OutDegree("CENTER"))
	}
}
