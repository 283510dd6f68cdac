package render

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/pagerank/pkg/graph"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

func TestCircularLayout(t *testing.T) {
	if got := CircularLayout(nil, 800, 600); len(got) != 0 {
		t.Errorf("empty layout = %v, want empty", got)
	}

	single := CircularLayout([]string{"A"}, 801, 601)
	if p := single["A"]; p.X != 400 || p.Y != 300 {
		t.Errorf("single node at %v, want (400, 300)", p)
	}

	pos := CircularLayout([]string{"A", "B", "C", "D"}, 800, 600)
	want := map[string]Point{
		"A": {400, 120},
		"B": {580, 300},
		"C": {400, 480},
		"D": {220, 300},
	}
	for id, w := range want {
		p := pos[id]
		if math.Abs(p.X-w.X) > 1e-9 || math.Abs(p.Y-w.Y) > 1e-9 {
			t.Errorf("pos[%s] = %v, want %v", id, p, w)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		score, lo, hi, want float64
	}{
		{0.2, 0.2, 0.2, 0.5},
		{0.1, 0.1, 0.5, 0},
		{0.5, 0.1, 0.5, 1},
		{0.3, 0.1, 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := Normalize(tt.score, tt.lo, tt.hi); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.score, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestNodeColor(t *testing.T) {
	tests := map[float64]string{
		0:   "#e52d2d",
		0.5: "#e5e32d",
		1:   "#31e52d",
	}
	for norm, want := range tests {
		if got := NodeColor(norm); got != want {
			t.Errorf("NodeColor(%v) = %s, want %s", norm, got, want)
		}
	}
}

func TestNodeSize(t *testing.T) {
	if got := NodeSize(0); got != 40 {
		t.Errorf("NodeSize(0) = %v, want 40", got)
	}
	if got := NodeSize(1); got != 80 {
		t.Errorf("NodeSize(1) = %v, want 80", got)
	}
	if got := NodeSize(0.5); got != 60 {
		t.Errorf("NodeSize(0.5) = %v, want 60", got)
	}
}

func TestSummary(t *testing.T) {
	res := &pagerank.Result{Scores: map[string]float64{"A": 0.2, "B": 0.5, "C": 0.3}}
	want := "PageRank Scores (Ranked): B: 0.50 | C: 0.30 | A: 0.20"
	if got := Summary(res, 2); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	res := &pagerank.Result{Scores: map[string]float64{"A": 0.25, "B": 0.75}}
	var buf bytes.Buffer
	if err := WriteReport(&buf, res); err != nil {
		t.Fatalf("WriteReport: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"PAGERANK RESULTS",
		"Rank   Node     Score        Percentage",
		"1      B        0.750000     75.00      %",
		"2      A        0.250000     25.00      %",
		"Total: 1.000000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestToDOT(t *testing.T) {
	g := graph.Default()
	scores := map[string]float64{"A": 0.22, "B": 0.13, "C": 0.43, "D": 0.22}
	dot := ToDOT(g, scores, DefaultOptions())

	for _, want := range []string{
		"digraph G {",
		`"A" -> "B";`,
		`"D" -> "C";`,
		`pos="400.00,480.00!"`, // A at the top, y flipped
		`fillcolor="#31e52d"`,  // C has the top score
		`fillcolor="#e52d2d"`,  // B has the lowest
		`label="C\n0.430"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTCaption(t *testing.T) {
	scores := map[string]float64{"A": 0.35, "B": 0.65}
	g := graph.New()
	_ = g.Link("A", "B")

	plain := ToDOT(g, scores, DefaultOptions())
	if strings.Contains(plain, "labelloc") {
		t.Errorf("caption drawn without one set:\n%s", plain)
	}

	opts := DefaultOptions()
	opts.Caption = Summary(&pagerank.Result{Scores: scores}, 2)
	dot := ToDOT(g, scores, opts)
	for _, want := range []string{
		`label="PageRank Scores (Ranked): B: 0.65 | A: 0.35";`,
		`labelloc="b";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping graphviz render in short mode")
	}
	dot := ToDOT(graph.Chain(), map[string]float64{"A": 0.1, "B": 0.2, "C": 0.3, "D": 0.4}, DefaultOptions())
	svg, err := RenderSVG(context.Background(), dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Error("output is not SVG")
	}
}
