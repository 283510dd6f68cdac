package pagerank

import (
	"context"
	"testing"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

// fakeGraph lets tests hand the solver inconsistent views.
type fakeGraph struct {
	nodes  []string
	succ   map[string][]string
	degree map[string]int
}

func (f fakeGraph) Nodes() []string { return f.nodes }

func (f fakeGraph) Successors(id string) []string { return f.succ[id] }

func (f fakeGraph) OutDegree(id string) int {
	if d, ok := f.degree[id]; ok {
		return d
	}
	return len(f.succ[id])
}

func TestBuildTransitionLayout(t *testing.T) {
	g := fakeGraph{
		nodes: []string{"A", "B", "C"},
		succ: map[string][]string{
			"A": {"B", "C"},
			"B": {"C"},
		},
	}
	tr, err := buildTransition(g)
	if err != nil {
		t.Fatalf("buildTransition: %v", err)
	}
	if tr.size() != 3 || tr.edges() != 3 {
		t.Fatalf("size/edges = %d/%d, want 3/3", tr.size(), tr.edges())
	}
	if want := []int{0, 0, 1, 3}; !equalInts(tr.start, want) {
		t.Errorf("start = %v, want %v", tr.start, want)
	}
	if len(tr.dangling) != 1 || tr.dangling[0] != 2 {
		t.Errorf("dangling = %v, want [2]", tr.dangling)
	}
	// C receives 1/2 from A and 1 from B.
	var total float64
	for p := tr.start[2]; p < tr.start[3]; p++ {
		total += tr.weight[p]
	}
	if total != 1.5 {
		t.Errorf("weights into C sum to %v, want 1.5", total)
	}
}

func TestBuildTransitionRejectsInconsistentGraph(t *testing.T) {
	tests := []struct {
		name string
		g    fakeGraph
	}{
		{"duplicate node", fakeGraph{nodes: []string{"A", "A"}}},
		{"unknown successor", fakeGraph{
			nodes: []string{"A"},
			succ:  map[string][]string{"A": {"Z"}},
		}},
		{"degree mismatch", fakeGraph{
			nodes:  []string{"A", "B"},
			succ:   map[string][]string{"A": {"B"}},
			degree: map[string]int{"A": 2},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(context.Background(), tt.g, DefaultOptions())
			if !perrors.Is(err, perrors.ErrCodeInvalidGraph) {
				t.Errorf("err = %v, want INVALID_GRAPH", err)
			}
		})
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
