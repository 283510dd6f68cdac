package graph

import (
	"fmt"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

// Sample names accepted by [Sample].
const (
	SampleDefault  = "default"
	SampleChain    = "chain"
	SampleStar     = "star"
	SampleComplete = "complete"
)

// SampleInfo describes a built-in topology.
type SampleInfo struct {
	Name        string
	Description string
	Build       func() *Graph
}

var samples = []SampleInfo{
	{Name: SampleDefault, Description: "Default graph (A->B, A->C, B->C, C->A, C->D, D->C)", Build: Default},
	{Name: SampleChain, Description: "Simple chain (A->B->C->D)", Build: Chain},
	{Name: SampleStar, Description: "Star graph (CENTER<->A,B,C,D)", Build: Star},
	{Name: SampleComplete, Description: "Complete graph (all->all)", Build: Complete},
}

// Samples returns the built-in topologies in menu order.
func Samples() []SampleInfo {
	out := make([]SampleInfo, len(samples))
	copy(out, samples)
	return out
}

// Sample builds the named sample graph. Unknown names return an
// ErrCodeNotFound error.
func Sample(name string) (*Graph, error) {
	for _, s := range samples {
		if s.Name == name {
			return s.Build(), nil
		}
	}
	return nil, perrors.New(perrors.ErrCodeNotFound, "unknown sample graph: %q", name)
}

// Default returns the reference topology:
// A->B, A->C, B->C, C->A, C->D, D->C.
func Default() *Graph {
	return fromEdges([][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "C"},
		{"C", "A"}, {"C", "D"},
		{"D", "C"},
	})
}

// Chain returns A->B->C->D. D is dangling.
func Chain() *Graph {
	return fromEdges([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}})
}

// Star returns a CENTER node linked in both directions to A, B, C and D.
func Star() *Graph {
	g := New()
	const center = "CENTER"
	for _, leaf := range []string{"A", "B", "C", "D"} {
		mustLink(g, center, leaf)
		mustLink(g, leaf, center)
	}
	return g
}

// Complete returns the complete directed graph on A..D without self loops.
func Complete() *Graph {
	g := New()
	ids := []string{"A", "B", "C", "D"}
	for _, src := range ids {
		for _, dst := range ids {
			if src != dst {
				mustLink(g, src, dst)
			}
		}
	}
	return g
}

func fromEdges(edges [][2]string) *Graph {
	g := New()
	for _, e := range edges {
		mustLink(g, e[0], e[1])
	}
	return g
}

func mustLink(g *Graph, from, to string) {
	if err := g.Link(from, to); err != nil {
		panic(fmt.Sprintf("sample graph: %v", err))
	}
}
