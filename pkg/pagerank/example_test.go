package pagerank_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/pagerank/pkg/graph"
	"github.com/matzehuels/pagerank/pkg/pagerank"
)

func ExampleSolve() {
	g := graph.New()
	_ = g.Link("A", "B")
	_ = g.Link("A", "C")
	_ = g.Link("B", "C")
	_ = g.Link("C", "A")
	_ = g.Link("C", "D")
	_ = g.Link("D", "C")

	res, err := pagerank.Solve(context.Background(), g, pagerank.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range res.Ranked() {
		fmt.Printf("%s: %.4f\n", s.ID, s.Value)
	}
	fmt.Printf("rounds: %d\n", res.Rounds)
	// Output:
	// C: 0.4292
	// A: 0.2199
	// D: 0.2199
	// B: 0.1310
	// rounds: 100
}
