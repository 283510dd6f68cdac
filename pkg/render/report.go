package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/pagerank/pkg/pagerank"
)

// WriteReport prints the ranked score table:
//
//	==================================================
//	PAGERANK RESULTS
//	==================================================
//	Rank   Node     Score        Percentage
//	------------------------------------------------
//	1      C        0.429209     42.92      %
//	...
//	------------------------------------------------
//	Total: 1.000000
//	==================================================
//
// Percentages are relative to the total so they add up to 100 even when
// rounding leaves the total slightly off 1.
func WriteReport(w io.Writer, res *pagerank.Result) error {
	var b strings.Builder
	rule := strings.Repeat("=", 50)
	dash := strings.Repeat("-", 48)

	fmt.Fprintf(&b, "\n%s\nPAGERANK RESULTS\n%s\n", rule, rule)
	fmt.Fprintf(&b, "%-6s %-8s %-12s %-12s\n", "Rank", "Node", "Score", "Percentage")
	b.WriteString(dash + "\n")

	total := res.Sum()
	for i, s := range res.Ranked() {
		pct := 0.0
		if total > 0 {
			pct = s.Value / total * 100
		}
		fmt.Fprintf(&b, "%-6d %-8s %-12.6f %-11.2f%%\n", i+1, s.ID, s.Value, pct)
	}

	b.WriteString(dash + "\n")
	fmt.Fprintf(&b, "Total: %.6f\n%s\n", total, rule)

	_, err := io.WriteString(w, b.String())
	return err
}

// Summary returns a one-line ranking caption with scores at the given
// precision.
func Summary(res *pagerank.Result, precision int) string {
	ranked := res.Ranked()
	parts := make([]string, len(ranked))
	for i, s := range ranked {
		parts[i] = fmt.Sprintf("%s: %.*f", s.ID, precision, s.Value)
	}
	return "PageRank Scores (Ranked): " + strings.Join(parts, " | ")
}
