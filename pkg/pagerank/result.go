package pagerank

import (
	"maps"
	"slices"

	"github.com/tidwall/btree"
	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of a solve. The caller owns it.
type Result struct {
	// Scores maps every node to its final score.
	Scores map[string]float64 `json:"scores"`

	// Rounds is the number of rounds actually run.
	Rounds int `json:"rounds"`

	// Converged is set when a positive tolerance stopped the loop early.
	Converged bool `json:"converged"`

	// Delta is the largest per-node change in the last round.
	Delta float64 `json:"delta"`
}

// Score pairs a node with its score.
type Score struct {
	ID    string  `json:"id"`
	Value float64 `json:"score"`
}

// byRank orders by descending score, then ascending ID so ties are stable.
func byRank(a, b Score) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	return a.ID < b.ID
}

// Ranked returns every node ordered by descending score; ties are broken by
// node ID.
func (r *Result) Ranked() []Score {
	return r.Top(len(r.Scores))
}

// Top returns the k highest scored nodes in rank order.
func (r *Result) Top(k int) []Score {
	if k <= 0 || len(r.Scores) == 0 {
		return nil
	}
	tr := btree.NewBTreeG[Score](byRank)
	for id, v := range r.Scores {
		tr.Set(Score{ID: id, Value: v})
	}
	out := make([]Score, 0, min(k, tr.Len()))
	tr.Scan(func(s Score) bool {
		out = append(out, s)
		return len(out) < k
	})
	return out
}

// Sum returns the total score mass; it is 1 up to rounding for any
// non-empty result.
func (r *Result) Sum() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	// Sorted keys keep the reduction order, and so the rounding, stable.
	vals := make([]float64, 0, len(r.Scores))
	for _, id := range slices.Sorted(maps.Keys(r.Scores)) {
		vals = append(vals, r.Scores[id])
	}
	return floats.Sum(vals)
}

// Bounds returns the smallest and largest score. Both are 0 for an empty
// result.
func (r *Result) Bounds() (lo, hi float64) {
	first := true
	for _, v := range r.Scores {
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}
