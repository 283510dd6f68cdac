package pagerank

import (
	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

// Graph is the read-only view of a directed graph the solver needs.
// *graph.Graph satisfies it.
//
// Nodes must return the same order for the duration of one solve, and
// OutDegree must equal the number of distinct entries in Successors.
type Graph interface {
	Nodes() []string
	OutDegree(id string) int
	Successors(id string) []string
}

// transition is the column-stochastic vote matrix stored by destination:
// the entries voting for node i live in src[start[i]:start[i+1]], each with
// weight 1/outdeg(src).
type transition struct {
	ids      []string
	start    []int
	src      []int32
	weight   []float64
	dangling []int
}

func (t *transition) size() int { return len(t.ids) }

func (t *transition) edges() int { return len(t.src) }

// buildTransition indexes the nodes and lays out the sparse transition.
// It walks successors twice: once to size each destination's slot, once to
// fill it.
func buildTransition(g Graph) (*transition, error) {
	ids := g.Nodes()
	n := len(ids)
	index := make(map[string]int32, n)
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, perrors.New(perrors.ErrCodeInvalidGraph, "node %q listed twice", id)
		}
		index[id] = int32(i)
	}

	t := &transition{ids: ids, start: make([]int, n+1)}
	succs := make([][]string, n)
	for j, id := range ids {
		out := g.Successors(id)
		if k := g.OutDegree(id); k != len(out) {
			return nil, perrors.New(perrors.ErrCodeInvalidGraph,
				"node %q reports out-degree %d but %d successors", id, k, len(out))
		}
		if len(out) == 0 {
			t.dangling = append(t.dangling, j)
			continue
		}
		succs[j] = out
		for _, to := range out {
			i, ok := index[to]
			if !ok {
				return nil, perrors.New(perrors.ErrCodeInvalidGraph,
					"edge %s -> %s references unknown node", id, to)
			}
			t.start[i+1]++
		}
	}
	for i := 1; i <= n; i++ {
		t.start[i] += t.start[i-1]
	}

	m := t.start[n]
	t.src = make([]int32, m)
	t.weight = make([]float64, m)
	fill := make([]int, n)
	copy(fill, t.start[:n])
	for j, out := range succs {
		if len(out) == 0 {
			continue
		}
		w := 1.0 / float64(len(out))
		for _, to := range out {
			i := index[to]
			t.src[fill[i]] = int32(j)
			t.weight[fill[i]] = w
			fill[i]++
		}
	}
	return t, nil
}

// danglingSum totals the score held by nodes without outbound links.
func (t *transition) danglingSum(score []float64) float64 {
	var sum float64
	for _, j := range t.dangling {
		sum += score[j]
	}
	return sum
}

// apply computes next[lo:hi] from prev. It reads only prev and writes only
// its own slice of next, so disjoint ranges may run concurrently.
func (t *transition) apply(prev, next []float64, lo, hi int, base, damping, danglingShare float64) {
	for i := lo; i < hi; i++ {
		var votes float64
		for p := t.start[i]; p < t.start[i+1]; p++ {
			votes += prev[t.src[p]] * t.weight[p]
		}
		next[i] = base + damping*(votes+danglingShare)
	}
}
