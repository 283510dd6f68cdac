package pagerank

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
	"github.com/matzehuels/pagerank/pkg/observability"
)

// Rank is Solve without the run statistics: it returns just the node → score
// mapping.
func Rank(ctx context.Context, g Graph, opts Options) (map[string]float64, error) {
	res, err := Solve(ctx, g, opts)
	if err != nil {
		return nil, err
	}
	return res.Scores, nil
}

// Solve runs PageRank power iteration over g.
//
// Options are validated first; an invalid configuration fails before the
// graph is read. A graph without nodes returns an empty result and no error.
// Otherwise every node starts at 1/n and Solve runs opts.Iterations rounds,
// or fewer when opts.Tolerance is set and the largest per-node change of a
// round falls below it.
//
// Solve never mutates g and retains nothing after it returns.
func Solve(ctx context.Context, g Graph, opts Options) (res *Result, err error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	t, err := buildTransition(g)
	if err != nil {
		return nil, err
	}

	hooks := observability.Solver()
	hooks.OnSolveStart(ctx, t.size(), t.edges())
	start := time.Now()
	defer func() {
		rounds, converged := 0, false
		if res != nil {
			rounds, converged = res.Rounds, res.Converged
		}
		hooks.OnSolveComplete(ctx, rounds, converged, time.Since(start), err)
	}()

	n := t.size()
	if n == 0 {
		return &Result{Scores: map[string]float64{}}, nil
	}

	prev := make([]float64, n)
	next := make([]float64, n)
	for i := range prev {
		prev[i] = 1 / float64(n)
	}

	workers := min(max(opts.Workers, 1), n)
	res = &Result{}
	for round := 0; round < opts.Iterations; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t.step(prev, next, opts.Damping, workers)
		res.Delta = floats.Distance(next, prev, math.Inf(1))
		prev, next = next, prev
		res.Rounds++
		if opts.Tolerance > 0 && res.Delta < opts.Tolerance {
			res.Converged = true
			break
		}
	}

	for i, v := range prev {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, perrors.New(perrors.ErrCodeInternal,
				"non-finite score %g for node %q after %d rounds", v, t.ids[i], res.Rounds)
		}
	}

	res.Scores = make(map[string]float64, n)
	for i, id := range t.ids {
		res.Scores[id] = prev[i]
	}
	return res, nil
}

// step computes one round into next. The dangling total is reduced from
// prev before any node is updated; with several workers each goroutine owns
// a contiguous slice of next and Wait is the round barrier.
func (t *transition) step(prev, next []float64, damping float64, workers int) {
	n := t.size()
	nf := float64(n)
	base := (1 - damping) / nf
	share := t.danglingSum(prev) / nf

	if workers <= 1 {
		t.apply(prev, next, 0, n, base, damping, share)
		return
	}

	var eg errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			t.apply(prev, next, lo, hi, base, damping, share)
			return nil
		})
	}
	_ = eg.Wait()
}
