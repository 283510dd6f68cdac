// Package pagerank computes PageRank centrality over a directed graph.
//
// # Overview
//
// PageRank models a random surfer who, at each step, follows one of the
// current node's outbound links with probability d (the damping factor) or
// jumps to a uniformly random node with probability 1-d. The score of a node
// is the stationary probability of finding the surfer there.
//
// [Solve] runs a fixed number of power-iteration rounds over an implicit,
// column-stochastic transition matrix:
//
//	next[i] = (1-d)/n + d * ( Σ_{j→i} prev[j]/outdeg(j) + dangling/n )
//
// where dangling is the total score held by nodes without outbound links.
// Redistributing that mass uniformly keeps Σ score = 1 in every round.
//
// # Representation
//
// Node IDs are mapped to dense indices once per call. The transition is
// stored sparsely, grouped by destination, so a round is a single pass over
// the edges and never allocates an n×n matrix. Two score buffers alternate
// between rounds; a round reads only the previous buffer.
//
// # Options
//
//   - Iterations: number of rounds, must be positive
//   - Damping: in the open interval (0,1)
//   - Tolerance: optional early stop once the largest per-node change drops
//     below it (0 disables)
//   - Workers: split each round across goroutines (0 or 1 runs inline)
//
// Invalid options fail with an [errors.ErrCodeInvalidConfiguration] error
// before any work is done. An empty graph yields an empty result.
//
// # Concurrency
//
// Solve is a pure function of its inputs and keeps no state between calls.
// It only reads the graph, so concurrent solves over the same graph are safe
// as long as nobody mutates it meanwhile. The context is checked between
// rounds.
//
// [errors.ErrCodeInvalidConfiguration]: github.com/matzehuels/pagerank/pkg/errors.ErrCodeInvalidConfiguration
package pagerank
