package pagerank

import (
	"math"

	perrors "github.com/matzehuels/pagerank/pkg/errors"
)

const (
	// DefaultIterations is the round count used by the CLI and the API.
	DefaultIterations = 100

	// DefaultDamping is the classic damping factor.
	DefaultDamping = 0.85
)

// Options configures a solve.
type Options struct {
	Iterations int     `json:"iterations"`          // rounds to run; must be > 0
	Damping    float64 `json:"damping"`             // follow-link probability in (0,1)
	Tolerance  float64 `json:"tolerance,omitempty"` // early stop on max delta; 0 disables
	Workers    int     `json:"workers,omitempty"`   // goroutines per round; <= 1 runs inline
}

// DefaultOptions returns 100 rounds at damping 0.85 with no early stop.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Damping:    DefaultDamping,
	}
}

// Validate reports an ErrCodeInvalidConfiguration error for any option
// outside its domain.
func (o Options) Validate() error {
	if o.Iterations <= 0 {
		return perrors.New(perrors.ErrCodeInvalidConfiguration,
			"iterations must be positive, got %d", o.Iterations)
	}
	if math.IsNaN(o.Damping) || o.Damping <= 0 || o.Damping >= 1 {
		return perrors.New(perrors.ErrCodeInvalidConfiguration,
			"damping must be in (0,1), got %g", o.Damping)
	}
	if math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) || o.Tolerance < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfiguration,
			"tolerance must be a finite non-negative number, got %g", o.Tolerance)
	}
	if o.Workers < 0 {
		return perrors.New(perrors.ErrCodeInvalidConfiguration,
			"workers must not be negative, got %d", o.Workers)
	}
	return nil
}
