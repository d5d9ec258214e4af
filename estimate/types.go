package estimate

import (
	"errors"
	"math"
)

// ErrUndefinedEstimate indicates a trial recorded zero crossings, so
// the estimator (2·l·n)/(d·c) has no value. It is signalled by
// Result.Estimate, never by Trial or Run themselves: an undefined
// estimate is a legitimate experimental outcome, not a failed trial.
var ErrUndefinedEstimate = errors.New("estimate: zero crossings, estimate undefined")

// Result is the outcome of a single trial. Immutable once returned.
//
// When Undefined is true, Pi is NaN; use Estimate to get the
// undefined-ness as an error instead of a flag.
type Result struct {
	// Needles is the number of needles dropped (n).
	Needles int
	// Crossings is how many of them crossed a grid line (c).
	Crossings int
	// Pi is the estimate (2·l·n)/(d·c), or NaN when Crossings == 0.
	Pi float64
	// Undefined is true iff Crossings == 0.
	Undefined bool
}

// Estimate returns the π estimate, or ErrUndefinedEstimate when the
// trial recorded zero crossings.
func (r Result) Estimate() (float64, error) {
	if r.Undefined {
		return math.NaN(), ErrUndefinedEstimate
	}
	return r.Pi, nil
}
