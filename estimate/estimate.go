package estimate

import (
	"math"

	"github.com/katalvlaran/buffon/needle"
)

// Trial drops n needles from gen, counts crossings, and computes the
// estimate. The generator's geometry supplies l and d.
//
// Errors: needle.ErrNonPositiveCount for n < 1. A zero-crossing trial
// is NOT an error; see Result.Undefined and Result.Estimate.
//
// Determinism: reproducible for a generator built from a fixed seed.
//
// Complexity: O(n) time, O(1) extra space.
func Trial(gen *needle.Generator, n int) (Result, error) {
	if n < 1 {
		return Result{}, needle.ErrNonPositiveCount
	}

	crossings := 0
	for i := 0; i < n; i++ {
		if gen.Crosses(gen.Drop()) {
			crossings++
		}
	}
	return FromCounts(n, crossings, gen.Options()), nil
}

// Run is the one-shot form of Trial: it validates opts, builds a
// seeded generator and runs a single n-needle trial.
//
// Errors: needle.ErrNeedleTooLong, needle.ErrNonPositiveGeometry,
// needle.ErrNonPositiveCount — all before any needle is generated.
func Run(n int, opts needle.Options, seed int64) (Result, error) {
	if n < 1 {
		return Result{}, needle.ErrNonPositiveCount
	}
	gen, err := needle.NewGenerator(opts, seed)
	if err != nil {
		return Result{}, err
	}
	return Trial(gen, n)
}

// FromCounts converts raw counts into a Result under the geometry in
// opts. Exposed so aggregators (sweep) can re-estimate from accumulated
// counts without re-dropping needles.
//
// Precondition: needles ≥ 1 and opts already validated; FromCounts does
// not re-check.
func FromCounts(needles, crossings int, opts needle.Options) Result {
	r := Result{Needles: needles, Crossings: crossings}
	if crossings == 0 {
		r.Pi = math.NaN()
		r.Undefined = true
		return r
	}
	r.Pi = 2 * opts.Length * float64(needles) / (opts.Spacing * float64(crossings))
	return r
}
