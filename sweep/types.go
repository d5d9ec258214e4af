package sweep

import (
	"fmt"

	"github.com/katalvlaran/buffon/needle"
)

// Sentinel errors for sweep configuration. Both wrap
// needle.ErrInvalidParameter, so errors.Is against the base family
// works across the module.
var (
	// ErrNoSizes indicates an empty size list.
	ErrNoSizes = fmt.Errorf("%w: sweep requires at least one sample size", needle.ErrInvalidParameter)

	// ErrSizesNotSorted indicates the size list is not non-decreasing,
	// which the cumulative view requires for a meaningful prefix order.
	ErrSizesNotSorted = fmt.Errorf("%w: cumulative sweep requires non-decreasing sizes", needle.ErrInvalidParameter)
)

// Default sweep shape, mirroring the classic demonstration
// (sizes 100, 200, …, 99 900 with one trial each).
const (
	// DefaultSizeStart is the first sample size of DefaultConfig.
	DefaultSizeStart = 100
	// DefaultSizeStop is the (exclusive) last sample size of DefaultConfig.
	DefaultSizeStop = 100000
	// DefaultSizeStep is the size increment of DefaultConfig.
	DefaultSizeStep = 100
	// DefaultRepetitions is the per-size trial count of DefaultConfig.
	DefaultRepetitions = 1
)

// Config describes one sweep.
//
// Fields:
//   - Sizes       — needle counts to test, each ≥ 1; non-decreasing
//     order is required by Cumulative and recommended everywhere.
//   - Repetitions — independent trials per size (R ≥ 1).
//   - Needle      — experiment geometry, validated before any trial.
//   - Seed        — base seed; every trial runs on an independent
//     stream derived from it (0 selects the fixed default stream).
type Config struct {
	Sizes       []int
	Repetitions int
	Needle      needle.Options
	Seed        int64
}

// DefaultConfig returns a Config with the default geometry and the
// classic size ladder: 100 to 99 900 in steps of 100, one trial each.
func DefaultConfig() Config {
	return Config{
		Sizes:       SizeRange(DefaultSizeStart, DefaultSizeStop, DefaultSizeStep),
		Repetitions: DefaultRepetitions,
		Needle:      needle.DefaultOptions(),
	}
}

// Validate reports the first configuration violation, or nil.
// Size ordering is checked separately by Cumulative, since the grouped
// view does not depend on it.
func (c Config) Validate() error {
	if err := c.Needle.Validate(); err != nil {
		return err
	}
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	for _, n := range c.Sizes {
		if n < 1 {
			return needle.ErrNonPositiveCount
		}
	}
	if c.Repetitions < 1 {
		return needle.ErrNonPositiveCount
	}
	return nil
}

// Point is one step of a running estimate: the total needle count so
// far and the estimate over that prefix (NaN while the accumulated
// crossing count is still zero).
type Point struct {
	Needles  int
	Estimate float64
}

// Bucket holds the grouped view for one sample size: the defined
// estimates of its independent trials, plus how many trials came back
// undefined (zero crossings). Undefined trials are excluded from
// Estimates, never folded in as zero or infinity.
type Bucket struct {
	Needles   int
	Estimates []float64
	Undefined int
}

// Summary is the distributional digest of one bucket, sized for
// boxplot rendering. Quantiles are empirical; all statistics are NaN
// when the bucket has no defined estimates.
type Summary struct {
	Count     int
	Undefined int
	Mean      float64
	StdDev    float64
	Min       float64
	Q1        float64
	Median    float64
	Q3        float64
	Max       float64
}

// SizeRange returns sizes start, start+step, … up to but excluding
// stop. It returns nil when start < 1, step < 1 or stop ≤ start;
// feeding that nil into a sweep surfaces ErrNoSizes.
func SizeRange(start, stop, step int) []int {
	if start < 1 || step < 1 || stop <= start {
		return nil
	}
	sizes := make([]int, 0, (stop-start+step-1)/step)
	for n := start; n < stop; n += step {
		sizes = append(sizes, n)
	}
	return sizes
}
