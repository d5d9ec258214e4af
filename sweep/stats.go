package sweep

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary computes the distributional digest of a bucket: mean, sample
// standard deviation and the empirical five-number summary used by
// boxplot renderers. A bucket with no defined estimates yields NaN
// statistics with Count==0.
//
// Complexity: O(k log k) for k estimates (one sort for the quantiles).
func (b Bucket) Summary() Summary {
	s := Summary{
		Count:     len(b.Estimates),
		Undefined: b.Undefined,
		Mean:      math.NaN(),
		StdDev:    math.NaN(),
		Min:       math.NaN(),
		Q1:        math.NaN(),
		Median:    math.NaN(),
		Q3:        math.NaN(),
		Max:       math.NaN(),
	}
	if s.Count == 0 {
		return s
	}

	sorted := make([]float64, s.Count)
	copy(sorted, b.Estimates)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	if s.Count > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	} else {
		s.StdDev = 0
	}
	s.Min = sorted[0]
	s.Max = sorted[s.Count-1]
	s.Q1 = stat.Quantile(0.25, stat.Empirical, sorted, nil)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	s.Q3 = stat.Quantile(0.75, stat.Empirical, sorted, nil)
	return s
}
