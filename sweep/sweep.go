package sweep

import (
	"github.com/katalvlaran/buffon/estimate"
	"github.com/katalvlaran/buffon/needle"
)

// Cumulative runs the sweep in sequence order (size-major,
// repetition-minor), accumulating needle and crossing counts, and
// returns one running estimate per completed trial.
//
// The size list must be non-decreasing so each prefix corresponds to a
// growing sample; otherwise ErrSizesNotSorted.
//
// While the accumulated crossing count is zero the running estimate is
// NaN — the prefix is undefined, and callers decide how to plot it.
//
// Complexity: O(Σ Sizes · Repetitions) needle drops.
func Cumulative(cfg Config) ([]Point, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	for i := 1; i < len(cfg.Sizes); i++ {
		if cfg.Sizes[i] < cfg.Sizes[i-1] {
			return nil, ErrSizesNotSorted
		}
	}

	points := make([]Point, 0, len(cfg.Sizes)*cfg.Repetitions)
	totalNeedles, totalCrossings := 0, 0

	err := forEachTrial(cfg, func(res estimate.Result) {
		totalNeedles += res.Needles
		totalCrossings += res.Crossings
		running := estimate.FromCounts(totalNeedles, totalCrossings, cfg.Needle)
		points = append(points, Point{Needles: totalNeedles, Estimate: running.Pi})
	})
	if err != nil {
		return nil, err
	}
	return points, nil
}

// Grouped runs Repetitions independent trials per size and returns one
// bucket per size, in the order of cfg.Sizes. Undefined trials are
// counted in Bucket.Undefined and excluded from Bucket.Estimates.
//
// Complexity: O(Σ Sizes · Repetitions) needle drops.
func Grouped(cfg Config) ([]Bucket, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	buckets := make([]Bucket, len(cfg.Sizes))
	for i, n := range cfg.Sizes {
		buckets[i] = Bucket{Needles: n, Estimates: make([]float64, 0, cfg.Repetitions)}
	}

	idx := 0
	err := forEachTrial(cfg, func(res estimate.Result) {
		b := &buckets[idx/cfg.Repetitions]
		if res.Undefined {
			b.Undefined++
		} else {
			b.Estimates = append(b.Estimates, res.Pi)
		}
		idx++
	})
	if err != nil {
		return nil, err
	}
	return buckets, nil
}

// Trace runs a single n-needle trial and returns the running estimate
// after every needle — the per-needle convergence curve for one drop
// sequence. Prefixes with no crossings yet carry NaN.
//
// Complexity: O(n) time, O(n) space.
func Trace(n int, opts needle.Options, seed int64) ([]Point, error) {
	if n < 1 {
		return nil, needle.ErrNonPositiveCount
	}
	gen, err := needle.NewGenerator(opts, seed)
	if err != nil {
		return nil, err
	}

	points := make([]Point, n)
	crossings := 0
	for i := 1; i <= n; i++ {
		if gen.Crosses(gen.Drop()) {
			crossings++
		}
		running := estimate.FromCounts(i, crossings, opts)
		points[i-1] = Point{Needles: i, Estimate: running.Pi}
	}
	return points, nil
}

// forEachTrial executes the sweep's trials in order, calling visit with
// each result. Every trial runs on its own RNG stream derived from the
// base seed, so trials are independent and the sweep replays exactly.
// cfg must already be validated.
func forEachTrial(cfg Config, visit func(estimate.Result)) error {
	base := needle.NewRand(cfg.Seed)
	stream := uint64(0)

	for _, n := range cfg.Sizes {
		for rep := 0; rep < cfg.Repetitions; rep++ {
			gen, err := needle.NewGeneratorWith(cfg.Needle, needle.Derive(base, stream))
			if err != nil {
				return err
			}
			stream++

			res, err := estimate.Trial(gen, n)
			if err != nil {
				return err
			}
			visit(res)
		}
	}
	return nil
}
