// Package sweep runs Buffon trials across a range of sample sizes and
// aggregates them into the two classic convergence views.
//
// 🚀 What is sweep?
//
//	The aggregation layer of the buffon module:
//	  • Cumulative — one running estimate per prefix of the trial
//	    sequence, accumulating needle and crossing counts across
//	    increasing sample sizes (shows convergence toward π)
//	  • Grouped    — per sample size, R independent estimates
//	    (feeds distributional/boxplot analysis of estimator variance)
//	  • Trace      — the per-needle running estimate inside a single
//	    trial (the classic "cumulative estimation for N" panel)
//
// ✨ Guarantees:
//
//   - Reproducible: the whole sweep derives per-trial RNG streams from
//     one seed (needle.Derive), so every trial is independent yet the
//     full run replays exactly.
//   - Honest buckets: trials with zero crossings are excluded from a
//     bucket's estimates and counted in Bucket.Undefined — never
//     treated as zero, infinity, or silently dropped.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/buffon/sweep"
//
//	cfg := sweep.DefaultConfig()
//	cfg.Sizes = sweep.SizeRange(100, 100000, 100)
//	buckets, err := sweep.Grouped(cfg)
//	points, err := sweep.Cumulative(cfg)
//
// Complexity: O(Σ sizes · Repetitions) needle drops per sweep.
package sweep
