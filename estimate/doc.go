// Package estimate runs one Buffon trial and turns a crossing count
// into a π estimate.
//
// 🚀 What is estimate?
//
//	The middle layer of the buffon module: given a needle count n it
//	drops n needles (via needle.Generator), counts crossings c, and
//	computes the classic short-needle estimator
//
//	  π̂ = (2 · l · n) / (d · c)
//
// ✨ Zero crossings are data, not failure:
//
//	When c == 0 the estimate is undefined. The trial still succeeds —
//	Result records the counts with Undefined=true and Pi=NaN — and
//	Result.Estimate() returns ErrUndefinedEstimate so callers decide
//	whether to retry, skip, or report a missing data point. The
//	package never divides by zero and never substitutes a placeholder
//	value.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/buffon/estimate"
//
//	res, err := estimate.Run(10000, needle.DefaultOptions(), 42)
//	if err != nil { ... }              // parameter violations only
//	pi, err := res.Estimate()          // ErrUndefinedEstimate when c == 0
//
// Determinism: same (n, Options, seed) ⇒ identical Result on every run.
package estimate
