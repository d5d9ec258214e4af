// Package buffon estimates π by simulating Buffon's needle experiment —
// dropping random needles onto a plane ruled with parallel lines and
// counting how often they cross one.
//
// 🚀 What is buffon?
//
//	A small, deterministic Monte Carlo toolkit built from leaf packages:
//		• needle/   — random needle generation & the geometric crossing test
//		• estimate/ — single-trial π estimation with explicit zero-crossing handling
//		• sweep/    — cumulative and grouped views across growing sample sizes
//		• render/   — PNG figures (gonum/plot) and an HTML report (go-echarts)
//
// ✨ Why choose buffon?
//
//   - Reproducible – every random draw flows from an explicit, seedable source
//   - Honest numerics – a trial with zero crossings is reported as undefined,
//     never substituted with a placeholder value
//   - Small API – options structs with documented defaults, sentinel errors
//
// The classic estimator: drop n needles of length l onto lines spaced d
// apart (l ≤ d); if c of them cross a line,
//
//	π̂ = (2 · l · n) / (d · c)
//
// Quick start:
//
//	gen, err := needle.NewGenerator(needle.DefaultOptions(), 42)
//	res, err := estimate.Trial(gen, 10000)
//	pi, err := res.Estimate()
//
// See cmd/buffon for a CLI that reproduces the full figure set: the
// randomized-needle field, the convergence trace and grouped boxplots.
package buffon
