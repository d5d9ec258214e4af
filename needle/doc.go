// Package needle generates random needles for Buffon's experiment and
// decides whether a needle crosses one of the parallel grid lines.
//
// 🚀 What is needle?
//
//	The stochastic leaf of the buffon module:
//	  • Generator — owns an explicit, seedable random source and drops
//	    needles under the classic uniform probability model
//	  • Crosses   — the pure geometric crossing test
//
// ✨ Probability model (the "short needle" case, l ≤ d):
//
//   - the perpendicular distance from a needle's center to the nearest
//     grid line is uniform on [0, d/2] — drawn directly, for every
//     valid geometry
//   - the acute angle between needle and lines is uniform on [0, π/2]
//     (half of the classic [0, π) range; by symmetry the crossing
//     probability is unchanged)
//   - a needle crosses iff dist ≤ (l/2)·sin(angle), boundary inclusive
//
// For rendering, each center is placed consistently with its drawn
// distance: a grid line inside the square field is chosen uniformly
// and the center offset from it by that distance, to a uniform side,
// so picture and statistics always agree.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/buffon/needle"
//
//	gen, err := needle.NewGenerator(needle.DefaultOptions(), 42)
//	if err != nil { ... }                 // ErrNeedleTooLong, ErrNonPositiveGeometry
//	needles, crossed, err := gen.DropN(1000)
//
// Determinism: same options and seed ⇒ identical needles on every run.
// A *Generator is not safe for concurrent use; derive independent
// streams with Derive when parallel draws are needed.
package needle
