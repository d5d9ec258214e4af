package needle

import (
	"math"
	"math/rand"
)

// Generator drops needles under the uniform Buffon model. It owns an
// explicit random source, so identical (Options, seed) pairs reproduce
// the exact same sequence of needles.
//
// Not safe for concurrent use; see Derive for independent streams.
type Generator struct {
	opts Options
	rng  *rand.Rand

	// Grid lines y = k·Spacing inside the field, precomputed so Drop
	// stays allocation- and trig-free: k ranges over lineFirst..lineFirst+lineSpan-1.
	lineFirst int
	lineSpan  int
}

// NewGenerator validates opts and returns a Generator seeded with seed
// (seed==0 selects the fixed default stream, see NewRand).
//
// Errors: ErrNonPositiveGeometry, ErrNeedleTooLong — always before any
// entropy is consumed.
func NewGenerator(opts Options, seed int64) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return newGenerator(opts, NewRand(seed)), nil
}

// NewGeneratorWith is NewGenerator with a caller-supplied random source,
// for callers that derive substreams themselves. A nil rng falls back to
// the default deterministic stream.
func NewGeneratorWith(opts Options, rng *rand.Rand) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = NewRand(0)
	}
	return newGenerator(opts, rng), nil
}

// newGenerator assumes opts is already validated.
func newGenerator(opts Options, rng *rand.Rand) *Generator {
	// The field always contains line k=0, so lineSpan >= 1.
	first := int(math.Ceil(-opts.FieldExtent / opts.Spacing))
	last := int(math.Floor(opts.FieldExtent / opts.Spacing))
	return &Generator{
		opts:      opts,
		rng:       rng,
		lineFirst: first,
		lineSpan:  last - first + 1,
	}
}

// Options returns the geometry this generator was built with.
func (g *Generator) Options() Options { return g.opts }

// Drop generates one needle. The perpendicular distance to the nearest
// grid line is its own uniform draw on [0, Spacing/2] — the model's
// contract for every valid geometry, however Spacing and FieldExtent
// relate. The center is then placed consistently: a grid line inside
// the field is chosen uniformly and the center offset from it by the
// drawn distance, to a uniform side. The acute angle is uniform on
// [0, π/2].
//
// Center.X is uniform on [-FieldExtent, FieldExtent]; Center.Y may
// overshoot the field by up to Spacing/2 (the offset from the last
// line), which renderers clip.
//
// Complexity: O(1).
func (g *Generator) Drop() Needle {
	x := (g.rng.Float64()*2 - 1) * g.opts.FieldExtent
	k := g.lineFirst + g.rng.Intn(g.lineSpan)
	// Offset from the chosen line, uniform on [-Spacing/2, Spacing/2):
	// its magnitude is the uniform [0, Spacing/2] perpendicular distance,
	// and the chosen line stays the nearest one.
	off := (g.rng.Float64() - 0.5) * g.opts.Spacing
	return Needle{
		Center: Point{X: x, Y: float64(k)*g.opts.Spacing + off},
		Angle:  g.rng.Float64() * math.Pi / 2,
		Dist:   math.Abs(off),
	}
}

// DropN generates n needles and tests each one, returning the needles
// together with their crossing flags. This is the interface behind the
// "randomized needles" figure.
//
// Errors: ErrNonPositiveCount for n < 1.
//
// Complexity: O(n) time, O(n) space.
func (g *Generator) DropN(n int) ([]Needle, []bool, error) {
	if n < 1 {
		return nil, nil, ErrNonPositiveCount
	}
	needles := make([]Needle, n)
	crossed := make([]bool, n)
	for i := 0; i < n; i++ {
		needles[i] = g.Drop()
		crossed[i] = g.Crosses(needles[i])
	}
	return needles, crossed, nil
}

// Crosses reports whether nd crosses a grid line under this generator's
// needle length.
func (g *Generator) Crosses(nd Needle) bool {
	return Crosses(nd.Dist, nd.Angle, g.opts.Length)
}

// Crosses is the pure geometric crossing test: a needle of the given
// length whose center lies dist away from the nearest line, at acute
// angle to the lines, crosses iff
//
//	dist ≤ (length/2) · sin(angle)
//
// The boundary case counts as a crossing. No randomness, no side effects.
func Crosses(dist, angle, length float64) bool {
	return dist <= length/2*math.Sin(angle)
}
