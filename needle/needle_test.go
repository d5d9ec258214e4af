package needle_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/buffon/needle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewGenerator_NeedleTooLong verifies that Length > Spacing is
// rejected before any needle is generated.
func TestNewGenerator_NeedleTooLong(t *testing.T) {
	opts := needle.DefaultOptions()
	opts.Spacing = 1
	opts.Length = 2

	_, err := needle.NewGenerator(opts, 1)
	assert.ErrorIs(t, err, needle.ErrNeedleTooLong, "l > d must error ErrNeedleTooLong")
	assert.ErrorIs(t, err, needle.ErrInvalidParameter, "sentinel must wrap the base parameter error")
}

// TestNewGenerator_NonPositiveGeometry checks each non-positive
// geometry field independently.
func TestNewGenerator_NonPositiveGeometry(t *testing.T) {
	for name, opts := range map[string]needle.Options{
		"zero spacing":    {Spacing: 0, Length: 0.5, FieldExtent: 10},
		"negative length": {Spacing: 1, Length: -0.5, FieldExtent: 10},
		"zero extent":     {Spacing: 1, Length: 0.5, FieldExtent: 0},
	} {
		_, err := needle.NewGenerator(opts, 1)
		assert.ErrorIs(t, err, needle.ErrNonPositiveGeometry, name)
	}
}

// TestNewGenerator_NonFiniteGeometry ensures NaN and infinite geometry
// fields fail validation instead of slipping past the ordered
// comparisons (NaN compares false against every bound).
func TestNewGenerator_NonFiniteGeometry(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)
	for name, opts := range map[string]needle.Options{
		"NaN spacing":    {Spacing: nan, Length: 0.5, FieldExtent: 10},
		"NaN length":     {Spacing: 1, Length: nan, FieldExtent: 10},
		"NaN extent":     {Spacing: 1, Length: 0.5, FieldExtent: nan},
		"+Inf spacing":   {Spacing: inf, Length: 0.5, FieldExtent: 10},
		"+Inf length":    {Spacing: 1, Length: inf, FieldExtent: 10},
		"-Inf extent":    {Spacing: 1, Length: 0.5, FieldExtent: math.Inf(-1)},
		"all non-finite": {Spacing: nan, Length: inf, FieldExtent: nan},
	} {
		_, err := needle.NewGenerator(opts, 1)
		assert.ErrorIs(t, err, needle.ErrNonPositiveGeometry, name)
	}
}

// TestDropN_NonPositiveCount ensures n < 1 errors ErrNonPositiveCount.
func TestDropN_NonPositiveCount(t *testing.T) {
	gen, err := needle.NewGenerator(needle.DefaultOptions(), 1)
	require.NoError(t, err)

	_, _, err = gen.DropN(0)
	assert.ErrorIs(t, err, needle.ErrNonPositiveCount)
	_, _, err = gen.DropN(-3)
	assert.ErrorIs(t, err, needle.ErrNonPositiveCount)
}

// TestDrop_Ranges verifies every draw respects the documented model:
// angle in [0, π/2], dist in [0, Spacing/2], center inside the field
// horizontally and within half a spacing of it vertically.
func TestDrop_Ranges(t *testing.T) {
	opts := needle.DefaultOptions()
	gen, err := needle.NewGenerator(opts, 7)
	require.NoError(t, err)

	for i := 0; i < 10000; i++ {
		nd := gen.Drop()
		assert.GreaterOrEqual(t, nd.Angle, 0.0)
		assert.LessOrEqual(t, nd.Angle, math.Pi/2)
		assert.GreaterOrEqual(t, nd.Dist, 0.0)
		assert.LessOrEqual(t, nd.Dist, opts.Spacing/2)
		assert.LessOrEqual(t, math.Abs(nd.Center.X), opts.FieldExtent)
		assert.LessOrEqual(t, math.Abs(nd.Center.Y), opts.FieldExtent+opts.Spacing/2)
	}
}

// TestDrop_DistUniform checks the distance distribution itself, not
// just its bounds: the sample mean sits at Spacing/4 and the sample
// maximum approaches Spacing/2, including on geometries where the
// spacing dwarfs the rendering field and on a spacing that does not
// divide the field evenly.
func TestDrop_DistUniform(t *testing.T) {
	const samples = 100000
	cases := []needle.Options{
		{Spacing: 1000, Length: 1, FieldExtent: 10}, // spacing far beyond the field
		{Spacing: 3, Length: 1, FieldExtent: 10},    // 2·extent not a multiple of spacing
	}
	for _, opts := range cases {
		gen, err := needle.NewGenerator(opts, 7)
		require.NoError(t, err)

		sum, maxDist := 0.0, 0.0
		for i := 0; i < samples; i++ {
			d := gen.Drop().Dist
			sum += d
			if d > maxDist {
				maxDist = d
			}
		}
		half := opts.Spacing / 2
		// Mean of uniform[0, half] is half/2; its standard error over
		// 100k samples is ~0.1% of half, so 2% headroom is generous.
		assert.InDelta(t, half/2, sum/samples, 0.02*half, "spacing=%v: mean off uniform [0, d/2]", opts.Spacing)
		assert.Greater(t, maxDist, 0.98*half, "spacing=%v: max never approaches d/2", opts.Spacing)
	}
}

// TestDrop_DistMatchesCenter checks that the recorded Dist really is
// the perpendicular distance from the center to the nearest grid line,
// so rendered geometry and crossing statistics agree.
func TestDrop_DistMatchesCenter(t *testing.T) {
	opts := needle.DefaultOptions()
	opts.Spacing = 2.5
	gen, err := needle.NewGenerator(opts, 11)
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		nd := gen.Drop()
		k := math.Round(nd.Center.Y / opts.Spacing)
		want := math.Abs(nd.Center.Y - k*opts.Spacing)
		assert.InDelta(t, want, nd.Dist, 1e-12)
	}
}

// TestCrosses_Boundary confirms the boundary x == (l/2)·sin(θ) counts
// as a crossing (inclusive convention).
func TestCrosses_Boundary(t *testing.T) {
	const l = 1.0
	theta := math.Pi / 6 // sin = 0.5 exactly is not representable; use computed boundary
	x := l / 2 * math.Sin(theta)

	assert.True(t, needle.Crosses(x, theta, l), "boundary must resolve as a crossing")
	assert.False(t, needle.Crosses(x+1e-9, theta, l), "just past the boundary must not cross")
}

// TestCrosses_MonotonicInDistance verifies that increasing x at fixed θ
// never turns a non-crossing needle into a crossing one.
func TestCrosses_MonotonicInDistance(t *testing.T) {
	const l = 1.0
	for _, theta := range []float64{0, math.Pi / 8, math.Pi / 4, math.Pi / 3, math.Pi / 2} {
		prev := true
		for x := 0.0; x <= l; x += l / 200 {
			cur := needle.Crosses(x, theta, l)
			if !prev {
				assert.False(t, cur, "crossing reappeared at larger x (θ=%v, x=%v)", theta, x)
			}
			prev = cur
		}
	}
}

// TestCrosses_FlatNeedle checks the θ=0 degenerate case: a needle
// parallel to the lines crosses only when its center lies on a line.
func TestCrosses_FlatNeedle(t *testing.T) {
	assert.True(t, needle.Crosses(0, 0, 1))
	assert.False(t, needle.Crosses(1e-12, 0, 1))
}

// TestGenerator_Determinism confirms identical (Options, seed) pairs
// reproduce identical needle sequences, and different seeds diverge.
func TestGenerator_Determinism(t *testing.T) {
	opts := needle.DefaultOptions()

	a, err := needle.NewGenerator(opts, 42)
	require.NoError(t, err)
	b, err := needle.NewGenerator(opts, 42)
	require.NoError(t, err)

	na, ca, err := a.DropN(500)
	require.NoError(t, err)
	nb, cb, err := b.DropN(500)
	require.NoError(t, err)
	assert.Equal(t, na, nb, "same seed must reproduce the same needles")
	assert.Equal(t, ca, cb, "same seed must reproduce the same crossings")

	c, err := needle.NewGenerator(opts, 43)
	require.NoError(t, err)
	nc, _, err := c.DropN(500)
	require.NoError(t, err)
	assert.NotEqual(t, na, nc, "different seeds must diverge")
}

// TestDerive_IndependentStreams checks derived streams are deterministic
// and distinct per stream id.
func TestDerive_IndependentStreams(t *testing.T) {
	r1 := needle.Derive(needle.NewRand(9), 1)
	r2 := needle.Derive(needle.NewRand(9), 1)
	assert.Equal(t, r1.Int63(), r2.Int63(), "same parent and stream must match")

	r3 := needle.Derive(needle.NewRand(9), 2)
	r4 := needle.Derive(needle.NewRand(9), 3)
	assert.NotEqual(t, r3.Int63(), r4.Int63(), "different streams must diverge")
}

// TestEndpoints verifies endpoint geometry: separation equals the
// needle length and the midpoint is the center.
func TestEndpoints(t *testing.T) {
	nd := needle.Needle{Center: needle.Point{X: 1, Y: 2}, Angle: math.Pi / 3}
	p, q := nd.Endpoints(0.5)

	assert.InDelta(t, 0.5, math.Hypot(q.X-p.X, q.Y-p.Y), 1e-12, "endpoint separation must equal length")
	assert.InDelta(t, nd.Center.X, (p.X+q.X)/2, 1e-12)
	assert.InDelta(t, nd.Center.Y, (p.Y+q.Y)/2, 1e-12)
}
