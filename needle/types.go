package needle

import "math"

// Default geometry, matching the classic demonstration setup:
// unit line spacing, half-unit needles, a 20×20 field for rendering.
const (
	// DefaultSpacing is the default distance d between grid lines.
	DefaultSpacing = 1.0
	// DefaultLength is the default needle length l (l ≤ d).
	DefaultLength = 0.5
	// DefaultFieldExtent is the default half-width of the square drop
	// field: centers are placed uniformly in [-extent, extent]².
	DefaultFieldExtent = 10.0
)

// Point is a 2D point in the drop field.
type Point struct {
	X, Y float64
}

// Needle is one dropped needle. Immutable once created.
//
// Dist is the perpendicular distance from Center to the nearest grid
// line; it is drawn directly by the generator and Center.Y placed to
// match, so the crossing test never re-does the geometry. Angle is the
// acute angle to the grid lines, in [0, π/2].
type Needle struct {
	Center Point
	Angle  float64
	Dist   float64
}

// Endpoints returns the two ends of a needle of the given length.
// Used by renderers; the crossing test works on Dist and Angle alone.
func (n Needle) Endpoints(length float64) (Point, Point) {
	dx := length / 2 * math.Cos(n.Angle)
	dy := length / 2 * math.Sin(n.Angle)
	return Point{X: n.Center.X - dx, Y: n.Center.Y - dy},
		Point{X: n.Center.X + dx, Y: n.Center.Y + dy}
}

// Options configures the needle experiment geometry.
//
// Fields:
//   - Spacing     — distance d between adjacent grid lines (> 0).
//   - Length      — needle length l (> 0, l ≤ Spacing).
//   - FieldExtent — half-width of the square rendering field (> 0).
//     Centers are spread across it horizontally; vertically they sit
//     on grid lines inside it, offset by the drawn distance, so they
//     may overshoot the field by up to Spacing/2. The extent never
//     affects the crossing statistics.
type Options struct {
	Spacing     float64
	Length      float64
	FieldExtent float64
}

// DefaultOptions returns Options with the default geometry:
// Spacing=1, Length=0.5, FieldExtent=10.
func DefaultOptions() Options {
	return Options{
		Spacing:     DefaultSpacing,
		Length:      DefaultLength,
		FieldExtent: DefaultFieldExtent,
	}
}

// Validate reports the first parameter violation, or nil.
// Degenerate geometry (non-positive or non-finite) is checked before
// the short-needle bound so the error always names the most
// fundamental problem.
func (o Options) Validate() error {
	if !finitePositive(o.Spacing) || !finitePositive(o.Length) || !finitePositive(o.FieldExtent) {
		return ErrNonPositiveGeometry
	}
	if o.Length > o.Spacing {
		return ErrNeedleTooLong
	}
	return nil
}

// finitePositive reports whether v is a finite value greater than zero.
// NaN and ±Inf compare false against every bound, so they must be
// rejected explicitly.
func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
