package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/buffon/sweep"
)

// Axis clamp for the convergence figure. Early prefixes swing wildly;
// the classic presentation clips them to keep the π band readable.
const (
	convergenceYMin = 1.5
	convergenceYMax = 5.0
)

// Convergence renders the running-estimate curve with a dashed π
// reference line and saves it as PNG at path. Undefined prefixes
// (NaN estimates) are skipped, not drawn as zeros.
//
// Errors: ErrNoData for an empty trace, plus any plot construction or
// save error.
func Convergence(path string, points []sweep.Point) error {
	if len(points) == 0 {
		return ErrNoData
	}

	xys := make(plotter.XYs, 0, len(points))
	for _, pt := range points {
		if math.IsNaN(pt.Estimate) {
			continue
		}
		xys = append(xys, plotter.XY{X: float64(pt.Needles), Y: pt.Estimate})
	}
	if len(xys) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Cumulative Estimation of π"
	p.X.Label.Text = "N"
	p.Y.Label.Text = "π estimation"
	p.Y.Min, p.Y.Max = convergenceYMin, convergenceYMax
	p.X.Min = 0
	p.X.Max = float64(points[len(points)-1].Needles)

	curve, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	curve.Width = vg.Points(1)
	p.Add(curve)
	p.Legend.Add("running estimate", curve)

	ref, err := piReferenceLine(p.X.Min, p.X.Max)
	if err != nil {
		return err
	}
	p.Add(ref)
	p.Legend.Add("π", ref)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// piReferenceLine builds the dashed horizontal line y = π over [x0, x1].
func piReferenceLine(x0, x1 float64) (*plotter.Line, error) {
	ref, err := plotter.NewLine(plotter.XYs{{X: x0, Y: math.Pi}, {X: x1, Y: math.Pi}})
	if err != nil {
		return nil, err
	}
	ref.Color = colorPiReference
	ref.Width = vg.Points(1)
	ref.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	return ref, nil
}
