package render

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/buffon/needle"
)

// Field renders the randomized-needle figure: the ruled grid plus every
// needle as a segment, crossing needles in blue and the rest in red.
// The figure is saved as PNG at path.
//
// Errors: ErrNoData for an empty drop, ErrLengthMismatch when needles
// and crossed disagree, plus any plot construction or save error.
func Field(path string, needles []needle.Needle, crossed []bool, opts needle.Options) error {
	if len(needles) == 0 {
		return ErrNoData
	}
	if len(needles) != len(crossed) {
		return ErrLengthMismatch
	}

	p := plot.New()
	p.Title.Text = "Randomized Needles"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	ext := opts.FieldExtent
	p.X.Min, p.X.Max = -ext, ext
	p.Y.Min, p.Y.Max = -ext, ext

	if err := addGridLines(p, opts); err != nil {
		return err
	}

	for i, nd := range needles {
		a, b := nd.Endpoints(opts.Length)
		seg, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return err
		}
		seg.Width = vg.Points(1)
		if crossed[i] {
			seg.Color = colorCrossing
		} else {
			seg.Color = colorNonCrossing
		}
		p.Add(seg)
	}

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}

// addGridLines draws every grid line y = k·Spacing inside the field.
func addGridLines(p *plot.Plot, opts needle.Options) error {
	ext := opts.FieldExtent
	first := int(math.Ceil(-ext / opts.Spacing))
	last := int(math.Floor(ext / opts.Spacing))
	for k := first; k <= last; k++ {
		y := float64(k) * opts.Spacing
		ln, err := plotter.NewLine(plotter.XYs{{X: -ext, Y: y}, {X: ext, Y: y}})
		if err != nil {
			return err
		}
		ln.Color = colorGridLine
		ln.Width = vg.Points(0.5)
		p.Add(ln)
	}
	return nil
}
