package render

import (
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/buffon/sweep"
)

// Boxplot renders one box per bucket (labelled with its needle count)
// with a dashed π reference line, saved as PNG at path. Buckets whose
// trials were all undefined contribute an empty slot but keep their
// label, so missing data stays visible.
//
// Errors: ErrNoData when no bucket has a defined estimate, plus any
// plot construction or save error.
func Boxplot(path string, buckets []sweep.Bucket) error {
	if len(buckets) == 0 {
		return ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Grouped Estimations of π"
	p.X.Label.Text = "N"
	p.Y.Label.Text = "Estimation of π"

	labels := make([]string, len(buckets))
	drawn := 0
	for i, b := range buckets {
		labels[i] = strconv.Itoa(b.Needles)
		if b.Undefined > 0 {
			labels[i] += " (" + strconv.Itoa(b.Undefined) + " undefined)"
		}
		if len(b.Estimates) == 0 {
			continue
		}

		box, err := plotter.NewBoxPlot(vg.Points(18), float64(i), plotter.Values(b.Estimates))
		if err != nil {
			return err
		}
		p.Add(box)
		drawn++
	}
	if drawn == 0 {
		return ErrNoData
	}
	p.NominalX(labels...)

	ref, err := piReferenceLine(-0.5, float64(len(buckets))-0.5)
	if err != nil {
		return err
	}
	p.Add(ref)
	p.Legend.Add("π", ref)
	p.Legend.Top = true

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}
