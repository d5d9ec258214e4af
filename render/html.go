package render

import (
	"io"
	"math"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/buffon/sweep"
)

// HTMLReport writes a self-contained interactive page to w: the
// running-estimate line chart and the grouped boxplots, both with a π
// mark line. Either input may be empty, but not both.
//
// Errors: ErrNoData when both inputs are empty, plus any chart render
// error.
func HTMLReport(w io.Writer, trace []sweep.Point, buckets []sweep.Bucket) error {
	if len(trace) == 0 && len(buckets) == 0 {
		return ErrNoData
	}

	page := components.NewPage()
	page.PageTitle = "Buffon's Needle — Estimating π"

	if len(trace) > 0 {
		page.AddCharts(traceChart(trace))
	}
	if len(buckets) > 0 {
		page.AddCharts(bucketChart(buckets))
	}
	return page.Render(w)
}

// traceChart builds the running-estimate line chart. Undefined
// prefixes (NaN) become gaps in the line rather than zeros.
func traceChart(trace []sweep.Point) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Cumulative Estimation of π",
			Subtitle: "running estimate over accumulated needle drops",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "π estimation"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
	)

	xs := make([]string, len(trace))
	data := make([]opts.LineData, len(trace))
	for i, p := range trace {
		xs[i] = strconv.Itoa(p.Needles)
		if math.IsNaN(p.Estimate) {
			data[i] = opts.LineData{Value: nil}
		} else {
			data[i] = opts.LineData{Value: p.Estimate}
		}
	}

	line.SetXAxis(xs).AddSeries("running estimate", data,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "π", YAxis: math.Pi}),
	)
	return line
}

// bucketChart builds the grouped boxplot from each bucket's
// five-number summary. All-undefined buckets keep their slot with an
// empty box so missing data stays visible.
func bucketChart(buckets []sweep.Bucket) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Grouped Estimations of π",
			Subtitle: "independent trials per sample size",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Estimation of π"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "N"}),
	)

	labels := make([]string, len(buckets))
	data := make([]opts.BoxPlotData, len(buckets))
	for i, b := range buckets {
		labels[i] = strconv.Itoa(b.Needles)
		s := b.Summary()
		if s.Count == 0 {
			data[i] = opts.BoxPlotData{Value: []float64{}}
			continue
		}
		data[i] = opts.BoxPlotData{Value: []float64{s.Min, s.Q1, s.Median, s.Q3, s.Max}}
	}

	box.SetXAxis(labels).AddSeries("estimates", data,
		charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "π", YAxis: math.Pi}),
	)
	return box
}
