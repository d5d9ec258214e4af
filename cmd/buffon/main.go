// Command buffon runs the Buffon's-needle experiment end to end and
// writes the classic figure set:
//
//	needles.png      — the randomized needle drop over the ruled grid
//	convergence.png  — the running π estimate for one large trial
//	boxplot.png      — grouped estimate distributions per sample size
//	report.html      — an interactive page with the same views
//
// Usage:
//
//	buffon -spacing 1 -length 0.5 -needles 1000 -seed 54654324 \
//	       -sizes 100:100000:100 -reps 1 -out ./figures
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/buffon/estimate"
	"github.com/katalvlaran/buffon/needle"
	"github.com/katalvlaran/buffon/render"
	"github.com/katalvlaran/buffon/sweep"
)

func main() {
	var (
		spacing = flag.Float64("spacing", needle.DefaultSpacing, "distance between grid lines (d)")
		length  = flag.Float64("length", needle.DefaultLength, "needle length (l, must satisfy l <= d)")
		extent  = flag.Float64("extent", needle.DefaultFieldExtent, "half-width of the drop field used for rendering")
		needles = flag.Int("needles", 1000, "needles for the field figure and convergence trace")
		seed    = flag.Int64("seed", 54654324, "base seed; 0 selects the fixed default stream")
		sizes   = flag.String("sizes", "100:100000:100", "sample-size ladder for the grouped view, start:stop:step")
		reps    = flag.Int("reps", 1, "independent trials per sample size")
		outDir  = flag.String("out", ".", "output directory for the figures")
	)
	flag.Parse()

	opts := needle.Options{Spacing: *spacing, Length: *length, FieldExtent: *extent}
	if err := opts.Validate(); err != nil {
		log.Fatalf("geometry: %v", err)
	}
	sizeList, err := parseSizeRange(*sizes)
	if err != nil {
		log.Fatalf("sizes: %v", err)
	}
	if err = os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("output dir: %v", err)
	}

	// Field figure: one drop, rendered needle by needle.
	gen, err := needle.NewGenerator(opts, *seed)
	if err != nil {
		log.Fatalf("generator: %v", err)
	}
	dropped, crossed, err := gen.DropN(*needles)
	if err != nil {
		log.Fatalf("drop: %v", err)
	}
	fieldPath := filepath.Join(*outDir, "needles.png")
	if err = render.Field(fieldPath, dropped, crossed, opts); err != nil {
		log.Fatalf("render field: %v", err)
	}

	// Convergence trace for the same sample size.
	trace, err := sweep.Trace(*needles, opts, *seed)
	if err != nil {
		log.Fatalf("trace: %v", err)
	}
	convPath := filepath.Join(*outDir, "convergence.png")
	if err = render.Convergence(convPath, trace); err != nil {
		log.Fatalf("render convergence: %v", err)
	}

	// Grouped sweep across the size ladder.
	cfg := sweep.Config{Sizes: sizeList, Repetitions: *reps, Needle: opts, Seed: *seed}
	buckets, err := sweep.Grouped(cfg)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}
	boxPath := filepath.Join(*outDir, "boxplot.png")
	if err = render.Boxplot(boxPath, buckets); err != nil {
		log.Fatalf("render boxplot: %v", err)
	}

	reportPath := filepath.Join(*outDir, "report.html")
	report, err := os.Create(reportPath)
	if err != nil {
		log.Fatalf("report: %v", err)
	}
	if err = render.HTMLReport(report, trace, buckets); err != nil {
		report.Close()
		log.Fatalf("render report: %v", err)
	}
	if err = report.Close(); err != nil {
		log.Fatalf("report: %v", err)
	}

	res, err := estimate.Run(*needles, opts, *seed)
	if err != nil {
		log.Fatalf("estimate: %v", err)
	}
	if pi, estErr := res.Estimate(); estErr != nil {
		log.Printf("n=%d: %v", res.Needles, estErr)
	} else {
		log.Printf("n=%d crossings=%d π̂=%.5f", res.Needles, res.Crossings, pi)
	}
	log.Printf("figures written to %s", *outDir)
}

// parseSizeRange parses "start:stop:step" into the size ladder.
func parseSizeRange(s string) ([]int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected start:stop:step, got %q", s)
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid int %q: %w", p, err)
		}
		vals[i] = v
	}
	sizes := sweep.SizeRange(vals[0], vals[1], vals[2])
	if sizes == nil {
		return nil, fmt.Errorf("empty range %q (need start >= 1, step >= 1, stop > start)", s)
	}
	return sizes, nil
}
