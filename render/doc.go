// Package render draws the classic Buffon's-needle figure set from the
// numeric data produced by the needle, estimate and sweep packages.
//
// 🚀 What is render?
//
//	The visualization collaborator of the buffon module:
//	  • Field       — the randomized-needle drop over the ruled grid
//	    (crossing needles in blue, the rest in red), as PNG
//	  • Convergence — the running π estimate with a π reference line, as PNG
//	  • Boxplot     — grouped estimate distributions per sample size, as PNG
//	  • HTMLReport  — an interactive page (line chart + boxplots)
//
// PNG figures use gonum.org/v1/plot; the HTML report uses
// github.com/go-echarts/go-echarts/v2. The core packages stay free of
// any I/O — everything here consumes their in-memory sequences.
//
// ⚙️ Usage:
//
//	gen, _ := needle.NewGenerator(needle.DefaultOptions(), 42)
//	needles, crossed, _ := gen.DropN(1000)
//	err := render.Field("needles.png", needles, crossed, gen.Options())
package render
