// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders log-binned histograms and theoretical density
// curves as log-log charts.
//
// The package is a pure consumer of numbers: it receives bin edges,
// counts and curve points and produces an HTML artifact, performing
// no computation that affects the correctness of the inputs.
package plot

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/bedartha/go-powerlaw/powerlaw"
)

// Options configure the rendered chart. The zero value of each field
// selects the documented default; the set of recognized options is
// closed by construction.
type Options struct {
	// MarkerEdgeColor is the border color of the histogram
	// markers. Default "none".
	MarkerEdgeColor string

	// MarkerFaceColor is the fill color of the histogram markers.
	// Default "black".
	MarkerFaceColor string

	// MarkerSize is the symbol size of the histogram markers in
	// pixels. Default 5.
	MarkerSize int

	// XAxisLabel is the label of the horizontal axis. Default
	// "Observable (Units)".
	XAxisLabel string

	// FontSize is the font size of the chart title. Default 12.
	FontSize int
}

func (o Options) withDefaults() Options {
	if o.MarkerEdgeColor == "" {
		o.MarkerEdgeColor = "none"
	}
	if o.MarkerFaceColor == "" {
		o.MarkerFaceColor = "black"
	}
	if o.MarkerSize == 0 {
		o.MarkerSize = 5
	}
	if o.XAxisLabel == "" {
		o.XAxisLabel = "Observable (Units)"
	}
	if o.FontSize == 0 {
		o.FontSize = 12
	}
	return o
}

// LogLog renders hist as a scatter of bin midpoints against counts
// on logarithmic axes, overlays curve as a line when it is
// non-empty, and writes the chart as an HTML document to w.
func LogLog(w io.Writer, hist powerlaw.HistogramResult, curve [][2]float64, o Options) error {
	o = o.withDefaults()
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeChalk,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      "Log-binned histogram",
			TitleStyle: &opts.TextStyle{FontSize: o.FontSize},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: o.XAxisLabel, Type: "log"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Probability", Type: "log"}),
	)
	scatter.AddSeries("Histogram", scatterData(hist, o.MarkerSize),
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color:       o.MarkerFaceColor,
			BorderColor: o.MarkerEdgeColor,
		}))
	if len(curve) > 0 {
		line := charts.NewLine()
		line.AddSeries("Theoretical", lineData(curve))
		scatter.Overlap(line)
	}
	return scatter.Render(w)
}

// PDFCurve samples the theoretical density of d at num points spaced
// logarithmically across the distribution's bounds, in the shape
// LogLog expects for its overlay.
func PDFCurve(d powerlaw.Dist, num int) [][2]float64 {
	lo, hi := d.Bounds()
	xs := powerlaw.Logspace(math.Log10(lo), math.Log10(hi), num, 10)
	ys := d.PDFEach(xs)
	curve := make([][2]float64, len(xs))
	for i := range xs {
		curve[i] = [2]float64{xs[i], ys[i]}
	}
	return curve
}

func scatterData(hist powerlaw.HistogramResult, size int) []opts.ScatterData {
	items := []opts.ScatterData{}
	mids := hist.Midpoints()
	for i, c := range hist.Counts {
		if c <= 0 {
			// Zero counts have no place on a log axis.
			continue
		}
		items = append(items, opts.ScatterData{Value: [2]float64{mids[i], c}, SymbolSize: size})
	}
	return items
}

func lineData(curve [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, p := range curve {
		items = append(items, opts.LineData{Value: p})
	}
	return items
}
