// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"math"
	"math/rand"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestLogBins(t *testing.T) {
	// 8 values, so Sturges' rule gives ceil(log2(8))+1 = 4 edges.
	s := Sample{Xs: []float64{0, 0.1, 1, 3, 10, 30, 100, 1000}}
	edges, err := LogBins(s, 0)
	if err != nil {
		t.Fatalf("LogBins failed: %v", err)
	}
	if len(edges) != 4 {
		t.Fatalf("want 4 edges, got %v", len(edges))
	}
	// The zero element is excluded from the lower edge.
	if !aeq(0.1, edges[0]) {
		t.Errorf("want first edge 0.1, got %v", edges[0])
	}
	if !aeq(1000, edges[3]) {
		t.Errorf("want last edge 1000, got %v", edges[3])
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			t.Errorf("edges not increasing: %v", edges)
		}
		// Log-spaced edges keep a constant ratio.
		if !aeq(edges[1]/edges[0], edges[i]/edges[i-1]) {
			t.Errorf("edge ratios differ: %v", edges)
		}
	}

	edges, err = LogBins(s, 9)
	if err != nil {
		t.Fatalf("LogBins failed: %v", err)
	}
	if len(edges) != 9 {
		t.Errorf("want 9 edges, got %v", len(edges))
	}
}

func TestLogBinsErrors(t *testing.T) {
	if _, err := LogBins(Sample{}, 0); !errors.Is(err, ErrEmptySample) {
		t.Errorf("want ErrEmptySample, got %v", err)
	}
	s := Sample{Xs: []float64{0, 0, -1}}
	if _, err := LogBins(s, 0); !errors.Is(err, ErrDegenerateSupport) {
		t.Errorf("want ErrDegenerateSupport, got %v", err)
	}
	flat := Sample{Xs: []float64{0, 7, 7, 7}}
	if _, err := LogBins(flat, 0); !errors.Is(err, ErrDegenerateSupport) {
		t.Errorf("want ErrDegenerateSupport for a single-valued sample, got %v", err)
	}
}

func TestHistogramCounts(t *testing.T) {
	edges := []float64{1, 10, 100, 1000}
	s := Sample{Xs: []float64{0.5, 1, 5, 10, 99, 100, 500, 1000, 2000, -3, 0}}
	hist, err := LogHistogram{Edges: edges}.From(s)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	// 0.5, 2000, -3 and 0 fall outside the edges and are dropped;
	// 1000 lands in the last bin because it is closed on both
	// ends.
	want := []float64{2, 2, 3}
	for i := range want {
		if hist.Counts[i] != want[i] {
			t.Errorf("want counts %v, got %v", want, hist.Counts)
			break
		}
	}
	if got := hist.Total(); got != 7 {
		t.Errorf("want total 7, got %v", got)
	}
}

func TestHistogramDefaultEdgesCoverSample(t *testing.T) {
	rg := rand.New(rand.NewSource(3))
	d := Dist{Alpha: 2.5, Xmin: 10, Xmax: inf}
	xs, err := d.Sample(rg, 10000)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	hist, err := LogHistogram{}.From(Sample{Xs: xs})
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	// The default edges span the data, so no value is dropped.
	if got := hist.Total(); got != 10000 {
		t.Errorf("want total 10000, got %v", got)
	}
	wantBins := int(math.Ceil(math.Log2(10000)))
	if len(hist.Counts) != wantBins {
		t.Errorf("want %v bins, got %v", wantBins, len(hist.Counts))
	}
}

func TestHistogramDensity(t *testing.T) {
	edges := []float64{1, 10, 100}
	s := Sample{Xs: []float64{2, 3, 20, 50, 200}}
	hist, err := LogHistogram{Edges: edges, Density: true}.From(s)
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	// Two values per bin, out of five, normalized by bin width.
	if want := 2.0 / (5 * 9); !aeq(want, hist.Counts[0]) {
		t.Errorf("want density %v in bin 0, got %v", want, hist.Counts[0])
	}
	if want := 2.0 / (5 * 90); !aeq(want, hist.Counts[1]) {
		t.Errorf("want density %v in bin 1, got %v", want, hist.Counts[1])
	}
	// The densities integrate to the in-range fraction of the
	// sample.
	integral := 0.0
	for i, c := range hist.Counts {
		integral += c * (edges[i+1] - edges[i])
	}
	if !aeq(0.8, integral) {
		t.Errorf("want integral 0.8, got %v", integral)
	}
}

func TestHistogramDensityIntegratesToOne(t *testing.T) {
	rg := rand.New(rand.NewSource(11))
	d := Dist{Alpha: 2.5, Xmin: 10, Xmax: 1e5}
	xs, err := d.Sample(rg, 100000)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	hist, err := LogHistogram{Density: true}.From(Sample{Xs: xs})
	if err != nil {
		t.Fatalf("From failed: %v", err)
	}
	integral := 0.0
	for i, c := range hist.Counts {
		integral += c * (hist.Edges[i+1] - hist.Edges[i])
	}
	if !aeq(1, integral) {
		t.Errorf("want density integral 1, got %v", integral)
	}

	// The empirical density of the first bin, where counts are
	// plentiful, approximates the theoretical density at the bin
	// midpoint.
	mid := hist.Midpoints()[0]
	ratio := hist.Counts[0] / d.PDF(mid)
	if ratio < 0.5 || ratio > 1.5 {
		t.Errorf("empirical density %v far from PDF(%v) = %v", hist.Counts[0], mid, d.PDF(mid))
	}
}

func TestHistogramErrors(t *testing.T) {
	if _, err := (LogHistogram{}).From(Sample{}); !errors.Is(err, ErrEmptySample) {
		t.Errorf("want ErrEmptySample, got %v", err)
	}
	s := Sample{Xs: []float64{0, -1, 0}}
	if _, err := (LogHistogram{}).From(s); !errors.Is(err, ErrDegenerateSupport) {
		t.Errorf("want ErrDegenerateSupport, got %v", err)
	}
	good := Sample{Xs: []float64{1, 2, 3}}
	for _, edges := range [][]float64{
		{5},
		{1, 1, 2},
		{3, 2, 1},
	} {
		if _, err := (LogHistogram{Edges: edges}).From(good); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("want ErrInvalidParameter for edges %v, got %v", edges, err)
		}
	}
}

func TestMidpoints(t *testing.T) {
	hist := HistogramResult{Edges: []float64{1, 3, 5}, Counts: []float64{2, 4}}
	mids := hist.Midpoints()
	if len(mids) != 2 || !aeq(2, mids[0]) || !aeq(4, mids[1]) {
		t.Errorf("want midpoints [2 4], got %v", mids)
	}
}
