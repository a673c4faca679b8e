// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
)

// A LogHistogram represents options for estimating the empirical
// density of a sample with logarithmically spaced bins.
//
// Power-law samples span several orders of magnitude, so bins of
// equal width in log space resolve the tail that a linear histogram
// collapses into its first few bins.
//
// To estimate a histogram, create an instance of LogHistogram and
// then use the From method to provide data.
//
// The default (zero) value of LogHistogram is a reasonable default
// configuration.
type LogHistogram struct {
	// Edges is the slice of bin edges to count into. It must be
	// strictly increasing and have at least two elements. If
	// Edges is nil, edges are derived from the sample by LogBins.
	Edges []float64

	// Density normalizes each count by the sample size times the
	// bin width, approximating a probability density.
	Density bool
}

// A HistogramResult holds the bin edges and per-bin counts of an
// estimated histogram.
type HistogramResult struct {
	// Edges is the slice of n+1 bin edges for n bins, strictly
	// increasing.
	Edges []float64

	// Counts[i] is the count of sample values in
	// [Edges[i], Edges[i+1]), or their density if requested. The
	// last bin is closed on both ends.
	Counts []float64
}

// Midpoints returns the center of each bin, the natural abscissa for
// plotting the histogram on a log-log scale.
func (r HistogramResult) Midpoints() []float64 {
	mids := make([]float64, len(r.Counts))
	for i := range mids {
		mids[i] = 0.5 * (r.Edges[i] + r.Edges[i+1])
	}
	return mids
}

// Total returns the sum of the counts.
func (r HistogramResult) Total() float64 {
	return floats.Sum(r.Counts)
}

// LogBins returns num logarithmically spaced bin edges between the
// smallest strictly positive element of s and the largest element of
// s. If num <= 0, the number of edges follows Sturges' rule,
// ceil(log2(n)) + 1 for a sample of n values.
//
// Zero and negative elements are excluded from the lower edge
// because logarithmic spacing is undefined at and below zero.
// LogBins fails with ErrEmptySample if s has no elements and with
// ErrDegenerateSupport if it has no strictly positive elements or if
// they are all equal, leaving no range to spread the bins over.
//
// Sturges, H. A. (1926). "The choice of a class interval". Journal
// of the American Statistical Association, 21(153), 65-66.
func LogBins(s Sample, num int) ([]float64, error) {
	if len(s.Xs) == 0 {
		return nil, ErrEmptySample
	}
	if num <= 0 {
		num = int(math.Ceil(math.Log2(float64(len(s.Xs))))) + 1
	}
	if num < 2 {
		num = 2
	}
	arrMin, arrMax := inf, math.Inf(-1)
	for _, x := range s.Xs {
		if x > 0 && x < arrMin {
			arrMin = x
		}
		if x > arrMax {
			arrMax = x
		}
	}
	if math.IsInf(arrMin, 1) {
		return nil, errors.Wrap(ErrDegenerateSupport, "sample has no strictly positive elements")
	}
	if arrMin == arrMax {
		return nil, errors.Wrapf(ErrDegenerateSupport, "all positive elements equal %v", arrMax)
	}
	edges := floats.LogSpan(make([]float64, num), arrMin, arrMax)
	// The exp/log round trip in LogSpan can pull the end edges an
	// ulp inside the data range; pin them so the edges span it.
	edges[0], edges[num-1] = arrMin, arrMax
	return edges, nil
}

// From returns the histogram of the sample s. Values outside the
// range covered by the edges are dropped; with the default edges,
// which span the data, only zero and negative values can be dropped.
func (h LogHistogram) From(s Sample) (HistogramResult, error) {
	if len(s.Xs) == 0 {
		return HistogramResult{}, ErrEmptySample
	}
	edges := h.Edges
	if edges == nil {
		var err error
		if edges, err = LogBins(s, 0); err != nil {
			return HistogramResult{}, err
		}
	} else if err := checkEdges(edges); err != nil {
		return HistogramResult{}, err
	}

	counts := make([]float64, len(edges)-1)
	lo, hi := edges[0], edges[len(edges)-1]
	for _, x := range s.Xs {
		if math.IsNaN(x) || x < lo || x > hi {
			continue
		}
		// bin is the largest i with edges[i] <= x.
		bin := sort.SearchFloat64s(edges, x)
		if bin == len(edges) || edges[bin] != x {
			bin--
		}
		if bin == len(counts) {
			// The last bin is closed on both ends.
			bin--
		}
		counts[bin]++
	}

	if h.Density {
		n := s.Weight()
		for i := range counts {
			counts[i] /= n * (edges[i+1] - edges[i])
		}
	}
	return HistogramResult{Edges: edges, Counts: counts}, nil
}

func checkEdges(edges []float64) error {
	if len(edges) < 2 {
		return errors.Wrapf(ErrInvalidParameter, "need at least two bin edges, got %v", len(edges))
	}
	for i := 1; i < len(edges); i++ {
		if !(edges[i] > edges[i-1]) {
			return errors.Wrapf(ErrInvalidParameter, "bin edges must be strictly increasing at index %v", i)
		}
	}
	return nil
}
