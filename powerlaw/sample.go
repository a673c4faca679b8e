// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sample is a collection of empirical observations.
type Sample struct {
	// Xs is the slice of observed values.
	Xs []float64

	// Sorted indicates that Xs is already sorted in ascending
	// order.
	Sorted bool
}

// Bounds returns the minimum and maximum values of s.Xs, or NaNs if
// s is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}

// Sum returns the sum of s.Xs.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Weight returns the number of observations in s.
func (s Sample) Weight() float64 {
	return float64(len(s.Xs))
}

// Mean returns the arithmetic mean of s.Xs, or NaN if s is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return s.Sum() / s.Weight()
}

// Copy returns a copy of the sample that shares no data with s.
func (s Sample) Copy() *Sample {
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	return &Sample{xs, s.Sorted}
}

// Sort sorts s.Xs in place and returns s for method chaining.
func (s *Sample) Sort() *Sample {
	if !s.Sorted {
		sort.Float64s(s.Xs)
		s.Sorted = true
	}
	return s
}
