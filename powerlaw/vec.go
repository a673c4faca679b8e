// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Linspace returns num values spaced evenly between lo and hi,
// inclusive.
func Linspace(lo, hi float64, num int) []float64 {
	if num < 2 {
		if num == 1 {
			return []float64{lo}
		}
		return nil
	}
	return floats.Span(make([]float64, num), lo, hi)
}

// Logspace returns num values spaced evenly on a logarithmic scale
// between base**lo and base**hi, inclusive.
func Logspace(lo, hi float64, num int, base float64) []float64 {
	res := Linspace(lo, hi, num)
	for i, x := range res {
		res[i] = math.Pow(base, x)
	}
	return res
}
