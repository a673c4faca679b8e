// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import (
	"math"
	"math/rand"

	"github.com/cockroachdb/errors"
)

// A Dist is a continuous power-law distribution with exponent Alpha,
// bounded below at Xmin and, optionally, above at Xmax.
//
// The density is proportional to x^(-Alpha) on the support. The
// closed forms for the density, the cumulative distribution and its
// inverse follow Clauset, A., Shalizi, C. R., Newman, M. E. J.
// "Power-law Distributions in Empirical Data". SIAM Review 51(4):
// 661-703 (2009), whose Sec. II B also recommends the inverse
// transform method used by Rand and Sample. Writing beta = 1 - Alpha
// (negative, since Alpha > 1), the unbounded density is
// -beta/Xmin^beta * x^(-Alpha) and the bounded density is
// beta/(Xmax^beta - Xmin^beta) * x^(-Alpha).
//
// These formulae hold for continuous variables only; Clauset et al.
// give a separate set for discrete power laws, which this package
// does not implement.
type Dist struct {
	// Alpha is the power-law exponent. Alpha > 1.
	Alpha float64

	// Xmin is the lower bound of the support. Xmin > 0.
	Xmin float64

	// Xmax is the upper bound of the support. Xmax > Xmin. An
	// infinite Xmax means the distribution is bounded only from
	// below. Absence of an upper bound is always expressed as
	// +Inf, never as a zero sentinel, so a literal bound of any
	// finite value keeps its meaning.
	Xmax float64
}

// New returns a power-law distribution bounded only from below.
func New(alpha, xmin float64) (Dist, error) {
	return NewBounded(alpha, xmin, inf)
}

// NewBounded returns a power-law distribution bounded from below at
// xmin and from above at xmax. Passing +Inf for xmax yields the same
// distribution as New.
func NewBounded(alpha, xmin, xmax float64) (Dist, error) {
	d := Dist{Alpha: alpha, Xmin: xmin, Xmax: xmax}
	if err := d.Check(); err != nil {
		return Dist{}, err
	}
	return d, nil
}

// Check reports whether the distribution parameters satisfy their
// preconditions: Alpha > 1, Xmin > 0 and Xmax > Xmin. New and
// NewBounded call it on the caller's behalf; it is exported for Dist
// values constructed as literals. The reported error matches
// ErrInvalidParameter.
func (d Dist) Check() error {
	// The negated comparisons also reject NaN parameters.
	if !(d.Alpha > 1) {
		return errors.Wrapf(ErrInvalidParameter, "power-law exponent must be greater than 1, got alpha=%v", d.Alpha)
	}
	if !(d.Xmin > 0) {
		return errors.Wrapf(ErrInvalidParameter, "lower bound must be positive, got xmin=%v", d.Xmin)
	}
	if !(d.Xmax > d.Xmin) {
		return errors.Wrapf(ErrInvalidParameter, "upper bound must exceed lower bound, got xmin=%v, xmax=%v", d.Xmin, d.Xmax)
	}
	return nil
}

// Bounded reports whether the distribution has a finite upper bound.
func (d Dist) Bounded() bool {
	return !math.IsInf(d.Xmax, 1)
}

// pdfConst returns the normalization constant of the density.
func (d Dist) pdfConst() float64 {
	beta := 1 - d.Alpha
	if !d.Bounded() {
		return -beta / math.Pow(d.Xmin, beta)
	}
	return beta / (math.Pow(d.Xmax, beta) - math.Pow(d.Xmin, beta))
}

// PDF returns the value of the probability density function of this
// distribution at x. The density is 0 outside [Xmin, Xmax].
//
// Exponents very close to 1 or extreme magnitudes of x can exceed
// the range of float64, in which case the result saturates to 0 or
// +Inf following math.Pow.
func (d Dist) PDF(x float64) float64 {
	if !(x >= d.Xmin && x <= d.Xmax) {
		return 0
	}
	return d.pdfConst() * math.Pow(x, -d.Alpha)
}

// PDFEach returns PDF(xs[i]) for each i.
func (d Dist) PDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	k := d.pdfConst()
	for i, x := range xs {
		if x >= d.Xmin && x <= d.Xmax {
			res[i] = k * math.Pow(x, -d.Alpha)
		}
	}
	return res
}

// CDF returns the value of the cumulative distribution function of
// this distribution at x. CDF(Xmin) = 0 and, for a bounded
// distribution, CDF(Xmax) = 1. Outside the support the value clamps
// to 0 below Xmin and to 1 above Xmax.
func (d Dist) CDF(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	if x <= d.Xmin {
		return 0
	}
	if x >= d.Xmax {
		return 1
	}
	beta := 1 - d.Alpha
	if !d.Bounded() {
		return 1 - math.Pow(x/d.Xmin, beta)
	}
	a := math.Pow(d.Xmin, beta)
	return (math.Pow(x, beta) - a) / (math.Pow(d.Xmax, beta) - a)
}

// CDFEach returns CDF(xs[i]) for each i.
func (d Dist) CDFEach(xs []float64) []float64 {
	res := make([]float64, len(xs))
	beta := 1 - d.Alpha
	a := math.Pow(d.Xmin, beta)
	k := math.Pow(d.Xmax, beta) - a
	for i, x := range xs {
		switch {
		case math.IsNaN(x):
			res[i] = nan
		case x <= d.Xmin:
			res[i] = 0
		case x >= d.Xmax:
			res[i] = 1
		case !d.Bounded():
			res[i] = 1 - math.Pow(x/d.Xmin, beta)
		default:
			res[i] = (math.Pow(x, beta) - a) / k
		}
	}
	return res
}

// InvCDF returns the inverse of the CDF for y, the value x such that
// CDF(x) = y. The value of y must be in [0, 1]; InvCDF returns NaN
// otherwise. For a distribution bounded only from below, InvCDF(1)
// is +Inf.
func (d Dist) InvCDF(y float64) float64 {
	if !(y >= 0 && y <= 1) {
		return nan
	}
	beta := 1 - d.Alpha
	if !d.Bounded() {
		return d.Xmin * math.Pow(1-y, 1/beta)
	}
	a := math.Pow(d.Xmin, beta)
	b := math.Pow(d.Xmax, beta) - a
	return math.Pow(a+b*y, 1/beta)
}

// InvCDFEach returns InvCDF(ys[i]) for each i.
func (d Dist) InvCDFEach(ys []float64) []float64 {
	res := make([]float64, len(ys))
	for i, y := range ys {
		res[i] = d.InvCDF(y)
	}
	return res
}

// Bounds returns reasonable bounds for this distribution's PDF and
// CDF: the support itself when it is bounded, and otherwise the
// range up to the 99.9th percentile, beyond which the remaining
// weight is negligible.
func (d Dist) Bounds() (float64, float64) {
	if d.Bounded() {
		return d.Xmin, d.Xmax
	}
	return d.Xmin, d.InvCDF(0.999)
}

// Mean returns the expectation of the distribution. For a
// distribution bounded only from below the mean is finite only when
// Alpha > 2 and is +Inf otherwise.
func (d Dist) Mean() float64 {
	if !d.Bounded() {
		if d.Alpha <= 2 {
			return inf
		}
		return d.Xmin * (d.Alpha - 1) / (d.Alpha - 2)
	}
	if d.Alpha == 2 {
		// The antiderivative of x^(1-Alpha) degenerates to a
		// logarithm.
		return math.Log(d.Xmax/d.Xmin) / (1/d.Xmin - 1/d.Xmax)
	}
	beta := 1 - d.Alpha
	k := math.Pow(d.Xmax, beta) - math.Pow(d.Xmin, beta)
	return beta / k * (math.Pow(d.Xmax, beta+1) - math.Pow(d.Xmin, beta+1)) / (beta + 1)
}

// Rand draws one variate from the distribution by the inverse
// transform method: a uniform variate in [0, 1) passed through
// InvCDF. The random source is supplied by the caller, so runs are
// reproducible under a fixed seed and independent sources may be
// used across goroutines.
func (d Dist) Rand(rg *rand.Rand) float64 {
	return d.InvCDF(rg.Float64())
}

// Sample draws size independent variates from the distribution.
// Every returned value lies within the support, up to floating-point
// rounding at the boundary. Sample fails with ErrInvalidParameter if
// the distribution parameters violate Check or if size is not
// positive.
func (d Dist) Sample(rg *rand.Rand, size int) ([]float64, error) {
	if err := d.Check(); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "sample size must be positive, got %v", size)
	}
	xs := make([]float64, size)
	for i := range xs {
		xs[i] = d.Rand(rg)
	}
	return xs, nil
}
