// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package powerlaw provides routines for analysing power-law
// distributed random variables that are bounded only from below or
// from both below and above.
//
// The density of a power-law variable diverges near zero, so the
// distribution is at best bounded from below, with support
// (Xmin, +Inf). Real-world systems often exhibit a finite power-law
// regime instead, in which case the distribution is bounded on both
// ends, with support (Xmin, Xmax). This package generates random
// samples from either variant, evaluates the closed-form density and
// cumulative distribution, and estimates empirical densities with
// logarithmically binned histograms.
package powerlaw

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
