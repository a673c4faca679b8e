// Copyright 2026 The go-powerlaw Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package powerlaw

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidParameter indicates a distribution or histogram
	// parameter that violates its precondition, such as a
	// power-law exponent of 1 or less.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptySample indicates a histogram input with no elements.
	ErrEmptySample = errors.New("empty sample")

	// ErrDegenerateSupport indicates a histogram input with no
	// strictly positive elements, for which logarithmically spaced
	// bins cannot be constructed.
	ErrDegenerateSupport = errors.New("degenerate support")
)
