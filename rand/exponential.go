// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"fmt"
	"math"

	rbits "github.com/go-rrng/reverse/bits"
)

// ExponentialDistribution draws variates via inverse-CDF sampling. Each
// sample consumes exactly one 64-bit word from the bit source.
type ExponentialDistribution struct {
	lambda float64
}

// NewExponentialDistribution returns a distribution with the given rate
// parameter. It returns ErrInvalidParameter if lambda <= 0.
func NewExponentialDistribution(lambda float64) (*ExponentialDistribution, error) {
	if lambda <= 0 {
		return nil, fmt.Errorf("%w: exponential: lambda=%v must be > 0", ErrInvalidParameter, lambda)
	}
	return &ExponentialDistribution{lambda: lambda}, nil
}

// Lambda returns the distribution's rate parameter.
func (d *ExponentialDistribution) Lambda() float64 { return d.lambda }

// Sample draws one value from src, which must report Min()==0 and
// Max()==2^64-1.
func (d *ExponentialDistribution) Sample(src BitSource) (float64, error) {
	c := rbits.Float64(src.Next())
	return -math.Log(1-c) / d.lambda, nil
}

// Equal reports whether other is an *ExponentialDistribution with the same
// rate parameter.
func (d *ExponentialDistribution) Equal(other Distribution[float64]) bool {
	o, ok := other.(*ExponentialDistribution)
	return ok && d.lambda == o.lambda
}

// String formats lambda as a hexadecimal floating-point token.
func (d *ExponentialDistribution) String() string {
	return formatHexFloat(d.lambda)
}

// Parse reads back a string produced by String.
func (d *ExponentialDistribution) Parse(s string) error {
	var tok string
	if _, err := fmt.Sscan(s, &tok); err != nil {
		return fmt.Errorf("%w: exponential: %v", ErrMalformedState, err)
	}
	lambda, err := parseHexFloat(tok)
	if err != nil {
		return fmt.Errorf("%w: exponential: %v", ErrMalformedState, err)
	}
	if lambda <= 0 {
		return fmt.Errorf("%w: exponential: lambda=%v must be > 0", ErrInvalidParameter, lambda)
	}
	d.lambda = lambda
	return nil
}
