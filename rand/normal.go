// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"fmt"
	"math"

	rbits "github.com/go-rrng/reverse/bits"
)

// NormalDistribution draws standard-normal variates via the
// Marsaglia-Tsang ziggurat method and scales them by stddev/mean. One
// accepted sample consumes exactly one 64-bit word from the bit source in
// the common case (about 98.78% of draws fall in a rectangle directly);
// the tail and wedge rejection branches resolve their extra randomness
// from a transient auxiliary generator seeded from that same word, so no
// further outer words are consumed while resolving a single outer word.
// Only a failed wedge check draws a new outer word, exactly mirroring
// ziggurat's classic rejection loop.
type NormalDistribution struct {
	mean, stddev float64
}

// NewNormalDistribution returns a distribution with the given mean and
// standard deviation. It returns ErrInvalidParameter if stddev <= 0.
func NewNormalDistribution(mean, stddev float64) (*NormalDistribution, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("%w: normal: stddev=%v must be > 0", ErrInvalidParameter, stddev)
	}
	return &NormalDistribution{mean: mean, stddev: stddev}, nil
}

// Mean returns the distribution's mean.
func (d *NormalDistribution) Mean() float64 { return d.mean }

// Stddev returns the distribution's standard deviation.
func (d *NormalDistribution) Stddev() float64 { return d.stddev }

// Sample draws one value from src, which must report Min()==0 and
// Max()==2^64-1.
func (d *NormalDistribution) Sample(src BitSource) (float64, error) {
	return ziggurat(src)*d.stddev + d.mean, nil
}

func ziggurat(src BitSource) float64 {
	for {
		u := src.Next()
		index := u & 0x7f
		r := int32(u >> 8)
		x := float64(r) * zigguratWN[index]

		if abs32(r) < int32(zigguratKN[index]) {
			return x
		}

		aux := NewXoshiro256(u)

		if index == 0 {
			var xx, yy float64
			for {
				xx = -math.Log1p(-rbits.Float64(aux.Next())) / zigguratR
				yy = -math.Log1p(-rbits.Float64(aux.Next()))
				if yy+yy >= xx*xx {
					break
				}
			}
			if r > 0 {
				return zigguratR + xx
			}
			return -(zigguratR + xx)
		}

		v := rbits.Float64(aux.Next())
		if zigguratFN[index]+v*(zigguratFN[index-1]-zigguratFN[index]) < math.Exp(-0.5*x*x) {
			return x
		}
		// Wedge check failed: continue the outer loop, consuming a new word.
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// Equal reports whether other is a *NormalDistribution with the same mean
// and standard deviation.
func (d *NormalDistribution) Equal(other Distribution[float64]) bool {
	o, ok := other.(*NormalDistribution)
	return ok && d.mean == o.mean && d.stddev == o.stddev
}

// String formats mean and stddev as hexadecimal floating-point tokens.
func (d *NormalDistribution) String() string {
	return fmt.Sprintf("%s %s", formatHexFloat(d.mean), formatHexFloat(d.stddev))
}

// Parse reads back a string produced by String.
func (d *NormalDistribution) Parse(s string) error {
	var meanTok, stddevTok string
	if _, err := fmt.Sscan(s, &meanTok, &stddevTok); err != nil {
		return fmt.Errorf("%w: normal: %v", ErrMalformedState, err)
	}
	mean, err := parseHexFloat(meanTok)
	if err != nil {
		return fmt.Errorf("%w: normal: %v", ErrMalformedState, err)
	}
	stddev, err := parseHexFloat(stddevTok)
	if err != nil {
		return fmt.Errorf("%w: normal: %v", ErrMalformedState, err)
	}
	if stddev <= 0 {
		return fmt.Errorf("%w: normal: stddev=%v must be > 0", ErrInvalidParameter, stddev)
	}
	d.mean, d.stddev = mean, stddev
	return nil
}
