// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bits provides the low-level bit-to-float mapping and unbiased
// range-reduction helpers shared by every distribution in the rand package.
// None of it depends on a concrete bit source: each function either takes
// the raw integer output of a generator directly, or a closure that
// produces one, so it has no opinion about whether that source is
// reversible.
package bits

import "math/bits"

// Float64 maps the high 53 bits of x onto a canonical value in [0, 1). The
// mantissa of a float64 has 52 bits, so an integer in [0, 2^53) divided by
// 2^53 is exactly representable and uniformly distributed. This is the
// standard construction for generators with weak low bits, such as
// xoshiro256+.
func Float64(x uint64) float64 {
	return float64(x>>11) * 0x1.0p-53
}

// Float32 is the 32-bit analogue of Float64, using the high 24 bits of x.
func Float32(x uint32) float32 {
	return float32(x>>8) * 0x1.0p-24
}

// Lemire64 performs Lemire's nearly-divisionless unbiased reduction of a
// 64-bit uniform bit source into [0, n). next is called once in the common
// case and, rarely, additional times to reject values in a biased low band;
// the number of calls is not fixed, so reversing the underlying bit source
// does not guarantee the same rejection pattern will occur in reverse (see
// the package rand uniform-int distribution doc comment for the
// reversibility consequence of this).
func Lemire64(next func() uint64, n uint64) uint64 {
	hi, lo := bits.Mul64(next(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul64(next(), n)
		}
	}
	return hi
}

// Lemire32 is the 32-bit analogue of Lemire64.
func Lemire32(next func() uint32, n uint32) uint32 {
	hi, lo := bits.Mul32(next(), n)
	if lo < n {
		threshold := -n % n
		for lo < threshold {
			hi, lo = bits.Mul32(next(), n)
		}
	}
	return hi
}
