// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "math/bits"

// uint128 is a fixed two-word 128-bit unsigned integer, used for the LCG
// state of the 128-bit PCG configuration. All arithmetic is implicitly
// modulo 2^128 via unsigned wraparound, exactly like uint64 arithmetic is
// implicitly modulo 2^64.
type uint128 struct {
	hi, lo uint64
}

func (a uint128) add(b uint128) uint128 {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, _ := bits.Add64(a.hi, b.hi, carry)
	return uint128{hi, lo}
}

func (a uint128) sub(b uint128) uint128 {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	hi, _ := bits.Sub64(a.hi, b.hi, borrow)
	return uint128{hi, lo}
}

// mul computes a*b mod 2^128. Only the low 128 bits of the full 256-bit
// product are kept, which is exactly what modular LCG arithmetic needs.
func (a uint128) mul(b uint128) uint128 {
	hi, lo := bits.Mul64(a.lo, b.lo)
	hi += a.hi*b.lo + a.lo*b.hi
	return uint128{hi, lo}
}

