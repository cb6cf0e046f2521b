// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "math/bits"

// Xoshiro256 is xoshiro256+ 1.0, adapted from the 2018 implementation by
// David Blackman and Sebastiano Vigna. It is a non-reversible auxiliary bit
// source: it has no Previous method and is used transiently, seeded from a
// single 64-bit word, to resolve Ziggurat tail/wedge rejection (rand/normal.go)
// and the R<D engine-widening path (rand/uniform.go) without consuming any
// further output from the reversible engine driving a composite RRNG.
//
// Its upper bits are recommended for floating-point generation; the lowest
// three bits can fail linearity tests, which matters little for the uses
// above: the Ziggurat path takes the high bits via bits.Float64, and the
// widening path's Lemire reduction keeps the high word of a product.
type Xoshiro256 struct {
	state [4]uint64
}

var (
	xoshiroJump     = [4]uint64{0x180ec6d33cfd0aba, 0xd5a61266f0c9392c, 0xa9582618e03fc9aa, 0x39abdc4529b1661c}
	xoshiroLongJump = [4]uint64{0x76e15d3efefdcbbf, 0xc5004e441c522fb3, 0x77710069854ee241, 0x39109bb02acbe635}
)

// NewXoshiro256 seeds a generator from a single 64-bit word by expanding it
// with Splitmix64, the same construction the original implementation uses.
func NewXoshiro256(seed uint64) *Xoshiro256 {
	x := new(Xoshiro256)
	x.Seed(seed)
	return x
}

// Seed reseeds the generator from a single 64-bit word.
func (x *Xoshiro256) Seed(seed uint64) {
	sm := NewSplitmix64(seed)
	for i := range x.state {
		x.state[i] = sm.Next()
	}
}

// Min is the smallest value Next can return.
func (x *Xoshiro256) Min() uint64 { return 0 }

// Max is the largest value Next can return.
func (x *Xoshiro256) Max() uint64 { return ^uint64(0) }

// Next returns the next 64-bit output and advances the generator.
func (x *Xoshiro256) Next() uint64 {
	s := &x.state
	result := s[0] + s[3]
	t := s[1] << 17

	s[2] ^= s[0]
	s[3] ^= s[1]
	s[1] ^= s[2]
	s[0] ^= s[3]

	s[2] ^= t
	s[3] = bits.RotateLeft64(s[3], 45)

	return result
}

// Discard advances the generator by z outputs without returning them.
func (x *Xoshiro256) Discard(z uint64) {
	for ; z != 0; z-- {
		x.Next()
	}
}

// Jump is equivalent to 2^128 calls to Next. It can be used to generate
// 2^128 non-overlapping subsequences for parallel computations that each
// draw from their own Xoshiro256 auxiliary source.
func (x *Xoshiro256) Jump() { x.jumpWith(xoshiroJump) }

// LongJump is equivalent to 2^192 calls to Next. It can be used to generate
// 2^64 starting points, from each of which Jump generates 2^64 non-overlapping
// subsequences for parallel distributed computations.
func (x *Xoshiro256) LongJump() { x.jumpWith(xoshiroLongJump) }

func (x *Xoshiro256) jumpWith(poly [4]uint64) {
	var s0, s1, s2, s3 uint64
	for _, word := range poly {
		for b := 0; b < 64; b++ {
			if word&(uint64(1)<<uint(b)) != 0 {
				s0 ^= x.state[0]
				s1 ^= x.state[1]
				s2 ^= x.state[2]
				s3 ^= x.state[3]
			}
			x.Next()
		}
	}
	x.state[0], x.state[1], x.state[2], x.state[3] = s0, s1, s2, s3
}
