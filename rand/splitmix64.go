// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// Splitmix64 is a fixed-increment version of Java 8's SplittableRandom
// generator. See http://dx.doi.org/10.1145/2714064.2660195. It is a fast
// generator that passes BigCrush and is mainly used here to expand a single
// 64-bit seed into the multi-word state of a larger generator (Xoshiro256,
// PCG64, PCG64Fast, PCG32), the same role it plays in the
// reference xoshiro256 implementation it is adapted from.
//
// Splitmix64 is not reversible: it has no Previous method and is never fed
// to a composite RRNG directly.
type Splitmix64 struct {
	state uint64
}

// NewSplitmix64 returns a generator seeded with x.
func NewSplitmix64(x uint64) *Splitmix64 {
	return &Splitmix64{state: x}
}

// Next returns the next 64-bit output and advances the generator.
func (s *Splitmix64) Next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Min is the smallest value Next can return.
func (s *Splitmix64) Min() uint64 { return 0 }

// Max is the largest value Next can return.
func (s *Splitmix64) Max() uint64 { return ^uint64(0) }
