// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

// BitSource is the minimum contract a distribution needs from a uniform
// random bit generator: a 64-bit output, and the bounds of that output. It
// is satisfied by every generator in this package, reversible or not, and by
// ReversedEngine.
//
// Every distribution in this package requires Min() == 0 and Max() ==
// 2^64-1 (a full 64-bit range), except that UniformIntDistribution also
// accepts Max() == 2^32-1 for ranges wider than 32 bits; this is stated in
// each distribution's doc comment rather than checked at runtime. Every
// source this package ships has the full 64-bit range except PCG32, whose
// Max() is 2^32-1.
type BitSource interface {
	Next() uint64
	Min() uint64
	Max() uint64
}

// ReversibleSource is a BitSource that can also step backward, reseed, skip
// ahead, and compare and serialize its state. PCG64, PCG64Fast, PCG32 and
// Mersenne all implement it; it is the
// engine type a composite RRNG binds to.
type ReversibleSource interface {
	BitSource

	Previous() uint64
	Seed(seed uint64)
	Discard(n uint64)

	Equal(other ReversibleSource) bool
	String() string
	Parse(s string) error
}

// ReversedEngine flips the direction of a ReversibleSource: its Next calls
// the wrapped source's Previous. It satisfies BitSource so that it can be
// fed to any distribution's Sample method unmodified, which is precisely
// how a composite RRNG implements Previous without duplicating distribution
// logic (spec §4.7).
//
// A ReversedEngine is a transient, non-owning borrow: it must not outlive
// the call that constructs it and must not be used concurrently with
// another writer to the same engine. Composite RRNGs construct one on the
// stack inside Previous and never store it.
type ReversedEngine struct {
	engine ReversibleSource
}

// NewReversedEngine wraps engine so that Next steps it backward.
func NewReversedEngine(engine ReversibleSource) ReversedEngine {
	return ReversedEngine{engine: engine}
}

// Next returns engine.Previous().
func (r ReversedEngine) Next() uint64 { return r.engine.Previous() }

// Min forwards to the wrapped engine.
func (r ReversedEngine) Min() uint64 { return r.engine.Min() }

// Max forwards to the wrapped engine.
func (r ReversedEngine) Max() uint64 { return r.engine.Max() }
