// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"fmt"
	"math/bits"
)

// The PCG family advances an internal LCG state
//
//	state' = state * multiplier + increment   (mod 2^w)
//
// and reveals it only through a permutation P. Reversing one step requires
// the multiplicative inverse of the multiplier modulo 2^w; the inverses
// below are precomputed constants, not computed at runtime, exactly as
// spec.md §4.1 requires.
//
// Two output conventions exist, selected per configuration by whether the
// permutation is applied to the state from *before* or *after* the LCG
// step:
//
//   - outputPrevious: forward captures the state, advances it, and permutes
//     the captured (pre-step) value — the common convention used by most
//     real PCG configurations (PCG32, the default pcg64). Reversing walks
//     the state backward first and then permutes the new (post-step)
//     value, which is exactly the state forward would have captured on
//     its next call.
//   - !outputPrevious: forward advances the state first and permutes the
//     new value directly (used by the "cheap multiplier" MCG fast variant,
//     which has no separate stream to keep the permutation input simple).
//     Reversing captures the current value, walks the state backward, and
//     permutes the captured value.
//
// Both conventions are self-inverse by construction: one is "permute
// before the step", the other "permute after the step", and each
// direction always permutes whichever value the opposite direction would
// have produced.

// PCG64 is the primed reversible bit source: a PCG configuration with
// 128-bit LCG state, the XSL-RR 128/64 output permutation, and a
// per-instance odd stream (increment), matching the library's default
// pcg64 engine. It outputs the previous (pre-step) state.
type PCG64 struct {
	state     uint128
	increment uint128
}

var (
	pcg64DefaultMultiplier = uint128{2549297995355413924, 4865540595714422341}
	pcg64DefaultIncrement  = uint128{6364136223846793005, 1442695040888963407}
	// Precomputed multiplicative inverse of pcg64DefaultMultiplier mod 2^128.
	pcg64DefaultMultiplierInverse = uint128{566787436162029664, 11001107174925446285}
)

// NewPCG64 returns a PCG64 seeded with seed.
func NewPCG64(seed uint64) *PCG64 {
	p := new(PCG64)
	p.Seed(seed)
	return p
}

// Seed expands seed into a 256-bit (state, stream) pair via Splitmix64 and
// mixes it into the LCG state with the standard two-bump PCG seeding
// sequence (state += inc; state *= mult; state += inc), the same
// construction github.com/cathugger/nksrv's pcg64.go uses.
func (p *PCG64) Seed(seed uint64) {
	sm := NewSplitmix64(seed)
	stateHi, stateLo := sm.Next(), sm.Next()
	seqHi, seqLo := sm.Next(), sm.Next()

	p.state = uint128{stateHi, stateLo}
	p.increment = uint128{(seqHi << 1) | (seqLo >> 63), (seqLo << 1) | 1}
	p.state = p.state.add(p.increment)
	p.state = p.state.mul(pcg64DefaultMultiplier)
	p.state = p.state.add(p.increment)
}

// Min is the smallest value Next can return.
func (p *PCG64) Min() uint64 { return 0 }

// Max is the largest value Next can return.
func (p *PCG64) Max() uint64 { return ^uint64(0) }

func outputXSLRR128_64(state uint128) uint64 {
	xored := state.hi ^ state.lo
	rot := int(state.hi >> 58)
	return bits.RotateLeft64(xored, -rot)
}

// Next applies the LCG step and permutes the pre-step state.
func (p *PCG64) Next() uint64 {
	old := p.state
	p.state = old.mul(pcg64DefaultMultiplier).add(p.increment)
	return outputXSLRR128_64(old)
}

// Previous inverts the LCG step and permutes the post-step (i.e. already
// walked-back) state, which is the value forward would capture next.
func (p *PCG64) Previous() uint64 {
	p.state = p.state.sub(p.increment).mul(pcg64DefaultMultiplierInverse)
	return outputXSLRR128_64(p.state)
}

// Discard advances the engine by n steps without returning any output,
// using doubling-and-squaring LCG advancement instead of an n-step loop.
func (p *PCG64) Discard(n uint64) {
	p.state = advanceLCG128(p.state, uint128{0, n}, pcg64DefaultMultiplier, p.increment)
}

// Equal reports whether other is a *PCG64 with identical observable state.
func (p *PCG64) Equal(other ReversibleSource) bool {
	o, ok := other.(*PCG64)
	return ok && o.state == p.state && o.increment == p.increment
}

// String formats the LCG state and the increment as four decimal tokens
// (state high, state low, increment high, increment low).
func (p *PCG64) String() string {
	return fmt.Sprintf("%d %d %d %d", p.state.hi, p.state.lo, p.increment.hi, p.increment.lo)
}

// Parse reads back a string produced by String.
func (p *PCG64) Parse(s string) error {
	var stateHi, stateLo, incHi, incLo uint64
	if _, err := fmt.Sscan(s, &stateHi, &stateLo, &incHi, &incLo); err != nil {
		return fmt.Errorf("%w: pcg64: %v", ErrMalformedState, err)
	}
	p.state = uint128{stateHi, stateLo}
	p.increment = uint128{incHi, incLo}
	return nil
}

// PCG64Fast is the "cheap multiplier" MCG configuration: a pure
// multiplicative congruential generator (no stream, increment is always
// zero) with the XSL-RR 128/64 output permutation applied to the
// post-step state. It trades the full pcg64 stream selection for a
// cheaper multiply, since the multiplier's high 64 bits are zero.
type PCG64Fast struct {
	state uint128
}

var (
	pcg64CheapMultiplier = uint128{0, 0xda942042e4dd58b5}
	// Precomputed multiplicative inverse of pcg64CheapMultiplier mod 2^128.
	pcg64CheapMultiplierInverse = uint128{924194304566127212, 10053033838670173597}
)

// NewPCG64Fast returns a PCG64Fast seeded with seed.
func NewPCG64Fast(seed uint64) *PCG64Fast {
	p := new(PCG64Fast)
	p.Seed(seed)
	return p
}

// Seed expands seed into a 128-bit state via Splitmix64, forces the low bit
// odd (an MCG needs odd state for full period under a power-of-two
// modulus), and mixes once with the cheap multiplier.
func (p *PCG64Fast) Seed(seed uint64) {
	sm := NewSplitmix64(seed)
	hi, lo := sm.Next(), sm.Next()
	p.state = uint128{hi, lo | 1}
	p.state = p.state.mul(pcg64CheapMultiplier)
}

// Min is the smallest value Next can return.
func (p *PCG64Fast) Min() uint64 { return 0 }

// Max is the largest value Next can return.
func (p *PCG64Fast) Max() uint64 { return ^uint64(0) }

// Next advances the LCG state and permutes the post-step state directly.
func (p *PCG64Fast) Next() uint64 {
	p.state = p.state.mul(pcg64CheapMultiplier)
	return outputXSLRR128_64(p.state)
}

// Previous captures the current state, walks the LCG backward, and
// permutes the captured (pre-walk) value.
func (p *PCG64Fast) Previous() uint64 {
	old := p.state
	p.state = p.state.mul(pcg64CheapMultiplierInverse)
	return outputXSLRR128_64(old)
}

// Discard advances the engine by n steps using doubling-and-squaring.
func (p *PCG64Fast) Discard(n uint64) {
	p.state = advanceLCG128(p.state, uint128{0, n}, pcg64CheapMultiplier, uint128{0, 0})
}

// Equal reports whether other is a *PCG64Fast with identical state.
func (p *PCG64Fast) Equal(other ReversibleSource) bool {
	o, ok := other.(*PCG64Fast)
	return ok && o.state == p.state
}

// String formats the mutable LCG state as two decimal tokens.
func (p *PCG64Fast) String() string {
	return fmt.Sprintf("%d %d", p.state.hi, p.state.lo)
}

// Parse reads back a string produced by String.
func (p *PCG64Fast) Parse(s string) error {
	var hi, lo uint64
	if _, err := fmt.Sscan(s, &hi, &lo); err != nil {
		return fmt.Errorf("%w: pcg64fast: %v", ErrMalformedState, err)
	}
	p.state = uint128{hi, lo}
	return nil
}

// PCG32 is the 64-bit-state, 32-bit-output PCG configuration (the classic
// PCG32), used where spec.md calls for a W=32 reversible bit source — in
// particular the three-word engine-widening path in rand/uniform.go. It
// outputs the previous (pre-step) state, via the XSH-RR 64/32 permutation.
type PCG32 struct {
	state     uint64
	increment uint64
}

const (
	pcg32Multiplier        uint64 = 6364136223846793005
	pcg32MultiplierInverse uint64 = 13877824140714322085
)

// NewPCG32 returns a PCG32 seeded with seed.
func NewPCG32(seed uint64) *PCG32 {
	p := new(PCG32)
	p.Seed(seed)
	return p
}

// Seed expands seed into a (state, stream) pair via Splitmix64 and mixes it
// in with the classic PCG32 seeding sequence, as in
// github.com/ccfos/nightingale's pcg32.go.
func (p *PCG32) Seed(seed uint64) {
	sm := NewSplitmix64(seed)
	state, sequence := sm.Next(), sm.Next()

	p.increment = (sequence << 1) | 1
	p.state = (state+p.increment)*pcg32Multiplier + p.increment
}

// Min is the smallest value Next can return.
func (p *PCG32) Min() uint64 { return 0 }

// Max is the largest value Next can return.
func (p *PCG32) Max() uint64 { return 1<<32 - 1 }

func outputXSHRR64_32(state uint64) uint32 {
	xorShifted := uint32(((state >> 18) ^ state) >> 27)
	rot := uint(state >> 59)
	return bits.RotateLeft32(xorShifted, -int(rot))
}

// Next applies the LCG step and permutes the pre-step state.
func (p *PCG32) Next() uint64 {
	old := p.state
	p.state = old*pcg32Multiplier + p.increment
	return uint64(outputXSHRR64_32(old))
}

// Previous inverts the LCG step and permutes the post-step state.
func (p *PCG32) Previous() uint64 {
	p.state = (p.state - p.increment) * pcg32MultiplierInverse
	return uint64(outputXSHRR64_32(p.state))
}

// Discard advances the engine by n steps using doubling-and-squaring.
func (p *PCG32) Discard(n uint64) {
	p.state = advanceLCG64(p.state, n, pcg32Multiplier, p.increment)
}

// Equal reports whether other is a *PCG32 with identical state.
func (p *PCG32) Equal(other ReversibleSource) bool {
	o, ok := other.(*PCG32)
	return ok && o.state == p.state && o.increment == p.increment
}

// String formats the mutable LCG state as two decimal tokens.
func (p *PCG32) String() string {
	return fmt.Sprintf("%d %d", p.state, p.increment)
}

// Parse reads back a string produced by String.
func (p *PCG32) Parse(s string) error {
	var state, increment uint64
	if _, err := fmt.Sscan(s, &state, &increment); err != nil {
		return fmt.Errorf("%w: pcg32: %v", ErrMalformedState, err)
	}
	p.state = state
	p.increment = increment
	return nil
}

// advanceLCG64 computes the state reached after delta applications of
// state -> state*mult + plus, in O(log delta) via the standard
// double-and-add LCG-coefficient-composition trick (as in
// github.com/ccfos/nightingale's pcg32.go Advance/advanceLCG64).
func advanceLCG64(state, delta, mult, plus uint64) uint64 {
	accMult, accPlus := uint64(1), uint64(0)
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= mult
			accPlus = accPlus*mult + plus
		}
		plus = (mult + 1) * plus
		mult *= mult
		delta >>= 1
	}
	return accMult*state + accPlus
}

// advanceLCG128 is the 128-bit analogue of advanceLCG64.
func advanceLCG128(state, delta, mult, plus uint128) uint128 {
	accMult, accPlus := uint128{0, 1}, uint128{0, 0}
	one := uint128{0, 1}
	for delta != (uint128{0, 0}) {
		if delta.lo&1 != 0 {
			accMult = accMult.mul(mult)
			accPlus = accPlus.mul(mult).add(plus)
		}
		plus = mult.add(one).mul(plus)
		mult = mult.mul(mult)
		delta = uint128{delta.hi >> 1, delta.lo>>1 | (delta.hi&1)<<63}
	}
	return accMult.mul(state).add(accPlus)
}
