// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testbattery pins the interface a statistical test suite (such
// as TestU01's SmallCrush/Crush/BigCrush batteries) needs from a
// generator under test. It does not link against TestU01 itself — that
// integration is explicitly out of scope — but gives the 32-bit
// truncation rule TestU01 generators require a concrete, testable home.
package testbattery

import fmt "fmt"

// Generator is the minimum contract a test battery driver needs: a
// 32-bit output and a way to dump current state for a failing-seed
// report. It mirrors the original C++ battery harness's abstract
// Generator base (bits()/write()).
type Generator interface {
	Bits() uint32
	fmt.Stringer
}

// Canonical returns g's next output mapped to the unit interval, the
// conversion TestU01's GetU01 dispatcher applies to every generator
// (dividing by unif01_NORM32 = 2^32 - 1).
func Canonical(g Generator) float64 {
	const norm32 = 4294967295.0
	return float64(g.Bits()) / norm32
}

// source64 is satisfied by any 64-bit bit source, reversible or not.
type source64 interface {
	Next() uint64
	fmt.Stringer
}

// Wrap adapts a 64-bit bit source to Generator by taking the low 32 bits
// of each 64-bit draw — the truncation rule the original battery harness
// applies whenever the generator under test emits more than 32 bits.
func Wrap(src source64) Generator {
	return truncated32{src}
}

type truncated32 struct {
	src source64
}

func (t truncated32) Bits() uint32 {
	return uint32(t.src.Next())
}

func (t truncated32) String() string {
	return t.src.String()
}
