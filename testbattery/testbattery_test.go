// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testbattery

import "testing"

type fixedGenerator struct {
	bits uint32
}

func (f fixedGenerator) Bits() uint32  { return f.bits }
func (f fixedGenerator) String() string { return "fixed" }

func TestCanonicalBounds(t *testing.T) {
	cases := []uint32{0, 1, 1 << 31, ^uint32(0)}
	for _, b := range cases {
		got := Canonical(fixedGenerator{bits: b})
		if got < 0 || got > 1 {
			t.Errorf("Canonical(%d) = %v, want in [0, 1]", b, got)
		}
	}
}

func TestCanonicalZeroIsZero(t *testing.T) {
	if got := Canonical(fixedGenerator{bits: 0}); got != 0 {
		t.Errorf("Canonical(0) = %v, want 0", got)
	}
}

type fixed64Source struct {
	value uint64
}

func (f fixed64Source) Next() uint64   { return f.value }
func (f fixed64Source) String() string { return "fixed64" }

func TestWrapTruncatesToLow32Bits(t *testing.T) {
	src := fixed64Source{value: 0x1234567890abcdef}
	g := Wrap(src)
	if g.Bits() != uint32(0x90abcdef) {
		t.Errorf("Bits() = %#x, want %#x", g.Bits(), uint32(0x90abcdef))
	}
}

func TestWrapPreservesString(t *testing.T) {
	src := fixed64Source{value: 1}
	g := Wrap(src)
	if g.String() != "fixed64" {
		t.Errorf("String() = %q, want %q", g.String(), "fixed64")
	}
}
