// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bits

import "testing"

func TestFloat64Range(t *testing.T) {
	cases := []uint64{0, 1, 1 << 63, ^uint64(0)}
	for _, x := range cases {
		got := Float64(x)
		if got < 0 || got >= 1 {
			t.Errorf("Float64(%d) = %v, want in [0, 1)", x, got)
		}
	}
}

func TestFloat64Monotonic(t *testing.T) {
	if Float64(0) != 0 {
		t.Errorf("Float64(0) = %v, want 0", Float64(0))
	}
	if !(Float64(1<<11) > Float64(0)) {
		t.Errorf("Float64 should increase with its high bits")
	}
}

func TestFloat32Range(t *testing.T) {
	cases := []uint32{0, 1, 1 << 31, ^uint32(0)}
	for _, x := range cases {
		got := Float32(x)
		if got < 0 || got >= 1 {
			t.Errorf("Float32(%d) = %v, want in [0, 1)", x, got)
		}
	}
}

func TestLemire64Range(t *testing.T) {
	seq := []uint64{5, 100, 1 << 40, 3, 999999}
	i := 0
	next := func() uint64 {
		v := seq[i%len(seq)]
		i++
		return v
	}

	const n = 10
	for j := 0; j < len(seq); j++ {
		got := Lemire64(next, n)
		if got >= n {
			t.Fatalf("Lemire64 = %d, want < %d", got, n)
		}
	}
}

func TestLemire64SingleValueRange(t *testing.T) {
	next := func() uint64 { return 1 }
	got := Lemire64(next, 1)
	if got != 0 {
		t.Errorf("Lemire64 with n=1 = %d, want 0", got)
	}
}

func TestLemire32Range(t *testing.T) {
	seq := []uint32{5, 100, 1 << 20, 3, 999999}
	i := 0
	next := func() uint32 {
		v := seq[i%len(seq)]
		i++
		return v
	}

	const n = 10
	for j := 0; j < len(seq); j++ {
		got := Lemire32(next, n)
		if got >= n {
			t.Fatalf("Lemire32 = %d, want < %d", got, n)
		}
	}
}
