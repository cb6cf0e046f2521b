// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRRNGRoundTrip(t *testing.T) {
	rng, err := NewUniformIntRNG[int64](0, 1000)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	rng.Seed(11)

	const n = 300
	forward := make([]int64, n)
	for i := range forward {
		v, err := rng.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		forward[i] = v
	}
	for i := n - 1; i >= 0; i-- {
		got, err := rng.Previous()
		if err != nil {
			t.Fatalf("Previous: %v", err)
		}
		if got != forward[i] {
			t.Fatalf("Previous at step %d = %d, want %d", i, got, forward[i])
		}
	}
	if rng.Position() != 0 {
		t.Fatalf("Position = %d, want 0", rng.Position())
	}
}

func TestRRNGPositionTracksNextAndPrevious(t *testing.T) {
	rng, err := NewUniformRealRNG[float64](0, 1)
	if err != nil {
		t.Fatalf("NewUniformRealRNG: %v", err)
	}
	rng.Seed(1)

	for i := 1; i <= 5; i++ {
		if _, err := rng.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
		if rng.Position() != int64(i) {
			t.Fatalf("Position = %d, want %d", rng.Position(), i)
		}
	}
	for i := 4; i >= 0; i-- {
		if _, err := rng.Previous(); err != nil {
			t.Fatalf("Previous: %v", err)
		}
		if rng.Position() != int64(i) {
			t.Fatalf("Position = %d, want %d", rng.Position(), i)
		}
	}
}

func TestRRNGNextNPreviousNBulkParity(t *testing.T) {
	rng, err := NewUniformIntRNG[int64](0, 99)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	rng.Seed(3)

	scalar, err := NewUniformIntRNG[int64](0, 99)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	scalar.Seed(3)

	const n = 64
	bulk, err := rng.NextN(n)
	if err != nil {
		t.Fatalf("NextN: %v", err)
	}
	scalarValues := make([]int64, n)
	for i := range scalarValues {
		v, err := scalar.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		scalarValues[i] = v
	}
	if diff := cmp.Diff(scalarValues, bulk); diff != "" {
		t.Fatalf("NextN diverges from scalar Next loop (-want +got):\n%s", diff)
	}

	bulkBack, err := rng.PreviousN(n)
	if err != nil {
		t.Fatalf("PreviousN: %v", err)
	}
	if diff := cmp.Diff(bulk, bulkBack); diff != "" {
		t.Fatalf("PreviousN diverges from the NextN it should undo (-want +got):\n%s", diff)
	}
}

func TestRRNGDiscardEquivalentToSequentialNext(t *testing.T) {
	discarded, err := NewUniformIntRNG[int64](0, 1000)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	discarded.Seed(9)

	stepped, err := NewUniformIntRNG[int64](0, 1000)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	stepped.Seed(9)

	const n = 100
	if err := discarded.Discard(n); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	for i := 0; i < n; i++ {
		if _, err := stepped.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	if !discarded.Equal(stepped) {
		t.Fatalf("Discard(%d) state differs from %d sequential Next calls", n, n)
	}
}

func TestRRNGSeedReproducible(t *testing.T) {
	a, err := NewNormalRNG(0, 1)
	if err != nil {
		t.Fatalf("NewNormalRNG: %v", err)
	}
	b, err := NewNormalRNG(0, 1)
	if err != nil {
		t.Fatalf("NewNormalRNG: %v", err)
	}
	a.Seed(555)
	b.Seed(555)

	for i := 0; i < 50; i++ {
		va, err := a.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		vb, err := b.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if va != vb {
			t.Fatalf("same seed diverged at step %d", i)
		}
	}
}

func TestRRNGStringParseRoundTrip(t *testing.T) {
	rng, err := NewUniformIntRNG[int64](-10, 10)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	rng.Seed(21)
	for i := 0; i < 13; i++ {
		if _, err := rng.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}

	s := rng.String()

	got, err := NewUniformIntRNG[int64](0, 0)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	if err := got.Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !rng.Equal(got) {
		t.Fatalf("parsed state = %s, want %s", got.String(), s)
	}
}

func TestRRNGParseRejectsTruncatedInput(t *testing.T) {
	rng, err := NewUniformIntRNG[int64](0, 10)
	if err != nil {
		t.Fatalf("NewUniformIntRNG: %v", err)
	}
	if err := rng.Parse("1 2"); err == nil {
		t.Fatal("Parse accepted too few tokens")
	}
}

func TestRRNGWithMersenneEngineRoundTrip(t *testing.T) {
	dist, err := NewUniformRealDistribution[float64](0, 1)
	if err != nil {
		t.Fatalf("NewUniformRealDistribution: %v", err)
	}
	rng, err := NewRRNG[float64](NewMersenne(DefaultMersenneSeed), dist)
	if err != nil {
		t.Fatalf("NewRRNG: %v", err)
	}

	const n = mersenneStateSize + 20
	forward := make([]float64, n)
	for i := range forward {
		v, err := rng.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		forward[i] = v
	}
	for i := n - 1; i >= 0; i-- {
		got, err := rng.Previous()
		if err != nil {
			t.Fatalf("Previous: %v", err)
		}
		if got != forward[i] {
			t.Fatalf("Previous at step %d = %v, want %v", i, got, forward[i])
		}
	}
}
