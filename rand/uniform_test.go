// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"errors"
	"testing"
)

// fixedRangeSource is a BitSource whose Max()-Min() is set directly, for
// exercising UniformIntDistribution's range-comparison branches in
// isolation from any particular engine.
type fixedRangeSource struct {
	values []uint64
	i      int
	max    uint64
}

func (f *fixedRangeSource) Next() uint64 {
	v := f.values[f.i%len(f.values)]
	f.i++
	return v
}
func (f *fixedRangeSource) Min() uint64 { return 0 }
func (f *fixedRangeSource) Max() uint64 { return f.max }

func TestUniformIntDistributionExactRange(t *testing.T) {
	d, err := NewUniformIntDistribution[int64](10, 10+255)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	src := &fixedRangeSource{values: []uint64{0, 255, 100}, max: 255}

	for _, want := range []int64{10, 265, 110} {
		got, err := d.Sample(src)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if got != want {
			t.Errorf("Sample = %d, want %d", got, want)
		}
	}
}

func TestUniformIntDistributionWiderSource(t *testing.T) {
	d, err := NewUniformIntDistribution[int64](0, 99)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	p := NewPCG64(1)
	for i := 0; i < 10000; i++ {
		got, err := d.Sample(p)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if got < 0 || got > 99 {
			t.Fatalf("Sample = %d, want in [0, 99]", got)
		}
	}
}

func TestUniformIntDistributionWideningPath(t *testing.T) {
	d, err := NewUniformIntDistribution[int64](0, 1<<33)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	p := NewPCG32(1)
	for i := 0; i < 1000; i++ {
		got, err := d.Sample(p)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if got < 0 || got > 1<<33 {
			t.Fatalf("Sample = %d, want in [0, %d]", got, int64(1)<<33)
		}
	}
}

func TestUniformIntDistributionWideningPathRoundTrip(t *testing.T) {
	dist, err := NewUniformIntDistribution[int64](0, 1<<33)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	rng, err := NewRRNG[int64](new(PCG32), dist)
	if err != nil {
		t.Fatalf("NewRRNG: %v", err)
	}
	rng.Seed(17)

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
			t.Fatalf("Previous at step %d = %d, want %d (32-bit engine-widening path must be direction-symmetric)", i, got, forward[i])
		}
	}
}

func TestUniformIntDistributionNarrowerSourceUnsupported(t *testing.T) {
	d, err := NewUniformIntDistribution[int64](0, 1<<40)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	src := &fixedRangeSource{values: []uint64{1}, max: 1000}
	if _, err := d.Sample(src); !errors.Is(err, ErrRangeUnsupported) {
		t.Fatalf("Sample error = %v, want ErrRangeUnsupported", err)
	}
}

func TestUniformIntDistributionRejectsInvertedBounds(t *testing.T) {
	if _, err := NewUniformIntDistribution[int64](10, 5); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestUniformIntDistributionStringParseRoundTrip(t *testing.T) {
	d, err := NewUniformIntDistribution[int64](-5, 500)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	s := d.String()

	got, err := NewUniformIntDistribution[int64](0, 0)
	if err != nil {
		t.Fatalf("NewUniformIntDistribution: %v", err)
	}
	if err := got.Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Equal(got) {
		t.Fatalf("parsed distribution = %s, want %s", got.String(), s)
	}
}

func TestUniformRealDistributionRange(t *testing.T) {
	d, err := NewUniformRealDistribution[float64](-1, 1)
	if err != nil {
		t.Fatalf("NewUniformRealDistribution: %v", err)
	}
	p := NewPCG64(1)
	for i := 0; i < 10000; i++ {
		got, err := d.Sample(p)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if got < -1 || got >= 1 {
			t.Fatalf("Sample = %v, want in [-1, 1)", got)
		}
	}
}

func TestUniformRealDistributionRejectsInvertedBounds(t *testing.T) {
	if _, err := NewUniformRealDistribution[float64](1, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestUniformRealDistributionStringParseRoundTrip(t *testing.T) {
	d, err := NewUniformRealDistribution[float64](-3.5, 9.25)
	if err != nil {
		t.Fatalf("NewUniformRealDistribution: %v", err)
	}
	s := d.String()

	got, err := NewUniformRealDistribution[float64](0, 0)
	if err != nil {
		t.Fatalf("NewUniformRealDistribution: %v", err)
	}
	if err := got.Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Equal(got) {
		t.Fatalf("parsed distribution = %s, want %s", got.String(), s)
	}
}
