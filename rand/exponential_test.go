// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"errors"
	"testing"
)

func TestExponentialDistributionRejectsNonPositiveLambda(t *testing.T) {
	if _, err := NewExponentialDistribution(0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
	if _, err := NewExponentialDistribution(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("error = %v, want ErrInvalidParameter", err)
	}
}

func TestExponentialDistributionSampleNonNegative(t *testing.T) {
	d, err := NewExponentialDistribution(1.5)
	if err != nil {
		t.Fatalf("NewExponentialDistribution: %v", err)
	}
	p := NewPCG64(1)
	for i := 0; i < 10000; i++ {
		v, err := d.Sample(p)
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if v < 0 {
			t.Fatalf("Sample = %v, want >= 0", v)
		}
	}
}

func TestExponentialDistributionStringParseRoundTrip(t *testing.T) {
	d, err := NewExponentialDistribution(0.75)
	if err != nil {
		t.Fatalf("NewExponentialDistribution: %v", err)
	}
	s := d.String()

	got, err := NewExponentialDistribution(1)
	if err != nil {
		t.Fatalf("NewExponentialDistribution: %v", err)
	}
	if err := got.Parse(s); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !d.Equal(got) {
		t.Fatalf("parsed distribution = %s, want %s", got.String(), s)
	}
}

func TestExponentialRNGRoundTrip(t *testing.T) {
	rng, err := NewExponentialRNG(2)
	if err != nil {
		t.Fatalf("NewExponentialRNG: %v", err)
	}
	rng.Seed(7)

	const n = 200
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
