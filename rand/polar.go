// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"fmt"
	"math"
	"strings"
)

// PolarNormalRNG draws normally-distributed values with the Marsaglia
// polar method. It is provided for the general buffered-distribution
// pattern it demonstrates — a distribution that produces two values per
// underlying draw and must track which half is still owed — not because
// it out-performs the ziggurat method: NewNormalRNG is the default normal
// generator and should be preferred in new code.
//
// Unlike the single-sample distributions in this package, the polar
// method generates pairs: one call to the underlying generator yields two
// independent normal values, of which one is returned immediately and the
// other is buffered. Reversing direction mid-buffer requires stepping the
// underlying generator an extra two places to resynchronize, which is
// exactly the reversing/savedAvailable bookkeeping below.
type PolarNormalRNG struct {
	mean, stddev float64
	engine       ReversibleSource
	uniform      *UniformRealDistribution[float64]
	position     int64

	reversing      bool
	savedAvailable bool
	saved          float64
	nextSaved      float64
}

// NewPolarNormalRNG binds a fresh PCG64 engine to the polar
// method with the given mean and standard deviation. It returns
// ErrInvalidParameter if stddev <= 0.
func NewPolarNormalRNG(mean, stddev float64) (*PolarNormalRNG, error) {
	if stddev <= 0 {
		return nil, fmt.Errorf("%w: polar normal: stddev=%v must be > 0", ErrInvalidParameter, stddev)
	}
	uniform, err := NewUniformRealDistribution(-1.0, 1.0)
	if err != nil {
		return nil, err
	}
	r := &PolarNormalRNG{
		mean:    mean,
		stddev:  stddev,
		engine:  new(PCG64),
		uniform: uniform,
	}
	if err := r.SeedRandom(); err != nil {
		return nil, err
	}
	return r, nil
}

// SeedRandom reseeds the engine from a cryptographically secure source and
// resets all bookkeeping.
func (r *PolarNormalRNG) SeedRandom() error {
	rrng := &RRNG[float64]{engine: r.engine}
	if err := rrng.SeedRandom(); err != nil {
		return err
	}
	r.reset()
	return nil
}

// Seed reseeds the engine deterministically and resets all bookkeeping.
func (r *PolarNormalRNG) Seed(seed uint64) {
	r.engine.Seed(seed)
	r.reset()
}

func (r *PolarNormalRNG) reset() {
	r.position = 0
	r.reversing = false
	r.savedAvailable = false
}

// Position returns the signed count of Next calls minus Previous calls
// since the generator was last seeded.
func (r *PolarNormalRNG) Position() int64 { return r.position }

// polar draws a pair of independent standard-normal values from src via
// rejection sampling in the unit disk.
func (r *PolarNormalRNG) polar(src BitSource) (float64, float64, error) {
	var u, v, s float64
	for {
		var err error
		u, err = r.uniform.Sample(src)
		if err != nil {
			return 0, 0, err
		}
		v, err = r.uniform.Sample(src)
		if err != nil {
			return 0, 0, err
		}
		s = u*u + v*v
		if s < 1.0 && s != 0.0 {
			break
		}
	}
	s = math.Sqrt(-2 * math.Log(s) / s)
	return u * s, v * s, nil
}

// Next returns the next normally distributed value.
func (r *PolarNormalRNG) Next() (float64, error) {
	r.position++

	if r.savedAvailable {
		r.savedAvailable = false
		return r.nextSaved*r.stddev + r.mean, nil
	}

	if r.reversing {
		r.reversing = false
		r.engine.Next()
		r.engine.Next()
	}

	saved, nextSaved, err := r.polar(r.engine)
	if err != nil {
		return 0, err
	}
	r.saved, r.nextSaved = saved, nextSaved
	r.savedAvailable = true

	return r.saved*r.stddev + r.mean, nil
}

// Previous returns the value immediately preceding the last one returned
// by Next.
func (r *PolarNormalRNG) Previous() (float64, error) {
	r.position--

	if !r.savedAvailable {
		r.savedAvailable = true
		return r.nextSaved*r.stddev + r.mean, nil
	}

	if !r.reversing {
		r.reversing = true
		r.engine.Previous()
		r.engine.Previous()
	}

	result := r.saved*r.stddev + r.mean

	reversed := NewReversedEngine(r.engine)
	nextSaved, saved, err := r.polar(reversed)
	if err != nil {
		return 0, err
	}
	r.nextSaved, r.saved = nextSaved, saved
	r.savedAvailable = false

	return result, nil
}

// Equal reports whether other has the same engine state, parameters, and
// buffering bookkeeping.
func (r *PolarNormalRNG) Equal(other *PolarNormalRNG) bool {
	return r.engine.Equal(other.engine) &&
		r.mean == other.mean && r.stddev == other.stddev &&
		r.position == other.position &&
		r.reversing == other.reversing && r.savedAvailable == other.savedAvailable &&
		r.saved == other.saved && r.nextSaved == other.nextSaved
}

// String formats the engine state, parameters, buffering bookkeeping and
// position, space-separated.
func (r *PolarNormalRNG) String() string {
	return fmt.Sprintf("%s %s %s %t %t %s %s %d",
		r.engine.String(), formatHexFloat(r.mean), formatHexFloat(r.stddev),
		r.reversing, r.savedAvailable,
		formatHexFloat(r.saved), formatHexFloat(r.nextSaved), r.position)
}

// Parse reads back a string produced by String.
func (r *PolarNormalRNG) Parse(s string) error {
	engineFields, err := engineTokenCount(r.engine)
	if err != nil {
		return err
	}
	fields := strings.Fields(s)
	if len(fields) != engineFields+7 {
		return fmt.Errorf("%w: polar normal: expected %d tokens, got %d", ErrMalformedState, engineFields+7, len(fields))
	}

	if err := r.engine.Parse(strings.Join(fields[:engineFields], " ")); err != nil {
		return err
	}
	rest := fields[engineFields:]

	mean, err := parseHexFloat(rest[0])
	if err != nil {
		return fmt.Errorf("%w: polar normal: mean: %v", ErrMalformedState, err)
	}
	stddev, err := parseHexFloat(rest[1])
	if err != nil {
		return fmt.Errorf("%w: polar normal: stddev: %v", ErrMalformedState, err)
	}
	if stddev <= 0 {
		return fmt.Errorf("%w: polar normal: stddev=%v must be > 0", ErrInvalidParameter, stddev)
	}

	var reversing, savedAvailable bool
	if _, err := fmt.Sscan(rest[2], &reversing); err != nil {
		return fmt.Errorf("%w: polar normal: reversing: %v", ErrMalformedState, err)
	}
	if _, err := fmt.Sscan(rest[3], &savedAvailable); err != nil {
		return fmt.Errorf("%w: polar normal: savedAvailable: %v", ErrMalformedState, err)
	}

	saved, err := parseHexFloat(rest[4])
	if err != nil {
		return fmt.Errorf("%w: polar normal: saved: %v", ErrMalformedState, err)
	}
	nextSaved, err := parseHexFloat(rest[5])
	if err != nil {
		return fmt.Errorf("%w: polar normal: nextSaved: %v", ErrMalformedState, err)
	}
	var position int64
	if _, err := fmt.Sscan(rest[6], &position); err != nil {
		return fmt.Errorf("%w: polar normal: position: %v", ErrMalformedState, err)
	}

	r.mean, r.stddev = mean, stddev
	r.reversing, r.savedAvailable = reversing, savedAvailable
	r.saved, r.nextSaved = saved, nextSaved
	r.position = position
	return nil
}
