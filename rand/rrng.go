// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Distribution is the contract a composite RRNG binds to: something that
// can turn a bit source into one sample of T. UniformIntDistribution,
// UniformRealDistribution, NormalDistribution and ExponentialDistribution
// all satisfy it.
type Distribution[T any] interface {
	Sample(src BitSource) (T, error)
	Equal(other Distribution[T]) bool
	String() string
	Parse(s string) error
}

// RRNG binds one reversible engine, one distribution, and a signed
// position counter into a single reversible random number generator.
// Next/Previous are exact inverses of each other: drawing k values with
// Next and then k values with Previous restores both the engine state and
// the distribution's internal bookkeeping.
type RRNG[T any] struct {
	engine   ReversibleSource
	dist     Distribution[T]
	position int64
}

// NewRRNG binds engine and dist and randomly seeds the engine from a
// cryptographically secure source, matching the library's constructor
// behavior of seeding from the OS entropy pool when no seed is given.
func NewRRNG[T any](engine ReversibleSource, dist Distribution[T]) (*RRNG[T], error) {
	r := &RRNG[T]{engine: engine, dist: dist}
	if err := r.SeedRandom(); err != nil {
		return nil, err
	}
	return r, nil
}

// SeedRandom reseeds the engine from a cryptographically secure source and
// resets position to zero.
func (r *RRNG[T]) SeedRandom() error {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return fmt.Errorf("rrng: reading entropy: %w", err)
	}
	r.Seed(binary.LittleEndian.Uint64(buf[:]))
	return nil
}

// Seed reseeds the engine deterministically and resets position to zero.
func (r *RRNG[T]) Seed(seed uint64) {
	r.engine.Seed(seed)
	r.position = 0
}

// Position returns the signed count of Next calls minus Previous calls
// since the generator was last seeded.
func (r *RRNG[T]) Position() int64 { return r.position }

// Next draws the next sample and advances position by one.
func (r *RRNG[T]) Next() (T, error) {
	r.position++
	return r.dist.Sample(r.engine)
}

// Previous draws the sample immediately preceding the last one returned by
// Next, and retreats position by one. It feeds the distribution a
// ReversedEngine over the bound engine, reusing the same sampling logic
// backward instead of duplicating it.
func (r *RRNG[T]) Previous() (T, error) {
	r.position--
	reversed := NewReversedEngine(r.engine)
	return r.dist.Sample(reversed)
}

// NextN draws n values in forward order.
func (r *RRNG[T]) NextN(n int) ([]T, error) {
	values := make([]T, n)
	for i := range values {
		v, err := r.Next()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// PreviousN draws n values, oldest-first: the result is in the same
// chronological order as the NextN call it undoes, not call order.
func (r *RRNG[T]) PreviousN(n int) ([]T, error) {
	values := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		v, err := r.Previous()
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// Discard advances the generator by z samples without returning them.
func (r *RRNG[T]) Discard(z uint64) error {
	for ; z != 0; z-- {
		if _, err := r.Next(); err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether other has the same engine state, distribution
// parameters, and position.
func (r *RRNG[T]) Equal(other *RRNG[T]) bool {
	return r.engine.Equal(other.engine) && r.dist.Equal(other.dist) && r.position == other.position
}

// String formats the engine state, distribution parameters and position,
// space-separated.
func (r *RRNG[T]) String() string {
	return fmt.Sprintf("%s %s %d", r.engine.String(), r.dist.String(), r.position)
}

// engineTokenCount reports how many whitespace-separated tokens src's
// String method produces, so Parse can split a composite's serialized
// form back into its engine, distribution, and position sections without
// the distribution needing to know anything about the engine's layout.
func engineTokenCount(src ReversibleSource) (int, error) {
	switch src.(type) {
	case *PCG64:
		return 4, nil
	case *PCG64Fast:
		return 2, nil
	case *PCG32:
		return 2, nil
	case *Mersenne:
		return mersenneStateSize + 1, nil
	default:
		return 0, fmt.Errorf("%w: rrng: unrecognized engine type %T", ErrMalformedState, src)
	}
}

// Parse reads back a string produced by String.
func (r *RRNG[T]) Parse(s string) error {
	engineFields, err := engineTokenCount(r.engine)
	if err != nil {
		return err
	}
	fields := strings.Fields(s)
	if len(fields) < engineFields+2 {
		return fmt.Errorf("%w: rrng: expected at least %d tokens, got %d", ErrMalformedState, engineFields+2, len(fields))
	}

	if err := r.engine.Parse(strings.Join(fields[:engineFields], " ")); err != nil {
		return err
	}

	distFields := fields[engineFields : len(fields)-1]
	if err := r.dist.Parse(strings.Join(distFields, " ")); err != nil {
		return err
	}

	var position int64
	if _, err := fmt.Sscan(fields[len(fields)-1], &position); err != nil {
		return fmt.Errorf("%w: rrng: position: %v", ErrMalformedState, err)
	}
	r.position = position
	return nil
}

// NewUniformIntRNG binds a fresh PCG64 engine to a
// UniformIntDistribution over [a, b].
func NewUniformIntRNG[I constraints.Integer](a, b I) (*RRNG[I], error) {
	dist, err := NewUniformIntDistribution(a, b)
	if err != nil {
		return nil, err
	}
	return NewRRNG[I](new(PCG64), dist)
}

// NewUniformRealRNG binds a fresh PCG64 engine to a
// UniformRealDistribution over [a, b).
func NewUniformRealRNG[F constraints.Float](a, b F) (*RRNG[F], error) {
	dist, err := NewUniformRealDistribution(a, b)
	if err != nil {
		return nil, err
	}
	return NewRRNG[F](new(PCG64), dist)
}

// NewNormalRNG binds a fresh PCG64 engine to a ziggurat
// NormalDistribution. This is the default normal generator; see
// NewPolarNormalRNG for the legacy Marsaglia polar alternative.
func NewNormalRNG(mean, stddev float64) (*RRNG[float64], error) {
	dist, err := NewNormalDistribution(mean, stddev)
	if err != nil {
		return nil, err
	}
	return NewRRNG[float64](new(PCG64), dist)
}

// NewExponentialRNG binds a fresh PCG64 engine to an
// ExponentialDistribution.
func NewExponentialRNG(lambda float64) (*RRNG[float64], error) {
	dist, err := NewExponentialDistribution(lambda)
	if err != nil {
		return nil, err
	}
	return NewRRNG[float64](new(PCG64), dist)
}
