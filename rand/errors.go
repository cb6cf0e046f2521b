// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rand

import "errors"

// The error taxonomy below is reported by the distribution or composite RRNG
// at the call site that detects it and is fatal to that call: no partial
// sample is ever returned, and these are never swallowed internally. Check
// against a specific sentinel with errors.Is.
var (
	// ErrRangeUnsupported is returned when a uniform integer distribution's
	// range is wider than its engine's range with no reversible widening
	// path available (spec §4.4, "Otherwise" branch).
	ErrRangeUnsupported = errors.New("rand: distribution range exceeds engine range with no reversible widening path")

	// ErrInvalidParameter is returned for a non-positive scale parameter
	// (stddev, lambda) or for a > b on a uniform distribution's bounds.
	ErrInvalidParameter = errors.New("rand: invalid distribution parameter")

	// ErrMalformedState is returned when parsing textual serialization that
	// does not match the expected whitespace-separated token layout.
	ErrMalformedState = errors.New("rand: malformed serialized state")
)
