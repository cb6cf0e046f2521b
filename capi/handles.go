// Copyright 2024 The Reverse Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package capi

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// handleTable maps opaque integer handles to live generators. Handles,
// not raw Go pointers, cross the cgo boundary: passing a Go pointer to C
// and back would violate the cgo pointer-passing rules (a C-held Go
// pointer must not itself point to further Go memory that outlives the
// call), so the C side only ever holds an index into this table.
type handleTable struct {
	mu      sync.RWMutex
	entries map[int64]entry
	next    int64
	logger  zerolog.Logger
}

type entry struct {
	kind  GeneratorKind
	value any
}

var handles = &handleTable{
	entries: make(map[int64]entry),
	logger:  log.With().Str("component", "capi").Logger(),
}

// register allocates a new handle for value under kind and returns it.
func (t *handleTable) register(kind GeneratorKind, value any) int64 {
	id := atomic.AddInt64(&t.next, 1)

	t.mu.Lock()
	t.entries[id] = entry{kind: kind, value: value}
	t.mu.Unlock()

	t.logger.Debug().Int64("handle", id).Stringer("kind", kind).Msg("registered generator")
	return id
}

// lookup returns the value registered for id, or false if id is not (or
// no longer) live. A miss is logged at warn level: it means the caller is
// using a handle after destroy, or a handle from a different kind's
// function, both of which the original C ABI leaves as caller
// responsibility but this table can at least surface.
func (t *handleTable) lookup(id int64, kind GeneratorKind) (any, bool) {
	t.mu.RLock()
	e, ok := t.entries[id]
	t.mu.RUnlock()

	if !ok {
		t.logger.Warn().Int64("handle", id).Stringer("kind", kind).Msg("use of unknown or freed handle")
		return nil, false
	}
	if e.kind != kind {
		t.logger.Warn().Int64("handle", id).Stringer("expected", kind).Stringer("actual", e.kind).Msg("handle kind mismatch")
		return nil, false
	}
	return e.value, true
}

// release removes id from the table. Releasing an already-released or
// unknown handle is logged as a double free rather than panicking, since
// the C side has no way to recover from a panic across the cgo boundary.
func (t *handleTable) release(id int64, kind GeneratorKind) {
	t.mu.Lock()
	_, ok := t.entries[id]
	if ok {
		delete(t.entries, id)
	}
	t.mu.Unlock()

	if !ok {
		t.logger.Warn().Int64("handle", id).Stringer("kind", kind).Msg("double free of generator handle")
	}
}
