package pool

import (
	"fmt"
	"math"

	"github.com/wippyai/rational-ffi/errors"
)

// Handle is an opaque reference to a live entry in a Pool. Handles are
// dense, 0-based, and meaningful only relative to the pool that issued
// them; a retired handle's value may be reissued for a different entry.
type Handle uint32

// maxRaw is the largest raw integer that can name a handle.
const maxRaw = int64(math.MaxUint32)

// slot is one entry of the arena. refs==0 means the slot is free and its
// value is gone; refs>0 means live with that reference count.
type slot[T any] struct {
	value T
	refs  uint32
}

// Pool owns a growable arena of reference-counted slots plus a registry of
// retired handles. The zero value is not usable; call New.
type Pool[T any] struct {
	slots []slot[T]
	free  freeList
	live  int
}

// New creates an empty pool.
func New[T any]() *Pool[T] {
	return &Pool[T]{
		slots: make([]slot[T], 0, 16),
	}
}

// Allocate takes ownership of value and returns its handle with reference
// count 1. The smallest retired handle is reused before the table grows, so
// handle space stays compact under churn.
func (p *Pool[T]) Allocate(value T) Handle {
	p.live++

	if h, ok := p.free.pop(); ok {
		p.slots[h] = slot[T]{value: value, refs: 1}
		return h
	}

	p.slots = append(p.slots, slot[T]{value: value, refs: 1})
	return Handle(len(p.slots) - 1)
}

// Retain increments the reference count of a handle the caller knows to be
// live. Retaining a dead handle is a programming error and panics; raw
// boundary integers must go through Validate first.
func (p *Pool[T]) Retain(h Handle) {
	s := p.mustSlot(h)
	s.refs++
}

// Release decrements the reference count. When it reaches zero the value is
// dropped, the slot is marked free, and the handle joins the free-slot
// registry for reuse. Reports whether the entry died.
func (p *Pool[T]) Release(h Handle) bool {
	s := p.mustSlot(h)
	s.refs--
	if s.refs > 0 {
		return false
	}

	var zero T
	s.value = zero
	p.live--
	p.free.push(h)
	return true
}

// Validate classifies a raw integer from the foreign boundary. It is the
// only pool operation that accepts untrusted input. On success the returned
// Handle is live and safe for MustGet within the same call.
func (p *Pool[T]) Validate(raw int64) (Handle, error) {
	if raw < 0 || raw > maxRaw {
		return 0, errors.InvalidValue(errors.ScopePool, raw)
	}
	if raw >= int64(len(p.slots)) {
		return 0, errors.InvalidID(errors.ScopePool, raw, len(p.slots))
	}
	if p.slots[raw].refs == 0 {
		return 0, errors.DeadID(errors.ScopePool, raw)
	}
	return Handle(raw), nil
}

// MustGet returns the value for a handle already known to be live, either
// because Validate succeeded or because the handle was allocated in the
// same call. Panics on a dead handle.
func (p *Pool[T]) MustGet(h Handle) T {
	return p.mustSlot(h).value
}

// Refs returns the current reference count, or 0 for a dead or out-of-range
// handle. Diagnostic use only.
func (p *Pool[T]) Refs(h Handle) uint32 {
	if int(h) >= len(p.slots) {
		return 0
	}
	return p.slots[h].refs
}

// Len returns the number of live entries.
func (p *Pool[T]) Len() int {
	return p.live
}

// Cap returns the table length, counting free slots. It only ever shrinks
// to zero on teardown.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

func (p *Pool[T]) mustSlot(h Handle) *slot[T] {
	if int(h) >= len(p.slots) || p.slots[h].refs == 0 {
		panic(fmt.Sprintf("pool: dead handle %d dereferenced", h))
	}
	return &p.slots[h]
}
