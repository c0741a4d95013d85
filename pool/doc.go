// Package pool implements the handle pool: an arena that issues, validates,
// recycles, and reference-counts opaque integer handles for values it
// exclusively owns.
//
// # Handle Lifecycle
//
// Allocate stores a value and returns a dense handle with reference count 1.
// Retain and Release adjust the count; when it reaches zero the value is
// dropped and the slot's handle goes back to the free-slot registry, where
// the next Allocate reuses the smallest retired handle before growing the
// table.
//
//	p := pool.New[string]()
//	h := p.Allocate("hello")
//
//	v := p.MustGet(h)  // "hello"
//	p.Retain(h)        // refcount 2
//	p.Release(h)       // refcount 1, still live
//	p.Release(h)       // dead, slot eligible for reuse
//
// # Trust Boundary
//
// Validate is the only entry point that accepts untrusted input. It takes a
// raw integer exactly as the foreign caller passed it and classifies every
// way it can be wrong (out of range, never issued, retired) before producing
// a Handle. MustGet and Retain assume liveness was already established in
// the same call and panic on misuse; they must never see raw boundary input.
//
// The pool is not synchronized. Callers serialize access externally.
package pool
