// Package wasmhost exposes a rational library to WebAssembly guests as a
// wazero host module named "rational".
//
// Guests import flat functions mirroring the in-process exports:
//
//	(import "rational" "from_float" (func (param f64) (result i64)))
//	(import "rational" "add"        (func (param i64 i64) (result i64)))
//	(import "rational" "to_string"  (func (param i64) (result i64)))
//
// Handles cross the boundary as i64 with -1 as the failure sentinel, the
// same contract the C-style boundary uses. to_string copies the rendered
// bytes into guest memory using the guest's exported allocator
// (cabi_realloc or alloc) and returns ptr<<32|len, 0 on failure; the guest
// owns the copy, so no free_string import exists at this boundary.
package wasmhost
