// Package rationalffi provides arbitrary-precision rational arithmetic
// behind a flat, handle-based foreign-function interface.
//
// A host process with no native big-rational type (the reference embedding
// is a ctypes-style dynamic-language wrapper) never sees a rational value
// directly. It receives an opaque integer handle from a construction or
// arithmetic export, stores it, and passes it back into later exports. The
// library owns every value; the boundary only ever carries integers, floats,
// and copied bytes.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	rational-ffi/        Root package with the Arithmetic interface seam
//	├── export/          Dispatch layer: the flat exported operations
//	├── pool/            Handle pool: issue, validate, recycle, refcount
//	├── rat/             math/big backed rational primitive
//	├── errors/          Structured error types for the boundary
//	├── wasmhost/        wazero host module exposing the exports to guests
//	└── cmd/ratcalc/     CLI and interactive calculator
//
// # Quick Start
//
// Construct a library, do arithmetic through handles, tear it down:
//
//	lib := export.New()
//	defer lib.Close()
//
//	a := lib.FromFloat(0.5)
//	b := lib.FromFloat(0.25)
//	sum := lib.Add(a, b)
//
//	s := lib.ToString(sum) // "3/4"
//	lib.FreeString(s)
//
//	lib.Delete(a)
//	lib.Delete(b)
//	lib.Delete(sum)
//
// Every export that accepts a handle validates it in full before touching
// pool state; garbage, stale, or never-issued integers produce a sentinel
// failure value, never a crash.
//
// # Failure Model
//
// No error crosses the boundary as a panic. Fallible exports return a
// sentinel (-1 handle, invalid tagged result, nil string) and log the
// underlying structured error once through the package logger.
//
// The pool is not synchronized. Callers that share a library across
// goroutines must serialize access externally.
package rationalffi
