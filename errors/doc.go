// Package errors provides structured error types for the rational-ffi library.
//
// Errors are categorized by Scope (where the error occurred) and Kind (error
// category). Handle validation failures carry the offending raw integer so
// operators can see exactly what the foreign caller passed.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.ScopePool, errors.KindDeadID).
//		Value(raw).
//		Detail("slot retired").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidValue(errors.ScopePool, raw)
//	err := errors.DivByZero(errors.ScopeArith)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
