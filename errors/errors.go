package errors

import (
	"fmt"
	"strings"
)

// Scope indicates where in processing the error occurred
type Scope string

const (
	ScopePool    Scope = "pool"    // handle lifecycle and validation
	ScopeArith   Scope = "arith"   // arithmetic primitive operations
	ScopeConvert Scope = "convert" // float/string conversion
	ScopeExport  Scope = "export"  // dispatch layer boundary
	ScopeWASM    Scope = "wasm"    // wazero host module binding
)

// Kind categorizes the error
type Kind string

const (
	// KindInvalidValue means a raw integer from the foreign boundary is
	// outside the representable handle range (negative or too large).
	KindInvalidValue Kind = "invalid_value"

	// KindInvalidID means the integer is in range but was never issued.
	KindInvalidID Kind = "invalid_id"

	// KindDeadID means the integer refers to a retired slot.
	KindDeadID Kind = "dead_id"

	// KindAllocation means the backing primitive could not produce a value.
	KindAllocation Kind = "allocation"

	// KindDivByZero means the arithmetic primitive refused a zero divisor.
	KindDivByZero Kind = "div_by_zero"

	// KindNonFinite means a float with no rational representation.
	KindNonFinite Kind = "non_finite"

	// KindNotInitialized means an operation ran against a closed library.
	KindNotInitialized Kind = "not_initialized"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Scope  Scope
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Scope))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Value != nil {
		b.WriteString(" (value ")
		fmt.Fprintf(&b, "%v", e.Value)
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Scope == t.Scope && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(scope Scope, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Scope: scope,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidValue creates an error for a raw integer outside the handle range
func InvalidValue(scope Scope, raw int64) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindInvalidValue,
		Detail: "raw integer outside handle range",
		Value:  raw,
	}
}

// InvalidID creates an error for an in-range but never-issued handle
func InvalidID(scope Scope, raw int64, length int) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindInvalidID,
		Detail: fmt.Sprintf("handle never issued (table length %d)", length),
		Value:  raw,
	}
}

// DeadID creates an error for a handle whose slot has been retired
func DeadID(scope Scope, raw int64) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindDeadID,
		Detail: "handle refers to a retired slot",
		Value:  raw,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(scope Scope, cause error) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindAllocation,
		Detail: "primitive could not allocate value",
		Cause:  cause,
	}
}

// DivByZero creates a zero-divisor refusal error
func DivByZero(scope Scope) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindDivByZero,
		Detail: "divisor has zero numerator",
	}
}

// NonFinite creates an error for a float with no rational representation
func NonFinite(scope Scope, x float64) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindNonFinite,
		Detail: "no rational representation",
		Value:  x,
	}
}

// NotInitialized creates an error for operations against a closed library
func NotInitialized(scope Scope, component string) *Error {
	return &Error{
		Scope:  scope,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(scope Scope, kind Kind, cause error, detail string) *Error {
	return &Error{
		Scope:  scope,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
