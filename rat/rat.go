// Package rat implements the arbitrary-precision rational primitive on top
// of math/big. It is the trusted side of the Arithmetic seam: values are
// constructed here, handed to a pool for ownership, and never mutated after
// construction.
package rat

import (
	"math/big"

	"github.com/wippyai/rational-ffi/errors"
)

// Value is an immutable arbitrary-precision rational. The zero value is 0/1.
// Values are always in reduced canonical form with a positive denominator;
// big.Rat maintains this invariant on every operation.
type Value struct {
	r big.Rat
}

// String formats the value as "<numerator>/<denominator>" in decimal.
// Unlike big.Rat.RatString, the denominator is always printed, so integers
// render as "3/1" and zero as "0/1".
func (v *Value) String() string {
	return v.r.Num().String() + "/" + v.r.Denom().String()
}

// Eq reports whether two values are numerically equal.
func (v *Value) Eq(o *Value) bool {
	return v.r.Cmp(&o.r) == 0
}

// FromInts constructs the value a/b. Panics when b is zero; intended for
// tests and in-process callers, not the foreign boundary.
func FromInts(a, b int64) *Value {
	v := new(Value)
	v.r.SetFrac64(a, b)
	return v
}

// Arith implements the Arithmetic interface over *Value. It is stateless;
// the zero value is ready to use.
type Arith struct{}

// FromFloat constructs a value exactly equal to x. NaN and infinities have
// no rational representation and are rejected.
func (Arith) FromFloat(x float64) (*Value, error) {
	v := new(Value)
	if v.r.SetFloat64(x) == nil {
		return nil, errors.NonFinite(errors.ScopeArith, x)
	}
	return v, nil
}

func (Arith) Add(a, b *Value) (*Value, error) {
	v := new(Value)
	v.r.Add(&a.r, &b.r)
	return v, nil
}

func (Arith) Sub(a, b *Value) (*Value, error) {
	v := new(Value)
	v.r.Sub(&a.r, &b.r)
	return v, nil
}

func (Arith) Mul(a, b *Value) (*Value, error) {
	v := new(Value)
	v.r.Mul(&a.r, &b.r)
	return v, nil
}

// Div returns a/b. A divisor with a zero numerator is refused; big.Rat
// would panic on it, and the boundary must see an error instead.
func (Arith) Div(a, b *Value) (*Value, error) {
	if b.r.Num().Sign() == 0 {
		return nil, errors.DivByZero(errors.ScopeArith)
	}
	v := new(Value)
	v.r.Quo(&a.r, &b.r)
	return v, nil
}

// IsZero reports whether the numerator is zero.
func (Arith) IsZero(a *Value) bool {
	return a.r.Num().Sign() == 0
}

// Float64 returns the nearest representable float64.
func (Arith) Float64(a *Value) (float64, bool) {
	return a.r.Float64()
}

// Render formats a as "<numerator>/<denominator>".
func (Arith) Render(a *Value) string {
	return a.String()
}
