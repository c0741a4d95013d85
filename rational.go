package rationalffi

// Arithmetic is the seam between the dispatch layer and the trusted
// arbitrary-precision primitive. The pool and dispatch layer never touch a
// value's internals; everything goes through this interface so the backing
// implementation can be swapped (the rat package provides the math/big one).
//
// Implementations own nothing: every value passed in stays owned by the
// caller's pool, and every value returned transfers to the caller.
type Arithmetic[T any] interface {
	// FromFloat constructs a value approximating x. Fails for NaN and
	// infinities, which have no finite rational representation.
	FromFloat(x float64) (T, error)

	// Add returns a+b as a freshly constructed value.
	Add(a, b T) (T, error)

	// Sub returns a-b as a freshly constructed value.
	Sub(a, b T) (T, error)

	// Mul returns a*b as a freshly constructed value.
	Mul(a, b T) (T, error)

	// Div returns a/b as a freshly constructed value. Fails when b has a
	// zero numerator.
	Div(a, b T) (T, error)

	// IsZero reports whether the value's numerator is zero.
	IsZero(a T) bool

	// Float64 returns the nearest representable float. exact reports
	// whether the conversion was lossless.
	Float64(a T) (f float64, exact bool)

	// Render formats the value as "<numerator>/<denominator>" in decimal.
	// The denominator is always positive; a negative value carries its
	// sign on the numerator.
	Render(a T) string
}
