package export

import (
	"go.uber.org/zap"

	rationalffi "github.com/wippyai/rational-ffi"
	"github.com/wippyai/rational-ffi/errors"
	"github.com/wippyai/rational-ffi/pool"
	"github.com/wippyai/rational-ffi/rat"
)

// Invalid is the handle sentinel returned by every fallible operation that
// would otherwise produce a handle.
const Invalid = int64(-1)

// FloatResult is the tagged result of ToFloat. Valid=false means the handle
// was invalid; Valid=true with a non-finite Value means the rational itself
// overflows float64 range.
type FloatResult struct {
	Value float64
	Valid bool
}

// String is an owned byte string crossing the boundary. A nil Ptr signals
// failure. A non-nil Ptr stays owned by the Library until FreeString.
type String struct {
	Ptr []byte
	Len uint32
}

// Library owns the pool, the arithmetic primitive, and every string it has
// handed out. Not synchronized; the embedding process serializes access.
type Library struct {
	pool    *pool.Pool[*rat.Value]
	arith   rationalffi.Arithmetic[*rat.Value]
	strings map[*byte]uint32
	log     *zap.Logger
	closed  bool
}

// Option configures a Library.
type Option func(*Library)

// WithLogger overrides the package logger for one library.
func WithLogger(l *zap.Logger) Option {
	return func(lib *Library) {
		lib.log = l
	}
}

// WithArithmetic swaps the backing arithmetic primitive.
func WithArithmetic(a rationalffi.Arithmetic[*rat.Value]) Option {
	return func(lib *Library) {
		lib.arith = a
	}
}

// New constructs a Library ready for use.
func New(opts ...Option) *Library {
	lib := &Library{
		pool:    pool.New[*rat.Value](),
		arith:   rat.Arith{},
		strings: make(map[*byte]uint32),
		log:     Logger(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// fail logs err under the operation's scope tag and returns the sentinel
// unchanged. Every error leaving the library passes through here exactly
// once.
func fail[T any](lib *Library, op string, err error, sentinel T) T {
	lib.log.Warn("rational export failed",
		zap.String("op", op),
		zap.Error(err))
	return sentinel
}

// FromFloat builds a rational exactly equal to x and returns its handle, or
// Invalid when x has no rational representation.
func (lib *Library) FromFloat(x float64) int64 {
	if lib.closed {
		return fail(lib, "from_float", errors.NotInitialized(errors.ScopeExport, "library"), Invalid)
	}

	v, err := lib.arith.FromFloat(x)
	if err != nil {
		return fail(lib, "from_float", err, Invalid)
	}
	return int64(lib.pool.Allocate(v))
}

// ToFloat converts the value behind raw to the nearest float64.
func (lib *Library) ToFloat(raw int64) FloatResult {
	if lib.closed {
		return fail(lib, "to_float", errors.NotInitialized(errors.ScopeExport, "library"), FloatResult{})
	}

	h, err := lib.pool.Validate(raw)
	if err != nil {
		return fail(lib, "to_float", err, FloatResult{})
	}

	f, _ := lib.arith.Float64(lib.pool.MustGet(h))
	return FloatResult{Valid: true, Value: f}
}

// ToString renders the value behind raw as "<numerator>/<denominator>". The
// returned bytes belong to the Library and must come back through
// FreeString.
func (lib *Library) ToString(raw int64) String {
	if lib.closed {
		return fail(lib, "to_string", errors.NotInitialized(errors.ScopeExport, "library"), String{})
	}

	h, err := lib.pool.Validate(raw)
	if err != nil {
		return fail(lib, "to_string", err, String{})
	}

	buf := []byte(lib.arith.Render(lib.pool.MustGet(h)))
	lib.strings[&buf[0]] = uint32(len(buf))
	return String{Ptr: buf, Len: uint32(len(buf))}
}

// FreeString releases a string previously returned by ToString. No-op on a
// nil Ptr or a string that was already freed.
func (lib *Library) FreeString(s String) {
	if s.Ptr == nil {
		return
	}
	delete(lib.strings, &s.Ptr[0])
}

// Add returns a handle to a+b, or Invalid.
func (lib *Library) Add(a, b int64) int64 {
	return lib.binop("add", a, b, lib.arith.Add)
}

// Sub returns a handle to a-b, or Invalid.
func (lib *Library) Sub(a, b int64) int64 {
	return lib.binop("sub", a, b, lib.arith.Sub)
}

// Mul returns a handle to a*b, or Invalid. A zero left operand short-
// circuits: its own handle comes back retained, with no allocation and no
// multiplication. Sound because zero values are canonically 0/1.
func (lib *Library) Mul(a, b int64) int64 {
	const op = "mul"

	ha, hb, ok := lib.validate2(op, a, b)
	if !ok {
		return Invalid
	}

	if lib.arith.IsZero(lib.pool.MustGet(ha)) {
		lib.pool.Retain(ha)
		return int64(ha)
	}

	v, err := lib.arith.Mul(lib.pool.MustGet(ha), lib.pool.MustGet(hb))
	return lib.insert(op, v, err)
}

// Div returns a handle to a/b, or Invalid. A zero divisor is an error; a
// zero dividend short-circuits and returns the dividend's handle retained.
// The divisor check runs first so 0/0 fails instead of short-circuiting.
func (lib *Library) Div(a, b int64) int64 {
	const op = "div"

	ha, hb, ok := lib.validate2(op, a, b)
	if !ok {
		return Invalid
	}

	if lib.arith.IsZero(lib.pool.MustGet(hb)) {
		return fail(lib, op, errors.DivByZero(errors.ScopeArith), Invalid)
	}

	if lib.arith.IsZero(lib.pool.MustGet(ha)) {
		lib.pool.Retain(ha)
		return int64(ha)
	}

	v, err := lib.arith.Div(lib.pool.MustGet(ha), lib.pool.MustGet(hb))
	return lib.insert(op, v, err)
}

// IsZero reports on the value behind raw: -1 invalid handle, 1 zero
// numerator, 0 otherwise.
func (lib *Library) IsZero(raw int64) int64 {
	if lib.closed {
		return fail(lib, "is_zero", errors.NotInitialized(errors.ScopeExport, "library"), Invalid)
	}

	h, err := lib.pool.Validate(raw)
	if err != nil {
		return fail(lib, "is_zero", err, Invalid)
	}

	if lib.arith.IsZero(lib.pool.MustGet(h)) {
		return 1
	}
	return 0
}

// Delete releases one reference to the value behind raw. Invalid handles
// are logged and ignored; the boundary must not be able to crash the pool.
func (lib *Library) Delete(raw int64) {
	if lib.closed {
		fail(lib, "delete", errors.NotInitialized(errors.ScopeExport, "library"), Invalid)
		return
	}

	h, err := lib.pool.Validate(raw)
	if err != nil {
		fail(lib, "delete", err, Invalid)
		return
	}
	lib.pool.Release(h)
}

// Live returns the number of live handles. Diagnostic use only.
func (lib *Library) Live() int {
	return lib.pool.Len()
}

// OpenStrings returns the number of ToString results not yet freed.
// Diagnostic use only.
func (lib *Library) OpenStrings() int {
	return len(lib.strings)
}

// Close tears the library down. It should run only after every handle and
// string has been released; anything still outstanding leaks by design and
// is logged for the operator.
func (lib *Library) Close() error {
	if lib.closed {
		return nil
	}
	lib.closed = true

	if n := lib.pool.Len(); n > 0 {
		lib.log.Warn("library closed with live handles", zap.Int("handles", n))
	}
	if n := len(lib.strings); n > 0 {
		lib.log.Warn("library closed with unfreed strings", zap.Int("strings", n))
	}
	lib.strings = nil
	return nil
}

// validate2 checks both operand handles of a binary operation, logging and
// reporting failure for the first bad one.
func (lib *Library) validate2(op string, a, b int64) (ha, hb pool.Handle, ok bool) {
	if lib.closed {
		return 0, 0, fail(lib, op, errors.NotInitialized(errors.ScopeExport, "library"), false)
	}

	ha, err := lib.pool.Validate(a)
	if err != nil {
		return 0, 0, fail(lib, op, err, false)
	}
	hb, err = lib.pool.Validate(b)
	if err != nil {
		return 0, 0, fail(lib, op, err, false)
	}
	return ha, hb, true
}

// binop is the shared validate-compute-insert template for operations
// without a short-circuit path.
func (lib *Library) binop(op string, a, b int64, fn func(x, y *rat.Value) (*rat.Value, error)) int64 {
	ha, hb, ok := lib.validate2(op, a, b)
	if !ok {
		return Invalid
	}
	v, err := fn(lib.pool.MustGet(ha), lib.pool.MustGet(hb))
	return lib.insert(op, v, err)
}

// insert takes ownership of a computed value and issues its handle.
func (lib *Library) insert(op string, v *rat.Value, err error) int64 {
	if err != nil {
		return fail(lib, op, err, Invalid)
	}
	return int64(lib.pool.Allocate(v))
}
