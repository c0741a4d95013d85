package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/rational-ffi/export"
)

// ModuleName is the import namespace guests use.
const ModuleName = "rational"

var (
	i64    = []api.ValueType{api.ValueTypeI64}
	i64i64 = []api.ValueType{api.ValueTypeI64, api.ValueTypeI64}
	f64    = []api.ValueType{api.ValueTypeF64}
)

// Instantiate builds the "rational" host module over lib and instantiates
// it in r. The returned module stays valid until the runtime closes; lib
// must outlive it.
func Instantiate(ctx context.Context, r wazero.Runtime, lib *export.Library) (api.Module, error) {
	builder := r.NewHostModuleBuilder(ModuleName)

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = api.EncodeI64(lib.FromFloat(api.DecodeF64(stack[0])))
		}), f64, i64).
		Export("from_float")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			res := lib.ToFloat(int64(stack[0]))
			if res.Valid {
				stack[0] = 1
			} else {
				stack[0] = 0
			}
			stack[1] = api.EncodeF64(res.Value)
		}), i64, []api.ValueType{api.ValueTypeI32, api.ValueTypeF64}).
		Export("to_float")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(toStringFunc(lib), i64, i64).
		Export("to_string")

	for name, op := range map[string]func(a, b int64) int64{
		"add": lib.Add,
		"sub": lib.Sub,
		"mul": lib.Mul,
		"div": lib.Div,
	} {
		op := op
		builder = builder.NewFunctionBuilder().
			WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
				stack[0] = api.EncodeI64(op(int64(stack[0]), int64(stack[1])))
			}), i64i64, i64).
			Export(name)
	}

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			stack[0] = api.EncodeI64(lib.IsZero(int64(stack[0])))
		}), i64, i64).
		Export("is_zero")

	builder = builder.NewFunctionBuilder().
		WithGoModuleFunction(api.GoModuleFunc(func(_ context.Context, _ api.Module, stack []uint64) {
			lib.Delete(int64(stack[0]))
		}), i64, nil).
		Export("delete")

	return builder.Instantiate(ctx)
}

// toStringFunc renders a handle into the calling guest's memory. The guest
// must export an allocator; cabi_realloc is preferred, alloc(size) is the
// fallback. The result packs ptr<<32|len, 0 on any failure.
func toStringFunc(lib *export.Library) api.GoModuleFunc {
	return func(ctx context.Context, mod api.Module, stack []uint64) {
		raw := int64(stack[0])
		stack[0] = 0

		s := lib.ToString(raw)
		if s.Ptr == nil {
			return
		}
		defer lib.FreeString(s)

		mem := mod.Memory()
		if mem == nil {
			Logger().Warn("to_string: calling module has no memory")
			return
		}

		ptr, ok := guestAlloc(ctx, mod, s.Len)
		if !ok {
			return
		}
		if !mem.Write(ptr, s.Ptr) {
			Logger().Warn("to_string: write outside guest memory",
				zap.Uint32("ptr", ptr),
				zap.Uint32("len", s.Len))
			return
		}

		stack[0] = uint64(ptr)<<32 | uint64(s.Len)
	}
}

func guestAlloc(ctx context.Context, mod api.Module, size uint32) (uint32, bool) {
	if fn := mod.ExportedFunction("cabi_realloc"); fn != nil {
		res, err := fn.Call(ctx, 0, 0, 1, uint64(size))
		if err != nil || len(res) == 0 {
			Logger().Warn("to_string: cabi_realloc failed", zap.Error(err))
			return 0, false
		}
		return uint32(res[0]), true
	}
	if fn := mod.ExportedFunction("alloc"); fn != nil {
		res, err := fn.Call(ctx, uint64(size))
		if err != nil || len(res) == 0 {
			Logger().Warn("to_string: alloc failed", zap.Error(err))
			return 0, false
		}
		return uint32(res[0]), true
	}

	Logger().Warn("to_string: guest exports no allocator",
		zap.String("module", mod.Name()))
	return 0, false
}
