package wasmhost

import (
	"context"
	"fmt"
	"sort"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/stdlib"
	"github.com/wippyai/host-bridge/value"
)

// Module is one instantiated wasm module. Exported functions with flat
// numeric signatures (i32, i64, f32, f64) are exposed as host callables;
// anything else is rejected at call time.
type Module struct {
	name string
	inst api.Module
}

// Name reports the instance name the module was loaded under.
func (m *Module) Name() string { return m.name }

// Close releases the instance.
func (m *Module) Close(ctx context.Context) error {
	return m.inst.Close(ctx)
}

// Exports returns the exported function names in sorted order.
func (m *Module) Exports() []string {
	defs := m.inst.ExportedFunctionDefinitions()
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Callable wraps an exported function as a dynamic host callable. The
// receiver is ignored; the argument supplies the wasm parameters, either
// directly for a single parameter or as a tuple for several. Calls run on
// the given context.
func (m *Module) Callable(ctx context.Context, name string) (bridge.Callable, error) {
	fn := m.inst.ExportedFunction(name)
	if fn == nil {
		return nil, errors.NotFound(errors.PhaseLoad, "export", name)
	}
	return func(_, arg any) (any, error) {
		return m.call(ctx, fn, bridge.FromHost(arg))
	}, nil
}

// Entries exposes every exported function as a registry module, so wasm
// functions resolve and run exactly like built-in ones.
func (m *Module) Entries(ctx context.Context) *stdlib.Module {
	sm := stdlib.NewModule(m.name)
	for _, name := range m.Exports() {
		fn := m.inst.ExportedFunction(name)
		sm.Func(name, exportParams(fn.Definition()), func(arg value.Value) (value.Value, error) {
			return m.call(ctx, fn, arg)
		})
	}
	return sm
}

func (m *Module) call(ctx context.Context, fn api.Function, arg value.Value) (value.Value, error) {
	def := fn.Definition()

	stack, err := flatten(def.ParamTypes(), arg)
	if err != nil {
		return nil, err
	}
	out, err := fn.Call(ctx, stack...)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseCall, errors.KindDetailed, err, "wasm call failed")
	}
	return lift(def.ResultTypes(), out)
}

// exportParams derives parameter descriptors from a function definition.
// Wasm name sections are optional, so positions fall back to p0, p1, ...
func exportParams(def api.FunctionDefinition) value.Tuple {
	types := def.ParamTypes()
	names := def.ParamNames()
	params := make([]value.Named, len(types))
	for i, t := range types {
		name := fmt.Sprintf("p%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		params[i] = stdlib.Param(name, api.ValueTypeName(t)+" parameter")
	}
	return stdlib.Params(params...)
}

// flatten lowers an engine value onto the wasm stack. A tuple supplies one
// element per parameter; any other value is the sole parameter. Named
// elements unwrap, so named argument tuples bind positionally.
func flatten(params []api.ValueType, arg value.Value) ([]uint64, error) {
	if len(params) == 0 {
		return nil, nil
	}

	var elems []value.Value
	if t, ok := arg.(value.Tuple); ok {
		elems = t.Values()
	} else {
		elems = []value.Value{arg}
	}
	if len(elems) != len(params) {
		return nil, errors.InvalidOperationf(errors.PhaseCall,
			"wasm function takes %d parameters, got %d", len(params), len(elems))
	}

	stack := make([]uint64, len(params))
	for i, p := range params {
		v := elems[i]
		if n, ok := v.(value.Named); ok {
			v = n.Value()
		}
		enc, err := lower(p, v)
		if err != nil {
			return nil, err
		}
		stack[i] = enc
	}
	return stack, nil
}

func lower(t api.ValueType, v value.Value) (uint64, error) {
	switch t {
	case api.ValueTypeI32:
		n, ok := v.(value.Integer)
		if !ok {
			return 0, errors.InvalidType(errors.PhaseCall, "integer", value.TypeNameOf(v))
		}
		if int64(n) < -1<<31 || int64(n) > 1<<31-1 {
			return 0, errors.InvalidOperationf(errors.PhaseCall, "value %d overflows i32", int64(n))
		}
		return api.EncodeI32(int32(n)), nil
	case api.ValueTypeI64:
		n, ok := v.(value.Integer)
		if !ok {
			return 0, errors.InvalidType(errors.PhaseCall, "integer", value.TypeNameOf(v))
		}
		return api.EncodeI64(int64(n)), nil
	case api.ValueTypeF32:
		f, ok := floatOf(v)
		if !ok {
			return 0, errors.InvalidType(errors.PhaseCall, "number", value.TypeNameOf(v))
		}
		return api.EncodeF32(float32(f)), nil
	case api.ValueTypeF64:
		f, ok := floatOf(v)
		if !ok {
			return 0, errors.InvalidType(errors.PhaseCall, "number", value.TypeNameOf(v))
		}
		return api.EncodeF64(f), nil
	default:
		return 0, errors.InvalidOperationf(errors.PhaseCall,
			"unsupported wasm parameter type %s", api.ValueTypeName(t))
	}
}

// lift raises wasm results back into engine values. No results produce
// null, one result its value, several a tuple.
func lift(results []api.ValueType, stack []uint64) (value.Value, error) {
	switch len(results) {
	case 0:
		return value.Null{}, nil
	case 1:
		return raise(results[0], stack[0])
	default:
		elems := make([]value.Value, len(results))
		for i, t := range results {
			v, err := raise(t, stack[i])
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		return value.NewTuple(elems...), nil
	}
}

func raise(t api.ValueType, v uint64) (value.Value, error) {
	switch t {
	case api.ValueTypeI32:
		return value.Integer(api.DecodeI32(v)), nil
	case api.ValueTypeI64:
		return value.Integer(v), nil
	case api.ValueTypeF32:
		return value.Float(api.DecodeF32(v)), nil
	case api.ValueTypeF64:
		return value.Float(api.DecodeF64(v)), nil
	default:
		return nil, errors.InvalidOperationf(errors.PhaseCall,
			"unsupported wasm result type %s", api.ValueTypeName(t))
	}
}

func floatOf(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case value.Float:
		return float64(x), true
	case value.Integer:
		return float64(x), true
	}
	return 0, false
}
