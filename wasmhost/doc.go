// Package wasmhost loads WebAssembly modules and exposes their exported
// functions as host callables.
//
// # Runtime and Modules
//
// A Runtime wraps a wazero runtime. Load compiles and instantiates a
// wasm binary, returning a Module whose exports can be called through
// the bridge layer:
//
//	rt, err := wasmhost.New(ctx)
//	if err != nil { ... }
//	defer rt.Close(ctx)
//
//	mod, err := rt.Load(ctx, "calc", wasmBytes)
//	if err != nil { ... }
//
//	fn, err := mod.Callable(ctx, "add")
//	if err != nil { ... }
//	sum, err := fn(nil, value.NewTuple(value.Integer(2), value.Integer(3)))
//
// # Value Mapping
//
// Only flat numeric signatures are supported. Arguments are matched
// positionally against the declared parameters: a tuple supplies one
// element per parameter, a single value binds a single parameter, and
// named values are unwrapped. Integers feed i32 and i64 parameters,
// and numbers feed f32 and f64. Results map back the same way, with a
// zero-result function returning null and a multi-result function
// returning a tuple.
//
// Module.Entries packages the exports as a stdlib module so wasm
// functions can be resolved and called through a registry alongside
// the built-in ones.
package wasmhost
