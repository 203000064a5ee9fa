// Package hostbridge bridges a cooperative, step-driven engine to dynamic
// host callables written in Go.
//
// The engine side works with immutable tagged values and runnables that
// advance in discrete steps. The host side is plain Go: functions, errors,
// goroutines. The bridge converts values in both directions, wraps host
// functions as runnables, and keeps blocking host work off the goroutine
// that drives the scheduler.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	hostbridge/          Root package with convenience aliases
//	├── errors/          Structured error values shared by every layer
//	├── value/           Immutable tagged values and generic operations
//	├── engine/          Step-driven scheduler contract and driver
//	├── bridge/          Host/engine value and error conversion, foreign handles
//	├── adapter/         Host functions and coroutines as runnables
//	├── stdlib/          Built-in function modules and the signature registry
//	├── wasmhost/        Wasm module exports as host callables (wazero)
//	└── cmd/run/         CLI and interactive TUI for the registry
//
// # Quick Start
//
// Resolve a built-in function and call it:
//
//	sys := hostbridge.New()
//
//	result, err := sys.Call(ctx, "string::concat",
//	    value.NamedOf("a", value.String("he")),
//	    value.NamedOf("b", value.String("llo")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, _ := result.Text() // "hello"
//
// Wrap a Go function and drive it directly:
//
//	double := func(arg value.Value) (value.Value, error) {
//	    n, err := stdlib.IntArg(arg, "n")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return value.Integer(2 * n), nil
//	}
//	r := adapter.NewFunction(bridge.NewRuntime(), double,
//	    value.NewTuple(value.NamedOf("n", value.Integer(21))))
//	result, err := engine.Run(ctx, r)
//
// # Calling Convention
//
// Arguments travel as a single value. Multi-parameter functions receive a
// tuple of named elements and resolve each parameter by name; entries
// registered with defaults fall back to them when a call omits the
// argument. Results are plain values, with null standing in for "no
// result".
//
// # Blocking Work
//
// Synchronous adapters run on the driver goroutine and must not block.
// Anything that waits (timers, IO, long computation) goes through an async
// adapter or a runnable with pending steps, so the driver stays free to
// poll and the host work proceeds on its own goroutine.
//
// # Thread Safety
//
// Values are immutable and safe to share. A Driver and the runnables it
// holds belong to one goroutine. The bridge Runtime is safe for concurrent
// use.
package hostbridge
