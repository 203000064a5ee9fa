package hostbridge

import (
	"context"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/stdlib"
	"github.com/wippyai/host-bridge/value"
	"github.com/wippyai/host-bridge/wasmhost"
)

// Aliases for the types most callers need, so simple uses stay on one
// import.
type (
	Value    = value.Value
	Error    = errors.Error
	Runnable = engine.Runnable
	Callable = bridge.Callable
)

// System bundles a function registry with the runtime state foreign calls
// share. The zero value is not usable; construct with New.
type System struct {
	Registry *stdlib.Registry
	Runtime  *bridge.Runtime

	host *wasmhost.Runtime
}

// New creates a system with every built-in module registered.
func New() *System {
	return &System{
		Registry: stdlib.Default(),
		Runtime:  bridge.NewRuntime(),
	}
}

// Call resolves a signature and drives the entry to completion. A single
// argument passes through as the call argument; several are packed into a
// tuple. No arguments means the entry's parameter defaults apply.
func (s *System) Call(ctx context.Context, signature string, args ...value.Value) (value.Value, error) {
	entry, err := s.Registry.Lookup(signature)
	if err != nil {
		return nil, err
	}

	var arg value.Value
	switch len(args) {
	case 0:
	case 1:
		arg = args[0]
	default:
		arg = value.NewTuple(args...)
	}
	return entry.Call(ctx, s.Runtime, arg)
}

// LoadWasm loads a wasm binary and registers its exports under the given
// module name, next to the built-in modules.
func (s *System) LoadWasm(ctx context.Context, name string, wasm []byte) error {
	if s.host == nil {
		s.host = wasmhost.New(ctx)
	}
	mod, err := s.host.Load(ctx, name, wasm)
	if err != nil {
		return err
	}
	s.Registry.Add(mod.Entries(ctx))
	return nil
}

// Close releases wasm resources, if any were loaded.
func (s *System) Close(ctx context.Context) error {
	if s.host == nil {
		return nil
	}
	return s.host.Close(ctx)
}

// Run drives a runnable to completion on the calling goroutine.
func Run(ctx context.Context, r engine.Runnable) (value.Value, error) {
	return engine.Run(ctx, r)
}
