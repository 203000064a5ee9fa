package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/host-bridge/errors"
)

// Runtime owns a wazero runtime and the modules loaded into it.
type Runtime struct {
	wz wazero.Runtime
}

// Config holds configuration for runtime creation.
type Config struct {
	// MemoryLimitPages sets the maximum memory per instance in pages
	// (64KB each). 0 means the wazero default.
	MemoryLimitPages uint32
}

// New creates a runtime with default configuration.
func New(ctx context.Context) *Runtime {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates a runtime with custom configuration.
func NewWithConfig(ctx context.Context, cfg *Config) *Runtime {
	rc := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		rc = rc.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	return &Runtime{wz: wazero.NewRuntimeWithConfig(ctx, rc)}
}

// Close releases all runtime resources, including every loaded module.
func (r *Runtime) Close(ctx context.Context) error {
	return r.wz.Close(ctx)
}

// Load compiles and instantiates a core module binary. The name scopes the
// instance within the runtime; loading two modules under one name fails.
func (r *Runtime) Load(ctx context.Context, name string, wasm []byte) (*Module, error) {
	compiled, err := r.wz.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidOperation, err, "compile module")
	}

	inst, err := r.wz.InstantiateModule(ctx, compiled, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		_ = compiled.Close(ctx)
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidOperation, err, "instantiate module")
	}

	debugf("loaded module %s with %d exported functions", name, len(inst.ExportedFunctionDefinitions()))
	return &Module{name: name, inst: inst}, nil
}
