package stdlib

import (
	"context"
	"strings"

	"github.com/wippyai/host-bridge/adapter"
	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Entry is one callable of a built-in module. Params is the ordered
// parameter descriptor tuple: each element names a parameter and binds it
// to an undefined placeholder carrying its description.
type Entry struct {
	Name      string
	Signature string
	Params    value.Tuple
	Async     bool

	build func(rt *bridge.Runtime, arg value.Value) engine.Runnable
}

// Runnable binds arg into a fresh runnable for this entry. A nil arg falls
// back to the parameter tuple, so descriptor defaults apply.
func (e *Entry) Runnable(rt *bridge.Runtime, arg value.Value) engine.Runnable {
	if arg == nil {
		arg = e.Params
	}
	return e.build(rt, arg)
}

// Call drives the entry to completion on the calling goroutine.
func (e *Entry) Call(ctx context.Context, rt *bridge.Runtime, arg value.Value) (value.Value, error) {
	return engine.Run(ctx, e.Runnable(rt, arg))
}

// Module is an ordered collection of entries and constants.
type Module struct {
	name    string
	entries []*Entry
	consts  []value.Named
	index   map[string]*Entry
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{name: name, index: make(map[string]*Entry)}
}

// Name reports the module name.
func (m *Module) Name() string { return m.name }

// Entries returns the entries in registration order.
func (m *Module) Entries() []*Entry {
	out := make([]*Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Entry looks up an entry by name.
func (m *Module) Entry(name string) (*Entry, bool) {
	e, ok := m.index[name]
	return e, ok
}

// Func registers a synchronous function entry.
func (m *Module) Func(name string, params value.Tuple, fn adapter.Func) *Entry {
	return m.add(&Entry{
		Name:   name,
		Params: params,
		build: func(rt *bridge.Runtime, arg value.Value) engine.Runnable {
			return adapter.NewFunction(rt, fn, arg)
		},
	})
}

// AsyncFunc registers an entry that runs its host function off the
// scheduler goroutine.
func (m *Module) AsyncFunc(name string, params value.Tuple, fn adapter.AsyncFunc) *Entry {
	return m.add(&Entry{
		Name:   name,
		Params: params,
		Async:  true,
		build: func(rt *bridge.Runtime, arg value.Value) engine.Runnable {
			return adapter.NewAsyncMethod(rt, fn, nil, arg)
		},
	})
}

// RunnableFunc registers an entry built from a custom runnable factory.
func (m *Module) RunnableFunc(name string, params value.Tuple, build func(rt *bridge.Runtime, arg value.Value) engine.Runnable) *Entry {
	return m.add(&Entry{
		Name:   name,
		Params: params,
		Async:  true,
		build:  build,
	})
}

// Const registers a constant value.
func (m *Module) Const(name string, v value.Value) {
	m.consts = append(m.consts, value.NamedOf(name, v))
}

func (m *Module) add(e *Entry) *Entry {
	e.Signature = m.name + "::" + e.Name
	m.entries = append(m.entries, e)
	m.index[e.Name] = e
	return e
}

// Value renders the module as an engine value: constants bind to their
// values, entries to their signature strings.
func (m *Module) Value() value.Value {
	elems := make([]value.Value, 0, len(m.consts)+len(m.entries))
	for _, c := range m.consts {
		elems = append(elems, c)
	}
	for _, e := range m.entries {
		elems = append(elems, value.NamedOf(e.Name, value.String(e.Signature)))
	}
	return value.NewTuple(elems...)
}

// Registry is the two-level lookup for built-in modules.
type Registry struct {
	modules []*Module
	index   map[string]*Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]*Module)}
}

// Default builds a registry with every built-in module registered.
func Default() *Registry {
	r := NewRegistry()
	r.Add(Strings())
	r.Add(Bytes())
	r.Add(Math())
	r.Add(Time())
	r.Add(Tuple())
	r.Add(Types())
	return r
}

// Add registers m, replacing any module with the same name.
func (r *Registry) Add(m *Module) {
	if _, ok := r.index[m.name]; ok {
		for i, old := range r.modules {
			if old.name == m.name {
				r.modules[i] = m
				break
			}
		}
	} else {
		r.modules = append(r.modules, m)
	}
	r.index[m.name] = m
}

// Module looks up a module by name.
func (r *Registry) Module(name string) (*Module, bool) {
	m, ok := r.index[name]
	return m, ok
}

// Modules returns the modules in registration order.
func (r *Registry) Modules() []*Module {
	out := make([]*Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Lookup resolves a "module::function" signature to its entry.
func (r *Registry) Lookup(signature string) (*Entry, error) {
	mod, fn, ok := strings.Cut(signature, "::")
	if !ok {
		return nil, errors.InvalidOperationf(errors.PhaseRegistry, "malformed signature %q", signature)
	}
	m, ok := r.index[mod]
	if !ok {
		return nil, errors.NotFound(errors.PhaseRegistry, "module", mod)
	}
	e, ok := m.index[fn]
	if !ok {
		return nil, errors.NotFound(errors.PhaseRegistry, "function", signature)
	}
	debugf("resolved %s", signature)
	return e, nil
}

// Value renders the whole registry as a named dict of modules.
func (r *Registry) Value() value.Value {
	elems := make([]value.Value, len(r.modules))
	for i, m := range r.modules {
		elems[i] = value.NamedOf(m.name, m.Value())
	}
	return value.NewTuple(elems...)
}

// Param declares one named parameter: an undefined placeholder carrying the
// parameter's description.
func Param(name, desc string) value.Named {
	return value.NamedOf(name, value.UndefinedOf(desc))
}

// Params declares an ordered parameter descriptor tuple.
func Params(params ...value.Named) value.Tuple {
	elems := make([]value.Value, len(params))
	for i, p := range params {
		elems[i] = p
	}
	return value.NewTuple(elems...)
}

// Arg resolves a named argument from a call tuple.
func Arg(arg value.Value, name string) (value.Value, error) {
	return value.Attr(arg, name)
}

// StringArg resolves a string argument by name.
func StringArg(arg value.Value, name string) (string, error) {
	v, err := value.Attr(arg, name)
	if err != nil {
		return "", err
	}
	s, ok := v.(value.String)
	if !ok {
		return "", argTypeErr(name, "string", v)
	}
	return string(s), nil
}

// IntArg resolves an integer argument by name.
func IntArg(arg value.Value, name string) (int64, error) {
	v, err := value.Attr(arg, name)
	if err != nil {
		return 0, err
	}
	i, ok := v.(value.Integer)
	if !ok {
		return 0, argTypeErr(name, "integer", v)
	}
	return int64(i), nil
}

// FloatArg resolves a numeric argument by name, widening integers.
func FloatArg(arg value.Value, name string) (float64, error) {
	v, err := value.Attr(arg, name)
	if err != nil {
		return 0, err
	}
	switch n := v.(type) {
	case value.Integer:
		return float64(n), nil
	case value.Float:
		return float64(n), nil
	}
	return 0, argTypeErr(name, "number", v)
}

// BytesArg resolves a bytes argument by name.
func BytesArg(arg value.Value, name string) (value.Bytes, error) {
	v, err := value.Attr(arg, name)
	if err != nil {
		return value.Bytes{}, err
	}
	b, ok := v.(value.Bytes)
	if !ok {
		return value.Bytes{}, argTypeErr(name, "bytes", v)
	}
	return b, nil
}

// TupleArg resolves a tuple argument by name.
func TupleArg(arg value.Value, name string) (value.Tuple, error) {
	v, err := value.Attr(arg, name)
	if err != nil {
		return value.Tuple{}, err
	}
	t, ok := v.(value.Tuple)
	if !ok {
		return value.Tuple{}, argTypeErr(name, "tuple", v)
	}
	return t, nil
}

func argTypeErr(name, want string, got value.Value) *errors.Error {
	e := errors.InvalidType(errors.PhaseCall, want, value.TypeNameOf(got))
	e.Attr = name
	return e
}
