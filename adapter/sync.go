package adapter

import (
	"context"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Function adapts a synchronous host function to the step contract. The
// whole call happens inside the first step, under the runtime guard; a
// Function never reports Pending.
type Function struct {
	rt *bridge.Runtime
	fn Func
	binding
}

// NewFunction binds fn and its argument into a function adapter.
func NewFunction(rt *bridge.Runtime, fn Func, arg value.Value) *Function {
	return &Function{rt: rt, fn: fn, binding: binding{kind: KindFunction, arg: arg}}
}

func (a *Function) Step(ctx context.Context) engine.StepResult {
	debugf("function step: %s", describe(a.arg))
	var out value.Value
	err := a.rt.With(func() error {
		var err error
		out, err = a.fn(a.arg)
		return err
	})
	if err != nil {
		return engine.Fail(bridge.ToEngineError(errors.PhaseCall, err))
	}
	return engine.Return(out)
}

func (a *Function) Receive(res engine.StepResult) error { return a.receive(res) }

// Copy returns an independent adapter over the same function and argument.
// Stepping the copy invokes the host function again.
func (a *Function) Copy() engine.Runnable {
	c := *a
	return &c
}

func (a *Function) Snapshot() engine.Snapshot { return a.snapshot("") }

// Method adapts a synchronous host method bound to a receiver.
type Method struct {
	rt *bridge.Runtime
	fn MethodFunc
	binding
}

// NewMethod binds fn, its receiver and its argument into a method adapter.
func NewMethod(rt *bridge.Runtime, fn MethodFunc, recv, arg value.Value) *Method {
	return &Method{rt: rt, fn: fn, binding: binding{kind: KindMethod, recv: recv, arg: arg}}
}

func (a *Method) Step(ctx context.Context) engine.StepResult {
	debugf("method step: %s", describe(a.arg))
	var out value.Value
	err := a.rt.With(func() error {
		var err error
		out, err = a.fn(a.recv, a.arg)
		return err
	})
	if err != nil {
		return engine.Fail(bridge.ToEngineError(errors.PhaseCall, err))
	}
	return engine.Return(out)
}

func (a *Method) Receive(res engine.StepResult) error { return a.receive(res) }

// Copy returns an independent adapter over the same method, receiver and
// argument.
func (a *Method) Copy() engine.Runnable {
	c := *a
	return &c
}

func (a *Method) Snapshot() engine.Snapshot { return a.snapshot("") }

// NewHostCallable adapts a dynamic host callable into a function adapter.
// The callable sees the argument as a wrapped host value; its result is
// classified back into an engine value and its error mapped into the engine
// taxonomy. The callable runs inside the adapter's step, which already
// holds the runtime guard.
func NewHostCallable(rt *bridge.Runtime, fn bridge.Callable, arg value.Value) *Function {
	return NewFunction(rt, func(arg value.Value) (value.Value, error) {
		out, err := fn(nil, bridge.ToHost(arg))
		if err != nil {
			return nil, bridge.ToEngineError(errors.PhaseCall, err)
		}
		return bridge.FromHost(out), nil
	}, arg)
}
