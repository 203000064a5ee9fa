package adapter

import (
	"context"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// future is the adapter-side view of an in-flight host result.
type future struct {
	done   <-chan struct{}
	result func() (any, error)
}

func futureOf(aw bridge.Awaitable) *future {
	return &future{done: aw.Done(), result: aw.Result}
}

// ready checks the future without blocking.
func (f *future) ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// AsyncMethod adapts a host function that runs off the scheduler goroutine.
// The first step starts the call; every later step polls it exactly once
// and reports Pending until the result lands. The runtime guard is held for
// the start only, never across a Pending return.
type AsyncMethod struct {
	rt  *bridge.Runtime
	fn  AsyncFunc
	fut *future
	binding
}

// NewAsyncMethod binds fn, its receiver and its argument into an async
// adapter. The future is created lazily on the first step.
func NewAsyncMethod(rt *bridge.Runtime, fn AsyncFunc, recv, arg value.Value) *AsyncMethod {
	return &AsyncMethod{rt: rt, fn: fn, binding: binding{kind: KindAsyncMethod, recv: recv, arg: arg}}
}

func (a *AsyncMethod) Step(ctx context.Context) engine.StepResult {
	if a.fut == nil {
		fn, recv, arg := a.fn, a.recv, a.arg
		err := a.rt.With(func() error {
			a.fut = futureOf(bridge.Spawn(ctx, func(ctx context.Context) (any, error) {
				return fn(ctx, recv, arg)
			}))
			return nil
		})
		if err != nil {
			return engine.Fail(bridge.ToEngineError(errors.PhaseCall, err))
		}
		debugf("async_method started: %s", describe(a.arg))
	}
	return a.poll()
}

func (a *AsyncMethod) Receive(res engine.StepResult) error { return a.receive(res) }

// Copy returns an adapter over the same call with no in-flight future; the
// copy restarts the host call when stepped.
func (a *AsyncMethod) Copy() engine.Runnable {
	c := *a
	c.fut = nil
	return &c
}

func (a *AsyncMethod) Snapshot() engine.Snapshot {
	return a.snapshot(futureState(a.fut))
}

func (a *AsyncMethod) poll() engine.StepResult {
	return pollFuture(a.fut, func() { a.fut = nil })
}

// Coroutine adapts a host callable that hands back an awaitable when
// invoked. The invocation runs under the runtime guard on the first step;
// polling happens outside the guard like any other async adapter.
type Coroutine struct {
	rt  *bridge.Runtime
	fn  CoroutineFunc
	fut *future
	binding
}

// NewCoroutine binds fn, its receiver and its argument into a coroutine
// adapter.
func NewCoroutine(rt *bridge.Runtime, fn CoroutineFunc, recv, arg value.Value) *Coroutine {
	return &Coroutine{rt: rt, fn: fn, binding: binding{kind: KindCoroutine, recv: recv, arg: arg}}
}

func (a *Coroutine) Step(ctx context.Context) engine.StepResult {
	if a.fut == nil {
		var aw bridge.Awaitable
		err := a.rt.With(func() error {
			var err error
			aw, err = a.fn(a.recv, a.arg)
			return err
		})
		if err != nil {
			return engine.Fail(bridge.ToEngineError(errors.PhaseCall, err))
		}
		a.fut = futureOf(aw)
		debugf("coroutine started: %s", describe(a.arg))
	}
	return pollFuture(a.fut, func() { a.fut = nil })
}

func (a *Coroutine) Receive(res engine.StepResult) error { return a.receive(res) }

// Copy returns an adapter over the same coroutine call with no in-flight
// future.
func (a *Coroutine) Copy() engine.Runnable {
	c := *a
	c.fut = nil
	return &c
}

func (a *Coroutine) Snapshot() engine.Snapshot {
	return a.snapshot(futureState(a.fut))
}

// pollFuture checks fut once without blocking. On resolution it clears the
// adapter's slot through reset, classifies the host result and maps a host
// failure into the engine taxonomy.
func pollFuture(fut *future, reset func()) engine.StepResult {
	if !fut.ready() {
		return engine.Pending()
	}
	out, err := fut.result()
	reset()
	if err != nil {
		return engine.Fail(bridge.ToEngineError(errors.PhasePoll, err))
	}
	return engine.Return(bridge.FromHost(out))
}

func futureState(fut *future) string {
	if fut != nil {
		return engine.FutureActive
	}
	return engine.FutureIdle
}
