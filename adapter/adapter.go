package adapter

import (
	"context"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Adapter kind tags reported in diagnostic snapshots.
const (
	KindFunction    = "function"
	KindMethod      = "method"
	KindAsyncMethod = "async_method"
	KindCoroutine   = "coroutine"
)

// Func is a plain host function bridged synchronously. It runs to
// completion inside a single step, under the runtime guard.
type Func func(arg value.Value) (value.Value, error)

// MethodFunc is a host method bound to a receiver, bridged synchronously.
type MethodFunc func(recv, arg value.Value) (value.Value, error)

// AsyncFunc is a host function the adapter runs off the scheduler
// goroutine. It must not touch guarded host state; the context is canceled
// when the scheduler gives up on the call.
type AsyncFunc func(ctx context.Context, recv, arg value.Value) (value.Value, error)

// CoroutineFunc starts a host coroutine and hands back the awaitable that
// resolves with its result. The start itself runs under the runtime guard;
// the awaitable is polled outside it.
type CoroutineFunc func(recv, arg value.Value) (bridge.Awaitable, error)

// binding is the state every adapter shape shares: the pending argument,
// the bound receiver and the kind tag for diagnostics.
type binding struct {
	kind string
	recv value.Value
	arg  value.Value
}

// receive applies a continuation signal to the binding. A host call adapter
// only ever consumes an argument or a receiver.
func (b *binding) receive(res engine.StepResult) error {
	switch res.Status {
	case engine.StepReturn:
		b.arg = res.Value
		return nil
	case engine.StepSetSelf:
		b.recv = res.Value
		return nil
	}
	return errors.Detailedf(errors.PhaseReceive, "%s adapter cannot receive %s", b.kind, res.Status)
}

func (b *binding) snapshot(future string) engine.Snapshot {
	return engine.Snapshot{
		Kind:     b.kind,
		Argument: describe(b.arg),
		Future:   future,
	}
}

// describe renders a value for diagnostics, falling back to the type tag
// when its representation fails.
func describe(v value.Value) string {
	if v == nil {
		return "none"
	}
	if r, err := v.Repr(); err == nil {
		return r
	}
	return "<" + v.TypeName() + ">"
}
