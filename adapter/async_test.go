package adapter

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// stepUntilDone drives r until it reports something other than Pending.
func stepUntilDone(t *testing.T, r engine.Runnable) engine.StepResult {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		res := r.Step(context.Background())
		if res.Status != engine.StepPending {
			return res
		}
		if time.Now().After(deadline) {
			t.Fatal("runnable stuck pending")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestAsyncMethodPendingThenReturn(t *testing.T) {
	rt := bridge.NewRuntime()
	release := make(chan struct{})
	a := NewAsyncMethod(rt, func(ctx context.Context, recv, arg value.Value) (value.Value, error) {
		<-release
		return value.Integer(42), nil
	}, nil, value.Null{})

	res := a.Step(context.Background())
	if res.Status != engine.StepPending {
		t.Fatalf("first step status = %s, want pending", res.Status)
	}
	if snap := a.Snapshot(); snap.Future != engine.FutureActive {
		t.Errorf("pending snapshot future = %q, want active", snap.Future)
	}

	close(release)
	final := stepUntilDone(t, a)
	if final.Status != engine.StepReturn {
		t.Fatalf("final status = %s, want return", final.Status)
	}
	if final.Value != value.Integer(42) {
		t.Errorf("result = %#v, want 42", final.Value)
	}
	if snap := a.Snapshot(); snap.Future != engine.FutureIdle {
		t.Errorf("resolved snapshot future = %q, want idle", snap.Future)
	}
}

func TestAsyncMethodError(t *testing.T) {
	rt := bridge.NewRuntime()
	hostErr := stderrors.New("timed out upstream")
	a := NewAsyncMethod(rt, func(ctx context.Context, recv, arg value.Value) (value.Value, error) {
		return nil, hostErr
	}, nil, value.Null{})

	res := stepUntilDone(t, a)
	if res.Status != engine.StepError {
		t.Fatalf("final status = %s, want error", res.Status)
	}
	if res.Err.Phase != errors.PhasePoll {
		t.Errorf("error phase = %v, want poll", res.Err.Phase)
	}
	if bridge.ToHostError(res.Err) != hostErr {
		t.Errorf("host error lost through the adapter: %v", res.Err)
	}
}

func TestAsyncMethodCopyHasNoFuture(t *testing.T) {
	rt := bridge.NewRuntime()
	var calls atomic.Int32
	release := make(chan struct{})
	a := NewAsyncMethod(rt, func(ctx context.Context, recv, arg value.Value) (value.Value, error) {
		calls.Add(1)
		<-release
		return value.Integer(7), nil
	}, nil, value.Null{})

	if res := a.Step(context.Background()); res.Status != engine.StepPending {
		t.Fatalf("first step status = %s, want pending", res.Status)
	}

	c := a.Copy().(*AsyncMethod)
	if snap := c.Snapshot(); snap.Future != engine.FutureIdle {
		t.Fatalf("copied adapter inherited a future: %q", snap.Future)
	}

	close(release)
	if res := stepUntilDone(t, a); res.Value != value.Integer(7) {
		t.Fatalf("original result = %#v", res.Value)
	}
	if res := stepUntilDone(t, c); res.Value != value.Integer(7) {
		t.Fatalf("copy result = %#v", res.Value)
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("host calls = %d, want a fresh call per adapter", got)
	}
}

func TestAsyncMethodGuardFreeWhilePending(t *testing.T) {
	rt := bridge.NewRuntime()
	release := make(chan struct{})
	defer close(release)
	a := NewAsyncMethod(rt, func(ctx context.Context, recv, arg value.Value) (value.Value, error) {
		<-release
		return value.Null{}, nil
	}, nil, value.Null{})

	if res := a.Step(context.Background()); res.Status != engine.StepPending {
		t.Fatalf("first step status = %s, want pending", res.Status)
	}

	acquired := make(chan struct{})
	go func() {
		_ = rt.With(func() error { return nil })
		close(acquired)
	}()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("runtime guard held across a pending step")
	}
}

func TestCoroutine(t *testing.T) {
	rt := bridge.NewRuntime()
	release := make(chan struct{})
	fn := func(recv, arg value.Value) (bridge.Awaitable, error) {
		return bridge.Spawn(context.Background(), func(ctx context.Context) (any, error) {
			<-release
			return "done", nil
		}), nil
	}
	a := NewCoroutine(rt, fn, nil, value.Null{})

	if res := a.Step(context.Background()); res.Status != engine.StepPending {
		t.Fatalf("first step status = %s, want pending", res.Status)
	}
	close(release)
	res := stepUntilDone(t, a)
	if res.Status != engine.StepReturn {
		t.Fatalf("final status = %s, want return", res.Status)
	}
	if res.Value != value.String("done") {
		t.Errorf("result = %#v, want classified host string", res.Value)
	}
}

func TestCoroutineStartError(t *testing.T) {
	rt := bridge.NewRuntime()
	hostErr := stderrors.New("cannot even start")
	a := NewCoroutine(rt, func(recv, arg value.Value) (bridge.Awaitable, error) {
		return nil, hostErr
	}, nil, value.Null{})

	res := a.Step(context.Background())
	if res.Status != engine.StepError {
		t.Fatalf("step status = %s, want error", res.Status)
	}
	if res.Err.Phase != errors.PhaseCall {
		t.Errorf("error phase = %v, want call", res.Err.Phase)
	}
}

func TestDriverRunsAsyncAdapter(t *testing.T) {
	rt := bridge.NewRuntime()
	a := NewAsyncMethod(rt, func(ctx context.Context, recv, arg value.Value) (value.Value, error) {
		time.Sleep(2 * time.Millisecond)
		return value.Add(recv, arg)
	}, value.Integer(40), value.Integer(2))

	d := engine.NewDriver(a)
	d.SetPollDelay(100 * time.Microsecond)
	out, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out != value.Integer(42) {
		t.Errorf("Run() = %#v, want 42", out)
	}
}
