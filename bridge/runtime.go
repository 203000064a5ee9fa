package bridge

import (
	"context"
	"sync"
)

// Callable is a dynamic host callable: it takes a receiver (or nil) and one
// argument, both as host objects, and returns a host object or a host error.
type Callable func(recv, arg any) (any, error)

// Awaitable is the host-side view of an asynchronous result. Done is closed
// when the result is available; Result must be idempotent once Done is
// closed. Adapters convert awaitables into their native future type and
// poll, they never block on Done.
type Awaitable interface {
	Done() <-chan struct{}
	Result() (any, error)
}

// Runtime is the handle to the host runtime. It owns the exclusive-access
// guard under which all synchronous excursions into host code run: the
// guard is acquired at host-call entry and released before control returns
// to the scheduler, never held across a Pending return.
//
// Value conversion (FromHost, ToHost) is pure and needs no guard; only
// invocation is serialized.
type Runtime struct {
	mu sync.Mutex
}

// NewRuntime creates a host runtime handle with an unlocked guard.
func NewRuntime() *Runtime {
	return &Runtime{}
}

// With runs f while holding the guard. A panic inside f is captured as a
// host error rather than unwinding into the scheduler.
func (rt *Runtime) With(f func() error) (err error) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	defer func() {
		if p := recover(); p != nil {
			err = CapturePanic(p)
		}
	}()
	return f()
}

// Invoke calls fn with recv and arg under the guard. This is the host
// invocation primitive consumed by embedders that call host callables
// outside the adapter framework.
func (rt *Runtime) Invoke(fn Callable, recv, arg any) (any, error) {
	var out any
	err := rt.With(func() error {
		var err error
		out, err = fn(recv, arg)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// task is a goroutine-backed awaitable.
type task struct {
	done chan struct{}
	val  any
	err  error
}

func (t *task) Done() <-chan struct{} { return t.done }

func (t *task) Result() (any, error) { return t.val, t.err }

// Spawn runs f on its own goroutine and returns the awaitable that resolves
// with its result. A panic inside f resolves the awaitable with a captured
// host error.
func Spawn(ctx context.Context, f func(ctx context.Context) (any, error)) Awaitable {
	t := &task{done: make(chan struct{})}
	go func() {
		defer close(t.done)
		defer func() {
			if p := recover(); p != nil {
				t.val, t.err = nil, CapturePanic(p)
			}
		}()
		t.val, t.err = f(ctx)
	}()
	return t
}
