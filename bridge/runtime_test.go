package bridge

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestRuntimeWith(t *testing.T) {
	rt := NewRuntime()
	ran := false
	if err := rt.With(func() error { ran = true; return nil }); err != nil {
		t.Fatalf("With() error: %v", err)
	}
	if !ran {
		t.Error("guarded function never ran")
	}

	boom := stderrors.New("host said no")
	if err := rt.With(func() error { return boom }); err != boom {
		t.Errorf("With() = %v, want the function's error", err)
	}
}

func TestRuntimeWithPanic(t *testing.T) {
	rt := NewRuntime()
	err := rt.With(func() error { panic("inside host") })
	if err == nil || err.Error() != "panic: inside host" {
		t.Fatalf("With() = %v, want captured panic", err)
	}
	// The guard must be released after the panic.
	if err := rt.With(func() error { return nil }); err != nil {
		t.Errorf("guard stayed locked after panic: %v", err)
	}
}

func TestRuntimeInvoke(t *testing.T) {
	rt := NewRuntime()
	fn := func(recv, arg any) (any, error) {
		return fmt.Sprintf("%v.%v", recv, arg), nil
	}
	out, err := rt.Invoke(fn, "obj", "method")
	if err != nil {
		t.Fatalf("Invoke() error: %v", err)
	}
	if out != "obj.method" {
		t.Errorf("Invoke() = %v", out)
	}

	failing := func(recv, arg any) (any, error) {
		return "partial", stderrors.New("call failed")
	}
	out, err = rt.Invoke(failing, nil, nil)
	if err == nil {
		t.Fatal("Invoke() swallowed the host error")
	}
	if out != nil {
		t.Errorf("failed Invoke() leaked a result: %v", out)
	}
}

func TestRuntimeSerializes(t *testing.T) {
	rt := NewRuntime()
	const workers = 32
	counter := 0
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = rt.With(func() error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()
	if counter != workers {
		t.Errorf("counter = %d, want %d", counter, workers)
	}
}

func TestSpawn(t *testing.T) {
	aw := Spawn(context.Background(), func(ctx context.Context) (any, error) {
		return 42, nil
	})
	select {
	case <-aw.Done():
	case <-time.After(time.Second):
		t.Fatal("awaitable never resolved")
	}
	val, err := aw.Result()
	if err != nil || val != 42 {
		t.Errorf("Result() = %v, %v", val, err)
	}
}

func TestSpawnError(t *testing.T) {
	boom := stderrors.New("async failure")
	aw := Spawn(context.Background(), func(ctx context.Context) (any, error) {
		return nil, boom
	})
	<-aw.Done()
	if _, err := aw.Result(); err != boom {
		t.Errorf("Result() error = %v, want %v", err, boom)
	}
}

func TestSpawnPanic(t *testing.T) {
	aw := Spawn(context.Background(), func(ctx context.Context) (any, error) {
		panic("async explosion")
	})
	select {
	case <-aw.Done():
	case <-time.After(time.Second):
		t.Fatal("panicking awaitable never resolved")
	}
	_, err := aw.Result()
	if err == nil || err.Error() != "panic: async explosion" {
		t.Errorf("Result() error = %v", err)
	}
}

func TestSpawnContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	aw := Spawn(ctx, func(ctx context.Context) (any, error) {
		return nil, ctx.Err()
	})
	<-aw.Done()
	if _, err := aw.Result(); !stderrors.Is(err, context.Canceled) {
		t.Errorf("Result() error = %v, want canceled", err)
	}
}
