package adapter

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// sumTuple adds up an integer tuple argument.
func sumTuple(arg value.Value) (value.Value, error) {
	t, ok := arg.(value.Tuple)
	if !ok {
		return nil, errors.InvalidType(errors.PhaseCall, "tuple", value.TypeNameOf(arg))
	}
	total := value.Value(value.Integer(0))
	for _, e := range t.Values() {
		var err error
		total, err = value.Add(total, e)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}

func TestFunctionReturnsOnFirstStep(t *testing.T) {
	rt := bridge.NewRuntime()
	a := NewFunction(rt, sumTuple, value.NewTuple(value.Integer(2), value.Integer(3)))

	res := a.Step(context.Background())
	if res.Status != engine.StepReturn {
		t.Fatalf("first step status = %s, want return", res.Status)
	}
	if res.Value != value.Integer(5) {
		t.Errorf("result = %#v, want 5", res.Value)
	}
}

func TestFunctionHostError(t *testing.T) {
	rt := bridge.NewRuntime()
	hostErr := stderrors.New("backend gone")
	a := NewFunction(rt, func(arg value.Value) (value.Value, error) {
		return nil, hostErr
	}, value.Null{})

	res := a.Step(context.Background())
	if res.Status != engine.StepError {
		t.Fatalf("step status = %s, want error", res.Status)
	}
	if res.Err.Kind != errors.KindCustomValue {
		t.Errorf("error kind = %v, want boxed custom value", res.Err.Kind)
	}
	if bridge.ToHostError(res.Err) != hostErr {
		t.Errorf("boxed error lost identity: %v", res.Err)
	}
}

func TestFunctionStructuredErrorPassthrough(t *testing.T) {
	rt := bridge.NewRuntime()
	structured := errors.InvalidOperation(errors.PhaseCall, "refused")
	a := NewFunction(rt, func(arg value.Value) (value.Value, error) {
		return nil, structured
	}, value.Null{})

	res := a.Step(context.Background())
	if res.Err != structured {
		t.Errorf("structured error was re-boxed: %v", res.Err)
	}
}

func TestFunctionPanicBecomesError(t *testing.T) {
	rt := bridge.NewRuntime()
	a := NewFunction(rt, func(arg value.Value) (value.Value, error) {
		panic("host blew up")
	}, value.Null{})

	res := a.Step(context.Background())
	if res.Status != engine.StepError {
		t.Fatalf("step status = %s, want error", res.Status)
	}
	if res.Err == nil || res.Err.Detail != "panic: host blew up" {
		t.Errorf("error = %v, want captured panic detail", res.Err)
	}
}

func TestFunctionCopyReplays(t *testing.T) {
	rt := bridge.NewRuntime()
	calls := 0
	a := NewFunction(rt, func(arg value.Value) (value.Value, error) {
		calls++
		return value.Integer(int64(calls)), nil
	}, value.Null{})

	if res := a.Step(context.Background()); res.Value != value.Integer(1) {
		t.Fatalf("first run = %#v", res.Value)
	}
	c := a.Copy()
	if res := c.Step(context.Background()); res.Value != value.Integer(2) {
		t.Fatalf("copied run = %#v", res.Value)
	}
	if calls != 2 {
		t.Errorf("host calls = %d, want one per stepped adapter", calls)
	}
}

func TestMethodUsesReceiver(t *testing.T) {
	rt := bridge.NewRuntime()
	join := func(recv, arg value.Value) (value.Value, error) {
		return value.Add(recv, arg)
	}
	a := NewMethod(rt, join, value.String("left:"), value.String("right"))

	res := a.Step(context.Background())
	if res.Status != engine.StepReturn {
		t.Fatalf("step status = %s, want return", res.Status)
	}
	if res.Value != value.String("left:right") {
		t.Errorf("result = %#v", res.Value)
	}
}

func TestReceiveContinuations(t *testing.T) {
	rt := bridge.NewRuntime()
	join := func(recv, arg value.Value) (value.Value, error) {
		return value.Add(recv, arg)
	}
	a := NewMethod(rt, join, value.String("a"), value.String("b"))

	if err := a.Receive(engine.Return(value.String("B"))); err != nil {
		t.Fatalf("Receive(return) error: %v", err)
	}
	if err := a.Receive(engine.SetSelf(value.String("A"))); err != nil {
		t.Fatalf("Receive(set_self) error: %v", err)
	}
	res := a.Step(context.Background())
	if res.Value != value.String("AB") {
		t.Errorf("result after continuations = %#v, want AB", res.Value)
	}
}

func TestReceiveRejectsOtherSignals(t *testing.T) {
	rt := bridge.NewRuntime()
	a := NewFunction(rt, sumTuple, value.Null{})
	violations := []engine.StepResult{
		engine.Continue(),
		engine.Pending(),
		engine.Fail(errors.Detailed(errors.PhaseStep, "x")),
		{Status: engine.StepSpawn},
		{Status: engine.StepNew},
		{Status: engine.StepReplace},
	}
	for _, res := range violations {
		err := a.Receive(res)
		if err == nil {
			t.Fatalf("Receive(%s) accepted", res.Status)
		}
		if !errors.IsKind(err, errors.KindDetailed) {
			t.Errorf("Receive(%s) error = %v, want detailed", res.Status, err)
		}
	}
}

func TestHostCallable(t *testing.T) {
	rt := bridge.NewRuntime()
	double := func(recv, arg any) (any, error) {
		h := arg.(*bridge.HostValue)
		n, err := h.Length()
		if err != nil {
			return nil, err
		}
		return n * 2, nil
	}
	a := NewHostCallable(rt, double, value.NewTuple(value.Integer(1), value.Integer(2), value.Integer(3)))

	res := a.Step(context.Background())
	if res.Status != engine.StepReturn {
		t.Fatalf("step status = %s, want return", res.Status)
	}
	if res.Value != value.Integer(6) {
		t.Errorf("result = %#v, want 6", res.Value)
	}
}

func TestHostCallableError(t *testing.T) {
	rt := bridge.NewRuntime()
	hostErr := stderrors.New("not today")
	a := NewHostCallable(rt, func(recv, arg any) (any, error) {
		return nil, hostErr
	}, value.Null{})

	res := a.Step(context.Background())
	if res.Status != engine.StepError {
		t.Fatalf("step status = %s, want error", res.Status)
	}
	if bridge.ToHostError(res.Err) != hostErr {
		t.Errorf("host error lost through the adapter: %v", res.Err)
	}
}

func TestSyncSnapshot(t *testing.T) {
	rt := bridge.NewRuntime()
	a := NewFunction(rt, sumTuple, value.NewTuple(value.Integer(7)))
	snap := a.Snapshot()
	if snap.Kind != KindFunction {
		t.Errorf("snapshot kind = %q", snap.Kind)
	}
	if snap.Argument != "(7)" {
		t.Errorf("snapshot argument = %q", snap.Argument)
	}
	if snap.Future != "" {
		t.Errorf("sync snapshot reports future state %q", snap.Future)
	}

	m := NewMethod(rt, func(recv, arg value.Value) (value.Value, error) { return arg, nil }, nil, nil)
	if snap := m.Snapshot(); snap.Kind != KindMethod || snap.Argument != "none" {
		t.Errorf("method snapshot = %+v", snap)
	}
}
