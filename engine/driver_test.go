package engine

import (
	"context"
	"testing"
	"time"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// scripted replays a fixed sequence of step results.
type scripted struct {
	results []StepResult
	pos     int
}

func (s *scripted) Step(_ context.Context) StepResult {
	if s.pos >= len(s.results) {
		return Fail(errors.Detailed(errors.PhaseStep, "stepped past the script"))
	}
	r := s.results[s.pos]
	s.pos++
	return r
}

func (s *scripted) Receive(StepResult) error { return nil }

func (s *scripted) Copy() Runnable {
	cp := *s
	return &cp
}

func (s *scripted) Snapshot() Snapshot {
	return Snapshot{Kind: "scripted"}
}

func TestDriverReturn(t *testing.T) {
	r := &scripted{results: []StepResult{
		Continue(),
		Continue(),
		Return(value.Integer(7)),
	}}
	got, err := Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != value.Integer(7) {
		t.Errorf("Run() = %v, want 7", got)
	}
}

func TestDriverPending(t *testing.T) {
	d := NewDriver(&scripted{results: []StepResult{
		Pending(),
		Pending(),
		Return(value.String("done")),
	}})
	d.SetPollDelay(time.Microsecond)
	got, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != value.String("done") {
		t.Errorf("Run() = %v, want done", got)
	}
}

func TestDriverError(t *testing.T) {
	want := errors.InvalidOperation(errors.PhaseOp, "boom")
	r := &scripted{results: []StepResult{Fail(want)}}
	_, err := Run(context.Background(), r)
	if err != want {
		t.Errorf("Run() error = %v, want %v", err, want)
	}
}

func TestDriverErrorWithoutPayload(t *testing.T) {
	r := &scripted{results: []StepResult{{Status: StepError}}}
	_, err := Run(context.Background(), r)
	if !errors.IsKind(err, errors.KindDetailed) {
		t.Errorf("Run() error = %v, want detailed", err)
	}
}

func TestDriverReplace(t *testing.T) {
	replacement := &scripted{results: []StepResult{Return(value.Integer(42))}}
	r := &scripted{results: []StepResult{
		{Status: StepReplace, Runnable: replacement},
	}}
	got, err := Run(context.Background(), r)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got != value.Integer(42) {
		t.Errorf("Run() = %v, want 42", got)
	}
}

func TestDriverReplaceWithoutRunnable(t *testing.T) {
	r := &scripted{results: []StepResult{{Status: StepReplace}}}
	_, err := Run(context.Background(), r)
	if !errors.IsKind(err, errors.KindDetailed) {
		t.Errorf("Run() error = %v, want detailed", err)
	}
}

func TestDriverRejectsTopLevelSetSelf(t *testing.T) {
	r := &scripted{results: []StepResult{SetSelf(value.Null{})}}
	_, err := Run(context.Background(), r)
	if !errors.IsKind(err, errors.KindDetailed) {
		t.Errorf("Run() error = %v, want detailed", err)
	}
}

func TestDriverCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &scripted{results: []StepResult{Return(value.Null{})}}
	_, err := Run(ctx, r)
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestDriverCancelWhilePending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := NewDriver(&scripted{results: []StepResult{
		Pending(),
		Pending(),
	}})
	d.SetPollDelay(50 * time.Millisecond)
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	_, err := d.Run(ctx)
	if err != context.Canceled {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
