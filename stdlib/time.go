package stdlib

import (
	"context"
	"time"

	"github.com/wippyai/host-bridge/adapter"
	"github.com/wippyai/host-bridge/bridge"
	"github.com/wippyai/host-bridge/engine"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Time builds the clock and sleep module. The sleep_* entries block the
// calling step; async_sleep and sleep yield to the scheduler instead.
func Time() *Module {
	m := NewModule("time")

	m.Func("timestamp", Params(), timeTimestamp)
	m.Func("timestamp_millis", Params(), timeTimestampMillis)
	m.Func("timestamp_nanos", Params(), timeTimestampNanos)
	m.Func("sleep_seconds", Params(
		value.NamedOf("seconds", value.Integer(1)),
	), blockingSleep("seconds", time.Second))
	m.Func("sleep_millis", Params(
		value.NamedOf("millis", value.Integer(1000)),
	), blockingSleep("millis", time.Millisecond))
	m.Func("sleep_micros", Params(
		value.NamedOf("micros", value.Integer(1000)),
	), blockingSleep("micros", time.Microsecond))
	m.Func("now_utc", Params(), timeNowUTC)
	m.Func("format_time", Params(
		value.NamedOf("timestamp", value.Integer(0)),
	), timeFormatTime)
	m.Func("time_diff", Params(
		value.NamedOf("start", value.Integer(0)),
		value.NamedOf("end", value.Integer(0)),
	), timeDiff)
	m.RunnableFunc("async_sleep", Params(
		value.NamedOf("millis", value.Integer(1000)),
	), func(rt *bridge.Runtime, arg value.Value) engine.Runnable {
		return NewSleep(arg)
	})
	m.AsyncFunc("sleep", Params(
		value.NamedOf("millis", value.Integer(1000)),
	), timeSleep)

	return m
}

const utcLayout = "2006-01-02 15:04:05 UTC"

func timeTimestamp(value.Value) (value.Value, error) {
	return value.Integer(time.Now().Unix()), nil
}

func timeTimestampMillis(value.Value) (value.Value, error) {
	return value.Integer(time.Now().UnixMilli()), nil
}

func timeTimestampNanos(value.Value) (value.Value, error) {
	return value.Integer(time.Now().UnixNano()), nil
}

// blockingSleep builds a sleep entry over the given unit. It holds the
// runtime guard for the whole duration, so other adapters stall with it.
func blockingSleep(name string, unit time.Duration) adapter.Func {
	return func(arg value.Value) (value.Value, error) {
		n, err := IntArg(arg, name)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.Detailed(errors.PhaseCall, "sleep duration cannot be negative")
		}
		time.Sleep(time.Duration(n) * unit)
		return value.Null{}, nil
	}
}

func timeNowUTC(value.Value) (value.Value, error) {
	return value.String(time.Now().UTC().Format(utcLayout)), nil
}

func timeFormatTime(arg value.Value) (value.Value, error) {
	ts, err := IntArg(arg, "timestamp")
	if err != nil {
		return nil, err
	}
	if ts < 0 {
		return nil, errors.Detailed(errors.PhaseCall, "timestamp cannot be negative")
	}
	return value.String(time.Unix(ts, 0).UTC().Format(utcLayout)), nil
}

func timeDiff(arg value.Value) (value.Value, error) {
	start, err := IntArg(arg, "start")
	if err != nil {
		return nil, err
	}
	end, err := IntArg(arg, "end")
	if err != nil {
		return nil, err
	}
	return value.Integer(end - start), nil
}

func timeSleep(ctx context.Context, _, arg value.Value) (value.Value, error) {
	millis, err := IntArg(arg, "millis")
	if err != nil {
		return nil, err
	}
	if millis < 0 {
		return nil, errors.Detailed(errors.PhaseCall, "sleep duration cannot be negative")
	}
	timer := time.NewTimer(time.Duration(millis) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return value.Null{}, nil
	}
}

// Sleep is a timer runnable. It arms its deadline on the first step,
// reports Pending until the deadline passes and then returns null. Copies
// share the armed deadline, matching elapsed-time semantics.
type Sleep struct {
	arg      value.Value
	deadline time.Time
}

// NewSleep builds a timer from an argument carrying a "millis" attribute.
func NewSleep(arg value.Value) *Sleep {
	return &Sleep{arg: arg}
}

func (s *Sleep) Step(context.Context) engine.StepResult {
	if s.deadline.IsZero() {
		millis, err := IntArg(s.arg, "millis")
		if err != nil {
			return engine.Fail(bridge.ToEngineError(errors.PhaseCall, err))
		}
		if millis < 0 {
			return engine.Fail(errors.Detailed(errors.PhaseCall, "sleep duration cannot be negative"))
		}
		s.deadline = time.Now().Add(time.Duration(millis) * time.Millisecond)
	}
	if time.Now().Before(s.deadline) {
		return engine.Pending()
	}
	return engine.Return(value.Null{})
}

// Receive ignores every continuation signal. A timer has no callee.
func (s *Sleep) Receive(engine.StepResult) error { return nil }

func (s *Sleep) Copy() engine.Runnable {
	c := *s
	return &c
}

func (s *Sleep) Snapshot() engine.Snapshot {
	state := engine.FutureIdle
	if !s.deadline.IsZero() {
		state = engine.FutureActive
	}
	arg := "none"
	if s.arg != nil {
		if r, err := s.arg.Repr(); err == nil {
			arg = r
		}
	}
	return engine.Snapshot{Kind: "async_sleep", Argument: arg, Future: state}
}
