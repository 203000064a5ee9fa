package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// DefaultPollDelay is how long the driver waits between steps after a
// Pending signal. Continue signals re-step immediately.
const DefaultPollDelay = 100 * time.Microsecond

// Driver is a minimal reference scheduler: it drives a single Runnable to
// completion, one cooperative step at a time, on the calling goroutine.
type Driver struct {
	runnable  Runnable
	pollDelay time.Duration
}

// NewDriver creates a driver over r.
func NewDriver(r Runnable) *Driver {
	return &Driver{
		runnable:  r,
		pollDelay: DefaultPollDelay,
	}
}

// SetPollDelay overrides the wait between steps after Pending.
func (d *Driver) SetPollDelay(delay time.Duration) {
	d.pollDelay = delay
}

// Run steps the runnable until it returns, fails, or ctx is done.
// ReplaceRunnable swaps the driven runnable in place; the other spawn-family
// signals are not valid at top level and terminate the run with a protocol
// error.
func (d *Driver) Run(ctx context.Context) (value.Value, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sr := d.runnable.Step(ctx)
		debugf("driver step: %s", sr.Status)

		switch sr.Status {
		case StepReturn:
			return sr.Value, nil

		case StepError:
			if sr.Err == nil {
				return nil, errors.Detailed(errors.PhaseStep, "error signal without an error")
			}
			return nil, sr.Err

		case StepContinue:
			// step again right away

		case StepPending:
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(d.pollDelay):
			}

		case StepReplace:
			if sr.Runnable == nil {
				return nil, errors.Detailed(errors.PhaseStep, "replace signal without a runnable")
			}
			d.runnable = sr.Runnable

		default:
			Logger().Warn("unexpected signal at top level",
				zap.String("status", sr.Status.String()))
			return nil, errors.Detailedf(errors.PhaseStep,
				"unexpected %s signal at top level", sr.Status)
		}
	}
}

// Run drives r to completion with a fresh driver. Convenience wrapper.
func Run(ctx context.Context, r Runnable) (value.Value, error) {
	return NewDriver(r).Run(ctx)
}
