package engine

import (
	"context"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// StepStatus identifies the signal a Runnable returns from Step.
type StepStatus int

const (
	StepContinue StepStatus = iota // made progress, step again
	StepReturn                     // finished with a value
	StepError                      // finished with an error
	StepPending                    // waiting on a host future, step again later
	StepSetSelf                    // binds a receiver into the consumer
	StepSpawn                      // asks the scheduler to spawn Runnable
	StepNew                        // asks the scheduler to push Runnable
	StepReplace                    // asks the scheduler to replace the current runnable
)

var stepStatusNames = [...]string{
	StepContinue: "continue",
	StepReturn:   "return",
	StepError:    "error",
	StepPending:  "pending",
	StepSetSelf:  "set_self",
	StepSpawn:    "spawn",
	StepNew:      "new_runnable",
	StepReplace:  "replace_runnable",
}

func (s StepStatus) String() string {
	if int(s) < len(stepStatusNames) {
		return stepStatusNames[s]
	}
	return "unknown"
}

// StepResult carries a step signal and its payload. Value is set for Return
// and SetSelf, Err for Error, Runnable for Spawn, New and Replace.
type StepResult struct {
	Value    value.Value
	Err      *errors.Error
	Runnable Runnable
	Status   StepStatus
}

// Continue signals that the runnable made progress and wants another step.
func Continue() StepResult {
	return StepResult{Status: StepContinue}
}

// Return signals completion with a value.
func Return(v value.Value) StepResult {
	return StepResult{Status: StepReturn, Value: v}
}

// Fail signals completion with an error.
func Fail(err *errors.Error) StepResult {
	return StepResult{Status: StepError, Err: err}
}

// Pending signals that a host future has not resolved yet; the scheduler is
// expected to call Step again later.
func Pending() StepResult {
	return StepResult{Status: StepPending}
}

// SetSelf signals that the consumer should bind v as its receiver.
func SetSelf(v value.Value) StepResult {
	return StepResult{Status: StepSetSelf, Value: v}
}

// Runnable is the step-driven execution contract consumed by the engine
// scheduler. A scheduler holds one Runnable and repeatedly invokes Step;
// continuation values flow back through Receive.
//
// Step must return promptly: a computation that waits on a host future
// surfaces Pending instead of blocking. Step is never re-entered
// concurrently on the same instance.
type Runnable interface {
	// Step advances the computation by one unit and reports the resulting
	// signal. The context carries scheduler-owned cancellation for any host
	// async work started during the step.
	Step(ctx context.Context) StepResult

	// Receive feeds a continuation signal into the runnable, such as the
	// Return value of a completed callee. A signal the runnable cannot
	// accept is a contract violation reported as a detailed error.
	Receive(res StepResult) error

	// Copy produces an independent, replay-capable instance. In-flight host
	// futures are never carried over.
	Copy() Runnable

	// Snapshot reports diagnostic state. Observability only; it never
	// influences control flow.
	Snapshot() Snapshot
}

// Snapshot is the diagnostic view of a Runnable.
type Snapshot struct {
	Kind     string `json:"kind"`
	Argument string `json:"argument"`
	Future   string `json:"future,omitempty"`
}

// Future state labels used in snapshots of async adapters.
const (
	FutureActive = "active"
	FutureIdle   = "idle"
)
