// Package engine defines the step-driven execution contract between the
// scheduler and the foreign-call adapters, and a minimal driver that pumps
// it.
//
// A Runnable advances through repeated Step calls, each returning a
// StepResult signal: Continue, Return, Error, Pending, SetSelf, or one of
// the spawn family. Call adapters only ever produce Return, Error and
// Pending; Pending means a host future has not resolved and the caller
// should step again later. Continuation values flow back into a Runnable
// through Receive, and Copy forks an independent replay-capable instance.
//
// Driver is the reference pump: it loops on Step, yields briefly on
// Pending, swaps the runnable on ReplaceRunnable, and surfaces Return and
// Error as its result. Real engine schedulers implement the same loop with
// their own fairness and cancellation policies.
package engine
