// Package adapter turns host callables into engine runnables.
//
// # Adapter Shapes
//
//   - Function: synchronous host function, one invocation per step
//   - Method: synchronous host method bound to a receiver
//   - AsyncMethod: host function run off the scheduler goroutine
//   - Coroutine: host callable that hands back an awaitable to poll
//
// # Step Discipline
//
// Synchronous adapters complete in their first step and never report
// Pending. Asynchronous adapters create their future lazily on the first
// step, poll it exactly once per step without blocking, and report Pending
// until it resolves. The runtime guard is held while host code runs and is
// always released before a Pending result reaches the scheduler.
//
// # Continuations
//
// Adapters accept exactly two continuation signals through Receive: a
// Return replaces the pending argument, a SetSelf replaces the receiver.
// Anything else is a contract violation reported as a detailed error.
//
// # Copies
//
// Copy produces a replay-capable adapter. A copied synchronous adapter
// invokes the host again when stepped; a copied asynchronous adapter never
// inherits an in-flight future.
package adapter
