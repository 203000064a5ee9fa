// Package bridge converts values and failures between the engine and the
// host runtime, and owns the runtime guard that serializes host calls.
//
// # Main Types
//
//   - Runtime: scoped mutual-exclusion guard for host invocations
//   - HostValue: host-side wrapper exposing the engine operation surface
//   - ForeignObject: opaque engine handle around an unclassified host object
//   - Awaitable: minimal contract for host futures polled by adapters
//
// # Conversion
//
// FromHost classifies any host object into an engine value and never fails;
// what cannot be classified becomes an opaque ForeignObject. ToHost wraps an
// engine value for the host side and never fails either.
//
//	v := bridge.FromHost([]any{1, "two", 3.0})
//	h := bridge.ToHost(v)
//	n, _ := h.Length() // 3
//
// Conversions are pure and need no guard. Only invocation of host callables
// runs under Runtime.With.
//
// # Thread Safety
//
// Runtime is safe for concurrent use. HostValue and ForeignObject are
// immutable and safe to share once created.
package bridge
