// Package errors provides structured error types for the host-bridge library.
//
// Errors are categorized by Phase (where in the bridge the error occurred)
// and Kind (the taxonomy consumed by the engine): invalid_operation,
// invalid_type, detailed, custom_value and the pending control signal.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConvert, errors.KindInvalidType).
//		TypeName("tuple").
//		Detail("expected integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidType(errors.PhaseOp, "integer", "tuple")
//	err := errors.Immutable("name")
//
// Pending is deliberately modeled as an error value so that it can travel
// through the same channels as failures; callers distinguish it with
// IsPending. All errors implement the standard error interface and support
// errors.Is/As.
package errors
