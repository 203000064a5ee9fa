package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the bridge the error occurred
type Phase string

const (
	PhaseConvert  Phase = "convert"  // host <-> engine marshalling
	PhaseCall     Phase = "call"     // host callable invocation
	PhaseReceive  Phase = "receive"  // adapter signal intake
	PhasePoll     Phase = "poll"     // future polling
	PhaseStep     Phase = "step"     // scheduler stepping
	PhaseOp       Phase = "op"       // engine value operations
	PhaseRegistry Phase = "registry" // library registration and lookup
	PhaseLoad     Phase = "load"     // foreign module loading
)

// Kind categorizes the error
type Kind string

const (
	// KindInvalidOperation marks an operation applied to a value of the
	// wrong shape, including every attempt to mutate an engine value.
	KindInvalidOperation Kind = "invalid_operation"

	// KindInvalidType marks an engine value that did not carry the tag an
	// operation required.
	KindInvalidType Kind = "invalid_type"

	// KindDetailed marks an adapter protocol violation, such as an
	// unexpected signal delivered to Receive.
	KindDetailed Kind = "detailed"

	// KindCustomValue carries an opaque foreign exception boxed as an
	// engine value in the Value field.
	KindCustomValue Kind = "custom_value"

	// KindPending is a control signal, not a failure: the call has not yet
	// produced a result and Step must be invoked again later.
	KindPending Kind = "pending"

	KindNotFound Kind = "not_found"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	TypeName string
	Attr     string
	Detail   string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Attr != "" {
		b.WriteString(" at attribute ")
		b.WriteString(e.Attr)
	}

	if e.TypeName != "" {
		b.WriteString(": value of type ")
		b.WriteString(e.TypeName)
	}

	if e.Detail != "" {
		if e.TypeName != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsPending reports whether err is the Pending control signal
func IsPending(err error) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == KindPending
	}
	return false
}

// IsKind reports whether err is a bridge error of the given kind
func IsKind(err error, kind Kind) bool {
	if e, ok := err.(*Error); ok {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// TypeName sets the engine type tag involved
func (b *Builder) TypeName(t string) *Builder {
	b.err.TypeName = t
	return b
}

// Attr sets the attribute name involved
func (b *Builder) Attr(name string) *Builder {
	b.err.Attr = name
	return b
}

// Value sets the offending or boxed value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidOperation creates an invalid operation error
func InvalidOperation(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOperation,
		Detail: detail,
	}
}

// InvalidOperationf creates an invalid operation error with a formatted detail
func InvalidOperationf(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidOperation,
		Detail: fmt.Sprintf(format, args...),
	}
}

// InvalidType creates a tag mismatch error
func InvalidType(phase Phase, want, got string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidType,
		TypeName: got,
		Detail:   fmt.Sprintf("expected %s", want),
	}
}

// Detailed creates a protocol violation error
func Detailed(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetailed,
		Detail: detail,
	}
}

// Detailedf creates a protocol violation error with a formatted detail
func Detailedf(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetailed,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Custom boxes a foreign exception value as an engine error
func Custom(phase Phase, value any) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindCustomValue,
		Value: value,
	}
}

// Pending creates the Pending control signal
func Pending() *Error {
	return &Error{
		Phase: PhasePoll,
		Kind:  KindPending,
	}
}

// Immutable creates the error raised by every attribute assignment on an
// engine value
func Immutable(attr string) *Error {
	return &Error{
		Phase:  PhaseOp,
		Kind:   KindInvalidOperation,
		Attr:   attr,
		Detail: fmt.Sprintf("cannot set attribute %q on an immutable value", attr),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
