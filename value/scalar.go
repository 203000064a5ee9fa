package value

import (
	"bytes"
	"fmt"
	"strconv"
)

// Integer is a signed 64-bit engine integer.
type Integer int64

func (Integer) Kind() Kind       { return KindInteger }
func (Integer) TypeName() string { return "integer" }

func (v Integer) Repr() (string, error) { return strconv.FormatInt(int64(v), 10), nil }
func (v Integer) Text() (string, error) { return strconv.FormatInt(int64(v), 10), nil }

func (v Integer) Equals(other Value) (bool, error) {
	switch o := other.(type) {
	case Integer:
		return v == o, nil
	case Float:
		return float64(v) == float64(o), nil
	default:
		return false, compareMismatch(v, other)
	}
}

// Float is a 64-bit engine float.
type Float float64

func (Float) Kind() Kind       { return KindFloat }
func (Float) TypeName() string { return "float" }

func (v Float) Repr() (string, error) {
	return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
}

func (v Float) Text() (string, error) {
	return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
}

func (v Float) Equals(other Value) (bool, error) {
	switch o := other.(type) {
	case Float:
		return v == o, nil
	case Integer:
		return float64(v) == float64(o), nil
	default:
		return false, compareMismatch(v, other)
	}
}

// String is an immutable engine string.
type String string

func (String) Kind() Kind       { return KindString }
func (String) TypeName() string { return "string" }

func (v String) Repr() (string, error) { return strconv.Quote(string(v)), nil }
func (v String) Text() (string, error) { return string(v), nil }

func (v String) Equals(other Value) (bool, error) {
	if o, ok := other.(String); ok {
		return v == o, nil
	}
	return false, compareMismatch(v, other)
}

// Bytes is an immutable engine byte buffer. The backing slice is never
// shared: construction and Data both copy.
type Bytes struct {
	data []byte
}

// NewBytes constructs a byte buffer holding a copy of data.
func NewBytes(data []byte) Bytes {
	d := make([]byte, len(data))
	copy(d, data)
	return Bytes{data: d}
}

func (Bytes) Kind() Kind       { return KindBytes }
func (Bytes) TypeName() string { return "bytes" }

// Len reports the buffer length.
func (v Bytes) Len() int { return len(v.data) }

// Data returns a copy of the buffer contents.
func (v Bytes) Data() []byte {
	d := make([]byte, len(v.data))
	copy(d, v.data)
	return d
}

func (v Bytes) Repr() (string, error) {
	return "b" + strconv.Quote(string(v.data)), nil
}

func (v Bytes) Text() (string, error) { return string(v.data), nil }

func (v Bytes) Equals(other Value) (bool, error) {
	if o, ok := other.(Bytes); ok {
		return bytes.Equal(v.data, o.data), nil
	}
	return false, compareMismatch(v, other)
}

// Boolean is an engine boolean.
type Boolean bool

func (Boolean) Kind() Kind       { return KindBoolean }
func (Boolean) TypeName() string { return "boolean" }

func (v Boolean) Repr() (string, error) { return strconv.FormatBool(bool(v)), nil }
func (v Boolean) Text() (string, error) { return strconv.FormatBool(bool(v)), nil }

func (v Boolean) Equals(other Value) (bool, error) {
	if o, ok := other.(Boolean); ok {
		return v == o, nil
	}
	return false, compareMismatch(v, other)
}

// Null is the engine null value.
type Null struct{}

func (Null) Kind() Kind       { return KindNull }
func (Null) TypeName() string { return "null" }

func (Null) Repr() (string, error) { return "null", nil }
func (Null) Text() (string, error) { return "null", nil }

func (v Null) Equals(other Value) (bool, error) {
	if _, ok := other.(Null); ok {
		return true, nil
	}
	return false, compareMismatch(v, other)
}

// Undefined is the engine undefined value, optionally carrying a reason
// text. The reason is descriptive only and does not participate in equality;
// stdlib modules use it to document parameter placeholders.
type Undefined struct {
	reason string
}

// UndefinedOf constructs an undefined value with the given reason. An empty
// reason is allowed.
func UndefinedOf(reason string) Undefined {
	return Undefined{reason: reason}
}

func (Undefined) Kind() Kind       { return KindUndefined }
func (Undefined) TypeName() string { return "undefined" }

// Reason reports the descriptive reason, empty when none was given.
func (v Undefined) Reason() string { return v.reason }

func (v Undefined) Repr() (string, error) {
	if v.reason == "" {
		return "undefined", nil
	}
	return "undefined(" + v.reason + ")", nil
}

func (v Undefined) Text() (string, error) { return "undefined", nil }

func (v Undefined) Equals(other Value) (bool, error) {
	if _, ok := other.(Undefined); ok {
		return true, nil
	}
	return false, compareMismatch(v, other)
}

// Range is a half-open integer interval [start, end).
type Range struct {
	start, end int64
}

// NewRange constructs the interval [start, end).
func NewRange(start, end int64) Range {
	return Range{start: start, end: end}
}

func (Range) Kind() Kind       { return KindRange }
func (Range) TypeName() string { return "range" }

// Start reports the inclusive lower bound.
func (v Range) Start() int64 { return v.start }

// End reports the exclusive upper bound.
func (v Range) End() int64 { return v.end }

func (v Range) Repr() (string, error) {
	return fmt.Sprintf("%d..%d", v.start, v.end), nil
}

func (v Range) Text() (string, error) { return v.Repr() }

func (v Range) Equals(other Value) (bool, error) {
	if o, ok := other.(Range); ok {
		return v.start == o.start && v.end == o.end, nil
	}
	return false, compareMismatch(v, other)
}
