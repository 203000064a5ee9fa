package bridge

import (
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// HostValue is the thin host-side wrapper around an engine value. It
// exposes the engine's full operation surface to host code: classification
// predicates, typed extraction, textual conversion, structural access and
// the operator set. Every operation delegates to the engine and passes its
// typed errors through; none of them mutates the wrapped value.
type HostValue struct {
	v value.Value
}

// ToHost wraps an engine value for the host side. It always succeeds; a nil
// value wraps as engine null.
func ToHost(v value.Value) *HostValue {
	if v == nil {
		v = value.Null{}
	}
	return &HostValue{v: v}
}

// Unwrap returns the wrapped engine value.
func (h *HostValue) Unwrap() value.Value { return h.v }

// TypeName reports the engine type tag of the wrapped value.
func (h *HostValue) TypeName() string { return h.v.TypeName() }

// Classification predicates, one per variant.

func (h *HostValue) IsInteger() bool   { return h.v.Kind() == value.KindInteger }
func (h *HostValue) IsFloat() bool     { return h.v.Kind() == value.KindFloat }
func (h *HostValue) IsString() bool    { return h.v.Kind() == value.KindString }
func (h *HostValue) IsBytes() bool     { return h.v.Kind() == value.KindBytes }
func (h *HostValue) IsBoolean() bool   { return h.v.Kind() == value.KindBoolean }
func (h *HostValue) IsNull() bool      { return h.v.Kind() == value.KindNull }
func (h *HostValue) IsUndefined() bool { return h.v.Kind() == value.KindUndefined }
func (h *HostValue) IsRange() bool     { return h.v.Kind() == value.KindRange }
func (h *HostValue) IsTuple() bool     { return h.v.Kind() == value.KindTuple }
func (h *HostValue) IsPair() bool      { return h.v.Kind() == value.KindPair }
func (h *HostValue) IsNamed() bool     { return h.v.Kind() == value.KindNamed }
func (h *HostValue) IsCustom() bool    { return h.v.Kind() == value.KindCustom }

// Typed extraction. Each fails with a typed error when the wrapped value
// does not carry the requested tag.

func (h *HostValue) AsInteger() (int64, error) {
	if i, ok := h.v.(value.Integer); ok {
		return int64(i), nil
	}
	return 0, h.typeErr("integer")
}

func (h *HostValue) AsFloat() (float64, error) {
	if f, ok := h.v.(value.Float); ok {
		return float64(f), nil
	}
	return 0, h.typeErr("float")
}

func (h *HostValue) AsString() (string, error) {
	if s, ok := h.v.(value.String); ok {
		return string(s), nil
	}
	return "", h.typeErr("string")
}

func (h *HostValue) AsBytes() ([]byte, error) {
	if b, ok := h.v.(value.Bytes); ok {
		return b.Data(), nil
	}
	return nil, h.typeErr("bytes")
}

func (h *HostValue) AsBoolean() (bool, error) {
	if b, ok := h.v.(value.Boolean); ok {
		return bool(b), nil
	}
	return false, h.typeErr("boolean")
}

func (h *HostValue) AsRange() (start, end int64, err error) {
	if r, ok := h.v.(value.Range); ok {
		return r.Start(), r.End(), nil
	}
	return 0, 0, h.typeErr("range")
}

func (h *HostValue) AsTuple() ([]*HostValue, error) {
	t, ok := h.v.(value.Tuple)
	if !ok {
		return nil, h.typeErr("tuple")
	}
	elems := t.Values()
	out := make([]*HostValue, len(elems))
	for i, e := range elems {
		out[i] = ToHost(e)
	}
	return out, nil
}

func (h *HostValue) AsPair() (key, val *HostValue, err error) {
	if p, ok := h.v.(value.Pair); ok {
		return ToHost(p.Key()), ToHost(p.Value()), nil
	}
	return nil, nil, h.typeErr("pair")
}

func (h *HostValue) AsNamed() (key, val *HostValue, err error) {
	if n, ok := h.v.(value.Named); ok {
		return ToHost(n.Key()), ToHost(n.Value()), nil
	}
	return nil, nil, h.typeErr("named")
}

// AsForeign unwraps an opaque handle to its host object.
func (h *HostValue) AsForeign() (any, error) {
	if f, ok := h.v.(*ForeignObject); ok {
		return f.Object(), nil
	}
	return nil, h.typeErr("foreign object")
}

// Textual conversion.

// Repr returns the engine debug representation.
func (h *HostValue) Repr() (string, error) { return h.v.Repr() }

// Text returns the engine display string.
func (h *HostValue) Text() (string, error) { return h.v.Text() }

// String is a best-effort fmt.Stringer for host-side debugging; failures
// collapse to the type tag.
func (h *HostValue) String() string {
	if s, err := h.v.Repr(); err == nil {
		return s
	}
	return "<" + h.v.TypeName() + ">"
}

// Structural operations.

// Length reports the element count of the wrapped value.
func (h *HostValue) Length() (int64, error) {
	n, err := value.Length(h.v)
	if err != nil {
		return 0, err
	}
	return int64(n.(value.Integer)), nil
}

// Key projects the key of a pair or named binding.
func (h *HostValue) Key() (*HostValue, error) {
	k, err := value.KeyOf(h.v)
	if err != nil {
		return nil, err
	}
	return ToHost(k), nil
}

// Value projects the value of a pair or named binding.
func (h *HostValue) Value() (*HostValue, error) {
	v, err := value.ValueOf(h.v)
	if err != nil {
		return nil, err
	}
	return ToHost(v), nil
}

// Contains tests membership of a host object in the wrapped value.
func (h *HostValue) Contains(item any) (bool, error) {
	return value.Contains(h.v, FromHost(item))
}

// Index accesses an element by a host index value.
func (h *HostValue) Index(i any) (*HostValue, error) {
	res, err := value.Index(h.v, FromHost(i))
	if err != nil {
		return nil, err
	}
	return ToHost(res), nil
}

// Attr resolves an attribute by name.
func (h *HostValue) Attr(name string) (*HostValue, error) {
	res, err := value.Attr(h.v, name)
	if err != nil {
		return nil, err
	}
	return ToHost(res), nil
}

// SetAttr always fails: engine values are immutable. The error names the
// attribute.
func (h *HostValue) SetAttr(name string, _ any) error {
	return errors.Immutable(name)
}

// Operator set. Operands are host objects, converted before delegating to
// the engine operation.

func (h *HostValue) Add(other any) (*HostValue, error)  { return h.binary(value.Add, other) }
func (h *HostValue) Sub(other any) (*HostValue, error)  { return h.binary(value.Sub, other) }
func (h *HostValue) Mul(other any) (*HostValue, error)  { return h.binary(value.Mul, other) }
func (h *HostValue) Div(other any) (*HostValue, error)  { return h.binary(value.Div, other) }
func (h *HostValue) Mod(other any) (*HostValue, error)  { return h.binary(value.Mod, other) }
func (h *HostValue) Pow(other any) (*HostValue, error)  { return h.binary(value.Pow, other) }
func (h *HostValue) And(other any) (*HostValue, error)  { return h.binary(value.And, other) }
func (h *HostValue) Or(other any) (*HostValue, error)   { return h.binary(value.Or, other) }
func (h *HostValue) Xor(other any) (*HostValue, error)  { return h.binary(value.Xor, other) }
func (h *HostValue) Shl(other any) (*HostValue, error)  { return h.binary(value.Shl, other) }
func (h *HostValue) Shr(other any) (*HostValue, error)  { return h.binary(value.Shr, other) }

func (h *HostValue) Neg() (*HostValue, error)    { return h.unary(value.Neg) }
func (h *HostValue) Pos() (*HostValue, error)    { return h.unary(value.Pos) }
func (h *HostValue) Invert() (*HostValue, error) { return h.unary(value.Invert) }

// Less reports whether the wrapped value orders before other.
func (h *HostValue) Less(other any) (bool, error) {
	return value.Less(h.v, FromHost(other))
}

// Greater reports whether the wrapped value orders after other.
func (h *HostValue) Greater(other any) (bool, error) {
	return value.Greater(h.v, FromHost(other))
}

// Equal applies the engine's generic equality, coercing a mismatched-variant
// error to false the way host equality protocols expect.
func (h *HostValue) Equal(other any) bool {
	eq, err := value.Equal(h.v, FromHost(other))
	if err != nil {
		return false
	}
	return eq
}

func (h *HostValue) binary(op func(a, b value.Value) (value.Value, error), other any) (*HostValue, error) {
	res, err := op(h.v, FromHost(other))
	if err != nil {
		return nil, err
	}
	return ToHost(res), nil
}

func (h *HostValue) unary(op func(v value.Value) (value.Value, error)) (*HostValue, error) {
	res, err := op(h.v)
	if err != nil {
		return nil, err
	}
	return ToHost(res), nil
}

func (h *HostValue) typeErr(want string) *errors.Error {
	return errors.InvalidType(errors.PhaseConvert, want, h.v.TypeName())
}

// Factories. Components are host objects converted recursively with
// FromHost.

// NewPair builds an engine pair from host components.
func NewPair(key, val any) *HostValue {
	return ToHost(value.NewPair(FromHost(key), FromHost(val)))
}

// NewNamed builds an engine named binding from host components.
func NewNamed(key, val any) *HostValue {
	return ToHost(value.NewNamed(FromHost(key), FromHost(val)))
}

// NewTuple builds an engine tuple from host components.
func NewTuple(items ...any) *HostValue {
	elems := make([]value.Value, len(items))
	for i, it := range items {
		elems[i] = FromHost(it)
	}
	return ToHost(value.NewTuple(elems...))
}
