package value

import (
	"bytes"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/host-bridge/errors"
)

// The generic operations below are total over the closed variant set: every
// combination of operands either produces a value or a typed error, never a
// panic. Custom variants participate only in equality (through their own
// Equals method); every other operation rejects them like any mismatch.

// Equal applies the engine's generic equality.
func Equal(a, b Value) (bool, error) {
	return normalize(a).Equals(normalize(b))
}

// Less reports whether a orders before b.
func Less(a, b Value) (bool, error) {
	c, err := order(a, b)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Greater reports whether a orders after b.
func Greater(a, b Value) (bool, error) {
	c, err := order(a, b)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// Add produces a+b: numeric addition, or concatenation for strings, byte
// buffers and tuples.
func Add(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return x + y, nil
		case Float:
			return Float(x) + y, nil
		}
	case Float:
		switch y := b.(type) {
		case Integer:
			return x + Float(y), nil
		case Float:
			return x + y, nil
		}
	case String:
		if y, ok := b.(String); ok {
			return x + y, nil
		}
	case Bytes:
		if y, ok := b.(Bytes); ok {
			d := make([]byte, 0, len(x.data)+len(y.data))
			d = append(d, x.data...)
			d = append(d, y.data...)
			return Bytes{data: d}, nil
		}
	case Tuple:
		if y, ok := b.(Tuple); ok {
			e := make([]Value, 0, len(x.elems)+len(y.elems))
			e = append(e, x.elems...)
			e = append(e, y.elems...)
			return Tuple{elems: e}, nil
		}
	}
	return nil, binaryMismatch("add", a, b)
}

// Sub produces a-b for numeric operands.
func Sub(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return x - y, nil
		case Float:
			return Float(x) - y, nil
		}
	case Float:
		switch y := b.(type) {
		case Integer:
			return x - Float(y), nil
		case Float:
			return x - y, nil
		}
	}
	return nil, binaryMismatch("subtract", a, b)
}

// Mul produces a*b for numeric operands.
func Mul(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			return x * y, nil
		case Float:
			return Float(x) * y, nil
		}
	case Float:
		switch y := b.(type) {
		case Integer:
			return x * Float(y), nil
		case Float:
			return x * y, nil
		}
	}
	return nil, binaryMismatch("multiply", a, b)
}

// Div produces a/b. Integer division truncates; a zero divisor is an error
// for both integer and float operands.
func Div(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Integer:
		switch y := b.(type) {
		case Integer:
			if y == 0 {
				return nil, divideByZero()
			}
			return x / y, nil
		case Float:
			if y == 0 {
				return nil, divideByZero()
			}
			return Float(x) / y, nil
		}
	case Float:
		switch y := b.(type) {
		case Integer:
			if y == 0 {
				return nil, divideByZero()
			}
			return x / Float(y), nil
		case Float:
			if y == 0 {
				return nil, divideByZero()
			}
			return x / y, nil
		}
	}
	return nil, binaryMismatch("divide", a, b)
}

// Mod produces the integer remainder a%b.
func Mod(a, b Value) (Value, error) {
	x, okx := a.(Integer)
	y, oky := b.(Integer)
	if !okx || !oky {
		return nil, binaryMismatch("take the remainder of", a, b)
	}
	if y == 0 {
		return nil, divideByZero()
	}
	return x % y, nil
}

// Pow produces a raised to b. Integer bases with non-negative integer
// exponents stay integer; every other numeric combination promotes to float.
func Pow(a, b Value) (Value, error) {
	if x, ok := a.(Integer); ok {
		if y, ok := b.(Integer); ok {
			if y >= 0 {
				return ipow(x, y), nil
			}
			return Float(math.Pow(float64(x), float64(y))), nil
		}
	}
	_, xf, _, okx := numeric(a)
	_, yf, _, oky := numeric(b)
	if !okx || !oky {
		return nil, binaryMismatch("raise", a, b)
	}
	return Float(math.Pow(xf, yf)), nil
}

// And produces logical and for booleans, bitwise and for integers.
func And(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return x && y, nil
		}
	case Integer:
		if y, ok := b.(Integer); ok {
			return x & y, nil
		}
	}
	return nil, binaryMismatch("and", a, b)
}

// Or produces logical or for booleans, bitwise or for integers.
func Or(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return x || y, nil
		}
	case Integer:
		if y, ok := b.(Integer); ok {
			return x | y, nil
		}
	}
	return nil, binaryMismatch("or", a, b)
}

// Xor produces logical xor for booleans, bitwise xor for integers.
func Xor(a, b Value) (Value, error) {
	switch x := a.(type) {
	case Boolean:
		if y, ok := b.(Boolean); ok {
			return Boolean(x != y), nil
		}
	case Integer:
		if y, ok := b.(Integer); ok {
			return x ^ y, nil
		}
	}
	return nil, binaryMismatch("xor", a, b)
}

// Shl produces a shifted left by b bits.
func Shl(a, b Value) (Value, error) {
	x, y, err := shiftOperands(a, b)
	if err != nil {
		return nil, err
	}
	return x << uint64(y), nil
}

// Shr produces a shifted right by b bits, preserving the sign.
func Shr(a, b Value) (Value, error) {
	x, y, err := shiftOperands(a, b)
	if err != nil {
		return nil, err
	}
	return x >> uint64(y), nil
}

// Neg produces the numeric negation of v.
func Neg(v Value) (Value, error) {
	switch x := v.(type) {
	case Integer:
		return -x, nil
	case Float:
		return -x, nil
	}
	return nil, unaryMismatch("negate", v)
}

// Pos produces the numeric identity of v.
func Pos(v Value) (Value, error) {
	switch v.(type) {
	case Integer, Float:
		return v, nil
	}
	return nil, unaryMismatch("apply unary plus to", v)
}

// Invert produces the bitwise complement of an integer.
func Invert(v Value) (Value, error) {
	if x, ok := v.(Integer); ok {
		return ^x, nil
	}
	return nil, unaryMismatch("invert", v)
}

// Length reports the element count of a string (in runes), byte buffer,
// tuple or range.
func Length(v Value) (Value, error) {
	switch x := v.(type) {
	case String:
		return Integer(utf8.RuneCountInString(string(x))), nil
	case Bytes:
		return Integer(len(x.data)), nil
	case Tuple:
		return Integer(len(x.elems)), nil
	case Range:
		if x.end <= x.start {
			return Integer(0), nil
		}
		return Integer(x.end - x.start), nil
	}
	return nil, unaryMismatch("take the length of", v)
}

// KeyOf projects the key of a pair or named binding.
func KeyOf(v Value) (Value, error) {
	switch x := v.(type) {
	case Pair:
		return x.key, nil
	case Named:
		return x.key, nil
	}
	return nil, unaryMismatch("take the key of", v)
}

// ValueOf projects the value of a pair or named binding.
func ValueOf(v Value) (Value, error) {
	switch x := v.(type) {
	case Pair:
		return x.val, nil
	case Named:
		return x.val, nil
	}
	return nil, unaryMismatch("take the value of", v)
}

// Contains reports membership: substring for strings, subslice for byte
// buffers, element equality for tuples, interval membership for ranges.
func Contains(container, item Value) (bool, error) {
	switch c := container.(type) {
	case String:
		if s, ok := item.(String); ok {
			return strings.Contains(string(c), string(s)), nil
		}
	case Bytes:
		if b, ok := item.(Bytes); ok {
			return bytes.Contains(c.data, b.data), nil
		}
	case Tuple:
		for _, e := range c.elems {
			if elemEquals(e, item) {
				return true, nil
			}
		}
		return false, nil
	case Range:
		if i, ok := item.(Integer); ok {
			return int64(i) >= c.start && int64(i) < c.end, nil
		}
	}
	return false, errors.InvalidOperationf(errors.PhaseOp,
		"cannot test membership of %s in %s", TypeNameOf(item), TypeNameOf(container))
}

// Index accesses element i of a tuple, string, byte buffer or range.
// Negative indexes count from the end for tuples, strings and byte buffers.
func Index(v, idx Value) (Value, error) {
	i, ok := idx.(Integer)
	if !ok {
		return nil, errors.InvalidType(errors.PhaseOp, "integer", TypeNameOf(idx))
	}
	n := int64(i)
	switch x := v.(type) {
	case Tuple:
		n, err := wrapIndex(n, int64(len(x.elems)))
		if err != nil {
			return nil, err
		}
		return x.elems[n], nil
	case String:
		runes := []rune(string(x))
		n, err := wrapIndex(n, int64(len(runes)))
		if err != nil {
			return nil, err
		}
		return String(runes[n]), nil
	case Bytes:
		n, err := wrapIndex(n, int64(len(x.data)))
		if err != nil {
			return nil, err
		}
		return Integer(x.data[n]), nil
	case Range:
		length := x.end - x.start
		if length < 0 {
			length = 0
		}
		n, err := wrapIndex(n, length)
		if err != nil {
			return nil, err
		}
		return Integer(x.start + n), nil
	}
	return nil, unaryMismatch("index", v)
}

// Attr resolves an attribute by name: the value of a Named binding whose key
// matches, the value of a Pair keyed by the name, or a scan over a tuple's
// Named elements. This is how stdlib functions address their arguments.
func Attr(v Value, name string) (Value, error) {
	switch x := v.(type) {
	case Named:
		if x.Matches(name) {
			return x.val, nil
		}
		return nil, errors.NotFound(errors.PhaseOp, "attribute", name)
	case Pair:
		if k, ok := x.key.(String); ok && string(k) == name {
			return x.val, nil
		}
		return nil, errors.NotFound(errors.PhaseOp, "attribute", name)
	case Tuple:
		for _, e := range x.elems {
			if n, ok := e.(Named); ok && n.Matches(name) {
				return n.val, nil
			}
		}
		return nil, errors.NotFound(errors.PhaseOp, "attribute", name)
	}
	return nil, unaryMismatch("read an attribute of", v)
}

func normalize(v Value) Value {
	if v == nil {
		return Null{}
	}
	return v
}

func numeric(v Value) (i int64, f float64, isInt bool, ok bool) {
	switch n := v.(type) {
	case Integer:
		return int64(n), float64(n), true, true
	case Float:
		return 0, float64(n), false, true
	}
	return 0, 0, false, false
}

func order(a, b Value) (int, error) {
	ai, af, aInt, aok := numeric(a)
	bi, bf, bInt, bok := numeric(b)
	if aok && bok {
		if aInt && bInt {
			switch {
			case ai < bi:
				return -1, nil
			case ai > bi:
				return 1, nil
			}
			return 0, nil
		}
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		}
		return 0, nil
	}
	switch x := a.(type) {
	case String:
		if y, ok := b.(String); ok {
			return strings.Compare(string(x), string(y)), nil
		}
	case Bytes:
		if y, ok := b.(Bytes); ok {
			return bytes.Compare(x.data, y.data), nil
		}
	}
	return 0, errors.InvalidOperationf(errors.PhaseOp,
		"cannot order %s and %s", TypeNameOf(a), TypeNameOf(b))
}

func shiftOperands(a, b Value) (Integer, Integer, error) {
	x, okx := a.(Integer)
	y, oky := b.(Integer)
	if !okx || !oky {
		return 0, 0, binaryMismatch("shift", a, b)
	}
	if y < 0 {
		return 0, 0, errors.InvalidOperationf(errors.PhaseOp,
			"negative shift count %d", int64(y))
	}
	return x, y, nil
}

func ipow(base, exp Integer) Integer {
	result := Integer(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func wrapIndex(i, length int64) (int64, error) {
	n := i
	if n < 0 {
		n += length
	}
	if n < 0 || n >= length {
		return 0, indexOutOfRange(int(i), int(length))
	}
	return n, nil
}

func divideByZero() *errors.Error {
	return errors.InvalidOperation(errors.PhaseOp, "division by zero")
}

func indexOutOfRange(i, length int) *errors.Error {
	return errors.InvalidOperationf(errors.PhaseOp,
		"index %d out of range (length %d)", i, length)
}

func compareMismatch(a, b Value) *errors.Error {
	return errors.InvalidOperationf(errors.PhaseOp,
		"cannot compare %s and %s", TypeNameOf(a), TypeNameOf(b))
}

func binaryMismatch(op string, a, b Value) *errors.Error {
	return errors.InvalidOperationf(errors.PhaseOp,
		"cannot %s %s and %s", op, TypeNameOf(a), TypeNameOf(b))
}

func unaryMismatch(op string, v Value) *errors.Error {
	return errors.InvalidOperationf(errors.PhaseOp,
		"cannot %s %s", op, TypeNameOf(v))
}
