package stdlib

import (
	gobytes "bytes"
	"unicode/utf8"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Bytes builds the byte buffer module. Buffers are immutable: mutating
// operations return a fresh buffer and leave the input untouched.
func Bytes() *Module {
	m := NewModule("bytes")

	m.Func("length", Params(
		Param("bytes", "Bytes to get length"),
	), bytesLength)
	m.Func("concat", Params(
		Param("a", "First bytes to concatenate"),
		Param("b", "Second bytes to concatenate"),
	), bytesConcat)
	m.Func("slice", Params(
		Param("bytes", "Bytes to slice"),
		Param("start", "Start index"),
		Param("length", "Length of slice"),
	), bytesSlice)
	m.Func("get_at", Params(
		Param("bytes", "Bytes to get from"),
		Param("index", "Index to get byte from"),
	), bytesGetAt)
	m.Func("set_at", Params(
		Param("bytes", "Bytes to modify"),
		Param("index", "Index to set byte at"),
		Param("value", "Byte value to set (0-255)"),
	), bytesSetAt)
	m.Func("index_of", Params(
		Param("bytes", "Bytes to search in"),
		Param("pattern", "Byte pattern to find"),
	), bytesIndexOf)
	m.Func("contains", Params(
		Param("bytes", "Bytes to search within"),
		Param("pattern", "Byte pattern to search for"),
	), bytesContains)
	m.Func("starts_with", Params(
		Param("bytes", "Bytes to check"),
		Param("pattern", "Pattern to check for"),
	), bytesStartsWith)
	m.Func("ends_with", Params(
		Param("bytes", "Bytes to check"),
		Param("pattern", "Pattern to check for"),
	), bytesEndsWith)
	m.Func("repeat", Params(
		Param("bytes", "Bytes to repeat"),
		Param("count", "Number of times to repeat"),
	), bytesRepeat)
	m.Func("is_empty", Params(
		Param("bytes", "Bytes to check if empty"),
	), bytesIsEmpty)
	m.Func("reverse", Params(
		Param("bytes", "Bytes to reverse"),
	), bytesReverse)
	m.Func("to_string", Params(
		Param("bytes", "Bytes to convert to string"),
	), bytesToString)
	m.Func("from_string", Params(
		Param("string", "String to convert to bytes"),
	), bytesFromString)
	m.Func("pad_left", Params(
		Param("bytes", "Bytes to pad"),
		Param("length", "Target length"),
		Param("pad_byte", "Byte value to pad with (0-255)"),
	), bytesPadLeft)
	m.Func("pad_right", Params(
		Param("bytes", "Bytes to pad"),
		Param("length", "Target length"),
		Param("pad_byte", "Byte value to pad with (0-255)"),
	), bytesPadRight)
	m.Func("from_integers", Params(
		Param("list", "Tuple of integers (0-255) to convert"),
	), bytesFromIntegers)
	m.Func("to_integers", Params(
		Param("bytes", "Bytes to convert to integers"),
	), bytesToIntegers)

	return m
}

func bytesLength(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	return value.Integer(b.Len()), nil
}

func bytesConcat(arg value.Value) (value.Value, error) {
	a, err := BytesArg(arg, "a")
	if err != nil {
		return nil, err
	}
	b, err := BytesArg(arg, "b")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, a.Len()+b.Len())
	out = append(out, a.Data()...)
	out = append(out, b.Data()...)
	return value.NewBytes(out), nil
}

func bytesSlice(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	start, err := IntArg(arg, "start")
	if err != nil {
		return nil, err
	}
	length, err := IntArg(arg, "length")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	if start < 0 || length <= 0 || start >= int64(len(data)) {
		return value.NewBytes(nil), nil
	}
	end := start + length
	if end > int64(len(data)) {
		end = int64(len(data))
	}
	return value.NewBytes(data[start:end]), nil
}

func bytesGetAt(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	idx, err := IntArg(arg, "index")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	if idx < 0 || idx >= int64(len(data)) {
		return nil, errors.InvalidOperation(errors.PhaseCall, "index out of bounds")
	}
	return value.Integer(data[idx]), nil
}

func bytesSetAt(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	idx, err := IntArg(arg, "index")
	if err != nil {
		return nil, err
	}
	val, err := IntArg(arg, "value")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	if idx < 0 || idx >= int64(len(data)) {
		return nil, errors.InvalidOperation(errors.PhaseCall, "index out of bounds")
	}
	if val < 0 || val > 255 {
		return nil, errors.InvalidOperation(errors.PhaseCall, "byte value must be between 0 and 255")
	}
	data[idx] = byte(val)
	return value.NewBytes(data), nil
}

func bytesIndexOf(arg value.Value) (value.Value, error) {
	b, pattern, err := patternArgs(arg)
	if err != nil {
		return nil, err
	}
	return value.Integer(gobytes.Index(b, pattern)), nil
}

func bytesContains(arg value.Value) (value.Value, error) {
	b, pattern, err := patternArgs(arg)
	if err != nil {
		return nil, err
	}
	return value.Boolean(gobytes.Contains(b, pattern)), nil
}

func bytesStartsWith(arg value.Value) (value.Value, error) {
	b, pattern, err := patternArgs(arg)
	if err != nil {
		return nil, err
	}
	return value.Boolean(gobytes.HasPrefix(b, pattern)), nil
}

func bytesEndsWith(arg value.Value) (value.Value, error) {
	b, pattern, err := patternArgs(arg)
	if err != nil {
		return nil, err
	}
	return value.Boolean(gobytes.HasSuffix(b, pattern)), nil
}

func patternArgs(arg value.Value) (b, pattern []byte, err error) {
	bv, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, nil, err
	}
	pv, err := BytesArg(arg, "pattern")
	if err != nil {
		return nil, nil, err
	}
	return bv.Data(), pv.Data(), nil
}

func bytesRepeat(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	count, err := IntArg(arg, "count")
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errors.InvalidOperation(errors.PhaseCall, "repeat count cannot be negative")
	}
	return value.NewBytes(gobytes.Repeat(b.Data(), int(count))), nil
}

func bytesIsEmpty(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	return value.Boolean(b.Len() == 0), nil
}

func bytesReverse(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
	return value.NewBytes(data), nil
}

func bytesToString(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	if !utf8.Valid(data) {
		return nil, errors.InvalidOperation(errors.PhaseCall, "bytes is not valid UTF-8")
	}
	return value.String(data), nil
}

func bytesFromString(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.NewBytes([]byte(s)), nil
}

func bytesPadLeft(arg value.Value) (value.Value, error) {
	b, pad, count, err := bytePadArgs(arg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return value.NewBytes(b), nil
	}
	out := gobytes.Repeat([]byte{pad}, count)
	return value.NewBytes(append(out, b...)), nil
}

func bytesPadRight(arg value.Value) (value.Value, error) {
	b, pad, count, err := bytePadArgs(arg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return value.NewBytes(b), nil
	}
	return value.NewBytes(append(b, gobytes.Repeat([]byte{pad}, count)...)), nil
}

func bytePadArgs(arg value.Value) (b []byte, pad byte, count int, err error) {
	bv, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, 0, 0, err
	}
	length, err := IntArg(arg, "length")
	if err != nil {
		return nil, 0, 0, err
	}
	padByte, err := IntArg(arg, "pad_byte")
	if err != nil {
		return nil, 0, 0, err
	}
	if padByte < 0 || padByte > 255 {
		return nil, 0, 0, errors.InvalidOperation(errors.PhaseCall, "byte value must be between 0 and 255")
	}
	b = bv.Data()
	if int64(len(b)) >= length {
		return b, 0, 0, nil
	}
	return b, byte(padByte), int(length) - len(b), nil
}

func bytesFromIntegers(arg value.Value) (value.Value, error) {
	list, err := TupleArg(arg, "list")
	if err != nil {
		return nil, err
	}
	out := make([]byte, list.Len())
	for i, elem := range list.Values() {
		n, ok := elem.(value.Integer)
		if !ok {
			return nil, errors.InvalidOperation(errors.PhaseCall, "list must contain only integers")
		}
		if n < 0 || n > 255 {
			return nil, errors.InvalidOperation(errors.PhaseCall, "byte value must be between 0 and 255")
		}
		out[i] = byte(n)
	}
	return value.NewBytes(out), nil
}

func bytesToIntegers(arg value.Value) (value.Value, error) {
	b, err := BytesArg(arg, "bytes")
	if err != nil {
		return nil, err
	}
	data := b.Data()
	elems := make([]value.Value, len(data))
	for i, c := range data {
		elems[i] = value.Integer(c)
	}
	return value.NewTuple(elems...), nil
}
