package stdlib

import (
	"strings"
	"unicode/utf8"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Strings builds the string manipulation module. Indexes and lengths count
// runes, not bytes.
func Strings() *Module {
	m := NewModule("string")

	m.Func("length", Params(
		Param("string", "String to get length"),
	), strLength)
	m.Func("trim", Params(
		Param("string", "String to trim"),
	), strTrim)
	m.Func("uppercase", Params(
		Param("string", "String to convert to uppercase"),
	), strUpper)
	m.Func("lowercase", Params(
		Param("string", "String to convert to lowercase"),
	), strLower)
	m.Func("contains", Params(
		Param("string", "String to search within"),
		Param("substring", "Substring to search for"),
	), strContains)
	m.Func("concat", Params(
		Param("a", "First string to concatenate"),
		Param("b", "Second string to concatenate"),
	), strConcat)
	m.Func("split", Params(
		Param("string", "String to split"),
		Param("delimiter", "Delimiter to split by"),
	), strSplit)
	m.Func("replace", Params(
		Param("string", "String to perform replacement on"),
		Param("from", "Substring to replace"),
		Param("to", "Replacement string"),
	), strReplace)
	m.Func("substr", Params(
		Param("string", "String to extract substring from"),
		Param("start", "Start index"),
		Param("length", "Length of substring"),
	), strSubstr)
	m.Func("index_of", Params(
		Param("string", "String to search in"),
		Param("substring", "Substring to find"),
	), strIndexOf)
	m.Func("starts_with", Params(
		Param("string", "String to check"),
		Param("prefix", "Prefix to check for"),
	), strStartsWith)
	m.Func("ends_with", Params(
		Param("string", "String to check"),
		Param("suffix", "Suffix to check for"),
	), strEndsWith)
	m.Func("repeat", Params(
		Param("string", "String to repeat"),
		Param("count", "Number of times to repeat"),
	), strRepeat)
	m.Func("pad_left", Params(
		Param("string", "String to pad"),
		Param("length", "Target length"),
		Param("pad_char", "Character to pad with"),
	), strPadLeft)
	m.Func("pad_right", Params(
		Param("string", "String to pad"),
		Param("length", "Target length"),
		Param("pad_char", "Character to pad with"),
	), strPadRight)
	m.Func("is_empty", Params(
		Param("string", "String to check if empty"),
	), strIsEmpty)
	m.Func("reverse", Params(
		Param("string", "String to reverse"),
	), strReverse)

	return m
}

func strLength(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.Integer(utf8.RuneCountInString(s)), nil
}

func strTrim(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.String(strings.TrimSpace(s)), nil
}

func strUpper(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToUpper(s)), nil
}

func strLower(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ToLower(s)), nil
}

func strContains(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	sub, err := StringArg(arg, "substring")
	if err != nil {
		return nil, err
	}
	return value.Boolean(strings.Contains(s, sub)), nil
}

func strConcat(arg value.Value) (value.Value, error) {
	a, err := StringArg(arg, "a")
	if err != nil {
		return nil, err
	}
	b, err := StringArg(arg, "b")
	if err != nil {
		return nil, err
	}
	return value.String(a + b), nil
}

func strSplit(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	delim, err := StringArg(arg, "delimiter")
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, delim)
	elems := make([]value.Value, len(parts))
	for i, p := range parts {
		elems[i] = value.String(p)
	}
	return value.NewTuple(elems...), nil
}

func strReplace(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	from, err := StringArg(arg, "from")
	if err != nil {
		return nil, err
	}
	to, err := StringArg(arg, "to")
	if err != nil {
		return nil, err
	}
	return value.String(strings.ReplaceAll(s, from, to)), nil
}

func strSubstr(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
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
	runes := []rune(s)
	if start < 0 || length <= 0 || start >= int64(len(runes)) {
		return value.String(""), nil
	}
	end := start + length
	if end > int64(len(runes)) {
		end = int64(len(runes))
	}
	return value.String(runes[start:end]), nil
}

func strIndexOf(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	sub, err := StringArg(arg, "substring")
	if err != nil {
		return nil, err
	}
	idx := strings.Index(s, sub)
	if idx < 0 {
		return value.Integer(-1), nil
	}
	return value.Integer(utf8.RuneCountInString(s[:idx])), nil
}

func strStartsWith(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	prefix, err := StringArg(arg, "prefix")
	if err != nil {
		return nil, err
	}
	return value.Boolean(strings.HasPrefix(s, prefix)), nil
}

func strEndsWith(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	suffix, err := StringArg(arg, "suffix")
	if err != nil {
		return nil, err
	}
	return value.Boolean(strings.HasSuffix(s, suffix)), nil
}

func strRepeat(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
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
	return value.String(strings.Repeat(s, int(count))), nil
}

func strPadLeft(arg value.Value) (value.Value, error) {
	s, pad, count, err := padArgs(arg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return value.String(s), nil
	}
	return value.String(strings.Repeat(pad, count) + s), nil
}

func strPadRight(arg value.Value) (value.Value, error) {
	s, pad, count, err := padArgs(arg)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return value.String(s), nil
	}
	return value.String(s + strings.Repeat(pad, count)), nil
}

// padArgs resolves the shared pad parameters and reports how many copies of
// the pad rune are needed to reach the target length.
func padArgs(arg value.Value) (s, pad string, count int, err error) {
	s, err = StringArg(arg, "string")
	if err != nil {
		return "", "", 0, err
	}
	length, err := IntArg(arg, "length")
	if err != nil {
		return "", "", 0, err
	}
	padChar, err := StringArg(arg, "pad_char")
	if err != nil {
		return "", "", 0, err
	}
	r := ' '
	if padChar != "" {
		r, _ = utf8.DecodeRuneInString(padChar)
	}
	have := utf8.RuneCountInString(s)
	if int64(have) >= length {
		return s, "", 0, nil
	}
	return s, string(r), int(length) - have, nil
}

func strIsEmpty(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	return value.Boolean(len(s) == 0), nil
}

func strReverse(arg value.Value) (value.Value, error) {
	s, err := StringArg(arg, "string")
	if err != nil {
		return nil, err
	}
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return value.String(runes), nil
}
