package stdlib

import (
	"strconv"
	"strings"

	"github.com/wippyai/host-bridge/adapter"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Types builds the type inspection and conversion module.
func Types() *Module {
	m := NewModule("types")

	m.Func("to_string", Params(
		Param("value", "Value to convert to string"),
	), typesToString)
	m.Func("to_int", Params(
		Param("value", "Value to convert to integer"),
	), typesToInt)
	m.Func("to_float", Params(
		Param("value", "Value to convert to float"),
	), typesToFloat)
	m.Func("to_bool", Params(
		Param("value", "Value to convert to boolean"),
	), typesToBool)
	m.Func("to_bytes", Params(
		Param("value", "Value to convert to bytes"),
	), typesToBytes)
	m.Func("type_of", Params(
		Param("value", "Value to get type of"),
	), typesTypeOf)
	m.Func("is_int", Params(
		Param("value", "Value to check"),
	), isKind(value.KindInteger))
	m.Func("is_float", Params(
		Param("value", "Value to check"),
	), isKind(value.KindFloat))
	m.Func("is_string", Params(
		Param("value", "Value to check"),
	), isKind(value.KindString))
	m.Func("is_bool", Params(
		Param("value", "Value to check"),
	), isKind(value.KindBoolean))
	m.Func("is_bytes", Params(
		Param("value", "Value to check"),
	), isKind(value.KindBytes))
	m.Func("find", Params(
		Param("obj", "Object to look up in"),
		Param("key", "Attribute name to find"),
	), typesFind)

	return m
}

func typesToString(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	text, err := v.Text()
	if err != nil {
		return nil, err
	}
	return value.String(text), nil
}

func typesToInt(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Integer:
		return x, nil
	case value.Float:
		return value.Integer(x), nil
	case value.String:
		n, err := strconv.ParseInt(strings.TrimSpace(string(x)), 10, 64)
		if err != nil {
			return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert string %q to integer", string(x))
		}
		return value.Integer(n), nil
	case value.Boolean:
		if x {
			return value.Integer(1), nil
		}
		return value.Integer(0), nil
	default:
		return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert %s to integer", value.TypeNameOf(v))
	}
}

func typesToFloat(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Integer:
		return value.Float(x), nil
	case value.Float:
		return x, nil
	case value.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(x)), 64)
		if err != nil {
			return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert string %q to float", string(x))
		}
		return value.Float(f), nil
	case value.Boolean:
		if x {
			return value.Float(1), nil
		}
		return value.Float(0), nil
	default:
		return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert %s to float", value.TypeNameOf(v))
	}
}

func typesToBool(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.String:
		switch strings.ToLower(strings.TrimSpace(string(x))) {
		case "true", "1", "yes", "y":
			return value.Boolean(true), nil
		case "false", "0", "no", "n", "":
			return value.Boolean(false), nil
		default:
			return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert string %q to boolean", string(x))
		}
	case value.Integer:
		return value.Boolean(x != 0), nil
	case value.Float:
		return value.Boolean(x != 0), nil
	case value.Boolean:
		return x, nil
	case value.Undefined, value.Null:
		return value.Boolean(false), nil
	default:
		return value.Boolean(true), nil
	}
}

func typesToBytes(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.String:
		return value.NewBytes([]byte(x)), nil
	case value.Bytes:
		return x, nil
	case value.Integer:
		return value.NewBytes(strconv.AppendInt(nil, int64(x), 10)), nil
	case value.Float:
		return value.NewBytes(strconv.AppendFloat(nil, float64(x), 'g', -1, 64)), nil
	case value.Boolean:
		if x {
			return value.NewBytes([]byte{1}), nil
		}
		return value.NewBytes([]byte{0}), nil
	default:
		return nil, errors.InvalidOperationf(errors.PhaseCall, "cannot convert %s to bytes", value.TypeNameOf(v))
	}
}

func typesTypeOf(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	return value.String(value.TypeNameOf(v)), nil
}

// isKind builds a predicate entry over the "value" argument.
func isKind(k value.Kind) adapter.Func {
	return func(arg value.Value) (value.Value, error) {
		v, err := Arg(arg, "value")
		if err != nil {
			return nil, err
		}
		return value.Boolean(v.Kind() == k), nil
	}
}

// typesFind resolves an attribute, degrading a failed lookup to undefined
// instead of an error. Errors outside the lookup itself still propagate.
func typesFind(arg value.Value) (value.Value, error) {
	obj, err := Arg(arg, "obj")
	if err != nil {
		return nil, err
	}
	key, err := StringArg(arg, "key")
	if err != nil {
		return nil, err
	}
	v, err := value.Attr(obj, key)
	if err != nil {
		if errors.IsKind(err, errors.KindNotFound) || errors.IsKind(err, errors.KindInvalidOperation) {
			return value.UndefinedOf(err.Error()), nil
		}
		return nil, err
	}
	return v, nil
}
