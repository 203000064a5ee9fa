package stdlib

import (
	"math"

	"github.com/wippyai/host-bridge/adapter"
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Math builds the math module. Trigonometric and exponential operations
// always produce floats; abs, floor, ceil and round keep integers integral.
func Math() *Module {
	m := NewModule("math")

	m.Const("PI", value.Float(math.Pi))
	m.Const("E", value.Float(math.E))

	m.Func("abs", Params(
		Param("value", "Number to get absolute value"),
	), mathAbs)
	m.Func("sin", Params(
		Param("value", "Angle in radians"),
	), floatFn(math.Sin))
	m.Func("cos", Params(
		Param("value", "Angle in radians"),
	), floatFn(math.Cos))
	m.Func("tan", Params(
		Param("value", "Angle in radians"),
	), floatFn(math.Tan))
	m.Func("log", Params(
		Param("value", "Number to take natural logarithm"),
	), mathLog)
	m.Func("exp", Params(
		Param("value", "Exponent for e"),
	), floatFn(math.Exp))
	m.Func("sqrt", Params(
		Param("value", "Number to take square root"),
	), mathSqrt)
	m.Func("pow", Params(
		Param("base", "Base number"),
		Param("exponent", "Exponent to raise base to"),
	), mathPow)
	m.Func("floor", Params(
		Param("value", "Number to round down"),
	), roundFn(math.Floor))
	m.Func("ceil", Params(
		Param("value", "Number to round up"),
	), roundFn(math.Ceil))
	m.Func("round", Params(
		Param("value", "Number to round to nearest integer"),
	), roundFn(math.Round))
	m.Func("asin", Params(
		Param("value", "Sine value between -1 and 1"),
	), arcFn("asin", math.Asin))
	m.Func("acos", Params(
		Param("value", "Cosine value between -1 and 1"),
	), arcFn("acos", math.Acos))
	m.Func("atan", Params(
		Param("value", "Tangent value"),
	), floatFn(math.Atan))

	return m
}

// floatFn lifts a float function into an operation over the "value" argument.
func floatFn(f func(float64) float64) adapter.Func {
	return func(arg value.Value) (value.Value, error) {
		x, err := FloatArg(arg, "value")
		if err != nil {
			return nil, err
		}
		return value.Float(f(x)), nil
	}
}

// roundFn applies a rounding function to floats and passes integers through.
func roundFn(f func(float64) float64) adapter.Func {
	return func(arg value.Value) (value.Value, error) {
		v, err := Arg(arg, "value")
		if err != nil {
			return nil, err
		}
		switch x := v.(type) {
		case value.Integer:
			return x, nil
		case value.Float:
			return value.Integer(f(float64(x))), nil
		default:
			return nil, argTypeErr("value", "number", v)
		}
	}
}

// arcFn wraps an inverse trigonometric function with its domain check.
func arcFn(name string, f func(float64) float64) adapter.Func {
	return func(arg value.Value) (value.Value, error) {
		x, err := FloatArg(arg, "value")
		if err != nil {
			return nil, err
		}
		if x < -1 || x > 1 {
			return nil, errors.InvalidOperation(errors.PhaseCall, name+" requires value between -1 and 1")
		}
		return value.Float(f(x)), nil
	}
}

func mathAbs(arg value.Value) (value.Value, error) {
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.Integer:
		if x < 0 {
			return -x, nil
		}
		return x, nil
	case value.Float:
		return value.Float(math.Abs(float64(x))), nil
	default:
		return nil, argTypeErr("value", "number", v)
	}
}

func mathLog(arg value.Value) (value.Value, error) {
	x, err := FloatArg(arg, "value")
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, errors.InvalidOperation(errors.PhaseCall, "log requires positive value")
	}
	return value.Float(math.Log(x)), nil
}

func mathSqrt(arg value.Value) (value.Value, error) {
	x, err := FloatArg(arg, "value")
	if err != nil {
		return nil, err
	}
	if x < 0 {
		return nil, errors.InvalidOperation(errors.PhaseCall, "cannot take square root of negative number")
	}
	return value.Float(math.Sqrt(x)), nil
}

func mathPow(arg value.Value) (value.Value, error) {
	base, err := Arg(arg, "base")
	if err != nil {
		return nil, err
	}
	exp, err := Arg(arg, "exponent")
	if err != nil {
		return nil, err
	}
	return value.Pow(base, exp)
}
