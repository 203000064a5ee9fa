package stdlib

import (
	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// Tuple builds the tuple manipulation module. Tuples are immutable, so
// every operation returns a new tuple and leaves the input untouched.
func Tuple() *Module {
	m := NewModule("tuple")

	m.Func("push", Params(
		Param("container", "Tuple to append to"),
		Param("value", "Value to append"),
	), tuplePush)
	m.Func("pop", Params(
		Param("container", "Tuple to remove the last element from"),
	), tuplePop)
	m.Func("insert", Params(
		Param("container", "Tuple to insert into"),
		Param("index", "Position to insert at"),
		Param("value", "Value to insert"),
	), tupleInsert)
	m.Func("remove", Params(
		Param("container", "Tuple to remove from"),
		Param("index", "Position to remove"),
	), tupleRemove)

	return m
}

func tuplePush(arg value.Value) (value.Value, error) {
	t, err := TupleArg(arg, "container")
	if err != nil {
		return nil, err
	}
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	elems := t.Values()
	return value.NewTuple(append(elems, v)...), nil
}

func tuplePop(arg value.Value) (value.Value, error) {
	t, err := TupleArg(arg, "container")
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, errors.InvalidOperation(errors.PhaseCall, "cannot pop from an empty tuple")
	}
	elems := t.Values()
	return value.NewTuple(elems[:len(elems)-1]...), nil
}

func tupleInsert(arg value.Value) (value.Value, error) {
	t, err := TupleArg(arg, "container")
	if err != nil {
		return nil, err
	}
	idx, err := IntArg(arg, "index")
	if err != nil {
		return nil, err
	}
	v, err := Arg(arg, "value")
	if err != nil {
		return nil, err
	}
	elems := t.Values()
	if idx < 0 || idx > int64(len(elems)) {
		return nil, errors.InvalidOperation(errors.PhaseCall, "index out of bounds")
	}
	out := make([]value.Value, 0, len(elems)+1)
	out = append(out, elems[:idx]...)
	out = append(out, v)
	out = append(out, elems[idx:]...)
	return value.NewTuple(out...), nil
}

func tupleRemove(arg value.Value) (value.Value, error) {
	t, err := TupleArg(arg, "container")
	if err != nil {
		return nil, err
	}
	idx, err := IntArg(arg, "index")
	if err != nil {
		return nil, err
	}
	elems := t.Values()
	if idx < 0 || idx >= int64(len(elems)) {
		return nil, errors.InvalidOperation(errors.PhaseCall, "index out of bounds")
	}
	out := make([]value.Value, 0, len(elems)-1)
	out = append(out, elems[:idx]...)
	out = append(out, elems[idx+1:]...)
	return value.NewTuple(out...), nil
}
