package stdlib

import (
	"testing"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

func container(elems ...value.Value) value.Value {
	return named("container", value.NewTuple(elems...))
}

func TestTuplePush(t *testing.T) {
	src := value.NewTuple(value.Integer(1), value.Integer(2))
	out := mustCall(t, "tuple::push",
		named("container", src),
		named("value", value.String("x")),
	)
	if got := reprOf(t, out); got != `(1, 2, "x")` {
		t.Errorf("push = %s", got)
	}
	// The input tuple is untouched.
	if src.Len() != 2 {
		t.Errorf("push mutated its input: %d elements", src.Len())
	}
}

func TestTuplePop(t *testing.T) {
	out := mustCall(t, "tuple::pop", container(value.Integer(1), value.Integer(2)))
	if got := reprOf(t, out); got != "(1)" {
		t.Errorf("pop = %s", got)
	}

	_, err := call(t, "tuple::pop", container())
	if !errors.IsKind(err, errors.KindInvalidOperation) {
		t.Errorf("pop(empty) error = %v, want invalid operation", err)
	}
}

func TestTupleInsert(t *testing.T) {
	cases := []struct {
		name string
		idx  int64
		want string
	}{
		{"front", 0, `("x", 1, 2)`},
		{"middle", 1, `(1, "x", 2)`},
		{"end", 2, `(1, 2, "x")`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := mustCall(t, "tuple::insert",
				container(value.Integer(1), value.Integer(2)),
				named("index", value.Integer(tc.idx)),
				named("value", value.String("x")),
			)
			if got := reprOf(t, out); got != tc.want {
				t.Errorf("insert(%d) = %s, want %s", tc.idx, got, tc.want)
			}
		})
	}

	for _, idx := range []int64{-1, 3} {
		_, err := call(t, "tuple::insert",
			container(value.Integer(1), value.Integer(2)),
			named("index", value.Integer(idx)),
			named("value", value.String("x")),
		)
		if !errors.IsKind(err, errors.KindInvalidOperation) {
			t.Errorf("insert(%d) error = %v, want invalid operation", idx, err)
		}
	}
}

func TestTupleRemove(t *testing.T) {
	out := mustCall(t, "tuple::remove",
		container(value.Integer(1), value.Integer(2), value.Integer(3)),
		named("index", value.Integer(1)),
	)
	if got := reprOf(t, out); got != "(1, 3)" {
		t.Errorf("remove = %s", got)
	}

	for _, idx := range []int64{-1, 2} {
		_, err := call(t, "tuple::remove",
			container(value.Integer(1), value.Integer(2)),
			named("index", value.Integer(idx)),
		)
		if !errors.IsKind(err, errors.KindInvalidOperation) {
			t.Errorf("remove(%d) error = %v, want invalid operation", idx, err)
		}
	}
}

func TestTupleContainerTypeError(t *testing.T) {
	_, err := call(t, "tuple::push",
		named("container", value.String("not a tuple")),
		named("value", value.Integer(1)),
	)
	if !errors.IsKind(err, errors.KindInvalidType) {
		t.Errorf("push(string) error = %v, want invalid type", err)
	}
}
