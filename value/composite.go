package value

import "strings"

// Tuple is an ordered, immutable sequence of values.
type Tuple struct {
	elems []Value
}

// NewTuple constructs a tuple holding a copy of elems.
func NewTuple(elems ...Value) Tuple {
	e := make([]Value, len(elems))
	copy(e, elems)
	return Tuple{elems: e}
}

func (Tuple) Kind() Kind       { return KindTuple }
func (Tuple) TypeName() string { return "tuple" }

// Len reports the number of elements.
func (v Tuple) Len() int { return len(v.elems) }

// Get returns the element at index i.
func (v Tuple) Get(i int) (Value, error) {
	if i < 0 || i >= len(v.elems) {
		return nil, indexOutOfRange(i, len(v.elems))
	}
	return v.elems[i], nil
}

// Values returns a copy of the element slice.
func (v Tuple) Values() []Value {
	e := make([]Value, len(v.elems))
	copy(e, v.elems)
	return e
}

func (v Tuple) Repr() (string, error) {
	var b strings.Builder
	b.WriteByte('(')
	for i, e := range v.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		r, err := reprOf(e)
		if err != nil {
			return "", err
		}
		b.WriteString(r)
	}
	b.WriteByte(')')
	return b.String(), nil
}

func (v Tuple) Text() (string, error) { return v.Repr() }

func (v Tuple) Equals(other Value) (bool, error) {
	o, ok := other.(Tuple)
	if !ok {
		return false, compareMismatch(v, other)
	}
	if len(v.elems) != len(o.elems) {
		return false, nil
	}
	for i := range v.elems {
		if !elemEquals(v.elems[i], o.elems[i]) {
			return false, nil
		}
	}
	return true, nil
}

// Pair is a key-value pair.
type Pair struct {
	key, val Value
}

// NewPair constructs a pair.
func NewPair(key, val Value) Pair {
	return Pair{key: key, val: val}
}

func (Pair) Kind() Kind       { return KindPair }
func (Pair) TypeName() string { return "pair" }

// Key reports the key component.
func (v Pair) Key() Value { return v.key }

// Value reports the value component.
func (v Pair) Value() Value { return v.val }

func (v Pair) Repr() (string, error) {
	k, err := reprOf(v.key)
	if err != nil {
		return "", err
	}
	val, err := reprOf(v.val)
	if err != nil {
		return "", err
	}
	return "(" + k + " : " + val + ")", nil
}

func (v Pair) Text() (string, error) { return v.Repr() }

func (v Pair) Equals(other Value) (bool, error) {
	o, ok := other.(Pair)
	if !ok {
		return false, compareMismatch(v, other)
	}
	if !elemEquals(v.key, o.key) {
		return false, nil
	}
	return elemEquals(v.val, o.val), nil
}

// Named is a name-value binding. The key is usually a String; stdlib modules
// use Named to declare ordered parameters and to address arguments by name.
type Named struct {
	key, val Value
}

// NewNamed constructs a named binding.
func NewNamed(key, val Value) Named {
	return Named{key: key, val: val}
}

// NamedOf constructs a named binding with a string key.
func NamedOf(name string, val Value) Named {
	return Named{key: String(name), val: val}
}

func (Named) Kind() Kind       { return KindNamed }
func (Named) TypeName() string { return "named" }

// Key reports the name component.
func (v Named) Key() Value { return v.key }

// Value reports the value component.
func (v Named) Value() Value { return v.val }

// Matches reports whether the binding's key is the given name.
func (v Named) Matches(name string) bool {
	if k, ok := v.key.(String); ok {
		return string(k) == name
	}
	return false
}

func (v Named) Repr() (string, error) {
	k, err := reprOf(v.key)
	if err != nil {
		return "", err
	}
	val, err := reprOf(v.val)
	if err != nil {
		return "", err
	}
	return k + " = " + val, nil
}

func (v Named) Text() (string, error) { return v.Repr() }

func (v Named) Equals(other Value) (bool, error) {
	o, ok := other.(Named)
	if !ok {
		return false, compareMismatch(v, other)
	}
	if !elemEquals(v.key, o.key) {
		return false, nil
	}
	return elemEquals(v.val, o.val), nil
}

// elemEquals compares nested elements, treating a mismatched-variant error
// as plain inequality so that structural comparison stays total.
func elemEquals(a, b Value) bool {
	eq, err := a.Equals(b)
	if err != nil {
		return false
	}
	return eq
}

func reprOf(v Value) (string, error) {
	if v == nil {
		return "null", nil
	}
	return v.Repr()
}
