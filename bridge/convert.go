package bridge

import (
	"math"
	"reflect"

	"github.com/wippyai/host-bridge/value"
)

// FromHost converts any host object into an engine value. It is total: no
// input fails, anything without a native tagged representation becomes an
// opaque ForeignObject.
//
// Classification order: already-wrapped engine values unwrap by identity,
// then integers, floats, strings, booleans, nil, byte buffers, ordered
// sequences (slices and arrays, recursively, order preserved), set-like
// maps (map[T]struct{}, iteration order not guaranteed stable), and finally
// the opaque fallback. Non-set maps deliberately take the opaque path: host
// dictionaries travel through the engine as foreign objects, not as a
// tagged variant.
func FromHost(v any) value.Value {
	switch x := v.(type) {
	case nil:
		return value.Null{}
	case *HostValue:
		return x.Unwrap()
	case value.Value:
		return x
	case int:
		return value.Integer(x)
	case int8:
		return value.Integer(x)
	case int16:
		return value.Integer(x)
	case int32:
		return value.Integer(x)
	case int64:
		return value.Integer(x)
	case uint:
		return unsignedValue(uint64(x), v)
	case uint8:
		return value.Integer(x)
	case uint16:
		return value.Integer(x)
	case uint32:
		return value.Integer(x)
	case uint64:
		return unsignedValue(x, v)
	case float32:
		return value.Float(x)
	case float64:
		return value.Float(x)
	case string:
		return value.String(x)
	case bool:
		return value.Boolean(x)
	case []byte:
		return value.NewBytes(x)
	case []any:
		return sliceValue(x)
	case []value.Value:
		return value.NewTuple(x...)
	}
	return reflectValue(v)
}

func sliceValue(xs []any) value.Value {
	elems := make([]value.Value, len(xs))
	for i, x := range xs {
		elems[i] = FromHost(x)
	}
	return value.NewTuple(elems...)
}

// unsignedValue classifies an unsigned integer, falling through to the
// opaque path when it does not fit a signed 64-bit engine integer.
func unsignedValue(x uint64, orig any) value.Value {
	if x > math.MaxInt64 {
		return NewForeign(orig)
	}
	return value.Integer(x)
}

var emptyStruct = reflect.TypeOf(struct{}{})

// reflectValue handles named types and container kinds the type switch in
// FromHost does not cover.
func reflectValue(v any) value.Value {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return value.Integer(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return unsignedValue(rv.Uint(), v)
	case reflect.Float32, reflect.Float64:
		return value.Float(rv.Float())
	case reflect.String:
		return value.String(rv.String())
	case reflect.Bool:
		return value.Boolean(rv.Bool())

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			data := make([]byte, rv.Len())
			for i := range data {
				data[i] = byte(rv.Index(i).Uint())
			}
			return value.NewBytes(data)
		}
		elems := make([]value.Value, rv.Len())
		for i := range elems {
			elems[i] = FromHost(rv.Index(i).Interface())
		}
		return value.NewTuple(elems...)

	case reflect.Map:
		// Only the set idiom has a tagged representation. Iteration order
		// follows the host map and is not stable.
		if rv.Type().Elem() == emptyStruct {
			elems := make([]value.Value, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				elems = append(elems, FromHost(iter.Key().Interface()))
			}
			return value.NewTuple(elems...)
		}

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return value.Null{}
		}
	}
	return NewForeign(v)
}
