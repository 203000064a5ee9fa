package bridge

import (
	"fmt"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

// ForeignTypeName is the fixed type tag every opaque handle reports.
const ForeignTypeName = "GoObject"

// ForeignObject is the opaque object handle: the Custom variant that lets a
// host object with no native tagged representation round-trip through the
// engine untouched.
//
// The handle exclusively owns its one reference to the host object; the
// reference is released when the last engine-side holder drops the handle.
// It declares no engine-traceable references, so the engine's collector
// treats it as a leaf: cycles spanning the handle and engine-managed
// objects are not reclaimed automatically.
type ForeignObject struct {
	obj any
}

// NewForeign wraps a host object in an opaque handle.
func NewForeign(obj any) *ForeignObject {
	return &ForeignObject{obj: obj}
}

// Object returns the wrapped host object. This is the host-side unwrap:
// identity comparison of two handles is only possible here, never through
// the engine's generic equality.
func (f *ForeignObject) Object() any { return f.obj }

func (f *ForeignObject) Kind() value.Kind { return value.KindCustom }

func (f *ForeignObject) TypeName() string { return ForeignTypeName }

// Repr delegates to the host object's debug representation. A panic inside
// a host String method surfaces as an engine error.
func (f *ForeignObject) Repr() (s string, err error) {
	defer func() {
		if p := recover(); p != nil {
			s, err = "", ToEngineError(errors.PhaseOp, CapturePanic(p))
		}
	}()
	switch o := f.obj.(type) {
	case fmt.GoStringer:
		return o.GoString(), nil
	case fmt.Stringer:
		return o.String(), nil
	case error:
		return o.Error(), nil
	}
	return fmt.Sprintf("%#v", f.obj), nil
}

// Text delegates to the host object's display representation, with the same
// failure surfacing as Repr.
func (f *ForeignObject) Text() (s string, err error) {
	defer func() {
		if p := recover(); p != nil {
			s, err = "", ToEngineError(errors.PhaseOp, CapturePanic(p))
		}
	}()
	switch o := f.obj.(type) {
	case fmt.Stringer:
		return o.String(), nil
	case error:
		return o.Error(), nil
	}
	return fmt.Sprint(f.obj), nil
}

// Equals always reports false: two opaque handles are never equal through
// the engine's generic equality, even when they wrap the identical host
// object.
func (f *ForeignObject) Equals(value.Value) (bool, error) {
	return false, nil
}

// Same always reports false, like Equals. Identity comparison requires a
// host-side unwrap.
func (f *ForeignObject) Same(value.Value) (bool, error) {
	return false, nil
}
