package bridge

import (
	"fmt"

	"github.com/wippyai/host-bridge/errors"
)

// ToEngineError maps a host error into the engine taxonomy. Structured
// bridge errors pass through unchanged; any other host error is boxed as a
// custom-value error wrapping the original error object in an opaque
// handle, so scripts can inspect it and a later ToHostError can recover it
// losslessly.
func ToEngineError(phase errors.Phase, err error) *errors.Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	e := errors.Custom(phase, NewForeign(err))
	e.Detail = err.Error()
	return e
}

// ToHostError maps an engine error back to a host error. A custom-value
// error carrying a boxed host error unwraps to the original error object;
// every other engine error surfaces as itself, degrading the foreign
// detail to text.
func ToHostError(err *errors.Error) error {
	if err == nil {
		return nil
	}
	if err.Kind == errors.KindCustomValue {
		if f, ok := err.Value.(*ForeignObject); ok {
			if orig, ok := f.Object().(error); ok {
				return orig
			}
		}
	}
	return err
}

// CapturePanic converts a recovered panic value into a host error. Panics
// carrying an error keep it; anything else degrades to text.
func CapturePanic(p any) error {
	if p == nil {
		return nil
	}
	if err, ok := p.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", p)
}
