package bridge

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/wippyai/host-bridge/errors"
)

func TestToEngineErrorNil(t *testing.T) {
	if e := ToEngineError(errors.PhaseCall, nil); e != nil {
		t.Errorf("ToEngineError(nil) = %v", e)
	}
}

func TestToEngineErrorPassthrough(t *testing.T) {
	structured := errors.InvalidOperation(errors.PhaseOp, "no such operator")
	if got := ToEngineError(errors.PhaseCall, structured); got != structured {
		t.Errorf("structured error was re-boxed: %v", got)
	}
}

func TestToEngineErrorBoxes(t *testing.T) {
	hostErr := stderrors.New("disk offline")
	e := ToEngineError(errors.PhaseCall, hostErr)
	if e.Kind != errors.KindCustomValue {
		t.Fatalf("Kind = %v, want custom value", e.Kind)
	}
	if e.Phase != errors.PhaseCall {
		t.Errorf("Phase = %v, want call", e.Phase)
	}
	if e.Detail != "disk offline" {
		t.Errorf("Detail = %q", e.Detail)
	}
	f, ok := e.Value.(*ForeignObject)
	if !ok {
		t.Fatalf("Value = %T, want *ForeignObject", e.Value)
	}
	if f.Object() != any(hostErr) {
		t.Errorf("boxed object = %v, want the original error", f.Object())
	}
}

func TestErrorRoundTrip(t *testing.T) {
	sentinel := fmt.Errorf("wrapped: %w", stderrors.New("root cause"))
	back := ToHostError(ToEngineError(errors.PhaseCall, sentinel))
	if back != sentinel {
		t.Errorf("round trip lost identity: %v", back)
	}
}

func TestToHostErrorDegrades(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if err := ToHostError(nil); err != nil {
			t.Errorf("ToHostError(nil) = %v", err)
		}
	})
	t.Run("structured", func(t *testing.T) {
		e := errors.Detailed(errors.PhaseReceive, "unexpected signal")
		if got := ToHostError(e); got != error(e) {
			t.Errorf("structured error did not surface as itself: %v", got)
		}
	})
	t.Run("custom without boxed error", func(t *testing.T) {
		e := errors.Custom(errors.PhaseCall, NewForeign("just a string"))
		if got := ToHostError(e); got != error(e) {
			t.Errorf("non-error custom value unwrapped: %v", got)
		}
	})
}

func TestCapturePanic(t *testing.T) {
	if err := CapturePanic(nil); err != nil {
		t.Errorf("CapturePanic(nil) = %v", err)
	}
	original := stderrors.New("kept")
	if err := CapturePanic(original); err != original {
		t.Errorf("CapturePanic(error) = %v, want identity", err)
	}
	err := CapturePanic("boom")
	if err == nil || err.Error() != "panic: boom" {
		t.Errorf("CapturePanic(string) = %v", err)
	}
}
