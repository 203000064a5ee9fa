package bridge

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/wippyai/host-bridge/errors"
	"github.com/wippyai/host-bridge/value"
)

type stringerObj struct{ s string }

func (o stringerObj) String() string { return o.s }

type goStringerObj struct{}

func (goStringerObj) GoString() string { return "goStringerObj<debug>" }

type panicStringer struct{}

func (panicStringer) String() string { panic("stringer exploded") }

type point struct{ X, Y int }

func TestForeignTypeTag(t *testing.T) {
	f := NewForeign(42)
	if f.Kind() != value.KindCustom {
		t.Errorf("Kind() = %s, want custom", f.Kind())
	}
	if f.TypeName() != ForeignTypeName {
		t.Errorf("TypeName() = %q, want %q", f.TypeName(), ForeignTypeName)
	}
}

func TestForeignObjectIdentity(t *testing.T) {
	obj := &point{X: 1}
	f := NewForeign(obj)
	if f.Object() != any(obj) {
		t.Errorf("Object() = %v, want the wrapped pointer", f.Object())
	}
}

func TestForeignNeverEqual(t *testing.T) {
	obj := &point{X: 1}
	a := NewForeign(obj)
	b := NewForeign(obj)

	eq, err := a.Equals(b)
	if err != nil {
		t.Fatalf("Equals() error: %v", err)
	}
	if eq {
		t.Error("Equals() = true for handles around the identical object")
	}

	same, err := a.Same(a)
	if err != nil || same {
		t.Errorf("Same(self) = %v, %v, want false through the engine", same, err)
	}

	if ToHost(a).Equal(ToHost(b)) {
		t.Error("wrapped handles compare equal")
	}
}

func TestForeignRepr(t *testing.T) {
	tests := []struct {
		name string
		obj  any
		want string
	}{
		{"gostringer", goStringerObj{}, "goStringerObj<debug>"},
		{"stringer", stringerObj{s: "pretty"}, "pretty"},
		{"error", stderrors.New("broken"), "broken"},
		{"plain", point{X: 1, Y: 2}, "bridge.point{X:1, Y:2}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewForeign(tt.obj).Repr()
			if err != nil {
				t.Fatalf("Repr() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Repr() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForeignText(t *testing.T) {
	tests := []struct {
		name string
		obj  any
		want string
	}{
		{"stringer", stringerObj{s: "pretty"}, "pretty"},
		{"error", stderrors.New("broken"), "broken"},
		{"plain", 42, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewForeign(tt.obj).Text()
			if err != nil {
				t.Fatalf("Text() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestForeignReprPanicSurfaces(t *testing.T) {
	_, err := NewForeign(panicStringer{}).Repr()
	if err == nil {
		t.Fatal("Repr() swallowed the panic")
	}
	if !errors.IsKind(err, errors.KindCustomValue) {
		t.Errorf("error kind = %v, want custom value", err)
	}
	if !strings.Contains(err.Error(), "stringer exploded") {
		t.Errorf("error %q does not carry the panic message", err.Error())
	}

	_, err = NewForeign(panicStringer{}).Text()
	if err == nil {
		t.Fatal("Text() swallowed the panic")
	}
}
