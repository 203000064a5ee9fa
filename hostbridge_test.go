package hostbridge_test

import (
	"context"
	"testing"

	hostbridge "github.com/wippyai/host-bridge"
	"github.com/wippyai/host-bridge/value"
)

func TestSystemCall(t *testing.T) {
	ctx := context.Background()
	sys := hostbridge.New()
	defer sys.Close(ctx)

	got, err := sys.Call(ctx, "string::concat",
		value.NamedOf("a", value.String("he")),
		value.NamedOf("b", value.String("llo")))
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if got != value.String("hello") {
		t.Errorf("got %v, want hello", got)
	}
}

func TestSystemCallSingleArg(t *testing.T) {
	ctx := context.Background()
	sys := hostbridge.New()
	defer sys.Close(ctx)

	got, err := sys.Call(ctx, "string::length",
		value.NamedOf("string", value.String("héllo")))
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if got != value.Integer(5) {
		t.Errorf("got %v, want 5", got)
	}
}

func TestSystemCallDefaults(t *testing.T) {
	ctx := context.Background()
	sys := hostbridge.New()
	defer sys.Close(ctx)

	got, err := sys.Call(ctx, "time::time_diff")
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if got != value.Integer(0) {
		t.Errorf("got %v, want 0", got)
	}
}

func TestSystemCallUnknown(t *testing.T) {
	ctx := context.Background()
	sys := hostbridge.New()
	defer sys.Close(ctx)

	if _, err := sys.Call(ctx, "nope::missing"); err == nil {
		t.Fatal("expected lookup error")
	}
}

func TestSystemLoadWasm(t *testing.T) {
	ctx := context.Background()
	sys := hostbridge.New()
	defer sys.Close(ctx)

	if err := sys.LoadWasm(ctx, "calc", addWASM); err != nil {
		t.Fatalf("LoadWasm error: %v", err)
	}

	got, err := sys.Call(ctx, "calc::add",
		value.NewTuple(value.Integer(2), value.Integer(3)))
	if err != nil {
		t.Fatalf("Call error: %v", err)
	}
	if got != value.Integer(5) {
		t.Errorf("got %v, want 5", got)
	}
}

// Module exporting add(i32, i32) -> i32
var addWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	// Type section: (i32, i32) -> i32
	0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f,
	// Function section: func 0 uses type 0
	0x03, 0x02, 0x01, 0x00,
	// Export section: "add" -> func 0
	0x07, 0x07, 0x01, 0x03, 0x61, 0x64, 0x64, 0x00, 0x00,
	// Code section: local.get 0 + local.get 1 = i32.add
	0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b,
}
