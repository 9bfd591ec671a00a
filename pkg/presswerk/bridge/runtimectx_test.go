package bridge

import (
	"errors"
	"runtime"
	"testing"
)

func TestRuntimeContextRejectsNull(t *testing.T) {
	cases := []struct{ vm, host uintptr }{
		{0, 0},
		{0, 0xbeef},
		{0xcafe, 0},
	}
	for _, c := range cases {
		if _, err := NewRuntimeContext(c.vm, c.host); !errors.Is(err, ErrNullRuntimeContext) {
			t.Errorf("NewRuntimeContext(%#x, %#x): want ErrNullRuntimeContext, got %v", c.vm, c.host, err)
		}
	}
}

func TestRuntimeContextAccessors(t *testing.T) {
	ctx, err := NewRuntimeContext(0xcafe, 0xbeef)
	if err != nil {
		t.Fatalf("NewRuntimeContext: %v", err)
	}
	if ctx.VM() != 0xcafe || ctx.Host() != 0xbeef {
		t.Errorf("accessors: got vm=%#x host=%#x", ctx.VM(), ctx.Host())
	}
}

func TestAttachCurrentThreadIdempotent(t *testing.T) {
	// Pin the goroutine so every call sees the same OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	ctx, err := NewRuntimeContext(1, 1)
	if err != nil {
		t.Fatalf("NewRuntimeContext: %v", err)
	}
	if ctx.Attached() {
		t.Fatal("thread reported attached before any attach call")
	}
	if first := ctx.AttachCurrentThread(); !first {
		t.Error("first attach must report first=true")
	}
	if !ctx.Attached() {
		t.Error("thread not reported attached after attach")
	}
	for i := 0; i < 3; i++ {
		if first := ctx.AttachCurrentThread(); first {
			t.Error("repeated attach must report first=false")
		}
	}
}
