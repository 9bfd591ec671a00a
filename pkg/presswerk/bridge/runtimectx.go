package bridge

import (
	"errors"
	"sync"

	"github.com/presswerk/presswerk-go/internal/threadid"
)

// ErrNullRuntimeContext reports a zero VM or host reference at construction.
var ErrNullRuntimeContext = errors.New("bridge: runtime context references must be non-null")

// RuntimeContext holds the native runtime references obtained once at
// process start: the VM handle and the hosting activity (or window)
// reference. Construction enforces the non-null invariant, so a
// RuntimeContext in hand is valid for the process lifetime.
type RuntimeContext struct {
	vm   uintptr
	host uintptr

	mu       sync.Mutex
	attached map[int]bool
}

// NewRuntimeContext validates and captures the native references. Both must
// be non-zero.
func NewRuntimeContext(vm, host uintptr) (*RuntimeContext, error) {
	if vm == 0 || host == 0 {
		return nil, ErrNullRuntimeContext
	}
	return &RuntimeContext{vm: vm, host: host, attached: make(map[int]bool)}, nil
}

// VM returns the native VM handle.
func (c *RuntimeContext) VM() uintptr { return c.vm }

// Host returns the hosting activity reference.
func (c *RuntimeContext) Host() uintptr { return c.host }

// AttachCurrentThread registers the calling OS thread with the native
// runtime. The call is idempotent: the first call per thread reports
// first=true, repeated calls are safe and have no further effect.
func (c *RuntimeContext) AttachCurrentThread() (first bool) {
	tid := threadid.Current()
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attached[tid] {
		return false
	}
	c.attached[tid] = true
	return true
}

// Attached reports whether the calling OS thread has been attached.
func (c *RuntimeContext) Attached() bool {
	tid := threadid.Current()
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attached[tid]
}
