package bridge

import (
	"errors"

	"github.com/presswerk/presswerk-go/internal/threadid"
)

// Op enumerates the cross-boundary bridge operations. Every Op carries
// exactly one ThreadRequirement; the mapping is total and the internalcheck
// suite verifies the registry stays complete.
type Op int

const (
	OpShowPrintDialog Op = iota
	OpCaptureImage
	OpPickFile
	OpReadPickedFile
	OpShareFile
	OpStoreSecret
	OpLoadSecret
	OpDeleteSecret
)

// ThreadRequirement classifies where an operation may run.
type ThreadRequirement int

const (
	// AnyThread operations are safe from any OS thread.
	AnyThread ThreadRequirement = iota
	// MainThread operations present UI and must run on the process main
	// thread.
	MainThread
)

func (r ThreadRequirement) String() string {
	if r == MainThread {
		return "main-thread"
	}
	return "any-thread"
}

func (op Op) String() string {
	switch op {
	case OpShowPrintDialog:
		return "show_print_dialog"
	case OpCaptureImage:
		return "capture_image"
	case OpPickFile:
		return "pick_file"
	case OpReadPickedFile:
		return "read_picked_file"
	case OpShareFile:
		return "share_file"
	case OpStoreSecret:
		return "store_secret"
	case OpLoadSecret:
		return "load_secret"
	case OpDeleteSecret:
		return "delete_secret"
	default:
		return "unknown"
	}
}

// Requirement returns the thread affinity of the operation. UI-presenting
// operations are MainThread; storage and background file work is AnyThread.
// Unknown values default to MainThread, the restrictive side.
func (op Op) Requirement() ThreadRequirement {
	switch op {
	case OpShowPrintDialog, OpCaptureImage, OpPickFile, OpShareFile:
		return MainThread
	case OpReadPickedFile, OpStoreSecret, OpLoadSecret, OpDeleteSecret:
		return AnyThread
	default:
		return MainThread
	}
}

// AllOps returns the closed operation set.
func AllOps() []Op {
	return []Op{
		OpShowPrintDialog,
		OpCaptureImage,
		OpPickFile,
		OpReadPickedFile,
		OpShareFile,
		OpStoreSecret,
		OpLoadSecret,
		OpDeleteSecret,
	}
}

// ErrMainThreadRequired reports a MainThread operation invoked off the main
// thread. The call is rejected before starting; it never queues.
var ErrMainThreadRequired = errors.New("bridge: operation requires the main thread")

// Guard enforces thread affinity at dispatch time.
type Guard struct {
	isMain func() bool
}

// NewGuard returns a Guard using the platform main-thread marker.
func NewGuard() *Guard {
	return &Guard{isMain: threadid.IsMain}
}

// NewGuardWithProbe returns a Guard with a caller-supplied main-thread
// probe. Native shells pass their own marker; tests pass a fake.
func NewGuardWithProbe(isMain func() bool) *Guard {
	return &Guard{isMain: isMain}
}

// Check rejects MainThread operations invoked off the main thread and
// admits everything else.
func (g *Guard) Check(op Op) error {
	if op.Requirement() == MainThread && !g.isMain() {
		return ErrMainThreadRequired
	}
	return nil
}
