package presswerk

import (
	"crypto/sha256"
	"errors"
	"sync"
	"time"
)

// ErrInitFailed is recorded when Initialize cannot allocate boundary state.
var ErrInitFailed = errors.New("presswerk: initialization failed")

// instance is the state owned by one handle. Handles are fully independent;
// nothing in here is shared between instances.
type instance struct {
	createdAt time.Time
}

// The handle registry. Raw pointers never cross the boundary: C callers hold
// an index into this table, so reconstructing the internal state is a map
// lookup rather than a cast. The counter starts at 1 so zero is never a
// valid handle.
var (
	regMu sync.Mutex
	next  Handle = 1
	reg          = map[Handle]*instance{}
)

// Initialize allocates boundary state and returns its handle. On failure it
// returns NullHandle, a non-nil error, and records the message in the
// calling thread's last error.
func Initialize() (Handle, error) {
	inst := &instance{createdAt: time.Now()}

	regMu.Lock()
	h := next
	next++
	reg[h] = inst
	regMu.Unlock()

	if h == NullHandle {
		// Counter wrap; never hand out the null handle.
		regMu.Lock()
		delete(reg, h)
		regMu.Unlock()
		setLastError(ErrInitFailed.Error())
		return NullHandle, ErrInitFailed
	}
	clearLastError()
	return h, nil
}

// Free releases the state behind h. Freeing the null handle or a handle that
// was already freed is a safe no-op.
func Free(h Handle) {
	if h == NullHandle {
		return
	}
	regMu.Lock()
	delete(reg, h)
	regMu.Unlock()
}

// IsInitialized reports whether h refers to live boundary state. It is false
// for the null handle and for freed handles.
func IsInitialized(h Handle) bool {
	if h == NullHandle {
		return false
	}
	regMu.Lock()
	_, ok := reg[h]
	regMu.Unlock()
	return ok
}

// CreatedAt returns when the state behind h was allocated. ok is false for
// null or freed handles.
func CreatedAt(h Handle) (t time.Time, ok bool) {
	if h == NullHandle {
		return time.Time{}, false
	}
	regMu.Lock()
	inst, ok := reg[h]
	regMu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	return inst.createdAt, true
}

// ValidateTransition reports whether from -> to is a legal job status
// change. It returns ResultOk for the eight legal pairs and
// ResultInvalidParam for everything else, including self-loops and any
// transition out of a terminal state. The job-queue collaborator must call
// this before persisting a status change.
func ValidateTransition(from, to JobStatus) Result {
	if !TransitionAllowed(from, to) {
		return fail(ResultInvalidParam, invalidTransitionReason)
	}
	return succeed()
}

// HashSize is the fixed output size of the designated content hash.
const HashSize = sha256.Size

// HashContent computes the SHA-256 digest of data into out. Nil input or
// output is rejected with ResultNullPointer before any memory access. A
// non-nil empty buffer is valid input.
func HashContent(data []byte, out *[HashSize]byte) Result {
	if data == nil {
		return fail(ResultNullPointer, "hash input buffer is null")
	}
	if out == nil {
		return fail(ResultNullPointer, "hash output buffer is null")
	}
	*out = sha256.Sum256(data)
	return succeed()
}
