package presswerk

import (
	"sync"

	"github.com/presswerk/presswerk-go/internal/threadid"
)

// The last-error store is keyed by OS thread id so that concurrent callers
// coming in through the C boundary never observe each other's failures.
// Every failing boundary call overwrites the calling thread's slot; every
// succeeding call clears it.
var (
	lastErrMu sync.Mutex
	lastErrs  = map[int]string{}
)

func setLastError(msg string) {
	tid := threadid.Current()
	lastErrMu.Lock()
	lastErrs[tid] = msg
	lastErrMu.Unlock()
}

func clearLastError() {
	tid := threadid.Current()
	lastErrMu.Lock()
	delete(lastErrs, tid)
	lastErrMu.Unlock()
}

// LastError returns the advisory message recorded by the most recent failing
// boundary call on the calling thread, or "" when the most recent call
// succeeded. The string is advisory only; control flow must key off the
// Result, never off this text.
func LastError() string {
	tid := threadid.Current()
	lastErrMu.Lock()
	msg := lastErrs[tid]
	lastErrMu.Unlock()
	return msg
}

// fail records msg for the calling thread and returns r unchanged. It keeps
// the failure paths in the boundary functions one-liners.
func fail(r Result, msg string) Result {
	setLastError(msg)
	return r
}

// succeed clears the calling thread's slot and returns ResultOk.
func succeed() Result {
	clearLastError()
	return ResultOk
}
