package presswerk

import (
	"runtime"
	"sync"
	"testing"

	"github.com/presswerk/presswerk-go/internal/threadid"
)

// Two pinned threads failing with different inputs must each read back their
// own message.
func TestLastErrorIsolatedPerThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	if threadid.Current() == 0 {
		t.Skip("no thread-id probe on this platform; the store is a single slot")
	}

	var out [HashSize]byte
	HashContent(nil, &out)
	mine := LastError()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		ValidateTransition(StatusCompleted, StatusPending)
		if got := LastError(); got != invalidTransitionReason {
			t.Errorf("other thread read %q, want %q", got, invalidTransitionReason)
		}
	}()
	wg.Wait()

	if got := LastError(); got != mine {
		t.Errorf("another thread's failure overwrote this thread's error: %q -> %q", mine, got)
	}
}
