package presswerk

import (
	"runtime"
	"testing"
)

var legalPairs = [][2]JobStatus{
	{StatusPending, StatusProcessing},
	{StatusPending, StatusCancelled},
	{StatusPending, StatusHeld},
	{StatusProcessing, StatusCompleted},
	{StatusProcessing, StatusFailed},
	{StatusProcessing, StatusCancelled},
	{StatusHeld, StatusPending},
	{StatusHeld, StatusCancelled},
}

func isLegalPair(from, to JobStatus) bool {
	for _, p := range legalPairs {
		if p[0] == from && p[1] == to {
			return true
		}
	}
	return false
}

// Exhaustive check over the full (from, to) grid, self-loops included.
func TestValidateTransitionExhaustive(t *testing.T) {
	// The last-error store is keyed by OS thread; keep the whole grid on one.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for _, from := range AllJobStatuses() {
		for _, to := range AllJobStatuses() {
			got := ValidateTransition(from, to)
			if isLegalPair(from, to) {
				if got != ResultOk {
					t.Errorf("ValidateTransition(%v, %v) = %v, want Ok", from, to, got)
				}
				if LastError() != "" {
					t.Errorf("legal transition %v -> %v left a last error", from, to)
				}
			} else {
				if got != ResultInvalidParam {
					t.Errorf("ValidateTransition(%v, %v) = %v, want InvalidParam", from, to, got)
				}
				if LastError() != invalidTransitionReason {
					t.Errorf("rejection reason = %q, want %q", LastError(), invalidTransitionReason)
				}
			}
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []JobStatus{StatusCompleted, StatusFailed, StatusCancelled} {
		if !from.Terminal() {
			t.Errorf("%v must be terminal", from)
		}
		if next := LegalNextStatuses(from); next != nil {
			t.Errorf("%v has outgoing transitions %v", from, next)
		}
	}
	for _, from := range []JobStatus{StatusPending, StatusProcessing, StatusHeld} {
		if from.Terminal() {
			t.Errorf("%v must not be terminal", from)
		}
	}
}

func TestTransitionsFromUnknownRejected(t *testing.T) {
	if ValidateTransition(StatusUnknown, StatusPending) != ResultInvalidParam {
		t.Error("transition out of the unknown sentinel must be rejected")
	}
	if ValidateTransition(StatusPending, StatusUnknown) != ResultInvalidParam {
		t.Error("transition into the unknown sentinel must be rejected")
	}
}

// Every terminal state must be reachable from Pending through some finite
// legal sequence.
func TestTerminalStatesReachableFromPending(t *testing.T) {
	for _, target := range []JobStatus{StatusCompleted, StatusFailed, StatusCancelled} {
		path := PathBetween(StatusPending, target)
		if path == nil {
			t.Errorf("%v unreachable from Pending", target)
			continue
		}
		if path[0] != StatusPending || path[len(path)-1] != target {
			t.Errorf("path %v does not connect Pending to %v", path, target)
		}
		for i := 0; i+1 < len(path); i++ {
			if !TransitionAllowed(path[i], path[i+1]) {
				t.Errorf("path step %v -> %v is illegal", path[i], path[i+1])
			}
		}
	}
}

func TestPathBetweenUnreachable(t *testing.T) {
	if path := PathBetween(StatusCompleted, StatusPending); path != nil {
		t.Errorf("found path %v out of a terminal state", path)
	}
}
