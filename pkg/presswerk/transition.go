package presswerk

// invalidTransitionReason is the advisory message recorded in the per-thread
// last error when a transition is rejected. Callers must not parse it.
const invalidTransitionReason = "Invalid job state transition"

// legalTransitions is the complete relation of permitted status changes.
// Completed, Failed and Cancelled are terminal: they have no outgoing
// entries. Self-loops are deliberately absent.
var legalTransitions = map[JobStatus][]JobStatus{
	StatusPending:    {StatusProcessing, StatusCancelled, StatusHeld},
	StatusProcessing: {StatusCompleted, StatusFailed, StatusCancelled},
	StatusHeld:       {StatusPending, StatusCancelled},
}

// Terminal reports whether s has no legal outgoing transition.
func (s JobStatus) Terminal() bool {
	switch s {
	case StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// TransitionAllowed reports whether from -> to is a legal status change.
func TransitionAllowed(from, to JobStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LegalNextStatuses returns the statuses reachable from the given status in
// a single legal transition. Terminal and unknown statuses yield nil.
func LegalNextStatuses(from JobStatus) []JobStatus {
	next := legalTransitions[from]
	if len(next) == 0 {
		return nil
	}
	out := make([]JobStatus, len(next))
	copy(out, next)
	return out
}

// PathBetween returns some finite sequence of legal transitions leading from
// one status to another, including both endpoints, or nil when the target is
// unreachable. Used to demonstrate that every terminal state is reachable
// from Pending.
func PathBetween(from, to JobStatus) []JobStatus {
	if from == to {
		return []JobStatus{from}
	}
	type node struct {
		status JobStatus
		prev   int
	}
	queue := []node{{from, -1}}
	seen := map[JobStatus]bool{from: true}
	for i := 0; i < len(queue); i++ {
		for _, next := range legalTransitions[queue[i].status] {
			if seen[next] {
				continue
			}
			queue = append(queue, node{next, i})
			if next == to {
				var path []JobStatus
				for j := len(queue) - 1; j != -1; j = queue[j].prev {
					path = append([]JobStatus{queue[j].status}, path...)
				}
				return path
			}
			seen[next] = true
		}
	}
	return nil
}
