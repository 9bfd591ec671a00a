package presswerk

// Handle is an opaque, non-zero reference to boundary-owned state. Zero is
// the null handle and is never valid; boundary functions treat it as a safe
// no-op or report NullPointer, never dereference it.
type Handle uintptr

// NullHandle is the invalid zero handle.
const NullHandle Handle = 0

// HandleFromRaw reconstructs a Handle from a raw numeric value received
// across the boundary. It succeeds iff the value is non-zero.
func HandleFromRaw(raw uintptr) (Handle, bool) {
	if raw == 0 {
		return NullHandle, false
	}
	return Handle(raw), true
}
