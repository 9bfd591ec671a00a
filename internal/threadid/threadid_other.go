//go:build !linux

package threadid

// Current returns 0 on platforms without a thread-id probe; the per-thread
// last-error store degrades to a single process-wide slot there.
func Current() int {
	return 0
}

// IsMain conservatively reports true on platforms without a main-thread
// marker. The Linux build is the only shim target today; native bridges on
// other platforms carry their own marker.
func IsMain() bool {
	return true
}
