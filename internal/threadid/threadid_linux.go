//go:build linux

package threadid

import "golang.org/x/sys/unix"

// Current returns the kernel thread id of the calling OS thread. Callers
// that need a stable id across calls must hold the thread via
// runtime.LockOSThread.
func Current() int {
	return unix.Gettid()
}

// IsMain reports whether the calling OS thread is the process main thread.
// On Linux the main thread's tid equals the pid.
func IsMain() bool {
	return unix.Gettid() == unix.Getpid()
}
