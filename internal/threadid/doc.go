// Package threadid exposes the calling OS thread identity used for the
// per-thread last-error store and the main-thread affinity guard.
package threadid
