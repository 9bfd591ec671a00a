// Package ffi exports the C ABI of the contract layer for native hosts.
// Every exported function is a thin adapter: it converts C arguments to Go
// values, delegates to pkg/presswerk, and converts the Result back. No
// policy lives here.
//
// The exports only exist in cgo-enabled builds on non-Windows targets; the
// package compiles to nothing elsewhere.
package ffi
