// Package abi computes and checks the C struct layouts that cross the
// Presswerk language boundary.
//
// Layouts are fixed at definition time: NewLayout walks the fields in
// declared order, inserts natural padding, and rejects any declaration whose
// alignment cannot be satisfied. The four reference layouts (job-info,
// server-config, printer-info, audit-entry) are the transmission format of
// the boundary; changing their field order, sizes, or pointer width is a
// breaking ABI change.
//
// Pointer-valued fields are sized for 64-bit targets in the reference
// layouts; Compliant reports whether a layout is usable on a target with a
// given native pointer width (8 bytes everywhere except WASM's 4).
package abi
