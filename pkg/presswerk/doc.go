// Package presswerk is the cross-language contract core of the Presswerk
// print router. It defines the closed type and result model shared with the
// C-callable boundary, the legal job state machine, and the boundary
// lifecycle itself (handles, per-thread last error, version metadata).
//
// The package is deliberately free of any print-protocol, discovery, or
// rendering logic. Those live in external collaborators; what they share
// with this layer is the binary contract: wire codes, struct layouts (see
// the abi subpackage), and the invariants spelled out in the contract and
// bridge subpackages.
//
// Everything here is synchronous and completes in bounded time. Handles
// returned by Initialize are independent of each other; callers that share a
// single handle across goroutines must serialize access themselves.
package presswerk
