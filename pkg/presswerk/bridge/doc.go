// Package bridge specifies the safety contract every native platform bridge
// (iOS, Android, desktop stub) must uphold, and provides the pieces of it
// that are platform-independent: the toll-free equivalence relation, the
// secret-store acceptance checks, the thread-affinity classification with
// its runtime guard, and the process-lifetime native runtime context.
//
// The native bridges themselves live with their platforms; a bridge is
// conformant iff it passes VerifyKeychain, routes every operation through a
// Guard, and only reinterprets pointers between toll-free equivalent
// representations.
package bridge
