// Package logging provides the minimal logging facade used across the
// Presswerk contract layer.
//
// The Logger interface wraps a subset of log/slog. Secrets never go through
// it in the clear: mark sensitive attributes with Redacted. Document bytes,
// key material, and keychain values must not be logged at all.
package logging
