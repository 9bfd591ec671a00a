package presswerk

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags. Development builds carry the
// defaults below.
var (
	version   = "0.1.0-dev"
	gitCommit = "unknown"
)

// buildInfo is assembled once at process start; the boundary hands out the
// same string for the lifetime of the process.
var buildInfo = fmt.Sprintf("presswerk-go %s (%s) %s/%s %s",
	version, gitCommit, runtime.GOOS, runtime.GOARCH, runtime.Version())

// Version returns the semantic version of the contract layer. It is fixed at
// process start and always contains at least one dot.
func Version() string {
	return version
}

// BuildInfo returns a static, human-readable build description.
func BuildInfo() string {
	return buildInfo
}
