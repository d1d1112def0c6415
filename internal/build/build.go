// Package build holds version information injected at link time.
package build

var (
	// Version is the release version, set via -ldflags.
	Version = "dev"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
