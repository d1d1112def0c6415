// Package detector selects the log output mode from the environment.
package detector

import (
	"os"

	"golang.org/x/term"
)

// LogMode represents how log output is rendered.
type LogMode int

const (
	// ModeAuto detects the appropriate mode from the environment.
	ModeAuto LogMode = iota
	// ModePretty forces colored human-readable output.
	ModePretty
	// ModeJSON forces machine-readable JSON lines.
	ModeJSON
)

// DetectEnvironment returns the recommended log mode. Non-TTY output and CI
// environments get JSON so log collectors can parse the stream.
func DetectEnvironment() LogMode {
	isTTY := term.IsTerminal(int(os.Stderr.Fd()))

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if !isTTY || isCI {
		return ModeJSON
	}
	return ModePretty
}

// ResolveMode applies the user's flag on top of auto-detection. userFlag is
// one of "auto", "pretty", "json", or empty.
func ResolveMode(autoDetected LogMode, userFlag string) LogMode {
	switch userFlag {
	case "pretty":
		return ModePretty
	case "json":
		return ModeJSON
	default:
		return autoDetected
	}
}
