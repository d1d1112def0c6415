// Package ports defines the core interfaces for the application.
package ports

import "context"

// InvokeResult is the structured outcome of a workflow executor invocation.
// Failures are reported as data rather than panics so the dispatcher can
// apply a uniform degrade policy.
type InvokeResult struct {
	// ExitCode is the executor's exit status. Zero means success. -1 means
	// the process did not produce an exit status (start failure, timeout).
	ExitCode int
	// Output is the captured combined stdout/stderr.
	Output string
	// TimedOut reports whether the invocation exceeded its timeout.
	TimedOut bool
}

// WorkflowExecutor invokes the external workflow command with a routed
// context summary.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type WorkflowExecutor interface {
	// Invoke runs the executor with the given context summary appended as
	// the final argument. The returned error is non-nil for any outcome
	// the dispatcher must treat as a live-execution failure: non-zero
	// exit, timeout, or an absent binary.
	Invoke(ctx context.Context, contextSummary string) (InvokeResult, error)

	// Available reports whether the executor binary can be resolved. Used
	// to short-circuit dispatch and warn once per session when the
	// executor is missing entirely.
	Available() bool
}
