// Package shell runs the external agent workflow command.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync"
	"time"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorkflowExecutor = (*Executor)(nil)

// Executor invokes the configured workflow command with a per-invocation
// timeout. The context summary is appended as the command's final argument.
type Executor struct {
	command []string
	timeout time.Duration
	logger  ports.Logger

	availableOnce sync.Once
	available     bool
}

// NewExecutor creates an Executor from the configured command line.
func NewExecutor(cfg domain.ExecutorConfig, logger ports.Logger) (*Executor, error) {
	if len(cfg.Command) == 0 {
		return nil, domain.ErrExecutorCommandEmpty
	}
	return &Executor{
		command: cfg.Command,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Available reports whether the workflow binary resolves on PATH. The probe
// runs once; the binary appearing mid-session takes effect on restart.
func (e *Executor) Available() bool {
	e.availableOnce.Do(func() {
		_, err := exec.LookPath(e.command[0])
		e.available = err == nil
	})
	return e.available
}

// Invoke runs the workflow command with the context summary appended and
// waits for completion. Output is the combined stdout and stderr. A non-zero
// exit, a missing binary, and a timeout are all returned as errors so the
// caller can degrade to the pending queue.
func (e *Executor) Invoke(ctx context.Context, contextSummary string) (ports.InvokeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := make([]string, 0, len(e.command))
	args = append(args, e.command[1:]...)
	args = append(args, contextSummary)

	cmd := exec.CommandContext(ctx, e.command[0], args...) //nolint:gosec // operator-configured command

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	result := ports.InvokeResult{
		ExitCode: -1,
		Output:   output.String(),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		result.TimedOut = true
		return result, zerr.With(domain.ErrExecutorTimedOut, "timeout", e.timeout.String())
	case errors.Is(err, exec.ErrNotFound):
		return result, domain.ErrExecutorNotFound
	case err != nil:
		return result, zerr.With(zerr.Wrap(err, domain.ErrExecutorFailed.Error()), "exit_code", result.ExitCode)
	}

	return result, nil
}
