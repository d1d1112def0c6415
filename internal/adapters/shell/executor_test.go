package shell_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/shell"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newExecutor(t *testing.T, command []string, timeout time.Duration) ports.WorkflowExecutor {
	t.Helper()
	executor, err := shell.NewExecutor(domain.ExecutorConfig{
		Command: command,
		Timeout: timeout,
	}, nopLogger{})
	require.NoError(t, err)
	return executor
}

func TestNewExecutor_EmptyCommand(t *testing.T) {
	_, err := shell.NewExecutor(domain.ExecutorConfig{Timeout: time.Second}, nopLogger{})
	require.ErrorIs(t, err, domain.ErrExecutorCommandEmpty)
}

func TestExecutor_Invoke_CapturesOutput(t *testing.T) {
	executor := newExecutor(t, []string{"sh", "-c", `echo "got: $2" >&2; echo ok`, "--"}, 5*time.Second)

	result, err := executor.Invoke(context.Background(), "readme-updater: 2 config files (high)")
	require.NoError(t, err)

	assert.Equal(t, 0, result.ExitCode)
	assert.Contains(t, result.Output, "ok")
	assert.Contains(t, result.Output, "got: readme-updater: 2 config files (high)")
}

func TestExecutor_Invoke_AppendsSummaryAsFinalArgument(t *testing.T) {
	executor := newExecutor(t, []string{"sh", "-c", `echo "$2"`, "--", "--context"}, 5*time.Second)

	result, err := executor.Invoke(context.Background(), "the summary")
	require.NoError(t, err)
	assert.Contains(t, result.Output, "the summary")
}

func TestExecutor_Invoke_NonZeroExit(t *testing.T) {
	executor := newExecutor(t, []string{"sh", "-c", "echo partial; exit 42"}, 5*time.Second)

	result, err := executor.Invoke(context.Background(), "summary")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrExecutorFailed.Error())

	// Output is still captured for the caller even when the command fails.
	assert.Equal(t, 42, result.ExitCode)
	assert.Contains(t, result.Output, "partial")
}

func TestExecutor_Invoke_Timeout(t *testing.T) {
	executor := newExecutor(t, []string{"sleep", "5"}, 50*time.Millisecond)

	result, err := executor.Invoke(context.Background(), "summary")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrExecutorTimedOut.Error())
	assert.True(t, result.TimedOut)
}

func TestExecutor_Invoke_MissingBinary(t *testing.T) {
	executor := newExecutor(t, []string{"herald-no-such-binary-xyz"}, time.Second)

	_, err := executor.Invoke(context.Background(), "summary")
	require.ErrorIs(t, err, domain.ErrExecutorNotFound)
}

func TestExecutor_Available(t *testing.T) {
	present := newExecutor(t, []string{"sh", "-c", "true"}, time.Second)
	assert.True(t, present.Available())

	absent := newExecutor(t, []string{"herald-no-such-binary-xyz"}, time.Second)
	assert.False(t, absent.Available())
}
