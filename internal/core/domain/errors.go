package domain

import "go.trai.ch/zerr"

var (
	// ErrWatchRootMissing is returned when the configured watch root does not
	// exist. This is the only fatal condition: without an event source there
	// is nothing to do.
	ErrWatchRootMissing = zerr.New("watch root does not exist")

	// ErrWatchStartFailed is returned when the filesystem watch cannot be
	// established.
	ErrWatchStartFailed = zerr.New("failed to establish filesystem watch")

	// ErrInvalidPriority is returned when a priority string is not one of
	// high, medium, or low.
	ErrInvalidPriority = zerr.New("invalid priority, expected 'high', 'medium' or 'low'")

	// ErrInvalidBatchSize is returned when the configured batch size is not positive.
	ErrInvalidBatchSize = zerr.New("batch size must be positive")

	// ErrInvalidDebounce is returned when the configured debounce window is not positive.
	ErrInvalidDebounce = zerr.New("debounce window must be positive")

	// ErrRuleMissingCategory is returned when a classification rule has no category.
	ErrRuleMissingCategory = zerr.New("classification rule missing category")

	// ErrRuleMissingAgents is returned when a classification rule names no agents.
	ErrRuleMissingAgents = zerr.New("classification rule names no agents")

	// ErrRuleMissingPredicate is returned when a rule has no dirs, names, or extensions.
	ErrRuleMissingPredicate = zerr.New("classification rule has no match predicate")

	// ErrExecutorCommandEmpty is returned when the executor command is empty.
	ErrExecutorCommandEmpty = zerr.New("executor command is empty")

	// ErrExecutorTimedOut is returned when the workflow executor exceeded its timeout.
	ErrExecutorTimedOut = zerr.New("workflow executor timed out")

	// ErrExecutorNotFound is returned when the executor binary is not on PATH.
	ErrExecutorNotFound = zerr.New("workflow executor not found")

	// ErrExecutorFailed is returned when the workflow executor exited non-zero.
	ErrExecutorFailed = zerr.New("workflow executor failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrQueueReadFailed is returned when the pending queue file cannot be read.
	ErrQueueReadFailed = zerr.New("failed to read pending queue")

	// ErrQueueWriteFailed is returned when the pending queue file cannot be written.
	ErrQueueWriteFailed = zerr.New("failed to write pending queue")

	// ErrQueueLockFailed is returned when the pending queue lock cannot be acquired.
	ErrQueueLockFailed = zerr.New("failed to lock pending queue")

	// ErrJournalWriteFailed is returned when a change journal entry cannot be appended.
	ErrJournalWriteFailed = zerr.New("failed to append change journal entry")
)
