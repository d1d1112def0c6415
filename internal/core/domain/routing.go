package domain

import "time"

// RoutedWork is the per-agent view of a flushed batch. One RoutedWork exists
// per distinct agent that appeared in the batch's consumer sets. Events that
// name multiple agents fan out into each agent's RoutedWork.
type RoutedWork struct {
	// Agent is the downstream consumer this work is addressed to.
	Agent string
	// Events are the batch events that named this agent, in offer order.
	Events []ChangeEvent
	// Priority is the maximum severity among Events.
	Priority Priority
	// ContextSummary is a compact description of this agent's share of the
	// batch, suitable for passing to the workflow executor as a single
	// argument. It never mentions other agents' events.
	ContextSummary string
}

// PendingInvocation is the durable record of a routed-work item that could
// not be delivered to the live executor. It is appended to the pending queue
// file and consumed by an external reader; the engine never mutates or
// removes entries.
//
// The JSON field names match the queue file format shared with external
// tooling.
type PendingInvocation struct {
	Agent         string    `json:"agent"`
	Timestamp     time.Time `json:"timestamp"`
	Trigger       string    `json:"trigger"`
	Prompt        string    `json:"prompt"`
	Priority      Priority  `json:"priority"`
	AutoTriggered bool      `json:"auto_triggered"`
}

// TriggerFileWatcher is the trigger source recorded on invocations that were
// queued by the watch session.
const TriggerFileWatcher = "file-watcher"

// DispatchStatus is the terminal state of a single dispatch attempt.
type DispatchStatus uint8

const (
	// DispatchSucceeded means the live executor accepted the work.
	DispatchSucceeded DispatchStatus = iota
	// DispatchDegraded means live execution failed and the work was
	// persisted to the pending queue instead.
	DispatchDegraded
	// DispatchLost means both live execution and persistence failed.
	// This is the only outcome that loses work and is always logged.
	DispatchLost
)

// String returns the lowercase name of the dispatch status.
func (s DispatchStatus) String() string {
	switch s {
	case DispatchSucceeded:
		return "succeeded"
	case DispatchDegraded:
		return "degraded"
	default:
		return "lost"
	}
}

// DispatchOutcome reports what happened to one routed-work item.
type DispatchOutcome struct {
	Agent  string
	Status DispatchStatus
	// Output is the captured executor output, if any.
	Output string
	// Err is the live-execution failure that caused a degrade, nil on success.
	Err error
}
