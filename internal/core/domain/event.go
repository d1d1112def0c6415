// Package domain contains the core types for change detection and routing.
package domain

import "time"

// EventKind represents the type of filesystem mutation that was observed.
type EventKind uint8

const (
	// Created indicates a file was created.
	Created EventKind = iota
	// Modified indicates a file's content was changed.
	Modified
	// Deleted indicates a file was removed.
	Deleted
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case Created:
		return "created"
	case Modified:
		return "modified"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ChangeEvent is a classified filesystem mutation. It is created by the
// classifier and is immutable afterwards: the router reads it, the journal
// records it, and it is discarded once its batch has been dispatched or
// persisted.
type ChangeEvent struct {
	Path       InternedString
	Kind       EventKind
	ObservedAt time.Time
	Category   string
	Priority   Priority
	Agents     []string
	Digest     string
}

// PendingBatch is the set of events accumulated between flushes. A batch is
// flushed in its entirety; a partial flush never occurs.
type PendingBatch struct {
	Events    []ChangeEvent
	CreatedAt time.Time
}

// Priority returns the maximum severity among the batch's events.
func (b *PendingBatch) Priority() Priority {
	p := Low
	for _, event := range b.Events {
		p = p.Max(event.Priority)
	}
	return p
}
