package ports

import "go.trai.ch/herald/internal/core/domain"

// ChangeJournal is an append-only analytics sink for classified events.
// Writes are fire-and-forget from the session's perspective: a failed append
// is logged and never interrupts processing.
type ChangeJournal interface {
	// Record appends one classified event to the journal.
	Record(event domain.ChangeEvent) error
}
