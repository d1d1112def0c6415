package ports

import "go.trai.ch/herald/internal/core/domain"

// PendingQueue is the durable record of invocations that could not be
// delivered live. The engine only ever appends; entries are removed by an
// external reader once processed.
//
//go:generate mockgen -source=queue.go -destination=mocks/mock_queue.go -package=mocks
type PendingQueue interface {
	// Append adds an invocation to the queue. It must be safe against
	// concurrent appenders in other processes: the read-modify-write of
	// the backing file is a critical section.
	Append(inv domain.PendingInvocation) error

	// List returns the queued invocations in append order. A missing or
	// unparseable file reads as empty.
	List() ([]domain.PendingInvocation, error)
}
