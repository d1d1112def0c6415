// Package batch accumulates classified events and decides when to flush
// them as a unit.
package batch

import (
	"sync"
	"time"

	"go.trai.ch/herald/internal/core/domain"
)

// Batcher buffers events between flushes. A flush happens when either
// condition holds after an offer:
//
//   - the time since the last flush has reached the debounce window, or
//   - the buffer has reached the batch-size ceiling.
//
// The size cap keeps small bursts responsive; the window coalesces rapid
// repeated edits. Buffered events are never dropped: the only way out of the
// buffer is a flush.
//
// Offer and the timer-driven MaybeFlush run on different goroutines, so the
// buffer swap is guarded by a mutex: a flush takes the whole buffer or
// nothing.
type Batcher struct {
	mu        sync.Mutex
	events    []domain.ChangeEvent
	window    time.Duration
	maxSize   int
	lastFlush time.Time
}

// New creates a Batcher with the given debounce window and size ceiling.
func New(window time.Duration, maxSize int) *Batcher {
	return &Batcher{
		window:    window,
		maxSize:   maxSize,
		lastFlush: time.Now(),
	}
}

// Offer appends an event to the buffer and returns the flushed batch if the
// append tripped either flush condition, nil otherwise.
func (b *Batcher) Offer(event domain.ChangeEvent) *domain.PendingBatch {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.events = append(b.events, event)

	if len(b.events) >= b.maxSize || time.Since(b.lastFlush) >= b.window {
		return b.swap()
	}
	return nil
}

// MaybeFlush returns the buffered events if the debounce window has elapsed
// since the last flush, nil otherwise. Called from the session's timer.
func (b *Batcher) MaybeFlush() *domain.PendingBatch {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 || time.Since(b.lastFlush) < b.window {
		return nil
	}
	return b.swap()
}

// Flush unconditionally returns the buffered events, nil when empty. Used
// on shutdown so buffered work reaches the dispatch path.
func (b *Batcher) Flush() *domain.PendingBatch {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.events) == 0 {
		return nil
	}
	return b.swap()
}

// Len returns the number of buffered events.
func (b *Batcher) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.events)
}

// swap atomically exchanges the buffer for an empty one. Callers hold b.mu.
func (b *Batcher) swap() *domain.PendingBatch {
	events := b.events
	b.events = nil
	b.lastFlush = time.Now()

	return &domain.PendingBatch{
		Events:    events,
		CreatedAt: time.Now(),
	}
}
