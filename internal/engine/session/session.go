// Package session runs the watch loop: it owns the fingerprint cache and
// batcher, consumes watcher events, and feeds flushed batches to the
// dispatch worker.
package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/herald/internal/engine/batch"
	"go.trai.ch/herald/internal/engine/classifier"
	"go.trai.ch/herald/internal/engine/dispatch"
	"go.trai.ch/herald/internal/engine/fingerprint"
	"go.trai.ch/herald/internal/engine/router"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// batchChannelBuffer bounds the flushed batches waiting for the dispatch
// worker. Dispatch is minutes-slow in the worst case; the buffer decouples
// it from event delivery without growing unboundedly.
const batchChannelBuffer = 16

// flushTickInterval is how often the time-based flush condition is checked
// independently of event arrivals.
const flushTickInterval = time.Second

// Session wires one watch run together. All mutable state (fingerprint
// cache, batcher) is owned here so multiple sessions can run in isolation.
type Session struct {
	cfg        *domain.Config
	watcher    ports.Watcher
	classifier *classifier.Classifier
	cache      *fingerprint.Cache
	batcher    *batch.Batcher
	router     *router.Router
	dispatcher *dispatch.Dispatcher
	journal    ports.ChangeJournal
	logger     ports.Logger
	tracer     ports.Tracer
}

// New creates a Session for the given configuration.
func New(
	cfg *domain.Config,
	watcher ports.Watcher,
	cls *classifier.Classifier,
	dispatcher *dispatch.Dispatcher,
	journal ports.ChangeJournal,
	logger ports.Logger,
	tracer ports.Tracer,
) *Session {
	return &Session{
		cfg:        cfg,
		watcher:    watcher,
		classifier: cls,
		cache:      fingerprint.NewCache(),
		batcher:    batch.New(cfg.Debounce, cfg.BatchSize),
		router:     router.New(),
		dispatcher: dispatcher,
		journal:    journal,
		logger:     logger,
		tracer:     tracer,
	}
}

// Run blocks until the context is cancelled or the watch fails. On shutdown
// the remaining buffered events are flushed and dispatched before Run
// returns; with the context cancelled, live execution fails fast and the
// work degrades to the pending queue rather than being lost.
func (s *Session) Run(ctx context.Context) error {
	info, err := os.Stat(s.cfg.Root)
	if err != nil || !info.IsDir() {
		return zerr.With(domain.ErrWatchRootMissing, "root", s.cfg.Root)
	}

	if err := s.watcher.Start(ctx, s.cfg.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatchStartFailed.Error())
	}
	defer func() { _ = s.watcher.Stop() }()

	s.logger.Info(fmt.Sprintf("watching %s (debounce %s, batch size %d)",
		s.cfg.Root, s.cfg.Debounce, s.cfg.BatchSize))

	batches := make(chan *domain.PendingBatch, batchChannelBuffer)
	producers := make(chan struct{}, 2)

	g, ctx := errgroup.WithContext(ctx)

	// Event loop. The watcher closes its event stream when the context is
	// cancelled, which ends this loop and triggers the final flush.
	g.Go(func() error {
		defer func() { producers <- struct{}{} }()
		for event := range s.watcher.Events() {
			s.handleEvent(event, batches)
		}
		s.enqueue(batches, s.batcher.Flush())
		return nil
	})

	// Timer loop for the time-based flush condition.
	g.Go(func() error {
		defer func() { producers <- struct{}{} }()
		ticker := time.NewTicker(flushTickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				s.enqueue(batches, s.batcher.MaybeFlush())
			}
		}
	})

	// Close the batch channel once both producers are done so the worker
	// drains and exits.
	go func() {
		<-producers
		<-producers
		close(batches)
	}()

	// Dispatch worker, off the watch loop's critical path. A slow external
	// executor delays later batches but never event observation.
	g.Go(func() error {
		for pending := range batches {
			s.dispatchBatch(ctx, pending)
		}
		return nil
	})

	return g.Wait()
}

// handleEvent classifies, deduplicates, journals, and enqueues one raw
// watcher event. Per-event faults are isolated: they skip the event and
// processing continues.
func (s *Session) handleEvent(raw ports.WatchEvent, batches chan<- *domain.PendingBatch) {
	kind, ok := convertOp(raw.Operation)
	if !ok {
		return
	}

	if kind != domain.Deleted {
		info, err := os.Stat(raw.Path)
		if err != nil {
			// The path vanished between notification and stat; the
			// removal event that follows will handle it.
			return
		}
		if info.IsDir() {
			return
		}
	}

	cls := s.classifier.Classify(raw.Path)
	if cls == nil {
		return
	}

	event := domain.ChangeEvent{
		Path:       domain.NewInternedString(raw.Path),
		Kind:       kind,
		ObservedAt: time.Now(),
		Category:   cls.Category,
		Priority:   cls.Priority,
		Agents:     cls.Agents,
	}

	if kind == domain.Deleted {
		s.cache.Evict(raw.Path)
	} else {
		digest, err := fingerprint.DigestFile(raw.Path)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping %s: %v", filepath.Base(raw.Path), err))
			return
		}
		if !s.cache.ShouldEmit(raw.Path, digest) {
			return
		}
		s.cache.Record(raw.Path, digest)
		event.Digest = digest
	}

	if err := s.journal.Record(event); err != nil {
		s.logger.Warn(fmt.Sprintf("could not journal change: %v", err))
	}

	s.logger.Info(fmt.Sprintf("%s: %s -> %s (%s)",
		kind, filepath.Base(raw.Path), event.Category, event.Priority))

	s.enqueue(batches, s.batcher.Offer(event))
}

// enqueue hands a flushed batch to the dispatch worker. The send blocks
// under backlog; flushed events are never dropped.
func (s *Session) enqueue(batches chan<- *domain.PendingBatch, pending *domain.PendingBatch) {
	if pending == nil {
		return
	}
	batches <- pending
}

func (s *Session) dispatchBatch(ctx context.Context, pending *domain.PendingBatch) {
	ctx, span := s.tracer.Start(ctx, "flush")
	defer span.End()
	span.SetAttribute("events", len(pending.Events))
	span.SetAttribute("priority", pending.Priority().String())

	work := s.router.Route(pending)
	s.logger.Info(fmt.Sprintf("processing %d changes for %d agents",
		len(pending.Events), len(work)))

	s.dispatcher.Dispatch(ctx, work)
}

// convertOp maps a raw watch operation to an event kind. Renames map to
// Deleted: the old path no longer exists, and the new name arrives as its
// own create event.
func convertOp(op ports.WatchOp) (domain.EventKind, bool) {
	switch op {
	case ports.OpCreate:
		return domain.Created, true
	case ports.OpWrite:
		return domain.Modified, true
	case ports.OpRemove, ports.OpRename:
		return domain.Deleted, true
	default:
		return 0, false
	}
}
