// Package dispatch hands routed work to the live executor, falling back to
// the durable pending queue when live execution fails.
package dispatch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher makes a single live attempt per routed-work item. Any failure
// (non-zero exit, timeout, absent binary) degrades to a durable append; no
// retry is scheduled here. Retrying is the responsibility of whatever drains
// the pending queue later.
type Dispatcher struct {
	executor ports.WorkflowExecutor
	queue    ports.PendingQueue
	logger   ports.Logger
	tracer   ports.Tracer

	warnMissing sync.Once
}

// New creates a Dispatcher.
func New(
	executor ports.WorkflowExecutor,
	queue ports.PendingQueue,
	logger ports.Logger,
	tracer ports.Tracer,
) *Dispatcher {
	return &Dispatcher{
		executor: executor,
		queue:    queue,
		logger:   logger,
		tracer:   tracer,
	}
}

// Dispatch processes each routed-work item independently: one bad item never
// aborts the rest of the batch. The returned outcomes are in input order.
func (d *Dispatcher) Dispatch(ctx context.Context, work []domain.RoutedWork) []domain.DispatchOutcome {
	outcomes := make([]domain.DispatchOutcome, 0, len(work))
	for i := range work {
		outcomes = append(outcomes, d.dispatchOne(ctx, &work[i]))
	}
	return outcomes
}

func (d *Dispatcher) dispatchOne(ctx context.Context, work *domain.RoutedWork) domain.DispatchOutcome {
	ctx, span := d.tracer.Start(ctx, "dispatch")
	defer span.End()
	span.SetAttribute("agent", work.Agent)
	span.SetAttribute("priority", work.Priority.String())
	span.SetAttribute("events", len(work.Events))

	if !d.executor.Available() {
		d.warnMissing.Do(func() {
			d.logger.Warn("workflow executor not found, queueing all work")
		})
		return d.degrade(span, work, domain.ErrExecutorNotFound)
	}

	result, err := d.executor.Invoke(ctx, work.ContextSummary)
	if err != nil {
		return d.degrade(span, work, err)
	}

	span.SetAttribute("status", domain.DispatchSucceeded.String())
	d.logger.Info(fmt.Sprintf("dispatched to %s (%s)", work.Agent, work.Priority))
	return domain.DispatchOutcome{
		Agent:  work.Agent,
		Status: domain.DispatchSucceeded,
		Output: result.Output,
	}
}

// degrade persists the work as a pending invocation. The dispatch attempt
// itself succeeded (the work is deferred, not lost), but the live failure is
// surfaced for observability.
func (d *Dispatcher) degrade(span ports.Span, work *domain.RoutedWork, cause error) domain.DispatchOutcome {
	inv := domain.PendingInvocation{
		Agent:         work.Agent,
		Timestamp:     time.Now(),
		Trigger:       domain.TriggerFileWatcher,
		Prompt:        work.ContextSummary,
		Priority:      work.Priority,
		AutoTriggered: true,
	}

	if err := d.queue.Append(inv); err != nil {
		span.SetAttribute("status", domain.DispatchLost.String())
		d.logger.Error(zerr.Wrap(err, "dispatch lost: live execution and queue append both failed"))
		return domain.DispatchOutcome{
			Agent:  work.Agent,
			Status: domain.DispatchLost,
			Err:    cause,
		}
	}

	span.SetAttribute("status", domain.DispatchDegraded.String())
	d.logger.Warn(fmt.Sprintf("live dispatch to %s failed, queued for later: %v", work.Agent, cause))
	return domain.DispatchOutcome{
		Agent:  work.Agent,
		Status: domain.DispatchDegraded,
		Err:    cause,
	}
}
