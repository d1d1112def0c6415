package dispatch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/telemetry"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/herald/internal/core/ports/mocks"
	"go.trai.ch/herald/internal/engine/dispatch"
	"go.uber.org/mock/gomock"
)

func routedWork(agent string, priority domain.Priority) domain.RoutedWork {
	return domain.RoutedWork{
		Agent:    agent,
		Priority: priority,
		Events: []domain.ChangeEvent{{
			Path:     domain.NewInternedString("docs/setup.md"),
			Kind:     domain.Modified,
			Category: "doc",
			Priority: priority,
			Agents:   []string{agent},
		}},
		ContextSummary: agent + ": 1 doc files (" + priority.String() + ")",
	}
}

func TestDispatcher_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockWorkflowExecutor(ctrl)
	queue := mocks.NewMockPendingQueue(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	work := routedWork("readme-updater", domain.Medium)

	executor.EXPECT().Available().Return(true)
	executor.EXPECT().Invoke(gomock.Any(), work.ContextSummary).
		Return(ports.InvokeResult{Output: "updated README", ExitCode: 0}, nil)
	logger.EXPECT().Info(gomock.Any())

	d := dispatch.New(executor, queue, logger, telemetry.NewNoOpTracer())
	outcomes := d.Dispatch(t.Context(), []domain.RoutedWork{work})

	require.Len(t, outcomes, 1)
	assert.Equal(t, "readme-updater", outcomes[0].Agent)
	assert.Equal(t, domain.DispatchSucceeded, outcomes[0].Status)
	assert.Equal(t, "updated README", outcomes[0].Output)
	assert.NoError(t, outcomes[0].Err)
}

func TestDispatcher_DegradesToQueueOnInvokeError(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockWorkflowExecutor(ctrl)
	queue := mocks.NewMockPendingQueue(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	work := routedWork("component-documenter", domain.High)
	invokeErr := errors.New("exit status 1")

	executor.EXPECT().Available().Return(true)
	executor.EXPECT().Invoke(gomock.Any(), work.ContextSummary).
		Return(ports.InvokeResult{}, invokeErr)
	queue.EXPECT().Append(gomock.Any()).DoAndReturn(func(inv domain.PendingInvocation) error {
		assert.Equal(t, "component-documenter", inv.Agent)
		assert.Equal(t, domain.TriggerFileWatcher, inv.Trigger)
		assert.Equal(t, work.ContextSummary, inv.Prompt)
		assert.Equal(t, domain.High, inv.Priority)
		assert.True(t, inv.AutoTriggered)
		assert.False(t, inv.Timestamp.IsZero())
		return nil
	})
	logger.EXPECT().Warn(gomock.Any())

	d := dispatch.New(executor, queue, logger, telemetry.NewNoOpTracer())
	outcomes := d.Dispatch(t.Context(), []domain.RoutedWork{work})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.DispatchDegraded, outcomes[0].Status)
	assert.Equal(t, invokeErr, outcomes[0].Err)
}

func TestDispatcher_LostWhenQueueAppendFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockWorkflowExecutor(ctrl)
	queue := mocks.NewMockPendingQueue(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	work := routedWork("backlog-manager", domain.Medium)
	invokeErr := errors.New("signal: killed")

	executor.EXPECT().Available().Return(true)
	executor.EXPECT().Invoke(gomock.Any(), gomock.Any()).
		Return(ports.InvokeResult{}, invokeErr)
	queue.EXPECT().Append(gomock.Any()).Return(errors.New("disk full"))
	logger.EXPECT().Error(gomock.Any())

	d := dispatch.New(executor, queue, logger, telemetry.NewNoOpTracer())
	outcomes := d.Dispatch(t.Context(), []domain.RoutedWork{work})

	require.Len(t, outcomes, 1)
	assert.Equal(t, domain.DispatchLost, outcomes[0].Status)
	assert.Equal(t, invokeErr, outcomes[0].Err)
}

func TestDispatcher_UnavailableExecutorWarnsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockWorkflowExecutor(ctrl)
	queue := mocks.NewMockPendingQueue(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	work := []domain.RoutedWork{
		routedWork("readme-updater", domain.Low),
		routedWork("changelog-updater", domain.Low),
		routedWork("backlog-manager", domain.Medium),
	}

	executor.EXPECT().Available().Return(false).Times(3)
	queue.EXPECT().Append(gomock.Any()).Return(nil).Times(3)
	// The missing-binary warning fires once; per-item degrade warnings still
	// fire for every item.
	logger.EXPECT().Warn("workflow executor not found, queueing all work").Times(1)
	logger.EXPECT().Warn(gomock.Not("workflow executor not found, queueing all work")).Times(3)

	d := dispatch.New(executor, queue, logger, telemetry.NewNoOpTracer())
	outcomes := d.Dispatch(t.Context(), work)

	require.Len(t, outcomes, 3)
	for _, outcome := range outcomes {
		assert.Equal(t, domain.DispatchDegraded, outcome.Status)
	}
}

func TestDispatcher_OutcomesInInputOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockWorkflowExecutor(ctrl)
	queue := mocks.NewMockPendingQueue(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	work := []domain.RoutedWork{
		routedWork("first", domain.High),
		routedWork("second", domain.Medium),
		routedWork("third", domain.Low),
	}

	executor.EXPECT().Available().Return(true).Times(3)
	executor.EXPECT().Invoke(gomock.Any(), work[0].ContextSummary).Return(ports.InvokeResult{}, nil)
	executor.EXPECT().Invoke(gomock.Any(), work[1].ContextSummary).Return(ports.InvokeResult{}, errors.New("boom"))
	executor.EXPECT().Invoke(gomock.Any(), work[2].ContextSummary).Return(ports.InvokeResult{}, nil)
	queue.EXPECT().Append(gomock.Any()).Return(nil)
	logger.EXPECT().Info(gomock.Any()).Times(2)
	logger.EXPECT().Warn(gomock.Any())

	d := dispatch.New(executor, queue, logger, telemetry.NewNoOpTracer())
	outcomes := d.Dispatch(t.Context(), work)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "first", outcomes[0].Agent)
	assert.Equal(t, "second", outcomes[1].Agent)
	assert.Equal(t, "third", outcomes[2].Agent)
	assert.Equal(t, domain.DispatchSucceeded, outcomes[0].Status)
	assert.Equal(t, domain.DispatchDegraded, outcomes[1].Status)
	assert.Equal(t, domain.DispatchSucceeded, outcomes[2].Status)
}
