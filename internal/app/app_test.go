package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"iter"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herald/internal/adapters/journal"
	"go.trai.ch/herald/internal/adapters/queue"
	"go.trai.ch/herald/internal/adapters/shell"
	"go.trai.ch/herald/internal/adapters/telemetry"
	"go.trai.ch/herald/internal/app"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/herald/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func testConfig(root string) *domain.Config {
	return &domain.Config{
		Root:      root,
		Debounce:  time.Minute,
		BatchSize: 5,
		Rules: []domain.Rule{
			{
				Category: "component",
				Dirs:     []string{"src/components"},
				Priority: domain.High,
				Agents:   []string{"component-documenter", "readme-updater"},
			},
		},
		Critical: []string{"package.json"},
		Executor: domain.ExecutorConfig{
			// Exit code 1 forces the degrade path so the test can observe
			// the invocation in the durable queue.
			Command: []string{"false"},
			Timeout: 5 * time.Second,
		},
	}
}

func executorFactory(log ports.Logger) shell.Factory {
	return func(cfg domain.ExecutorConfig) (ports.WorkflowExecutor, error) {
		return shell.NewExecutor(cfg, log)
	}
}

func queueFactory(log ports.Logger) queue.Factory {
	return func(path, lockPath string) ports.PendingQueue {
		return queue.NewStore(path, lockPath, log)
	}
}

func journalFactory() journal.Factory {
	return func(path string) ports.ChangeJournal {
		return journal.New(path)
	}
}

func TestApp_Watch_DegradedDispatchReachesQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	componentDir := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(componentDir, 0o750))
	changed := filepath.Join(componentDir, "Button.tsx")
	require.NoError(t, os.WriteFile(changed, []byte("export const Button = 1\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(testConfig(root), nil)

	// The event stream delivers one modification, then ends the session.
	mockWatcher := mocks.NewMockWatcher(ctrl)
	mockWatcher.EXPECT().Start(gomock.Any(), root).Return(nil)
	mockWatcher.EXPECT().Stop().Return(nil)
	mockWatcher.EXPECT().Events().Return(iter.Seq[ports.WatchEvent](func(yield func(ports.WatchEvent) bool) {
		yield(ports.WatchEvent{Path: changed, Operation: ports.OpWrite})
		cancel()
	}))

	log := nopLogger{}
	application := app.New(
		mockLoader,
		log,
		mockWatcher,
		telemetry.NewNoOpTracer(),
		executorFactory(log),
		queueFactory(log),
		journalFactory(),
	)

	err := application.Watch(ctx, app.WatchOptions{LogMode: "json"})
	require.NoError(t, err)

	// Live dispatch failed (executor exits non-zero), so one invocation per
	// routed agent landed in the durable queue.
	data, err := os.ReadFile(domain.DefaultPendingPath(root))
	require.NoError(t, err)

	var pending []domain.PendingInvocation
	require.NoError(t, json.Unmarshal(data, &pending))
	require.Len(t, pending, 2)
	assert.Equal(t, "component-documenter", pending[0].Agent)
	assert.Equal(t, "readme-updater", pending[1].Agent)
	assert.Equal(t, domain.High, pending[0].Priority)
	assert.True(t, pending[0].AutoTriggered)

	// The change was journaled.
	_, err = os.Stat(domain.DefaultJournalPath(root))
	require.NoError(t, err)
}

func TestApp_Watch_MissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig(filepath.Join(t.TempDir(), "does-not-exist"))

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(cfg, nil)

	log := nopLogger{}
	application := app.New(
		mockLoader,
		log,
		mocks.NewMockWatcher(ctrl),
		telemetry.NewNoOpTracer(),
		executorFactory(log),
		queueFactory(log),
		journalFactory(),
	)

	err := application.Watch(context.Background(), app.WatchOptions{LogMode: "json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrWatchRootMissing.Error())
}

func TestApp_Pending_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(testConfig(t.TempDir()), nil)

	log := nopLogger{}
	application := app.New(
		mockLoader,
		log,
		mocks.NewMockWatcher(ctrl),
		telemetry.NewNoOpTracer(),
		executorFactory(log),
		queueFactory(log),
		journalFactory(),
	)

	var out bytes.Buffer
	require.NoError(t, application.Pending(context.Background(), &out))
	assert.Contains(t, out.String(), "no pending invocations")
}

func TestApp_Pending_ListsQueuedWork(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := t.TempDir()
	store := queue.NewStore(
		domain.DefaultPendingPath(root),
		domain.DefaultPendingLockPath(root),
		nopLogger{},
	)
	require.NoError(t, store.Append(domain.PendingInvocation{
		Agent:         "readme-updater",
		Timestamp:     time.Now().UTC(),
		Trigger:       domain.TriggerFileWatcher,
		Prompt:        "readme-updater: 2 component files (high)",
		Priority:      domain.High,
		AutoTriggered: true,
	}))

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(testConfig(root), nil)

	log := nopLogger{}
	application := app.New(
		mockLoader,
		log,
		mocks.NewMockWatcher(ctrl),
		telemetry.NewNoOpTracer(),
		executorFactory(log),
		queueFactory(log),
		journalFactory(),
	)

	var out bytes.Buffer
	require.NoError(t, application.Pending(context.Background(), &out))

	assert.Contains(t, out.String(), "readme-updater: 2 component files (high)")
	assert.Contains(t, out.String(), "1 pending invocation(s)")
}
