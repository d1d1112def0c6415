// Package app implements the application layer for herald.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/herald/internal/adapters/detector"
	"go.trai.ch/herald/internal/adapters/journal"
	"go.trai.ch/herald/internal/adapters/queue"
	"go.trai.ch/herald/internal/adapters/shell"
	"go.trai.ch/herald/internal/adapters/telemetry"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
	"go.trai.ch/herald/internal/engine/classifier"
	"go.trai.ch/herald/internal/engine/dispatch"
	"go.trai.ch/herald/internal/engine/session"
	"go.trai.ch/zerr"
)

// jsonSetter is implemented by loggers that can switch to JSON output.
type jsonSetter interface {
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	watcher      ports.Watcher
	tracer       ports.Tracer
	executorFor  shell.Factory
	queueFor     queue.Factory
	journalFor   journal.Factory
}

// New creates an App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	watcher ports.Watcher,
	tracer ports.Tracer,
	executorFor shell.Factory,
	queueFor queue.Factory,
	journalFor journal.Factory,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		watcher:      watcher,
		tracer:       tracer,
		executorFor:  executorFor,
		queueFor:     queueFor,
		journalFor:   journalFor,
	}
}

// WatchOptions configures the Watch method.
type WatchOptions struct {
	// Root overrides the configured watch root when non-empty.
	Root string
	// LogMode is "auto", "pretty", or "json".
	LogMode string
}

// Watch runs a watch session until the context is cancelled.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	mode := detector.ResolveMode(detector.DetectEnvironment(), opts.LogMode)
	if setter, ok := a.logger.(jsonSetter); ok {
		setter.SetJSON(mode == detector.ModeJSON)
	}

	cfg, err := a.loadConfig(opts.Root)
	if err != nil {
		return err
	}

	provider := telemetry.Setup(a.logger)
	defer func() { _ = provider.Shutdown(context.WithoutCancel(ctx)) }()

	executor, err := a.executorFor(cfg.Executor)
	if err != nil {
		return zerr.Wrap(err, "failed to build workflow executor")
	}

	store := a.queueFor(
		domain.DefaultPendingPath(cfg.Root),
		domain.DefaultPendingLockPath(cfg.Root),
	)
	changeLog := a.journalFor(domain.DefaultJournalPath(cfg.Root))

	cls := classifier.New(cfg.Rules, cfg.Critical)
	dispatcher := dispatch.New(executor, store, a.logger, a.tracer)

	sess := session.New(cfg, a.watcher, cls, dispatcher, changeLog, a.logger, a.tracer)
	return sess.Run(ctx)
}

// Pending lists the queued invocations awaiting an external drain.
func (a *App) Pending(_ context.Context, out io.Writer) error {
	cfg, err := a.loadConfig("")
	if err != nil {
		return err
	}

	store := a.queueFor(
		domain.DefaultPendingPath(cfg.Root),
		domain.DefaultPendingLockPath(cfg.Root),
	)

	pending, err := store.List()
	if err != nil {
		return zerr.Wrap(err, "failed to read pending queue")
	}

	if len(pending) == 0 {
		_, _ = fmt.Fprintln(out, "no pending invocations")
		return nil
	}

	for _, inv := range pending {
		_, _ = fmt.Fprintf(out, "%s  %-6s  %s\n",
			inv.Timestamp.Format(time.RFC3339), inv.Priority, inv.Prompt)
	}
	_, _ = fmt.Fprintf(out, "\n%d pending invocation(s)\n", len(pending))

	return nil
}

// loadConfig loads the configuration from the working directory, applying
// the root override when given.
func (a *App) loadConfig(rootOverride string) (*domain.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if rootOverride != "" {
		if !filepath.IsAbs(rootOverride) {
			rootOverride = filepath.Join(cwd, rootOverride)
		}
		cfg.Root = filepath.Clean(rootOverride)
	}

	return cfg, nil
}
