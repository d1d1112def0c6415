package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herald/internal/adapters/config"
	"go.trai.ch/herald/internal/adapters/journal"
	"go.trai.ch/herald/internal/adapters/logger"
	"go.trai.ch/herald/internal/adapters/queue"
	"go.trai.ch/herald/internal/adapters/shell"
	"go.trai.ch/herald/internal/adapters/telemetry"
	"go.trai.ch/herald/internal/adapters/watcher"
	"go.trai.ch/herald/internal/core/ports"
)

// NodeID is the unique identifier for the application components node.
const NodeID graft.ID = "app.components"

// Components aggregates the resolved application dependencies for the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			watcher.NodeID,
			telemetry.NodeID,
			shell.NodeID,
			queue.NodeID,
			journal.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			watch, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			executorFor, err := graft.Dep[shell.Factory](ctx)
			if err != nil {
				return nil, err
			}
			queueFor, err := graft.Dep[queue.Factory](ctx)
			if err != nil {
				return nil, err
			}
			journalFor, err := graft.Dep[journal.Factory](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, log, watch, tracer, executorFor, queueFor, journalFor),
				Logger: log,
			}, nil
		},
	})
}
