package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herald/internal/adapters/logger"
	"go.trai.ch/herald/internal/core/domain"
	"go.trai.ch/herald/internal/core/ports"
)

// NodeID is the unique identifier for the workflow executor factory node.
const NodeID graft.ID = "adapter.shell_executor"

// Factory builds an Executor once the runtime configuration is known. The
// command line comes from configuration loaded at startup, so the executor
// itself cannot be a cacheable node.
type Factory func(cfg domain.ExecutorConfig) (ports.WorkflowExecutor, error)

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return func(cfg domain.ExecutorConfig) (ports.WorkflowExecutor, error) {
				return NewExecutor(cfg, log)
			}, nil
		},
	})
}
