package queue

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herald/internal/adapters/logger"
	"go.trai.ch/herald/internal/core/ports"
)

// NodeID is the unique identifier for the pending queue factory node.
const NodeID graft.ID = "adapter.pending_queue"

// Factory builds a Store for a concrete state directory, which is only
// known once the watch root has been resolved.
type Factory func(path, lockPath string) ports.PendingQueue

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
			return func(path, lockPath string) ports.PendingQueue {
				return NewStore(path, lockPath, log)
			}, nil
		},
	})
}
