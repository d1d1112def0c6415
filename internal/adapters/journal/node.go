package journal

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/herald/internal/core/ports"
)

// NodeID is the unique identifier for the change journal factory node.
const NodeID graft.ID = "adapter.change_journal"

// Factory builds a Journal for a concrete state directory.
type Factory func(path string) ports.ChangeJournal

func init() {
	graft.Register(graft.Node[Factory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Factory, error) {
			return func(path string) ports.ChangeJournal {
				return New(path)
			}, nil
		},
	})
}
