package companion

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/core/ports"
)

// NodeID is the unique identifier for the companion patcher Graft node.
const NodeID graft.ID = "adapter.companion"

func init() {
	graft.Register(graft.Node[ports.CompanionPatcher]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CompanionPatcher, error) {
			return NewPatcher(), nil
		},
	})
}
