package baseline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/adapters/git" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bump/internal/core/ports"
)

// NodeID is the unique identifier for the baseline locator Graft node.
const NodeID graft.ID = "engine.baseline"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{git.HistoryNodeID},
		Run: func(ctx context.Context) (*Locator, error) {
			history, err := graft.Dep[ports.History](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(history), nil
		},
	})
}
