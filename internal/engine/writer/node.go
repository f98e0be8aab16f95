package writer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/adapters/manifest" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bump/internal/core/ports"
)

// NodeID is the unique identifier for the version writer Graft node.
const NodeID graft.ID = "engine.writer"

func init() {
	graft.Register(graft.Node[*Writer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID},
		Run: func(ctx context.Context) (*Writer, error) {
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(store), nil
		},
	})
}
