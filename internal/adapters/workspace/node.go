package workspace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/adapters/logger"
	"go.trai.ch/bump/internal/adapters/manifest"
	"go.trai.ch/bump/internal/core/ports"
)

// NodeID is the unique identifier for the catalog builder Graft node.
const NodeID graft.ID = "adapter.workspace"

func init() {
	graft.Register(graft.Node[ports.CatalogBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{manifest.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogBuilder, error) {
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(store, log), nil
		},
	})
}
