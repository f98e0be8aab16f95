package git

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/adapters/logger"
	"go.trai.ch/bump/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the git adapter Graft node.
	NodeID graft.ID = "adapter.git"
	// HistoryNodeID exposes the adapter as ports.History.
	HistoryNodeID graft.ID = "adapter.git.history"
	// DifferNodeID exposes the adapter as ports.Differ.
	DifferNodeID graft.ID = "adapter.git.differ"
	// VersionControlNodeID exposes the adapter as ports.VersionControl.
	VersionControlNodeID graft.ID = "adapter.git.vcs"
)

func init() {
	graft.Register(graft.Node[*Git]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Git, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})

	graft.Register(graft.Node[ports.History]{
		ID:        HistoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.History, error) {
			return graft.Dep[*Git](ctx)
		},
	})

	graft.Register(graft.Node[ports.Differ]{
		ID:        DifferNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.Differ, error) {
			return graft.Dep[*Git](ctx)
		},
	})

	graft.Register(graft.Node[ports.VersionControl]{
		ID:        VersionControlNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (ports.VersionControl, error) {
			return graft.Dep[*Git](ctx)
		},
	})
}
