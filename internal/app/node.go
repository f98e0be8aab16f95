package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bump/internal/adapters/companion" //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/prompt"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/adapters/workspace" //nolint:depguard // Wired in app layer
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/bump/internal/engine/baseline"
	"go.trai.ch/bump/internal/engine/writer"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			workspace.NodeID,
			baseline.NodeID,
			git.DifferNodeID,
			writer.NodeID,
			companion.NodeID,
			git.VersionControlNodeID,
			prompt.NodeID,
			telemetry.TracerNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

//nolint:cyclop // one lookup per dependency
func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	catalog, err := graft.Dep[ports.CatalogBuilder](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[*baseline.Locator](ctx)
	if err != nil {
		return nil, err
	}

	differ, err := graft.Dep[ports.Differ](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[*writer.Writer](ctx)
	if err != nil {
		return nil, err
	}

	patcher, err := graft.Dep[ports.CompanionPatcher](ctx)
	if err != nil {
		return nil, err
	}

	vcs, err := graft.Dep[ports.VersionControl](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, catalog, locator, differ, w, patcher, vcs, prompter, tracer, log), nil
}
