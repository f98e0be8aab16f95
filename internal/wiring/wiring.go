// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bump/internal/adapters/companion"
	_ "go.trai.ch/bump/internal/adapters/config"
	_ "go.trai.ch/bump/internal/adapters/git"
	_ "go.trai.ch/bump/internal/adapters/logger"
	_ "go.trai.ch/bump/internal/adapters/manifest"
	_ "go.trai.ch/bump/internal/adapters/prompt"
	_ "go.trai.ch/bump/internal/adapters/telemetry"
	_ "go.trai.ch/bump/internal/adapters/workspace"
	// Register app and engine nodes.
	_ "go.trai.ch/bump/internal/app"
	_ "go.trai.ch/bump/internal/engine/baseline"
	_ "go.trai.ch/bump/internal/engine/writer"
)
