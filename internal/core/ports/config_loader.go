package ports

import "go.trai.ch/bump/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the workspace rooted at dir.
	// An empty path probes domain.ConfigFileNames; a missing file yields the defaults.
	Load(dir, path string) (*domain.Config, error)
}
