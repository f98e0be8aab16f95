// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/bump/internal/core/domain"
)

// CatalogBuilder discovers the packages of a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type CatalogBuilder interface {
	// Build reads the root manifest in root and every workspace member it declares.
	// Missing or malformed manifests abort the build.
	Build(ctx context.Context, root string) (*domain.Catalog, error)
}
