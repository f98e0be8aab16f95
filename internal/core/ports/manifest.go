package ports

import "go.trai.ch/bump/internal/core/domain"

// ManifestStore reads and rewrites package.json documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Read parses the manifest at path into its typed view.
	Read(path string) (*domain.Manifest, error)

	// Update applies edit to the manifest at path, preserving the rest of the
	// document. It reports whether the bytes on disk changed.
	Update(path string, edit domain.ManifestEdit) (bool, error)
}
