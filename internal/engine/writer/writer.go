// Package writer applies a resolved version to workspace manifests.
package writer

import (
	"context"
	"path"
	"path/filepath"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Writer rewrites the manifests of affected packages.
type Writer struct {
	store ports.ManifestStore
}

// NewWriter creates a Writer backed by store.
func NewWriter(store ports.ManifestStore) *Writer {
	return &Writer{store: store}
}

// Write sets version on every affected package, in wave order, and pins the
// dependencies between affected packages to "^" + version. Dependencies on
// unaffected or external packages are left untouched.
//
// It returns the workspace relative manifest paths whose content changed.
// Manifests written before a failure stay on disk.
func (w *Writer) Write(
	ctx context.Context,
	catalog *domain.Catalog,
	waves domain.Waves,
	version string,
) ([]string, error) {
	affected := waves.NameSet()
	pinned := "^" + version

	var touched []string
	for _, pkg := range waves.Flatten() {
		if err := ctx.Err(); err != nil {
			return touched, err
		}

		edit := domain.ManifestEdit{Version: version}
		for _, dep := range pkg.Dependencies {
			if dep == pkg.Name {
				continue
			}
			if _, ok := affected[dep]; ok {
				if edit.Dependencies == nil {
					edit.Dependencies = make(map[string]string)
				}
				edit.Dependencies[dep] = pinned
			}
		}

		rel := ManifestPath(pkg.Path)
		changed, err := w.store.Update(filepath.Join(catalog.Root, filepath.FromSlash(rel)), edit)
		if err != nil {
			return touched, zerr.With(zerr.Wrap(err, "failed to write manifest"), "package_name", pkg.Name)
		}
		if changed {
			touched = append(touched, rel)
		}
	}

	return touched, nil
}

// WriteRoot sets version on the workspace root manifest when it declares one.
// It reports the root manifest path when its content changed.
func (w *Writer) WriteRoot(catalog *domain.Catalog, version string) (string, error) {
	if !catalog.Workspace || !catalog.RootManifest.HasVersion() {
		return "", nil
	}

	rel := ManifestPath("")
	changed, err := w.store.Update(filepath.Join(catalog.Root, rel), domain.ManifestEdit{Version: version})
	if err != nil {
		return "", zerr.Wrap(err, "failed to write root manifest")
	}
	if !changed {
		return "", nil
	}
	return rel, nil
}

// ManifestPath returns the slash path of the manifest of the package at pkgPath.
func ManifestPath(pkgPath string) string {
	return path.Join(pkgPath, domain.ManifestFileName)
}
