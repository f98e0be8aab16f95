// Package workspace discovers the packages of an npm style workspace.
package workspace

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.CatalogBuilder.
type Builder struct {
	store  ports.ManifestStore
	logger ports.Logger
}

// NewBuilder creates a Builder reading manifests through store.
func NewBuilder(store ports.ManifestStore, logger ports.Logger) *Builder {
	return &Builder{store: store, logger: logger}
}

// Build reads the root manifest of root. Without workspaces the root package
// is the only catalog entry. Otherwise every directory matched by the
// workspace patterns becomes a package.
func (b *Builder) Build(ctx context.Context, root string) (*domain.Catalog, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "path", root)
	}

	rootManifest, err := b.store.Read(filepath.Join(absRoot, domain.ManifestFileName))
	if err != nil {
		return nil, err
	}

	catalog := &domain.Catalog{
		Root:         absRoot,
		RootManifest: *rootManifest,
	}

	if len(rootManifest.Workspaces) == 0 {
		catalog.Packages = []domain.Package{{
			Name:    rootManifest.Name,
			Version: rootManifest.Version,
		}}
		return catalog, nil
	}

	catalog.Workspace = true
	dirs, err := Expand(os.DirFS(absRoot), rootManifest.Workspaces)
	if err != nil {
		return nil, err
	}

	// Pass 1: names. Edges may point at packages discovered later.
	manifests := make([]*domain.Manifest, 0, len(dirs))
	known := make(map[string]string, len(dirs))
	for _, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		m, err := b.store.Read(filepath.Join(absRoot, filepath.FromSlash(dir), domain.ManifestFileName))
		if err != nil {
			return nil, err
		}
		if m.Name == "" {
			return nil, zerr.With(domain.ErrMissingPackageName, "path", dir)
		}
		if first, dup := known[m.Name]; dup {
			return nil, zerr.With(zerr.With(zerr.With(domain.ErrDuplicatePackageName,
				"package_name", m.Name), "path", dir), "first_path", first)
		}
		known[m.Name] = dir
		manifests = append(manifests, m)
	}

	// Pass 2: edges restricted to the discovered names.
	catalog.Packages = make([]domain.Package, len(dirs))
	for i, m := range manifests {
		var deps []string
		for _, name := range m.DependencyNames() {
			if _, ok := known[name]; ok {
				deps = append(deps, name)
			}
		}
		catalog.Packages[i] = domain.Package{
			Name:         m.Name,
			Path:         dirs[i],
			Version:      m.Version,
			Dependencies: deps,
		}
	}

	b.logger.Info(fmt.Sprintf("discovered %d workspace packages", len(catalog.Packages)))
	return catalog, nil
}

// Expand matches patterns against fsys and returns the matching directories
// as slash paths, deduplicated in first-seen order. Patterns prefixed with
// "!" remove earlier matches. A pattern matching nothing is not an error.
func Expand(fsys fs.FS, patterns []string) ([]string, error) {
	var dirs []string
	seen := make(map[string]struct{})

	for _, raw := range patterns {
		pattern, exclude := normalize(raw)
		if pattern == "" {
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			return nil, zerr.With(domain.ErrWorkspacePattern, "pattern", raw)
		}

		if exclude {
			kept := dirs[:0]
			for _, dir := range dirs {
				if doublestar.MatchUnvalidated(pattern, dir) {
					delete(seen, dir)
					continue
				}
				kept = append(kept, dir)
			}
			dirs = kept
			continue
		}

		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkspacePattern.Error()), "pattern", raw)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			info, err := fs.Stat(fsys, match)
			if err != nil || !info.IsDir() {
				continue
			}
			if isIgnored(match) {
				continue
			}
			seen[match] = struct{}{}
			dirs = append(dirs, match)
		}
	}

	return dirs, nil
}

func normalize(pattern string) (string, bool) {
	pattern = strings.TrimSpace(pattern)
	exclude := strings.HasPrefix(pattern, "!")
	pattern = strings.TrimPrefix(pattern, "!")
	pattern = strings.TrimSuffix(filepath.ToSlash(pattern), "/")
	if pattern == "" {
		return "", exclude
	}
	pattern = path.Clean(pattern)
	if pattern == "." {
		return "", exclude
	}
	return pattern, exclude
}

// isIgnored skips installed dependencies that a "**" pattern would reach.
func isIgnored(dir string) bool {
	for segment := range strings.SplitSeq(dir, "/") {
		if segment == "node_modules" {
			return true
		}
	}
	return false
}
