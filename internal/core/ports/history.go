package ports

import (
	"context"
	"iter"

	"go.trai.ch/bump/internal/core/domain"
)

// History streams the commit history of a repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=mocks/mock_history.go -package=mocks
type History interface {
	// Log yields commits newest first. Stopping the iteration releases the
	// underlying resources.
	Log(ctx context.Context, dir string) iter.Seq2[domain.Commit, error]
}

// Differ lists the files that changed since a point in history.
type Differ interface {
	// ChangedPaths returns the sorted, deduplicated slash paths, relative to dir,
	// that differ between ref and the working tree.
	ChangedPaths(ctx context.Context, dir, ref string) ([]string, error)
}
