package ports

import "context"

// VersionControl records a version in the repository.
//
//go:generate go run go.uber.org/mock/mockgen -source=vcs.go -destination=mocks/mock_vcs.go -package=mocks
type VersionControl interface {
	// StageFiles adds the given paths to the index.
	StageFiles(ctx context.Context, dir string, paths []string) error

	// Commit records the staged changes with message.
	Commit(ctx context.Context, dir, message string) error

	// Tag creates an annotated tag on HEAD.
	Tag(ctx context.Context, dir, name, message string) error
}
