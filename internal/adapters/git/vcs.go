package git

import "context"

// StageFiles adds paths, relative to dir, to the index.
func (g *Git) StageFiles(ctx context.Context, dir string, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	return g.run(ctx, dir, args...)
}

// Commit records the staged changes.
func (g *Git) Commit(ctx context.Context, dir, message string) error {
	return g.run(ctx, dir, "commit", "-m", message)
}

// Tag creates an annotated tag on HEAD.
func (g *Git) Tag(ctx context.Context, dir, name, message string) error {
	return g.run(ctx, dir, "tag", "-a", name, "-m", message)
}
