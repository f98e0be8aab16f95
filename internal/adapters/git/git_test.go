package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/git"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	t.Setenv("GIT_AUTHOR_NAME", "bump")
	t.Setenv("GIT_AUTHOR_EMAIL", "bump@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "bump")
	t.Setenv("GIT_COMMITTER_EMAIL", "bump@example.com")
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	dir := t.TempDir()
	gitCmd(t, dir, "init", "-q")
	return dir
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return string(out)
}

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	p := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

func newGit(t *testing.T) *git.Git {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return git.New(log)
}

func TestGit_Log_EmptyRepository(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)

	var commits []domain.Commit
	for c, err := range g.Log(context.Background(), dir) {
		require.NoError(t, err)
		commits = append(commits, c)
	}
	assert.Empty(t, commits)
}

func TestGit_RoundTrip(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)
	ctx := context.Background()

	writeFile(t, dir, "packages/a/index.js", "1\n")
	writeFile(t, dir, "packages/b/index.js", "1\n")
	require.NoError(t, g.StageFiles(ctx, dir, []string{"packages/a/index.js", "packages/b/index.js"}))
	require.NoError(t, g.Commit(ctx, dir, "1.0.0"))
	require.NoError(t, g.Tag(ctx, dir, "v1.0.0", "v1.0.0"))

	writeFile(t, dir, "packages/a/index.js", "2\n")
	require.NoError(t, g.StageFiles(ctx, dir, []string{"packages/a/index.js"}))
	require.NoError(t, g.Commit(ctx, dir, "feat: change a"))

	var commits []domain.Commit
	for c, err := range g.Log(ctx, dir) {
		require.NoError(t, err)
		commits = append(commits, c)
	}
	require.Len(t, commits, 2)
	assert.Equal(t, domain.CommitKindOther, commits[0].Kind)
	assert.Equal(t, "1.0.0", commits[1].Subject)
	assert.Equal(t, domain.CommitKindVersion, commits[1].Kind)

	writeFile(t, dir, "packages/b/index.js", "2\n")
	changed, err := g.ChangedPaths(ctx, dir, commits[1].Ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/a/index.js", "packages/b/index.js"}, changed)

	assert.Contains(t, gitCmd(t, dir, "tag", "-l"), "v1.0.0")
}

func TestGit_Log_StopsEarly(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)
	ctx := context.Background()

	for _, msg := range []string{"one", "two", "three"} {
		gitCmd(t, dir, "commit", "-q", "--allow-empty", "-m", msg)
	}

	seen := 0
	for _, err := range g.Log(ctx, dir) {
		require.NoError(t, err)
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestGit_Commit_Failure(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)

	err := g.Commit(context.Background(), dir, "nothing staged")
	require.ErrorContains(t, err, domain.ErrGitCommandFailed.Error())
}

func TestGit_Log_NotARepository(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))
	g := newGit(t)

	var errs []error
	for c, err := range g.Log(context.Background(), dir) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		t.Fatalf("unexpected commit %+v", c)
	}
	require.Len(t, errs, 1)
	require.ErrorContains(t, errs[0], domain.ErrGitCommandFailed.Error())
}

func TestGit_Log_CancelledContext(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)
	gitCmd(t, dir, "commit", "-q", "--allow-empty", "-m", "1.0.0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var errs []error
	for _, err := range g.Log(ctx, dir) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	require.Error(t, errs[0])
}

func TestGit_ChangedPaths_IncludesUntrackedFiles(t *testing.T) {
	dir := newRepo(t)
	g := newGit(t)
	ctx := context.Background()

	writeFile(t, dir, ".gitignore", "dist/\n")
	writeFile(t, dir, "packages/a/index.js", "1\n")
	gitCmd(t, dir, "add", "-A")
	gitCmd(t, dir, "commit", "-q", "-m", "1.0.0")
	ref := strings.TrimSpace(gitCmd(t, dir, "rev-parse", "HEAD"))

	writeFile(t, dir, "packages/b/new file.js", "1\n")
	writeFile(t, dir, "packages/a/dist/bundle.js", "1\n")

	changed, err := g.ChangedPaths(ctx, dir, ref)
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/b/new file.js"}, changed)
}
