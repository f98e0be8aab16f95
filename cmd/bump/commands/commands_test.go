package commands_test

import (
	"bytes"
	"context"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/cmd/bump/commands"
	"go.trai.ch/bump/internal/adapters/telemetry"
	"go.trai.ch/bump/internal/app"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports/mocks"
	"go.trai.ch/bump/internal/engine/baseline"
	"go.trai.ch/bump/internal/engine/writer"
	"go.uber.org/mock/gomock"
)

type harness struct {
	loader  *mocks.MockConfigLoader
	catalog *mocks.MockCatalogBuilder
	history *mocks.MockHistory
	differ  *mocks.MockDiffer
	store   *mocks.MockManifestStore
	patcher *mocks.MockCompanionPatcher
	vcs     *mocks.MockVersionControl
	cli     *commands.CLI
	out     *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		loader:  mocks.NewMockConfigLoader(ctrl),
		catalog: mocks.NewMockCatalogBuilder(ctrl),
		history: mocks.NewMockHistory(ctrl),
		differ:  mocks.NewMockDiffer(ctrl),
		store:   mocks.NewMockManifestStore(ctrl),
		patcher: mocks.NewMockCompanionPatcher(ctrl),
		vcs:     mocks.NewMockVersionControl(ctrl),
		out:     &bytes.Buffer{},
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(
		h.loader,
		h.catalog,
		baseline.NewLocator(h.history),
		h.differ,
		writer.NewWriter(h.store),
		h.patcher,
		h.vcs,
		mocks.NewMockPrompter(ctrl),
		telemetry.NewNoOpTracer(),
		log,
	)

	h.cli = commands.New(a)
	h.cli.SetOutput(h.out)
	return h
}

func (h *harness) expectWorkspace(dir string) {
	cfg := domain.DefaultConfig()
	h.loader.EXPECT().Load(dir, "").Return(&cfg, nil)
	h.catalog.EXPECT().Build(gomock.Any(), dir).Return(&domain.Catalog{
		Root:         dir,
		Workspace:    true,
		RootManifest: domain.Manifest{Name: "acme", Version: "1.0.0"},
		Packages: []domain.Package{
			{Name: "core", Path: "packages/core", Version: "1.0.0"},
			{Name: "web", Path: "packages/web", Version: "1.0.0", Dependencies: []string{"core"}},
		},
	}, nil)
	h.history.EXPECT().Log(gomock.Any(), dir).Return(iter.Seq2[domain.Commit, error](
		func(yield func(domain.Commit, error) bool) {
			yield(domain.Commit{Ref: "abc", Subject: "1.0.0", Kind: domain.CommitKindVersion}, nil)
		}))
	h.differ.EXPECT().ChangedPaths(gomock.Any(), dir, "abc").Return([]string{"packages/core/index.js"}, nil)
}

func TestBump_DryRun(t *testing.T) {
	h := newHarness(t)
	h.expectWorkspace("/ws")

	h.cli.SetArgs([]string{"-C", "/ws", "--bump", "minor", "--dry-run"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "wave 0: core\nwave 1: web\ndry run: 1.0.0 -> 1.1.0\n", h.out.String())
}

func TestBump_DryRunFromEnvironment(t *testing.T) {
	t.Setenv("BUMP_DRY_RUN", "true")
	t.Setenv("BUMP_DIR", "/env")

	h := newHarness(t)
	h.expectWorkspace("/env")

	h.cli.SetArgs([]string{"--to", "2.0.0"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Contains(t, h.out.String(), "dry run: 1.0.0 -> 2.0.0")
}

func TestBump_DirectOnly(t *testing.T) {
	h := newHarness(t)
	h.expectWorkspace("/ws")

	h.cli.SetArgs([]string{"-C", "/ws", "--to", "1.0.1", "--direct-only", "--dry-run"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "wave 0: core\ndry run: 1.0.0 -> 1.0.1\n", h.out.String())
}

func TestBump_IncludeFromEnvironment(t *testing.T) {
	t.Setenv("BUMP_INCLUDE", "core, web")

	h := newHarness(t)
	h.expectWorkspace("/ws")

	h.cli.SetArgs([]string{"-C", "/ws", "--to", "1.0.1", "--direct-only", "--dry-run"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "wave 0: core, web\ndry run: 1.0.0 -> 1.0.1\n", h.out.String())
}

func TestBump_IncludeFlag(t *testing.T) {
	h := newHarness(t)
	h.expectWorkspace("/ws")

	h.cli.SetArgs([]string{"-C", "/ws", "--to", "1.0.1", "--direct-only", "--dry-run", "--include", "web"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "wave 0: core, web\ndry run: 1.0.0 -> 1.0.1\n", h.out.String())
}

func TestBump_Writes(t *testing.T) {
	h := newHarness(t)
	h.expectWorkspace("/ws")

	h.store.EXPECT().Update(gomock.Any(), gomock.Any()).Return(true, nil).Times(3)
	h.patcher.EXPECT().Patch(gomock.Any(), "1.0.1").Return(false, nil)

	h.cli.SetArgs([]string{"-C", "/ws", "--bump", "patch", "--no-commit"})
	require.NoError(t, h.cli.Execute(context.Background()))

	assert.Equal(t, "wave 0: core\n"+
		"wave 1: web\n"+
		"updated packages/core/package.json\n"+
		"updated packages/web/package.json\n"+
		"updated package.json\n"+
		"bumped 1.0.0 -> 1.0.1\n", h.out.String())
}

func TestBump_InvalidVersion(t *testing.T) {
	h := newHarness(t)
	cfg := domain.DefaultConfig()
	h.loader.EXPECT().Load(".", "").Return(&cfg, nil)
	h.catalog.EXPECT().Build(gomock.Any(), ".").Return(&domain.Catalog{Root: "."}, nil)
	h.history.EXPECT().Log(gomock.Any(), ".").Return(iter.Seq2[domain.Commit, error](
		func(func(domain.Commit, error) bool) {}))

	h.cli.SetArgs([]string{"--to", "banana"})
	err := h.cli.Execute(context.Background())
	require.ErrorContains(t, err, domain.ErrInvalidVersionInput.Error())
	assert.False(t, h.cli.SuppressError())
}

func TestSuppressErrorFlag(t *testing.T) {
	h := newHarness(t)
	h.cli.SetArgs([]string{"version", "--suppress-error"})
	require.NoError(t, h.cli.Execute(context.Background()))
	assert.True(t, h.cli.SuppressError())
}

func TestVersion(t *testing.T) {
	for _, args := range [][]string{{"version"}, {"--version"}, {"-v"}} {
		h := newHarness(t)
		h.cli.SetArgs(args)
		require.NoError(t, h.cli.Execute(context.Background()))
		assert.Equal(t, "Version: dev\n", h.out.String())
	}
}
