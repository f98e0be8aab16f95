package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/config"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	cfg, err := newLoader(t).Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoader_Load_YAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".bump.yaml", `
tagPrefix: release-
tag: false
identifiers: [next, canary]
`)

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "release-", cfg.TagPrefix)
	assert.False(t, cfg.Tag)
	assert.True(t, cfg.Commit, "absent keys keep their defaults")
	assert.Equal(t, []string{"next", "canary"}, cfg.Identifiers)
	assert.Equal(t, domain.DefaultCompanionPath, cfg.Companion)
	assert.Equal(t, "release-1.0.0", cfg.TagName("1.0.0"))
}

func TestLoader_Load_TOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".bump.toml", `
commit = false
companion = ""
`)

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.False(t, cfg.Commit)
	assert.Empty(t, cfg.Companion)
	assert.Equal(t, "v", cfg.TagPrefix)
}

func TestLoader_Load_ProbeOrder(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".bump.yml", "tagPrefix: yml-\n")
	writeConfig(t, dir, ".bump.toml", "tagPrefix = \"toml-\"\n")

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "yml-", cfg.TagPrefix)
}

func TestLoader_Load_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "release.yaml", "tagPrefix: r\n")

	cfg, err := newLoader(t).Load(dir, "release.yaml")
	require.NoError(t, err)
	assert.Equal(t, "r", cfg.TagPrefix)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, ".bump.yaml", "")

	cfg, err := newLoader(t).Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), *cfg)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		path    string
		wantErr string
	}{
		{
			name:    "explicit path missing",
			path:    "nope.yaml",
			wantErr: domain.ErrConfigReadFailed.Error(),
		},
		{
			name:    "malformed yaml",
			file:    ".bump.yaml",
			content: "tagPrefix: [unclosed\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown key",
			file:    ".bump.yaml",
			content: "tagprefx: v\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "unknown toml key",
			file:    ".bump.toml",
			content: "sign = true\n",
			wantErr: domain.ErrConfigParseFailed.Error(),
		},
		{
			name:    "tag prefix with space",
			file:    ".bump.yaml",
			content: "tagPrefix: \"my tag\"\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
		{
			name:    "identifier not alphanumeric",
			file:    ".bump.yaml",
			content: "identifiers: [alpha, \"be.ta\"]\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
		{
			name:    "empty identifier",
			file:    ".bump.yaml",
			content: "identifiers: [\"\"]\n",
			wantErr: domain.ErrConfigInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if tt.file != "" {
				writeConfig(t, dir, tt.file, tt.content)
			}

			_, err := newLoader(t).Load(dir, tt.path)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
