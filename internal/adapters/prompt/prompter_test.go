package prompt_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/prompt"
	"go.trai.ch/bump/internal/core/domain"
)

// answers feeds one line per prompt. Each accessible prompt scans its own
// lines, so the reader must not hand out more than it is asked for.
func answers(lines ...string) *prompt.Prompter {
	in := iotest.OneByteReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	return prompt.NewAccessible(in, &bytes.Buffer{})
}

func choices(t *testing.T, current, identifier string) []domain.VersionChoice {
	t.Helper()
	v, err := domain.ParseVersion(current)
	require.NoError(t, err)
	c, err := domain.Choices(v, identifier)
	require.NoError(t, err)
	return c
}

func TestPrompter_SelectIdentifier(t *testing.T) {
	tests := []struct {
		answer string
		want   string
	}{
		{answer: "1", want: ""},
		{answer: "2", want: "alpha"},
		{answer: "4", want: "rc"},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, err := answers(tt.answer).SelectIdentifier(context.Background(), []string{"alpha", "beta", "rc"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_SelectVersion(t *testing.T) {
	c := choices(t, "1.2.3", "beta")

	got, err := answers("2").SelectVersion(context.Background(), "1.2.3", c)
	require.NoError(t, err)
	assert.Equal(t, "1.3.0", got)

	got, err = answers("7").SelectVersion(context.Background(), "1.2.3", c)
	require.NoError(t, err)
	assert.Equal(t, "1.2.4-beta.0", got)
}

func TestPrompter_SelectVersion_Custom(t *testing.T) {
	c := choices(t, "1.2.3", "")

	got, err := answers("8", "not-a-version", "v2.0.0-rc.1").SelectVersion(context.Background(), "1.2.3", c)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0-rc.1", got)
}

func TestPrompter_SelectPackages(t *testing.T) {
	got, err := answers("1", "3", "0").SelectPackages(context.Background(), []string{"@acme/a", "@acme/b", "@acme/c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"@acme/a", "@acme/c"}, got)

	got, err = answers().SelectPackages(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPrompter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := answers("1").SelectIdentifier(ctx, nil)
	require.ErrorContains(t, err, domain.ErrPromptFailed.Error())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPrompter_Interactive(t *testing.T) {
	assert.True(t, answers().Interactive())
}
