package logger_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bump/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer for isolated testing.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(*logger.Logger)
		level string
		msg   string
	}{
		{
			name:  "Info",
			log:   func(l *logger.Logger) { l.Info("discovered 3 workspace packages") },
			level: "INFO",
			msg:   "discovered 3 workspace packages",
		},
		{
			name:  "Warn",
			log:   func(l *logger.Logger) { l.Warn("companion manifest skipped") },
			level: "WARN",
			msg:   "companion manifest skipped",
		},
		{
			name:  "Error",
			log:   func(l *logger.Logger) { l.Error(os.ErrPermission) },
			level: "ERRO",
			msg:   "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, tt.msg)
		})
	}
}

func TestLogger_Error_Chain(t *testing.T) {
	lg, buf := newTestLogger(t)

	cause := errors.New("exit status 128")
	err := zerr.With(zerr.Wrap(cause, "git command failed"), "args", "tag -a v1.0.0")
	lg.Error(zerr.Wrap(err, "failed to record version"))

	out := buf.String()
	assert.Contains(t, out, "failed to record version")
	assert.Contains(t, out, "caused by:")
	assert.Contains(t, out, "-> git command failed")
	assert.Contains(t, out, "-> exit status 128")
	assert.Contains(t, out, "args")
	assert.Contains(t, out, "tag -a v1.0.0")
	assert.Less(t, strings.Index(out, "git command failed"), strings.Index(out, "exit status 128"))
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}
