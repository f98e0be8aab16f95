// Package git implements the version control ports on top of the git binary.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Git runs git commands in a working directory.
type Git struct {
	logger ports.Logger
	binary string
}

// New creates a Git adapter using the git binary found on PATH.
func New(logger ports.Logger) *Git {
	return &Git{
		logger: logger,
		binary: "git",
	}
}

// run executes a git command whose output is only informational. Stdout is
// logged line by line; stderr is logged as warnings and kept for the error.
func (g *Git) run(ctx context.Context, dir string, args ...string) error {
	g.logger.Info("git " + strings.Join(args, " ") + "...")

	var stderr bytes.Buffer
	stdoutLog := &logWriter{logger: g.logger, level: levelInfo}
	stderrLog := &logWriter{logger: g.logger, level: levelWarn}

	cmd := g.command(ctx, dir, args...)
	cmd.Stdout = stdoutLog
	cmd.Stderr = io.MultiWriter(stderrLog, &stderr)

	err := cmd.Run()
	stdoutLog.Flush()
	stderrLog.Flush()
	if err != nil {
		return commandError(err, args, stderr.String())
	}
	return nil
}

// output executes a git command and returns its stdout.
func (g *Git) output(ctx context.Context, dir string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer

	cmd := g.command(ctx, dir, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, commandError(err, args, stderr.String())
	}
	return stdout.Bytes(), nil
}

func (g *Git) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, g.binary, args...) //nolint:gosec // fixed binary, arguments built by the adapter
	cmd.Dir = dir
	return cmd
}

func commandError(err error, args []string, stderr string) error {
	wrapped := zerr.Wrap(err, domain.ErrGitCommandFailed.Error())
	wrapped = zerr.With(wrapped, "args", strings.Join(args, " "))
	wrapped = zerr.With(wrapped, "exit_code", exitCode(err))
	if msg := strings.TrimSpace(stderr); msg != "" {
		wrapped = zerr.With(wrapped, "stderr", msg)
	}
	return wrapped
}

// exitCode returns the exit status of the git process behind err, or -1 when
// git did not run to completion.
func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

type logLevel int

const (
	levelInfo logLevel = iota
	levelWarn
)

// logWriter forwards complete lines to the logger. A trailing partial line
// is held until the next write or Flush.
type logWriter struct {
	logger ports.Logger
	level  logLevel

	mu      sync.Mutex
	pending []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.pending[:i]))
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

// Flush logs any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.pending) > 0 {
		w.emit(string(w.pending))
		w.pending = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}
	switch w.level {
	case levelWarn:
		w.logger.Warn(line)
	default:
		w.logger.Info(line)
	}
}
