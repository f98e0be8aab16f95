// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	charmLog "github.com/charmbracelet/log"
	"go.trai.ch/bump/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
type messager interface {
	Message() string
}

// metadataer describes an error carrying structured context.
type metadataer interface {
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog over a charmbracelet/log handler.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
func New() ports.Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr)),
	}
}

func newHandler(w io.Writer) slog.Handler {
	return charmLog.NewWithOptions(w, charmLog.Options{
		Level:     charmLog.InfoLevel,
		Formatter: charmLog.TextFormatter,
	})
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(newHandler(w))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err with its cause chain, one cause per line, and the
// metadata attached along the chain as attributes.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var messages []string
	meta := make(map[string]any)
	for current := err; current != nil; {
		if m, ok := current.(metadataer); ok {
			for k, v := range m.Metadata() {
				if _, seen := meta[k]; !seen {
					meta[k] = v
				}
			}
		}

		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		if msg := m.Message(); msg != "" {
			messages = append(messages, msg)
		}
		current = errors.Unwrap(current)
	}

	args := make([]any, 0, len(meta)*2)
	for _, k := range slices.Sorted(maps.Keys(meta)) {
		args = append(args, k, meta[k])
	}

	l.logger.Error(formatChain(messages), args...)
}

func formatChain(messages []string) string {
	var lines []string
	for i, msg := range messages {
		parts := strings.Split(msg, "\n")
		if i == 0 {
			lines = append(lines, parts...)
			continue
		}
		if i == 1 {
			lines = append(lines, "caused by:")
		}
		lines = append(lines, "  -> "+parts[0])
		for _, part := range parts[1:] {
			lines = append(lines, "     "+part)
		}
	}
	return strings.Join(lines, "\n")
}
