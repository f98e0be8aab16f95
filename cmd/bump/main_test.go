package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	// Save original args
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		args         func(dir string) []string
		expectedExit int
	}{
		{
			name:         "Version command",
			args:         func(string) []string { return []string{"bump", "version"} },
			expectedExit: 0,
		},
		{
			name:         "Version flag",
			args:         func(string) []string { return []string{"bump", "-v"} },
			expectedExit: 0,
		},
		{
			name:         "Unknown flag",
			args:         func(string) []string { return []string{"bump", "--bogus"} },
			expectedExit: 1,
		},
		{
			name: "Missing manifest fails",
			args: func(dir string) []string {
				return []string{"bump", "-C", dir, "--to", "1.0.0", "--dry-run"}
			},
			expectedExit: 1,
		},
		{
			name: "Missing manifest with suppressed error",
			args: func(dir string) []string {
				return []string{"bump", "-C", dir, "--to", "1.0.0", "--dry-run", "--suppress-error"}
			},
			expectedExit: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args(t.TempDir())
			assert.Equal(t, tt.expectedExit, run())
		})
	}
}
