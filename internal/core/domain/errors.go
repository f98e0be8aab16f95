package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestMissing is returned when a workspace path has no package.json.
	ErrManifestMissing = zerr.New("package manifest not found")

	// ErrManifestMalformed is returned when a package.json cannot be parsed.
	ErrManifestMalformed = zerr.New("package manifest is malformed")

	// ErrManifestWriteFailed is returned when a rewritten package.json cannot be persisted.
	ErrManifestWriteFailed = zerr.New("failed to write package manifest")

	// ErrManifestChanged is returned when a package.json was modified on disk after it was read.
	ErrManifestChanged = zerr.New("package manifest changed since it was read")

	// ErrMissingPackageName is returned when a workspace package declares no name.
	ErrMissingPackageName = zerr.New("missing package name")

	// ErrDuplicatePackageName is returned when two workspace packages share a name.
	ErrDuplicatePackageName = zerr.New("duplicate package name")

	// ErrWorkspacePattern is returned when a workspaces pattern cannot be expanded.
	ErrWorkspacePattern = zerr.New("invalid workspace pattern")

	// ErrInvalidVersionInput is returned when a candidate version is not a valid semantic version.
	ErrInvalidVersionInput = zerr.New("invalid version")

	// ErrInvalidBumpKind is returned when an unknown increment kind is requested.
	ErrInvalidBumpKind = zerr.New("invalid bump kind, expected one of major, minor, patch, premajor, preminor, prepatch, prerelease")

	// ErrUnknownPackage is returned when a package named on the command line is not in the catalog.
	ErrUnknownPackage = zerr.New("unknown package")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrGitCommandFailed is returned when a git invocation exits with an error.
	ErrGitCommandFailed = zerr.New("git command failed")

	// ErrDiffParseFailed is returned when the output of git diff cannot be parsed.
	ErrDiffParseFailed = zerr.New("failed to parse git diff output")

	// ErrCompanionPatchFailed is returned when the companion manifest cannot be rewritten.
	ErrCompanionPatchFailed = zerr.New("failed to patch companion manifest")

	// ErrPromptFailed is returned when an interactive prompt is aborted or fails.
	ErrPromptFailed = zerr.New("prompt failed")

	// ErrBumpFailed is returned when the bump pipeline fails after resolution started.
	ErrBumpFailed = zerr.New("bump failed")
)
