// Package companion rewrites the version attributes of a CSXS extension manifest.
package companion

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"regexp"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	bundleVersion    = regexp.MustCompile(`(ExtensionBundleVersion\s*=\s*")[^"]*(")`)
	extensionElement = regexp.MustCompile(`<Extension\b[^>]*>`)
	versionAttr      = regexp.MustCompile(`(\sVersion\s*=\s*")[^"]*(")`)
)

// Patcher patches ExtensionBundleVersion and the Version attribute of each
// <Extension> element in place.
type Patcher struct{}

// NewPatcher creates a new Patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Patch sets version in the manifest at path and reports whether the file
// changed. A missing file is not an error.
func (p *Patcher) Patch(path, version string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCompanionPatchFailed.Error()), "path", path)
	}
	if info.IsDir() {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCompanionPatchFailed.Error()), "path", path)
	}

	patched := Rewrite(data, version)
	if bytes.Equal(patched, data) {
		return false, nil
	}

	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrCompanionPatchFailed.Error()), "path", path)
	}
	return true, nil
}

// Rewrite returns data with every version attribute set to version.
func Rewrite(data []byte, version string) []byte {
	// version is a validated semantic version and never contains '$'.
	replacement := []byte("${1}" + version + "${2}")

	out := bundleVersion.ReplaceAll(data, replacement)
	return extensionElement.ReplaceAllFunc(out, func(elem []byte) []byte {
		return versionAttr.ReplaceAll(elem, replacement)
	})
}
