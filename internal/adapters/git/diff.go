package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"slices"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/zerr"
)

const devNull = "/dev/null"

// ChangedPaths lists the files that differ between ref and the working tree,
// relative to dir. Both sides of a change are reported, and untracked files
// that are not ignored count as changed.
func (g *Git) ChangedPaths(ctx context.Context, dir, ref string) ([]string, error) {
	out, err := g.output(ctx, dir,
		"-c", "core.quotePath=false",
		"diff",
		"--no-color",
		"--no-ext-diff",
		"--no-renames",
		"--relative",
		"--src-prefix=a/",
		"--dst-prefix=b/",
		ref,
		"--",
	)
	if err != nil {
		return nil, err
	}
	paths, err := ParseChangedPaths(out)
	if err != nil {
		return nil, err
	}

	untracked, err := g.output(ctx, dir, "ls-files", "-z", "--others", "--exclude-standard")
	if err != nil {
		return nil, err
	}
	return mergePaths(paths, splitNul(untracked)), nil
}

func splitNul(data []byte) []string {
	var names []string
	for name := range strings.SplitSeq(string(data), "\x00") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// mergePaths returns the sorted union of a and b.
func mergePaths(a, b []string) []string {
	merged := append(slices.Clone(a), b...)
	slices.Sort(merged)
	return slices.Compact(merged)
}

// ParseChangedPaths extracts the sorted, deduplicated file names of a
// unified multi-file diff produced with the a/ and b/ prefixes.
func ParseChangedPaths(patch []byte) ([]string, error) {
	if len(bytes.TrimSpace(patch)) == 0 {
		return nil, nil
	}

	reader := diff.NewMultiFileDiffReader(bytes.NewReader(patch))
	seen := make(map[string]struct{})
	for {
		fd, err := reader.ReadFile()
		if fd != nil {
			for _, name := range fileNames(fd) {
				if p := stripPrefix(name); p != "" {
					seen[p] = struct{}{}
				}
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrDiffParseFailed.Error())
		}
	}

	paths := make([]string, 0, len(seen))
	for p := range seen {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths, nil
}

// fileNames returns both sides of a file diff. Mode-only changes carry no
// file header, so their names come from the "diff --git" line.
func fileNames(fd *diff.FileDiff) []string {
	if fd.OrigName != "" || fd.NewName != "" {
		return []string{fd.OrigName, fd.NewName}
	}
	if len(fd.Extended) == 0 {
		return nil
	}
	header, ok := strings.CutPrefix(fd.Extended[0], "diff --git ")
	if !ok {
		return nil
	}
	orig, updated, ok := strings.Cut(header, " b/")
	if !ok {
		return nil
	}
	return []string{orig, "b/" + updated}
}

func stripPrefix(name string) string {
	name = strings.TrimSpace(name)
	if name == "" || name == devNull {
		return ""
	}
	for _, prefix := range []string{"a/", "b/"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok {
			return rest
		}
	}
	return name
}
