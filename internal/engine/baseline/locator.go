// Package baseline finds the last recorded version in project history.
package baseline

import (
	"context"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator scans history for the newest version-marking commit.
type Locator struct {
	history ports.History
}

// NewLocator creates a Locator reading from history.
func NewLocator(history ports.History) *Locator {
	return &Locator{history: history}
}

// Locate returns the newest commit recording a version, or nil when the
// repository never recorded one.
func (l *Locator) Locate(ctx context.Context, dir string) (*domain.Baseline, error) {
	for commit, err := range l.history.Log(ctx, dir) {
		if err != nil {
			return nil, zerr.Wrap(err, "failed to scan history")
		}
		if commit.Kind != domain.CommitKindVersion {
			continue
		}
		version := commit.Subject
		if v, err := domain.ParseVersion(version); err == nil {
			version = v.String()
		}
		return &domain.Baseline{
			Version: version,
			Ref:     commit.Ref,
		}, nil
	}
	return nil, nil
}
