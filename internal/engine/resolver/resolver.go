// Package resolver computes which workspace packages must take a new version.
package resolver

import (
	"slices"

	"go.trai.ch/bump/internal/core/domain"
)

// Input is everything a resolution needs, fully materialized.
type Input struct {
	// Catalog is the workspace in discovery order.
	Catalog []domain.Package

	// Baseline is the last recorded version, nil for a first release.
	Baseline *domain.Baseline

	// ChangedPaths are the slash paths that differ from the baseline.
	ChangedPaths []string

	// NewVersionIsPrerelease reports whether the candidate version is a prerelease.
	NewVersionIsPrerelease bool

	// OldIsPrerelease reports whether a package currently sits on a prerelease.
	// A nil func treats every package as released.
	OldIsPrerelease func(domain.Package) bool

	Options domain.ResolutionOptions
}

// Resolve partitions the affected packages into propagation waves.
//
// Wave 0 holds the packages with direct evidence: a changed file under the
// package path, a forced name, or a prerelease package finalized by a release.
// Each following wave holds the candidates depending on the previous wave.
// Unseeded packages without workspace dependencies never propagate and are
// dropped. Within a wave, catalog order is kept.
func Resolve(in Input) domain.Waves {
	if in.Baseline == nil {
		if len(in.Catalog) == 0 {
			return nil
		}
		return domain.Waves{append(domain.Wave(nil), in.Catalog...)}
	}

	var seed domain.Wave
	var candidates []domain.Package
	for _, pkg := range in.Catalog {
		switch {
		case isSeed(in, pkg):
			seed = append(seed, pkg)
		case pkg.HasDependencies():
			candidates = append(candidates, pkg)
		}
	}

	if len(seed) == 0 {
		return nil
	}

	waves := domain.Waves{seed}
	if in.Options.OnlyDirectImpact {
		return waves
	}

	last := seed
	for len(candidates) > 0 {
		var next domain.Wave
		remaining := candidates[:0:0]
		for _, pkg := range candidates {
			if dependsOnAny(pkg, last) {
				next = append(next, pkg)
				continue
			}
			remaining = append(remaining, pkg)
		}

		if len(next) == 0 {
			break
		}
		waves = append(waves, next)
		last = next
		candidates = remaining
	}

	return waves
}

func isSeed(in Input, pkg domain.Package) bool {
	if !in.NewVersionIsPrerelease && in.OldIsPrerelease != nil && in.OldIsPrerelease(pkg) {
		return true
	}
	if in.Options.IsForced(pkg.Name) {
		return true
	}
	for _, file := range in.ChangedPaths {
		if pkg.Owns(file) {
			return true
		}
	}
	return false
}

func dependsOnAny(pkg domain.Package, wave domain.Wave) bool {
	return slices.ContainsFunc(wave, func(dep domain.Package) bool {
		return pkg.DependsOn(dep.Name)
	})
}
