// Package app implements the application layer for bump.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/bump/internal/core/domain"
	"go.trai.ch/bump/internal/core/ports"
	"go.trai.ch/bump/internal/engine/baseline"
	"go.trai.ch/bump/internal/engine/resolver"
	"go.trai.ch/bump/internal/engine/writer"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// initialVersion is the current version of a project that never recorded one.
const initialVersion = "0.0.0"

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	catalog      ports.CatalogBuilder
	locator      *baseline.Locator
	differ       ports.Differ
	writer       *writer.Writer
	companion    ports.CompanionPatcher
	vcs          ports.VersionControl
	prompter     ports.Prompter
	tracer       ports.Tracer
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	catalog ports.CatalogBuilder,
	locator *baseline.Locator,
	differ ports.Differ,
	w *writer.Writer,
	companion ports.CompanionPatcher,
	vcs ports.VersionControl,
	prompter ports.Prompter,
	tracer ports.Tracer,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		catalog:      catalog,
		locator:      locator,
		differ:       differ,
		writer:       w,
		companion:    companion,
		vcs:          vcs,
		prompter:     prompter,
		tracer:       tracer,
		logger:       log,
	}
}

// RunOptions configuration for the Bump method.
type RunOptions struct {
	// Dir is the workspace root.
	Dir string
	// ConfigPath overrides configuration discovery.
	ConfigPath string

	// To is an explicit new version.
	To string
	// Bump is an increment kind applied to the current version.
	Bump string
	// Preid is the prerelease identifier used with Bump.
	Preid string

	OnlyDirectImpact bool
	Include          []string

	DryRun   bool
	NoCommit bool
	NoTag    bool
}

// interactive reports whether the version is chosen through prompts.
func (o RunOptions) interactive() bool {
	return o.To == "" && o.Bump == ""
}

// Bump resolves the packages affected since the last recorded version,
// rewrites their manifests and records the result in version control.
func (a *App) Bump(ctx context.Context, opts RunOptions) (*domain.Result, error) {
	ctx, span := a.tracer.Start(ctx, "bump")
	defer span.End()

	result, err := a.bump(ctx, opts)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttribute("outcome", string(result.Outcome))
	span.SetAttribute("version", result.Version)
	return result, nil
}

//nolint:cyclop,funlen // orchestration function
func (a *App) bump(ctx context.Context, opts RunOptions) (*domain.Result, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	// 1. Load the configuration
	cfg, err := a.configLoader.Load(dir, opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	// 2. Build the catalog and locate the baseline concurrently
	catalog, base, err := a.discover(ctx, dir)
	if err != nil {
		return nil, err
	}

	// 3. Determine the new version before any resolution work
	current := currentVersion(catalog, base)
	next, err := a.nextVersion(ctx, cfg, current, opts)
	if err != nil {
		return nil, err
	}
	if err := checkIncludes(catalog, opts.Include); err != nil {
		return nil, err
	}

	// 4. Resolve the affected packages
	waves, err := a.resolve(ctx, catalog, base, next, domain.NewResolutionOptions(opts.OnlyDirectImpact, opts.Include))
	if err != nil {
		return nil, err
	}

	if waves.Empty() && opts.interactive() && a.prompter.Interactive() {
		picked, err := a.prompter.SelectPackages(ctx, catalog.Names())
		if err != nil {
			return nil, err
		}
		if len(picked) > 0 {
			forced := append(slices.Clone(opts.Include), picked...)
			waves, err = a.resolve(ctx, catalog, base, next, domain.NewResolutionOptions(opts.OnlyDirectImpact, forced))
			if err != nil {
				return nil, err
			}
		}
	}

	result := &domain.Result{
		PreviousVersion: current,
		Version:         next,
		Waves:           waves,
	}

	if waves.Empty() {
		a.logger.Info("no package changed since the last version")
		result.Outcome = domain.OutcomeNothingAffected
		return result, nil
	}
	if opts.DryRun {
		result.Outcome = domain.OutcomePlanned
		return result, nil
	}

	// 5. Write manifests
	touched, err := a.write(ctx, cfg, catalog, waves, next)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBumpFailed.Error())
	}
	result.Touched = touched

	// 6. Record the version
	commit := cfg.Commit && !opts.NoCommit
	tag := cfg.Tag && !opts.NoTag
	if err := a.record(ctx, cfg, catalog.Root, result, commit, tag); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBumpFailed.Error())
	}

	a.logger.Info(fmt.Sprintf("bumped %d packages to %s", waves.Len(), next))
	result.Outcome = domain.OutcomeBumped
	return result, nil
}

func (a *App) discover(ctx context.Context, dir string) (*domain.Catalog, *domain.Baseline, error) {
	var (
		catalog *domain.Catalog
		base    *domain.Baseline
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		spanCtx, span := a.tracer.Start(gctx, "catalog")
		defer span.End()

		c, err := a.catalog.Build(spanCtx, dir)
		if err != nil {
			span.RecordError(err)
			return zerr.Wrap(err, "failed to build workspace catalog")
		}
		span.SetAttribute("packages", len(c.Packages))
		catalog = c
		return nil
	})

	g.Go(func() error {
		spanCtx, span := a.tracer.Start(gctx, "baseline")
		defer span.End()

		b, err := a.locator.Locate(spanCtx, dir)
		if err != nil {
			span.RecordError(err)
			return zerr.Wrap(err, "failed to locate baseline")
		}
		if b != nil {
			span.SetAttribute("version", b.Version)
		}
		base = b
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return catalog, base, nil
}

// currentVersion prefers the root manifest, then the last recorded version.
func currentVersion(catalog *domain.Catalog, base *domain.Baseline) string {
	if catalog.RootManifest.HasVersion() {
		return catalog.RootManifest.Version
	}
	if base != nil {
		return base.Version
	}
	return initialVersion
}

func (a *App) nextVersion(ctx context.Context, cfg *domain.Config, current string, opts RunOptions) (string, error) {
	if opts.To != "" {
		v, err := domain.ParseVersion(opts.To)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	cur, err := domain.ParseVersion(current)
	if err != nil {
		return "", zerr.With(err, "source", "current version")
	}

	if opts.Bump != "" {
		kind, err := domain.ParseBumpKind(opts.Bump)
		if err != nil {
			return "", err
		}
		v, err := cur.Inc(kind, opts.Preid)
		if err != nil {
			return "", err
		}
		return v.String(), nil
	}

	if !a.prompter.Interactive() {
		return "", zerr.With(domain.ErrInvalidVersionInput, "hint", "pass --to or --bump when not running in a terminal")
	}

	identifier, err := a.prompter.SelectIdentifier(ctx, cfg.Identifiers)
	if err != nil {
		return "", err
	}
	choices, err := domain.Choices(cur, identifier)
	if err != nil {
		return "", err
	}
	picked, err := a.prompter.SelectVersion(ctx, current, choices)
	if err != nil {
		return "", err
	}

	v, err := domain.ParseVersion(picked)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func checkIncludes(catalog *domain.Catalog, names []string) error {
	for _, name := range names {
		if _, ok := catalog.Lookup(name); !ok {
			return zerr.With(domain.ErrUnknownPackage, "package_name", name)
		}
	}
	return nil
}

func (a *App) resolve(
	ctx context.Context,
	catalog *domain.Catalog,
	base *domain.Baseline,
	next string,
	options domain.ResolutionOptions,
) (domain.Waves, error) {
	if !catalog.Workspace {
		return domain.Waves{slices.Clone(domain.Wave(catalog.Packages))}, nil
	}

	var changed []string
	if base != nil {
		diffCtx, span := a.tracer.Start(ctx, "diff")
		paths, err := a.differ.ChangedPaths(diffCtx, catalog.Root, base.Ref)
		if err != nil {
			span.RecordError(err)
			span.End()
			return nil, zerr.With(zerr.Wrap(err, "failed to list changed files"), "ref", base.Ref)
		}
		span.SetAttribute("files", len(paths))
		span.End()
		changed = paths
	}

	_, span := a.tracer.Start(ctx, "resolve")
	defer span.End()

	waves := resolver.Resolve(resolver.Input{
		Catalog:                catalog.Packages,
		Baseline:               base,
		ChangedPaths:           changed,
		NewVersionIsPrerelease: domain.IsPrerelease(next),
		OldIsPrerelease: func(p domain.Package) bool {
			return domain.IsPrerelease(p.Version)
		},
		Options: options,
	})
	span.SetAttribute("waves", len(waves))
	span.SetAttribute("packages", waves.Len())
	return waves, nil
}

func (a *App) write(
	ctx context.Context,
	cfg *domain.Config,
	catalog *domain.Catalog,
	waves domain.Waves,
	next string,
) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "write")
	defer span.End()

	touched, err := a.writer.Write(ctx, catalog, waves, next)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	root, err := a.writer.WriteRoot(catalog, next)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if root != "" {
		touched = append(touched, root)
	}

	if cfg.Companion != "" && !domain.IsPrerelease(next) {
		path := filepath.Join(catalog.Root, filepath.FromSlash(cfg.Companion))
		changed, err := a.companion.Patch(path, next)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		if changed {
			touched = append(touched, cfg.Companion)
		} else {
			a.logger.Info("companion manifest " + cfg.Companion + " left untouched")
		}
	}

	span.SetAttribute("files", len(touched))
	return touched, nil
}

func (a *App) record(ctx context.Context, cfg *domain.Config, root string, result *domain.Result, commit, tag bool) error {
	if !commit {
		return nil
	}
	if len(result.Touched) == 0 {
		a.logger.Warn("no file changed, skipping commit")
		return nil
	}

	ctx, span := a.tracer.Start(ctx, "vcs")
	defer span.End()

	if err := a.vcs.StageFiles(ctx, root, result.Touched); err != nil {
		span.RecordError(err)
		return err
	}
	if err := a.vcs.Commit(ctx, root, result.Version); err != nil {
		span.RecordError(err)
		return err
	}
	if !tag {
		return nil
	}

	name := cfg.TagName(result.Version)
	if err := a.vcs.Tag(ctx, root, name, name); err != nil {
		span.RecordError(err)
		return err
	}
	result.Tag = name
	span.SetAttribute("tag", name)
	return nil
}

// FormatPlan renders waves as "wave N: a, b" lines.
func FormatPlan(waves domain.Waves) string {
	var b strings.Builder
	for i, wave := range waves {
		fmt.Fprintf(&b, "wave %d: %s\n", i, strings.Join(wave.Names(), ", "))
	}
	return b.String()
}
