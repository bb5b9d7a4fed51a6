// Package app implements the application layer for stow.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/stow/internal/engine/dedup"
	"go.trai.ch/stow/internal/engine/planner"
	"go.trai.ch/stow/internal/engine/repocache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lockfiles    ports.LockfileLoader
	codec        ports.ManifestCodec
	finder       ports.ManifestFinder
	git          ports.GitClient
	writer       ports.SourceWriter
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lockfiles ports.LockfileLoader,
	codec ports.ManifestCodec,
	finder ports.ManifestFinder,
	git ports.GitClient,
	writer ports.SourceWriter,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		lockfiles:    lockfiles,
		codec:        codec,
		finder:       finder,
		git:          git,
		writer:       writer,
		logger:       log,
		telemetry:    telemetry,
	}
}

// GenerateOptions configures a Generate run. Zero values keep the setting
// from stow.yaml or the built-in default.
type GenerateOptions struct {
	// Lockfiles lists Cargo.lock paths. Each entry may itself be a
	// comma-separated list.
	Lockfiles []string

	// WorkDir is where the search for stow.yaml starts. Defaults to ".".
	WorkDir string

	Output      string
	Format      domain.OutputFormat
	CacheDir    string
	Parallelism int
}

// Result is the outcome of planning a set of lockfiles.
type Result struct {
	// Sources holds the deduplicated fetch operations followed by the cargo
	// config that redirects sources to the vendored tree.
	Sources []domain.Source

	Vendor     domain.VendorConfig
	Suppressed int
}

// Generate plans every lockfile and writes the combined sources.
func (a *App) Generate(ctx context.Context, opts GenerateOptions) error {
	paths := SplitLockfiles(opts.Lockfiles)
	if len(paths) == 0 {
		return domain.ErrNoLockfiles
	}

	cfg, err := a.loadConfig(opts.WorkDir)
	if err != nil {
		return err
	}
	cfg, err = applyOverrides(cfg, opts)
	if err != nil {
		return err
	}

	res, err := a.Sources(ctx, cfg, paths)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Deduped %d cargo source entries", res.Suppressed))

	if err := a.writer.Write(cfg.Output, cfg.Format, res.Sources); err != nil {
		return err
	}

	a.logger.Debug("wrote sources", "path", cfg.Output, "count", len(res.Sources))
	return nil
}

// Sources plans the lockfiles at paths in order. One repository cache is
// shared by all of them, so a repository referenced by several lockfiles is
// fetched once.
func (a *App) Sources(ctx context.Context, cfg domain.Config, paths []string) (*Result, error) {
	cache := repocache.New(cfg.GitCacheDir(), a.git, a.finder, a.codec, a.logger, a.telemetry)
	plnr := planner.New(cfg.Layout, cache, a.codec, a.logger)

	acc := dedup.New()
	vendor := domain.NewVendorConfig(cfg.Layout.VendorDir)

	for _, path := range paths {
		a.logger.Debug("loading lockfile", "path", path)

		lock, err := a.lockfiles.Load(path)
		if err != nil {
			return nil, err
		}

		lockCtx, vertex := a.telemetry.Record(ctx, "lockfile "+lock.Path)
		plans, err := planLockfile(lockCtx, plnr, lock, cfg.Parallelism)
		vertex.Complete(err)
		if err != nil {
			return nil, zerr.With(err, "lockfile", lock.Path)
		}

		var pkgSources []domain.Source
		var repos []domain.RepoRef
		for _, plan := range plans {
			if plan == nil {
				continue
			}
			pkgSources = append(pkgSources, plan.Sources...)
			vendor.Add(plan.EntryName, plan.Entry)
			if plan.Repository != nil {
				repos = append(repos, *plan.Repository)
			}
		}

		acc.Merge(cloneSources(cfg.Layout, repos))
		acc.Merge(pkgSources)
	}

	for _, ref := range cache.Repositories() {
		a.logger.Debug("collected git repository", "url", ref.URL.String(), "commit", ref.Commit)
	}
	for _, name := range vendor.Names() {
		a.logger.Debug("vendored source", "name", name, "entry", vendor[name])
	}

	config, err := a.codec.Encode(vendor.Document())
	if err != nil {
		return nil, err
	}

	sources := slices.Clone(acc.Sources())
	sources = append(sources, domain.Inline{
		Contents: config,
		Dest:     cfg.Layout.CargoHome,
		Filename: cfg.Layout.ConfigFile,
	})

	return &Result{
		Sources:    sources,
		Vendor:     vendor,
		Suppressed: acc.Suppressed(),
	}, nil
}

// planLockfile plans every package of lock concurrently. Plans keep the
// package order of the lockfile; the first failure cancels the rest.
func planLockfile(ctx context.Context, p *planner.Planner, lock *domain.Lockfile, parallelism int) ([]*domain.Plan, error) {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}

	plans := make([]*domain.Plan, len(lock.Packages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, pkg := range lock.Packages {
		g.Go(func() error {
			plan, err := p.Build(ctx, pkg, lock)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// cloneSources returns one git source per distinct repository commit,
// ordered by URL then commit.
func cloneSources(layout domain.Layout, repos []domain.RepoRef) []domain.Source {
	slices.SortFunc(repos, func(x, y domain.RepoRef) int {
		if n := strings.Compare(x.URL.String(), y.URL.String()); n != 0 {
			return n
		}
		return strings.Compare(x.Commit, y.Commit)
	})
	repos = slices.Compact(repos)

	sources := make([]domain.Source, 0, len(repos))
	for _, ref := range repos {
		sources = append(sources, domain.GitClone{
			URL:    ref.URL.String(),
			Commit: ref.Commit,
			Dest:   layout.CheckoutDir(ref.URL, ref.Commit),
		})
	}
	return sources
}

// CleanOptions configures the Clean method.
type CleanOptions struct {
	WorkDir  string
	CacheDir string
}

// Clean removes the persistent clone cache.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.loadConfig(opts.WorkDir)
	if err != nil {
		return err
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}

	dir := cfg.GitCacheDir()
	a.logger.Info(fmt.Sprintf("removing git cache %s...", dir))
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove git cache"), "path", dir)
	}
	a.logger.Info("removed git cache")
	return nil
}

func (a *App) loadConfig(workDir string) (domain.Config, error) {
	if workDir == "" {
		workDir = "."
	}
	cfg, err := a.configLoader.Load(workDir)
	if err != nil {
		return domain.Config{}, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

func applyOverrides(cfg domain.Config, opts GenerateOptions) (domain.Config, error) {
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.CacheDir != "" {
		cfg.CacheDir = opts.CacheDir
	}
	if opts.Parallelism > 0 {
		cfg.Parallelism = opts.Parallelism
	}

	if !cfg.Format.Valid() {
		return cfg, zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "unsupported --format"), "format", string(cfg.Format))
	}
	return cfg, nil
}

// SplitLockfiles flattens comma-separated path lists, dropping empty entries.
func SplitLockfiles(args []string) []string {
	var paths []string
	for _, arg := range args {
		for p := range strings.SplitSeq(arg, ",") {
			if p = strings.TrimSpace(p); p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}
