// Package planner turns locked packages into flatpak fetch operations.
package planner

import (
	"context"
	"encoding/json"
	"path"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Planner builds the sources and vendor entry of a single locked package.
type Planner struct {
	layout domain.Layout
	repos  ports.RepositoryCache
	codec  ports.ManifestCodec
	logger ports.Logger
}

// New creates a Planner emitting paths according to layout.
func New(layout domain.Layout, repos ports.RepositoryCache, codec ports.ManifestCodec, logger ports.Logger) *Planner {
	return &Planner{
		layout: layout,
		repos:  repos,
		codec:  codec,
		logger: logger,
	}
}

// checksumFile is the content of a vendored .cargo-checksum.json. Package is
// nil for git sources, which cargo does not verify.
type checksumFile struct {
	Package *string           `json:"package"`
	Files   map[string]string `json:"files"`
}

func (c checksumFile) String() string {
	// Marshaling a string pointer and an empty map cannot fail.
	data, _ := json.Marshal(c)
	return string(data)
}

// Build plans pkg. A nil plan without error means the package is skipped:
// it is local to the workspace or has no checksum.
func (p *Planner) Build(ctx context.Context, pkg domain.Package, lock *domain.Lockfile) (*domain.Plan, error) {
	switch pkg.Source.Kind {
	case domain.SourceRegistry:
		return p.registry(pkg, lock), nil
	case domain.SourceGit:
		return p.git(ctx, pkg)
	default:
		p.logger.Debug("package has no source", "package", pkg.Name)
		return nil, nil
	}
}

func (p *Planner) registry(pkg domain.Package, lock *domain.Lockfile) *domain.Plan {
	sum := lock.Checksum(pkg)
	if sum == "" {
		p.logger.Warn(domain.ErrMissingChecksum.Error(), "package", pkg.Name, "version", pkg.Version)
		return nil
	}

	dest := p.layout.RegistryVendorDir(pkg.Name, pkg.Version)

	return &domain.Plan{
		Sources: []domain.Source{
			domain.Archive{
				URL:    p.layout.ArchiveURL(pkg.Name, pkg.Version),
				SHA256: sum,
				Dest:   dest,
			},
			domain.Inline{
				Contents: checksumFile{Package: &sum, Files: map[string]string{}}.String(),
				Dest:     dest,
				Filename: domain.ChecksumFileName,
			},
		},
		EntryName: domain.CratesIOSourceName,
		Entry:     domain.VendorEntry{ReplaceWith: domain.VendoredSourceName},
	}
}

func (p *Planner) git(ctx context.Context, pkg domain.Package) (*domain.Plan, error) {
	loc := pkg.Source
	if loc.Commit == "" {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrMissingCommitFragment, "cannot pin git package"), "package", pkg.Name),
			"source", loc.Raw(),
		)
	}

	if loc.PinConflict {
		p.logger.Debug("git source declares more than one of rev, tag and branch",
			"package", pkg.Name, "selected", string(loc.Pin.Kind), "source", loc.Raw())
	}

	repo := domain.Canonicalize(loc.RepoURL)

	packages, err := p.repos.GetOrFetch(ctx, loc.RepoURL, loc.Commit)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to load git package"), "package", pkg.Name)
	}

	gitPkg, ok := packages[pkg.Name]
	if !ok {
		return nil, zerr.With(
			zerr.With(
				zerr.With(zerr.Wrap(domain.ErrPackageNotFoundInRepo, "cannot vendor git package"), "package", pkg.Name),
				"repository", repo.String(),
			),
			"commit", loc.Commit,
		)
	}

	resolved, err := domain.ResolveWorkspace(gitPkg.Manifest, gitPkg.Workspace)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "package", pkg.Name), "repository", repo.String())
	}

	manifest, err := p.codec.Encode(resolved)
	if err != nil {
		return nil, zerr.With(err, "package", pkg.Name)
	}

	dest := p.layout.GitVendorDir(repo, loc.Commit, pkg.Name)

	p.logger.Info("Adding package " + pkg.Name + " from " + repo.String())

	return &domain.Plan{
		Sources: []domain.Source{
			domain.ShellCopy{
				Src:  path.Join(p.layout.CheckoutDir(repo, loc.Commit), gitPkg.Path),
				Dest: dest,
			},
			domain.Inline{
				Contents: manifest,
				Dest:     dest,
				Filename: domain.ManifestFileName,
			},
			domain.Inline{
				Contents: checksumFile{Files: map[string]string{}}.String(),
				Dest:     dest,
				Filename: domain.ChecksumFileName,
			},
		},
		EntryName: repo.String(),
		Entry: domain.VendorEntry{
			Git:         repo.String(),
			ReplaceWith: domain.VendoredSourceName,
		}.WithPin(loc.Pin),
		Repository: &domain.RepoRef{URL: repo, Commit: loc.Commit},
	}, nil
}
