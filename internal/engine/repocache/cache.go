// Package repocache clones git dependencies and discovers the packages they contain.
package repocache

import (
	"context"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Cache implements ports.RepositoryCache. Each repository has its own lock,
// so distinct repositories are fetched in parallel while concurrent requests
// for the same repository run one at a time against its single working tree.
type Cache struct {
	root      string
	git       ports.GitClient
	finder    ports.ManifestFinder
	codec     ports.ManifestCodec
	logger    ports.Logger
	telemetry ports.Telemetry

	mu    sync.Mutex
	repos map[string]*repoEntry

	fetches atomic.Int64
}

type repoEntry struct {
	url     domain.CanonicalURL
	mu      sync.Mutex
	commits map[string]result
}

type result struct {
	packages domain.PackageSet
	err      error
}

// New creates a Cache keeping its clones below root.
func New(
	root string,
	git ports.GitClient,
	finder ports.ManifestFinder,
	codec ports.ManifestCodec,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Cache {
	return &Cache{
		root:      root,
		git:       git,
		finder:    finder,
		codec:     codec,
		logger:    logger,
		telemetry: telemetry,
		repos:     make(map[string]*repoEntry),
	}
}

// GetOrFetch returns the packages of repoURL at commit. The first request for
// a (repository, commit) pair materializes the working tree and walks it;
// later requests, including concurrent ones, reuse that outcome.
func (c *Cache) GetOrFetch(ctx context.Context, repoURL, commit string) (domain.PackageSet, error) {
	canonical := domain.Canonicalize(repoURL)
	entry := c.entry(canonical)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	ctx, vertex := c.telemetry.Record(ctx, "discover "+canonical.String()+"#"+domain.ShortCommit(commit))

	if res, ok := entry.commits[commit]; ok {
		vertex.Cached()
		vertex.Complete(res.err)
		return res.packages, res.err
	}

	c.fetches.Add(1)
	packages, err := c.discover(ctx, canonical, commit)
	entry.commits[commit] = result{packages: packages, err: err}
	vertex.Complete(err)

	return packages, err
}

// Fetches returns how many discoveries ran, one per distinct (repository, commit).
func (c *Cache) Fetches() int {
	return int(c.fetches.Load())
}

// Repositories returns every (repository, commit) pair discovered without
// error, ordered by URL and then commit.
func (c *Cache) Repositories() []domain.RepoRef {
	c.mu.Lock()
	entries := make([]*repoEntry, 0, len(c.repos))
	for _, e := range c.repos {
		entries = append(entries, e)
	}
	c.mu.Unlock()

	var refs []domain.RepoRef
	for _, e := range entries {
		e.mu.Lock()
		for commit, res := range e.commits {
			if res.err == nil {
				refs = append(refs, domain.RepoRef{URL: e.url, Commit: commit})
			}
		}
		e.mu.Unlock()
	}

	slices.SortFunc(refs, func(a, b domain.RepoRef) int {
		if n := strings.Compare(a.URL.String(), b.URL.String()); n != 0 {
			return n
		}
		return strings.Compare(a.Commit, b.Commit)
	})
	return refs
}

func (c *Cache) entry(url domain.CanonicalURL) *repoEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := url.String()
	e, ok := c.repos[key]
	if !ok {
		e = &repoEntry{url: url, commits: make(map[string]result)}
		c.repos[key] = e
	}
	return e
}

// Dir returns the clone directory used for url.
func (c *Cache) Dir(url domain.CanonicalURL) string {
	return filepath.Join(c.root, url.CacheKey())
}

func (c *Cache) discover(ctx context.Context, url domain.CanonicalURL, commit string) (domain.PackageSet, error) {
	dir := c.Dir(url)
	if err := c.materialize(ctx, url, dir, commit); err != nil {
		return nil, zerr.With(zerr.With(err, "repository", url.String()), "commit", commit)
	}

	c.logger.Info("Loading packages from " + url.String())

	packages, err := c.scan(dir)
	if err != nil {
		return nil, zerr.With(zerr.With(err, "repository", url.String()), "commit", commit)
	}

	if len(packages) == 0 {
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrEmptyRepository, "no Cargo.toml with a [package] table"), "repository", url.String()),
			"commit", commit,
		)
	}

	for _, name := range slices.Sorted(maps.Keys(packages)) {
		c.logger.Debug("discovered package", "repository", url.String(), "name", name, "path", packages[name].Path)
	}

	return packages, nil
}

// materialize leaves dir checked out at commit with submodules in place.
func (c *Cache) materialize(ctx context.Context, url domain.CanonicalURL, dir, commit string) error {
	if !c.git.IsRepository(dir) {
		if err := os.MkdirAll(filepath.Dir(dir), domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
		}
		if err := os.RemoveAll(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrCacheCreateFailed.Error()), "path", dir)
		}
		if err := c.git.Clone(ctx, url.String(), dir); err != nil {
			return err
		}
	}

	head, err := c.git.Head(dir)
	if err != nil {
		return err
	}

	if !commitMatches(head, commit) {
		if err := c.git.FetchCommit(ctx, dir, commit); err != nil {
			return err
		}
		if err := c.git.Checkout(ctx, dir, commit); err != nil {
			return err
		}
	}

	return c.git.UpdateSubmodules(ctx, dir)
}

// commitMatches compares on the short hash unless a full hash was requested.
func commitMatches(head, commit string) bool {
	head = strings.ToLower(head)
	commit = strings.ToLower(commit)
	if len(commit) >= domain.FullCommitLen {
		return head == commit
	}
	return domain.ShortCommit(head) == domain.ShortCommit(commit)
}

// scan reads every manifest below dir. Each package is paired with the
// [workspace] table of its deepest enclosing workspace root.
func (c *Cache) scan(dir string) (domain.PackageSet, error) {
	rels, err := c.finder.FindManifests(dir)
	if err != nil {
		return nil, err
	}

	manifests := make(map[string]domain.Table, len(rels))
	workspaces := make(map[string]domain.Table)
	for _, rel := range rels {
		doc, err := c.codec.Read(filepath.Join(dir, filepath.FromSlash(rel), domain.ManifestFileName))
		if err != nil {
			return nil, err
		}
		manifests[rel] = doc
		if ws, ok := doc.Table(domain.KeyWorkspace); ok {
			workspaces[rel] = ws
		}
	}

	packages := make(domain.PackageSet)
	for _, rel := range rels {
		pkg, ok := manifests[rel].Table(domain.KeyPackage)
		if !ok {
			continue
		}
		name := pkg.String(domain.KeyName)
		if name == "" {
			c.logger.Debug("skipping manifest without package name", "path", rel)
			continue
		}
		if prev, dup := packages[name]; dup {
			c.logger.Debug("duplicate package name, keeping first", "name", name, "kept", prev.Path, "ignored", rel)
			continue
		}
		packages[name] = domain.GitPackage{
			Path:      rel,
			Manifest:  manifests[rel],
			Workspace: enclosingWorkspace(rel, workspaces),
		}
	}

	return packages, nil
}

func enclosingWorkspace(rel string, workspaces map[string]domain.Table) domain.Table {
	best := ""
	var found domain.Table
	for root, ws := range workspaces {
		if !within(rel, root) {
			continue
		}
		if found == nil || depth(root) > depth(best) {
			best, found = root, ws
		}
	}
	return found
}

func within(rel, root string) bool {
	return root == "." || rel == root || strings.HasPrefix(rel, root+"/")
}

func depth(rel string) int {
	if rel == "." {
		return 0
	}
	return strings.Count(path.Clean(rel), "/") + 1
}
