package domain

import (
	"net/url"
	"path"
	"strings"
)

// CaseFoldingHost is the forge whose repository paths are case-insensitive.
// Cargo forces https and lower-cases the path for it.
const CaseFoldingHost = "github.com"

// CanonicalURL is the normalized identity of a git repository.
// Two URLs with equal CanonicalURL values refer to the same repository.
type CanonicalURL struct {
	Scheme string
	Host   string
	Path   string
}

// Canonicalize maps a repository URL to its canonical identity, mirroring
// cargo's CanonicalUrl. It never fails and never touches the network.
func Canonicalize(raw string) CanonicalURL {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "git+https://"); ok {
		raw = "https://" + rest
	}

	u, err := url.Parse(raw)
	if err != nil {
		// Not a URL: keep whatever path-like text we have so equal inputs stay equal.
		p, _, _ := strings.Cut(raw, "#")
		p, _, _ = strings.Cut(p, "?")
		return CanonicalURL{Path: trimRepoPath(p)}
	}

	c := CanonicalURL{
		Scheme: strings.ToLower(u.Scheme),
		Host:   strings.ToLower(u.Host),
		Path:   u.Path,
	}

	// Fold before trimming so ".GIT" is stripped like ".git".
	if u.Hostname() != "" && strings.EqualFold(u.Hostname(), CaseFoldingHost) {
		c.Scheme = "https"
		c.Path = strings.ToLower(c.Path)
	}
	c.Path = trimRepoPath(c.Path)

	return c
}

// trimRepoPath strips trailing slashes and a ".git" suffix until neither applies.
func trimRepoPath(p string) string {
	for {
		next := strings.TrimRight(p, "/")
		next = strings.TrimSuffix(next, ".git")
		if next == p {
			return p
		}
		p = next
	}
}

// String renders the canonical URL in scheme://host/path form.
func (c CanonicalURL) String() string {
	if c.Scheme == "" && c.Host == "" {
		return c.Path
	}
	return c.Scheme + "://" + c.Host + c.Path
}

// Name returns the last path segment of the repository, e.g. "serde" for
// https://github.com/serde-rs/serde.
func (c CanonicalURL) Name() string {
	return path.Base("/" + strings.TrimPrefix(c.Path, "/"))
}

// CacheKey returns a filesystem-safe encoding of the canonical URL, used to
// name the persistent clone directory.
func (c CanonicalURL) CacheKey() string {
	r := strings.NewReplacer("://", "_", "/", "_", ":", "_")
	return r.Replace(c.String())
}
