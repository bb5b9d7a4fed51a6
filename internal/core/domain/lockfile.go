package domain

import (
	"fmt"
	"net/url"
	"strings"
)

const gitSourcePrefix = "git+"

// Lockfile is a resolved cargo dependency graph.
type Lockfile struct {
	// Path is the location the lockfile was read from.
	Path string

	// Version is the lockfile format version. Legacy lockfiles carry no
	// version and report zero.
	Version int

	// Packages lists the locked packages in file order.
	Packages []Package

	// Metadata holds the legacy [metadata] table, where v1 lockfiles store
	// checksums under "checksum <name> <version> (<source>)" keys.
	Metadata map[string]string
}

// Package is a single locked package.
type Package struct {
	Name     string
	Version  string
	Source   SourceLocator
	Checksum string
}

// ChecksumKey returns the legacy metadata key holding the package checksum.
func (p Package) ChecksumKey() string {
	return fmt.Sprintf("checksum %s %s (%s)", p.Name, p.Version, p.Source.Raw())
}

// Checksum looks up the checksum of a package, preferring the legacy
// metadata table over the per-package field.
func (l *Lockfile) Checksum(p Package) string {
	if sum, ok := l.Metadata[p.ChecksumKey()]; ok && sum != "" {
		return sum
	}
	return p.Checksum
}

// SourceKind classifies where a locked package is fetched from.
type SourceKind int

const (
	// SourceNone marks a package local to the workspace being built.
	SourceNone SourceKind = iota
	// SourceRegistry marks a package downloaded from a registry.
	SourceRegistry
	// SourceGit marks a package taken from a git repository.
	SourceGit
)

// PinKind is the kind of reference a git dependency was declared with.
type PinKind string

// Pin kinds in priority order: rev beats tag beats branch.
const (
	PinNone   PinKind = ""
	PinRev    PinKind = "rev"
	PinTag    PinKind = "tag"
	PinBranch PinKind = "branch"
)

// Pin is the reference a git dependency was declared with.
type Pin struct {
	Kind  PinKind
	Value string
}

// SourceLocator is the parsed "source" field of a locked package.
type SourceLocator struct {
	Kind SourceKind

	// RepoURL is the repository URL without the "git+" prefix, query or fragment.
	RepoURL string

	// Commit is the locked commit taken from the URL fragment.
	Commit string

	Pin Pin

	// PinConflict is set when more than one of rev, tag or branch was present.
	PinConflict bool

	raw string
}

// Raw returns the source string as it appeared in the lockfile.
func (s SourceLocator) Raw() string {
	return s.raw
}

// ParseSource classifies a lockfile "source" string. An empty string denotes
// a local package. Strings starting with "git+" are git sources, anything
// else is a registry.
func ParseSource(raw string) SourceLocator {
	if raw == "" {
		return SourceLocator{Kind: SourceNone}
	}

	rest, ok := strings.CutPrefix(raw, gitSourcePrefix)
	if !ok {
		return SourceLocator{Kind: SourceRegistry, raw: raw}
	}

	loc := SourceLocator{Kind: SourceGit, raw: raw}

	rest, loc.Commit, _ = strings.Cut(rest, "#")
	rest, query, _ := strings.Cut(rest, "?")
	loc.RepoURL = rest

	values, err := url.ParseQuery(query)
	if err != nil {
		return loc
	}

	found := 0
	for _, kind := range []PinKind{PinRev, PinTag, PinBranch} {
		v := values.Get(string(kind))
		if v == "" {
			continue
		}
		found++
		if loc.Pin.Kind == PinNone {
			loc.Pin = Pin{Kind: kind, Value: v}
		}
	}
	loc.PinConflict = found > 1

	return loc
}
