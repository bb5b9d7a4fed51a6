package domain

import (
	"fmt"
	"path"

	"github.com/cespare/xxhash/v2"
)

const (
	// CratesIORegistry is the download root of the public crate registry.
	CratesIORegistry = "https://static.crates.io/crates"

	// CratesIOSourceName is the source name cargo uses for the public registry.
	CratesIOSourceName = "crates-io"

	// VendoredSourceName is the source name every replaced source is redirected to.
	VendoredSourceName = "vendored-sources"

	// DefaultCargoHome is the build-relative cargo home directory.
	DefaultCargoHome = "cargo"

	// DefaultVendorDir is the build-relative directory holding vendored packages.
	DefaultVendorDir = "cargo/vendor"

	// DefaultGitCheckoutDir is the build-relative directory holding raw git clones.
	DefaultGitCheckoutDir = "flatpak-cargo/git"

	// DefaultCargoConfigFile is the file name of the generated cargo config.
	DefaultCargoConfigFile = "config"

	// ManifestFileName is the name of a cargo package manifest.
	ManifestFileName = "Cargo.toml"

	// ChecksumFileName is the name of the per-package checksum file cargo expects in vendored packages.
	ChecksumFileName = ".cargo-checksum.json"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "stow.yaml"

	// DefaultOutputPath is the default path of the generated sources file.
	DefaultOutputPath = "cargo-sources.json"

	// CacheDirName is the directory under the user cache root holding stow state.
	CacheDirName = "stow"

	// GitCacheDirName is the directory under the cache root holding persistent clones.
	GitCacheDirName = "git"

	// ShortCommitLen is the number of hex characters used to name checkouts
	// and to compare HEAD against a requested commit.
	ShortCommitLen = 7

	// FullCommitLen is the length of a full SHA-1 commit hash.
	FullCommitLen = 40

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout describes where fetched sources land inside the build directory.
// Every destination it produces is a pure function of its inputs.
type Layout struct {
	CargoHome      string
	VendorDir      string
	GitCheckoutDir string
	ConfigFile     string
	RegistryURL    string
}

// DefaultLayout returns the layout used when no configuration overrides it.
func DefaultLayout() Layout {
	return Layout{
		CargoHome:      DefaultCargoHome,
		VendorDir:      DefaultVendorDir,
		GitCheckoutDir: DefaultGitCheckoutDir,
		ConfigFile:     DefaultCargoConfigFile,
		RegistryURL:    CratesIORegistry,
	}
}

// ArchiveURL returns the download URL of a registry crate.
func (l Layout) ArchiveURL(name, version string) string {
	return fmt.Sprintf("%s/%s/%s-%s.crate", l.RegistryURL, name, name, version)
}

// RegistryVendorDir returns the vendor directory of a registry package.
func (l Layout) RegistryVendorDir(name, version string) string {
	return path.Join(l.VendorDir, name+"-"+version)
}

// GitVendorDir returns the vendor directory of a git package. The suffix is
// derived from the repository identity and commit, so two git packages only
// share a directory when they are the same package at the same commit.
// The directory is <vendor>/<name>-<id> rather than <vendor>/<name>; cargo's
// directory source matches crates by manifest, not by folder name.
func (l Layout) GitVendorDir(repo CanonicalURL, commit, name string) string {
	id := xxhash.Sum64String(repo.String() + "#" + commit)
	return path.Join(l.VendorDir, fmt.Sprintf("%s-%016x", name, id))
}

// CheckoutDir returns the build-relative directory a repository is cloned into.
func (l Layout) CheckoutDir(repo CanonicalURL, commit string) string {
	return path.Join(l.GitCheckoutDir, repo.Name()+"-"+ShortCommit(commit))
}

// ShortCommit truncates a commit hash to ShortCommitLen characters.
func ShortCommit(commit string) string {
	if len(commit) <= ShortCommitLen {
		return commit
	}
	return commit[:ShortCommitLen]
}
