package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingChecksum is returned when a registry package has no checksum in the
	// lockfile metadata nor on the package entry itself.
	ErrMissingChecksum = zerr.New("package has no checksum")

	// ErrMissingCommitFragment is returned when a git source does not carry a commit fragment.
	ErrMissingCommitFragment = zerr.New("git source has no commit fragment")

	// ErrEmptyRepository is returned when a cloned repository contains no cargo packages.
	ErrEmptyRepository = zerr.New("no packages found in repository")

	// ErrPackageNotFoundInRepo is returned when a locked package is absent from its git repository.
	ErrPackageNotFoundInRepo = zerr.New("package not found in repository")

	// ErrSubprocessFailure is returned when a git invocation exits with a non-zero status.
	ErrSubprocessFailure = zerr.New("git command failed")

	// ErrInvalidCommit is returned when a commit is not a hexadecimal object id.
	ErrInvalidCommit = zerr.New("invalid commit hash")

	// ErrUnresolvedWorkspaceKey is returned when a manifest inherits a key the workspace does not define.
	ErrUnresolvedWorkspaceKey = zerr.New("manifest inherits a key missing from the workspace")

	// ErrLockfileReadFailed is returned when a lockfile cannot be read.
	ErrLockfileReadFailed = zerr.New("failed to read lockfile")

	// ErrLockfileParseFailed is returned when a lockfile cannot be decoded.
	ErrLockfileParseFailed = zerr.New("failed to parse lockfile")

	// ErrInvalidPackageVersion is returned when a locked package version is not valid semver.
	ErrInvalidPackageVersion = zerr.New("invalid package version")

	// ErrManifestReadFailed is returned when a Cargo.toml cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestParseFailed is returned when a Cargo.toml cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrManifestEncodeFailed is returned when a resolved manifest cannot be encoded.
	ErrManifestEncodeFailed = zerr.New("failed to encode manifest")

	// ErrCacheCreateFailed is returned when the clone cache directory cannot be created.
	ErrCacheCreateFailed = zerr.New("failed to create clone cache directory")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidOutputFormat is returned when an unknown output format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'json' or 'yaml'")

	// ErrOutputWriteFailed is returned when the generated sources cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write generated sources")

	// ErrNoLockfiles is returned when the generate command receives no lockfile paths.
	ErrNoLockfiles = zerr.New("no lockfiles specified")
)
