package domain

import (
	"os"
	"path/filepath"
	"runtime"
)

// OutputFormat selects the encoding of the generated sources file.
type OutputFormat string

const (
	// FormatJSON writes the sources as a JSON array.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes the sources as a YAML sequence.
	FormatYAML OutputFormat = "yaml"
)

// Valid reports whether f is a known output format.
func (f OutputFormat) Valid() bool {
	return f == FormatJSON || f == FormatYAML
}

// Config holds the resolved settings of a generate run.
type Config struct {
	Layout Layout

	// CacheDir is the root of the persistent clone cache.
	CacheDir string

	// Output is the path of the generated sources file.
	Output string
	Format OutputFormat

	// Parallelism bounds how many packages of a lockfile are planned at once.
	Parallelism int
}

// DefaultConfig returns the settings used when neither a config file nor
// flags override them.
func DefaultConfig() Config {
	return Config{
		Layout:      DefaultLayout(),
		CacheDir:    DefaultCacheDir(),
		Output:      DefaultOutputPath,
		Format:      FormatJSON,
		Parallelism: runtime.NumCPU(),
	}
}

// DefaultCacheDir returns $XDG_CACHE_HOME/stow, falling back to ~/.cache/stow.
func DefaultCacheDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, CacheDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".cache", CacheDirName)
	}
	return filepath.Join(os.TempDir(), CacheDirName)
}

// GitCacheDir returns the directory holding persistent clones.
func (c Config) GitCacheDir() string {
	return filepath.Join(c.CacheDir, GitCacheDirName)
}
