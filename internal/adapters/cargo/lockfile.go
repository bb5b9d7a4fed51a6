// Package cargo reads Cargo.lock files and reads and writes Cargo.toml documents.
package cargo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// lockfileDTO mirrors the on-disk layout of Cargo.lock.
type lockfileDTO struct {
	Version  int               `toml:"version"`
	Package  []packageDTO      `toml:"package"`
	Metadata map[string]string `toml:"metadata"`
}

type packageDTO struct {
	Name     string `toml:"name"`
	Version  string `toml:"version"`
	Source   string `toml:"source"`
	Checksum string `toml:"checksum"`
}

// LockfileLoader implements ports.LockfileLoader.
type LockfileLoader struct{}

// NewLockfileLoader creates a new LockfileLoader.
func NewLockfileLoader() *LockfileLoader {
	return &LockfileLoader{}
}

// Load reads and validates the lockfile at path. A leading "~" is expanded
// to the user's home directory.
func (l *LockfileLoader) Load(path string) (*domain.Lockfile, error) {
	path = expandHome(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is a CLI argument
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockfileReadFailed.Error()), "path", path)
	}

	var dto lockfileDTO
	if _, err := toml.Decode(string(data), &dto); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrLockfileParseFailed.Error()), "path", path)
		var perr toml.ParseError
		if errors.As(err, &perr) {
			wrapped = zerr.With(wrapped, "line", perr.Position.Line)
		}
		return nil, wrapped
	}

	lock := &domain.Lockfile{
		Path:     path,
		Version:  dto.Version,
		Packages: make([]domain.Package, 0, len(dto.Package)),
		Metadata: dto.Metadata,
	}

	for _, p := range dto.Package {
		if !semver.IsValid("v" + p.Version) {
			err := zerr.Wrap(domain.ErrInvalidPackageVersion, "invalid lockfile entry")
			err = zerr.With(err, "package", p.Name)
			err = zerr.With(err, "version", p.Version)
			return nil, zerr.With(err, "path", path)
		}
		lock.Packages = append(lock.Packages, domain.Package{
			Name:     p.Name,
			Version:  p.Version,
			Source:   domain.ParseSource(p.Source),
			Checksum: p.Checksum,
		})
	}

	return lock, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
