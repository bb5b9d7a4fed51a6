// Package config provides the configuration loader for stow.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load returns the default configuration overlaid with the nearest stow.yaml
// found in cwd or one of its parents.
func (l *Loader) Load(cwd string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	configPath, found := findConfiguration(cwd)
	if !found {
		return cfg, nil
	}
	l.Logger.Debug("loading configuration", "path", configPath)

	var stowfile Stowfile
	if err := readAndUnmarshalYAML(configPath, &stowfile); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	if err := apply(&cfg, &stowfile, filepath.Dir(configPath)); err != nil {
		return domain.Config{}, zerr.With(err, "path", configPath)
	}

	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

// apply overlays the set fields of f onto cfg. Relative paths are resolved
// against the directory holding the config file.
func apply(cfg *domain.Config, f *Stowfile, configDir string) error {
	if f.RegistryURL != "" {
		cfg.Layout.RegistryURL = f.RegistryURL
	}
	if f.CacheDir != "" {
		cfg.CacheDir = resolvePath(configDir, f.CacheDir)
	}
	if f.Output != "" {
		cfg.Output = resolvePath(configDir, f.Output)
	}
	if f.Format != "" {
		format := domain.OutputFormat(f.Format)
		if !format.Valid() {
			return zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, domain.ErrConfigParseFailed.Error()), "format", f.Format)
		}
		cfg.Format = format
	}
	if f.Parallelism > 0 {
		cfg.Parallelism = f.Parallelism
	}

	if f.Layout != nil {
		setIfNotEmpty(&cfg.Layout.CargoHome, f.Layout.CargoHome)
		setIfNotEmpty(&cfg.Layout.VendorDir, f.Layout.VendorDir)
		setIfNotEmpty(&cfg.Layout.GitCheckoutDir, f.Layout.GitCheckoutDir)
		setIfNotEmpty(&cfg.Layout.ConfigFile, f.Layout.ConfigFile)
	}

	return nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(baseDir, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is found by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
