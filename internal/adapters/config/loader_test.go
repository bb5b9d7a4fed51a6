package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/config"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func writeStowfile(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), domain.FilePerm))
}

func TestLoader_Load_Defaults(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", cache)

	cfg, err := newLoader(t).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultLayout(), cfg.Layout)
	assert.Equal(t, filepath.Join(cache, "stow"), cfg.CacheDir)
	assert.Equal(t, filepath.Join(cache, "stow", "git"), cfg.GitCacheDir())
	assert.Equal(t, "cargo-sources.json", cfg.Output)
	assert.Equal(t, domain.FormatJSON, cfg.Format)
	assert.Equal(t, runtime.NumCPU(), cfg.Parallelism)
}

func TestLoader_Load_FromParentDirectory(t *testing.T) {
	root := t.TempDir()
	writeStowfile(t, root, `
registry-url: https://mirror.example.com/crates
cache-dir: .cache
output: out/sources.yaml
format: yaml
parallelism: 3
layout:
  vendor-dir: deps/vendor
  git-checkout-dir: deps/git
`)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	assert.Equal(t, "https://mirror.example.com/crates", cfg.Layout.RegistryURL)
	assert.Equal(t, "deps/vendor", cfg.Layout.VendorDir)
	assert.Equal(t, "deps/git", cfg.Layout.GitCheckoutDir)
	assert.Equal(t, domain.DefaultCargoHome, cfg.Layout.CargoHome)
	assert.Equal(t, domain.DefaultCargoConfigFile, cfg.Layout.ConfigFile)
	assert.Equal(t, filepath.Join(root, ".cache"), cfg.CacheDir)
	assert.Equal(t, filepath.Join(root, "out", "sources.yaml"), cfg.Output)
	assert.Equal(t, domain.FormatYAML, cfg.Format)
	assert.Equal(t, 3, cfg.Parallelism)
}

func TestLoader_Load_NearestWins(t *testing.T) {
	root := t.TempDir()
	writeStowfile(t, root, "parallelism: 2\n")
	nested := filepath.Join(root, "nested")
	writeStowfile(t, nested, "parallelism: 5\n")

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Parallelism)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeStowfile(t, dir, "layout: [unterminated\n")

		_, err := newLoader(t).Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigParseFailed.Error())
	})

	t.Run("invalid format", func(t *testing.T) {
		dir := t.TempDir()
		writeStowfile(t, dir, "format: xml\n")

		_, err := newLoader(t).Load(dir)
		require.ErrorIs(t, err, domain.ErrInvalidOutputFormat)
	})

	t.Run("unreadable", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, domain.ConfigFileName), domain.DirPerm))

		_, err := newLoader(t).Load(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), domain.ErrConfigReadFailed.Error())
	})
}
