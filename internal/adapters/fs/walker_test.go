package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/fs"
	"go.trai.ch/stow/internal/core/domain"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		path := filepath.Join(root, r)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte("x"), domain.FilePerm))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		".git/config",
		".jj/store",
		"ignored/file",
		"src/main.rs",
		"README.md",
		"notes.tmp",
	)

	var got []string
	for path, err := range fs.NewWalker().WalkFiles(root, []string{"ignored", "*.tmp"}) {
		require.NoError(t, err)
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		got = append(got, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{"README.md", "src/main.rs"}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a", "b", "c")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestWalker_WalkFiles_MissingRoot(t *testing.T) {
	var errs []error
	for _, err := range fs.NewWalker().WalkFiles(filepath.Join(t.TempDir(), "missing"), nil) {
		errs = append(errs, err)
	}
	require.Len(t, errs, 1)
	assert.Error(t, errs[0])
}

func TestWalker_FindManifests(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"Cargo.toml",
		"crates/a/Cargo.toml",
		"crates/a/src/lib.rs",
		"crates/b/Cargo.toml",
		"vendor/.git/Cargo.toml",
		"docs/README.md",
	)

	dirs, err := fs.NewWalker().FindManifests(root)
	require.NoError(t, err)

	assert.Equal(t, []string{".", "crates/a", "crates/b"}, dirs)
}

func TestWalker_FindManifests_Error(t *testing.T) {
	_, err := fs.NewWalker().FindManifests(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to walk repository")
}
