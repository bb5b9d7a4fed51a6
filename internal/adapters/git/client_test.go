package git_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/adapters/git"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func gitCmd(t *testing.T, dir string, args ...string) string {
	t.Helper()
	base := []string{
		"-c", "user.name=stow", "-c", "user.email=stow@example.com",
		"-c", "commit.gpgsign=false", "-c", "init.defaultBranch=main",
	}
	cmd := exec.Command("git", append(base, args...)...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	return strings.TrimSpace(string(out))
}

// newUpstream creates a repository with two commits and returns its path
// and both commit hashes, oldest first.
func newUpstream(t *testing.T) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	gitCmd(t, dir, "init")
	gitCmd(t, dir, "config", "uploadpack.allowAnySHA1InWant", "true")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"a\"\n"), domain.FilePerm))
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "first")
	first := gitCmd(t, dir, "rev-parse", "HEAD")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("second"), domain.FilePerm))
	gitCmd(t, dir, "add", ".")
	gitCmd(t, dir, "commit", "-m", "second")
	second := gitCmd(t, dir, "rev-parse", "HEAD")

	return dir, first, second
}

func TestClient_CloneCheckoutHead(t *testing.T) {
	requireGit(t)
	upstream, first, second := newUpstream(t)
	client := git.NewClient()
	ctx := context.Background()

	dest := filepath.Join(t.TempDir(), "clone")
	assert.False(t, client.IsRepository(dest))

	require.NoError(t, client.Clone(ctx, "file://"+upstream, dest))
	assert.True(t, client.IsRepository(dest))

	head, err := client.Head(dest)
	require.NoError(t, err)
	assert.Equal(t, second, head)

	require.NoError(t, client.FetchCommit(ctx, dest, first))
	require.NoError(t, client.Checkout(ctx, dest, first))
	require.NoError(t, client.UpdateSubmodules(ctx, dest))

	head, err = client.Head(dest)
	require.NoError(t, err)
	assert.Equal(t, first, head)
	assert.NoFileExists(t, filepath.Join(dest, "README"))
}

func TestClient_SubprocessFailure(t *testing.T) {
	requireGit(t)
	client := git.NewClient()

	err := client.Clone(context.Background(), "file://"+filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "x"))
	require.ErrorIs(t, err, domain.ErrSubprocessFailure)
	assert.Contains(t, err.Error(), "git clone failed")
}

func TestClient_InvalidCommit(t *testing.T) {
	client := git.NewClient()
	dir := t.TempDir()

	for _, commit := range []string{"--upload-pack=evil", "main", "abc", "zzzzzzzz"} {
		err := client.Checkout(context.Background(), dir, commit)
		require.ErrorIs(t, err, domain.ErrInvalidCommit, commit)
		err = client.FetchCommit(context.Background(), dir, commit)
		require.ErrorIs(t, err, domain.ErrInvalidCommit, commit)
	}
}

func TestClient_Head_NotARepository(t *testing.T) {
	_, err := git.NewClient().Head(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open repository")
}

type recordingVertex struct {
	stdout, stderr bytes.Buffer
}

func (v *recordingVertex) Stdout() io.Writer { return &v.stdout }
func (v *recordingVertex) Stderr() io.Writer { return &v.stderr }
func (v *recordingVertex) Log(_ domain.LogLevel, _ string) {}
func (v *recordingVertex) Complete(_ error) {}
func (v *recordingVertex) Cached() {}

func TestClient_StreamsToVertex(t *testing.T) {
	requireGit(t)
	client := git.NewClient()
	v := &recordingVertex{}
	ctx := ports.ContextWithVertex(context.Background(), v)

	err := client.Clone(ctx, "file://"+filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "x"))
	require.Error(t, err)
	assert.NotEmpty(t, v.stderr.String())
}
