// Package git implements repository operations on top of the git CLI and go-git.
package git

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/stow/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.GitClient. Network operations shell out to git,
// local inspection goes through go-git.
type Client struct {
	bin string
}

// NewClient creates a Client invoking the git binary found on PATH.
func NewClient() *Client {
	return &Client{bin: "git"}
}

// IsRepository reports whether dir holds a git working tree.
func (c *Client) IsRepository(dir string) bool {
	_, err := gogit.PlainOpen(dir)
	return err == nil
}

// Head returns the full hash of the commit checked out in dir.
func (c *Client) Head(dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open repository"), "dir", dir)
	}
	ref, err := repo.Head()
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve HEAD"), "dir", dir)
	}
	return ref.Hash().String(), nil
}

// Clone makes a shallow clone of url into dir.
func (c *Client) Clone(ctx context.Context, url, dir string) error {
	return c.run(ctx, "", "clone", "--depth=1", "--", url, dir)
}

// FetchCommit fetches a single commit from origin.
func (c *Client) FetchCommit(ctx context.Context, dir, commit string) error {
	if err := validateCommit(commit); err != nil {
		return err
	}
	return c.run(ctx, dir, "fetch", "origin", commit)
}

// Checkout detaches the working tree in dir at commit.
func (c *Client) Checkout(ctx context.Context, dir, commit string) error {
	if err := validateCommit(commit); err != nil {
		return err
	}
	return c.run(ctx, dir, "checkout", commit)
}

// UpdateSubmodules initializes and updates all submodules recursively.
func (c *Client) UpdateSubmodules(ctx context.Context, dir string) error {
	return c.run(ctx, dir, "submodule", "update", "--init", "--recursive")
}

func (c *Client) run(ctx context.Context, dir string, args ...string) error {
	//nolint:gosec // arguments are fixed subcommands plus validated commits and URLs
	cmd := exec.CommandContext(ctx, c.bin, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = v.Stdout()
		cmd.Stderr = io.MultiWriter(&stderr, v.Stderr())
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	gitErr := zerr.Wrap(domain.ErrSubprocessFailure, "git "+args[0]+" failed")
	gitErr = zerr.With(gitErr, "args", strings.Join(args, " "))
	if dir != "" {
		gitErr = zerr.With(gitErr, "dir", dir)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		gitErr = zerr.With(gitErr, "exit_code", exitErr.ExitCode())
	} else {
		gitErr = zerr.With(gitErr, "cause", err.Error())
	}

	return zerr.With(gitErr, "stderr", strings.TrimSpace(stderr.String()))
}

// validateCommit accepts abbreviated or full hex object ids only.
func validateCommit(commit string) error {
	if plumbing.IsHash(commit) {
		return nil
	}
	if len(commit) >= domain.ShortCommitLen && len(commit) < domain.FullCommitLen &&
		strings.Trim(strings.ToLower(commit), "0123456789abcdef") == "" {
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrInvalidCommit, "refusing to pass commit to git"), "commit", commit)
}
