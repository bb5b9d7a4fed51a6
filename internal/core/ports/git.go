package ports

import "context"

// GitClient performs the git operations needed to materialize a repository
// working tree at a given commit.
//
//go:generate go run go.uber.org/mock/mockgen -source=git.go -destination=mocks/mock_git.go -package=mocks
type GitClient interface {
	// IsRepository reports whether dir holds a git working tree.
	IsRepository(dir string) bool

	// Clone makes a shallow clone of url into dir.
	Clone(ctx context.Context, url, dir string) error

	// Head returns the full hash of the commit checked out in dir.
	Head(dir string) (string, error)

	// FetchCommit fetches a single commit from origin.
	FetchCommit(ctx context.Context, dir, commit string) error

	// Checkout detaches the working tree in dir at commit.
	Checkout(ctx context.Context, dir, commit string) error

	// UpdateSubmodules initializes and updates all submodules recursively.
	UpdateSubmodules(ctx context.Context, dir string) error
}
