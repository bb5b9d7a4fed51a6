package ports

import (
	"context"

	"go.trai.ch/stow/internal/core/domain"
)

// RepositoryCache resolves the packages of a git repository at a commit,
// cloning and discovering each repository at most once per commit.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type RepositoryCache interface {
	GetOrFetch(ctx context.Context, repoURL, commit string) (domain.PackageSet, error)
}
