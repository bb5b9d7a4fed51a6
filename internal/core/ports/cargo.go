// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/stow/internal/core/domain"

// LockfileLoader reads resolved dependency graphs.
//
//go:generate go run go.uber.org/mock/mockgen -source=cargo.go -destination=mocks/mock_cargo.go -package=mocks
type LockfileLoader interface {
	// Load reads and validates the Cargo.lock at path.
	Load(path string) (*domain.Lockfile, error)
}

// ManifestCodec reads and writes Cargo.toml documents.
type ManifestCodec interface {
	// Read decodes the manifest at path.
	Read(path string) (domain.Table, error)

	// Encode renders a document as TOML text.
	Encode(doc domain.Table) (string, error)
}

// ManifestFinder locates package manifests in a directory tree.
type ManifestFinder interface {
	// FindManifests returns the directories below root, relative to root and
	// in lexical walk order, that contain a Cargo.toml. The root itself is ".".
	FindManifests(root string) ([]string, error)
}
