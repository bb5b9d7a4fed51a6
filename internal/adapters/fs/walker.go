// Package fs provides file system adapters for walking directory trees.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all files below root in lexical order, skipping VCS
// metadata and ignored entries. Paths are yielded as filepath.WalkDir
// reports them, that is prefixed with root. A walk error is yielded once
// and ends the sequence.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if w.ignored(d, ignores) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

// FindManifests returns every directory below root holding a Cargo.toml,
// relative to root, in walk order. The root itself is reported as ".".
func (w *Walker) FindManifests(root string) ([]string, error) {
	var dirs []string
	for path, err := range w.WalkFiles(root, nil) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk repository"), "root", root)
		}
		if filepath.Base(path) != domain.ManifestFileName {
			continue
		}
		rel, err := filepath.Rel(root, filepath.Dir(path))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to walk repository"), "path", path)
		}
		dirs = append(dirs, filepath.ToSlash(rel))
	}
	return dirs, nil
}

// ignored reports whether an entry matches the VCS directories or an ignore pattern.
func (w *Walker) ignored(d fs.DirEntry, ignores []string) bool {
	name := d.Name()

	if d.IsDir() && (name == ".git" || name == ".jj") {
		return true
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}

	return false
}
