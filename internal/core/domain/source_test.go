package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stow/internal/core/domain"
)

func TestSource_Descriptor(t *testing.T) {
	tests := []struct {
		name   string
		source domain.Source
		want   domain.Descriptor
	}{
		{
			name:   "archive",
			source: domain.Archive{URL: "u", SHA256: "s", Dest: "d"},
			want:   domain.Descriptor{Type: "archive", ArchiveType: "tar-gzip", URL: "u", SHA256: "s", Dest: "d"},
		},
		{
			name:   "git",
			source: domain.GitClone{URL: "u", Commit: "c", Dest: "d"},
			want:   domain.Descriptor{Type: "git", URL: "u", Commit: "c", Dest: "d"},
		},
		{
			name:   "inline",
			source: domain.Inline{Contents: "x", Dest: "d", Filename: "f"},
			want:   domain.Descriptor{Type: "inline", Contents: "x", Dest: "d", DestFilename: "f"},
		},
		{
			name:   "shell",
			source: domain.ShellCopy{Src: "flatpak-cargo/git/foo-abc1234/crates/a", Dest: "cargo/vendor/a"},
			want: domain.Descriptor{
				Type:     "shell",
				Commands: []string{"cp -rf --reflink=auto flatpak-cargo/git/foo-abc1234/crates/a cargo/vendor/a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.source.Descriptor())
		})
	}
}

func TestShellCopy_QuotesPaths(t *testing.T) {
	s := domain.ShellCopy{Src: "git/my repo/.", Dest: "vendor/$x"}
	assert.Equal(t, "cp -rf --reflink=auto 'git/my repo/.' 'vendor/$x'", s.Command())
}

func TestSource_Comparable(t *testing.T) {
	seen := map[domain.Source]struct{}{
		domain.Inline{Contents: "a", Dest: "d", Filename: "f"}: {},
	}

	_, dup := seen[domain.Inline{Contents: "a", Dest: "d", Filename: "f"}]
	_, other := seen[domain.Archive{Dest: "d"}]

	assert.True(t, dup)
	assert.False(t, other)
}
