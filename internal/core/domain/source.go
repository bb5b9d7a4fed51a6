package domain

import (
	"fmt"

	"mvdan.cc/sh/v3/syntax"
)

// Source types as understood by flatpak-builder.
const (
	SourceTypeArchive = "archive"
	SourceTypeGit     = "git"
	SourceTypeInline  = "inline"
	SourceTypeShell   = "shell"

	// ArchiveTypeTarGzip is the archive type of registry crates.
	ArchiveTypeTarGzip = "tar-gzip"
)

// Source is a single fetch operation of the generated manifest.
// Implementations are comparable values, so equal operations compare equal
// with == and can be used as map keys.
type Source interface {
	// Descriptor returns the serialized form of the operation.
	Descriptor() Descriptor
}

// Descriptor is the wire form of a Source. Field order is the emission order.
type Descriptor struct {
	Type         string   `json:"type" yaml:"type"`
	ArchiveType  string   `json:"archive-type,omitempty" yaml:"archive-type,omitempty"`
	URL          string   `json:"url,omitempty" yaml:"url,omitempty"`
	SHA256       string   `json:"sha256,omitempty" yaml:"sha256,omitempty"`
	Commit       string   `json:"commit,omitempty" yaml:"commit,omitempty"`
	Commands     []string `json:"commands,omitempty" yaml:"commands,omitempty"`
	Contents     string   `json:"contents,omitempty" yaml:"contents,omitempty"`
	Dest         string   `json:"dest,omitempty" yaml:"dest,omitempty"`
	DestFilename string   `json:"dest-filename,omitempty" yaml:"dest-filename,omitempty"`
}

// Archive downloads and unpacks a tarball.
type Archive struct {
	URL    string
	SHA256 string
	Dest   string
}

// Descriptor implements Source.
func (a Archive) Descriptor() Descriptor {
	return Descriptor{
		Type:        SourceTypeArchive,
		ArchiveType: ArchiveTypeTarGzip,
		URL:         a.URL,
		SHA256:      a.SHA256,
		Dest:        a.Dest,
	}
}

// GitClone checks out a repository at a fixed commit.
type GitClone struct {
	URL    string
	Commit string
	Dest   string
}

// Descriptor implements Source.
func (g GitClone) Descriptor() Descriptor {
	return Descriptor{
		Type:   SourceTypeGit,
		URL:    g.URL,
		Commit: g.Commit,
		Dest:   g.Dest,
	}
}

// Inline writes a file with literal contents.
type Inline struct {
	Contents string
	Dest     string
	Filename string
}

// Descriptor implements Source.
func (i Inline) Descriptor() Descriptor {
	return Descriptor{
		Type:         SourceTypeInline,
		Contents:     i.Contents,
		Dest:         i.Dest,
		DestFilename: i.Filename,
	}
}

// ShellCopy copies a directory of a cloned repository into the vendor tree.
type ShellCopy struct {
	Src  string
	Dest string
}

// Descriptor implements Source.
func (s ShellCopy) Descriptor() Descriptor {
	return Descriptor{
		Type:     SourceTypeShell,
		Commands: []string{s.Command()},
	}
}

// Command returns the shell command performing the copy.
func (s ShellCopy) Command() string {
	return fmt.Sprintf("cp -rf --reflink=auto %s %s", shellQuote(s.Src), shellQuote(s.Dest))
}

func shellQuote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return q
}

// Descriptors converts sources into their wire form.
func Descriptors(sources []Source) []Descriptor {
	out := make([]Descriptor, len(sources))
	for i, s := range sources {
		out[i] = s.Descriptor()
	}
	return out
}
