// Package output writes generated flatpak source lists to disk.
package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// StdoutPath selects standard output instead of a file.
const StdoutPath = "-"

// Writer implements ports.SourceWriter.
type Writer struct {
	stdout io.Writer
}

// NewWriter creates a Writer that sends "-" to os.Stdout.
func NewWriter() *Writer {
	return &Writer{stdout: os.Stdout}
}

// NewWriterTo creates a Writer that sends "-" to w.
func NewWriterTo(w io.Writer) *Writer {
	return &Writer{stdout: w}
}

// Write encodes sources in the given format and stores them at path,
// creating parent directories as needed.
func (w *Writer) Write(path string, format domain.OutputFormat, sources []domain.Source) error {
	data, err := Encode(format, sources)
	if err != nil {
		return err
	}

	if path == StdoutPath {
		if _, err := w.stdout.Write(data); err != nil {
			return zerr.Wrap(err, domain.ErrOutputWriteFailed.Error())
		}
		return nil
	}

	path = filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}

	//nolint:gosec // Path is cleaned and provided by the user
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", path)
	}

	return nil
}

// Encode renders sources as a JSON or YAML array of descriptors.
func Encode(format domain.OutputFormat, sources []domain.Source) ([]byte, error) {
	descriptors := domain.Descriptors(sources)

	switch format {
	case domain.FormatJSON, "":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		if err := enc.Encode(descriptors); err != nil {
			return nil, zerr.Wrap(err, "failed to encode sources as json")
		}
		return buf.Bytes(), nil
	case domain.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(descriptors); err != nil {
			return nil, zerr.Wrap(err, "failed to encode sources as yaml")
		}
		if err := enc.Close(); err != nil {
			return nil, zerr.Wrap(err, "failed to encode sources as yaml")
		}
		return buf.Bytes(), nil
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidOutputFormat, "cannot encode sources"), "format", string(format))
	}
}
