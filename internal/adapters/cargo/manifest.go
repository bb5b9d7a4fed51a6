package cargo

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/stow/internal/core/domain"
	"go.trai.ch/zerr"
)

// ManifestCodec implements ports.ManifestCodec.
type ManifestCodec struct{}

// NewManifestCodec creates a new ManifestCodec.
func NewManifestCodec() *ManifestCodec {
	return &ManifestCodec{}
}

// Read decodes the TOML document at path.
func (c *ManifestCodec) Read(path string) (domain.Table, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from walking a clone we created
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestParseFailed.Error()), "path", path)
	}

	return domain.NewTable(doc), nil
}

// Encode renders doc as TOML. Keys are emitted in sorted order.
func (c *ManifestCodec) Encode(doc domain.Table) (string, error) {
	out, err := toml.Marshal(doc.Native())
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrManifestEncodeFailed.Error())
	}
	return string(out), nil
}
