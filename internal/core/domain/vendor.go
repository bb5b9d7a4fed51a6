package domain

import (
	"maps"
	"slices"
)

// VendorEntry is one [source.<name>] table of the generated cargo config.
type VendorEntry struct {
	Directory   string `json:"directory,omitempty"`
	Git         string `json:"git,omitempty"`
	ReplaceWith string `json:"replace-with,omitempty"`
	Rev         string `json:"rev,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Branch      string `json:"branch,omitempty"`
}

// Merge returns e with every non-empty field of o applied on top.
func (e VendorEntry) Merge(o VendorEntry) VendorEntry {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&e.Directory, o.Directory)
	set(&e.Git, o.Git)
	set(&e.ReplaceWith, o.ReplaceWith)
	set(&e.Rev, o.Rev)
	set(&e.Tag, o.Tag)
	set(&e.Branch, o.Branch)
	return e
}

// WithPin records the pin a git dependency was declared with.
func (e VendorEntry) WithPin(p Pin) VendorEntry {
	switch p.Kind {
	case PinRev:
		e.Rev = p.Value
	case PinTag:
		e.Tag = p.Value
	case PinBranch:
		e.Branch = p.Value
	case PinNone:
	}
	return e
}

// VendorConfig is the set of source replacements written to the cargo config,
// keyed by source name.
type VendorConfig map[string]VendorEntry

// NewVendorConfig returns a config holding only the vendored directory source.
func NewVendorConfig(vendorDir string) VendorConfig {
	return VendorConfig{
		VendoredSourceName: {Directory: vendorDir},
	}
}

// Add merges entry into the table under name.
func (c VendorConfig) Add(name string, entry VendorEntry) {
	c[name] = c[name].Merge(entry)
}

// Names returns the source names in sorted order.
func (c VendorConfig) Names() []string {
	return slices.Sorted(maps.Keys(c))
}

// Document returns the config as a TOML document of the form
// {source = {<name> = {...}}}.
func (c VendorConfig) Document() Table {
	sources := make(Table, len(c))
	for name, e := range c {
		entry := Table{}
		for k, v := range map[string]string{
			"directory":    e.Directory,
			"git":          e.Git,
			"replace-with": e.ReplaceWith,
			"rev":          e.Rev,
			"tag":          e.Tag,
			"branch":       e.Branch,
		} {
			if v != "" {
				entry[k] = Scalar{V: v}
			}
		}
		sources[name] = entry
	}
	return Table{"source": sources}
}
