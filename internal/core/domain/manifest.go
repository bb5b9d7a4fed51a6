package domain

// Well-known Cargo.toml keys.
const (
	KeyPackage           = "package"
	KeyWorkspace         = "workspace"
	KeyName              = "name"
	KeyVersion           = "version"
	KeyTarget            = "target"
	KeyDependencies      = "dependencies"
	KeyDevDependencies   = "dev-dependencies"
	KeyBuildDependencies = "build-dependencies"
	KeyLints             = "lints"
	KeyFeatures          = "features"

	// KeyInherit is the marker a manifest item uses to inherit its value
	// from the enclosing workspace.
	KeyInherit = "workspace"
)

// Value is a node of a decoded TOML document: a Table, an Array or a Scalar.
type Value interface {
	clone() Value
	native() any
}

// Table is a TOML table.
type Table map[string]Value

// Array is a TOML array.
type Array []Value

// Scalar is any TOML leaf value (string, integer, float, boolean or datetime).
type Scalar struct {
	V any
}

// NewTable converts a decoded map into a Table.
func NewTable(m map[string]any) Table {
	t := make(Table, len(m))
	for k, v := range m {
		t[k] = NewValue(v)
	}
	return t
}

// NewValue converts a decoded TOML value into its Value form.
func NewValue(v any) Value {
	switch x := v.(type) {
	case Value:
		return x.clone()
	case map[string]any:
		return NewTable(x)
	case []map[string]any:
		a := make(Array, len(x))
		for i, e := range x {
			a[i] = NewTable(e)
		}
		return a
	case []any:
		a := make(Array, len(x))
		for i, e := range x {
			a[i] = NewValue(e)
		}
		return a
	default:
		return Scalar{V: x}
	}
}

// Native converts the table back into plain maps and slices for encoding.
func (t Table) Native() map[string]any {
	m := make(map[string]any, len(t))
	for k, v := range t {
		m[k] = v.native()
	}
	return m
}

// Clone returns a deep copy of the table.
func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	return t.clone().(Table)
}

// Table returns the sub-table stored under key.
func (t Table) Table(key string) (Table, bool) {
	sub, ok := t[key].(Table)
	return sub, ok
}

// String returns the string scalar stored under key, or "".
func (t Table) String(key string) string {
	s, ok := t[key].(Scalar)
	if !ok {
		return ""
	}
	str, _ := s.V.(string)
	return str
}

func (t Table) clone() Value {
	c := make(Table, len(t))
	for k, v := range t {
		c[k] = v.clone()
	}
	return c
}

func (t Table) native() any { return t.Native() }

func (a Array) clone() Value {
	c := make(Array, len(a))
	for i, v := range a {
		c[i] = v.clone()
	}
	return c
}

func (a Array) native() any {
	s := make([]any, len(a))
	for i, v := range a {
		s[i] = v.native()
	}
	return s
}

func (s Scalar) clone() Value { return s }

func (s Scalar) native() any { return s.V }

// IsInheritMarker reports whether v is the `workspace = true` marker value.
func IsInheritMarker(v Value) bool {
	s, ok := v.(Scalar)
	if !ok {
		return false
	}
	b, ok := s.V.(bool)
	return ok && b
}

// GitPackage is a package discovered inside a cloned repository.
type GitPackage struct {
	// Path is the package directory relative to the repository root, "." for the root.
	Path string

	// Manifest is the decoded Cargo.toml of the package.
	Manifest Table

	// Workspace is the [workspace] table of the nearest enclosing workspace
	// manifest. It is shared between packages and must not be mutated.
	Workspace Table
}

// PackageSet maps package names to the packages discovered in one repository commit.
type PackageSet map[string]GitPackage
