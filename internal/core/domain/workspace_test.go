package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stow/internal/core/domain"
)

func TestResolveWorkspace_FeatureMerge(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"dependencies": map[string]any{
			"serde": map[string]any{"workspace": true, "features": []any{"b"}},
		},
	})
	ws := domain.NewTable(map[string]any{
		"dependencies": map[string]any{
			"serde": map[string]any{"version": "1.0", "features": []any{"a"}},
		},
	})

	got, err := domain.ResolveWorkspace(pkg, ws)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"dependencies": map[string]any{
			"serde": map[string]any{"version": "1.0", "features": []any{"a", "b"}},
		},
	}, got.Native())
}

func TestResolveWorkspace_ScalarInheritance(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"package": map[string]any{
			"name":    "foo",
			"version": map[string]any{"workspace": true},
			"edition": map[string]any{"workspace": true},
		},
		"dependencies": map[string]any{
			"log":   map[string]any{"workspace": true},
			"regex": map[string]any{"workspace": true, "optional": true},
		},
	})
	ws := domain.NewTable(map[string]any{
		"package": map[string]any{"version": "0.3.1", "edition": "2021"},
		"dependencies": map[string]any{
			"log":   "0.4",
			"regex": "1.10",
		},
	})

	got, err := domain.ResolveWorkspace(pkg, ws)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"package": map[string]any{"name": "foo", "version": "0.3.1", "edition": "2021"},
		"dependencies": map[string]any{
			"log":   "0.4",
			"regex": map[string]any{"version": "1.10", "optional": true},
		},
	}, got.Native())
}

func TestResolveWorkspace_DevAndBuildDependencies(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"dev-dependencies":   map[string]any{"tokio": map[string]any{"workspace": true}},
		"build-dependencies": map[string]any{"cc": map[string]any{"workspace": true}},
	})
	ws := domain.NewTable(map[string]any{
		"dependencies": map[string]any{
			"tokio": map[string]any{"version": "1", "features": []any{"full"}},
			"cc":    "1.0",
		},
		"dev-dependencies": map[string]any{"tokio": "0.1"},
	})

	got, err := domain.ResolveWorkspace(pkg, ws)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"dev-dependencies":   map[string]any{"tokio": map[string]any{"version": "1", "features": []any{"full"}}},
		"build-dependencies": map[string]any{"cc": "1.0"},
	}, got.Native())
}

func TestResolveWorkspace_Target(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"target": map[string]any{
			"cfg(unix)": map[string]any{
				"dependencies": map[string]any{"libc": map[string]any{"workspace": true}},
			},
		},
	})
	ws := domain.NewTable(map[string]any{
		"dependencies": map[string]any{"libc": "0.2"},
	})

	got, err := domain.ResolveWorkspace(pkg, ws)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"target": map[string]any{
			"cfg(unix)": map[string]any{
				"dependencies": map[string]any{"libc": "0.2"},
			},
		},
	}, got.Native())
}

func TestResolveWorkspace_PassThrough(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"package":  map[string]any{"name": "foo", "metadata": map[string]any{"docs": map[string]any{"all": true}}},
		"features": map[string]any{"default": []any{"std"}},
		"lib":      map[string]any{"path": "src/lib.rs"},
	})

	got, err := domain.ResolveWorkspace(pkg, nil)
	require.NoError(t, err)
	assert.Equal(t, pkg.Native(), got.Native())
}

func TestResolveWorkspace_DoesNotMutateInputs(t *testing.T) {
	pkg := domain.NewTable(map[string]any{
		"dependencies": map[string]any{
			"serde": map[string]any{"workspace": true, "features": []any{"b"}},
		},
	})
	ws := domain.NewTable(map[string]any{
		"dependencies": map[string]any{
			"serde": map[string]any{"version": "1.0", "features": []any{"a"}},
		},
	})
	pkgBefore := pkg.Native()
	wsBefore := ws.Native()

	_, err := domain.ResolveWorkspace(pkg, ws)
	require.NoError(t, err)

	assert.Equal(t, pkgBefore, pkg.Native())
	assert.Equal(t, wsBefore, ws.Native())
}

func TestResolveWorkspace_Unresolved(t *testing.T) {
	tests := []struct {
		name string
		pkg  map[string]any
		ws   map[string]any
	}{
		{
			name: "missing dependency",
			pkg:  map[string]any{"dependencies": map[string]any{"serde": map[string]any{"workspace": true}}},
			ws:   map[string]any{"dependencies": map[string]any{"log": "0.4"}},
		},
		{
			name: "no workspace",
			pkg:  map[string]any{"package": map[string]any{"version": map[string]any{"workspace": true}}},
		},
		{
			name: "dev dependency without workspace dependencies",
			pkg:  map[string]any{"dev-dependencies": map[string]any{"serde": map[string]any{"workspace": true}}},
			ws:   map[string]any{"members": []any{"a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ws domain.Table
			if tt.ws != nil {
				ws = domain.NewTable(tt.ws)
			}
			_, err := domain.ResolveWorkspace(domain.NewTable(tt.pkg), ws)
			require.ErrorIs(t, err, domain.ErrUnresolvedWorkspaceKey)
		})
	}
}
