package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// inheritScopes are the manifest tables whose entries may carry inheritance
// markers. They are descended into even when the workspace has no
// counterpart so that unsatisfiable markers are reported.
var inheritScopes = map[string]bool{
	KeyPackage:      true,
	KeyDependencies: true,
	KeyLints:        true,
}

// ResolveWorkspace expands every `workspace = true` marker in pkg using the
// values declared in ws, the [workspace] table of the enclosing workspace.
// The input tables are not modified; a resolved deep copy is returned.
func ResolveWorkspace(pkg, ws Table) (Table, error) {
	out := pkg.Clone()
	if out == nil {
		out = Table{}
	}
	if err := resolveTable(out, ws, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func resolveTable(t, ws Table, scope []string) error {
	for key, v := range t {
		item, ok := v.(Table)
		if !ok {
			continue
		}
		itemScope := append(scope[:len(scope):len(scope)], key)

		switch key {
		case KeyTarget:
			// Conditional blocks inherit from the same workspace scope.
			for cond, sub := range item {
				subTable, ok := sub.(Table)
				if !ok {
					continue
				}
				if err := resolveTable(subTable, ws, append(itemScope, cond)); err != nil {
					return err
				}
			}
			continue
		case KeyDevDependencies, KeyBuildDependencies:
			deps, _ := ws.Table(KeyDependencies)
			if err := resolveTable(item, deps, itemScope); err != nil {
				return err
			}
			continue
		}

		wsItem, found := ws[key]
		inherit := IsInheritMarker(item[KeyInherit])

		switch {
		case inherit && !found:
			err := zerr.Wrap(ErrUnresolvedWorkspaceKey, "cannot inherit from workspace")
			return zerr.With(err, "key", strings.Join(itemScope, "."))
		case inherit:
			t[key] = inheritItem(item, wsItem)
		case found:
			wsTable, _ := wsItem.(Table)
			if err := resolveTable(item, wsTable, itemScope); err != nil {
				return err
			}
		case inheritScopes[key]:
			if err := resolveTable(item, nil, itemScope); err != nil {
				return err
			}
		}
	}
	return nil
}

// inheritItem replaces the marker in item with the workspace value.
func inheritItem(item Table, wsItem Value) Value {
	delete(item, KeyInherit)

	w, ok := wsItem.(Table)
	if !ok {
		if len(item) == 0 {
			return wsItem.clone()
		}
		item[KeyVersion] = wsItem.clone()
		return item
	}

	for k, wv := range w {
		own, ownIsArray := item[k].(Array)
		inherited, wsIsArray := wv.(Array)
		if ownIsArray && wsIsArray {
			merged := make(Array, 0, len(inherited)+len(own))
			merged = append(merged, inherited.clone().(Array)...)
			item[k] = append(merged, own...)
			continue
		}
		item[k] = wv.clone()
	}
	return item
}
