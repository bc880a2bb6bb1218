package routing

import (
	"fmt"
	"strings"
)

// Reverse reconstructs the concrete path for the named route by walking its
// original, uncompiled pattern left to right: a literal contributes its text
// verbatim and a group contributes bindings[name], else the default the
// group declared.
//
// An unknown name fails wrapping ErrRouteNotFound. A group with neither a
// binding nor a default fails wrapping ErrGroupNotBound, naming the group.
//
// Reverse does not validate that a supplied binding satisfies its group's
// expression; that contract belongs to the caller. A mismatched value
// synthesizes a path Resolve would not itself match.
func (t *Table) Reverse(name string, bindings Bindings) (string, error) {
	rt, ok := t.routes[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrRouteNotFound, name)
	}

	var b strings.Builder
	for _, el := range rt.def.Pattern {
		if !el.IsGroup() {
			b.WriteString(el.Text())
			continue
		}

		if val, ok := bindings[el.Name()]; ok {
			b.WriteString(val)
			continue
		}

		if d, ok := el.Default(); ok {
			b.WriteString(d)
			continue
		}

		return "", fmt.Errorf("%w: route %q requires %q", ErrGroupNotBound, name, el.Name())
	}

	return b.String(), nil
}
