package routing

// Resolve matches path against each route in ascending name order and
// returns the first match's name and bindings.
//
// Matching is anchored at both ends, so a route matching only a prefix or
// suffix of path never wins. For each name in the route's Capture order, the
// captured substring binds; a group capturing the empty string takes its
// declared default instead, when one exists. The zero Match returns when the
// table exhausts without a match. Resolution itself never errors: a
// malformed path simply fails to match.
func (t *Table) Resolve(path string) Match {
	for _, name := range t.order {
		rt := t.routes[name]
		sub := rt.matcher.FindStringSubmatch(path)
		if sub == nil {
			continue
		}

		captured := make(map[GroupName]string, len(rt.groups))
		for i, g := range rt.groups {
			if idx := rt.indexes[i]; idx >= 0 && idx < len(sub) {
				captured[g] = sub[idx]
			}
		}

		bindings := make([]Binding, 0, len(rt.def.Capture))
		for _, g := range rt.def.Capture {
			val := captured[g]
			if val == "" {
				if d, ok := rt.defaults[g]; ok {
					val = d
				}
			}

			bindings = append(bindings, Binding{Group: g, Value: val})
		}

		return Match{route: name, bindings: bindings, matched: true}
	}

	return Match{}
}
