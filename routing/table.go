package routing

import (
	"fmt"
	"sort"

	"github.com/alepharchives/smak"
)

// A Table is an ordered, immutable collection of compiled routes keyed by
// unique name. Construct it fully before sharing it; thereafter any number
// of goroutines may Resolve and Reverse against it without locking.
type Table struct {
	routes map[string]Route
	order  []string
}

// A TableOpt configures constructing a new Table.
type TableOpt func(*tableConfig)

type tableConfig struct {
	strict bool
}

// Strict turns a repeated route name into a construction error
// instead of the default last-registration-wins overwrite.
func Strict() TableOpt {
	return func(cfg *tableConfig) { cfg.strict = true }
}

// NewTable compiles each Definition and collects the results keyed by name.
//
// A repeated name overwrites the earlier registration, mirroring map-insert
// semantics, unless Strict is given. Routes iterate in ascending
// lexicographic name order thereafter; that order decides ties when more
// than one route matches a path.
func NewTable(defs []Definition, opts ...TableOpt) (*Table, error) {
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Table{routes: make(map[string]Route, len(defs))}
	for _, def := range defs {
		if _, ok := t.routes[def.Name]; ok && cfg.strict {
			return nil, fmt.Errorf("%w: duplicate route %q", smak.ErrNotValid, def.Name)
		}

		rt, err := Compile(def)
		if err != nil {
			return nil, err
		}

		t.routes[def.Name] = rt
	}

	t.order = make([]string, 0, len(t.routes))
	for name := range t.routes {
		t.order = append(t.order, name)
	}
	sort.Strings(t.order)

	return t, nil
}

// Len returns the number of routes in the Table.
func (t *Table) Len() int { return len(t.order) }

// Names returns the route names in resolution order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Route returns the compiled route registered under name.
func (t *Table) Route(name string) (Route, bool) {
	rt, ok := t.routes[name]
	return rt, ok
}
