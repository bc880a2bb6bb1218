package keyring

import (
	"sort"
)

type Keyable interface {
	// The key as in a key-value pair
	Key() string

	// A stringified version of the key, for logging
	String() string
}

type ByKeyable []Keyable

var _ sort.Interface = ByKeyable([]Keyable{})

func (k ByKeyable) Len() int           { return len(k) }
func (k ByKeyable) Swap(i, j int)      { k[i], k[j] = k[j], k[i] }
func (k ByKeyable) Less(i, j int) bool { return k[i].String() < k[j].String() }

type Key string

// Key returns key so it can be used as a key a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "http context key: " + string(k)
}

var _ Keyable = Key("")

// Something Keyringable because it stores arbitrary keys, accessible by a string name,
// and makes it convenient to grab the keys the routing boundary relies upon:
// where the route table, the path under resolution, and the match result stash.
type Keyringable interface {
	Key(name string) Keyable
	MatchKey() Keyable
	PathKey() Keyable
	RouteTableKey() Keyable
	keys() map[string]Keyable
}

// Keyring stores Keyables and cannot be mutated outside of a constructor.
type Keyring struct {
	table    string
	path     string
	match    string
	internal map[string]Keyable
}

// NewKeyring constructs a Keyring from the given Keyables.
// NewKeyring requires the keys retrieved through RouteTableKey(), PathKey()
// and MatchKey(), respectively.
// NewKeyring accepts an arbitrary number of other Keyables, accessible through the Key method.
func NewKeyring(routeTableKey, pathKey, matchKey Keyable, additional ...Keyable) Keyringable {
	if routeTableKey == nil || pathKey == nil || matchKey == nil {
		return nil
	}
	kr := &Keyring{
		table: routeTableKey.Key(),
		path:  pathKey.Key(),
		match: matchKey.Key(),
		internal: map[string]Keyable{
			routeTableKey.Key(): routeTableKey,
			pathKey.Key():       pathKey,
			matchKey.Key():      matchKey,
		},
	}

	for _, k := range additional {
		if k == nil {
			continue
		}
		kr.internal[k.Key()] = k
	}

	return kr
}

// Key returns the key by name (i.e., Keyable.Key()) or nil.
func (kr *Keyring) Key(name string) Keyable {
	return kr.internal[name]
}

// MatchKey returns the key set in the matchKey parameter of NewKeyring or nil.
func (kr *Keyring) MatchKey() Keyable {
	return kr.internal[kr.match]
}

// PathKey returns the key set in the pathKey parameter of NewKeyring or nil.
func (kr *Keyring) PathKey() Keyable {
	return kr.internal[kr.path]
}

// RouteTableKey returns the key set in the routeTableKey parameter of NewKeyring or nil.
func (kr *Keyring) RouteTableKey() Keyable {
	return kr.internal[kr.table]
}

// keys exposes the internal map of Keyables.
func (kr *Keyring) keys() map[string]Keyable { return kr.internal }

// WithKeyring constructs a new Keyringable from the parent
// and adds additional Keyables to the new Keyringable.
func WithKeyring(parent Keyringable, additional ...Keyable) Keyringable {
	tk := parent.RouteTableKey()
	pk := parent.PathKey()
	mk := parent.MatchKey()
	kr := &Keyring{
		table:    tk.Key(),
		path:     pk.Key(),
		match:    mk.Key(),
		internal: make(map[string]Keyable),
	}

	for k, v := range parent.keys() {
		kr.internal[k] = v
	}

	for _, k := range additional {
		if k == nil {
			continue
		}

		kr.internal[k.Key()] = k
	}

	return kr
}
