package routing

// A Binding pairs a capture group with the value bound to it.
type Binding struct {
	Group GroupName
	Value string
}

// Bindings maps group names to values for reverse routing.
// Reverse reads it; nothing in this package writes to it.
type Bindings map[GroupName]string

// A Match reports the outcome of resolving a path against a Table.
// The zero Match means no route matched.
type Match struct {
	route    string
	bindings []Binding
	matched  bool
}

// Matched reports whether any route matched.
func (m Match) Matched() bool { return m.matched }

// Route returns the matched route's name.
func (m Match) Route() string { return m.route }

// Bindings returns the bound groups in the matched route's capture order.
func (m Match) Bindings() []Binding { return m.bindings }

// Value returns the value bound to the named group.
func (m Match) Value(name any) (string, bool) {
	want := CanonicalName(name)
	for _, b := range m.bindings {
		if b.Group == want {
			return b.Value, true
		}
	}

	return "", false
}

// Map collects the match's bindings into a Bindings set,
// ready to hand to [Table.Reverse].
func (m Match) Map() Bindings {
	bs := make(Bindings, len(m.bindings))
	for _, b := range m.bindings {
		bs[b.Group] = b.Value
	}

	return bs
}
