package routing

import "regexp"

// A Definition describes one named route before compilation.
type Definition struct {
	// Name uniquely identifies the route in a Table.
	Name string

	// Doc describes the route for humans; informational only.
	Doc string

	// Pattern is the ordered sequence of literal and capture group Elements.
	Pattern []Element

	// Capture lists the group names a Match reports, in report order.
	// Every name must reference a group present in Pattern.
	Capture []GroupName
}

// A Route pairs a Definition with its compiled, anchored matcher
// and the defaults its groups declared.
type Route struct {
	def      Definition
	matcher  *regexp.Regexp
	groups   []GroupName
	indexes  []int
	defaults map[GroupName]string
}

// Name returns the name the Route registers under.
func (rt Route) Name() string { return rt.def.Name }

// Doc returns the route's documentation string.
func (rt Route) Doc() string { return rt.def.Doc }

// Definition returns the Definition the Route was compiled from.
func (rt Route) Definition() Definition { return rt.def }

// Source returns the composed textual form of the route's matcher,
// anchors included.
func (rt Route) Source() string { return rt.matcher.String() }
