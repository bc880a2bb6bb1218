package routing

import (
	"fmt"
	"strconv"
)

// A GroupName identifies a capture group within a pattern.
//
// Applications name groups with strings or integer tokens interchangeably;
// all canonicalize to the same GroupName so internal comparisons stay
// type-uniform.
type GroupName string

// CanonicalName normalizes name into a GroupName.
//
// Strings, integer types, and [fmt.Stringer] implementations are accepted;
// anything else takes its [fmt.Sprint] form.
func CanonicalName(name any) GroupName {
	switch v := name.(type) {
	case GroupName:
		return v
	case string:
		return GroupName(v)
	case int:
		return GroupName(strconv.Itoa(v))
	case int64:
		return GroupName(strconv.FormatInt(v, 10))
	case uint:
		return GroupName(strconv.FormatUint(uint64(v), 10))
	case fmt.Stringer:
		return GroupName(v.String())
	default:
		return GroupName(fmt.Sprint(v))
	}
}

// Names canonicalizes each name, preserving order.
//
// Use it to declare [Definition].Capture.
func Names(names ...any) []GroupName {
	gs := make([]GroupName, len(names))
	for i, n := range names {
		gs[i] = CanonicalName(n)
	}

	return gs
}

// An Element is one piece of a route's pattern,
// either a literal sub-expression or a capture group.
type Element struct {
	text   string
	name   GroupName
	expr   string
	def    string
	group  bool
	hasDef bool
}

// Literal constructs an Element matched verbatim as part of the composed pattern.
func Literal(text string) Element { return Element{text: text} }

// Group constructs a capture group Element.
// The value expr matches is reported under the canonicalized name.
func Group(name any, expr string) Element {
	return Element{name: CanonicalName(name), expr: expr, group: true}
}

// GroupDefault constructs a capture group Element carrying a default value.
// The default stands in for the group whenever it matches zero-length input.
func GroupDefault(name any, expr, def string) Element {
	return Element{name: CanonicalName(name), expr: expr, def: def, group: true, hasDef: true}
}

// IsGroup reports whether the Element is a capture group.
func (el Element) IsGroup() bool { return el.group }

// Name returns the canonicalized group name; zero for a literal.
func (el Element) Name() GroupName { return el.name }

// Expr returns the group's inner expression; zero for a literal.
func (el Element) Expr() string { return el.expr }

// Text returns the literal's text; zero for a group.
func (el Element) Text() string { return el.text }

// Default returns the group's default value and whether one was declared.
func (el Element) Default() (string, bool) { return el.def, el.hasDef }
