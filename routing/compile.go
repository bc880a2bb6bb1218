package routing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alepharchives/smak"
)

// Compile turns def into a Route by concatenating, in pattern order, the
// textual form of each Element - literals verbatim, groups as a named
// capture wrapping the group's inner expression - then anchoring the
// composite at both ends. Unanchored matching is never permitted; a route
// must consume the whole path.
//
// Canonical group names are not always valid capture identifiers (an integer
// token, say), so groups are rendered under positional aliases inside the
// composed expression and reported under their canonical names.
//
// An invalid composite fails here, at registration time, wrapping
// smak.ErrNotValid; resolution never reports pattern errors. A Capture name
// referencing no group in Pattern fails wrapping smak.ErrMissingData.
func Compile(def Definition) (Route, error) {
	var b strings.Builder
	b.WriteString("^")

	var groups []GroupName
	defaults := make(map[GroupName]string)
	for _, el := range def.Pattern {
		if !el.IsGroup() {
			b.WriteString(el.Text())
			continue
		}

		fmt.Fprintf(&b, "(?P<%s>%s)", alias(len(groups)), el.Expr())
		if d, ok := el.Default(); ok {
			defaults[el.Name()] = d
		}

		groups = append(groups, el.Name())
	}

	b.WriteString("$")

	matcher, err := regexp.Compile(b.String())
	if err != nil {
		return Route{}, fmt.Errorf("%w: route %q: %s", smak.ErrNotValid, def.Name, err)
	}

	for _, name := range def.Capture {
		if !containsName(groups, name) {
			return Route{}, fmt.Errorf("%w: route %q captures unknown group %q", smak.ErrMissingData, def.Name, name)
		}
	}

	indexes := make([]int, len(groups))
	for i := range groups {
		indexes[i] = matcher.SubexpIndex(alias(i))
	}

	return Route{
		def:      def,
		matcher:  matcher,
		groups:   groups,
		indexes:  indexes,
		defaults: defaults,
	}, nil
}

// alias renders the capture identifier for the group at pattern position i.
func alias(i int) string { return "g" + strconv.Itoa(i) }

func containsName(groups []GroupName, name GroupName) bool {
	for _, g := range groups {
		if g == name {
			return true
		}
	}

	return false
}
