package routing_test

import (
	"testing"

	"github.com/alepharchives/smak/routing"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	table := refTable(t)

	for _, tc := range []struct {
		name     string
		route    string
		bindings routing.Bindings
		expected string
	}{
		{
			"All-Bound", "foo",
			routing.Bindings{"1": "url", "bar": "test", "baz": "100"},
			"/url/test/100/",
		},
		{
			"Defaults-Fill-Gaps", "foo",
			routing.Bindings{"1": "url"},
			"/url/bar/0/",
		},
		{"Literal-Only", "baz", nil, "/static/"},
		{"Root", "root", routing.Bindings{}, "/"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path, err := table.Reverse(tc.route, tc.bindings)

			require.NoError(t, err)
			require.Equal(t, tc.expected, path)
		})
	}
}

func TestReverseRouteNotFound(t *testing.T) {
	table := refTable(t)

	_, err := table.Reverse("nope", nil)
	require.ErrorIs(t, err, routing.ErrRouteNotFound)
}

func TestReverseGroupNotBound(t *testing.T) {
	table := refTable(t)

	// "foo" declares defaults for bar and baz only; group 1 must be bound.
	_, err := table.Reverse("foo", routing.Bindings{"bar": "test"})
	require.ErrorIs(t, err, routing.ErrGroupNotBound)
	require.Contains(t, err.Error(), `"1"`)
}

// TestReverseDoesNotValidateBindings pins the permissive caller contract:
// Reverse substitutes whatever value is bound, even one the group's
// expression would never match.
func TestReverseDoesNotValidateBindings(t *testing.T) {
	table := refTable(t)

	path, err := table.Reverse("foo", routing.Bindings{
		"1":   "anything",
		"bar": "has spaces!",
		"baz": "not-digits",
	})
	require.NoError(t, err)
	require.Equal(t, "/anything/has spaces!/not-digits/", path)

	// The synthesized path does not resolve back.
	require.False(t, table.Resolve(path).Matched())
}

// TestResolveReverseRoundTrip verifies the round-trip law: a resolved
// match's bindings reverse to the very path that produced them.
func TestResolveReverseRoundTrip(t *testing.T) {
	table := refTable(t)

	for _, path := range []string{"/url/test/100/", "/url/abc/7/", "/static/", "/"} {
		m := table.Resolve(path)
		require.True(t, m.Matched(), path)

		got, err := table.Reverse(m.Route(), m.Map())
		require.NoError(t, err)
		require.Equal(t, path, got)
	}
}
