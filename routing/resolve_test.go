package routing_test

import (
	"testing"

	"github.com/alepharchives/smak/routing"
	"github.com/stretchr/testify/require"
)

// refTable builds the routes exercised throughout these tests:
// "foo" captures a fixed first segment plus two defaulted groups,
// "baz" is purely literal, "root" matches only "/".
func refTable(t *testing.T) *routing.Table {
	t.Helper()

	table, err := routing.NewTable([]routing.Definition{
		{
			Name: "foo",
			Doc:  "three segment demo route",
			Pattern: []routing.Element{
				routing.Literal("/"),
				routing.Group(1, "url"),
				routing.Literal("/"),
				routing.GroupDefault("bar", `\w+`, "bar"),
				routing.Literal("/"),
				routing.GroupDefault("baz", `\d+`, "0"),
				routing.Literal("/"),
			},
			Capture: routing.Names(1, "bar", "baz"),
		},
		{Name: "baz", Doc: "static prefix", Pattern: []routing.Element{routing.Literal("/static/")}},
		{Name: "root", Doc: "index", Pattern: []routing.Element{routing.Literal("/")}},
	})
	require.NoError(t, err)

	return table
}

func TestResolve(t *testing.T) {
	table := refTable(t)

	for _, tc := range []struct {
		name     string
		path     string
		route    string
		bindings []routing.Binding
	}{
		{
			"Full-Capture", "/url/test/100/", "foo",
			[]routing.Binding{
				{Group: "1", Value: "url"},
				{Group: "bar", Value: "test"},
				{Group: "baz", Value: "100"},
			},
		},
		{"Root", "/", "root", []routing.Binding{}},
		{"Static", "/static/", "baz", []routing.Binding{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := table.Resolve(tc.path)

			require.True(t, m.Matched())
			require.Equal(t, tc.route, m.Route())
			require.Equal(t, tc.bindings, m.Bindings())
		})
	}
}

func TestResolveNoMatch(t *testing.T) {
	table := refTable(t)

	for _, tc := range []struct {
		name string
		path string
	}{
		{"Unknown", "/hello"},
		{"Missing-Trailing-Slash", "/url/test/100"},
		{"Prefix-Only", "/static/extra"},
		{"Suffix-Only", "extra/static/"},
		{"Empty", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := table.Resolve(tc.path)

			require.False(t, m.Matched())
			require.Zero(t, m.Route())
			require.Nil(t, m.Bindings())
		})
	}
}

func TestResolveDefaultSubstitution(t *testing.T) {
	// Arrange
	table, err := routing.NewTable([]routing.Definition{{
		Name: "report",
		Pattern: []routing.Element{
			routing.Literal("/reports/"),
			routing.GroupDefault("format", `\w*`, "html"),
		},
		Capture: routing.Names("format"),
	}})
	require.NoError(t, err)

	// Act
	m := table.Resolve("/reports/")

	// Assert: the empty capture yields the default, not the empty string.
	require.True(t, m.Matched())
	val, ok := m.Value("format")
	require.True(t, ok)
	require.Equal(t, "html", val)

	// Act + Assert: a non-empty capture wins over the default.
	m = table.Resolve("/reports/csv")
	val, ok = m.Value("format")
	require.True(t, ok)
	require.Equal(t, "csv", val)
}

func TestResolveTieBreak(t *testing.T) {
	// Arrange: both routes match every path the other matches.
	table, err := routing.NewTable([]routing.Definition{
		{Name: "bravo", Pattern: []routing.Element{routing.Literal("/same/")}},
		{Name: "alpha", Pattern: []routing.Element{routing.Literal("/same/")}},
	})
	require.NoError(t, err)

	// Act
	m := table.Resolve("/same/")

	// Assert: the lexicographically smaller name wins.
	require.Equal(t, "alpha", m.Route())
}

func TestResolveCaptureWithoutDefault(t *testing.T) {
	// Arrange
	table, err := routing.NewTable([]routing.Definition{{
		Name: "tag",
		Pattern: []routing.Element{
			routing.Literal("/tags/"),
			routing.Group("name", `\w*`),
		},
		Capture: routing.Names("name"),
	}})
	require.NoError(t, err)

	// Act
	m := table.Resolve("/tags/")

	// Assert: no default declared, so the empty capture stays empty.
	val, ok := m.Value("name")
	require.True(t, ok)
	require.Zero(t, val)
}

func TestMatchMap(t *testing.T) {
	table := refTable(t)

	m := table.Resolve("/url/test/100/")
	require.Equal(t, routing.Bindings{"1": "url", "bar": "test", "baz": "100"}, m.Map())
}
