package smak_test

import (
	"context"
	"testing"

	"github.com/alepharchives/smak"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	// Arrange
	k := smak.RequestIDKey

	// Act + Assert
	require.Equal(t, "RequestIDKey", k.Key())
	require.Equal(t, "smak context key: RequestIDKey", k.String())
}

func TestKeyDistinctFromString(t *testing.T) {
	// Arrange: a bare string key must not collide with a Key.
	ctx := context.WithValue(context.Background(), smak.PathKey, "/widgets")

	// Act + Assert
	require.Nil(t, ctx.Value("PathKey"))
	require.Equal(t, "/widgets", ctx.Value(smak.PathKey))
}
