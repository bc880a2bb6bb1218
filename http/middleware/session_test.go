package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/middleware"
	"github.com/alepharchives/smak/http/session"
	"github.com/stretchr/testify/require"
)

func TestInjectSession(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	actual := middleware.InjectSession(nil, nil)

	// Assert
	actual(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(smak.SessionKey).(session.Session)
		require.False(t, ok)
		require.Zero(t, val)
	})).ServeHTTP(w, r)

	// Arrange
	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	actual = middleware.InjectSession(session.NewStub(), smak.SessionKey)

	// Assert
	actual(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(smak.SessionKey).(session.Session)
		require.True(t, ok)
		require.NotNil(t, val)
	})).ServeHTTP(w, r)
}
