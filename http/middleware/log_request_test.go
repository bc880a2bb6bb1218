package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/middleware"
	"github.com/alepharchives/smak/logger"
	"github.com/stretchr/testify/require"
)

type capturingLogger struct {
	logger.Logger
	msgs []string
}

func (cl *capturingLogger) Info(msg string, _ *logger.LogContext) { cl.msgs = append(cl.msgs, msg) }

func TestLogRequest(t *testing.T) {
	// Arrange
	cl := new(capturingLogger)
	kr := testKeyring()
	table := testTable(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com/widgets/42?password=hunter2", nil)

	handler := middleware.Chain(
		noopHandler(),
		middleware.ResolveRoute(table, kr),
		middleware.LogRequest(cl, smak.IpAddrKey, kr.MatchKey()),
	)

	// Act
	handler.ServeHTTP(w, r)

	// Assert
	require.Len(t, cl.msgs, 1)
	require.Contains(t, cl.msgs[0], http.MethodGet)
	require.Contains(t, cl.msgs[0], "/widgets/42")
	require.Contains(t, cl.msgs[0], "route=widget")
	require.Contains(t, cl.msgs[0], "password=xxxxxxx")
	require.NotContains(t, cl.msgs[0], "hunter2")
}

func TestLogRequestNoop(t *testing.T) {
	require.NotNil(t, middleware.LogRequest(nil, nil, nil))
}
