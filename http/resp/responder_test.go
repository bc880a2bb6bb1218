package resp_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alepharchives/smak/http/resp"
	"github.com/alepharchives/smak/logger"
	"github.com/stretchr/testify/require"
)

func quietResponder(opts ...resp.ResponderOptFn) *resp.Responder {
	quiet := logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))
	return resp.NewResponder(append([]resp.ResponderOptFn{resp.WithLogger(quiet)}, opts...)...)
}

func TestJson(t *testing.T) {
	// Arrange
	d := quietResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	err := d.Json(w, r, resp.Data(map[string]any{"hello": "world"}))

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))

	var payload struct {
		Data map[string]any `json:"data"`
	}
	require.Nil(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Equal(t, map[string]any{"hello": "world"}, payload.Data)
}

func TestJsonCodePrecedence(t *testing.T) {
	// Arrange
	d := quietResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act: the per-call option wins over the zero-value fallback.
	err := d.Json(w, r, resp.Code(http.StatusCreated))

	// Assert
	require.Nil(t, err)
	require.Equal(t, http.StatusCreated, w.Code)
}

func TestJsonContentTypePrecedence(t *testing.T) {
	// Arrange: an already set header wins over the Responder default.
	d := quietResponder(resp.WithContentType("application/vnd.api+json"))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	w.Header().Set("Content-Type", "text/plain")

	// Act
	err := d.Json(w, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "text/plain", w.Header().Get("Content-Type"))

	// Arrange: otherwise the configured default applies.
	w = httptest.NewRecorder()

	// Act
	err = d.Json(w, r)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "application/vnd.api+json", w.Header().Get("Content-Type"))
}

func TestRedirect(t *testing.T) {
	for _, tc := range []struct {
		name     string
		opts     []resp.Fn
		code     int
		location string
	}{
		{"Default-To-Root", nil, http.StatusFound, "https://example.com/"},
		{"Url", []resp.Fn{resp.Url("https://example.com/next")}, http.StatusFound, "https://example.com/next"},
		{
			"Url-With-Param",
			[]resp.Fn{resp.Url("https://example.com/next"), resp.Param("page", "2")},
			http.StatusFound,
			"https://example.com/next?page=2",
		},
		{"Keeps-3xx", []resp.Fn{resp.Code(http.StatusMovedPermanently)}, http.StatusMovedPermanently, "https://example.com/"},
		{"Rewrites-4xx", []resp.Fn{resp.Code(http.StatusForbidden)}, http.StatusSeeOther, "https://example.com/"},
		{"Rewrites-5xx", []resp.Fn{resp.Code(http.StatusBadGateway)}, http.StatusTemporaryRedirect, "https://example.com/"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := quietResponder(resp.WithRootUrl("https://example.com/"))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "https://example.com/prev", nil)

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestErr(t *testing.T) {
	// Arrange
	d := quietResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	d.Err(w, r, errors.New("exceptional"))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "exceptional")
}

func TestErrWithDoneRequest(t *testing.T) {
	// Arrange: the request context is already done before responding.
	d := quietResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	ctx, cancel := context.WithCancel(r.Context())
	cancel()
	r = r.WithContext(ctx)

	// Act
	d.Err(w, r, errors.New("exceptional"))

	// Assert
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "exceptional")
}

func TestUrlInvalid(t *testing.T) {
	d := quietResponder()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	err := d.Redirect(w, r, resp.Url("://not-a-url"))
	require.ErrorIs(t, err, resp.ErrInvalid)
}
