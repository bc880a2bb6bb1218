package middleware

import (
	"net/http"
	"strings"

	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/logger"
)

// LogRequest logs the request's method, requested URL, and originating IP
// address using the enclosed implementation of logger.Logger. When a
// ResolveRoute middleware already ran and matchKey is non-nil, the matched
// route's name is included too.
//
// LogRequest scrubs the values for the following keys:
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger, ipKey, matchKey keyring.Keyable) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			if val := q.Get("password"); val != "" {
				q.Set("password", "xxxxxxx")
			}

			query := q.Encode()
			if query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ipKey != nil {
				if val, ok := r.Context().Value(ipKey).(string); ok {
					strs = append([]string{val}, strs...)
				}
			}

			if matchKey != nil {
				if m, ok := RouteMatch(r.Context(), matchKey); ok && m.Matched() {
					strs = append(strs, "route="+m.Route())
				}
			}

			ls.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
