package middleware

import (
	"context"
	"net/http"

	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/routing"
)

// ResolveRoute resolves each request against the table and stashes the
// outcome in the request context for downstream consumers,
// a dispatcher picking a handler by route name, say.
//
// The path under resolution is whatever a collaborator already stored under
// the keyring's PathKey, defaulting to the URL path actually requested. The
// table stores under RouteTableKey and the routing.Match, matched or not,
// under MatchKey.
//
// If table or kr is nil, NoopAdapter returns and this middleware does nothing.
func ResolveRoute(table *routing.Table, kr keyring.Keyringable) Adapter {
	if table == nil || kr == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			path, ok := ctx.Value(kr.PathKey()).(string)
			if !ok {
				path = r.URL.Path
				ctx = context.WithValue(ctx, kr.PathKey(), path)
			}

			ctx = context.WithValue(ctx, kr.RouteTableKey(), table)
			ctx = context.WithValue(ctx, kr.MatchKey(), table.Resolve(path))

			h.ServeHTTP(w, r.Clone(ctx))
		})
	}
}

// RouteMatch retrieves the routing.Match stashed under key,
// reporting whether one was stashed at all.
func RouteMatch(ctx context.Context, key keyring.Keyable) (routing.Match, bool) {
	m, ok := ctx.Value(key).(routing.Match)
	return m, ok
}

// RouteTable retrieves the *routing.Table stashed under key.
func RouteTable(ctx context.Context, key keyring.Keyable) (*routing.Table, bool) {
	t, ok := ctx.Value(key).(*routing.Table)
	return t, ok
}

// CurrentPath retrieves the path under resolution stashed under key.
func CurrentPath(ctx context.Context, key keyring.Keyable) (string, bool) {
	p, ok := ctx.Value(key).(string)
	return p, ok
}
