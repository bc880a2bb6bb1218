/*
The middleware package defines what a middleware is in smak and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectSession
- LogRequest
- RateLimit
- RequestID
- ResolveRoute

ResolveRoute is the boundary between the routing core and the HTTP layer:
it reads the path under resolution out of the request context store,
resolves it against the immutable route table, and stashes the result
for whatever dispatcher runs downstream.

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(requestIDKey),
		middleware.InjectIPAddress(ipKey),
		middleware.ResolveRoute(table, kr),
		middleware.LogRequest(log, ipKey, kr.MatchKey()),
		middleware.InjectSession(sessionStore, sessionKey),
	}

*/
package middleware
