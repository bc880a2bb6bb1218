package smak

// A Key stashes and retrieves values in a context store,
// most often an *http.Request.Context.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by smak.
	IpAddrKey Key = "IpAddrKey"

	// PathKey stashes the path a request should be resolved against,
	// when a collaborator wants to override the URL actually requested.
	PathKey Key = "PathKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// RouteMatchKey stashes the routing.Match produced for a request.
	RouteMatchKey Key = "RouteMatchKey"

	// RouteTableKey stashes the immutable routing.Table shared by all requests.
	RouteTableKey Key = "RouteTableKey"

	// SessionKey stashes the session associated with an HTTP request.
	SessionKey Key = "SessionKey"
)

// Key returns the key so it can be used as a key in a map[string].
func (k Key) Key() string { return string(k) }

// String formats the stringified key with additional contextual information.
func (k Key) String() string {
	return "smak context key: " + string(k)
}
