package routing

import "errors"

var (
	ErrGroupNotBound = errors.New("group not bound")
	ErrRouteNotFound = errors.New("route not found")
)
