package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/http/middleware"
	"github.com/alepharchives/smak/routing"
	"github.com/gorilla/handlers"
)

const (
	assetsPath       = "/assets/"
	assetsPublicPath = "client/public/"
	clientDistPath   = "client/dist/"
)

// A Route maps the name of a compiled routing.Route to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
type Route struct {
	Name        string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router dispatches requests by resolving their paths against a [*routing.Table]
// and handing the request to the handler registered under the winning route's name.
type Router struct {
	Env           smak.Environment
	table         *routing.Table
	kr            keyring.Keyringable
	registry      map[string]http.Handler
	prefixes      []prefixHandler
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	catchAll      http.Handler
	notFound      http.Handler
}

type prefixHandler struct {
	prefix  string
	handler http.Handler
}

// New constructs a [*Router] dispatching over table for the given environment.
//
// Requests under the asset paths bypass table resolution
// and serve files from the standard smak app layout.
func New(env smak.Environment, table *routing.Table, kr keyring.Keyringable, logReq middleware.Adapter) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	cacheControl := cacheControlMiddleware()

	assetsServer := handlers.CompressHandler(http.FileServer(http.Dir(assetsPublicPath)))
	clientServer := handlers.CompressHandler(http.FileServer(http.Dir(clientDistPath)))

	r := &Router{
		Env:      env,
		table:    table,
		kr:       kr,
		registry: make(map[string]http.Handler),
		logReq:   logReq,
	}

	// NOTE(dlk): direct reqs for the client to its distribution
	r.prefixes = append(r.prefixes, prefixHandler{
		prefix: "/" + clientDistPath,
		handler: middleware.Chain(
			http.StripPrefix("/"+clientDistPath, clientServer),
			cacheControl,
			logReq,
		),
	})

	// NOTE(dlk): direct reqs for assets to public path
	r.prefixes = append(r.prefixes, prefixHandler{
		prefix: assetsPath,
		handler: middleware.Chain(
			http.StripPrefix(assetsPath, assetsServer),
			cacheControl,
			logReq,
		),
	})

	return r
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.catchAll = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.everyReqStack...,
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) error {
	return r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no route in the table matches the request.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.notFound = middleware.Chain(
		middleware.ReportPanic(r.Env)(handler),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// Every Route must name a route the table compiled;
// an unknown name fails the whole set with [smak.ErrNotExist].
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) error {
	for _, route := range routes {
		if _, ok := r.table.Route(route.Name); !ok {
			return fmt.Errorf("%w: no route named %q", smak.ErrNotExist, route.Name)
		}

		mws := append(r.everyReqStack, middlewares...)
		mws = append(mws, route.Middlewares...)
		r.registry[route.Name] = middleware.Chain(middleware.ReportPanic(r.Env)(route.Handler), mws...)
	}

	return nil
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
//
// Dispatch reuses a [routing.Match] an upstream [middleware.ResolveRoute]
// already stashed in the request context;
// lacking one, ServeHTTP resolves the request path itself and stashes the outcome.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if r.catchAll != nil {
		r.catchAll.ServeHTTP(w, req)
		return
	}

	for _, p := range r.prefixes {
		if strings.HasPrefix(req.URL.Path, p.prefix) {
			p.handler.ServeHTTP(w, req)
			return
		}
	}

	m, ok := middleware.RouteMatch(req.Context(), r.kr.MatchKey())
	if !ok {
		resolve := middleware.ResolveRoute(r.table, r.kr)
		resolve(http.HandlerFunc(r.dispatch)).ServeHTTP(w, req)
		return
	}

	r.serveMatch(w, req, m)
}

// URL reverses the named route into a concrete path using bindings.
func (r *Router) URL(name string, bindings routing.Bindings) (string, error) {
	return r.table.Reverse(name, bindings)
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	m, _ := middleware.RouteMatch(req.Context(), r.kr.MatchKey())
	r.serveMatch(w, req, m)
}

func (r *Router) serveMatch(w http.ResponseWriter, req *http.Request, m routing.Match) {
	if !m.Matched() {
		r.serveNotFound(w, req)
		return
	}

	handler, ok := r.registry[m.Route()]
	if !ok {
		r.serveNotFound(w, req)
		return
	}

	handler.ServeHTTP(w, req)
}

func (r *Router) serveNotFound(w http.ResponseWriter, req *http.Request) {
	if r.notFound != nil {
		r.notFound.ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}

// cacheControlMiddleware helps by adding a "Cache-Control" header to the response.
func cacheControlMiddleware() middleware.Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "max-age=2592000") // 30 days
			handler.ServeHTTP(w, r)
		})
	}
}
