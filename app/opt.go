package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/http/resp"
	"github.com/alepharchives/smak/http/router"
	"github.com/alepharchives/smak/http/session"
	"github.com/alepharchives/smak/logger"
	"github.com/alepharchives/smak/routing"
)

// An AppOption configures an *App either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some AppOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithKeyring is an example of the first.
// An unexported field on the passed in *App is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *App
// is updated only when the closure it returns is called.
type AppOption func(a *App) (OptFollowup, error)
type OptFollowup func() error

// setupLog emits configuration events while an *App is under construction.
var setupLog logger.Logger

// WithContext exposes the provided context.Context to the smak app.
func WithContext(ctx context.Context) AppOption {
	return func(a *App) (OptFollowup, error) {
		a.ctx = ctx
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using context %T", ctx), nil)
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is Development.
func WithEnv(envVar string) AppOption {
	e := smak.Environment(envVar)
	err := e.Valid()
	if err == nil {
		return func(a *App) (OptFollowup, error) {
			a.env = e
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using env %s", e), nil)
			}

			return nil, nil
		}
	}

	return func(a *App) (OptFollowup, error) {
		a.env = smak.EnvVarOrEnv(environmentEnvVar, smak.Development)
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using env %s", a.env), nil)
		}

		return nil, nil
	}
}

// WithKeyring exposes the provided keyring.Keyringable to the smak app.
func WithKeyring(k keyring.Keyringable) AppOption {
	return func(a *App) (OptFollowup, error) {
		a.kr = k
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using keyring %T", k), nil)
		}

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the smak app.
func WithLogger(l logger.Logger) AppOption {
	return func(a *App) (OptFollowup, error) {
		a.l = l
		if setupLog == nil {
			setupLog = l
		}

		setupLog.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithResponder constructs a followup option that, when called,
// exposes the *resp.Responder to the smak app.
func WithResponder(r *resp.Responder) AppOption {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			a.Responder = r
			if setupLog != nil {
				setupLog.Debug("using responder", nil)
			}

			return nil
		}, nil
	}
}

// WithRouteTable compiles the definitions into the app's routing table.
//
// TableOpts such as routing.Strict pass through to routing.NewTable.
func WithRouteTable(defs []routing.Definition, opts ...routing.TableOpt) AppOption {
	return func(a *App) (OptFollowup, error) {
		table, err := routing.NewTable(defs, opts...)
		if err != nil {
			return nil, err
		}

		a.table = table
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using route table with %d routes", table.Len()), nil)
		}

		return nil, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the smak app.
func WithRouter(r *router.Router) AppOption {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			if a.srv == nil {
				a.srv = defaultServer(a.ctx)
			}

			a.Router = r
			a.srv.Handler = r

			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using router %T", r), nil)
				setupLog.Debug(fmt.Sprintf("using server %T", a.srv), nil)
			}

			return nil
		}, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the smak app.
func WithSessionStore(store session.SessionStorer) AppOption {
	return func(a *App) (OptFollowup, error) {
		a.sessions = store
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using session store %T", store), nil)
		}

		return nil, nil
	}
}

// WithServer exposes the *http.Server to the smak app.
func WithServer(s *http.Server) AppOption {
	return func(a *App) (OptFollowup, error) {
		old := a.srv
		a.srv = s

		if old != nil {
			a.srv.Handler = old.Handler
		}

		return nil, nil
	}
}
