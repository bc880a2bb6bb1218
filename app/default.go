package app

import (
	"context"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/http/middleware"
	"github.com/alepharchives/smak/http/resp"
	"github.com/alepharchives/smak/http/router"
	"github.com/alepharchives/smak/http/session"
	"github.com/alepharchives/smak/logger"

	// TODO(dlk): configurable env files
	_ "github.com/joho/godotenv/autoload"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// App metadata
	AppTitleEnvVar = "APP_TITLE"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultOpts returns the AppOptions New applies before any user supplied ones.
func defaultOpts() []AppOption {
	return []AppOption{
		WithEnv(os.Getenv(environmentEnvVar)),
		defaultLoggerOpt(),
		defaultKeyringOpt(),
		defaultBaseURLOpt(),
		defaultRouteTableOpt(),
		defaultSessionStoreOpt(),
		defaultResponderOpt(),
		defaultRouterOpt(),
	}
}

// defaultLoggerOpt constructs the logger.Logger used throughout the app.
//
// SENTRY_DSN, when present, decorates it; cf. logger.New.
func defaultLoggerOpt() AppOption {
	return func(a *App) (OptFollowup, error) {
		l := logger.New(
			logger.WithEnv(a.env.String()),
			logger.WithLevel(logger.NewLogLevel(os.Getenv(logLevelEnvVar))),
		)

		return WithLogger(l)(a)
	}
}

// defaultKeyringOpt constructs a keyring holding every context key smak itself stashes.
func defaultKeyringOpt() AppOption {
	kr := keyring.NewKeyring(
		smak.RouteTableKey,
		smak.PathKey,
		smak.RouteMatchKey,
		smak.IpAddrKey,
		smak.RequestIDKey,
		smak.SessionKey,
	)

	return WithKeyring(kr)
}

func defaultBaseURLOpt() AppOption {
	return func(a *App) (OptFollowup, error) {
		a.url = smak.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)
		return nil, nil
	}
}

// defaultRouteTableOpt compiles an empty table so an App
// constructed without WithRouteTable still dispatches,
// if only ever to the not found handler.
func defaultRouteTableOpt() AppOption {
	return WithRouteTable(nil)
}

// defaultSessionStoreOpt constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStoreOpt relies on three env vars:
//   - APP_TITLE
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//
// Both KEY env vars must be valid hex encoded values; cf. [encoding/hex].
func defaultSessionStoreOpt() AppOption {
	return func(a *App) (OptFollowup, error) {
		appName := strings.ToLower(os.Getenv(AppTitleEnvVar))
		appName = regexp.MustCompile(`[,':]`).ReplaceAllString(appName, "")
		appName = regexp.MustCompile(`\s`).ReplaceAllString(appName, "-")

		cfg := session.Config{
			AuthKey:     os.Getenv(SessionAuthKeyEnvVar),
			EncryptKey:  os.Getenv(SessionEncryptKeyEnvVar),
			Env:         a.env,
			SessionName: "smak-" + appName,
		}

		store, err := session.NewStoreService(
			cfg,
			session.WithCookie(),
			session.WithMaxAge(3600*24*7),
		)
		if err != nil {
			return nil, err
		}

		return WithSessionStore(store)(a)
	}
}

// defaultResponderOpt configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponderOpt() AppOption {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			r := resp.NewResponder(
				resp.WithLogger(a.l),
				resp.WithRootUrl(a.url.String()),
			)

			fn, err := WithResponder(r)(a)
			if err != nil {
				return err
			}

			return fn()
		}, nil
	}
}

// defaultRouterOpt constructs a [*router.Router] to be used by the web server,
// stacking the middlewares every request runs through:
// request IDs, client IPs, table resolution, sessions and request logging.
func defaultRouterOpt() AppOption {
	return func(a *App) (OptFollowup, error) {
		return func() error {
			logReq := middleware.LogRequest(a.l, smak.IpAddrKey, a.kr.MatchKey())

			r := router.New(a.env, a.table, a.kr, logReq)
			r.OnEveryRequest(
				middleware.ForceHTTPS(a.env),
				middleware.RequestID(smak.RequestIDKey),
				middleware.InjectIPAddress(smak.IpAddrKey),
				middleware.ResolveRoute(a.table, a.kr),
				middleware.InjectSession(a.sessions, smak.SessionKey),
				logReq,
			)
			r.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
				a.Responder.Json(wx, rx, resp.Code(http.StatusNotFound))
			})

			fn, err := WithRouter(r)(a)
			if err != nil {
				return err
			}

			return fn()
		}, nil
	}
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	port := smak.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  smak.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  smak.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: smak.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
