package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alepharchives/smak"
	"github.com/alepharchives/smak/http/keyring"
	"github.com/alepharchives/smak/http/resp"
	"github.com/alepharchives/smak/http/router"
	"github.com/alepharchives/smak/http/session"
	"github.com/alepharchives/smak/logger"
	"github.com/alepharchives/smak/routing"
)

// An App manages and exposes all components of a smak app to one another.
type App struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	env      smak.Environment
	kr       keyring.Keyringable
	l        logger.Logger
	table    *routing.Table
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL
}

// New constructs an App from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...AppOption) (*App, error) {
	a := new(App)
	followups := make([]OptFollowup, 0)

	// NOTE(dlk): calling an option configures the *App under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *App
	// until either (1) user supplied AppOptions or (2) default AppOptions
	// configure the *App first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(a)
		if err != nil {
			return a, fmt.Errorf("%w: %s", smak.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", smak.ErrBadConfig, err)
		}
	}

	return a, nil
}

func (a *App) EmitEnv() smak.Environment               { return a.env }
func (a *App) EmitKeyring() keyring.Keyringable        { return a.kr }
func (a *App) EmitLogger() logger.Logger               { return a.l }
func (a *App) EmitRouteTable() *routing.Table          { return a.table }
func (a *App) EmitSessionStore() session.SessionStorer { return a.sessions }

// Guide begins the web server.
//
// These, and (*App).Shutdown, stop Guide:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (a *App) Guide() error {
	var cancel context.CancelFunc
	a.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		a.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		a.l.Info(fmt.Sprintf("running web server at %s", a.srv.Addr), nil)
		a.srv.Handler = a.Router
		if err := a.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			a.l.Error(err.Error(), nil)
		}
	}()

	<-a.ctx.Done()
	return a.Shutdown()
}

// Shutdown shutdowns the web server.
func (a *App) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.l.Info("shutting down web server", nil)
	err := a.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		a.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	a.l.Info("web server shutdown successfully", nil)
	return nil
}
