/*
Package app initializes and manages a smak app with sane defaults.

# App

The main entrypoint to package app is the [App] type.
An [App] ought to be constructed with [New],
supplying the route definitions it dispatches over through [WithRouteTable].

[*App.Guide] begins a smak app's web server.
By default, [*App.Guide] listens on [DefaultHost]:[DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the smak web server.

Upon calling [*App.Guide], all routes configured up to that point are now active.
Stop that web server with [*App.Shutdown]
or send a signal [*App.Guide] listens for.

# Configuration

A developer configures a smak app through environment variables
and by passing AppOptions to [New].
For environment variables, required values can be discovered by inspecting the errors [New] returns.

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application; names the session cookie
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - ENVIRONMENT: the environment the application is running in; cf. [smak.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: the DSN logged errors report to; cf. [logger.New]
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
*/
package app
