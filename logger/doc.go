/*

Package logger defines the levels logging can occur at and default implementations
writing to stdout or shipping exceptional logs to Sentry.

*/
package logger
