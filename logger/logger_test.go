package logger_test

import (
	"bytes"
	"log"
	"regexp"
	"testing"

	"github.com/alepharchives/smak/logger"
	"github.com/stretchr/testify/require"
)

var (
	logLevelRegexp = regexp.MustCompile(`\[[A-Z]+\]`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func TestSmakLoggerLevels(t *testing.T) {
	for _, tc := range []struct {
		name    string
		level   logger.LogLevel
		logged  bool
		logging func(logger.Logger)
	}{
		{"Debug-At-Info-Silenced", logger.LogLevelInfo, false, func(l logger.Logger) { l.Debug("quiet", nil) }},
		{"Debug-At-Debug-Logged", logger.LogLevelDebug, true, func(l logger.Logger) { l.Debug("loud", nil) }},
		{"Info-At-Info-Logged", logger.LogLevelInfo, true, func(l logger.Logger) { l.Info("loud", nil) }},
		{"Warn-At-Error-Silenced", logger.LogLevelError, false, func(l logger.Logger) { l.Warn("quiet", nil) }},
		{"Error-At-Warn-Logged", logger.LogLevelWarn, true, func(l logger.Logger) { l.Error("loud", nil) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			b := new(bytes.Buffer)
			l := logger.New(
				logger.WithLogger(log.New(b, "", 0)),
				logger.WithLevel(tc.level),
			)

			// Act
			tc.logging(l)

			// Assert
			if !tc.logged {
				require.Zero(t, b.String())
				return
			}

			require.Regexp(t, logLevelRegexp, b.String())
			require.Equal(t, "loud", msgRegexp.FindStringSubmatch(b.String())[1])
		})
	}
}

func TestNewLogLevel(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected logger.LogLevel
	}{
		{"DEBUG", logger.LogLevelDebug},
		{"INFO", logger.LogLevelInfo},
		{"WARN", logger.LogLevelWarn},
		{"ERROR", logger.LogLevelError},
		{"FATAL", logger.LogLevelFatal},
		{"whatever", logger.LogLevelUnk},
	} {
		t.Run(tc.input, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.input))
		})
	}
}

func TestAddSkip(t *testing.T) {
	// Arrange
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)))

	sl, ok := l.(logger.SkipLogger)
	require.True(t, ok)

	// Act
	newl := sl.AddSkip(2)

	// Assert
	require.Equal(t, 2, newl.Skip())
	require.Zero(t, sl.Skip())
}
