package logger

import "log"

// A LoggerOptFn is a functional option configuring a SmakLogger when constructing a new one.
type LoggerOptFn func(*SmakLogger)

// WithEnv sets the environment SmakLogger is operating in.
func WithEnv(env string) func(*SmakLogger) {
	return func(l *SmakLogger) {
		l.env = env
	}
}

// WithLevel sets the log level SmakLogger uses.
func WithLevel(level LogLevel) func(*SmakLogger) {
	return func(l *SmakLogger) {
		l.ll = level
	}
}

// WithLogger sets the log.Logger SmakLogger uses.
func WithLogger(log *log.Logger) func(*SmakLogger) {
	return func(l *SmakLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) func(*SmakLogger) {
	return func(l *SmakLogger) {
		l.skip = skip
	}
}
