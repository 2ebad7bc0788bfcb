package core

// Logger interface for render progress logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all log output
type NopLogger struct{}

// Printf implements Logger
func (NopLogger) Printf(format string, args ...interface{}) {}
