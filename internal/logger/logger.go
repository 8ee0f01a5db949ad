package logger

import (
	"sync"
)

// Log levels used across the application.
const (
	DebugLevel = "debug"
	InfoLevel  = "info"
	WarnLevel  = "warn"
	ErrorLevel = "error"
)

var (
	// globalLogger holds the singleton logger instance.
	globalLogger *Logger
	once         sync.Once
)

// Get returns the process logger, creating it at the given level on first use.
// Later calls return the same instance; use SetLevel to change verbosity
// once configuration has been read.
func Get(level string) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(level)
	})
	return globalLogger
}

// New returns an independent logger, mainly for tests.
func New(level string) *Logger {
	return newZapLogger(level)
}
