// Package logging provides structured diagnostic logging for scans and
// baseline operations.
package logging

import (
	"strings"
)

// Level represents log severity
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// ParseLevel converts a config string to a Level, defaulting to info
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

// String returns the canonical name of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Fields represents structured log fields
type Fields map[string]interface{}

// Logger defines the interface for structured logging
type Logger interface {
	// Debug logs a debug message
	Debug(msg string, fields Fields)

	// Info logs an info message
	Info(msg string, fields Fields)

	// Warn logs a warning message
	Warn(msg string, fields Fields)

	// Error logs an error message with its cause
	Error(msg string, err error, fields Fields)

	// WithFields returns a logger that attaches fields to every entry
	WithFields(fields Fields) Logger

	// Close flushes and closes the logger
	Close() error
}
