package services

import (
	"io"
	"log/slog"
	"os"
)

// SimpleLogger implements domain.Logger on top of log/slog
type SimpleLogger struct {
	logger *slog.Logger
}

// NewSimpleLogger creates a logger writing text records to stderr
func NewSimpleLogger() *SimpleLogger {
	return NewLogger(os.Stderr, "development")
}

// NewLogger creates a logger for the given environment.
// Production emits JSON records; every other environment emits text with debug enabled.
func NewLogger(w io.Writer, environment string) *SimpleLogger {
	var handler slog.Handler
	if environment == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return &SimpleLogger{logger: slog.New(handler)}
}

// Error logs an error message
func (l *SimpleLogger) Error(msg string, err error) {
	l.logger.Error(msg, "error", err)
}

// Info logs an info message with key/value pairs
func (l *SimpleLogger) Info(msg string, args ...interface{}) {
	l.logger.Info(msg, args...)
}

// Debug logs a debug message with key/value pairs
func (l *SimpleLogger) Debug(msg string, args ...interface{}) {
	l.logger.Debug(msg, args...)
}
