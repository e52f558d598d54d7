// Package logging provides structured logging for the serializer, built on
// Go's built-in slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type contextKey string

// ContextKeyLogger is the context key for the logger instance.
const ContextKeyLogger contextKey = "logger"

// Logger wraps slog.Logger with serializer-specific chaining helpers.
type Logger struct {
	logger *slog.Logger
}

// Config holds logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Output is where logs are written (default: os.Stdout).
	Output io.Writer
	// Pretty enables human-readable text output (default: false for JSON).
	Pretty bool
	// IncludeCaller includes source location in logs (default: false).
	IncludeCaller bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: os.Stdout,
		Pretty: false,
	}
}

// New creates a new logger with the given configuration.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	return &Logger{logger: slog.New(handler)}
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithContext attaches the logger to a context.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, l)
}

// FromContext retrieves the logger from a context, or a default logger if none is set.
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*Logger); ok {
		return logger
	}
	return New(DefaultConfig())
}

// WithGraphID adds the store-assigned graph handle to the logger context.
func (l *Logger) WithGraphID(graphID string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("graph_id", graphID))}
}

// WithFunctionName adds the function currently being read or written.
func (l *Logger) WithFunctionName(name string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("function_name", name))}
}

// WithNodeName adds the node currently being read or written.
func (l *Logger) WithNodeName(name string) *Logger {
	return &Logger{logger: l.logger.With(slog.String("node_name", name))}
}

// WithField adds a custom field to the logger context.
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With(slog.Any(key, value))}
}

// WithError adds an error to the logger context.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{logger: l.logger.With(slog.Any("error", err))}
}

func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }

func (l *Logger) Debugf(format string, args ...interface{}) { l.logger.Debug(fmt.Sprintf(format, args...)) }

func (l *Logger) Info(msg string) { l.logger.Info(msg) }

func (l *Logger) Infof(format string, args ...interface{}) { l.logger.Info(fmt.Sprintf(format, args...)) }

func (l *Logger) Warn(msg string) { l.logger.Warn(msg) }

func (l *Logger) Warnf(format string, args ...interface{}) { l.logger.Warn(fmt.Sprintf(format, args...)) }

func (l *Logger) Error(msg string) { l.logger.Error(msg) }

func (l *Logger) Errorf(format string, args ...interface{}) { l.logger.Error(fmt.Sprintf(format, args...)) }

// GetSlogLogger returns the underlying slog.Logger for advanced use cases.
func (l *Logger) GetSlogLogger() *slog.Logger { return l.logger }
