// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating component loggers
// Created:     2026-07-20
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	rwlog "github.com/msto63/mRW/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name (server, repl, cli)
	ComponentName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format
	Format string // "json", "text", "console" or "logfmt" (default: json)

	// Additional outputs (besides stdout), e.g. a log file
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(componentName string) LoggerConfig {
	return LoggerConfig{
		ComponentName: componentName,
		Level:         "info",
		Format:        "json",
	}
}

// NewLogger creates a new Foundation logger from the configuration
func NewLogger(cfg LoggerConfig) *rwlog.Logger {
	// Determine log level
	level := parseLevel(cfg.Level)

	// Build output writer
	var output io.Writer = os.Stdout

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	// Create logger
	logger := rwlog.NewWithConfig(rwlog.Config{
		Level:        level,
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.ComponentName,
		EnableCaller: true,
	})

	return logger
}

// NewSimpleLogger creates a logger with standard configuration
func NewSimpleLogger(componentName string) *rwlog.Logger {
	return NewLogger(DefaultLoggerConfig(componentName))
}

// parseLevel converts a string level to rwlog.Level
func parseLevel(level string) rwlog.Level {
	switch level {
	case "trace":
		return rwlog.LevelTrace
	case "debug":
		return rwlog.LevelDebug
	case "info":
		return rwlog.LevelInfo
	case "warn", "warning":
		return rwlog.LevelWarn
	case "error":
		return rwlog.LevelError
	case "fatal":
		return rwlog.LevelFatal
	default:
		return rwlog.LevelInfo
	}
}

// parseFormat converts a string format to rwlog.Format
func parseFormat(format string) rwlog.Format {
	switch format {
	case "text":
		return rwlog.FormatText
	case "console":
		return rwlog.FormatConsole
	case "logfmt":
		return rwlog.FormatLogfmt
	default:
		return rwlog.FormatJSON
	}
}

// Compatibility layer for call sites using key-value pairs

// Logger wraps the Foundation logger with a key-value pair interface
type Logger struct {
	*rwlog.Logger
	name string
}

// New creates a new key-value pair logger
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// NewWithConfig creates a key-value pair logger from the configuration
func NewWithConfig(cfg LoggerConfig) *Logger {
	return &Logger{
		Logger: NewLogger(cfg),
		name:   cfg.ComponentName,
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	rwLevel := rwlog.LevelInfo
	switch level {
	case LevelDebug:
		rwLevel = rwlog.LevelDebug
	case LevelInfo:
		rwLevel = rwlog.LevelInfo
	case LevelWarn:
		rwLevel = rwlog.LevelWarn
	case LevelError:
		rwLevel = rwlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(rwLevel),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to rwlog.Fields
func toFields(keysAndValues ...interface{}) rwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(rwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
