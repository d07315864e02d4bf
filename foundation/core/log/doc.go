// Package log provides structured logging capabilities for the mRW platform.
//
// Package: log
// Title: mRW Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels,
//              and tight integration with the mRW error handling system. It
//              supports performance timing and audit trails for expression
//              evaluation.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-13
//
// Change History:
// - 2026-07-13 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs, session IDs, and custom fields
// - Integration with the mRW error system for automatic error logging
// - Performance timers with checkpoints for lexing, parsing, and evaluation
// - Audit trail entries that bypass level filtering
// - Optional asynchronous output for high-volume scenarios
//
// Usage:
//
//	import rwlog "github.com/msto63/mRW/foundation/core/log"
//
//	// Create a logger with context
//	logger := rwlog.New().
//	    WithLevel(rwlog.LevelInfo).
//	    WithFormat(rwlog.FormatJSON).
//	    WithField("component", "engine").
//	    WithRequestID("req-123")
//
//	// Log messages with different levels
//	logger.Info("expression evaluated", rwlog.Field("result", 3.14))
//	logger.Error("evaluation failed", rwlog.Err(err))
//	logger.Debug("tokenizing input", rwlog.Fields{
//	    "input_length": 42,
//	    "tokens":       12,
//	})
//
//	// Log performance metrics
//	timer := logger.StartTimer("evaluate")
//	// ... run the pipeline
//	timer.Stop()
//
//	// Audit logging for session activity
//	logger.Audit("variable assigned", rwlog.Fields{
//	    "name":    "pi",
//	    "value":   3.142857142857143,
//	    "session": "repl",
//	})
package log
