// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for the mRW logging system with support
//              for filtering, parsing, and short and colored string
//              representations.
// Version: v0.1.0
// Created: 2026-07-13
// Modified: 2026-07-13
//
// Change History:
// - 2026-07-13 v0.1.0: Initial implementation with seven levels and parsing

package log

import (
	"strings"
)

// Level represents the severity of a log message
type Level int

const (
	// LevelTrace is the most verbose level, used for step-by-step
	// diagnostics such as per-token lexer output
	LevelTrace Level = iota

	// LevelDebug provides diagnostic detail for development
	LevelDebug

	// LevelInfo represents normal operational messages
	LevelInfo

	// LevelWarn indicates conditions that deserve attention but do not
	// fail the operation
	LevelWarn

	// LevelError represents failed operations
	LevelError

	// LevelFatal represents unrecoverable conditions that terminate
	// the program
	LevelFatal

	// LevelAudit represents audit trail events; these bypass level
	// filtering so evaluation history is never lost
	LevelAudit
)

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelAudit:
		return "audit"
	default:
		return "unknown"
	}
}

// ShortString returns a fixed three-letter abbreviation of the level
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	case LevelAudit:
		return "AUD"
	default:
		return "???"
	}
}

// Color returns the ANSI color code used for console output
func (l Level) Color() string {
	switch l {
	case LevelTrace:
		return "\033[37m" // White
	case LevelDebug:
		return "\033[36m" // Cyan
	case LevelInfo:
		return "\033[32m" // Green
	case LevelWarn:
		return "\033[33m" // Yellow
	case LevelError:
		return "\033[31m" // Red
	case LevelFatal:
		return "\033[35m" // Magenta
	case LevelAudit:
		return "\033[34m" // Blue
	default:
		return "\033[0m" // Reset
	}
}

// Priority returns the numeric priority of the level (higher = more important)
func (l Level) Priority() int {
	return int(l)
}

// ShouldLog reports whether a message at this level passes the given
// minimum level. Audit entries always pass.
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// IsEnabled reports whether this level is enabled for the given minimum level
func (l Level) IsEnabled(minLevel Level) bool {
	return l.ShouldLog(minLevel)
}

// ParseLevel parses a level name into a Level. Both the long form
// ("debug") and the short form ("DBG") are accepted, case-insensitively.
// On failure the default level is returned together with a ParseError.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError describes a failed parse of a level or format name
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all defined levels in ascending priority order
func AllLevels() []Level {
	return []Level{
		LevelTrace,
		LevelDebug,
		LevelInfo,
		LevelWarn,
		LevelError,
		LevelFatal,
		LevelAudit,
	}
}

// DefaultLevel returns the recommended level for production use
func DefaultLevel() Level {
	return LevelInfo
}

// DevelopmentLevel returns the recommended level for development use
func DevelopmentLevel() Level {
	return LevelDebug
}
