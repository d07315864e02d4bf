// ============================================================================
// meinRECHENWERK (mRW) - Lokale Rechenplattform
// ============================================================================
//
// Package:     repl
// Description: History entry types for the REPL viewport
// Created:     2026-07-23
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// HistoryEntry represents one line in the REPL history: an evaluated
// expression with its outcome, or a system note
type HistoryEntry struct {
	Input     string        // expression as typed
	Result    string        // formatted result value (empty when failed)
	ErrorText string        // error message (empty when successful)
	Tokens    string        // token listing (set when token display is on)
	Tree      string        // AST rendering (set when AST display is on)
	Note      string        // system note content (toggles, hints)
	Timestamp time.Time     // when the expression was evaluated
	Duration  time.Duration // how long the evaluation took
}

// Failed reports whether the entry recorded an evaluation error
func (e HistoryEntry) Failed() bool {
	return e.ErrorText != ""
}

// IsNote reports whether the entry is a system note rather than an evaluation
func (e HistoryEntry) IsNote() bool {
	return e.Note != ""
}
