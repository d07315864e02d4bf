// Package error provides structured error handling for the mRW platform.
//
// Package: error
// Title: mRW Error Handling Framework
// Description: Implements a structured error type with error codes, severity
//              levels, contextual details, and stack traces. The expression
//              pipeline's stage errors (lex, parse, eval) are wrapped into
//              this type at the engine boundary so that every failure carries
//              a code and a severity by the time it reaches a caller.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-02
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation
// - 2026-08-02 v0.1.0: Session codes for the evaluation server
//
// Features:
// - Contextual error wrapping compatible with errors.Is/As/Unwrap
// - Structured error codes with HTTP status mapping
// - Severity levels derived from codes, overridable per error
// - Stack trace capture with pooled frame buffers
// - JSON marshalling for structured logging and API responses
//
// Usage:
//
//	import rwerror "github.com/msto63/mRW/foundation/core/error"
//
//	// Create a new error with context
//	err := rwerror.New("expression rejected").
//	    WithCode(rwerror.CodeExprParse).
//	    WithDetail("input", `(5 - 4`).
//	    WithOperation("parse")
//
//	// Wrap an existing error
//	wrapped := rwerror.Wrap(err, "evaluation failed").
//	    WithRequestID(requestID)
//
//	// Branch on codes
//	if rwerror.HasCode(err, rwerror.CodeExprParse) {
//	    // report position details to the user
//	}
package error
