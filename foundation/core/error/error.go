// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the mRW
//              foundation. Errors carry a code, a severity, contextual
//              details, and a captured stack trace while remaining fully
//              compatible with Go's standard error interface and the
//              errors.Is/As/Unwrap machinery.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-02
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation
// - 2026-08-02 v0.1.0: Request ID accessor for the evaluation server

package error

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Error is a structured error with code, severity, and metadata.
type Error struct {
	message   string
	cause     error
	code      Code
	severity  Severity
	timestamp time.Time

	details   map[string]interface{}
	context   string
	operation string
	requestID string

	stackTrace []StackFrame
}

// StackFrame is a single captured frame of the call stack.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

const (
	// MaxChainDepth caps how deep Wrap will extend an error chain.
	MaxChainDepth = 15

	// MaxStackFrames caps the number of frames captured per error.
	MaxStackFrames = 20
)

var framePool = sync.Pool{
	New: func() interface{} {
		return make([]StackFrame, 0, MaxStackFrames)
	},
}

// New creates an Error with the given message. The code defaults to
// CodeUnknown and the severity to SeverityMedium until set explicitly.
func New(message string) *Error {
	return &Error{
		message:    message,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStack(2),
	}
}

// Wrap wraps err with an additional message. Code, severity, and details of
// a wrapped *Error are preserved on the new head of the chain. A nil err
// yields nil. Chains longer than MaxChainDepth are flattened to their root
// cause instead of growing further.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	if depth := chainDepth(err); depth >= MaxChainDepth {
		root := rootOf(err)
		return &Error{
			message:    fmt.Sprintf("%s (chain truncated at depth %d): %s", message, MaxChainDepth, root.Error()),
			code:       CodeUnknown,
			severity:   SeverityHigh,
			timestamp:  time.Now(),
			details:    map[string]interface{}{"truncated": true, "original_depth": depth},
			stackTrace: captureStack(2),
		}
	}

	if prev, ok := err.(*Error); ok {
		wrapped := &Error{
			message:    message,
			cause:      prev,
			code:       prev.code,
			severity:   prev.severity,
			timestamp:  time.Now(),
			details:    make(map[string]interface{}, len(prev.details)),
			requestID:  prev.requestID,
			stackTrace: captureStack(2),
		}
		for k, v := range prev.details {
			wrapped.details[k] = v
		}
		return wrapped
	}

	return &Error{
		message:    message,
		cause:      err,
		code:       CodeUnknown,
		severity:   SeverityMedium,
		timestamp:  time.Now(),
		details:    make(map[string]interface{}),
		stackTrace: captureStack(2),
	}
}

// chainDepth counts how many *Error links hang off err.
func chainDepth(err error) int {
	depth := 0
	current := err
	for current != nil && depth < MaxChainDepth*2 {
		depth++
		if e, ok := current.(*Error); ok {
			current = e.cause
		} else {
			break
		}
	}
	return depth
}

// rootOf returns the deepest error in a chain of *Error links.
func rootOf(err error) error {
	current := err
	last := err
	for current != nil {
		last = current
		if e, ok := current.(*Error); ok {
			current = e.cause
		} else {
			break
		}
	}
	return last
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithCode sets the error code. If the severity has not been set explicitly
// it is derived from the code.
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	if e.severity == SeverityMedium {
		e.severity = GetSeverityFromCode(code)
	}
	return e
}

// WithSeverity sets the severity explicitly.
func (e *Error) WithSeverity(severity Severity) *Error {
	e.severity = severity
	return e
}

// WithDetail attaches a single key-value detail.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	e.details[key] = value
	return e
}

// WithDetails attaches multiple key-value details.
func (e *Error) WithDetails(details map[string]interface{}) *Error {
	for k, v := range details {
		e.details[k] = v
	}
	return e
}

// WithContext sets a free-form context string, typically the component name.
func (e *Error) WithContext(context string) *Error {
	e.context = context
	return e
}

// WithOperation records the operation during which the error occurred.
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithRequestID associates the error with a request or evaluation ID.
func (e *Error) WithRequestID(requestID string) *Error {
	e.requestID = requestID
	return e
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Severity returns the error severity.
func (e *Error) Severity() Severity {
	return e.severity
}

// Timestamp returns when the error was created.
func (e *Error) Timestamp() time.Time {
	return e.timestamp
}

// Details returns a copy of the attached details.
func (e *Error) Details() map[string]interface{} {
	result := make(map[string]interface{}, len(e.details))
	for k, v := range e.details {
		result[k] = v
	}
	return result
}

// Context returns the context string.
func (e *Error) Context() string {
	return e.context
}

// Operation returns the recorded operation.
func (e *Error) Operation() string {
	return e.operation
}

// RequestID returns the associated request ID.
func (e *Error) RequestID() string {
	return e.requestID
}

// StackTrace returns a copy of the captured stack frames.
func (e *Error) StackTrace() []StackFrame {
	result := make([]StackFrame, len(e.stackTrace))
	copy(result, e.stackTrace)
	return result
}

// RootCause walks the chain and returns the innermost error.
func (e *Error) RootCause() error {
	cause := e.cause
	for cause != nil {
		if inner, ok := cause.(*Error); ok {
			if inner.cause == nil {
				return inner
			}
			cause = inner.cause
		} else {
			return cause
		}
	}
	return e
}

// String returns a multi-line diagnostic representation.
func (e *Error) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("Error: %s", e.message))
	parts = append(parts, fmt.Sprintf("Code: %s", e.code))
	parts = append(parts, fmt.Sprintf("Severity: %s", e.severity))
	parts = append(parts, fmt.Sprintf("Timestamp: %s", e.timestamp.Format(time.RFC3339)))

	if e.context != "" {
		parts = append(parts, fmt.Sprintf("Context: %s", e.context))
	}
	if e.operation != "" {
		parts = append(parts, fmt.Sprintf("Operation: %s", e.operation))
	}
	if e.requestID != "" {
		parts = append(parts, fmt.Sprintf("RequestID: %s", e.requestID))
	}
	if len(e.details) > 0 {
		detailStrs := make([]string, 0, len(e.details))
		for k, v := range e.details {
			detailStrs = append(detailStrs, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, fmt.Sprintf("Details: {%s}", strings.Join(detailStrs, ", ")))
	}
	if e.cause != nil {
		parts = append(parts, fmt.Sprintf("Cause: %s", e.cause.Error()))
	}

	return strings.Join(parts, "\n")
}

// MarshalJSON renders the error for structured logging and API responses.
func (e *Error) MarshalJSON() ([]byte, error) {
	data := map[string]interface{}{
		"message":   e.message,
		"code":      e.code,
		"severity":  e.severity.String(),
		"timestamp": e.timestamp.Format(time.RFC3339),
		"details":   e.details,
	}

	if e.context != "" {
		data["context"] = e.context
	}
	if e.operation != "" {
		data["operation"] = e.operation
	}
	if e.requestID != "" {
		data["request_id"] = e.requestID
	}
	if e.cause != nil {
		data["cause"] = e.cause.Error()
	}
	if len(e.stackTrace) > 0 {
		data["stack_trace"] = e.stackTrace
	}

	return json.Marshal(data)
}

// captureStack records up to MaxStackFrames frames, skipping the given
// number of callers. The working slice is pooled; the returned slice is an
// independent copy.
func captureStack(skip int) []StackFrame {
	frames := framePool.Get().([]StackFrame)[:0]

	for i := skip; i < MaxStackFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	result := make([]StackFrame, len(frames))
	copy(result, frames)

	if cap(frames) >= MaxStackFrames {
		framePool.Put(frames)
	}

	return result
}

// HasCode reports whether err is a foundation Error carrying code.
func HasCode(err error, code Code) bool {
	if e, ok := err.(*Error); ok {
		return e.code == code
	}
	return false
}

// GetCode returns the code of a foundation Error, or CodeUnknown for any
// other error value.
func GetCode(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.code
	}
	return CodeUnknown
}

// GetSeverity returns the severity of a foundation Error, or SeverityMedium
// for any other error value.
func GetSeverity(err error) Severity {
	if e, ok := err.(*Error); ok {
		return e.severity
	}
	return SeverityMedium
}
