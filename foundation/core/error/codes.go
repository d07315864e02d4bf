// File: codes.go
// Title: Error Code Definitions
// Description: Defines the standardized error codes used for classifying
//              failures across mRW. Codes drive severity derivation, API
//              response mapping, and log analysis.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-02
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation
// - 2026-08-02 v0.1.0: Session codes for the evaluation server

package error

// Code classifies an error for handling and reporting.
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Expression pipeline
	CodeExprLex   Code = "EXPR_LEX"
	CodeExprParse Code = "EXPR_PARSE"
	CodeExprEval  Code = "EXPR_EVAL"

	// Evaluation sessions
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
	CodeSessionLimit    Code = "SESSION_LIMIT"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// Service lifecycle
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
)

// String returns the code as a plain string.
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is one of the known codes.
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeExprLex, CodeExprParse, CodeExprEval,
		CodeSessionNotFound, CodeSessionLimit,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeServiceUnavailable, CodeServiceInitialization:
		return true
	default:
		return false
	}
}

// Category returns the high-level classification of the code.
func (c Code) Category() string {
	switch c {
	case CodeExprLex, CodeExprParse, CodeExprEval:
		return "expression"
	case CodeSessionNotFound, CodeSessionLimit:
		return "session"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeServiceUnavailable, CodeServiceInitialization:
		return "service"
	default:
		return "generic"
	}
}

// HTTPStatus maps the code to the HTTP status the evaluation API responds
// with. Expression errors are well-formed requests whose content cannot be
// processed, hence 422.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound, CodeSessionNotFound:
		return 404
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return 400
	case CodeExprLex, CodeExprParse, CodeExprEval:
		return 422
	case CodeSessionLimit:
		return 429
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable:
		return 503
	default:
		return 500
	}
}
