// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that logging and the
//              evaluation server can prioritize consistently. A user's
//              mistyped expression is routine; a failed component startup
//              is not.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-07-12
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation

package error

// Severity ranks how serious an error is.
type Severity int

const (
	// SeverityLow marks routine, user-correctable errors such as a
	// malformed expression or an undefined variable.
	SeverityLow Severity = iota

	// SeverityMedium marks errors that degrade functionality but leave the
	// process healthy.
	SeverityMedium

	// SeverityHigh marks errors that significantly impact functionality,
	// such as a component failing to initialize.
	SeverityHigh

	// SeverityCritical marks errors that make the system unusable.
	SeverityCritical
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level (0-3).
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert reports whether the severity warrants alerting.
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// ShouldLog reports whether the severity should be logged. All are.
func (s Severity) ShouldLog() bool {
	return true
}

// GetSeverityFromCode derives a default severity for a code. Expression
// errors are the user's to fix and stay low.
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError, CodeServiceUnavailable:
		return SeverityCritical

	case CodeServiceInitialization, CodeInvalidConfig, CodeMissingConfig:
		return SeverityHigh

	case CodeConfigError, CodeTimeout, CodeSessionLimit:
		return SeverityMedium

	case CodeExprLex, CodeExprParse, CodeExprEval,
		CodeInvalidInput, CodeNotFound, CodeSessionNotFound,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
