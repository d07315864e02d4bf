// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code validity, categorization, and HTTP
//              status mapping.
// Version: v0.1.0
// Created: 2026-07-12
// Modified: 2026-08-02
//
// Change History:
// - 2026-07-12 v0.1.0: Initial implementation
// - 2026-08-02 v0.1.0: Session code coverage

package error

import "testing"

func TestCodeString(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeExprLex, "EXPR_LEX"},
		{CodeExprParse, "EXPR_PARSE"},
		{CodeExprEval, "EXPR_EVAL"},
		{CodeSessionNotFound, "SESSION_NOT_FOUND"},
		{CodeInvalidConfig, "INVALID_CONFIG"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeIsValid(t *testing.T) {
	valid := []Code{
		CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeExprLex, CodeExprParse, CodeExprEval,
		CodeSessionNotFound, CodeSessionLimit,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength,
		CodeServiceUnavailable, CodeServiceInitialization,
	}

	for _, code := range valid {
		if !code.IsValid() {
			t.Errorf("IsValid(%s) = false, want true", code)
		}
	}

	invalid := []Code{"", "MADE_UP", "expr_lex", "DIVISION_BY_ZERO"}
	for _, code := range invalid {
		if code.IsValid() {
			t.Errorf("IsValid(%q) = true, want false", code)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeExprLex, "expression"},
		{CodeExprParse, "expression"},
		{CodeExprEval, "expression"},
		{CodeSessionNotFound, "session"},
		{CodeSessionLimit, "session"},
		{CodeConfigError, "configuration"},
		{CodeInvalidConfig, "configuration"},
		{CodeValidationFailed, "validation"},
		{CodeInvalidLength, "validation"},
		{CodeServiceUnavailable, "service"},
		{CodeUnknown, "generic"},
		{CodeInternal, "generic"},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.want {
				t.Errorf("Category() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeHTTPStatus(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeNotFound, 404},
		{CodeSessionNotFound, 404},
		{CodeInvalidInput, 400},
		{CodeInvalidLength, 400},
		{CodeExprLex, 422},
		{CodeExprParse, 422},
		{CodeExprEval, 422},
		{CodeSessionLimit, 429},
		{CodeTimeout, 408},
		{CodeServiceUnavailable, 503},
		{CodeInternal, 500},
		{CodeUnknown, 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
