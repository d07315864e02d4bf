// File: error_integration_test.go
// Title: mRW Error Propagation Integration Tests
// Description: Tests for error behavior across module boundaries, verifying
//              that every pipeline stage reports failures through the shared
//              error module with stable codes, positions, severities, and
//              HTTP status mappings.
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial implementation of error integration tests

package integration

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/expr/parser"
)

// TestStageErrorClassification verifies that each pipeline stage tags its
// failures with the stage's code, operation, and category
func TestStageErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		code       rwerror.Code
		operation  string
		category   string
	}{
		{"lexer failure", "5 @ 3", rwerror.CodeExprLex, "tokenize", "expression"},
		{"parser failure", "(5 - 4", rwerror.CodeExprParse, "parse", "expression"},
		{"evaluator failure", "unknown_var + 1", rwerror.CodeExprEval, "evaluate", "expression"},
		{"blank input", "", rwerror.CodeInvalidInput, "validate", "validation"},
	}

	engine := newPipelineEngine(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Evaluate(context.Background(), tt.expression)
			if err == nil {
				t.Fatalf("Expected Evaluate(%q) to fail", tt.expression)
			}

			if got := rwerror.GetCode(err); got != tt.code {
				t.Errorf("Expected code %s, got %s", tt.code, got)
			}

			var rwErr *rwerror.Error
			if !errors.As(err, &rwErr) {
				t.Fatalf("Expected a structured error, got %T", err)
			}
			if got := rwErr.Operation(); got != tt.operation {
				t.Errorf("Expected operation %q, got %q", tt.operation, got)
			}
			if got := rwErr.Code().Category(); got != tt.category {
				t.Errorf("Expected category %q, got %q", tt.category, got)
			}
		})
	}
}

// TestErrorPositionsPreserved verifies that source positions survive the
// trip from the failing stage through the facade into the error details
func TestErrorPositionsPreserved(t *testing.T) {
	engine := newPipelineEngine(t)
	ctx := context.Background()

	t.Run("lexer position", func(t *testing.T) {
		_, err := engine.Evaluate(ctx, "5 @ 3")
		rwErr := requireStructured(t, err)

		if got := rwErr.Error(); got != `unexpected character "@" at 0:2` {
			t.Errorf("Unexpected message: %s", got)
		}

		details := rwErr.Details()
		if lexeme, _ := details["lexeme"].(string); lexeme != "@" {
			t.Errorf("Expected lexeme \"@\", got %v", details["lexeme"])
		}
		assertIntDetail(t, details, "line", 0)
		assertIntDetail(t, details, "column", 2)
		assertIntDetail(t, details, "offset", 2)
	})

	t.Run("parser position", func(t *testing.T) {
		_, err := engine.Evaluate(ctx, "(5 - 4")
		rwErr := requireStructured(t, err)

		details := rwErr.Details()
		if expected, _ := details["expected"].(string); expected != "RightParen" {
			t.Errorf("Expected detail expected=RightParen, got %v", details["expected"])
		}
		if found, _ := details["found"].(string); found != "EndOfInput" {
			t.Errorf("Expected detail found=EndOfInput, got %v", details["found"])
		}
		assertIntDetail(t, details, "line", 0)
		assertIntDetail(t, details, "column", 6)
	})

	t.Run("evaluator position", func(t *testing.T) {
		_, err := engine.Evaluate(ctx, "unknown_var + 1")
		rwErr := requireStructured(t, err)

		details := rwErr.Details()
		if variable, _ := details["variable"].(string); variable != "unknown_var" {
			t.Errorf("Expected variable detail, got %v", details["variable"])
		}
		assertIntDetail(t, details, "line", 0)
		assertIntDetail(t, details, "column", 0)
		assertIntDetail(t, details, "offset", 0)
	})
}

// TestExpressionErrorSeverity verifies that expression failures carry low
// severity throughout: they are the user's input to fix, not system faults
func TestExpressionErrorSeverity(t *testing.T) {
	engine := newPipelineEngine(t)

	for _, expression := range []string{"5 @ 3", "(5 - 4", "unknown_var + 1", ""} {
		_, err := engine.Evaluate(context.Background(), expression)
		rwErr := requireStructured(t, err)

		if got := rwErr.Severity(); got != rwerror.SeverityLow {
			t.Errorf("Evaluate(%q): expected severity %s, got %s",
				expression, rwerror.SeverityLow, got)
		}
	}
}

// TestErrorHTTPStatusMapping verifies the status codes the server layer
// derives from error codes
func TestErrorHTTPStatusMapping(t *testing.T) {
	tests := []struct {
		code   rwerror.Code
		status int
	}{
		{rwerror.CodeExprLex, http.StatusUnprocessableEntity},
		{rwerror.CodeExprParse, http.StatusUnprocessableEntity},
		{rwerror.CodeExprEval, http.StatusUnprocessableEntity},
		{rwerror.CodeInvalidInput, http.StatusBadRequest},
		{rwerror.CodeNotFound, http.StatusNotFound},
		{rwerror.CodeSessionNotFound, http.StatusNotFound},
		{rwerror.CodeSessionLimit, http.StatusTooManyRequests},
		{rwerror.CodeTimeout, http.StatusRequestTimeout},
		{rwerror.CodeServiceUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		if got := tt.code.HTTPStatus(); got != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.code, tt.status, got)
		}
	}

	// An engine-produced failure maps the same way
	engine := newPipelineEngine(t)
	_, err := engine.Evaluate(context.Background(), "(5 - 4")
	if err == nil {
		t.Fatal("Expected evaluation to fail")
	}
	if got := rwerror.GetCode(err).HTTPStatus(); got != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for a parse failure, got %d", got)
	}
}

// TestParseErrorChainUnwrapping verifies that the original parser error
// stays reachable through the wrapped facade error
func TestParseErrorChainUnwrapping(t *testing.T) {
	engine := newPipelineEngine(t)

	_, err := engine.Evaluate(context.Background(), "(5 - 4")
	if err == nil {
		t.Fatal("Expected evaluation to fail")
	}

	if !rwerror.HasCode(err, rwerror.CodeExprParse) {
		t.Errorf("Expected code %s on the chain", rwerror.CodeExprParse)
	}
	if !strings.HasPrefix(err.Error(), "expression parsing failed: ") {
		t.Errorf("Expected facade message prefix, got: %s", err.Error())
	}

	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Expected a *parser.ParseError in the chain, got %T", err)
	}
	if parseErr.Expected != "RightParen" {
		t.Errorf("Expected RightParen, got %q", parseErr.Expected)
	}
	if parseErr.Found != "EndOfInput" {
		t.Errorf("Expected EndOfInput, got %q", parseErr.Found)
	}
	if parseErr.Line != 0 || parseErr.Column != 6 {
		t.Errorf("Expected position 0:6, got %d:%d", parseErr.Line, parseErr.Column)
	}
	if got := parseErr.Error(); got != "parse error at 0:6: expected RightParen, found EndOfInput" {
		t.Errorf("Unexpected parser message: %s", got)
	}
}

// TestLexErrorPassesThroughFacade verifies that lexer errors keep their
// original operation and message instead of being rewrapped as parse errors
func TestLexErrorPassesThroughFacade(t *testing.T) {
	engine := newPipelineEngine(t)

	_, err := engine.Evaluate(context.Background(), "5 @ 3")
	rwErr := requireStructured(t, err)

	if !rwerror.HasCode(err, rwerror.CodeExprLex) {
		t.Errorf("Expected code %s", rwerror.CodeExprLex)
	}
	if got := rwErr.Operation(); got != "tokenize" {
		t.Errorf("Expected operation tokenize, got %q", got)
	}
	if rwerror.HasCode(err, rwerror.CodeExprParse) {
		t.Error("Lexer error must not acquire a parse code on the way out")
	}
}

// TestMalformedNumberErrors verifies malformed number literals fail in the
// lexer with the full bad lexeme in the details
func TestMalformedNumberErrors(t *testing.T) {
	tests := []struct {
		expression string
		lexeme     string
		column     int
	}{
		{"5.", "5.", 0},
		{"5e", "5e", 0},
		{"1 + 5e+", "5e+", 4},
	}

	engine := newPipelineEngine(t)

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			_, err := engine.Evaluate(context.Background(), tt.expression)
			rwErr := requireStructured(t, err)

			if !rwerror.HasCode(err, rwerror.CodeExprLex) {
				t.Errorf("Expected code %s, got %s", rwerror.CodeExprLex, rwerror.GetCode(err))
			}
			if !strings.Contains(err.Error(), "malformed number") {
				t.Errorf("Expected a malformed number message, got: %s", err.Error())
			}

			details := rwErr.Details()
			if lexeme, _ := details["lexeme"].(string); lexeme != tt.lexeme {
				t.Errorf("Expected lexeme %q, got %v", tt.lexeme, details["lexeme"])
			}
			assertIntDetail(t, details, "column", tt.column)
		})
	}
}

// requireStructured fails the test unless err wraps a structured error
func requireStructured(t *testing.T, err error) *rwerror.Error {
	t.Helper()

	if err == nil {
		t.Fatal("Expected an error")
	}

	var rwErr *rwerror.Error
	if !errors.As(err, &rwErr) {
		t.Fatalf("Expected a structured error, got %T", err)
	}

	return rwErr
}

// assertIntDetail checks a single integer detail value
func assertIntDetail(t *testing.T, details map[string]interface{}, key string, want int) {
	t.Helper()

	got, ok := details[key].(int)
	if !ok {
		t.Errorf("Expected integer detail %q, got %T", key, details[key])
		return
	}
	if got != want {
		t.Errorf("Expected detail %s=%d, got %d", key, want, got)
	}
}
