// File: parser_test.go
// Title: Expression Parser Unit Tests
// Description: Unit tests for the recursive descent parser covering operator
//              precedence, associativity, assignment lookahead, grouping,
//              position propagation, and error reporting.
// Version: v0.1.0
// Created: 2026-07-17
// Modified: 2026-07-17
//
// Change History:
// - 2026-07-17 v0.1.0: Initial parser test suite

package parser

import (
	"errors"
	"strings"
	"testing"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/expr/ast"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New(Options{})
	if err != nil {
		t.Fatalf("Expected parser creation to succeed, got: %v", err)
	}
	return p
}

func TestParser_PrecedenceAndAssociativity(t *testing.T) {
	// The parenthesized rendering exposes the tree shape.
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Left-associative subtraction", "10 - 3 - 2", "((10 - 3) - 2)"},
		{"Multiplication binds tighter", "2 + 3 * 4", "(2 + (3 * 4))"},
		{"Grouping overrides precedence", "(2 + 3) * 4", "((2 + 3) * 4)"},
		{"Multiplication on the left", "2 * 3 + 4", "((2 * 3) + 4)"},
		{"Left-associative division", "100 / 10 / 5", "((100 / 10) / 5)"},
		{"Comparison binds loosest", "1 + 2 > 2 + 1", "((1 + 2) > (2 + 1))"},
		{"Chained comparisons fold left", "1 < 2 < 3", "((1 < 2) < 3)"},
		{"Equality", "5 == 5", "(5 == 5)"},
		{"Nested parentheses", "((1))", "1"},
		{"Single number", "42", "42"},
		{"Single identifier", "x", "x"},
		{"Identifier arithmetic", "x + 1", "(x + 1)"},
		{"Comparison inside parentheses", "(a >= b) * 2", "((a >= b) * 2)"},
	}

	parser := newTestParser(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if got := expr.String(); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestParser_Assignment(t *testing.T) {
	parser := newTestParser(t)

	expr, err := parser.Parse("pi = 22 / 7")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	assign, ok := expr.(*ast.Assignment)
	if !ok {
		t.Fatalf("Expected *ast.Assignment, got %T", expr)
	}

	if assign.Name != "pi" {
		t.Errorf("Expected target 'pi', got %q", assign.Name)
	}
	if assign.Pos.Line != 0 || assign.Pos.Column != 0 {
		t.Errorf("Expected assignment position 0:0, got %s", assign.Pos)
	}

	division, ok := assign.Value.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Expected *ast.BinaryExpr value, got %T", assign.Value)
	}
	if division.Op != ast.OpDivide {
		t.Errorf("Expected division, got %q", division.Op)
	}
	if division.Pos.Column != 8 {
		t.Errorf("Expected operator at column 8, got %d", division.Pos.Column)
	}

	if got := assign.String(); got != "pi = (22 / 7)" {
		t.Errorf("Expected 'pi = (22 / 7)', got %q", got)
	}
}

func TestParser_AssignmentOnlyOutermost(t *testing.T) {
	// '=' inside a right-hand side or after a non-identifier is trailing
	// input, not a nested assignment.
	tests := []string{
		"x = y = 2",
		"2 + x = 3",
		"(x) = 2",
	}

	parser := newTestParser(t)

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := parser.Parse(input)
			if err == nil {
				t.Fatal("Expected error but got none")
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}
			if pe.Expected != "EndOfInput" {
				t.Errorf("Expected 'EndOfInput' expectation, got %q", pe.Expected)
			}
		})
	}
}

func TestParser_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string // Expected token named by the error
		line     int
		column   int
	}{
		{
			name:     "Missing closing parenthesis",
			input:    "(5 - 4",
			expected: "RightParen",
			line:     0,
			column:   6,
		},
		{
			name:     "Missing right operand",
			input:    "5 +",
			expected: "Number, Identifier, or LeftParen",
			line:     0,
			column:   3,
		},
		{
			name:     "Leading operator",
			input:    "+ 5",
			expected: "Number, Identifier, or LeftParen",
			line:     0,
			column:   0,
		},
		{
			name:     "Trailing number",
			input:    "2 3",
			expected: "EndOfInput",
			line:     0,
			column:   2,
		},
		{
			name:     "Lone closing parenthesis",
			input:    ")",
			expected: "Number, Identifier, or LeftParen",
			line:     0,
			column:   0,
		},
		{
			name:     "Assignment without value",
			input:    "x = ",
			expected: "Number, Identifier, or LeftParen",
			line:     0,
			column:   4,
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "Number, Identifier, or LeftParen",
			line:     0,
			column:   0,
		},
		{
			name:     "Unbalanced closing parenthesis",
			input:    "2 + 3)",
			expected: "EndOfInput",
			line:     0,
			column:   5,
		},
	}

	parser := newTestParser(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			if err == nil {
				t.Fatal("Expected error but got none")
			}

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Expected *ParseError, got %T: %v", err, err)
			}
			if pe.Expected != tt.expected {
				t.Errorf("Expected expectation %q, got %q", tt.expected, pe.Expected)
			}
			if pe.Line != tt.line || pe.Column != tt.column {
				t.Errorf("Expected error at %d:%d, got %d:%d", tt.line, tt.column, pe.Line, pe.Column)
			}
		})
	}
}

func TestParser_LexErrorsPassThrough(t *testing.T) {
	parser := newTestParser(t)

	tests := []string{"5 @ 3", "2 + 5e", "a $ b"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := parser.Parse(input)
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !rwerror.HasCode(err, rwerror.CodeExprLex) {
				t.Errorf("Expected lex error code, got: %v", err)
			}

			var pe *ParseError
			if errors.As(err, &pe) {
				t.Errorf("Expected tokenization failure, got parse error: %v", pe)
			}
		})
	}
}

func TestParser_MaxInputLength(t *testing.T) {
	parser, err := New(Options{MaxInputLength: 8})
	if err != nil {
		t.Fatalf("Expected parser creation to succeed, got: %v", err)
	}

	if _, err := parser.Parse("1 + 2"); err != nil {
		t.Errorf("Expected short input to parse, got: %v", err)
	}

	_, err = parser.Parse("1 + 2 + 3 + 4")
	if err == nil {
		t.Fatal("Expected error for oversized input")
	}
	if !strings.Contains(err.Error(), "maximum length") {
		t.Errorf("Expected length error, got: %v", err)
	}
}

func TestParser_Positions(t *testing.T) {
	parser := newTestParser(t)

	expr, err := parser.Parse("2 + 3 * 4")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	sum, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Expected *ast.BinaryExpr root, got %T", expr)
	}
	if sum.Op != ast.OpAdd || sum.Pos.Column != 2 {
		t.Errorf("Expected '+' at column 2, got %q at %d", sum.Op, sum.Pos.Column)
	}

	product, ok := sum.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("Expected *ast.BinaryExpr right operand, got %T", sum.Right)
	}
	if product.Op != ast.OpMultiply || product.Pos.Column != 6 {
		t.Errorf("Expected '*' at column 6, got %q at %d", product.Op, product.Pos.Column)
	}

	if left := sum.Left.Position(); left.Column != 0 {
		t.Errorf("Expected left leaf at column 0, got %d", left.Column)
	}
	if right := product.Right.Position(); right.Column != 8 {
		t.Errorf("Expected right leaf at column 8, got %d", right.Column)
	}
}

func TestParser_ParenthesesProduceNoNode(t *testing.T) {
	parser := newTestParser(t)

	expr, err := parser.Parse("(pi)")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	ident, ok := expr.(*ast.Identifier)
	if !ok {
		t.Fatalf("Expected *ast.Identifier, got %T", expr)
	}
	if ident.Name != "pi" || ident.Pos.Column != 1 {
		t.Errorf("Expected 'pi' at column 1, got %q at %d", ident.Name, ident.Pos.Column)
	}
}

func TestParser_NumberLiterals(t *testing.T) {
	parser := newTestParser(t)

	expr, err := parser.Parse("2.5e2")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	num, ok := expr.(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("Expected *ast.NumberLiteral, got %T", expr)
	}
	if num.Value != 250 {
		t.Errorf("Expected value 250, got %v", num.Value)
	}
	if num.Raw != "2.5e2" {
		t.Errorf("Expected raw lexeme '2.5e2', got %q", num.Raw)
	}
}

func TestParser_ParseTokens(t *testing.T) {
	parser := newTestParser(t)

	tokens, err := NewLexer("1 + 2").Tokenize()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expr, err := parser.ParseTokens(tokens)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if got := expr.String(); got != "(1 + 2)" {
		t.Errorf("Expected '(1 + 2)', got %q", got)
	}

	if _, err := parser.ParseTokens(nil); err == nil {
		t.Error("Expected error for empty token sequence")
	}
}

func TestParser_Reuse(t *testing.T) {
	// One parser instance handles sequential inputs independently.
	parser := newTestParser(t)

	first, err := parser.Parse("1 + 2")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, err := parser.Parse("(("); err == nil {
		t.Fatal("Expected error for malformed input")
	}

	second, err := parser.Parse("3 * 4")
	if err != nil {
		t.Fatalf("Expected no error after failed parse, got: %v", err)
	}

	if first.String() != "(1 + 2)" || second.String() != "(3 * 4)" {
		t.Errorf("Expected independent results, got %q and %q", first.String(), second.String())
	}
}

func TestParseError_Format(t *testing.T) {
	parser := newTestParser(t)

	_, err := parser.Parse("(5 - 4")
	if err == nil {
		t.Fatal("Expected error but got none")
	}

	expected := "parse error at 0:6: expected RightParen, found EndOfInput"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestParser_TreeRendering(t *testing.T) {
	parser := newTestParser(t)

	expr, err := parser.Parse("pi = 22 / 7")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	expected := "Assignment(pi) [0:0]\n" +
		"  BinaryExpr(/) [0:8]\n" +
		"    NumberLiteral(22) [0:5]\n" +
		"    NumberLiteral(7) [0:10]\n"

	if got := ast.TreeString(expr); got != expected {
		t.Errorf("Expected tree:\n%s\ngot:\n%s", expected, got)
	}
}

func BenchmarkParser_Parse(b *testing.B) {
	parser, err := New(Options{})
	if err != nil {
		b.Fatalf("Expected parser creation to succeed, got: %v", err)
	}

	input := "result = (alpha + 42.5) * beta / 2e-3 - 7"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = parser.Parse(input)
	}
}
