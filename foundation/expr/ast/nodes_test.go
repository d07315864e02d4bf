// File: nodes_test.go
// Title: Expression AST Node Unit Tests
// Description: Unit tests for AST node types covering string rendering,
//              position reporting, validation, and the operator predicates.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial node test suite

package ast

import (
	"strings"
	"testing"
)

// Helper functions for creating test AST nodes

func createDivisionExpr() *Assignment {
	// pi = 22 / 7
	return &Assignment{
		Name: "pi",
		Value: &BinaryExpr{
			Left:  &NumberLiteral{Value: 22, Raw: "22", Pos: Position{Line: 0, Column: 5, Offset: 5}},
			Op:    OpDivide,
			Right: &NumberLiteral{Value: 7, Raw: "7", Pos: Position{Line: 0, Column: 10, Offset: 10}},
			Pos:   Position{Line: 0, Column: 8, Offset: 8},
		},
		Pos: Position{Line: 0, Column: 0, Offset: 0},
	}
}

func createNestedExpr() Expr {
	// (2 + 3) * 4
	return &BinaryExpr{
		Left: &BinaryExpr{
			Left:  &NumberLiteral{Value: 2, Raw: "2", Pos: Position{Line: 0, Column: 1, Offset: 1}},
			Op:    OpAdd,
			Right: &NumberLiteral{Value: 3, Raw: "3", Pos: Position{Line: 0, Column: 5, Offset: 5}},
			Pos:   Position{Line: 0, Column: 3, Offset: 3},
		},
		Op:    OpMultiply,
		Right: &NumberLiteral{Value: 4, Raw: "4", Pos: Position{Line: 0, Column: 10, Offset: 10}},
		Pos:   Position{Line: 0, Column: 8, Offset: 8},
	}
}

func TestPosition_String(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		expected string
	}{
		{"Origin", Position{Line: 0, Column: 0, Offset: 0}, "0:0"},
		{"Mid line", Position{Line: 0, Column: 8, Offset: 8}, "0:8"},
		{"Second line", Position{Line: 1, Column: 3, Offset: 15}, "1:3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.String(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestNumberLiteral_String(t *testing.T) {
	tests := []struct {
		name     string
		node     *NumberLiteral
		expected string
	}{
		{
			name:     "Raw lexeme preserved",
			node:     &NumberLiteral{Value: 5.1e3, Raw: "5.1e3"},
			expected: "5.1e3",
		},
		{
			name:     "Integer without raw",
			node:     &NumberLiteral{Value: 42},
			expected: "42",
		},
		{
			name:     "Fraction without raw",
			node:     &NumberLiteral{Value: 2.5},
			expected: "2.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestBinaryExpr_String(t *testing.T) {
	tests := []struct {
		name     string
		expr     Expr
		expected string
	}{
		{
			name: "Simple addition",
			expr: &BinaryExpr{
				Left:  &NumberLiteral{Value: 2, Raw: "2"},
				Op:    OpAdd,
				Right: &NumberLiteral{Value: 3, Raw: "3"},
			},
			expected: "(2 + 3)",
		},
		{
			name:     "Nested multiplication",
			expr:     createNestedExpr(),
			expected: "((2 + 3) * 4)",
		},
		{
			name: "Comparison",
			expr: &BinaryExpr{
				Left:  &Identifier{Name: "x"},
				Op:    OpGreaterOrEqual,
				Right: &NumberLiteral{Value: 10, Raw: "10"},
			},
			expected: "(x >= 10)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestAssignment_String(t *testing.T) {
	assign := createDivisionExpr()
	expected := "pi = (22 / 7)"
	if got := assign.String(); got != expected {
		t.Errorf("Expected '%s', got '%s'", expected, got)
	}
}

func TestNode_Position(t *testing.T) {
	assign := createDivisionExpr()

	if pos := assign.Position(); pos.Line != 0 || pos.Column != 0 {
		t.Errorf("Expected assignment position 0:0, got %s", pos)
	}

	binary, ok := assign.Value.(*BinaryExpr)
	if !ok {
		t.Fatalf("Expected *BinaryExpr value, got %T", assign.Value)
	}
	if pos := binary.Position(); pos.Column != 8 {
		t.Errorf("Expected operator position column 8, got %d", pos.Column)
	}
	if pos := binary.Left.Position(); pos.Column != 5 {
		t.Errorf("Expected left operand position column 5, got %d", pos.Column)
	}
}

func TestNode_Validate(t *testing.T) {
	tests := []struct {
		name    string
		node    Node
		wantErr bool
	}{
		{
			name:    "Valid assignment",
			node:    createDivisionExpr(),
			wantErr: false,
		},
		{
			name:    "Valid number",
			node:    &NumberLiteral{Value: 5, Raw: "5"},
			wantErr: false,
		},
		{
			name:    "Identifier without name",
			node:    &Identifier{Name: ""},
			wantErr: true,
		},
		{
			name: "Binary expression without left operand",
			node: &BinaryExpr{
				Left:  nil,
				Op:    OpAdd,
				Right: &NumberLiteral{Value: 5, Raw: "5"},
			},
			wantErr: true,
		},
		{
			name: "Binary expression without right operand",
			node: &BinaryExpr{
				Left:  &NumberLiteral{Value: 5, Raw: "5"},
				Op:    OpAdd,
				Right: nil,
			},
			wantErr: true,
		},
		{
			name: "Binary expression with unknown operator",
			node: &BinaryExpr{
				Left:  &NumberLiteral{Value: 5, Raw: "5"},
				Op:    "%",
				Right: &NumberLiteral{Value: 3, Raw: "3"},
			},
			wantErr: true,
		},
		{
			name: "Assignment without target",
			node: &Assignment{
				Name:  "",
				Value: &NumberLiteral{Value: 5, Raw: "5"},
			},
			wantErr: true,
		},
		{
			name: "Assignment without value",
			node: &Assignment{
				Name:  "x",
				Value: nil,
			},
			wantErr: true,
		},
		{
			name: "Nested invalid operand",
			node: &BinaryExpr{
				Left: &BinaryExpr{
					Left:  &Identifier{Name: ""},
					Op:    OpAdd,
					Right: &NumberLiteral{Value: 1, Raw: "1"},
				},
				Op:    OpMultiply,
				Right: &NumberLiteral{Value: 2, Raw: "2"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.node.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no validation error but got: %v", err)
			}
		})
	}
}

func TestOperatorPredicates(t *testing.T) {
	arithmetic := []string{OpAdd, OpSubtract, OpMultiply, OpDivide}
	comparison := []string{OpEqual, OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual}

	for _, op := range arithmetic {
		if !IsArithmeticOp(op) {
			t.Errorf("Expected %q to be arithmetic", op)
		}
		if IsComparisonOp(op) {
			t.Errorf("Expected %q not to be a comparison", op)
		}
	}

	for _, op := range comparison {
		if !IsComparisonOp(op) {
			t.Errorf("Expected %q to be a comparison", op)
		}
		if IsArithmeticOp(op) {
			t.Errorf("Expected %q not to be arithmetic", op)
		}
	}

	for _, op := range []string{"", "=", "!=", "%", "AND"} {
		if IsArithmeticOp(op) || IsComparisonOp(op) {
			t.Errorf("Expected %q to be rejected by both predicates", op)
		}
	}
}

func TestValidate_ErrorMessages(t *testing.T) {
	expr := &BinaryExpr{
		Left:  nil,
		Op:    OpAdd,
		Right: &NumberLiteral{Value: 1, Raw: "1"},
	}

	err := expr.Validate()
	if err == nil {
		t.Fatal("Expected validation error")
	}
	if !strings.Contains(err.Error(), "left operand") {
		t.Errorf("Expected error to mention left operand, got: %v", err)
	}
}
