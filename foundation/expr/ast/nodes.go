// File: nodes.go
// Title: Expression AST Node Definitions
// Description: Defines all AST node types for representing parsed expressions
//              including number literals, identifiers, binary operations, and
//              assignments. Provides string representations and validation.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact string representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic validation of the node
	Validate() error
}

// Position represents a position in the source text.
// Line and Column are zero-based: the first character of the input
// is at 0:0. Offset is the byte offset from the start of the input.
type Position struct {
	Line   int // Line number (0-based)
	Column int // Column number (0-based)
	Offset int // Byte offset (0-based)
}

// String renders the position as "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Expr represents the base interface for all expression nodes
type Expr interface {
	Node
	exprNode() // marker method
}

// Operator values used by BinaryExpr. The set is closed: the parser only
// ever emits these nine, and the evaluator matches them exhaustively.
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"

	OpEqual          = "=="
	OpLess           = "<"
	OpLessOrEqual    = "<="
	OpGreater        = ">"
	OpGreaterOrEqual = ">="
)

// IsArithmeticOp reports whether op is one of + - * /
func IsArithmeticOp(op string) bool {
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// IsComparisonOp reports whether op is one of == < <= > >=
func IsComparisonOp(op string) bool {
	switch op {
	case OpEqual, OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual:
		return true
	}
	return false
}

// NumberLiteral represents a numeric literal
type NumberLiteral struct {
	Value float64  // Parsed numeric value
	Raw   string   // Original lexeme, empty for synthesized nodes
	Pos   Position // Source position
}

// Identifier represents a variable reference
type Identifier struct {
	Name string   // Identifier name
	Pos  Position // Source position
}

// BinaryExpr represents a binary operation (arithmetic or comparison).
// Pos is the position of the operator, not of the left operand.
type BinaryExpr struct {
	Left  Expr     // Left operand
	Op    string   // One of the Op* constants
	Right Expr     // Right operand
	Pos   Position // Source position of the operator
}

// Assignment represents storing an expression result under a name.
// Pos is the position of the assigned identifier.
type Assignment struct {
	Name  string   // Target variable name
	Value Expr     // Right-hand side expression
	Pos   Position // Source position of the identifier
}

// Implementation of Node interface for NumberLiteral

func (n *NumberLiteral) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return rwmathx.FormatValue(n.Value)
}

func (n *NumberLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumberLiteral(n)
}

func (n *NumberLiteral) Position() Position {
	return n.Pos
}

func (n *NumberLiteral) Validate() error {
	return nil // Any float64 is a valid literal, including infinities
}

func (n *NumberLiteral) exprNode() {}

// Implementation of Node interface for Identifier

func (i *Identifier) String() string {
	return i.Name
}

func (i *Identifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitIdentifier(i)
}

func (i *Identifier) Position() Position {
	return i.Pos
}

func (i *Identifier) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

func (i *Identifier) exprNode() {}

// Implementation of Node interface for BinaryExpr

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

func (b *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(b)
}

func (b *BinaryExpr) Position() Position {
	return b.Pos
}

func (b *BinaryExpr) Validate() error {
	if b.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if b.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if !IsArithmeticOp(b.Op) && !IsComparisonOp(b.Op) {
		return fmt.Errorf("unknown operator %q", b.Op)
	}

	if err := b.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := b.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (b *BinaryExpr) exprNode() {}

// Implementation of Node interface for Assignment

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.String())
}

func (a *Assignment) Accept(visitor Visitor) interface{} {
	return visitor.VisitAssignment(a)
}

func (a *Assignment) Position() Position {
	return a.Pos
}

func (a *Assignment) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("assignment target is required")
	}
	if a.Value == nil {
		return fmt.Errorf("assignment value is required")
	}
	if err := a.Value.Validate(); err != nil {
		return fmt.Errorf("assignment value: %w", err)
	}
	return nil
}

func (a *Assignment) exprNode() {}
