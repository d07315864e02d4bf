// File: visitor.go
// Title: AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for AST traversal including
//              a base visitor with default traversal, a tree renderer, a
//              validation visitor, and a node collector.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial visitor implementations

package ast

import (
	"fmt"
	"strings"
)

// Visitor defines the interface for AST traversal
type Visitor interface {
	VisitNumberLiteral(node *NumberLiteral) interface{}
	VisitIdentifier(node *Identifier) interface{}
	VisitBinaryExpr(node *BinaryExpr) interface{}
	VisitAssignment(node *Assignment) interface{}
}

// BaseVisitor provides default implementations that traverse child nodes.
// Embed it and override only the methods you need.
type BaseVisitor struct{}

func (v *BaseVisitor) VisitNumberLiteral(node *NumberLiteral) interface{} {
	return nil
}

func (v *BaseVisitor) VisitIdentifier(node *Identifier) interface{} {
	return nil
}

func (v *BaseVisitor) VisitBinaryExpr(node *BinaryExpr) interface{} {
	if node.Left != nil {
		node.Left.Accept(v)
	}
	if node.Right != nil {
		node.Right.Accept(v)
	}
	return nil
}

func (v *BaseVisitor) VisitAssignment(node *Assignment) interface{} {
	if node.Value != nil {
		node.Value.Accept(v)
	}
	return nil
}

// TreeVisitor renders an AST as an indented tree, one node per line,
// each annotated with its source position:
//
//	Assignment(pi) [0:0]
//	  BinaryExpr(/) [0:8]
//	    NumberLiteral(22) [0:5]
//	    NumberLiteral(7) [0:10]
type TreeVisitor struct {
	buffer strings.Builder
	indent int
}

// NewTreeVisitor creates a new tree rendering visitor
func NewTreeVisitor() *TreeVisitor {
	return &TreeVisitor{}
}

// Result returns the rendered tree
func (v *TreeVisitor) Result() string {
	return v.buffer.String()
}

// Reset clears the visitor for reuse
func (v *TreeVisitor) Reset() {
	v.buffer.Reset()
	v.indent = 0
}

func (v *TreeVisitor) writeLine(label string, pos Position) {
	v.buffer.WriteString(strings.Repeat("  ", v.indent))
	v.buffer.WriteString(label)
	v.buffer.WriteString(fmt.Sprintf(" [%s]\n", pos.String()))
}

func (v *TreeVisitor) VisitNumberLiteral(node *NumberLiteral) interface{} {
	v.writeLine(fmt.Sprintf("NumberLiteral(%s)", node.String()), node.Pos)
	return nil
}

func (v *TreeVisitor) VisitIdentifier(node *Identifier) interface{} {
	v.writeLine(fmt.Sprintf("Identifier(%s)", node.Name), node.Pos)
	return nil
}

func (v *TreeVisitor) VisitBinaryExpr(node *BinaryExpr) interface{} {
	v.writeLine(fmt.Sprintf("BinaryExpr(%s)", node.Op), node.Pos)
	v.indent++
	if node.Left != nil {
		node.Left.Accept(v)
	}
	if node.Right != nil {
		node.Right.Accept(v)
	}
	v.indent--
	return nil
}

func (v *TreeVisitor) VisitAssignment(node *Assignment) interface{} {
	v.writeLine(fmt.Sprintf("Assignment(%s)", node.Name), node.Pos)
	v.indent++
	if node.Value != nil {
		node.Value.Accept(v)
	}
	v.indent--
	return nil
}

// ValidationVisitor walks the tree and collects validation errors
type ValidationVisitor struct {
	BaseVisitor
	errors []error
}

// NewValidationVisitor creates a new validation visitor
func NewValidationVisitor() *ValidationVisitor {
	return &ValidationVisitor{
		errors: make([]error, 0),
	}
}

// Errors returns all validation errors found
func (v *ValidationVisitor) Errors() []error {
	return v.errors
}

// HasErrors returns true if validation errors were found
func (v *ValidationVisitor) HasErrors() bool {
	return len(v.errors) > 0
}

// Reset clears all errors
func (v *ValidationVisitor) Reset() {
	v.errors = v.errors[:0]
}

func (v *ValidationVisitor) addError(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

func (v *ValidationVisitor) VisitNumberLiteral(node *NumberLiteral) interface{} {
	v.addError(node.Validate())
	return nil
}

func (v *ValidationVisitor) VisitIdentifier(node *Identifier) interface{} {
	if strings.TrimSpace(node.Name) == "" {
		v.addError(fmt.Errorf("identifier at %s has no name", node.Pos))
	}
	return nil
}

func (v *ValidationVisitor) VisitBinaryExpr(node *BinaryExpr) interface{} {
	if node.Left == nil {
		v.addError(fmt.Errorf("binary expression at %s has no left operand", node.Pos))
	}
	if node.Right == nil {
		v.addError(fmt.Errorf("binary expression at %s has no right operand", node.Pos))
	}
	if !IsArithmeticOp(node.Op) && !IsComparisonOp(node.Op) {
		v.addError(fmt.Errorf("binary expression at %s has unknown operator %q", node.Pos, node.Op))
	}
	return v.BaseVisitor.VisitBinaryExpr(node)
}

func (v *ValidationVisitor) VisitAssignment(node *Assignment) interface{} {
	if strings.TrimSpace(node.Name) == "" {
		v.addError(fmt.Errorf("assignment at %s has no target name", node.Pos))
	}
	if node.Value == nil {
		v.addError(fmt.Errorf("assignment at %s has no value", node.Pos))
	}
	return v.BaseVisitor.VisitAssignment(node)
}

// CollectorVisitor collects nodes by type during traversal
type CollectorVisitor struct {
	BaseVisitor
	Numbers     []*NumberLiteral
	Identifiers []*Identifier
	BinaryExprs []*BinaryExpr
	Assignments []*Assignment
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{
		Numbers:     make([]*NumberLiteral, 0),
		Identifiers: make([]*Identifier, 0),
		BinaryExprs: make([]*BinaryExpr, 0),
		Assignments: make([]*Assignment, 0),
	}
}

// Reset clears all collected nodes
func (v *CollectorVisitor) Reset() {
	v.Numbers = v.Numbers[:0]
	v.Identifiers = v.Identifiers[:0]
	v.BinaryExprs = v.BinaryExprs[:0]
	v.Assignments = v.Assignments[:0]
}

func (v *CollectorVisitor) VisitNumberLiteral(node *NumberLiteral) interface{} {
	v.Numbers = append(v.Numbers, node)
	return nil
}

func (v *CollectorVisitor) VisitIdentifier(node *Identifier) interface{} {
	v.Identifiers = append(v.Identifiers, node)
	return nil
}

func (v *CollectorVisitor) VisitBinaryExpr(node *BinaryExpr) interface{} {
	v.BinaryExprs = append(v.BinaryExprs, node)
	return v.BaseVisitor.VisitBinaryExpr(node)
}

func (v *CollectorVisitor) VisitAssignment(node *Assignment) interface{} {
	v.Assignments = append(v.Assignments, node)
	return v.BaseVisitor.VisitAssignment(node)
}

// TreeString renders a node and its children as an indented tree
func TreeString(node Node) string {
	if node == nil {
		return ""
	}
	visitor := NewTreeVisitor()
	node.Accept(visitor)
	return visitor.Result()
}

// ValidateTree validates a node and all its children
func ValidateTree(node Node) []error {
	if node == nil {
		return []error{fmt.Errorf("node is nil")}
	}
	visitor := NewValidationVisitor()
	node.Accept(visitor)
	return visitor.Errors()
}

// CollectNodes gathers all nodes of the tree grouped by type
func CollectNodes(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	if node != nil {
		node.Accept(visitor)
	}
	return visitor
}

// VariableNames returns the distinct names of all identifiers referenced in
// the tree, in first-seen order. Assignment targets are not included.
func VariableNames(node Node) []string {
	collector := CollectNodes(node)
	seen := make(map[string]bool)
	names := make([]string, 0, len(collector.Identifiers))
	for _, ident := range collector.Identifiers {
		if !seen[ident.Name] {
			seen[ident.Name] = true
			names = append(names, ident.Name)
		}
	}
	return names
}
