// File: doc.go
// Title: Expression AST Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed expressions. Provides visitor patterns
//              and tree rendering utilities.
// Version: v0.1.0
// Created: 2026-07-16
// Modified: 2026-07-16
//
// Change History:
// - 2026-07-16 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for expressions.

This package provides the node definitions, visitor patterns, and utilities
for representing parsed expressions as structured data. Nodes carry
zero-based source positions so that later pipeline stages can report
errors pointing at the offending place in the input.

The AST enables:
  • Structured representation of arithmetic and comparison expressions
  • Readable tree rendering with source positions for diagnostics
  • Collection of referenced variables before evaluation
  • Static validation independent of evaluation

The node types mirror the expression grammar: NumberLiteral and Identifier
are the leaves, BinaryExpr covers the arithmetic and comparison operators,
and Assignment binds the value of an expression to a variable name.
*/
package ast
