// File: doc.go
// Title: Expression Parser Package Documentation
// Description: Implements the lexical analyzer and parser for expressions.
//              Converts expression strings into structured AST
//              representations with positional error reporting.
// Version: v0.1.0
// Created: 2026-07-17
// Modified: 2026-07-17
//
// Change History:
// - 2026-07-17 v0.1.0: Initial parser implementation

/*
Package parser provides lexical analysis and parsing for expressions.

This package implements the first two stages of the expression pipeline.
It includes:

  • Finite state machines recognizing number and identifier lexemes
  • A tokenizer producing a positional token stream
  • A recursive descent parser for the expression grammar
  • Error reporting carrying zero-based line and column information

The lexer scans the complete input into a token sequence ending in one
EndOfInput token, or fails on the first character it cannot place in any
token. Numbers support fractional parts and scientific notation; a
dangling fraction dot or exponent marker fails the whole lexeme rather
than splitting it.

The parser encodes operator precedence in the nesting of its grammar
levels: comparisons bind loosest, then addition and subtraction, then
multiplication and division, with parentheses grouping at the innermost
level. All binary operators fold left-associatively. Assignment is
recognized only as the outermost form, when an identifier is directly
followed by '='.
*/
package parser
