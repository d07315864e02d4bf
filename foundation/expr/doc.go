// File: doc.go
// Title: Expression Package Documentation
// Description: Implements the arithmetic expression lexer, parser, AST,
//              and evaluator for the mRW platform. Expressions cover
//              arithmetic, comparisons, parentheses, and named variables
//              with assignment.
// Version: v0.1.0
// Created: 2026-07-19
// Modified: 2026-07-19
//
// Change History:
// - 2026-07-19 v0.1.0: Initial expression package documentation

/*
Package expr implements the arithmetic expression engine for the mRW platform.

Package: expr
Title: Arithmetic Expression Engine
Description: Provides tokenizing, parsing, AST generation, and evaluation
             for arithmetic expressions with comparisons, variables, and
             assignment. Designed for interactive calculator frontends
             and embedding in services.
Version: v0.1.0
Created: 2026-07-19
Modified: 2026-07-19

Change History:
- 2026-07-19 v0.1.0: Initial expression engine

Key Features:
  • Full arithmetic with standard precedence (+ - below * /)
  • Comparison operators yielding 1.0 (true) or 0.0 (false)
  • Parenthesized grouping to any depth
  • Named variables with assignment (name = expression)
  • IEEE 754 division semantics (division by zero yields Inf or NaN)
  • Position-carrying tokens, AST nodes, and errors (0-based line:column)
  • Token stream and AST tree rendering for inspection frontends

# Expression Language Overview

The engine accepts a single expression per input line. An expression is
either an assignment or a plain calculation.

## Basic Syntax Patterns

	2 + 3 * 4                # Arithmetic, multiplication binds tighter
	(2 + 3) * 4              # Parentheses override precedence
	10 - 3 - 2               # Left associative, evaluates to 5
	5 > 3                    # Comparison, evaluates to 1
	pi = 22 / 7              # Assignment, stores and yields the value
	radius * radius * pi     # Variables resolve against the environment

## Operators

Arithmetic operators, from loosest to tightest binding:

	== < <= > >=             # Comparisons (loosest, left associative)
	+ -                      # Addition and subtraction
	* /                      # Multiplication and division (tightest)

Comparisons produce 1.0 for true and 0.0 for false, so their results
compose with arithmetic: (5 > 3) + (2 > 1) evaluates to 2. Equality uses
an epsilon tolerance so that 0.1 + 0.2 == 0.3 holds; the ordering
operators compare exactly.

## Numbers and Identifiers

Numbers are unsigned decimal literals with optional fraction and optional
signed exponent: 42, 3.14, 5e3, 2.5e-2. A leading digit followed by a
dangling fraction or exponent marker (5. or 5e+) is rejected as a
malformed number. Identifiers start with a letter or underscore and
continue with letters, digits, or underscores.

# Basic Usage Examples

Initialize and use the expression engine:

	import "github.com/msto63/mRW/foundation/expr"

	// Create expression engine
	engine, err := expr.NewEngine()
	if err != nil {
		log.Fatal("Failed to create expression engine:", err)
	}

	// Evaluate an expression
	result, err := engine.Evaluate(context.Background(), "pi = 22 / 7")
	if err != nil {
		log.Printf("Evaluation failed: %v", err)
		return
	}

	fmt.Println(result.FormattedValue()) // 3.142857142857143

	// Variables persist in the engine environment
	result, _ = engine.Evaluate(context.Background(), "pi * 2")

Inspect the token stream or the parsed tree without evaluating:

	tokens, err := engine.Tokenize("pi = 22 / 7")
	fmt.Println(parser.FormatTokens(tokens))

	tree, err := engine.TreeString("pi = 22 / 7")
	fmt.Println(tree)

## Per-Session Environments

Services hosting many users keep one environment per session and pass it
explicitly:

	env := eval.NewDefaultEnvironment()
	result, err := engine.EvaluateWith(ctx, "x = 41 + 1", env)

The Environment type is not synchronized; callers either confine one
environment to one goroutine or serialize access themselves.

## Error Handling

All failures carry mRW Foundation error codes:

	result, err := engine.Evaluate(ctx, "(5 - 4")
	if err != nil {
		switch {
		case rwerror.HasCode(err, rwerror.CodeExprLex):
			// malformed number or unexpected character
		case rwerror.HasCode(err, rwerror.CodeExprParse):
			// syntax error, details carry expected/found and position
		case rwerror.HasCode(err, rwerror.CodeExprEval):
			// undefined variable, details carry name and position
		}
	}

Division by zero is not an error: 1/0 yields +Inf, (0-1)/0 yields -Inf,
and 0/0 yields NaN, following IEEE 754.

# Architecture Components

The engine follows a three-stage pipeline:

	Input String → Lexer → Tokens → Parser → AST → Evaluator → float64

The lexer (expr/parser) recognizes numbers and identifiers with finite
state machines and reports illegal input with exact positions. The
parser (expr/parser) builds the AST by recursive descent with one token
of lookahead. The evaluator (expr/eval) walks the tree against an
Environment holding the variable bindings.

All positions are 0-based line and column pairs counted in bytes from
the start of the input.

For runnable demonstrations see the examples directory.
*/
package expr
