// Package examples provides expression language examples and demonstrations
// for the mRW (meinRECHENWERK) Foundation.
//
// Package: examples
// Title: Expression Language Examples and Demonstrations
// Description: This package contains practical examples for the mRW
//              expression engine covering basic arithmetic, operator
//              precedence, comparisons, variables with assignment, and
//              error scenarios. It also demonstrates driving the engine
//              facade end to end.
// Version: v0.1.0
// Created: 2026-07-19
// Modified: 2026-07-19
//
// The examples package serves multiple purposes:
//
// 1. **Educational Resource**: Worked examples for learning the expression
//    syntax from simple arithmetic to variable-based calculations.
//
// 2. **Reference Implementation**: Demonstrations of how the expression
//    engine integrates with mRW Foundation modules including error
//    handling and logging.
//
// 3. **Testing Aid**: The example expressions double as input corpora for
//    exercising lexer, parser, and evaluator behavior.
//
// ## Package Structure
//
// ### Syntax Examples (basic_usage.go)
//
// Grouped expression snippets covering the language surface:
//   - Basic arithmetic (2 + 3 * 4)
//   - Precedence and grouping ((2 + 3) * 4)
//   - Comparison operators yielding 1.0 or 0.0 (5 > 3)
//   - Variables and assignment (pi = 22 / 7)
//   - Scientific notation literals (2.5e-2)
//   - Inputs that produce lexer, parser, or evaluation errors
//
// Example usage:
//
//	demo := NewSyntaxDemo()
//	demo.RunAllDemonstrations()
//	expressions := demo.GetAllExpressions()
//
// ### Engine Walkthrough (engine_demo.go)
//
// Drives the engine facade through a complete calculator session:
//   - Engine construction with options
//   - Evaluation with persistent variables
//   - Token stream and AST tree inspection
//   - Error handling by Foundation error code
//
// Example usage:
//
//	walkthrough := NewEngineWalkthrough()
//	if err := walkthrough.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package examples
