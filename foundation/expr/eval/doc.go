// File: doc.go
// Title: Expression Evaluator Package Documentation
// Description: Implements the evaluation stage of expression processing.
//              Computes numeric results from expression ASTs against a
//              persistent variable environment.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial evaluator implementation

/*
Package eval computes the numeric value of parsed expressions.

Evaluation walks the AST recursively: number literals yield their value,
identifiers are looked up in the Environment, binary expressions evaluate
both operands and apply the operator, and assignments store the value of
their right-hand side in the Environment before yielding it.

Arithmetic follows IEEE 754 double precision throughout. Division by zero
produces an infinity or NaN instead of an error, matching standard
floating-point semantics. Comparisons yield 1.0 for true and 0.0 for
false so their results compose with arithmetic; equality uses the epsilon
comparison from the mathx package to absorb rounding noise, while the
ordering comparisons are exact.

The only evaluation failure is a reference to an unbound variable, which
is reported with the variable name and its source position.

The Environment is a plain mutable mapping owned by the caller. Sharing
one Environment across sequential evaluations makes assignments persist;
sharing across goroutines requires external synchronization.
*/
package eval
