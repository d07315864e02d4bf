// Package integration provides integration tests for the mRW Foundation library.
//
// Package: integration
// Title: mRW Foundation Integration Tests
// Description: This package contains integration tests that verify the correct
//              interaction between the expression pipeline stages (lexer,
//              parser, evaluator) and the surrounding foundation modules
//              (error, log, config, mathx, stringx), ensuring consistent
//              behavior, error handling, and performance characteristics
//              across module boundaries.
// Version: v0.1.0
// Created: 2026-07-25
// Modified: 2026-07-25
//
// Change History:
// - 2026-07-25 v0.1.0: Initial implementation of integration test suite
//
// Test Categories:
//
// Pipeline Integration Tests (pipeline_integration_test.go):
// - Full lex → parse → eval flow through the expression engine facade
// - Agreement between the facade and the individually driven stages
// - Position consistency from tokens through AST nodes
// - Configuration-driven engine construction ([variables] preseeds)
// - Environment sharing across sequential evaluations
// - Engine recovery after failed evaluations
//
// Error Integration Tests (error_integration_test.go):
// - Error code assignment per pipeline stage (EXPR_LEX, EXPR_PARSE, EXPR_EVAL)
// - Source position preservation through error wrapping
// - Severity consistency across the three stages
// - HTTP status mapping used by the evaluation server
// - Error chain unwrapping (errors.As through wrapped parse errors)
//
// Performance Integration Tests (performance_test.go):
// - Stage and end-to-end evaluation benchmarks
// - Memory allocation analysis
// - Scalability with nesting depth and operand chain length
// - Concurrency benchmarks with one engine per goroutine
//
// Running the Tests:
//
//	go test ./test/integration/...
//	go test -bench=. ./test/integration/...
//
// The tests in this package only exercise foundation modules; they start no
// servers and require no external processes.
package integration
