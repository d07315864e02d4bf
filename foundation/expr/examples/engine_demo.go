// File: engine_demo.go
// Package: examples
// Title: Expression Engine Walkthrough
// Description: Drives the expression engine facade through a complete
//              calculator session including evaluation with persistent
//              variables, token and tree inspection, and error handling
//              by Foundation error code.
// Version: v0.1.0
// Created: 2026-07-19
// Modified: 2026-07-19

package examples

import (
	"context"
	"fmt"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	"github.com/msto63/mRW/foundation/expr"
	"github.com/msto63/mRW/foundation/expr/parser"
)

// EngineWalkthrough demonstrates the engine facade end to end
type EngineWalkthrough struct {
	engine *expr.Engine
}

// NewEngineWalkthrough creates a walkthrough with a fresh engine
func NewEngineWalkthrough() *EngineWalkthrough {
	return &EngineWalkthrough{}
}

// Run executes the complete walkthrough
func (w *EngineWalkthrough) Run(ctx context.Context) error {
	engine, err := expr.NewEngine()
	if err != nil {
		return fmt.Errorf("failed to create expression engine: %w", err)
	}
	w.engine = engine

	if err := w.calculatorSession(ctx); err != nil {
		return err
	}

	if err := w.inspectionOutput(); err != nil {
		return err
	}

	w.errorHandling(ctx)
	return nil
}

// calculatorSession evaluates a sequence of expressions sharing variables
func (w *EngineWalkthrough) calculatorSession(ctx context.Context) error {
	fmt.Println("\n=== Calculator Session ===")

	session := []string{
		"radius = 5",
		"circumference = 2 * pi * radius",
		"area = pi * radius * radius",
		"area / circumference",
		"area > 75",
	}

	for _, expression := range session {
		result, err := w.engine.Evaluate(ctx, expression)
		if err != nil {
			return fmt.Errorf("session step %q failed: %w", expression, err)
		}

		fmt.Printf("%-32s => %s\n", expression, result.FormattedValue())
	}

	return nil
}

// inspectionOutput shows the token stream and AST tree for one input
func (w *EngineWalkthrough) inspectionOutput() error {
	fmt.Println("\n=== Inspection Output ===")

	const input = "pi = 22 / 7"

	tokens, err := w.engine.Tokenize(input)
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	fmt.Println("Tokens:")
	fmt.Println(parser.FormatTokens(tokens))

	tree, err := w.engine.TreeString(input)
	if err != nil {
		return fmt.Errorf("tree rendering failed: %w", err)
	}

	fmt.Println("Tree:")
	fmt.Print(tree)
	return nil
}

// errorHandling demonstrates dispatching on Foundation error codes
func (w *EngineWalkthrough) errorHandling(ctx context.Context) {
	fmt.Println("\n=== Error Handling ===")

	inputs := []string{
		"5 @ 3",
		"(5 - 4",
		"unknown_var + 1",
	}

	for _, input := range inputs {
		_, err := w.engine.Evaluate(ctx, input)
		if err == nil {
			fmt.Printf("%-18s => unexpected success\n", input)
			continue
		}

		var stage string
		switch {
		case rwerror.HasCode(err, rwerror.CodeExprLex):
			stage = "lexer"
		case rwerror.HasCode(err, rwerror.CodeExprParse):
			stage = "parser"
		case rwerror.HasCode(err, rwerror.CodeExprEval):
			stage = "evaluator"
		default:
			stage = "unknown"
		}

		fmt.Printf("%-18s => %s error: %v\n", input, stage, err)
	}
}
