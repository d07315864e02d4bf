// File: basic_usage.go
// Package: examples
// Title: Expression Syntax Examples
// Description: Demonstrates the expression language surface with grouped
//              example expressions for arithmetic, precedence, comparisons,
//              variables, and error-producing inputs.
// Version: v0.1.0
// Created: 2026-07-19
// Modified: 2026-07-19

package examples

import (
	"fmt"
	"strings"
)

// SyntaxDemo demonstrates the expression language patterns
type SyntaxDemo struct {
	expressions []string
}

// NewSyntaxDemo creates a new demonstration instance
func NewSyntaxDemo() *SyntaxDemo {
	return &SyntaxDemo{
		expressions: make([]string, 0),
	}
}

// BasicArithmetic demonstrates the four arithmetic operators
func (demo *SyntaxDemo) BasicArithmetic() []string {
	examples := []string{
		// Plain operations
		"2 + 3",
		"10 - 4",
		"6 * 7",
		"22 / 7",

		// Left associativity
		"10 - 3 - 2",   // evaluates to 5, not 9
		"100 / 10 / 2", // evaluates to 5, not 20

		// Division by zero follows IEEE 754
		"1 / 0",       // +Inf
		"(0 - 1) / 0", // -Inf
		"0 / 0",       // NaN
	}

	demo.logExamples("Basic Arithmetic", examples)
	return examples
}

// PrecedenceAndGrouping demonstrates operator binding and parentheses
func (demo *SyntaxDemo) PrecedenceAndGrouping() []string {
	examples := []string{
		// Multiplication and division bind tighter
		"2 + 3 * 4",   // 14
		"20 - 10 / 2", // 15

		// Parentheses override precedence
		"(2 + 3) * 4",         // 20
		"(20 - 10) / 2",       // 5
		"((1 + 2) * (3 + 4))", // 21

		// Nesting to any depth
		"(((42)))",
	}

	demo.logExamples("Precedence and Grouping", examples)
	return examples
}

// Comparisons demonstrates comparison operators and their numeric results
func (demo *SyntaxDemo) Comparisons() []string {
	examples := []string{
		// Results are 1.0 for true, 0.0 for false
		"5 > 3",  // 1
		"5 < 3",  // 0
		"4 >= 4", // 1
		"4 <= 3", // 0
		"7 == 7", // 1

		// Comparisons bind loosest
		"2 + 3 == 5", // 1
		"5 > 3 + 1",  // 1

		// Results compose with arithmetic
		"(5 > 3) + (2 > 1)", // 2

		// Equality is epsilon tolerant
		"0.1 + 0.2 == 0.3", // 1
	}

	demo.logExamples("Comparisons", examples)
	return examples
}

// VariablesAndAssignment demonstrates named variables
func (demo *SyntaxDemo) VariablesAndAssignment() []string {
	examples := []string{
		// Assignment stores and yields the value
		"pi = 22 / 7",
		"radius = 5",
		"area = pi * radius * radius",

		// Variables feed later expressions
		"area / 2",
		"radius = radius + 1",

		// Identifier forms
		"snake_case_name = 1",
		"_leading = 2",
		"mixed9 = 3",
	}

	demo.logExamples("Variables and Assignment", examples)
	return examples
}

// ScientificNotation demonstrates number literal forms
func (demo *SyntaxDemo) ScientificNotation() []string {
	examples := []string{
		// Integer and fraction
		"42",
		"3.14",
		"0.5",

		// Exponent forms
		"5e3",   // 5000
		"2.5e2", // 250
		"1e-3",  // 0.001
		"1.5E2", // 150, capital marker
	}

	demo.logExamples("Scientific Notation", examples)
	return examples
}

// ErrorCases demonstrates inputs rejected by each pipeline stage
func (demo *SyntaxDemo) ErrorCases() []string {
	examples := []string{
		// Lexer errors, unexpected characters
		"5 @ 3",
		"a & b",

		// Lexer errors, malformed numbers
		"5.",
		"5e",
		"5e+",

		// Parser errors
		"(5 - 4",    // missing closing parenthesis
		"5 +",       // missing operand
		"2 3",       // trailing token
		"x = y = 2", // assignment only at the outermost level

		// Evaluation errors
		"unknown_var + 1", // unbound variable
	}

	demo.logExamples("Error Cases", examples)
	return examples
}

// logExamples logs examples with proper formatting
func (demo *SyntaxDemo) logExamples(title string, examples []string) {
	fmt.Printf("\n=== %s ===\n", title)
	for i, example := range examples {
		if strings.TrimSpace(example) == "" {
			fmt.Println()
		} else {
			fmt.Printf("%2d. %s\n", i+1, example)
		}
	}
	demo.expressions = append(demo.expressions, examples...)
}

// GetAllExpressions returns all demonstration expressions
func (demo *SyntaxDemo) GetAllExpressions() []string {
	return demo.expressions
}

// RunAllDemonstrations prints all syntax demonstrations
func (demo *SyntaxDemo) RunAllDemonstrations() {
	fmt.Println("Expression Syntax Demonstration")
	fmt.Println("===============================")

	demo.BasicArithmetic()
	demo.PrecedenceAndGrouping()
	demo.Comparisons()
	demo.VariablesAndAssignment()
	demo.ScientificNotation()
	demo.ErrorCases()

	fmt.Printf("\nTotal examples demonstrated: %d\n", len(demo.expressions))
}
