// File: eval.go
// Title: Expression Tree Evaluator
// Description: Implements recursive evaluation of expression ASTs against a
//              variable environment. Covers arithmetic with IEEE semantics,
//              comparisons yielding 1.0/0.0, and assignment.
// Version: v0.1.0
// Created: 2026-07-18
// Modified: 2026-07-18
//
// Change History:
// - 2026-07-18 v0.1.0: Initial evaluator implementation

package eval

import (
	"fmt"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr/ast"
	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
)

// Evaluator computes the numeric value of expression trees. It carries no
// state between calls; all variable state lives in the Environment passed
// to Eval.
type Evaluator struct {
	logger  *rwlog.Logger
	options Options
}

// Options configures evaluator behavior
type Options struct {
	Logger *rwlog.Logger
}

// New creates a new evaluator with the given options
func New(opts Options) (*Evaluator, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = rwlog.GetDefault()
	}

	return &Evaluator{
		logger:  opts.Logger.WithField("component", "expr-eval"),
		options: opts,
	}, nil
}

// Eval evaluates an expression tree against the environment and returns
// the numeric result. Assignments store their value in the environment
// before yielding it.
func (ev *Evaluator) Eval(node ast.Expr, env *Environment) (float64, error) {
	if node == nil {
		return 0, rwerror.New("cannot evaluate nil expression").
			WithCode(rwerror.CodeInternal).
			WithOperation("evaluate")
	}
	if env == nil {
		return 0, rwerror.New("cannot evaluate without environment").
			WithCode(rwerror.CodeInternal).
			WithOperation("evaluate")
	}

	ev.logger.Debug("starting expression evaluation", rwlog.Fields{
		"expression": node.String(),
	})

	value, err := ev.eval(node, env)
	if err != nil {
		ev.logger.Warn("expression evaluation failed", rwlog.Fields{
			"expression": node.String(),
			"error":      err.Error(),
		})
		return 0, err
	}

	ev.logger.Debug("expression evaluation completed", rwlog.Fields{
		"result": value,
	})

	return value, nil
}

// eval dispatches on the node type and recurses through the tree
func (ev *Evaluator) eval(node ast.Expr, env *Environment) (float64, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return n.Value, nil

	case *ast.Identifier:
		value, ok := env.Get(n.Name)
		if !ok {
			return 0, undefinedVariable(n)
		}
		return value, nil

	case *ast.BinaryExpr:
		return ev.evalBinary(n, env)

	case *ast.Assignment:
		value, err := ev.eval(n.Value, env)
		if err != nil {
			return 0, err
		}
		env.Set(n.Name, value)
		return value, nil

	default:
		return 0, rwerror.New(fmt.Sprintf("unknown expression node %T", node)).
			WithCode(rwerror.CodeInternal).
			WithOperation("evaluate")
	}
}

// evalBinary evaluates both operands, then applies the operator.
// Arithmetic follows IEEE 754: division by zero yields an infinity or
// NaN, never an error. Comparisons yield 1.0 for true and 0.0 for false
// so they compose with arithmetic; equality tolerates the rounding noise
// of prior arithmetic via the epsilon comparison.
func (ev *Evaluator) evalBinary(node *ast.BinaryExpr, env *Environment) (float64, error) {
	left, err := ev.eval(node.Left, env)
	if err != nil {
		return 0, err
	}

	right, err := ev.eval(node.Right, env)
	if err != nil {
		return 0, err
	}

	switch node.Op {
	case ast.OpAdd:
		return left + right, nil
	case ast.OpSubtract:
		return left - right, nil
	case ast.OpMultiply:
		return left * right, nil
	case ast.OpDivide:
		return left / right, nil
	case ast.OpEqual:
		return boolValue(rwmathx.Equal(left, right)), nil
	case ast.OpLess:
		return boolValue(left < right), nil
	case ast.OpLessOrEqual:
		return boolValue(left <= right), nil
	case ast.OpGreater:
		return boolValue(left > right), nil
	case ast.OpGreaterOrEqual:
		return boolValue(left >= right), nil
	default:
		return 0, rwerror.New(fmt.Sprintf("unknown operator %q at %s", node.Op, node.Pos)).
			WithCode(rwerror.CodeInternal).
			WithOperation("evaluate").
			WithDetail("operator", node.Op)
	}
}

// undefinedVariable builds the error for a reference to an unbound name
func undefinedVariable(node *ast.Identifier) error {
	return rwerror.New(fmt.Sprintf("undefined variable %q at %s", node.Name, node.Pos)).
		WithCode(rwerror.CodeExprEval).
		WithOperation("evaluate").
		WithDetail("variable", node.Name).
		WithDetail("line", node.Pos.Line).
		WithDetail("column", node.Pos.Column).
		WithDetail("offset", node.Pos.Offset)
}

// boolValue converts a comparison result into its numeric form
func boolValue(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
