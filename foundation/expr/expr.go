// File: expr.go
// Title: Expression Engine Interface
// Description: Provides the main expression engine and high-level API for
//              tokenizing, parsing, and evaluating arithmetic expressions.
//              Integrates lexer, parser, AST, and evaluator components.
// Version: v0.1.0
// Created: 2026-07-19
// Modified: 2026-07-19
//
// Change History:
// - 2026-07-19 v0.1.0: Initial expression engine implementation

package expr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	rwerror "github.com/msto63/mRW/foundation/core/error"
	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr/ast"
	"github.com/msto63/mRW/foundation/expr/eval"
	"github.com/msto63/mRW/foundation/expr/parser"
	rwmathx "github.com/msto63/mRW/foundation/utils/mathx"
	rwstringx "github.com/msto63/mRW/foundation/utils/stringx"
)

// Engine represents the main expression engine that coordinates tokenizing,
// parsing, and evaluation
type Engine struct {
	parser    *parser.Parser
	evaluator *eval.Evaluator
	env       *eval.Environment
	logger    *rwlog.Logger
	options   Options
}

// Options configures the expression engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *rwlog.Logger

	// MaxExpressionLength limits input expression length (default: 4096)
	MaxExpressionLength int

	// Environment provides the engine's variable bindings (optional,
	// defaults to a fresh environment seeded with mathematical constants)
	Environment *eval.Environment
}

// Result represents the result of an expression evaluation
type Result struct {
	// Success indicates if the expression evaluated successfully
	Success bool

	// Value contains the numeric result
	Value float64

	// Message contains a human-readable result message
	Message string

	// ExecutionTime is the time taken to evaluate the expression
	ExecutionTime time.Duration

	// Expression is the original input that was evaluated
	Expression string

	// Tree is the parsed AST representation
	Tree ast.Expr

	// RequestID identifies the evaluation for log correlation
	RequestID string

	// Metadata contains additional result information
	Metadata map[string]interface{}
}

// SetMetadata sets a metadata value on the result
func (r *Result) SetMetadata(key string, value interface{}) {
	if r.Metadata == nil {
		r.Metadata = make(map[string]interface{})
	}
	r.Metadata[key] = value
}

// FormattedValue returns the result value in minimal decimal notation
func (r *Result) FormattedValue() string {
	return rwmathx.FormatValue(r.Value)
}

// String returns a string representation of the result
func (r *Result) String() string {
	if !r.Success {
		return fmt.Sprintf("FAILED: %s", r.Message)
	}

	return fmt.Sprintf("SUCCESS: %s = %s (Duration: %v)",
		r.Expression, r.FormattedValue(), r.ExecutionTime)
}

// NewEngine creates a new expression engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	// Default options
	options := Options{
		Logger:              rwlog.GetDefault(),
		MaxExpressionLength: 4096,
	}

	// Apply provided options
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxExpressionLength > 0 {
			options.MaxExpressionLength = provided.MaxExpressionLength
		}
		options.Environment = provided.Environment
	}

	// Create logger with engine context
	logger := options.Logger.WithField("component", "expr-engine")

	// Create parser
	p, err := parser.New(parser.Options{
		Logger:         logger,
		MaxInputLength: options.MaxExpressionLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expression parser: %w", err)
	}

	// Create evaluator
	ev, err := eval.New(eval.Options{
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize expression evaluator: %w", err)
	}

	// Create engine environment
	env := options.Environment
	if env == nil {
		env = eval.NewDefaultEnvironment()
	}

	engine := &Engine{
		parser:    p,
		evaluator: ev,
		env:       env,
		logger:    logger,
		options:   options,
	}

	logger.Info("expression engine initialized", rwlog.Fields{
		"maxExpressionLength": options.MaxExpressionLength,
		"environmentSize":     env.Len(),
	})

	return engine, nil
}

// Evaluate parses and evaluates an expression against the engine's own
// environment. Assignments persist in that environment across calls.
func (e *Engine) Evaluate(ctx context.Context, expression string) (*Result, error) {
	return e.EvaluateWith(ctx, expression, e.env)
}

// EvaluateWith parses and evaluates an expression against the given
// environment. Callers managing per-session variable state pass their
// session environment here.
func (e *Engine) EvaluateWith(ctx context.Context, expression string, env *eval.Environment) (*Result, error) {
	// Create evaluation timer
	timer := e.logger.StartTimer("expression_evaluation")
	defer timer.Stop()

	requestID := requestIDFromContext(ctx)

	// Log evaluation start
	e.logger.Info("Evaluating expression", rwlog.Fields{
		"expression": expression,
		"requestId":  requestID,
	})

	// Validate input
	if err := e.validateInput(expression); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("input_validated")

	// Parse expression
	tree, err := e.parser.Parse(expression)
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("Expression parsing failed", rwlog.Fields{
			"expression": expression,
			"requestId":  requestID,
			"error":      err.Error(),
		})
		return nil, e.wrapParseError(err, expression)
	}

	timer.Checkpoint("expression_parsed")

	// Evaluate expression tree
	value, err := e.evaluator.Eval(tree, env)
	if err != nil {
		timer.StopWithError(err)
		e.logger.Warn("Expression evaluation failed", rwlog.Fields{
			"expression": expression,
			"requestId":  requestID,
			"error":      err.Error(),
		})
		return nil, err
	}

	timer.Checkpoint("expression_evaluated")

	// Create result
	result := &Result{
		Success:       true,
		Value:         value,
		Message:       "Expression evaluated successfully",
		ExecutionTime: time.Since(timer.StartTime()),
		Expression:    expression,
		Tree:          tree,
		RequestID:     requestID,
	}

	// Log successful evaluation
	e.logger.Info("Expression evaluated successfully", rwlog.Fields{
		"expression": expression,
		"value":      result.FormattedValue(),
		"requestId":  requestID,
		"duration":   result.ExecutionTime,
	})

	return result, nil
}

// Tokenize lexes an expression into its token sequence without parsing it
func (e *Engine) Tokenize(expression string) ([]parser.Token, error) {
	if err := e.validateInput(expression); err != nil {
		return nil, err
	}

	return parser.NewLexer(expression).Tokenize()
}

// Parse parses an expression into its AST without evaluating it
func (e *Engine) Parse(expression string) (ast.Expr, error) {
	// Validate input
	if err := e.validateInput(expression); err != nil {
		return nil, err
	}

	// Parse expression
	tree, err := e.parser.Parse(expression)
	if err != nil {
		return nil, e.wrapParseError(err, expression)
	}

	return tree, nil
}

// TreeString parses an expression and renders its AST as an indented tree
func (e *Engine) TreeString(expression string) (string, error) {
	tree, err := e.Parse(expression)
	if err != nil {
		return "", err
	}

	return ast.TreeString(tree), nil
}

// ValidateExpression checks if an expression is syntactically valid
func (e *Engine) ValidateExpression(expression string) error {
	_, err := e.Parse(expression)
	return err
}

// Environment returns the engine's own variable environment
func (e *Engine) Environment() *eval.Environment {
	return e.env
}

// ResetEnvironment replaces the engine's environment with a fresh one
// seeded with the default mathematical constants
func (e *Engine) ResetEnvironment() {
	e.env = eval.NewDefaultEnvironment()

	e.logger.Debug("engine environment reset", rwlog.Fields{
		"environmentSize": e.env.Len(),
	})
}

// validateInput validates the input expression string
func (e *Engine) validateInput(expression string) error {
	// Check for empty input
	if rwstringx.IsBlank(expression) {
		return rwerror.New("expression input cannot be empty").
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("validate")
	}

	// Check length limits
	if len(expression) > e.options.MaxExpressionLength {
		return rwerror.New(fmt.Sprintf("expression input exceeds maximum length: %d > %d",
			len(expression), e.options.MaxExpressionLength)).
			WithCode(rwerror.CodeInvalidInput).
			WithOperation("validate").
			WithDetail("length", len(expression)).
			WithDetail("maxLength", e.options.MaxExpressionLength)
	}

	return nil
}

// wrapParseError wraps parser failures with engine-level error context.
// Lexer errors already carry their code and pass through unchanged.
func (e *Engine) wrapParseError(err error, expression string) error {
	if rwerror.HasCode(err, rwerror.CodeExprLex) {
		return err
	}

	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return rwerror.Wrap(err, "expression parsing failed").
			WithCode(rwerror.CodeExprParse).
			WithOperation("parse").
			WithDetail("expression", expression).
			WithDetail("expected", parseErr.Expected).
			WithDetail("found", parseErr.Found).
			WithDetail("line", parseErr.Line).
			WithDetail("column", parseErr.Column)
	}

	return rwerror.Wrap(err, "expression parsing failed").
		WithCode(rwerror.CodeExprParse).
		WithOperation("parse").
		WithDetail("expression", expression)
}

// requestIDFromContext extracts the request ID from the context, generating
// a fresh one when the caller did not provide any
func requestIDFromContext(ctx context.Context) string {
	if ctx != nil {
		if id, ok := ctx.Value("requestId").(string); ok && id != "" {
			return id
		}
	}

	return uuid.NewString()
}
