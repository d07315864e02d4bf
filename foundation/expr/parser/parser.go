// File: parser.go
// Title: Recursive Descent Expression Parser
// Description: Implements the parsing phase of expression processing.
//              Converts token streams into Abstract Syntax Trees using
//              recursive descent with one function per grammar level and
//              positional error reporting.
// Version: v0.1.0
// Created: 2026-07-17
// Modified: 2026-07-17
//
// Change History:
// - 2026-07-17 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	rwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/foundation/expr/ast"
)

// Grammar, lowest precedence outermost:
//
//	Expr      := Identifier '=' RightExpr | RightExpr
//	RightExpr := CompTerm ( ('==' | '<' | '<=' | '>' | '>=') CompTerm )*
//	CompTerm  := Term ( ('+' | '-') Term )*
//	Term      := Factor ( ('*' | '/') Factor )*
//	Factor    := Number | Identifier | '(' RightExpr ')'
//
// All binary levels fold left-associatively.

// Parser implements recursive descent parsing for expressions. A Parser
// is not safe for concurrent use; create one per goroutine or serialize
// calls.
type Parser struct {
	tokens   []Token
	pos      int   // Index of the token after current
	current  Token // Current token
	previous Token // Previous token
	logger   *rwlog.Logger
	options  Options
}

// Options configures parser behavior
type Options struct {
	Logger         *rwlog.Logger
	MaxInputLength int
}

// ParseError represents a parsing error with position information.
// Expected and Found are filled when the parser required a specific
// token and met another one.
type ParseError struct {
	Message  string
	Expected string
	Found    string
	Position int
	Line     int
	Column   int
	Token    Token
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", pe.Line, pe.Column, pe.Message)
}

// New creates a new expression parser with the given options
func New(opts Options) (*Parser, error) {
	// Set defaults
	if opts.Logger == nil {
		opts.Logger = rwlog.GetDefault()
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = 4096
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "expr-parser"),
		options: opts,
	}, nil
}

// Parse tokenizes and parses an expression string and returns the AST
// root. Tokenization failures are returned unchanged, so callers can
// distinguish them from parse errors.
func (p *Parser) Parse(input string) (ast.Expr, error) {
	// Validate input length
	if len(input) > p.options.MaxInputLength {
		return nil, fmt.Errorf("input exceeds maximum length: %d > %d",
			len(input), p.options.MaxInputLength)
	}

	tokens, err := NewLexer(input).Tokenize()
	if err != nil {
		p.logger.Warn("expression tokenization failed", rwlog.Fields{
			"input": input,
			"error": err.Error(),
		})
		return nil, err
	}

	return p.ParseTokens(tokens)
}

// ParseTokens parses a token sequence as produced by Tokenize and returns
// the AST root for exactly one complete expression. Tokens after the
// parsed expression fail the parse.
func (p *Parser) ParseTokens(tokens []Token) (ast.Expr, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Message: "empty token sequence"}
	}

	p.tokens = tokens
	p.pos = 0
	p.previous = Token{}
	p.advance() // Load first token

	p.logger.Debug("starting expression parsing", rwlog.Fields{
		"tokens": len(tokens),
	})

	expr, err := p.parseExpr()
	if err != nil {
		p.logger.Warn("expression parsing failed", rwlog.Fields{
			"error": err.Error(),
		})
		return nil, err
	}

	// Ensure the expression consumed all input
	if p.current.Type != TokenEndOfInput {
		return nil, p.parseError("EndOfInput")
	}

	p.logger.Debug("expression parsing completed", rwlog.Fields{
		"root": expr.String(),
	})

	return expr, nil
}

// parseExpr parses the outermost grammar level. Assignment is recognized
// only here and only when an Identifier is directly followed by '=';
// deciding the branch takes one token of lookahead beyond the identifier.
func (p *Parser) parseExpr() (ast.Expr, error) {
	if p.current.Type == TokenIdentifier && p.peek().Type == TokenAssign {
		return p.parseAssignment()
	}
	return p.parseRightExpr()
}

// parseAssignment parses Identifier '=' RightExpr. The resulting node
// carries the identifier's position.
func (p *Parser) parseAssignment() (ast.Expr, error) {
	ident := p.current
	p.advance() // consume identifier
	p.advance() // consume '='

	value, err := p.parseRightExpr()
	if err != nil {
		return nil, err
	}

	return &ast.Assignment{
		Name:  ident.Value,
		Value: value,
		Pos:   tokenPosition(ident),
	}, nil
}

// parseRightExpr parses the comparison level
func (p *Parser) parseRightExpr() (ast.Expr, error) {
	left, err := p.parseCompTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenComparisonOp {
		op := p.current
		p.advance()

		right, err := p.parseCompTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   tokenPosition(op),
		}
	}

	return left, nil
}

// parseCompTerm parses the additive level
func (p *Parser) parseCompTerm() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenArithmeticOp &&
		(p.current.Value == ast.OpAdd || p.current.Value == ast.OpSubtract) {
		op := p.current
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   tokenPosition(op),
		}
	}

	return left, nil
}

// parseTerm parses the multiplicative level
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenArithmeticOp &&
		(p.current.Value == ast.OpMultiply || p.current.Value == ast.OpDivide) {
		op := p.current
		p.advance()

		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{
			Left:  left,
			Op:    op.Value,
			Right: right,
			Pos:   tokenPosition(op),
		}
	}

	return left, nil
}

// parseFactor parses the innermost level: a number, an identifier, or a
// parenthesized expression. Parentheses group only; they produce no node
// of their own.
func (p *Parser) parseFactor() (ast.Expr, error) {
	switch p.current.Type {
	case TokenNumber:
		node := &ast.NumberLiteral{
			Value: p.current.Num,
			Raw:   p.current.Value,
			Pos:   tokenPosition(p.current),
		}
		p.advance()
		return node, nil

	case TokenIdentifier:
		node := &ast.Identifier{
			Name: p.current.Value,
			Pos:  tokenPosition(p.current),
		}
		p.advance()
		return node, nil

	case TokenLeftParen:
		p.advance() // consume '('

		inner, err := p.parseRightExpr()
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenRightParen {
			return nil, p.parseError("RightParen")
		}
		p.advance() // consume ')'

		return inner, nil

	default:
		return nil, p.parseError("Number, Identifier, or LeftParen")
	}
}

// Utility methods

// advance moves to the next token. Past the final token, current stays
// on EndOfInput.
func (p *Parser) advance() {
	p.previous = p.current
	if p.pos < len(p.tokens) {
		p.current = p.tokens[p.pos]
		p.pos++
	}
}

// peek returns the token after the current one without advancing
func (p *Parser) peek() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.current
}

// parseError creates a parse error naming the expected token at the
// current position
func (p *Parser) parseError(expected string) error {
	found := p.current.Type.String()
	if p.current.Value != "" {
		found = fmt.Sprintf("'%s'", p.current.Value)
	}

	return &ParseError{
		Message:  fmt.Sprintf("expected %s, found %s", expected, found),
		Expected: expected,
		Found:    found,
		Position: p.current.Position,
		Line:     p.current.Line,
		Column:   p.current.Column,
		Token:    p.current,
	}
}

// tokenPosition converts a token's position into an AST position
func tokenPosition(tok Token) ast.Position {
	return ast.Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}
