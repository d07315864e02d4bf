// File: lexer.go
// Title: Expression Lexical Analyzer
// Description: Implements the tokenizer for the expression language.
//              Produces a positional token stream covering numbers,
//              identifiers, arithmetic and comparison operators, assignment,
//              and parentheses, with zero-based line and column tracking.
// Version: v0.1.0
// Created: 2026-07-17
// Modified: 2026-07-17
//
// Change History:
// - 2026-07-17 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strconv"
	"strings"

	rwerror "github.com/msto63/mRW/foundation/core/error"
)

// TokenType represents the type of a token
type TokenType int

const (
	TokenEndOfInput TokenType = iota
	TokenIllegal
	TokenNumber
	TokenIdentifier
	TokenArithmeticOp
	TokenComparisonOp
	TokenAssign
	TokenLeftParen
	TokenRightParen
)

// Token represents a single token with position information. Line and
// Column are zero-based. Number tokens additionally carry the parsed
// value in Num.
type Token struct {
	Type     TokenType
	Value    string  // Lexeme as matched in the source
	Num      float64 // Parsed value, number tokens only
	Position int     // Byte offset in the source
	Line     int     // Line number (0-based)
	Column   int     // Column number (0-based)
}

// String returns a readable representation of the token in the form
// <Kind(lexeme), line:column>
func (t Token) String() string {
	if t.Value == "" {
		return fmt.Sprintf("<%s, %d:%d>", t.Type, t.Line, t.Column)
	}
	return fmt.Sprintf("<%s(%s), %d:%d>", t.Type, t.Value, t.Line, t.Column)
}

// String returns the name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEndOfInput:
		return "EndOfInput"
	case TokenIllegal:
		return "Illegal"
	case TokenNumber:
		return "Number"
	case TokenIdentifier:
		return "Identifier"
	case TokenArithmeticOp:
		return "ArithmeticOperator"
	case TokenComparisonOp:
		return "ComparisonOperator"
	case TokenAssign:
		return "AssignOperator"
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	default:
		return "Unknown"
	}
}

// FormatTokens renders a token sequence on one line, tokens separated by
// a single space.
func FormatTokens(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " ")
}

// The lexeme recognizers are immutable and shared by all lexer instances.
var (
	numberMachine     = NewNumberMachine()
	identifierMachine = NewIdentifierMachine()
)

// Lexer tokenizes expression input. A Lexer scans one input string from
// start to end; to scan again, create a new Lexer. It holds no state
// beyond its scan cursor.
type Lexer struct {
	input        string
	position     int  // Byte offset of the current character
	readPosition int  // Byte offset of the next character
	ch           byte // Current character, 0 at end of input
	line         int  // Line of the current character (0-based)
	column       int  // Column of the current character (0-based)
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar advances the cursor by one character. Line and column always
// describe the character now in ch: the first character of the input is
// at 0:0, and consuming a newline moves the cursor to column 0 of the
// next line.
func (l *Lexer) readChar() {
	if l.readPosition > 0 {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		} else {
			l.column++
		}
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

// peekChar returns the next character without advancing
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// advance consumes n characters
func (l *Lexer) advance(n int) {
	for i := 0; i < n; i++ {
		l.readChar()
	}
}

// skipWhitespace skips spaces, tabs, and line breaks
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// NextToken returns the next token from the input. Input the lexer cannot
// tokenize is reported as a TokenIllegal token carrying the offending
// lexeme; Tokenize converts it into an error.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position
	line := l.line
	column := l.column

	var tok Token

	switch l.ch {
	case '+', '-', '*', '/':
		tok = newToken(TokenArithmeticOp, string(l.ch), pos, line, column)
	case '=':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(TokenComparisonOp, "==", pos, line, column)
		} else {
			tok = newToken(TokenAssign, "=", pos, line, column)
		}
	case '<':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(TokenComparisonOp, "<=", pos, line, column)
		} else {
			tok = newToken(TokenComparisonOp, "<", pos, line, column)
		}
	case '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = newToken(TokenComparisonOp, ">=", pos, line, column)
		} else {
			tok = newToken(TokenComparisonOp, ">", pos, line, column)
		}
	case '(':
		tok = newToken(TokenLeftParen, "(", pos, line, column)
	case ')':
		tok = newToken(TokenRightParen, ")", pos, line, column)
	case 0:
		return newToken(TokenEndOfInput, "", pos, line, column)
	default:
		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			return l.readIdentifier()
		}
		tok = newToken(TokenIllegal, string(l.ch), pos, line, column)
	}

	l.readChar()
	return tok
}

// readNumber consumes a number lexeme starting at the current character.
// The recognizer consumes greedily and fails the whole lexeme when it
// stops in the middle of a fraction or exponent, so "5e" and "5." are
// illegal rather than a number followed by trailing characters.
func (l *Lexer) readNumber() Token {
	pos := l.position
	line := l.line
	column := l.column

	lexeme, ok := numberMachine.Match(l.input[l.position:])
	l.advance(len(lexeme))

	if !ok {
		return newToken(TokenIllegal, lexeme, pos, line, column)
	}

	// The recognizer only accepts ParseFloat-compatible syntax. On range
	// overflow ParseFloat reports ErrRange and returns the nearest
	// representable value (an infinity), which is the correct result for
	// the lexeme, so the error is not propagated.
	value, _ := strconv.ParseFloat(lexeme, 64)

	tok := newToken(TokenNumber, lexeme, pos, line, column)
	tok.Num = value
	return tok
}

// readIdentifier consumes an identifier lexeme starting at the current
// character. The caller has checked the first character, so the match
// cannot fail.
func (l *Lexer) readIdentifier() Token {
	pos := l.position
	line := l.line
	column := l.column

	lexeme, _ := identifierMachine.Match(l.input[l.position:])
	l.advance(len(lexeme))

	return newToken(TokenIdentifier, lexeme, pos, line, column)
}

// Tokenize scans the complete input and returns all tokens including the
// trailing EndOfInput token. The first character the lexer cannot place
// in any token aborts the scan with an error.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0, 16)

	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			return nil, lexError(tok)
		}

		tokens = append(tokens, tok)
		if tok.Type == TokenEndOfInput {
			break
		}
	}

	return tokens, nil
}

// lexError builds the error for an illegal token. An illegal lexeme
// starting with a digit always came out of the number recognizer.
func lexError(tok Token) error {
	kind := "unexpected character"
	if tok.Value != "" && isDigit(tok.Value[0]) {
		kind = "malformed number"
	}

	return rwerror.New(fmt.Sprintf("%s %q at %d:%d", kind, tok.Value, tok.Line, tok.Column)).
		WithCode(rwerror.CodeExprLex).
		WithOperation("tokenize").
		WithDetail("lexeme", tok.Value).
		WithDetail("line", tok.Line).
		WithDetail("column", tok.Column).
		WithDetail("offset", tok.Position)
}

// newToken creates a token with position information
func newToken(tokenType TokenType, value string, position, line, column int) Token {
	return Token{
		Type:     tokenType,
		Value:    value,
		Position: position,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the character can start or continue an identifier
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the character is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
