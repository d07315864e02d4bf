// File: fsm.go
// Title: Finite State Machines for Token Recognition
// Description: Provides a small generic finite state machine over bytes and
//              the concrete machines used by the lexer to recognize number
//              and identifier lexemes.
// Version: v0.1.0
// Created: 2026-07-17
// Modified: 2026-07-17
//
// Change History:
// - 2026-07-17 v0.1.0: Initial state machine implementation

package parser

// Machine is a finite state machine over the bytes of an input string.
// The transition function returns the next state and whether a transition
// exists at all.
type Machine[S comparable] struct {
	Initial    S
	Accepting  map[S]bool
	Transition func(state S, ch byte) (S, bool)
}

// Match runs the machine from its initial state, consuming input bytes
// greedily until no transition applies. It returns the consumed prefix and
// whether the state the machine stopped in is accepting. There is no
// backtracking to an earlier accepting state: the number recognizer
// consumes both bytes of "5e", stops in a non-accepting state, and the
// lexeme fails as a whole.
func (m *Machine[S]) Match(input string) (string, bool) {
	state := m.Initial
	size := 0

	for size < len(input) {
		next, ok := m.Transition(state, input[size])
		if !ok {
			break
		}
		state = next
		size++
	}

	return input[:size], m.Accepting[state]
}

// NumberState enumerates the states of the number recognizer
type NumberState int

const (
	NumberInitial NumberState = iota
	NumberInteger
	NumberBeginFraction
	NumberFraction
	NumberBeginExponent
	NumberBeginSignedExponent
	NumberExponent
)

// NewNumberMachine builds the recognizer for number lexemes: an integer
// part, an optional fractional part introduced by '.', and an optional
// exponent introduced by 'e' or 'E' with an optional sign. The integer
// part is mandatory, so ".5" and "e3" are not numbers, and a dangling
// '.' or exponent marker ("5.", "5e", "5e+") fails the whole lexeme.
func NewNumberMachine() *Machine[NumberState] {
	return &Machine[NumberState]{
		Initial: NumberInitial,
		Accepting: map[NumberState]bool{
			NumberInteger:  true,
			NumberFraction: true,
			NumberExponent: true,
		},
		Transition: func(state NumberState, ch byte) (NumberState, bool) {
			switch state {
			case NumberInitial:
				if isDigit(ch) {
					return NumberInteger, true
				}
			case NumberInteger:
				switch {
				case isDigit(ch):
					return NumberInteger, true
				case ch == '.':
					return NumberBeginFraction, true
				case ch == 'e' || ch == 'E':
					return NumberBeginExponent, true
				}
			case NumberBeginFraction:
				if isDigit(ch) {
					return NumberFraction, true
				}
			case NumberFraction:
				switch {
				case isDigit(ch):
					return NumberFraction, true
				case ch == 'e' || ch == 'E':
					return NumberBeginExponent, true
				}
			case NumberBeginExponent:
				switch {
				case isDigit(ch):
					return NumberExponent, true
				case ch == '+' || ch == '-':
					return NumberBeginSignedExponent, true
				}
			case NumberBeginSignedExponent:
				if isDigit(ch) {
					return NumberExponent, true
				}
			case NumberExponent:
				if isDigit(ch) {
					return NumberExponent, true
				}
			}
			return state, false
		},
	}
}

// IdentifierState enumerates the states of the identifier recognizer
type IdentifierState int

const (
	IdentifierInitial IdentifierState = iota
	IdentifierBody
)

// NewIdentifierMachine builds the recognizer for identifier lexemes: an
// ASCII letter or underscore followed by any number of letters, digits,
// or underscores.
func NewIdentifierMachine() *Machine[IdentifierState] {
	return &Machine[IdentifierState]{
		Initial: IdentifierInitial,
		Accepting: map[IdentifierState]bool{
			IdentifierBody: true,
		},
		Transition: func(state IdentifierState, ch byte) (IdentifierState, bool) {
			switch state {
			case IdentifierInitial:
				if isLetter(ch) {
					return IdentifierBody, true
				}
			case IdentifierBody:
				if isLetter(ch) || isDigit(ch) {
					return IdentifierBody, true
				}
			}
			return state, false
		},
	}
}
