package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/asevik/symexpr/pkg/types"
)

const eof = -1

// Lexer converts an infix expression into a sequence of tokens.
// The implementation is based on Rob Pike's "Lexical Scanning in Go"
// technique.
//
// Normalization happens here: whitespace is skipped and identifiers are
// lower-cased; digits, '.', operators and parentheses pass through
// untouched. Positions always refer to the original input.
type Lexer struct {
	input   string // Input string being scanned
	length  int    // Length of input string
	start   int    // Start position of current token
	current int    // Current position in input
	width   int    // Width of last rune read
	err     error  // First error encountered
}

// NewLexer creates a new lexer from the provided input string.
// The input is tokenized by successive calls to the Next method.
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  input,
		length: len(input),
	}
}

// Next returns the next token from the input.
// When the end of the input is reached, Next returns TokenEOF for all
// subsequent calls.
func (l *Lexer) Next() Token {
	l.acceptAll(unicode.IsSpace)
	l.ignore()

	ch := l.nextRune()
	if ch == eof {
		return Token{Type: TokenEOF, Position: l.current}
	}

	switch ch {
	case '+':
		return l.newToken(TokenPlus)
	case '-':
		return l.newToken(TokenMinus)
	case '*':
		return l.newToken(TokenMult)
	case '/':
		return l.newToken(TokenDiv)
	case '^':
		return l.newToken(TokenPow)
	case '(':
		return l.newToken(TokenParenOpen)
	case ')':
		return l.newToken(TokenParenClose)
	}

	if isDigit(ch) {
		l.backup()
		return l.scanNumber()
	}

	if unicode.IsLetter(ch) {
		l.backup()
		return l.scanName()
	}

	return l.error(types.ErrBadNumber, fmt.Sprintf("unexpected character %q", ch))
}

// Error returns the first error encountered during lexing, if any.
func (l *Lexer) Error() error {
	return l.err
}

// scanNumber reads a numeric literal from the current position.
// Format: [0-9]+(\.[0-9]*)? with an optional trailing 'i' marking an
// imaginary literal. A second '.' in the same literal is an error.
func (l *Lexer) scanNumber() Token {
	l.acceptAll(isDigit)

	if l.acceptRune('.') {
		l.acceptAll(isDigit)
		if l.accept(func(r rune) bool { return r == '.' }) {
			l.backup()
			return l.error(types.ErrBadNumber, "numeric literal with more than one decimal point")
		}
	}

	// A trailing 'i' belongs to the literal; whether it is meaningful is
	// up to the numeric domain.
	l.acceptRune('i')

	return l.newToken(TokenNumber)
}

// scanName reads an alphabetic run from the current position. The value
// is lower-cased; whether it names a function or a variable is decided
// by the parser.
func (l *Lexer) scanName() Token {
	l.acceptAll(unicode.IsLetter)
	t := l.newToken(TokenName)
	t.Value = strings.ToLower(t.Value)
	return t
}

// Helper methods

func (l *Lexer) error(code types.ErrorCode, message string) Token {
	t := l.newToken(TokenError)
	l.err = &types.Error{
		Code:     code,
		Message:  message,
		Position: t.Position,
		Token:    t.Value,
	}
	return t
}

func (l *Lexer) newToken(tt TokenType) Token {
	t := Token{
		Type:     tt,
		Value:    l.input[l.start:l.current],
		Position: l.start,
	}
	l.width = 0
	l.start = l.current
	return t
}

func (l *Lexer) nextRune() rune {
	if l.err != nil || l.current >= l.length {
		l.width = 0
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.current:])
	l.width = w
	l.current += w
	return r
}

func (l *Lexer) backup() {
	l.current -= l.width
}

func (l *Lexer) ignore() {
	l.start = l.current
}

func (l *Lexer) acceptRune(r rune) bool {
	return l.accept(func(c rune) bool {
		return c == r
	})
}

func (l *Lexer) accept(isValid func(rune) bool) bool {
	if isValid(l.nextRune()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptAll(isValid func(rune) bool) bool {
	var matched bool
	for l.accept(isValid) {
		matched = true
	}
	return matched
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
