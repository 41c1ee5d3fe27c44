package parser

// TokenType represents the type of a lexical token.
type TokenType uint8

const (
	// Special tokens
	TokenEOF TokenType = iota
	TokenError

	// Literals and names
	TokenNumber // 123, 3.14, 2i
	TokenName   // variable or function identifier, lower-cased

	// Operators
	TokenPlus  // +
	TokenMinus // -
	TokenMult  // *
	TokenDiv   // /
	TokenPow   // ^

	// Grouping
	TokenParenOpen  // (
	TokenParenClose // )
)

// String returns a string representation of the token type.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "(eof)"
	case TokenError:
		return "(error)"
	case TokenNumber:
		return "(number)"
	case TokenName:
		return "(name)"
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMult:
		return "*"
	case TokenDiv:
		return "/"
	case TokenPow:
		return "^"
	case TokenParenOpen:
		return "("
	case TokenParenClose:
		return ")"
	}
	return "(unknown)"
}

// Token is a lexical token with its source position.
type Token struct {
	Type     TokenType
	Value    string
	Position int
}

// isOperator reports whether tt is one of the five binary operator
// tokens.
func isOperator(tt TokenType) bool {
	switch tt {
	case TokenPlus, TokenMinus, TokenMult, TokenDiv, TokenPow:
		return true
	}
	return false
}

// precedence returns the parser priority of an operator token:
// ^ is 3, * and / are 2, + and - are 1. The stack discipline pops while
// the stacked priority is >= the incoming one, so equal priorities bind
// left to right. That includes ^, which is therefore left-associative.
func precedence(tt TokenType) int {
	switch tt {
	case TokenPow:
		return 3
	case TokenMult, TokenDiv:
		return 2
	case TokenPlus, TokenMinus:
		return 1
	}
	return 0
}
