package types

import "fmt"

// ErrorCode classifies a symexpr error.
type ErrorCode string

// Error codes. P0xxx are parse errors, E1xxx are evaluation errors.
const (
	// P0xxx: Parser/Syntax errors
	ErrEmptyExpression   ErrorCode = "P0101"
	ErrBadNumber         ErrorCode = "P0102"
	ErrUnbalancedParens  ErrorCode = "P0103"
	ErrMissingFuncParen  ErrorCode = "P0104"
	ErrEmptyFuncArg      ErrorCode = "P0105"
	ErrMisplacedOperator ErrorCode = "P0106"
	ErrBadLiteral        ErrorCode = "P0107"
	ErrIncompleteExpr    ErrorCode = "P0108"

	// E1xxx: Evaluation errors
	ErrUndefinedVariable ErrorCode = "E1001"
	ErrUnsupportedOp     ErrorCode = "E1002"
)

// Error represents a structured symexpr error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error with the given code, message and source
// position. Pass a negative position when no position applies.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
