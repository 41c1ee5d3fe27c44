// Package parser turns infix expression text into expression trees.
//
// The parser is a single left-to-right shift-reduce pass over the token
// stream, with an operand stack of expressions and an operator stack of
// tokens (shunting-yard style). Function calls and unary-minus operands
// are cut out of the stream as balanced token runs and parsed
// recursively.
//
// Two grammar quirks are deliberate, observable behavior:
//
//   - ^ is left-associative: "2^3^2" parses as "(2^3)^2".
//   - A unary minus greedily consumes everything up to the next operator
//     at parenthesis depth 0 as its operand, so "-x^2" means "(-x)^2"
//     while "-(x+y)" and "-sin(x)" work as expected.
//
// # Example
//
//	e, err := parser.Parse("2*x + sin(x^2)", domain.Real{})
//	if err != nil {
//	    var perr *types.Error
//	    errors.As(err, &perr) // perr.Code, perr.Position
//	}
package parser

import (
	"fmt"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/expr"
	"github.com/asevik/symexpr/pkg/types"
)

// Parse parses an infix expression over the given numeric domain.
//
// Construction goes through the peephole-simplifying combinators, so
// constant sub-expressions fold while the tree is built: Parse("2+3")
// yields a single constant node.
//
// Errors are *types.Error values with a parse error code and the byte
// position of the offending token in the input.
func Parse[T any](input string, d domain.Domain[T]) (expr.Expression[T], error) {
	toks, err := ScanAll(input)
	if err != nil {
		return expr.Expression[T]{}, err
	}
	if len(toks) == 0 {
		return expr.Expression[T]{}, types.NewError(types.ErrEmptyExpression, "empty expression", 0)
	}
	p := &parser[T]{dom: d}
	return p.parse(toks)
}

// ScanAll tokenizes the whole input up front. It returns the token
// stream without the trailing EOF token, or the first lexing error.
func ScanAll(input string) ([]Token, error) {
	l := NewLexer(input)
	var toks []Token
	for {
		t := l.Next()
		switch t.Type {
		case TokenEOF:
			return toks, nil
		case TokenError:
			return nil, l.Error()
		}
		toks = append(toks, t)
	}
}

type parser[T any] struct {
	dom domain.Domain[T]
}

// parse reduces a token run to a single expression. It is called on the
// full stream and recursively on function arguments and unary-minus
// operand runs.
func (p *parser[T]) parse(toks []Token) (expr.Expression[T], error) {
	var none expr.Expression[T]
	if len(toks) == 0 {
		return none, types.NewError(types.ErrEmptyExpression, "empty expression", 0)
	}

	var operands []expr.Expression[T]
	var ops []Token // pending operators and open parens

	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		switch tok.Type {
		case TokenNumber:
			v, err := p.dom.ParseLiteral(tok.Value)
			if err != nil {
				return none, types.NewError(types.ErrBadLiteral, err.Error(), tok.Position).WithToken(tok.Value)
			}
			operands = append(operands, expr.Const(p.dom, v))

		case TokenName:
			fn, isFunc := types.FuncByName(tok.Value)
			if !isFunc {
				operands = append(operands, expr.Var(p.dom, tok.Value))
				continue
			}
			if i+1 >= len(toks) || toks[i+1].Type != TokenParenOpen {
				return none, types.NewError(types.ErrMissingFuncParen,
					fmt.Sprintf("function %q must be followed by '('", tok.Value), tok.Position).WithToken(tok.Value)
			}
			closeIdx, err := matchParen(toks, i+1)
			if err != nil {
				return none, err
			}
			inner := toks[i+2 : closeIdx]
			if len(inner) == 0 {
				return none, types.NewError(types.ErrEmptyFuncArg,
					fmt.Sprintf("function %q has an empty argument", tok.Value), toks[i+1].Position).WithToken(tok.Value)
			}
			arg, err := p.parse(inner)
			if err != nil {
				return none, err
			}
			operands = append(operands, expr.Func(fn, arg))
			i = closeIdx

		case TokenPlus, TokenMinus, TokenMult, TokenDiv, TokenPow:
			if tok.Type == TokenMinus && unaryContext(toks, i) {
				end := unaryOperandEnd(toks, i+1)
				run := toks[i+1 : end]
				if len(run) == 0 {
					return none, types.NewError(types.ErrMisplacedOperator,
						"unary minus has no operand", tok.Position).WithToken(tok.Value)
				}
				sub, err := p.parse(run)
				if err != nil {
					return none, err
				}
				operands = append(operands, sub.Negate())
				i = end - 1
				continue
			}
			if i == 0 || isOperator(toks[i-1].Type) || toks[i-1].Type == TokenParenOpen {
				return none, types.NewError(types.ErrMisplacedOperator,
					fmt.Sprintf("operator %q has no left operand", tok.Value), tok.Position).WithToken(tok.Value)
			}
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Type == TokenParenOpen || precedence(top.Type) < precedence(tok.Type) {
					break
				}
				if err := p.applyTop(&operands, &ops); err != nil {
					return none, err
				}
			}
			ops = append(ops, tok)

		case TokenParenOpen:
			ops = append(ops, tok)

		case TokenParenClose:
			matched := false
			for len(ops) > 0 {
				if ops[len(ops)-1].Type == TokenParenOpen {
					ops = ops[:len(ops)-1]
					matched = true
					break
				}
				if err := p.applyTop(&operands, &ops); err != nil {
					return none, err
				}
			}
			if !matched {
				return none, types.NewError(types.ErrUnbalancedParens,
					"unmatched ')'", tok.Position).WithToken(tok.Value)
			}
		}
	}

	// Drain remaining operators in the same priority-driven order.
	for len(ops) > 0 {
		if top := ops[len(ops)-1]; top.Type == TokenParenOpen {
			return none, types.NewError(types.ErrUnbalancedParens,
				"unmatched '('", top.Position).WithToken(top.Value)
		}
		if err := p.applyTop(&operands, &ops); err != nil {
			return none, err
		}
	}

	if len(operands) != 1 {
		return none, types.NewError(types.ErrIncompleteExpr,
			"expression does not reduce to a single value", toks[len(toks)-1].Position)
	}
	return operands[0], nil
}

// applyTop pops the top operator and replaces the top two operands with
// the combined expression.
func (p *parser[T]) applyTop(operands *[]expr.Expression[T], ops *[]Token) error {
	op := (*ops)[len(*ops)-1]
	*ops = (*ops)[:len(*ops)-1]

	if len(*operands) < 2 {
		return types.NewError(types.ErrMisplacedOperator,
			fmt.Sprintf("operator %q is missing an operand", op.Value), op.Position).WithToken(op.Value)
	}
	r := (*operands)[len(*operands)-1]
	l := (*operands)[len(*operands)-2]
	*operands = (*operands)[:len(*operands)-2]

	var combined expr.Expression[T]
	switch op.Type {
	case TokenPlus:
		combined = l.Add(r)
	case TokenMinus:
		combined = l.Sub(r)
	case TokenMult:
		combined = l.Mul(r)
	case TokenDiv:
		combined = l.Div(r)
	case TokenPow:
		combined = l.Pow(r)
	default:
		return types.NewError(types.ErrMisplacedOperator,
			fmt.Sprintf("unexpected token %q on operator stack", op.Value), op.Position).WithToken(op.Value)
	}
	*operands = append(*operands, combined)
	return nil
}

// unaryContext reports whether a '-' at index i is a unary minus: at the
// start of the run, or immediately after an operator or '('.
func unaryContext(toks []Token, i int) bool {
	if i == 0 {
		return true
	}
	prev := toks[i-1].Type
	return isOperator(prev) || prev == TokenParenOpen
}

// unaryOperandEnd returns the index just past the greedy unary-minus
// operand starting at from: everything up to the next operator at
// parenthesis depth 0, or the ')' closing the enclosing group.
func unaryOperandEnd(toks []Token, from int) int {
	depth := 0
	for j := from; j < len(toks); j++ {
		switch toks[j].Type {
		case TokenParenOpen:
			depth++
		case TokenParenClose:
			if depth == 0 {
				return j
			}
			depth--
		default:
			if isOperator(toks[j].Type) && depth == 0 {
				return j
			}
		}
	}
	return len(toks)
}

// matchParen returns the index of the ')' matching the '(' at openIdx.
func matchParen(toks []Token, openIdx int) (int, error) {
	depth := 0
	for j := openIdx; j < len(toks); j++ {
		switch toks[j].Type {
		case TokenParenOpen:
			depth++
		case TokenParenClose:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, types.NewError(types.ErrUnbalancedParens,
		"unmatched '('", toks[openIdx].Position).WithToken(toks[openIdx].Value)
}
