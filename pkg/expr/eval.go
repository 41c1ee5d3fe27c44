package expr

import (
	"fmt"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/types"
)

// Eval evaluates the expression with the given variable bindings and
// returns the resulting value.
//
// Every free variable of the expression must be present in bindings;
// a missing binding yields a *types.Error with code ErrUndefinedVariable.
// Division by zero and 0^0 are not guarded: they produce whatever the
// domain's native arithmetic produces.
//
// Evaluation is a plain post-order walk with no caching; trees are small
// and each call re-walks the whole tree.
func (e Expression[T]) Eval(bindings map[string]T) (T, error) {
	return evalNode(e.dom, e.root, bindings)
}

func evalNode[T any](d domain.Domain[T], n *types.Node[T], bindings map[string]T) (T, error) {
	var zero T
	switch n.Kind {
	case types.KindConst:
		return n.Value, nil

	case types.KindVar:
		v, ok := bindings[n.Name]
		if !ok {
			return zero, types.NewError(types.ErrUndefinedVariable,
				fmt.Sprintf("variable %q is not provided", n.Name), -1).WithToken(n.Name)
		}
		return v, nil

	case types.KindBinary:
		l, err := evalNode(d, n.Left, bindings)
		if err != nil {
			return zero, err
		}
		r, err := evalNode(d, n.Right, bindings)
		if err != nil {
			return zero, err
		}
		switch n.Op {
		case types.OpAdd:
			return d.Add(l, r), nil
		case types.OpSub:
			return d.Sub(l, r), nil
		case types.OpMul:
			return d.Mul(l, r), nil
		case types.OpDiv:
			return d.Div(l, r), nil
		case types.OpPow:
			return d.Pow(l, r), nil
		}
		return zero, types.NewError(types.ErrUnsupportedOp,
			fmt.Sprintf("unknown binary operator tag %d", n.Op), -1)

	case types.KindFunc:
		a, err := evalNode(d, n.Arg, bindings)
		if err != nil {
			return zero, err
		}
		switch n.Fn {
		case types.FuncSin:
			return d.Sin(a), nil
		case types.FuncCos:
			return d.Cos(a), nil
		case types.FuncLn:
			return d.Ln(a), nil
		case types.FuncExp:
			return d.Exp(a), nil
		}
		return zero, types.NewError(types.ErrUnsupportedOp,
			fmt.Sprintf("unknown function tag %d", n.Fn), -1)
	}
	return zero, types.NewError(types.ErrUnsupportedOp,
		fmt.Sprintf("unknown node kind %d", n.Kind), -1)
}
