package expr

import (
	"fmt"
	"strings"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/types"
)

// Diff returns the partial derivative of e with respect to the named
// variable, as a new independent expression. The result is built
// exclusively through the peephole-simplifying combinators, so every
// intermediate sum, product, quotient and power comes out pre-folded.
//
// The power rule is the generalized form
//
//	d(l^r) = l^r * ( d(l)*r/l + d(r)*ln(l) )
//
// which treats both base and exponent as functions of the variable. It
// reduces to the usual power and exponential rules when one side is
// constant, but the ln(l) term restricts the real domain to positive
// bases whenever the exponent actually depends on the variable.
func (e Expression[T]) Diff(variable string) Expression[T] {
	return diffNode(e.dom, e.root, strings.ToLower(variable))
}

func diffNode[T any](d domain.Domain[T], n *types.Node[T], variable string) Expression[T] {
	zero := func() Expression[T] { return Const(d, d.FromFloat(0)) }
	one := func() Expression[T] { return Const(d, d.FromFloat(1)) }
	wrap := func(sub *types.Node[T]) Expression[T] { return Expression[T]{root: sub, dom: d} }

	switch n.Kind {
	case types.KindConst:
		return zero()

	case types.KindVar:
		if n.Name == variable {
			return one()
		}
		return zero()

	case types.KindBinary:
		l, r := wrap(n.Left), wrap(n.Right)
		dl := diffNode(d, n.Left, variable)
		dr := diffNode(d, n.Right, variable)
		switch n.Op {
		case types.OpAdd:
			return dl.Add(dr)
		case types.OpSub:
			return dl.Sub(dr)
		case types.OpMul:
			// Product rule: d(l)*r + l*d(r).
			return dl.Mul(r).Add(l.Mul(dr))
		case types.OpDiv:
			// Quotient rule: (d(l)*r - l*d(r)) / r^2.
			num := dl.Mul(r).Sub(l.Mul(dr))
			return num.Div(r.Pow(Const(d, d.FromFloat(2))))
		case types.OpPow:
			// Generalized power rule, see Diff.
			inner := dl.Mul(r.Div(l)).Add(dr.Mul(Ln(l)))
			return l.Pow(r).Mul(inner)
		}

	case types.KindFunc:
		a := wrap(n.Arg)
		da := diffNode(d, n.Arg, variable)
		switch n.Fn {
		case types.FuncSin:
			return Cos(a).Mul(da)
		case types.FuncCos:
			return Sin(a).Negate().Mul(da)
		case types.FuncLn:
			return one().Div(a).Mul(da)
		case types.FuncExp:
			return Exp(a).Mul(da)
		}
	}

	// The tag set is closed; reaching this means a corrupted tree.
	panic(fmt.Sprintf("expr: cannot differentiate node kind %d", n.Kind))
}
