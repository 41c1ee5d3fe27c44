// Package expr implements immutable expression trees over a numeric
// domain: construction-time peephole simplification, recursive
// evaluation, symbolic differentiation and a round-trippable textual
// rendering.
//
// An Expression is a value type owning one root node. Every combinator
// returns a new Expression and never mutates its operands; because nodes
// are immutable after construction, sub-trees are shared structurally
// instead of deep-copied, with identical observable behavior.
//
// # Example
//
//	d := domain.Real{}
//	x := expr.Var(d, "x")
//	f := expr.Sin(x.Pow(expr.Const(d, 2.0)))
//	df := f.Diff("x")
//	v, err := df.Eval(map[string]float64{"x": 1.5})
package expr

import (
	"sort"
	"strings"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/types"
)

// Expression is an immutable scalar expression over the numeric domain T.
//
// The zero value is not usable; obtain Expressions from Const, Var, the
// combinators, or the parser.
type Expression[T any] struct {
	root *types.Node[T]
	dom  domain.Domain[T]
}

// Const returns a literal expression.
func Const[T any](d domain.Domain[T], v T) Expression[T] {
	return Expression[T]{root: types.NewConst(v), dom: d}
}

// Var returns a free-variable expression. Names are case-normalized to
// lower case, matching the parser's normalization.
func Var[T any](d domain.Domain[T], name string) Expression[T] {
	return Expression[T]{root: types.NewVar[T](strings.ToLower(name)), dom: d}
}

// New wraps an existing node. It is intended for the parser and for
// tests that need to build trees directly; normal construction goes
// through Const, Var and the combinators.
func New[T any](d domain.Domain[T], root *types.Node[T]) Expression[T] {
	return Expression[T]{root: root, dom: d}
}

// AST returns the root node of the expression tree. The returned tree
// must be treated as read-only.
func (e Expression[T]) AST() *types.Node[T] { return e.root }

// Domain returns the numeric domain the expression was built over.
func (e Expression[T]) Domain() domain.Domain[T] { return e.dom }

// constValue returns the root literal value when the whole expression is
// a single constant node.
func (e Expression[T]) constValue() (T, bool) {
	if e.root != nil && e.root.Kind == types.KindConst {
		return e.root.Value, true
	}
	var zero T
	return zero, false
}

func (e Expression[T]) isZero() bool {
	v, ok := e.constValue()
	return ok && e.dom.IsZero(v)
}

func (e Expression[T]) isOne() bool {
	v, ok := e.constValue()
	return ok && e.dom.IsOne(v)
}

// binary builds a generic operator node without simplification.
func (e Expression[T]) binary(op types.Op, o Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewBinary(op, e.root, o.root), dom: e.dom}
}

// Add returns e + o, folding the additive identities: 0+r==r, l+0==l,
// and constant operands fold to a single constant.
func (e Expression[T]) Add(o Expression[T]) Expression[T] {
	if e.isZero() {
		return o
	}
	if o.isZero() {
		return e
	}
	if l, ok := e.constValue(); ok {
		if r, ok2 := o.constValue(); ok2 {
			return Const(e.dom, e.dom.Add(l, r))
		}
	}
	return e.binary(types.OpAdd, o)
}

// Sub returns e - o. 0-r folds to (-1)*r, l-0 folds to l, and constant
// operands fold to a single constant.
func (e Expression[T]) Sub(o Expression[T]) Expression[T] {
	if e.isZero() {
		return o.Negate()
	}
	if o.isZero() {
		return e
	}
	if l, ok := e.constValue(); ok {
		if r, ok2 := o.constValue(); ok2 {
			return Const(e.dom, e.dom.Sub(l, r))
		}
	}
	return e.binary(types.OpSub, o)
}

// Mul returns e * o, folding annihilation by zero and the multiplicative
// identity, and folding constant operands.
func (e Expression[T]) Mul(o Expression[T]) Expression[T] {
	if e.isZero() || o.isZero() {
		return Const(e.dom, e.dom.FromFloat(0))
	}
	if e.isOne() {
		return o
	}
	if o.isOne() {
		return e
	}
	if l, ok := e.constValue(); ok {
		if r, ok2 := o.constValue(); ok2 {
			return Const(e.dom, e.dom.Mul(l, r))
		}
	}
	return e.binary(types.OpMul, o)
}

// Div returns e / o. l/1 folds to l and 0/r folds to 0. Constant
// operands fold through the domain's division with no divide-by-zero
// guard; the real domain yields IEEE infinities or NaN.
func (e Expression[T]) Div(o Expression[T]) Expression[T] {
	if o.isOne() {
		return e
	}
	if e.isZero() {
		return Const(e.dom, e.dom.FromFloat(0))
	}
	if l, ok := e.constValue(); ok {
		if r, ok2 := o.constValue(); ok2 {
			return Const(e.dom, e.dom.Div(l, r))
		}
	}
	return e.binary(types.OpDiv, o)
}

// Pow returns e ^ o. l^1 folds to l and l^0 folds to 1, including 0^0,
// which is a policy choice, not an accident. Constant operands fold
// through the domain's Pow.
func (e Expression[T]) Pow(o Expression[T]) Expression[T] {
	if o.isOne() {
		return e
	}
	if o.isZero() {
		return Const(e.dom, e.dom.FromFloat(1))
	}
	if l, ok := e.constValue(); ok {
		if r, ok2 := o.constValue(); ok2 {
			return Const(e.dom, e.dom.Pow(l, r))
		}
	}
	return e.binary(types.OpPow, o)
}

// Negate returns (-1) * e.
func (e Expression[T]) Negate() Expression[T] {
	return Const(e.dom, e.dom.FromFloat(-1)).Mul(e)
}

// Sin wraps e in the sine function. Function combinators never simplify;
// sin(0) stays sin(0) until evaluation.
func Sin[T any](e Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewFunc(types.FuncSin, e.root), dom: e.dom}
}

// Cos wraps e in the cosine function.
func Cos[T any](e Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewFunc(types.FuncCos, e.root), dom: e.dom}
}

// Ln wraps e in the natural logarithm.
func Ln[T any](e Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewFunc(types.FuncLn, e.root), dom: e.dom}
}

// Exp wraps e in the exponential function.
func Exp[T any](e Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewFunc(types.FuncExp, e.root), dom: e.dom}
}

// Func applies the named function to e. It is the dispatch point the
// parser uses after recognizing a function call.
func Func[T any](fn types.FuncName, e Expression[T]) Expression[T] {
	return Expression[T]{root: types.NewFunc(fn, e.root), dom: e.dom}
}

// Variables returns the sorted set of free variable names in e.
func (e Expression[T]) Variables() []string {
	seen := map[string]struct{}{}
	collectVars(e.root, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectVars[T any](n *types.Node[T], seen map[string]struct{}) {
	if n == nil {
		return
	}
	switch n.Kind {
	case types.KindVar:
		seen[n.Name] = struct{}{}
	case types.KindBinary:
		collectVars(n.Left, seen)
		collectVars(n.Right, seen)
	case types.KindFunc:
		collectVars(n.Arg, seen)
	}
}
