package types

// Kind identifies the variant of an AST node.
//
// The tag set is closed: Const, Var, Binary and Func are the only node
// shapes, so every tree walk can switch exhaustively over them. Adding a
// new operator means extending Op or FuncName, not the node shapes.
type Kind uint8

const (
	KindConst  Kind = iota // numeric literal
	KindVar                // free variable reference
	KindBinary             // binary arithmetic operator
	KindFunc               // unary named function
)

// String returns a string representation of the node kind.
func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindVar:
		return "var"
	case KindBinary:
		return "binary"
	case KindFunc:
		return "func"
	}
	return "unknown"
}

// Op identifies a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpPow           // ^
)

// String returns the operator's infix symbol.
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// Precedence returns the operator's binding strength as used by the
// parser: ^ binds tightest, then * and /, then + and -. Equal precedence
// resolves left to right, which makes ^ left-associative (2^3^2 parses as
// (2^3)^2). That is observable, documented behavior.
func (o Op) Precedence() int {
	switch o {
	case OpPow:
		return 3
	case OpMul, OpDiv:
		return 2
	default:
		return 1
	}
}

// FuncName identifies one of the supported unary functions.
type FuncName uint8

const (
	FuncSin FuncName = iota
	FuncCos
	FuncLn
	FuncExp
)

// String returns the function's textual name as it appears in source.
func (f FuncName) String() string {
	switch f {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncLn:
		return "ln"
	case FuncExp:
		return "exp"
	}
	return "?"
}

// FuncByName maps a lower-case identifier to its FuncName.
// The second return value reports whether the name is a known function.
func FuncByName(name string) (FuncName, bool) {
	switch name {
	case "sin":
		return FuncSin, true
	case "cos":
		return FuncCos, true
	case "ln":
		return FuncLn, true
	case "exp":
		return FuncExp, true
	}
	return 0, false
}

// Node is a single node of an expression tree over the numeric domain T.
//
// Nodes are immutable after construction: no operation ever mutates a
// node, so sub-trees may be shared structurally between expressions
// without copying. Which fields are meaningful depends on Kind:
//
//	KindConst:  Value
//	KindVar:    Name (always lower-case)
//	KindBinary: Op, Left, Right
//	KindFunc:   Fn, Arg
type Node[T any] struct {
	Kind  Kind
	Value T
	Name  string
	Op    Op
	Fn    FuncName
	Left  *Node[T]
	Right *Node[T]
	Arg   *Node[T]
}

// NewConst returns a literal node.
func NewConst[T any](v T) *Node[T] {
	return &Node[T]{Kind: KindConst, Value: v}
}

// NewVar returns a variable reference node. The caller is responsible
// for case-normalizing the name.
func NewVar[T any](name string) *Node[T] {
	return &Node[T]{Kind: KindVar, Name: name}
}

// NewBinary returns a binary operator node over the given operands.
func NewBinary[T any](op Op, left, right *Node[T]) *Node[T] {
	return &Node[T]{Kind: KindBinary, Op: op, Left: left, Right: right}
}

// NewFunc returns a function application node.
func NewFunc[T any](fn FuncName, arg *Node[T]) *Node[T] {
	return &Node[T]{Kind: KindFunc, Fn: fn, Arg: arg}
}
