package expr

import (
	"strings"

	"github.com/asevik/symexpr/pkg/domain"
	"github.com/asevik/symexpr/pkg/types"
)

// String renders the expression in fully-parenthesized infix form.
//
// Constants use the domain's canonical decimal text form, every binary
// node is wrapped in parentheses and functions render as name(arg), so
// the output is unambiguous and re-parses to an equivalent tree.
func (e Expression[T]) String() string {
	if e.root == nil {
		return ""
	}
	var sb strings.Builder
	renderNode(&sb, e.dom, e.root)
	return sb.String()
}

func renderNode[T any](sb *strings.Builder, d domain.Domain[T], n *types.Node[T]) {
	switch n.Kind {
	case types.KindConst:
		sb.WriteString(d.Format(n.Value))
	case types.KindVar:
		sb.WriteString(n.Name)
	case types.KindBinary:
		sb.WriteByte('(')
		renderNode(sb, d, n.Left)
		sb.WriteString(n.Op.String())
		renderNode(sb, d, n.Right)
		sb.WriteByte(')')
	case types.KindFunc:
		sb.WriteString(n.Fn.String())
		sb.WriteByte('(')
		renderNode(sb, d, n.Arg)
		sb.WriteByte(')')
	}
}
