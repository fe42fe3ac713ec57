package symcalc

import (
	"fmt"
	"strings"
)

// String renders h in infix notation with every binary operator fully
// parenthesized: "(a + b)", "(a * b)", "(a ^ b)", "sin(x)", "d/dx(e)" for a
// deferred derivative, and "∫ e dx" for a deferred integral. These printed
// strings are the engine's compatibility surface; do not reformat them.
// Invalid handles render as "<invalid>".
func (a *Arena) String(h Handle) string {
	var sb strings.Builder
	a.writeExpr(&sb, h)
	return sb.String()
}

func (a *Arena) writeExpr(sb *strings.Builder, h Handle) {
	n, err := a.At(h)
	if err != nil {
		sb.WriteString("<invalid>")
		return
	}
	switch n.Kind {
	case KindNumber:
		sb.WriteString(n.Value.String())
	case KindSymbol:
		sb.WriteString(n.Name)
	case KindAdd:
		a.writeBinop(sb, n, " + ")
	case KindMul:
		a.writeBinop(sb, n, " * ")
	case KindPow:
		a.writeBinop(sb, n, " ^ ")
	case KindCall:
		sb.WriteString(n.Fn.String())
		sb.WriteString("(")
		a.writeExpr(sb, n.Left)
		sb.WriteString(")")
	case KindDerivative:
		sb.WriteString("d/d")
		sb.WriteString(n.Name)
		sb.WriteString("(")
		a.writeExpr(sb, n.Left)
		sb.WriteString(")")
	case KindIntegral:
		sb.WriteString("∫ ")
		a.writeExpr(sb, n.Left)
		sb.WriteString(" d")
		sb.WriteString(n.Name)
	}
}

func (a *Arena) writeBinop(sb *strings.Builder, n *Node, op string) {
	left, right := n.Left, n.Right
	sb.WriteString("(")
	a.writeExpr(sb, left)
	sb.WriteString(op)
	a.writeExpr(sb, right)
	sb.WriteString(")")
}

// DumpTree renders an indented diagnostic dump of the node structure, one
// node per line with box-drawing child prefixes.
func (a *Arena) DumpTree(h Handle) string {
	var sb strings.Builder
	a.dumpTree(&sb, h, 0, "")
	return sb.String()
}

func (a *Arena) dumpTree(sb *strings.Builder, h Handle, indent int, prefix string) {
	n, err := a.At(h)
	if err != nil {
		fmt.Fprintf(sb, "%*s%s(invalid)\n", indent, "", prefix)
		return
	}
	var label string
	switch n.Kind {
	case KindNumber:
		label = "NUMBER: " + n.Value.String()
	case KindSymbol:
		label = "SYMBOL: " + n.Name
	case KindAdd:
		label = "ADD"
	case KindMul:
		label = "MUL"
	case KindPow:
		label = "POW"
	case KindCall:
		label = "FUNC: " + n.Fn.String()
	case KindDerivative:
		label = "DIFF w.r.t. " + n.Name
	case KindIntegral:
		label = "INTEGRAL w.r.t. " + n.Name
	default:
		label = "???"
	}
	fmt.Fprintf(sb, "%*s%s%s\n", indent, "", prefix, label)

	switch n.Kind {
	case KindAdd, KindMul, KindPow:
		a.dumpTree(sb, n.Left, indent+4, "├── ")
		a.dumpTree(sb, n.Right, indent+4, "└── ")
	case KindCall, KindDerivative, KindIntegral:
		a.dumpTree(sb, n.Left, indent+4, "└── ")
	}
}
