package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatExpr renders e on one line with every binary and unary operation
// parenthesised, e.g. `(a + (b * c))`.
func FormatExpr(e ExprNode) string {
	var sb strings.Builder
	writeExpr(&sb, e.Kind())
	return sb.String()
}

// FormatType renders a type position, e.g. `std::Vec<i32>`.
func FormatType(t Type) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Type) {
	e, ok := t.Node().Expr()
	if !ok {
		sb.WriteString("<" + NodeName(t.Node()) + ">")
		return
	}
	writeExpr(sb, e)
}

func writeExpr(sb *strings.Builder, e Expr[ExprNode]) {
	switch e := e.(type) {
	case Ident[ExprNode]:
		sb.WriteString(e.Name)
		writeGenerics(sb, e.Generics)
	case IntLit[ExprNode]:
		sb.WriteString(strconv.FormatInt(e.Value, 10))
	case FloatLit[ExprNode]:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case StringLit[ExprNode]:
		sb.WriteString(strconv.Quote(e.Value))
	case BoolLit[ExprNode]:
		sb.WriteString(strconv.FormatBool(e.Value))
	case ClassInit[ExprNode]:
		sb.WriteString("new ")
		writeType(sb, e.Type)
		writeArgs(sb, e.Args)
	case ClassAccess[ExprNode]:
		writeExpr(sb, e.Recv.Kind())
		sb.WriteString("." + e.Member)
	case NamespaceAccess[ExprNode]:
		writeExpr(sb, e.Recv.Kind())
		sb.WriteString("::" + e.Member)
		writeGenerics(sb, e.Generics)
	case Call[ExprNode]:
		writeExpr(sb, e.Callee.Kind())
		writeArgs(sb, e.Args)
	case Cast[ExprNode]:
		sb.WriteString("(")
		writeExpr(sb, e.Value.Kind())
		sb.WriteString(" as ")
		writeType(sb, e.Type)
		sb.WriteString(")")
	case BinaryExpr[ExprNode]:
		writeBinary(sb, e)
	case Assign[ExprNode]:
		sb.WriteString("(")
		writeExpr(sb, e.Target.Kind())
		sb.WriteString(" = ")
		writeExpr(sb, e.Value.Kind())
		sb.WriteString(")")
	default:
		panic(fmt.Sprintf("ast: unhandled Expr variant %T", e))
	}
}

func writeBinary(sb *strings.Builder, e BinaryExpr[ExprNode]) {
	switch {
	case e.Op == OpIndex:
		writeExpr(sb, e.Lhs.Kind())
		sb.WriteString("[")
		writeExpr(sb, e.Rhs.Kind())
		sb.WriteString("]")
	case e.Unary:
		sym := e.Op.Symbol()
		sb.WriteString("(" + sym)
		if e.Op == OpDel || e.Op == OpNew {
			sb.WriteString(" ")
		}
		writeExpr(sb, e.Lhs.Kind())
		sb.WriteString(")")
	default:
		sb.WriteString("(")
		writeExpr(sb, e.Lhs.Kind())
		sb.WriteString(" " + e.Op.Symbol() + " ")
		writeExpr(sb, e.Rhs.Kind())
		sb.WriteString(")")
	}
}

func writeArgs(sb *strings.Builder, args []ExprNode) {
	sb.WriteString("(")
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeExpr(sb, a.Kind())
	}
	sb.WriteString(")")
}

func writeGenerics(sb *strings.Builder, generics []Type) {
	if len(generics) == 0 {
		return
	}
	sb.WriteString("<")
	for i, g := range generics {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeType(sb, g)
	}
	sb.WriteString(">")
}
