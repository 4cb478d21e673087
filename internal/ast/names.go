package ast

import "fmt"

// StmtName returns the variant name of s, e.g. "FuncDef".
func StmtName[T any](s Stmt[T]) string {
	switch s.(type) {
	case Return[T]:
		return "Return"
	case Break[T]:
		return "Break"
	case Continue[T]:
		return "Continue"
	case If[T]:
		return "If"
	case While[T]:
		return "While"
	case For[T]:
		return "For"
	case Block[T]:
		return "Block"
	case FuncDef[T]:
		return "FuncDef"
	case VarDef[T]:
		return "VarDef"
	case ClassDef[T]:
		return "ClassDef"
	case NamespaceDef[T]:
		return "NamespaceDef"
	case Import[T]:
		return "Import"
	case InterfaceDef[T]:
		return "InterfaceDef"
	case EnumDef[T]:
		return "EnumDef"
	default:
		panic(fmt.Sprintf("ast: unhandled Stmt variant %T", s))
	}
}

// ExprName returns the variant name of e, e.g. "Call".
func ExprName[T any](e Expr[T]) string {
	switch e.(type) {
	case ClassInit[T]:
		return "ClassInit"
	case ClassAccess[T]:
		return "ClassAccess"
	case NamespaceAccess[T]:
		return "NamespaceAccess"
	case Ident[T]:
		return "Ident"
	case IntLit[T]:
		return "Int"
	case FloatLit[T]:
		return "Float"
	case StringLit[T]:
		return "String"
	case BoolLit[T]:
		return "Bool"
	case Call[T]:
		return "Call"
	case Cast[T]:
		return "Cast"
	case BinaryExpr[T]:
		return "BinaryOp"
	case Assign[T]:
		return "Assign"
	default:
		panic(fmt.Sprintf("ast: unhandled Expr variant %T", e))
	}
}

// NodeName names the variant held by n.
func NodeName(n Node) string {
	switch k := n.Kind().(type) {
	case TopLevel[Node, ExprNode]:
		return "TopLevel"
	case StmtAST[Node, ExprNode]:
		return StmtName(k.Stmt)
	case ExprAST[Node, ExprNode]:
		return ExprName(k.Expr)
	default:
		panic(fmt.Sprintf("ast: unhandled AST variant %T", k))
	}
}
