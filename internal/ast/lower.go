package ast

import "fmt"

// MapAST lowers a tree shape to other payload types. Type positions keep
// their parse-stage representation.
func MapAST[T, E, U, V any](a AST[T, E], ft func(T) U, fe func(E) V) AST[U, V] {
	switch a := a.(type) {
	case TopLevel[T, E]:
		return TopLevel[U, V]{Items: mapSlice(a.Items, ft)}
	case StmtAST[T, E]:
		return StmtAST[U, V]{Stmt: MapStmt(a.Stmt, ft)}
	case ExprAST[T, E]:
		return ExprAST[U, V]{Expr: MapExpr(a.Expr, fe)}
	default:
		panic(fmt.Sprintf("ast: unhandled AST variant %T", a))
	}
}

// MapStmt rebuilds s with every payload passed through f.
func MapStmt[T, U any](s Stmt[T], f func(T) U) Stmt[U] {
	switch s := s.(type) {
	case Return[T]:
		return Return[U]{Value: mapPtr(s.Value, f)}
	case Break[T]:
		return Break[U]{}
	case Continue[T]:
		return Continue[U]{}
	case If[T]:
		return If[U]{
			Cond:  f(s.Cond),
			Then:  f(s.Then),
			Elifs: mapSlice(s.Elifs, f),
			Else:  mapPtr(s.Else, f),
		}
	case While[T]:
		return While[U]{Cond: f(s.Cond), Body: mapSlice(s.Body, f), DoWhile: s.DoWhile}
	case For[T]:
		return For[U]{Init: f(s.Init), Cond: f(s.Cond), Step: f(s.Step), Body: mapSlice(s.Body, f)}
	case Block[T]:
		return Block[U]{Stmts: mapSlice(s.Stmts, f)}
	case FuncDef[T]:
		return FuncDef[U]{
			Name:     s.Name,
			Args:     s.Args,
			Ret:      s.Ret,
			Body:     mapPtr(s.Body, f),
			Generics: s.Generics,
		}
	case VarDef[T]:
		return VarDef[U]{Name: s.Name, Type: mapPtr(s.Type, f), Init: f(s.Init), Const: s.Const}
	case ClassDef[T]:
		return ClassDef[U]{
			Name:     mapPtr(s.Name, f),
			Members:  s.Members,
			Generics: s.Generics,
			Methods:  mapSlice(s.Methods, f),
			Struct:   s.Struct,
		}
	case NamespaceDef[T]:
		return NamespaceDef[U]{Name: mapPtr(s.Name, f), Body: mapSlice(s.Body, f)}
	case Import[T]:
		return Import[U]{Path: f(s.Path)}
	case InterfaceDef[T]:
		return InterfaceDef[U]{Name: mapPtr(s.Name, f), Members: mapSlice(s.Members, f), Generics: s.Generics}
	case EnumDef[T]:
		return EnumDef[U]{Name: mapPtr(s.Name, f), Variants: mapSlice(s.Variants, f)}
	default:
		panic(fmt.Sprintf("ast: unhandled Stmt variant %T", s))
	}
}

// MapExpr rebuilds e with every payload passed through f.
func MapExpr[T, U any](e Expr[T], f func(T) U) Expr[U] {
	switch e := e.(type) {
	case ClassInit[T]:
		return ClassInit[U]{Type: e.Type, Args: mapSlice(e.Args, f)}
	case ClassAccess[T]:
		return ClassAccess[U]{Recv: f(e.Recv), Member: e.Member}
	case NamespaceAccess[T]:
		return NamespaceAccess[U]{Recv: f(e.Recv), Member: e.Member, Generics: e.Generics}
	case Ident[T]:
		return Ident[U]{Name: e.Name, Generics: e.Generics}
	case IntLit[T]:
		return IntLit[U]{Value: e.Value}
	case FloatLit[T]:
		return FloatLit[U]{Value: e.Value}
	case StringLit[T]:
		return StringLit[U]{Value: e.Value}
	case BoolLit[T]:
		return BoolLit[U]{Value: e.Value}
	case Call[T]:
		return Call[U]{Callee: f(e.Callee), Args: mapSlice(e.Args, f)}
	case Cast[T]:
		return Cast[U]{Value: f(e.Value), Type: e.Type}
	case BinaryExpr[T]:
		out := BinaryExpr[U]{Op: e.Op, Lhs: f(e.Lhs), Unary: e.Unary}
		if !e.Unary {
			out.Rhs = f(e.Rhs)
		}
		return out
	case Assign[T]:
		return Assign[U]{Target: f(e.Target), Value: f(e.Value)}
	default:
		panic(fmt.Sprintf("ast: unhandled Expr variant %T", e))
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	if in == nil {
		return nil
	}
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}

func mapPtr[T, U any](in *T, f func(T) U) *U {
	if in == nil {
		return nil
	}
	out := f(*in)
	return &out
}
