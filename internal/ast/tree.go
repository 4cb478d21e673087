package ast

// AST is the top-level union. T is the statement/type payload, E the
// expression payload; the parser instantiates AST[Node, ExprNode], later
// stages may reuse the same shape with their own payloads (see MapAST).
type AST[T, E any] interface {
	astNode(T, E)
}

// TopLevel is a whole compilation unit or namespace body.
type TopLevel[T, E any] struct {
	Items []T
}

type StmtAST[T, E any] struct {
	Stmt Stmt[T]
}

type ExprAST[T, E any] struct {
	Expr Expr[E]
}

func (TopLevel[T, E]) astNode(T, E) {}
func (StmtAST[T, E]) astNode(T, E)  {}
func (ExprAST[T, E]) astNode(T, E)  {}

// Stmt is the closed statement vocabulary.
type Stmt[T any] interface {
	stmtOf(T)
}

type (
	Return[T any] struct {
		Value *T
	}

	Break[T any] struct{}

	Continue[T any] struct{}

	// If holds `else if` branches in Elifs as If statements.
	If[T any] struct {
		Cond  T
		Then  T
		Elifs []T
		Else  *T
	}

	While[T any] struct {
		Cond    T
		Body    []T
		DoWhile bool
	}

	For[T any] struct {
		Init T
		Cond T
		Step T
		Body []T
	}

	Block[T any] struct {
		Stmts []T
	}

	// FuncDef with a nil Body is a declaration; nil Generics means the
	// function has no generic parameter list.
	FuncDef[T any] struct {
		Name     string
		Args     FuncArgs
		Ret      Type
		Body     *T
		Generics []GenericDecl
	}

	// VarDef covers `let` and `const`.
	VarDef[T any] struct {
		Name  string
		Type  *T
		Init  T
		Const bool
	}

	ClassDef[T any] struct {
		Name     *T
		Members  []ClassMember
		Generics []GenericDecl
		Methods  []T
		Struct   bool
	}

	NamespaceDef[T any] struct {
		Name *T
		Body []T
	}

	Import[T any] struct {
		Path T
	}

	InterfaceDef[T any] struct {
		Name     *T
		Members  []T
		Generics []GenericDecl
	}

	EnumDef[T any] struct {
		Name     *T
		Variants []T
	}
)

func (Return[T]) stmtOf(T)       {}
func (Break[T]) stmtOf(T)        {}
func (Continue[T]) stmtOf(T)     {}
func (If[T]) stmtOf(T)           {}
func (While[T]) stmtOf(T)        {}
func (For[T]) stmtOf(T)          {}
func (Block[T]) stmtOf(T)        {}
func (FuncDef[T]) stmtOf(T)      {}
func (VarDef[T]) stmtOf(T)       {}
func (ClassDef[T]) stmtOf(T)     {}
func (NamespaceDef[T]) stmtOf(T) {}
func (Import[T]) stmtOf(T)       {}
func (InterfaceDef[T]) stmtOf(T) {}
func (EnumDef[T]) stmtOf(T)      {}

// Expr is the closed expression vocabulary.
type Expr[T any] interface {
	exprOf(T)
}

type (
	ClassInit[T any] struct {
		Type Type
		Args []T
	}

	ClassAccess[T any] struct {
		Recv   T
		Member string
	}

	NamespaceAccess[T any] struct {
		Recv     T
		Member   string
		Generics []Type
	}

	// Ident with nil Generics has no explicit generic arguments.
	Ident[T any] struct {
		Name     string
		Generics []Type
	}

	IntLit[T any] struct{ Value int64 }

	FloatLit[T any] struct{ Value float64 }

	StringLit[T any] struct{ Value string }

	BoolLit[T any] struct{ Value bool }

	Call[T any] struct {
		Callee T
		Args   []T
	}

	Cast[T any] struct {
		Value T
		Type  Type
	}

	// BinaryExpr also carries unary forms: the operand sits in Lhs and Rhs
	// is the zero value.
	BinaryExpr[T any] struct {
		Op    BinaryOp
		Lhs   T
		Rhs   T
		Unary bool
	}

	Assign[T any] struct {
		Target T
		Value  T
	}
)

func (ClassInit[T]) exprOf(T)       {}
func (ClassAccess[T]) exprOf(T)     {}
func (NamespaceAccess[T]) exprOf(T) {}
func (Ident[T]) exprOf(T)           {}
func (IntLit[T]) exprOf(T)          {}
func (FloatLit[T]) exprOf(T)        {}
func (StringLit[T]) exprOf(T)       {}
func (BoolLit[T]) exprOf(T)         {}
func (Call[T]) exprOf(T)            {}
func (Cast[T]) exprOf(T)            {}
func (BinaryExpr[T]) exprOf(T)      {}
func (Assign[T]) exprOf(T)          {}
