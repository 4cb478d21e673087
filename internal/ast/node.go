package ast

import "snowball/internal/attrs"

// Node is the parser's statement/type payload: a boxed AST value plus an
// optional modifier set.
type Node struct {
	kind  AST[Node, ExprNode]
	attrs *attrs.Set
}

// ExprNode is the expression payload.
type ExprNode struct {
	kind  Expr[ExprNode]
	attrs *attrs.Set
}

func NewNode(kind AST[Node, ExprNode]) Node {
	return Node{kind: kind}
}

// NewStmt wraps a statement variant.
func NewStmt(s Stmt[Node]) Node {
	return NewNode(StmtAST[Node, ExprNode]{Stmt: s})
}

// FromExpr lifts an expression into statement position, keeping its modifiers.
func FromExpr(e ExprNode) Node {
	return Node{kind: ExprAST[Node, ExprNode]{Expr: e.kind}, attrs: e.attrs}
}

func (n Node) Kind() AST[Node, ExprNode] {
	return n.kind
}

// Stmt returns the statement variant if n holds one.
func (n Node) Stmt() (Stmt[Node], bool) {
	s, ok := n.kind.(StmtAST[Node, ExprNode])
	if !ok {
		return nil, false
	}
	return s.Stmt, true
}

// Expr returns the expression variant if n holds one.
func (n Node) Expr() (Expr[ExprNode], bool) {
	e, ok := n.kind.(ExprAST[Node, ExprNode])
	if !ok {
		return nil, false
	}
	return e.Expr, true
}

// WithAttrs attaches s. A second call replaces the previous set.
func (n *Node) WithAttrs(s *attrs.Set) *Node {
	n.attrs = s
	return n
}

// Attrs returns the attached set or nil.
func (n Node) Attrs() *attrs.Set {
	return n.attrs
}

func NewExprNode(kind Expr[ExprNode]) ExprNode {
	return ExprNode{kind: kind}
}

func (n ExprNode) Kind() Expr[ExprNode] {
	return n.kind
}

// WithAttrs attaches s. A second call replaces the previous set.
func (n *ExprNode) WithAttrs(s *attrs.Set) *ExprNode {
	n.attrs = s
	return n
}

func (n ExprNode) Attrs() *attrs.Set {
	return n.attrs
}

// TypeName builds the type `name` with optional generic arguments.
func TypeName(name string, generics ...Type) Type {
	var g []Type
	if len(generics) > 0 {
		g = generics
	}
	return NewType(FromExpr(NewExprNode(Ident[ExprNode]{Name: name, Generics: g})))
}
