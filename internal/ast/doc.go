// Package ast defines the syntax tree produced by the parser.
//
// The tree is made of closed generic unions: AST[T, E] at the top, Stmt[T]
// for statements and declarations, Expr[T] for expressions. Each variant is a
// plain struct; a sealed marker method keeps the sets closed, and every
// consumer switches over all variants (see MapStmt, MapExpr, StmtName).
//
// The parser instantiates the unions with Node and ExprNode. Both wrap the
// variant in an interface value, so children are always stored indirectly,
// and both carry an optional *attrs.Set attached after construction.
//
// Types are ordinary subtrees wrapped in Type so that type positions are
// distinguishable from value positions at compile time.
package ast
