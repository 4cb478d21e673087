package diagfmt

import (
	"fmt"
	"strings"

	"snowball/internal/ast"
	"snowball/internal/attrs"
)

// ASTNode is the serialisable view of a parse tree shared by the tree,
// JSON and YAML dumps.
type ASTNode struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Role     string    `json:"role,omitempty" yaml:"role,omitempty"` // место в родителе: cond, body, arg...
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string    `json:"type,omitempty" yaml:"type,omitempty"`
	Value    string    `json:"value,omitempty" yaml:"value,omitempty"`
	Attrs    []string  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Children []ASTNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// BuildAST converts a parse tree into its dump form.
func BuildAST(n ast.Node) ASTNode {
	return buildNode("", n)
}

func buildNode(role string, n ast.Node) ASTNode {
	var out ASTNode
	switch k := n.Kind().(type) {
	case ast.TopLevel[ast.Node, ast.ExprNode]:
		out = ASTNode{Kind: "TopLevel", Children: buildNodes("", k.Items)}
	case ast.StmtAST[ast.Node, ast.ExprNode]:
		out = buildStmt(k.Stmt)
	case ast.ExprAST[ast.Node, ast.ExprNode]:
		out = buildExpr(ast.NewExprNode(k.Expr))
	case nil:
		out = ASTNode{Kind: "<nil>"}
	default:
		panic(fmt.Sprintf("diagfmt: unhandled AST variant %T", k))
	}
	out.Role = role
	out.Attrs = attrStrings(n.Attrs())
	return out
}

func buildNodes(role string, ns []ast.Node) []ASTNode {
	out := make([]ASTNode, 0, len(ns))
	for _, n := range ns {
		out = append(out, buildNode(role, n))
	}
	return out
}

func buildStmt(s ast.Stmt[ast.Node]) ASTNode {
	out := ASTNode{Kind: ast.StmtName(s)}
	switch s := s.(type) {
	case ast.Return[ast.Node]:
		if s.Value != nil {
			out.Children = []ASTNode{buildNode("value", *s.Value)}
		}
	case ast.Break[ast.Node], ast.Continue[ast.Node]:
	case ast.If[ast.Node]:
		out.Children = append(out.Children, buildNode("cond", s.Cond), buildNode("then", s.Then))
		out.Children = append(out.Children, buildNodes("elif", s.Elifs)...)
		if s.Else != nil {
			out.Children = append(out.Children, buildNode("else", *s.Else))
		}
	case ast.While[ast.Node]:
		if s.DoWhile {
			out.Value = "do"
		}
		out.Children = append([]ASTNode{buildNode("cond", s.Cond)}, buildNodes("body", s.Body)...)
	case ast.For[ast.Node]:
		out.Children = []ASTNode{buildNode("init", s.Init), buildNode("cond", s.Cond), buildNode("step", s.Step)}
		out.Children = append(out.Children, buildNodes("body", s.Body)...)
	case ast.Block[ast.Node]:
		out.Children = buildNodes("", s.Stmts)
	case ast.FuncDef[ast.Node]:
		out.Name = s.Name
		out.Type = ast.FormatType(s.Ret)
		out.Children = buildGenerics(s.Generics)
		for name, ty := range s.Args.All() {
			out.Children = append(out.Children, ASTNode{Kind: "Arg", Role: "arg", Name: name, Type: ast.FormatType(ty)})
		}
		if s.Body != nil {
			out.Children = append(out.Children, buildNode("body", *s.Body))
		}
	case ast.VarDef[ast.Node]:
		out.Name = s.Name
		if s.Const {
			out.Value = "const"
		}
		if s.Type != nil {
			out.Type = ast.FormatType(ast.NewType(*s.Type))
		}
		out.Children = []ASTNode{buildNode("init", s.Init)}
	case ast.ClassDef[ast.Node]:
		out.Name = nameOf(s.Name)
		if s.Struct {
			out.Value = "struct"
		}
		out.Children = buildGenerics(s.Generics)
		for _, m := range s.Members {
			out.Children = append(out.Children, ASTNode{Kind: "Field", Role: "field", Name: m.Name, Type: ast.FormatType(m.Type)})
		}
		out.Children = append(out.Children, buildNodes("method", s.Methods)...)
	case ast.NamespaceDef[ast.Node]:
		out.Name = nameOf(s.Name)
		out.Children = buildNodes("", s.Body)
	case ast.Import[ast.Node]:
		out.Value = exprText(s.Path)
	case ast.InterfaceDef[ast.Node]:
		out.Name = nameOf(s.Name)
		out.Children = append(buildGenerics(s.Generics), buildNodes("method", s.Members)...)
	case ast.EnumDef[ast.Node]:
		out.Name = nameOf(s.Name)
		for _, v := range s.Variants {
			out.Children = append(out.Children, ASTNode{Kind: "Variant", Name: exprText(v)})
		}
	default:
		panic(fmt.Sprintf("diagfmt: unhandled Stmt variant %T", s))
	}
	return out
}

func buildExpr(e ast.ExprNode) ASTNode {
	out := ASTNode{Kind: ast.ExprName(e.Kind()), Attrs: attrStrings(e.Attrs())}
	switch k := e.Kind().(type) {
	case ast.Ident[ast.ExprNode], ast.IntLit[ast.ExprNode], ast.FloatLit[ast.ExprNode],
		ast.StringLit[ast.ExprNode], ast.BoolLit[ast.ExprNode]:
		out.Value = ast.FormatExpr(e)
	case ast.ClassInit[ast.ExprNode]:
		out.Type = ast.FormatType(k.Type)
		out.Children = buildExprs("arg", k.Args)
	case ast.ClassAccess[ast.ExprNode]:
		out.Name = k.Member
		out.Children = []ASTNode{withRole("recv", buildExpr(k.Recv))}
	case ast.NamespaceAccess[ast.ExprNode]:
		out.Name = k.Member
		out.Value = ast.FormatExpr(e)
		out.Children = []ASTNode{withRole("recv", buildExpr(k.Recv))}
	case ast.Call[ast.ExprNode]:
		out.Children = append([]ASTNode{withRole("callee", buildExpr(k.Callee))}, buildExprs("arg", k.Args)...)
	case ast.Cast[ast.ExprNode]:
		out.Type = ast.FormatType(k.Type)
		out.Children = []ASTNode{withRole("value", buildExpr(k.Value))}
	case ast.BinaryExpr[ast.ExprNode]:
		out.Value = k.Op.Symbol()
		if k.Unary {
			out.Kind = "UnaryOp"
			out.Children = []ASTNode{withRole("operand", buildExpr(k.Lhs))}
		} else {
			out.Children = []ASTNode{withRole("lhs", buildExpr(k.Lhs)), withRole("rhs", buildExpr(k.Rhs))}
		}
	case ast.Assign[ast.ExprNode]:
		out.Children = []ASTNode{withRole("target", buildExpr(k.Target)), withRole("value", buildExpr(k.Value))}
	default:
		panic(fmt.Sprintf("diagfmt: unhandled Expr variant %T", k))
	}
	return out
}

func buildExprs(role string, es []ast.ExprNode) []ASTNode {
	out := make([]ASTNode, 0, len(es))
	for _, e := range es {
		out = append(out, withRole(role, buildExpr(e)))
	}
	return out
}

func buildGenerics(gs []ast.GenericDecl) []ASTNode {
	out := make([]ASTNode, 0, len(gs))
	for _, g := range gs {
		n := ASTNode{Kind: "Generic", Role: "generic", Name: g.Name}
		bounds := make([]string, 0, len(g.Impls))
		for _, b := range g.Impls {
			bounds = append(bounds, ast.FormatType(b))
		}
		n.Type = strings.Join(bounds, " + ")
		if g.Default != nil {
			n.Value = ast.FormatType(*g.Default)
		}
		out = append(out, n)
	}
	return out
}

func withRole(role string, n ASTNode) ASTNode {
	n.Role = role
	return n
}

func nameOf(n *ast.Node) string {
	if n == nil {
		return ""
	}
	return exprText(*n)
}

func exprText(n ast.Node) string {
	e, ok := n.Expr()
	if !ok {
		return "<" + ast.NodeName(n) + ">"
	}
	return ast.FormatExpr(ast.NewExprNode(e))
}

func attrStrings(s *attrs.Set) []string {
	all := s.All()
	if len(all) == 0 {
		return nil
	}
	out := make([]string, len(all))
	for i, a := range all {
		out[i] = a.String()
	}
	return out
}
