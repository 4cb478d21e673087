package parser

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"fortio.org/safecast"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/source"
	"snowball/internal/token"
)

// stream builds a token slice and gives every token a distinct one-byte span.
func stream(toks ...token.Token) []token.Token {
	out := make([]token.Token, len(toks))
	for i, tok := range toks {
		start, err := safecast.Conv[uint32](i)
		if err != nil {
			panic(err)
		}
		tok.Span = source.Span{Start: start, End: start + 1}
		out[i] = tok
	}
	return out
}

func kw(k token.Kind) token.Token {
	return token.Token{Kind: k, Text: k.String()}
}

func ident(name string) token.Token {
	return token.Token{Kind: token.Ident, Text: name}
}

func str(s string) token.Token {
	return token.Token{Kind: token.StringLit, Text: strconv.Quote(s)}
}

func num(text string) token.Token {
	return token.Token{Kind: token.IntLit, Text: text}
}

// fnDecl is `fn name();`
func fnDecl(name string) []token.Token {
	return []token.Token{kw(token.KwFn), ident(name), kw(token.LParen), kw(token.RParen), kw(token.Semicolon)}
}

func concat(parts ...[]token.Token) []token.Token {
	var out []token.Token
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func one(toks ...token.Token) []token.Token { return toks }

func parseSource(t *testing.T, src string) (ast.Node, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sn", []byte(src))
	res := ParseFile(context.Background(), fs, id, Options{})
	return res.Tree, res.Bag, res.Err
}

func mustParse(t *testing.T, src string) []ast.Node {
	t.Helper()
	tree, bag, err := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse failed: %s", diagnosticsSummary(bag))
	}
	top, ok := tree.Kind().(ast.TopLevel[ast.Node, ast.ExprNode])
	if !ok {
		t.Fatalf("expected TopLevel, got %T", tree.Kind())
	}
	return top.Items
}

// onlyDiagnostic asserts the bag holds exactly one diagnostic and returns it.
func onlyDiagnostic(t *testing.T, bag *diag.Bag) *diag.Diagnostic {
	t.Helper()
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %s", bag.Len(), diagnosticsSummary(bag))
	}
	return bag.First()
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil || bag.Len() == 0 {
		return "<none>"
	}
	var sb strings.Builder
	for i, d := range bag.Items() {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(d.Code.ID())
		sb.WriteString(" ")
		sb.WriteString(d.Message)
	}
	return sb.String()
}

func stmtOf[S ast.Stmt[ast.Node]](t *testing.T, n ast.Node) S {
	t.Helper()
	s, ok := n.Stmt()
	if !ok {
		t.Fatalf("expected statement, got %T", n.Kind())
	}
	v, ok := s.(S)
	if !ok {
		var zero S
		t.Fatalf("expected %T, got %T", zero, s)
	}
	return v
}

func exprOf[E ast.Expr[ast.ExprNode]](t *testing.T, n ast.ExprNode) E {
	t.Helper()
	v, ok := n.Kind().(E)
	if !ok {
		var zero E
		t.Fatalf("expected %T, got %T", zero, n.Kind())
	}
	return v
}
