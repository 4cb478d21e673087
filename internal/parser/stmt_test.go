package parser

import (
	"errors"
	"testing"

	"snowball/internal/ast"
	"snowball/internal/diag"
)

// bodyOf parses `fn main() { src }` and returns the body statements.
func bodyOf(t *testing.T, src string) []ast.Node {
	t.Helper()
	items := mustParse(t, "fn main() {\n"+src+"\n}")
	fn := stmtOf[ast.FuncDef[ast.Node]](t, items[0])
	return stmtOf[ast.Block[ast.Node]](t, *fn.Body).Stmts
}

func exprString(t *testing.T, n ast.Node) string {
	t.Helper()
	e, ok := n.Expr()
	if !ok {
		t.Fatalf("expected expression, got %s", ast.NodeName(n))
	}
	return ast.FormatExpr(ast.NewExprNode(e))
}

func TestParseStatementKinds(t *testing.T) {
	stmts := bodyOf(t, `
let x = 1;
let y: i64 = x as i64;
const z = 2;
x = x + 1;
{ break; continue; }
return;
`)
	want := []string{"VarDef", "VarDef", "VarDef", "Assign", "Block", "Return"}
	if len(stmts) != len(want) {
		t.Fatalf("expected %d statements, got %d", len(want), len(stmts))
	}
	for i, name := range want {
		if got := ast.NodeName(stmts[i]); got != name {
			t.Errorf("statement %d = %s, want %s", i, got, name)
		}
	}
	let := stmtOf[ast.VarDef[ast.Node]](t, stmts[1])
	if let.Const || let.Type == nil || exprString(t, let.Init) != "(x as i64)" {
		t.Fatalf("let = %+v", let)
	}
	if ret := stmtOf[ast.Return[ast.Node]](t, stmts[5]); ret.Value != nil {
		t.Fatal("bare return should have no value")
	}
}

func TestParseIfChain(t *testing.T) {
	stmts := bodyOf(t, `
if a < b { return 1; } else if a == b { return 0; } else if c { } else { return -1; }
`)
	stmt := stmtOf[ast.If[ast.Node]](t, stmts[0])
	if got := exprString(t, stmt.Cond); got != "(a < b)" {
		t.Fatalf("cond = %q", got)
	}
	if len(stmt.Elifs) != 2 {
		t.Fatalf("elifs = %d", len(stmt.Elifs))
	}
	elif := stmtOf[ast.If[ast.Node]](t, stmt.Elifs[0])
	if got := exprString(t, elif.Cond); got != "(a == b)" {
		t.Fatalf("elif cond = %q", got)
	}
	if elif.Else != nil || len(elif.Elifs) != 0 {
		t.Fatal("elif should not nest further branches")
	}
	if stmt.Else == nil {
		t.Fatal("missing else")
	}
	if els := stmtOf[ast.Block[ast.Node]](t, *stmt.Else); len(els.Stmts) != 1 {
		t.Fatalf("else = %d statements", len(els.Stmts))
	}
}

func TestParseLoops(t *testing.T) {
	stmts := bodyOf(t, `
while i < 10 { i = i + 1; }
do { i = i - 1; } while i > 0;
for let j = 0; j < n; j = j + 1 { f(j); g(j); }
for i = 0; i < n; i = i + 1 { }
`)
	w := stmtOf[ast.While[ast.Node]](t, stmts[0])
	if w.DoWhile || len(w.Body) != 1 || exprString(t, w.Cond) != "(i < 10)" {
		t.Fatalf("while = %+v", w)
	}
	dw := stmtOf[ast.While[ast.Node]](t, stmts[1])
	if !dw.DoWhile || exprString(t, dw.Cond) != "(i > 0)" {
		t.Fatalf("do-while = %+v", dw)
	}
	f := stmtOf[ast.For[ast.Node]](t, stmts[2])
	if ast.NodeName(f.Init) != "VarDef" || len(f.Body) != 2 {
		t.Fatalf("for = %+v", f)
	}
	if got := exprString(t, f.Step); got != "(j = (j + 1))" {
		t.Fatalf("step = %q", got)
	}
	g := stmtOf[ast.For[ast.Node]](t, stmts[3])
	if ast.NodeName(g.Init) != "Assign" || len(g.Body) != 0 {
		t.Fatalf("for = %+v", g)
	}
}

func TestParseStatementErrors(t *testing.T) {
	cases := []struct {
		src  string
		want diag.ErrorKind
	}{
		{"fn f() { let x = 1 }", diag.ExpectedItem{What: "`;`", After: "variable declaration"}},
		{"fn f() { let = 1; }", diag.ExpectedItem{What: "identifier", After: "`let`"}},
		{"fn f() { break }", diag.ExpectedItem{What: "`;`", After: "`break`"}},
		{"fn f() { return 1 }", diag.ExpectedItem{What: "`;`", After: "return value"}},
		{"fn f() { f() }", diag.ExpectedItem{What: "`;`", After: "expression"}},
		{"fn f() { if x return; }", diag.ExpectedItem{What: "`{`", After: "block start"}},
		{"fn f() { do { } until x; }", diag.ExpectedItem{What: "`while`", After: "`do` block"}},
		{"fn f() { for let i = 0 i < 1; i = 1 { } }", diag.ExpectedItem{What: "`;`", After: "`for` initializer"}},
		{"fn f() { x = 1;", diag.UnexpectedEOF{}},
		{"fn f() { fn g() {} }", diag.UnexpectedToken{Text: "fn"}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, bag, err := parseSource(t, tc.src)
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("expected ErrAborted, got %v", err)
			}
			if d := onlyDiagnostic(t, bag); d.Kind != tc.want {
				t.Fatalf("kind = %#v, want %#v", d.Kind, tc.want)
			}
		})
	}
}
