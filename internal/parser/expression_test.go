package parser

import (
	"errors"
	"math"
	"strings"
	"testing"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/lexer"
	"snowball/internal/source"
	"snowball/internal/token"
)

func parseExprSource(t *testing.T, src string) (ast.ExprNode, *diag.Bag, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr.sn", []byte(src))
	bag := diag.NewBag(0)
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("lex errors: %s", diagnosticsSummary(bag))
	}
	p := New(toks, Options{Bag: bag})
	e, err := p.parseExpr()
	if err == nil && !p.at(token.EOF) {
		t.Fatalf("trailing input at %s", p.tok.Text)
	}
	return e, bag, err
}

func TestParseExprShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"a - b - c", "((a - b) - c)"},
		{"a = b = c", "(a = (b = c))"},
		{"a || b && c", "(a || (b && c))"},
		{"a == b < c", "(a == (b < c))"},
		{"a < b + 1", "(a < (b + 1))"},
		{"x % 2 != 0", "((x % 2) != 0)"},
		{"-a * b", "((-a) * b)"},
		{"+1", "(+1)"},
		{"--a", "(-(-a))"},
		{"delete p", "(delete p)"},
		{"a + b as i64", "(a + (b as i64))"},
		{"x as i32 as f64", "((x as i32) as f64)"},
		{"f(1, g(2))", "f(1, g(2))"},
		{"f()", "f()"},
		{"o.field.method(x)", "o.field.method(x)"},
		{"std::io::println(\"hi\")", `std::io::println("hi")`},
		{"max::<i32>(a, b)", "max<i32>(a, b)"},
		{"std::max::<T, U>", "std::max<T, U>"},
		{"xs[i + 1]", "xs[(i + 1)]"},
		{"new Vec<i32>(1, 2)", "new Vec<i32>(1, 2)"},
		{"new std::Map<K, V>()", "new std::Map<K, V>()"},
		{"true && false", "(true && false)"},
		{"1.5e3", "1500"},
		{"0x_ff + 0b101 + 0o17 + 1_000", "(((255 + 5) + 15) + 1000)"},
		{"010", "10"},
		{"a.b = 3", "(a.b = 3)"},
		{"-9223372036854775807", "(-9223372036854775807)"},
		{"-9223372036854775808", "-9223372036854775808"},
		{"-0x8000_0000_0000_0000 + 1", "(-9223372036854775808 + 1)"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			e, bag, err := parseExprSource(t, tc.src)
			if err != nil {
				t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
			}
			if got := ast.FormatExpr(e); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestParseExprBinaryOps(t *testing.T) {
	ops := map[string]ast.BinaryOp{
		"+": ast.OpAdd, "-": ast.OpSub, "*": ast.OpMul, "/": ast.OpDiv, "%": ast.OpMod,
		"==": ast.OpEq, "!=": ast.OpNe, "<": ast.OpLt, "<=": ast.OpLe, ">": ast.OpGt, ">=": ast.OpGe,
		"&&": ast.OpAnd, "||": ast.OpOr,
	}
	for sym, want := range ops {
		t.Run(sym, func(t *testing.T) {
			e, bag, err := parseExprSource(t, "a "+sym+" b")
			if err != nil {
				t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
			}
			bin := exprOf[ast.BinaryExpr[ast.ExprNode]](t, e)
			if bin.Op != want || bin.Unary {
				t.Fatalf("got %s (unary=%v), want %s", bin.Op, bin.Unary, want)
			}
		})
	}
}

func TestParseExprLiterals(t *testing.T) {
	e, _, err := parseExprSource(t, `"a\tb"`)
	if err != nil {
		t.Fatal(err)
	}
	if s := exprOf[ast.StringLit[ast.ExprNode]](t, e); s.Value != "a\tb" {
		t.Fatalf("string value = %q", s.Value)
	}

	e, _, err = parseExprSource(t, "3.25")
	if err != nil {
		t.Fatal(err)
	}
	if f := exprOf[ast.FloatLit[ast.ExprNode]](t, e); f.Value != 3.25 {
		t.Fatalf("float value = %v", f.Value)
	}
}

func TestParseExprTurbofishOnce(t *testing.T) {
	_, bag, err := parseExprSource(t, "f::<i32>::<i64>")
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	if d := onlyDiagnostic(t, bag); d.Code != diag.SynUnexpectedToken {
		t.Fatalf("code = %s", d.Code.ID())
	}
}

func TestParseExprInvalidLiteral(t *testing.T) {
	for _, src := range []string{"99999999999999999999", "9223372036854775808", "-9223372036854775809"} {
		_, bag, err := parseExprSource(t, src)
		if !errors.Is(err, ErrAborted) {
			t.Fatalf("%s: expected ErrAborted, got %v", src, err)
		}
		d := onlyDiagnostic(t, bag)
		if d.Kind != (diag.InvalidLiteral{Text: strings.TrimPrefix(src, "-")}) {
			t.Fatalf("%s: kind = %#v", src, d.Kind)
		}
	}
}

func TestParseExprMinInt(t *testing.T) {
	e, bag, err := parseExprSource(t, "-9223372036854775808")
	if err != nil {
		t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
	}
	if lit := exprOf[ast.IntLit[ast.ExprNode]](t, e); lit.Value != math.MinInt64 {
		t.Fatalf("value = %d", lit.Value)
	}
}

func TestParseExprErrors(t *testing.T) {
	cases := []struct {
		src  string
		want diag.ErrorKind
	}{
		{"1 +", diag.UnexpectedEOF{}},
		{"(1", diag.UnexpectedEOF{}},
		{"(1;", diag.ExpectedItem{What: "`)`", After: "parenthesized expression"}},
		{"f(1 2)", diag.ExpectedItem{What: "`,`", After: "call argument"}},
		{"a.1", diag.ExpectedItem{What: "identifier", After: "`.`"}},
		{"new Vec", diag.UnexpectedEOF{}},
		{"new Vec;", diag.ExpectedItem{What: "`(`", After: "`new` type"}},
		{"* 2", diag.UnexpectedToken{Text: "*"}},
		{"xs[1", diag.UnexpectedEOF{}},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			_, bag, err := parseExprSource(t, tc.src)
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("expected ErrAborted, got %v", err)
			}
			if d := onlyDiagnostic(t, bag); d.Kind != tc.want {
				t.Fatalf("kind = %#v, want %#v", d.Kind, tc.want)
			}
		})
	}
}

func TestParseIntLiteral(t *testing.T) {
	cases := map[string]int64{
		"0":      0,
		"42":     42,
		"007":    7,
		"0x1F":   31,
		"0XfF":   255,
		"0b1010": 10,
		"0o777":  511,
		"1_000":  1000,
	}
	for text, want := range cases {
		got, ok := parseIntLiteral(text)
		if !ok || got != want {
			t.Errorf("parseIntLiteral(%q) = %d, %v; want %d", text, got, ok, want)
		}
	}
	if _, ok := parseIntLiteral("9223372036854775808"); ok {
		t.Error("overflow should be rejected")
	}
}
