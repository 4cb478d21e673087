package parser

import (
	"errors"
	"reflect"
	"testing"

	"snowball/internal/ast"
	"snowball/internal/attrs"
	"snowball/internal/diag"
	"snowball/internal/token"
)

func parseGlobal(toks []token.Token, term token.Kind) ([]ast.Node, *diag.Bag, error) {
	p := New(stream(toks...), Options{})
	items, err := p.ParseGlobal(term)
	return items, p.Reports(), err
}

var modifierAttrs = map[token.Kind]attrs.Kind{
	token.KwPublic:   attrs.KindPrivacy,
	token.KwPrivate:  attrs.KindPrivacy,
	token.KwStatic:   attrs.KindStatic,
	token.KwInline:   attrs.KindInline,
	token.KwAbstract: attrs.KindAbstract,
	token.KwFinal:    attrs.KindFinal,
}

func TestParseGlobalTerminatorOnly(t *testing.T) {
	for _, term := range []token.Kind{token.EOF, token.RBrace} {
		t.Run(term.String(), func(t *testing.T) {
			items, bag, err := parseGlobal([]token.Token{kw(term)}, term)
			if err != nil {
				t.Fatalf("unexpected error: %v (%s)", err, diagnosticsSummary(bag))
			}
			if len(items) != 0 {
				t.Fatalf("expected no items, got %d", len(items))
			}
			if bag.Len() != 0 {
				t.Fatalf("expected no diagnostics, got %s", diagnosticsSummary(bag))
			}
		})
	}
}

func TestParseGlobalEOFBeforeTerminator(t *testing.T) {
	_, bag, err := parseGlobal(nil, token.RBrace)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	d := onlyDiagnostic(t, bag)
	if d.Kind != (diag.UnexpectedEOF{}) {
		t.Fatalf("expected UnexpectedEOF, got %#v", d.Kind)
	}
	if d.Severity != diag.SevError || d.Code != diag.SynUnexpectedEOF {
		t.Fatalf("unexpected severity/code: %s %s", d.Severity, d.Code.ID())
	}
}

func TestParseGlobalModifierThenItem(t *testing.T) {
	for mod, kind := range modifierAttrs {
		t.Run(mod.String(), func(t *testing.T) {
			items, bag, err := parseGlobal(concat([]token.Token{kw(mod)}, fnDecl("f")), token.EOF)
			if err != nil {
				t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
			}
			if len(items) != 1 {
				t.Fatalf("expected 1 item, got %d", len(items))
			}
			set := items[0].Attrs()
			if !set.Has(kind) || set.Len() != 1 {
				t.Fatalf("expected only %s, got %s", kind, set)
			}
		})
	}
}

func TestParseGlobalPrivacyValue(t *testing.T) {
	items, _, err := parseGlobal(concat([]token.Token{kw(token.KwPrivate)}, fnDecl("f")), token.EOF)
	if err != nil {
		t.Fatal(err)
	}
	public, ok := items[0].Attrs().Public()
	if !ok || public {
		t.Fatalf("Public() = %v, %v; want false, true", public, ok)
	}
}

func TestParseGlobalModifierWithoutItem(t *testing.T) {
	for mod := range modifierAttrs {
		for _, term := range []token.Kind{token.EOF, token.RBrace} {
			t.Run(mod.String()+"/"+term.String(), func(t *testing.T) {
				_, bag, err := parseGlobal([]token.Token{kw(mod), kw(term)}, term)
				if !errors.Is(err, ErrAborted) {
					t.Fatalf("expected ErrAborted, got %v", err)
				}
				d := onlyDiagnostic(t, bag)
				want := diag.ExpectedItem{What: "global item", After: mod.String()}
				if d.Kind != want {
					t.Fatalf("kind = %#v, want %#v", d.Kind, want)
				}
				if d.Primary.Start != 1 {
					t.Fatalf("diagnostic should point at the token after the modifier, got %s", d.Primary)
				}
				if d.Info == nil || d.Info.Help != globalScopeHelp || d.Info.See != globalScopeSee {
					t.Fatalf("missing help/see: %#v", d.Info)
				}
				if d.Info.Note != "" || d.Info.Info != "" {
					t.Fatalf("unexpected extra info: %#v", d.Info)
				}
			})
		}
	}
}

func TestParseGlobalExternalWithoutItem(t *testing.T) {
	for _, term := range []token.Kind{token.EOF, token.RBrace} {
		t.Run(term.String(), func(t *testing.T) {
			_, bag, err := parseGlobal([]token.Token{kw(token.KwExternal), str("C"), kw(term)}, term)
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("expected ErrAborted, got %v", err)
			}
			d := onlyDiagnostic(t, bag)
			want := diag.ExpectedItem{What: "global item", After: "external"}
			if d.Kind != want {
				t.Fatalf("kind = %#v, want %#v", d.Kind, want)
			}
			if d.Primary.Start != 2 {
				t.Fatalf("diagnostic should point past the specifier, got %s", d.Primary)
			}
		})
	}
}

func TestParseGlobalModifierBeforeNonItem(t *testing.T) {
	cases := map[string][]token.Token{
		"namespace": {kw(token.KwPublic), kw(token.KwNamespace), ident("a"), kw(token.LBrace), kw(token.RBrace)},
		"import":    {kw(token.KwStatic), kw(token.KwImport), ident("a"), kw(token.Semicolon)},
		"ident":     {kw(token.KwFinal), ident("x")},
	}
	for name, toks := range cases {
		t.Run(name, func(t *testing.T) {
			_, bag, err := parseGlobal(toks, token.EOF)
			if err == nil {
				t.Fatal("expected failure")
			}
			d := onlyDiagnostic(t, bag)
			if _, ok := d.Kind.(diag.ExpectedItem); !ok {
				t.Fatalf("expected ExpectedItem, got %#v", d.Kind)
			}
		})
	}
}

func TestParseGlobalExternalLinkage(t *testing.T) {
	cases := map[string]attrs.Linkage{
		"C":        attrs.LinkageC,
		"snowball": attrs.LinkageSnowball,
		"system":   attrs.LinkageSystem,
	}
	for spec, want := range cases {
		t.Run(spec, func(t *testing.T) {
			toks := concat([]token.Token{kw(token.KwExternal), str(spec)}, fnDecl("puts"))
			items, bag, err := parseGlobal(toks, token.EOF)
			if err != nil {
				t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
			}
			got, ok := items[0].Attrs().Linkage()
			if !ok || got != want {
				t.Fatalf("Linkage() = %v, %v; want %v", got, ok, want)
			}
		})
	}
}

func TestParseGlobalInvalidExternalSpecifier(t *testing.T) {
	toks := concat([]token.Token{kw(token.KwExternal), str("rust")}, fnDecl("f"))
	_, bag, err := parseGlobal(toks, token.EOF)
	if !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
	d := onlyDiagnostic(t, bag)
	if d.Kind != (diag.InvalidExternalSpecifier{Text: "rust"}) {
		t.Fatalf("kind = %#v", d.Kind)
	}
	if d.Primary.Start != 1 {
		t.Fatalf("diagnostic should point at the string, got %s", d.Primary)
	}
	want := diag.Info{
		Help: externalSpecHelp,
		Info: "Not a valid external specifier!",
		Note: externalSpecNote,
		See:  externalSpecSee,
	}
	if d.Info == nil || *d.Info != want {
		t.Fatalf("info = %#v, want %#v", d.Info, want)
	}
}

func TestParseGlobalExternalCaseSensitive(t *testing.T) {
	toks := concat([]token.Token{kw(token.KwExternal), str("c")}, fnDecl("f"))
	_, bag, err := parseGlobal(toks, token.EOF)
	if err == nil {
		t.Fatal("expected failure for lowercase c")
	}
	if d := onlyDiagnostic(t, bag); d.Kind != (diag.InvalidExternalSpecifier{Text: "c"}) {
		t.Fatalf("kind = %#v", d.Kind)
	}
}

func TestParseGlobalExternalWithoutString(t *testing.T) {
	cases := map[string][]token.Token{
		"int": concat([]token.Token{kw(token.KwExternal), num("42")}, fnDecl("f")),
		"eof": {kw(token.KwExternal)},
	}
	for name, toks := range cases {
		t.Run(name, func(t *testing.T) {
			_, bag, err := parseGlobal(toks, token.EOF)
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("expected ErrAborted, got %v", err)
			}
			d := onlyDiagnostic(t, bag)
			want := diag.ExpectedItem{What: "external specifier", After: "external"}
			if d.Kind != want {
				t.Fatalf("kind = %#v, want %#v", d.Kind, want)
			}
			if d.Info == nil || d.Info.Help == "" || d.Info.Note == "" || d.Info.See == "" {
				t.Fatalf("expected help, note and see: %#v", d.Info)
			}
			if d.Info.Info != "" {
				t.Fatalf("unexpected info line: %q", d.Info.Info)
			}
		})
	}
}

func TestParseGlobalModifierOrderDoesNotMatter(t *testing.T) {
	ext := []token.Token{kw(token.KwExternal), str("C")}
	orders := [][]token.Token{
		concat([]token.Token{kw(token.KwPublic), kw(token.KwStatic)}, ext),
		concat([]token.Token{kw(token.KwStatic)}, ext, []token.Token{kw(token.KwPublic)}),
		concat(ext, []token.Token{kw(token.KwPublic), kw(token.KwStatic)}),
	}
	var sets []*attrs.Set
	for _, mods := range orders {
		items, bag, err := parseGlobal(concat(mods, fnDecl("f")), token.EOF)
		if err != nil {
			t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
		}
		sets = append(sets, items[0].Attrs())
	}
	for i := 1; i < len(sets); i++ {
		if !reflect.DeepEqual(sets[0], sets[i]) {
			t.Fatalf("attribute sets differ: %s vs %s", sets[0], sets[i])
		}
	}
	if sets[0].Len() != 3 {
		t.Fatalf("expected 3 attributes, got %s", sets[0])
	}
}

func TestParseGlobalUnexpectedToken(t *testing.T) {
	cases := []struct {
		name string
		tok  token.Token
		want string
	}{
		{"int", num("42"), "42"},
		{"ident", ident("x"), "x"},
		{"string", str("hi"), "hi"},
		{"brace", kw(token.RBrace), "}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, bag, err := parseGlobal([]token.Token{tc.tok}, token.EOF)
			if !errors.Is(err, ErrAborted) {
				t.Fatalf("expected ErrAborted, got %v", err)
			}
			d := onlyDiagnostic(t, bag)
			if d.Kind != (diag.UnexpectedToken{Text: tc.want}) {
				t.Fatalf("kind = %#v", d.Kind)
			}
			if d.Primary.Start != 0 {
				t.Fatalf("diagnostic should point at the first token, got %s", d.Primary)
			}
		})
	}
}

func TestParseGlobalStopsAtFirstError(t *testing.T) {
	toks := concat([]token.Token{num("1")}, []token.Token{num("2")}, fnDecl("f"))
	items, bag, err := parseGlobal(toks, token.EOF)
	if err == nil || items != nil {
		t.Fatalf("expected failure without items, got %v, %d items", err, len(items))
	}
	onlyDiagnostic(t, bag)
}

func TestParseGlobalModifiersResetBetweenItems(t *testing.T) {
	toks := concat([]token.Token{kw(token.KwPublic)}, fnDecl("a"), fnDecl("b"))
	items, _, err := parseGlobal(toks, token.EOF)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Attrs() == nil {
		t.Fatal("first item lost its modifiers")
	}
	if items[1].Attrs() != nil {
		t.Fatalf("second item inherited modifiers: %s", items[1].Attrs())
	}
}

func TestParseGlobalNamespaceBody(t *testing.T) {
	toks := concat(
		[]token.Token{kw(token.KwNamespace), ident("std"), kw(token.LBrace), kw(token.KwPublic)},
		fnDecl("f"),
		[]token.Token{kw(token.RBrace)},
		fnDecl("g"),
	)
	items, bag, err := parseGlobal(toks, token.EOF)
	if err != nil {
		t.Fatalf("unexpected error: %s", diagnosticsSummary(bag))
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	ns := stmtOf[ast.NamespaceDef[ast.Node]](t, items[0])
	if len(ns.Body) != 1 || ns.Body[0].Attrs() == nil {
		t.Fatalf("namespace body = %d items", len(ns.Body))
	}
	if items[0].Attrs() != nil {
		t.Fatal("namespace itself should carry no modifiers")
	}
}

func TestParseGlobalNamespaceUnclosed(t *testing.T) {
	toks := concat([]token.Token{kw(token.KwNamespace), ident("std"), kw(token.LBrace)}, fnDecl("f"))
	_, bag, err := parseGlobal(toks, token.EOF)
	if err == nil {
		t.Fatal("expected failure")
	}
	if d := onlyDiagnostic(t, bag); d.Kind != (diag.UnexpectedEOF{}) {
		t.Fatalf("kind = %#v", d.Kind)
	}
}

// Known gap: contradictory modifiers are accepted; the last one wins.
func TestKnownGapContradictoryModifiers(t *testing.T) {
	toks := concat([]token.Token{kw(token.KwPublic), kw(token.KwPrivate)}, fnDecl("f"))
	items, _, err := parseGlobal(toks, token.EOF)
	if err != nil {
		t.Fatal(err)
	}
	public, ok := items[0].Attrs().Public()
	if !ok || public {
		t.Fatalf("Public() = %v, %v; want false, true", public, ok)
	}
}

func TestParseAppendsEOF(t *testing.T) {
	backing := make([]token.Token, 0, 8)
	backing = append(backing, fnDecl("f")...)
	p := New(backing, Options{})
	if p.tokens[len(p.tokens)-1].Kind != token.EOF {
		t.Fatal("New should append EOF")
	}
	if backing[:cap(backing)][len(backing)].Kind == token.EOF {
		t.Fatal("New wrote into the caller's backing array")
	}
	tree, err := p.Parse()
	if err != nil {
		t.Fatalf("unexpected error: %s", diagnosticsSummary(p.Reports()))
	}
	top, ok := tree.Kind().(ast.TopLevel[ast.Node, ast.ExprNode])
	if !ok || len(top.Items) != 1 {
		t.Fatalf("unexpected tree %T", tree.Kind())
	}
}

func TestNextStaysOnEOF(t *testing.T) {
	p := New(nil, Options{})
	p.next()
	p.next()
	if !p.at(token.EOF) || p.index != 0 {
		t.Fatalf("cursor moved past EOF: index %d", p.index)
	}
}

func TestParserSharesBag(t *testing.T) {
	bag := diag.NewBag(0)
	p := New(stream(num("1")), Options{Bag: bag})
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected failure")
	}
	if p.Reports() != bag || bag.Len() != 1 {
		t.Fatalf("diagnostic not recorded in the supplied bag")
	}
}
