package parser

import (
	"snowball/internal/ast"
	"snowball/internal/attrs"
	"snowball/internal/diag"
	"snowball/internal/token"
)

const (
	globalScopeHelp     = "There are only a few items that can be declared at the global scope"
	globalScopeSee      = "https://snowball-lang.gitbook.io/docs/language-reference/global-scope"
	externalSpecNote    = "External specifiers are used to specify the data that is being imported from an external source"
	externalSpecSee     = "https://snowball-lang.gitbook.io/docs/language-reference/external-specifier"
	externalSpecHelp    = "The external specifier must be one of the following: 'C', 'snowball', 'system'"
	externalSpecLitHelp = "The external specifier must be a string literal"
)

// simpleModifiers - модификаторы без аргументов.
var simpleModifiers = map[token.Kind]attrs.Attr{
	token.KwPublic:   attrs.Privacy(true),
	token.KwPrivate:  attrs.Privacy(false),
	token.KwStatic:   attrs.Static(),
	token.KwInline:   attrs.Inline(),
	token.KwAbstract: attrs.Abstract(),
	token.KwFinal:    attrs.Final(),
}

// ParseGlobal разбирает декларации до токена term (EOF для файла, '}' для
// namespace). Модификаторы копятся в одном Handler и навешиваются на
// следующий item. term остаётся текущим токеном.
func (p *Parser) ParseGlobal(term token.Kind) ([]ast.Node, error) {
	handler := attrs.NewHandler()
	var items []ast.Node
	for !p.at(term) {
		switch kind := p.tok.Kind; {
		case kind == token.EOF:
			return nil, p.fail(diag.UnexpectedEOF{}, diag.Info{})
		case kind.IsModifier():
			if err := p.parseModifier(handler, p.expectGlobalItem); err != nil {
				return nil, err
			}
		case isItemKeyword(kind):
			item, err := p.parseItem()
			if err != nil {
				return nil, err
			}
			attach(&item, handler)
			items = append(items, item)
		default:
			return nil, p.fail(diag.UnexpectedToken{Text: p.tok.Value()}, diag.Info{})
		}
	}
	return items, nil
}

// parseModifier consumes one modifier (with its linkage string for
// `external`), records it and runs check with the modifier's name.
func (p *Parser) parseModifier(h *attrs.Handler, check func(after string) error) error {
	kind := p.tok.Kind
	p.next()
	if kind == token.KwExternal {
		if err := p.parseExternalSpecifier(h); err != nil {
			return err
		}
	} else {
		h.Add(simpleModifiers[kind])
	}
	return check(kind.String())
}

func (p *Parser) parseExternalSpecifier(h *attrs.Handler) error {
	if !p.at(token.StringLit) {
		return p.fail(diag.ExpectedItem{What: "external specifier", After: "external"}, diag.Info{
			Help: externalSpecLitHelp,
			Note: externalSpecNote,
			See:  externalSpecSee,
		})
	}
	spec := p.tok.Value()
	linkage, ok := attrs.ParseLinkage(spec)
	if !ok {
		return p.fail(diag.InvalidExternalSpecifier{Text: spec}, diag.Info{
			Help: externalSpecHelp,
			Info: "Not a valid external specifier!",
			Note: externalSpecNote,
			See:  externalSpecSee,
		})
	}
	h.Add(attrs.External(linkage))
	p.next()
	return nil
}

// expectGlobalItem проверяет, что после модификатора идёт декларация или ещё
// один модификатор.
func (p *Parser) expectGlobalItem(after string) error {
	if p.tok.Kind.IsGlobalItemStart() {
		return nil
	}
	return p.fail(diag.ExpectedItem{What: "global item", After: after}, diag.Info{
		Help: globalScopeHelp,
		See:  globalScopeSee,
	})
}

func isItemKeyword(k token.Kind) bool {
	switch k {
	case token.KwFn, token.KwStruct, token.KwEnum, token.KwClass, token.KwConst,
		token.KwInterface, token.KwNamespace, token.KwImport:
		return true
	default:
		return false
	}
}

func (p *Parser) parseItem() (ast.Node, error) {
	switch p.tok.Kind {
	case token.KwFn:
		return p.parseFn(fnBodyOptional)
	case token.KwClass:
		return p.parseClass()
	case token.KwStruct:
		return p.parseStruct()
	case token.KwEnum:
		return p.parseEnum()
	case token.KwInterface:
		return p.parseInterface()
	case token.KwConst:
		return p.parseVarDef(true)
	case token.KwNamespace:
		return p.parseNamespace()
	case token.KwImport:
		return p.parseImport()
	default:
		return ast.Node{}, p.fail(diag.UnexpectedToken{Text: p.tok.Value()}, diag.Info{})
	}
}
