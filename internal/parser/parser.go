package parser

import (
	"errors"

	"snowball/internal/ast"
	"snowball/internal/attrs"
	"snowball/internal/diag"
	"snowball/internal/source"
	"snowball/internal/token"
)

// ErrAborted is the only error Parse returns. It carries nothing: what went
// wrong is in the parser's diagnostic bag.
var ErrAborted = errors.New("parse aborted")

type Options struct {
	// Bag receives diagnostics; nil gives the parser a private unbounded bag.
	Bag *diag.Bag
}

// Parser - состояние парсера на один поток токенов. Не потокобезопасен;
// разные файлы разбираются разными экземплярами.
type Parser struct {
	tokens []token.Token
	index  int
	tok    token.Token // кэш tokens[index]
	bag    *diag.Bag
}

// New builds a parser over tokens. A missing trailing EOF token is appended.
func New(tokens []token.Token, opts Options) *Parser {
	if n := len(tokens); n == 0 || tokens[n-1].Kind != token.EOF {
		var sp source.Span
		if n > 0 {
			last := tokens[n-1].Span
			sp = source.Span{File: last.File, Start: last.End, End: last.End}
		}
		tokens = append(tokens[:n:n], token.Token{Kind: token.EOF, Span: sp})
	}
	bag := opts.Bag
	if bag == nil {
		bag = diag.NewBag(0)
	}
	return &Parser{
		tokens: tokens,
		tok:    tokens[0],
		bag:    bag,
	}
}

// Parse разбирает всю единицу трансляции до EOF.
func (p *Parser) Parse() (ast.Node, error) {
	items, err := p.ParseGlobal(token.EOF)
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewNode(ast.TopLevel[ast.Node, ast.ExprNode]{Items: items}), nil
}

// Reports returns the diagnostics collected so far.
func (p *Parser) Reports() *diag.Bag {
	return p.bag
}

// next сдвигает курсор ровно на один токен. На EOF стоит на месте.
func (p *Parser) next() {
	if p.index+1 < len(p.tokens) {
		p.index++
		p.tok = p.tokens[p.index]
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.tok.Kind == k
}

// eat consumes the current token if it has kind k.
func (p *Parser) eat(k token.Kind) bool {
	if p.tok.Kind != k {
		return false
	}
	p.next()
	return true
}

// fail reports one diagnostic at the current token and returns ErrAborted.
func (p *Parser) fail(kind diag.ErrorKind, info diag.Info) error {
	diag.ReportKind(diag.BagReporter{Bag: p.bag}, kind, p.tok.Span).WithInfo(info).Emit()
	return ErrAborted
}

// expected fails with UnexpectedEOF at end of input, ExpectedItem otherwise.
func (p *Parser) expected(what, after string) error {
	if p.at(token.EOF) {
		return p.fail(diag.UnexpectedEOF{}, diag.Info{})
	}
	return p.fail(diag.ExpectedItem{What: what, After: after}, diag.Info{})
}

func (p *Parser) expect(k token.Kind, after string) (token.Token, error) {
	tok := p.tok
	if !p.eat(k) {
		return tok, p.expected(describe(k), after)
	}
	return tok, nil
}

func (p *Parser) expectIdent(after string) (string, error) {
	tok, err := p.expect(token.Ident, after)
	return tok.Text, err
}

func describe(k token.Kind) string {
	switch k {
	case token.Ident:
		return "identifier"
	case token.StringLit:
		return "string literal"
	default:
		return "`" + k.String() + "`"
	}
}

// nameNode строит узел-имя для деклараций с необязательным именем.
func nameNode(name string) *ast.Node {
	n := ast.FromExpr(ast.NewExprNode(ast.Ident[ast.ExprNode]{Name: name}))
	return &n
}

func attach(n *ast.Node, h *attrs.Handler) {
	if !h.Empty() {
		n.WithAttrs(h.Freeze())
	}
	h.Reset()
}
