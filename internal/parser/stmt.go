package parser

import (
	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/token"
)

// parseBlock: '{' stmt* '}'
func (p *Parser) parseBlock() (ast.Node, error) {
	if _, err := p.expect(token.LBrace, "block start"); err != nil {
		return ast.Node{}, err
	}
	stmts, err := p.parseStmtsUntilBrace()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewStmt(ast.Block[ast.Node]{Stmts: stmts}), nil
}

func (p *Parser) parseStmtsUntilBrace() ([]ast.Node, error) {
	stmts := []ast.Node{}
	for !p.eat(token.RBrace) {
		if p.at(token.EOF) {
			return nil, p.fail(diag.UnexpectedEOF{}, diag.Info{})
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (p *Parser) parseStmt() (ast.Node, error) {
	switch p.tok.Kind {
	case token.KwLet:
		return p.parseVarDef(false)
	case token.KwConst:
		return p.parseVarDef(true)
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak, token.KwContinue:
		var n ast.Node
		after := p.tok.Kind.String()
		if p.at(token.KwBreak) {
			n = ast.NewStmt(ast.Break[ast.Node]{})
		} else {
			n = ast.NewStmt(ast.Continue[ast.Node]{})
		}
		p.next()
		if _, err := p.expect(token.Semicolon, "`"+after+"`"); err != nil {
			return ast.Node{}, err
		}
		return n, nil
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwFor:
		return p.parseFor()
	case token.LBrace:
		return p.parseBlock()
	default:
		e, err := p.parseExpr()
		if err != nil {
			return ast.Node{}, err
		}
		if _, err := p.expect(token.Semicolon, "expression"); err != nil {
			return ast.Node{}, err
		}
		return ast.FromExpr(e), nil
	}
}

func (p *Parser) parseReturn() (ast.Node, error) {
	p.next() // return
	ret := ast.Return[ast.Node]{}
	if !p.eat(token.Semicolon) {
		e, err := p.parseExpr()
		if err != nil {
			return ast.Node{}, err
		}
		v := ast.FromExpr(e)
		ret.Value = &v
		if _, err := p.expect(token.Semicolon, "return value"); err != nil {
			return ast.Node{}, err
		}
	}
	return ast.NewStmt(ret), nil
}

// if c { } else if d { } else { }
func (p *Parser) parseIf() (ast.Node, error) {
	cond, then, err := p.parseCondBlock()
	if err != nil {
		return ast.Node{}, err
	}
	stmt := ast.If[ast.Node]{Cond: cond, Then: then}
	for p.eat(token.KwElse) {
		if !p.at(token.KwIf) {
			els, err := p.parseBlock()
			if err != nil {
				return ast.Node{}, err
			}
			stmt.Else = &els
			break
		}
		c, t, err := p.parseCondBlock()
		if err != nil {
			return ast.Node{}, err
		}
		stmt.Elifs = append(stmt.Elifs, ast.NewStmt(ast.If[ast.Node]{Cond: c, Then: t}))
	}
	return ast.NewStmt(stmt), nil
}

// parseCondBlock: ('if' | 'while') expr block
func (p *Parser) parseCondBlock() (cond, body ast.Node, err error) {
	p.next() // if / while
	e, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, ast.Node{}, err
	}
	body, err = p.parseBlock()
	if err != nil {
		return ast.Node{}, ast.Node{}, err
	}
	return ast.FromExpr(e), body, nil
}

func (p *Parser) parseWhile() (ast.Node, error) {
	cond, body, err := p.parseCondBlock()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewStmt(ast.While[ast.Node]{Cond: cond, Body: blockStmts(body)}), nil
}

// do { } while c;
func (p *Parser) parseDoWhile() (ast.Node, error) {
	p.next() // do
	body, err := p.parseBlock()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.KwWhile, "`do` block"); err != nil {
		return ast.Node{}, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.Semicolon, "`do while` condition"); err != nil {
		return ast.Node{}, err
	}
	return ast.NewStmt(ast.While[ast.Node]{Cond: ast.FromExpr(cond), Body: blockStmts(body), DoWhile: true}), nil
}

// for let i = 0; i < n; i = i + 1 { }
func (p *Parser) parseFor() (ast.Node, error) {
	p.next() // for
	var init ast.Node
	var err error
	if p.at(token.KwLet) {
		init, err = p.parseVarDefNoSemi(false)
	} else {
		var e ast.ExprNode
		e, err = p.parseExpr()
		init = ast.FromExpr(e)
	}
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.Semicolon, "`for` initializer"); err != nil {
		return ast.Node{}, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.Semicolon, "`for` condition"); err != nil {
		return ast.Node{}, err
	}
	step, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return ast.Node{}, err
	}
	return ast.NewStmt(ast.For[ast.Node]{
		Init: init,
		Cond: ast.FromExpr(cond),
		Step: ast.FromExpr(step),
		Body: blockStmts(body),
	}), nil
}

func blockStmts(n ast.Node) []ast.Node {
	s, _ := n.Stmt()
	if b, ok := s.(ast.Block[ast.Node]); ok {
		return b.Stmts
	}
	return []ast.Node{n}
}
