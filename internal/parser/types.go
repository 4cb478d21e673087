package parser

import (
	"snowball/internal/ast"
	"snowball/internal/token"
)

// parseType разбирает `Name`, `a::b::Name` и `Name<T, U>`.
// Генерик-аргументы относятся к последнему сегменту пути.
func (p *Parser) parseType() (ast.Type, error) {
	name, err := p.expectIdent("type position")
	if err != nil {
		return ast.Type{}, err
	}
	var path []string
	for p.eat(token.ColonColon) {
		path = append(path, name)
		if name, err = p.expectIdent("`::`"); err != nil {
			return ast.Type{}, err
		}
	}
	var generics []ast.Type
	if p.at(token.Lt) {
		if generics, err = p.parseTypeArgs(); err != nil {
			return ast.Type{}, err
		}
	}
	if len(path) == 0 {
		return ast.TypeName(name, generics...), nil
	}

	recv := ast.NewExprNode(ast.Ident[ast.ExprNode]{Name: path[0]})
	for _, seg := range path[1:] {
		recv = ast.NewExprNode(ast.NamespaceAccess[ast.ExprNode]{Recv: recv, Member: seg})
	}
	last := ast.NewExprNode(ast.NamespaceAccess[ast.ExprNode]{Recv: recv, Member: name, Generics: generics})
	return ast.NewType(ast.FromExpr(last)), nil
}

// parseTypeArgs: '<' type (',' type)* '>'
func (p *Parser) parseTypeArgs() ([]ast.Type, error) {
	p.next() // <
	var args []ast.Type
	for {
		ty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		args = append(args, ty)
		if p.eat(token.Gt) {
			return args, nil
		}
		if _, err := p.expect(token.Comma, "generic argument"); err != nil {
			return nil, err
		}
	}
}

// parseGenericDecls: '<' T (':' A ('+' B)*)? ('=' D)? (',' ...)* '>'
func (p *Parser) parseGenericDecls() ([]ast.GenericDecl, error) {
	p.next() // <
	decls := []ast.GenericDecl{}
	for {
		name, err := p.expectIdent("`<`")
		if err != nil {
			return nil, err
		}
		decl := ast.GenericDecl{Name: name}
		if p.eat(token.Colon) {
			for {
				bound, err := p.parseType()
				if err != nil {
					return nil, err
				}
				decl.Impls = append(decl.Impls, bound)
				if !p.eat(token.Plus) {
					break
				}
			}
		}
		if p.eat(token.Assign) {
			def, err := p.parseType()
			if err != nil {
				return nil, err
			}
			decl.Default = &def
		}
		decls = append(decls, decl)
		if p.eat(token.Gt) {
			return decls, nil
		}
		if _, err := p.expect(token.Comma, "generic parameter"); err != nil {
			return nil, err
		}
	}
}
