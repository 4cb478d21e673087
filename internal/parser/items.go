package parser

import (
	"snowball/internal/ast"
	"snowball/internal/attrs"
	"snowball/internal/diag"
	"snowball/internal/token"
)

type fnBodyMode uint8

const (
	fnBodyOptional fnBodyMode = iota // `{ ... }` или `;`
	fnNoBody                         // только сигнатура (interface)
)

// fn name<T>(a: A, b: B) -> R { ... }
func (p *Parser) parseFn(mode fnBodyMode) (ast.Node, error) {
	p.next() // fn
	name, err := p.expectIdent("`fn`")
	if err != nil {
		return ast.Node{}, err
	}
	def := ast.FuncDef[ast.Node]{Name: name}
	if p.at(token.Lt) {
		if def.Generics, err = p.parseGenericDecls(); err != nil {
			return ast.Node{}, err
		}
	}
	if def.Args, err = p.parseFnArgs(); err != nil {
		return ast.Node{}, err
	}
	def.Ret = ast.TypeName("void")
	if p.eat(token.Arrow) {
		if def.Ret, err = p.parseType(); err != nil {
			return ast.Node{}, err
		}
	}

	switch {
	case p.eat(token.Semicolon):
	case mode == fnNoBody:
		return ast.Node{}, p.expected("`;`", "function signature")
	case p.at(token.LBrace):
		body, err := p.parseBlock()
		if err != nil {
			return ast.Node{}, err
		}
		def.Body = &body
	default:
		return ast.Node{}, p.expected("function body", "function signature")
	}
	return ast.NewStmt(def), nil
}

func (p *Parser) parseFnArgs() (ast.FuncArgs, error) {
	var args ast.FuncArgs
	if _, err := p.expect(token.LParen, "function name"); err != nil {
		return args, err
	}
	for !p.eat(token.RParen) {
		if args.Len() > 0 {
			if _, err := p.expect(token.Comma, "argument"); err != nil {
				return args, err
			}
		}
		nameTok := p.tok
		name, err := p.expectIdent("`(`")
		if err != nil {
			return args, err
		}
		if _, err := p.expect(token.Colon, "argument name"); err != nil {
			return args, err
		}
		ty, err := p.parseType()
		if err != nil {
			return args, err
		}
		if !args.Add(name, ty) {
			diag.ReportKind(diag.BagReporter{Bag: p.bag}, diag.DuplicateArgument{Name: name}, nameTok.Span).Emit()
			return args, ErrAborted
		}
	}
	return args, nil
}

// class Name<T> { field: T; public fn get() -> T { ... } }
func (p *Parser) parseClass() (ast.Node, error) {
	p.next() // class
	def := ast.ClassDef[ast.Node]{}
	if p.at(token.Ident) {
		def.Name = nameNode(p.tok.Text)
		p.next()
	}
	var err error
	if p.at(token.Lt) {
		if def.Generics, err = p.parseGenericDecls(); err != nil {
			return ast.Node{}, err
		}
	}
	if _, err = p.expect(token.LBrace, "class declaration"); err != nil {
		return ast.Node{}, err
	}

	handler := attrs.NewHandler()
	for !p.eat(token.RBrace) {
		switch kind := p.tok.Kind; {
		case kind.IsModifier():
			if err := p.parseModifier(handler, p.expectMethod); err != nil {
				return ast.Node{}, err
			}
		case kind == token.KwFn:
			method, err := p.parseFn(fnBodyOptional)
			if err != nil {
				return ast.Node{}, err
			}
			attach(&method, handler)
			def.Methods = append(def.Methods, method)
		case kind == token.Ident:
			member, err := p.parseMember()
			if err != nil {
				return ast.Node{}, err
			}
			if _, err := p.expect(token.Semicolon, "class field"); err != nil {
				return ast.Node{}, err
			}
			def.Members = append(def.Members, member)
		case kind == token.EOF:
			return ast.Node{}, p.fail(diag.UnexpectedEOF{}, diag.Info{})
		default:
			return ast.Node{}, p.fail(diag.UnexpectedToken{Text: p.tok.Value()}, diag.Info{})
		}
	}
	return ast.NewStmt(def), nil
}

// expectMethod: внутри класса модификаторы относятся только к методам.
func (p *Parser) expectMethod(after string) error {
	if p.at(token.KwFn) || p.tok.Kind.IsModifier() {
		return nil
	}
	return p.expected("method", after)
}

func (p *Parser) parseMember() (ast.ClassMember, error) {
	name, err := p.expectIdent("class body")
	if err != nil {
		return ast.ClassMember{}, err
	}
	if _, err := p.expect(token.Colon, "field name"); err != nil {
		return ast.ClassMember{}, err
	}
	ty, err := p.parseType()
	if err != nil {
		return ast.ClassMember{}, err
	}
	return ast.ClassMember{Name: name, Type: ty}, nil
}

// struct Name<T> { a: T, b: i32 }
func (p *Parser) parseStruct() (ast.Node, error) {
	p.next() // struct
	def := ast.ClassDef[ast.Node]{Struct: true}
	if p.at(token.Ident) {
		def.Name = nameNode(p.tok.Text)
		p.next()
	}
	var err error
	if p.at(token.Lt) {
		if def.Generics, err = p.parseGenericDecls(); err != nil {
			return ast.Node{}, err
		}
	}
	if _, err = p.expect(token.LBrace, "struct declaration"); err != nil {
		return ast.Node{}, err
	}
	for !p.eat(token.RBrace) {
		member, err := p.parseMember()
		if err != nil {
			return ast.Node{}, err
		}
		def.Members = append(def.Members, member)
		if !p.eat(token.Comma) && !p.eat(token.Semicolon) && !p.at(token.RBrace) {
			return ast.Node{}, p.expected("`,`", "struct field")
		}
	}
	return ast.NewStmt(def), nil
}

// enum Color { Red, Green, Blue }
func (p *Parser) parseEnum() (ast.Node, error) {
	p.next() // enum
	def := ast.EnumDef[ast.Node]{}
	if p.at(token.Ident) {
		def.Name = nameNode(p.tok.Text)
		p.next()
	}
	if _, err := p.expect(token.LBrace, "enum declaration"); err != nil {
		return ast.Node{}, err
	}
	for !p.eat(token.RBrace) {
		variant, err := p.expectIdent("enum body")
		if err != nil {
			return ast.Node{}, err
		}
		def.Variants = append(def.Variants, *nameNode(variant))
		if !p.eat(token.Comma) && !p.at(token.RBrace) {
			return ast.Node{}, p.expected("`,`", "enum variant")
		}
	}
	return ast.NewStmt(def), nil
}

// interface Shape<T> { fn area() -> T; }
func (p *Parser) parseInterface() (ast.Node, error) {
	p.next() // interface
	def := ast.InterfaceDef[ast.Node]{}
	if p.at(token.Ident) {
		def.Name = nameNode(p.tok.Text)
		p.next()
	}
	var err error
	if p.at(token.Lt) {
		if def.Generics, err = p.parseGenericDecls(); err != nil {
			return ast.Node{}, err
		}
	}
	if _, err = p.expect(token.LBrace, "interface declaration"); err != nil {
		return ast.Node{}, err
	}
	for !p.eat(token.RBrace) {
		if !p.at(token.KwFn) {
			return ast.Node{}, p.expected("`fn`", "interface body")
		}
		sig, err := p.parseFn(fnNoBody)
		if err != nil {
			return ast.Node{}, err
		}
		def.Members = append(def.Members, sig)
	}
	return ast.NewStmt(def), nil
}

// const NAME: T = expr;  let name: T = expr;
func (p *Parser) parseVarDef(isConst bool) (ast.Node, error) {
	n, err := p.parseVarDefNoSemi(isConst)
	if err != nil {
		return ast.Node{}, err
	}
	if _, err := p.expect(token.Semicolon, "variable declaration"); err != nil {
		return ast.Node{}, err
	}
	return n, nil
}

func (p *Parser) parseVarDefNoSemi(isConst bool) (ast.Node, error) {
	keyword := p.tok.Kind.String()
	p.next() // let / const
	name, err := p.expectIdent("`" + keyword + "`")
	if err != nil {
		return ast.Node{}, err
	}
	def := ast.VarDef[ast.Node]{Name: name, Const: isConst}
	if p.eat(token.Colon) {
		ty, err := p.parseType()
		if err != nil {
			return ast.Node{}, err
		}
		tn := ty.Node()
		def.Type = &tn
	}
	if _, err := p.expect(token.Assign, "variable name"); err != nil {
		return ast.Node{}, err
	}
	init, err := p.parseExpr()
	if err != nil {
		return ast.Node{}, err
	}
	def.Init = ast.FromExpr(init)
	return ast.NewStmt(def), nil
}

// namespace std { ... }
func (p *Parser) parseNamespace() (ast.Node, error) {
	p.next() // namespace
	def := ast.NamespaceDef[ast.Node]{}
	if p.at(token.Ident) {
		def.Name = nameNode(p.tok.Text)
		p.next()
	}
	if _, err := p.expect(token.LBrace, "namespace declaration"); err != nil {
		return ast.Node{}, err
	}
	body, err := p.ParseGlobal(token.RBrace)
	if err != nil {
		return ast.Node{}, err
	}
	p.next() // }
	def.Body = body
	return ast.NewStmt(def), nil
}

// import std::io::fmt;
func (p *Parser) parseImport() (ast.Node, error) {
	p.next() // import
	name, err := p.expectIdent("`import`")
	if err != nil {
		return ast.Node{}, err
	}
	path := ast.NewExprNode(ast.Ident[ast.ExprNode]{Name: name})
	for p.eat(token.ColonColon) {
		member, err := p.expectIdent("`::`")
		if err != nil {
			return ast.Node{}, err
		}
		path = ast.NewExprNode(ast.NamespaceAccess[ast.ExprNode]{Recv: path, Member: member})
	}
	if _, err := p.expect(token.Semicolon, "import path"); err != nil {
		return ast.Node{}, err
	}
	return ast.NewStmt(ast.Import[ast.Node]{Path: ast.FromExpr(path)}), nil
}
