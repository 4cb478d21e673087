package parser

import (
	"strconv"
	"strings"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/token"
)

type exprNode = ast.ExprNode

func (p *Parser) parseExpr() (exprNode, error) {
	return p.parseBinaryExpr(precAssignment)
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов.
func (p *Parser) parseBinaryExpr(minPrec int) (exprNode, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return exprNode{}, err
	}
	for {
		kind := p.tok.Kind
		prec, rightAssoc := binaryPrec(kind)
		if prec < minPrec {
			return left, nil
		}
		p.next()

		if kind == token.KwAs {
			ty, err := p.parseType()
			if err != nil {
				return exprNode{}, err
			}
			left = ast.NewExprNode(ast.Cast[exprNode]{Value: left, Type: ty})
			continue
		}

		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right, err := p.parseBinaryExpr(nextMin)
		if err != nil {
			return exprNode{}, err
		}
		if kind == token.Assign {
			left = ast.NewExprNode(ast.Assign[exprNode]{Target: left, Value: right})
			continue
		}
		left = ast.NewExprNode(ast.BinaryExpr[exprNode]{Op: binaryOps[kind], Lhs: left, Rhs: right})
	}
}

func (p *Parser) parseUnaryExpr() (exprNode, error) {
	op, ok := unaryOps[p.tok.Kind]
	if !ok {
		return p.parsePostfixExpr()
	}
	p.next()
	// -9223372036854775808 only fits once the sign is part of the literal.
	if op == ast.OpSub && p.at(token.IntLit) {
		if _, ok := parseIntLiteral(p.tok.Text); !ok {
			if v, ok := parseNegatedIntLiteral(p.tok.Text); ok {
				p.next()
				return p.parsePostfixOps(ast.NewExprNode(ast.IntLit[exprNode]{Value: v}))
			}
		}
	}
	operand, err := p.parseUnaryExpr()
	if err != nil {
		return exprNode{}, err
	}
	return ast.NewExprNode(ast.BinaryExpr[exprNode]{Op: op, Lhs: operand, Unary: true}), nil
}

func (p *Parser) parsePostfixExpr() (exprNode, error) {
	expr, err := p.parsePrimaryExpr()
	if err != nil {
		return exprNode{}, err
	}
	return p.parsePostfixOps(expr)
}

func (p *Parser) parsePostfixOps(expr exprNode) (exprNode, error) {
	var err error
	for {
		switch p.tok.Kind {
		case token.LParen:
			args, err := p.parseCallArgs()
			if err != nil {
				return exprNode{}, err
			}
			expr = ast.NewExprNode(ast.Call[exprNode]{Callee: expr, Args: args})
		case token.Dot:
			p.next()
			member, err := p.expectIdent("`.`")
			if err != nil {
				return exprNode{}, err
			}
			expr = ast.NewExprNode(ast.ClassAccess[exprNode]{Recv: expr, Member: member})
		case token.ColonColon:
			p.next()
			if p.at(token.Lt) {
				if expr, err = p.applyGenerics(expr); err != nil {
					return exprNode{}, err
				}
				continue
			}
			member, err := p.expectIdent("`::`")
			if err != nil {
				return exprNode{}, err
			}
			expr = ast.NewExprNode(ast.NamespaceAccess[exprNode]{Recv: expr, Member: member})
		case token.LBracket:
			p.next()
			index, err := p.parseExpr()
			if err != nil {
				return exprNode{}, err
			}
			if _, err := p.expect(token.RBracket, "index"); err != nil {
				return exprNode{}, err
			}
			expr = ast.NewExprNode(ast.BinaryExpr[exprNode]{Op: ast.OpIndex, Lhs: expr, Rhs: index})
		default:
			return expr, nil
		}
	}
}

// applyGenerics attaches `::<T, U>` to the identifier or path segment before it.
func (p *Parser) applyGenerics(expr exprNode) (exprNode, error) {
	switch e := expr.Kind().(type) {
	case ast.Ident[exprNode]:
		if e.Generics == nil {
			args, err := p.parseTypeArgs()
			if err != nil {
				return exprNode{}, err
			}
			e.Generics = args
			return ast.NewExprNode(e), nil
		}
	case ast.NamespaceAccess[exprNode]:
		if e.Generics == nil {
			args, err := p.parseTypeArgs()
			if err != nil {
				return exprNode{}, err
			}
			e.Generics = args
			return ast.NewExprNode(e), nil
		}
	}
	return exprNode{}, p.fail(diag.UnexpectedToken{Text: p.tok.Value()}, diag.Info{})
}

func (p *Parser) parseCallArgs() ([]exprNode, error) {
	p.next() // (
	args := []exprNode{}
	for !p.eat(token.RParen) {
		if len(args) > 0 {
			if _, err := p.expect(token.Comma, "call argument"); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (p *Parser) parsePrimaryExpr() (exprNode, error) {
	tok := p.tok
	switch tok.Kind {
	case token.IntLit:
		v, ok := parseIntLiteral(tok.Text)
		if !ok {
			return exprNode{}, p.fail(diag.InvalidLiteral{Text: tok.Text}, diag.Info{})
		}
		p.next()
		return ast.NewExprNode(ast.IntLit[exprNode]{Value: v}), nil
	case token.FloatLit:
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.Text, "_", ""), 64)
		if err != nil {
			return exprNode{}, p.fail(diag.InvalidLiteral{Text: tok.Text}, diag.Info{})
		}
		p.next()
		return ast.NewExprNode(ast.FloatLit[exprNode]{Value: v}), nil
	case token.StringLit:
		p.next()
		return ast.NewExprNode(ast.StringLit[exprNode]{Value: tok.Value()}), nil
	case token.KwTrue, token.KwFalse:
		p.next()
		return ast.NewExprNode(ast.BoolLit[exprNode]{Value: tok.Kind == token.KwTrue}), nil
	case token.Ident:
		p.next()
		return ast.NewExprNode(ast.Ident[exprNode]{Name: tok.Text}), nil
	case token.KwNew:
		return p.parseClassInit()
	case token.LParen:
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return exprNode{}, err
		}
		if _, err := p.expect(token.RParen, "parenthesized expression"); err != nil {
			return exprNode{}, err
		}
		return inner, nil
	case token.EOF:
		return exprNode{}, p.fail(diag.UnexpectedEOF{}, diag.Info{})
	default:
		return exprNode{}, p.fail(diag.UnexpectedToken{Text: tok.Value()}, diag.Info{})
	}
}

// new Vec<i32>(1, 2)
func (p *Parser) parseClassInit() (exprNode, error) {
	p.next() // new
	ty, err := p.parseType()
	if err != nil {
		return exprNode{}, err
	}
	if !p.at(token.LParen) {
		return exprNode{}, p.expected("`(`", "`new` type")
	}
	args, err := p.parseCallArgs()
	if err != nil {
		return exprNode{}, err
	}
	return ast.NewExprNode(ast.ClassInit[exprNode]{Type: ty, Args: args}), nil
}

// parseIntLiteral понимает 0x/0o/0b префиксы и '_' разделители.
// Ведущий ноль без префикса не делает литерал восьмеричным.
func parseIntLiteral(text string) (int64, bool) {
	digits, base := splitIntLiteral(text)
	v, err := strconv.ParseInt(digits, base, 64)
	return v, err == nil
}

// parseNegatedIntLiteral разбирает литерал со знаком минус перед ним.
func parseNegatedIntLiteral(text string) (int64, bool) {
	digits, base := splitIntLiteral(text)
	v, err := strconv.ParseInt("-"+digits, base, 64)
	return v, err == nil
}

func splitIntLiteral(text string) (digits string, base int) {
	s := strings.ReplaceAll(text, "_", "")
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			return s[2:], 16
		case 'o', 'O':
			return s[2:], 8
		case 'b', 'B':
			return s[2:], 2
		}
	}
	return s, 10
}
