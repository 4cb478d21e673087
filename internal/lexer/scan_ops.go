package lexer

import (
	"snowball/internal/diag"
	"snowball/internal/token"
)

var twoByteOps = [...]struct {
	a, b byte
	kind token.Kind
}{
	{':', ':', token.ColonColon},
	{'-', '>', token.Arrow},
	{'&', '&', token.AndAnd},
	{'|', '|', token.OrOr},
	{'=', '=', token.EqEq},
	{'!', '=', token.BangEq},
	{'<', '=', token.LtEq},
	{'>', '=', token.GtEq},
}

var oneByteOps = map[byte]token.Kind{
	'+': token.Plus,
	'-': token.Minus,
	'*': token.Star,
	'/': token.Slash,
	'%': token.Percent,
	'=': token.Assign,
	'<': token.Lt,
	'>': token.Gt,
	':': token.Colon,
	';': token.Semicolon,
	',': token.Comma,
	'.': token.Dot,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
}

// Жадность: сначала 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: k, Span: sp, Text: lx.text(sp)}
	}

	for _, op := range twoByteOps {
		if lx.try2(op.a, op.b) {
			return emit(op.kind)
		}
	}

	if k, ok := oneByteOps[lx.cursor.Bump()]; ok {
		return emit(k)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.UnknownChar{Text: lx.text(sp)}, sp)
	return lx.invalid(sp)
}
