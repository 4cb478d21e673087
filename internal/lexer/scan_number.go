package lexer

import (
	"snowball/internal/diag"
	"snowball/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 1.5, 1e-3, 1.0e+10.
// Точка входит в число только если за ней цифра: `1.foo` это доступ к члену.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			var digit func(byte) bool
			switch b1 {
			case 'b', 'B':
				digit = func(b byte) bool { return b == '0' || b == '1' }
			case 'o', 'O':
				digit = func(b byte) bool { return b >= '0' && b <= '7' }
			case 'x', 'X':
				digit = isHex
			}
			if digit != nil {
				lx.cursor.Bump()
				lx.cursor.Bump()
				n := 0
				for b := lx.cursor.Peek(); digit(b) || b == '_'; b = lx.cursor.Peek() {
					if b != '_' {
						n++
					}
					lx.cursor.Bump()
				}
				sp := lx.cursor.SpanFrom(start)
				if n == 0 {
					lx.report(diag.BadNumber{Text: lx.text(sp), Reason: "expected digits after base prefix"}, sp)
					return lx.invalid(sp)
				}
				return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
			}
		}
	}

	kind := token.IntLit
	lx.eatDecimals()

	// дробная часть
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLit
		lx.cursor.Bump()
		lx.eatDecimals()
	}

	// экспонента
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.BadNumber{Text: lx.text(sp), Reason: "expected digit after exponent"}, sp)
			return lx.invalid(sp)
		}
		lx.eatDecimals()
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) eatDecimals() {
	for b := lx.cursor.Peek(); isDec(b) || b == '_'; b = lx.cursor.Peek() {
		lx.cursor.Bump()
	}
}
