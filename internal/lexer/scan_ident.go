package lexer

import (
	"golang.org/x/text/unicode/norm"

	"snowball/internal/diag"
	"snowball/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Не-ASCII идентификаторы приводятся к NFC,
// чтобы одинаково выглядящие имена совпадали.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	ascii := true

	r, sz := lx.peekRune()
	if r < utf8RuneSelf {
		lx.cursor.Bump()
	} else {
		if sz == 0 || !isIdentStartRune(r) {
			lx.bumpRune()
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.UnknownChar{Text: lx.text(sp)}, sp)
			return lx.invalid(sp)
		}
		ascii = false
		lx.bumpRune()
	}
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		ascii = false
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if !ascii {
		return token.Token{Kind: token.Ident, Span: sp, Text: norm.NFC.String(text)}
	}
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
