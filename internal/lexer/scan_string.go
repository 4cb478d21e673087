package lexer

import (
	"snowball/internal/diag"
	"snowball/internal/token"
)

// maxEscapeLen covers the longest escape, \u{10FFFF}.
const maxEscapeLen = 10

// Text строкового литерала включает кавычки и escape-последовательности как есть;
// раскодирование делает token.Token.Value. Литерал с ошибочной
// escape-последовательностью становится Invalid, поэтому Value у StringLit
// всегда раскодируется целиком.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	bad := false
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			if bad {
				return lx.invalid(sp)
			}
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		case '\\':
			if !lx.scanEscape() {
				bad = true
			}
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.report(diag.UnterminatedString{}, sp)
			return lx.invalid(sp)
		default:
			lx.cursor.Bump()
		}
	}
	sp := lx.cursor.SpanFrom(start)
	lx.report(diag.UnterminatedString{}, sp)
	return lx.invalid(sp)
}

// scanEscape consumes one escape sequence and reports it if invalid.
// A backslash before a line break or the end of input is consumed alone;
// the caller then reports the unterminated literal.
func (lx *Lexer) scanEscape() bool {
	if _, next, ok := lx.cursor.Peek2(); !ok || next == '\n' {
		lx.cursor.Bump()
		return true
	}
	off := int(lx.cursor.Off)
	window := string(lx.file.Content[off:min(len(lx.file.Content), off+maxEscapeLen)])
	_, size, err := token.DecodeEscape(window)
	mark := lx.cursor.Mark()
	for range size {
		lx.cursor.Bump()
	}
	if err != nil {
		sp := lx.cursor.SpanFrom(mark)
		lx.report(diag.BadEscape{Text: lx.text(sp)}, sp)
		return false
	}
	return true
}
