package lexer

import "snowball/internal/diag"

// skipTrivia пропускает пробелы, переводы строк, // и вложенные /* */ комментарии.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\n', '\r':
			lx.cursor.Bump()
		case '/':
			if !lx.skipComment() {
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	switch lx.cursor.Peek() {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true
	case '*':
		lx.cursor.Bump()
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if b0, b1, ok := lx.cursor.Peek2(); ok {
				if b0 == '/' && b1 == '*' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth++
					continue
				}
				if b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.report(diag.UnterminatedComment{}, lx.cursor.SpanFrom(start))
		}
		return true
	default:
		// это не комментарий, пусть сканируется как оператор '/'
		lx.cursor.Reset(start)
		return false
	}
}
