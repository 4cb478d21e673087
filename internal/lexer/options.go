package lexer

import (
	"snowball/internal/diag"
	"snowball/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) report(kind diag.ErrorKind, sp source.Span) {
	if lx.opts.Reporter != nil {
		diag.ReportKind(lx.opts.Reporter, kind, sp).Emit()
	}
}
