package lexer

import "snowball/internal/diag"

// ReporterAdapter направляет диагностики лексера в Bag, отбрасывая повторы
// (незакрытый комментарий и строка на одном месте дают одну запись).
type ReporterAdapter struct {
	Bag *diag.Bag
}

func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(diag.BagReporter{Bag: r.Bag})
}
