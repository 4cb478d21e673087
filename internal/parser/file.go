package parser

import (
	"context"
	"strconv"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/lexer"
	"snowball/internal/source"
	"snowball/internal/trace"
)

type Result struct {
	File   source.FileID
	Tree   ast.Node
	Tokens int
	Bag    *diag.Bag
	Err    error // nil or ErrAborted
}

// ParseFile лексит и разбирает один файл. Если лексер сообщил об ошибках,
// разбор не запускается и Err = ErrAborted.
func ParseFile(ctx context.Context, fs *source.FileSet, id source.FileID, opts Options) Result {
	tracer := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx).SpanID
	file := fs.Get(id)

	bag := opts.Bag
	if bag == nil {
		bag = diag.NewBag(0)
	}
	res := Result{File: id, Bag: bag}

	lexSpan := trace.Begin(tracer, trace.ScopeModule, "lex", parent).WithExtra("file", file.Path)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	res.Tokens = len(toks)
	lexSpan.WithExtra("tokens", strconv.Itoa(len(toks))).End("")
	if bag.HasErrors() {
		res.Err = ErrAborted
		return res
	}

	parseSpan := trace.Begin(tracer, trace.ScopeModule, "parse", parent).WithExtra("file", file.Path)
	p := New(toks, Options{Bag: bag})
	res.Tree, res.Err = p.Parse()
	detail := "ok"
	if res.Err != nil {
		detail = "aborted"
	}
	parseSpan.End(detail)
	return res
}
