package driver

import (
	"context"

	"snowball/internal/ast"
	"snowball/internal/diag"
	"snowball/internal/parser"
	"snowball/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    ast.Node
	Tokens  int
	Bag     *diag.Bag
	Err     error // parser.ErrAborted when the file did not parse
}

// Parse загружает и разбирает один файл. Возвращаемая ошибка - только
// ошибка чтения; неудачный разбор виден в Err и Bag.
func Parse(ctx context.Context, path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	res := parser.ParseFile(ctx, fs, fileID, parser.Options{Bag: bag})
	return &ParseResult{
		FileSet: fs,
		File:    fs.Get(fileID),
		Tree:    res.Tree,
		Tokens:  res.Tokens,
		Bag:     bag,
		Err:     res.Err,
	}, nil
}
