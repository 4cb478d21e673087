package driver

import (
	"snowball/internal/diag"
	"snowball/internal/lexer"
	"snowball/internal/source"
	"snowball/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize загружает файл и возвращает весь поток токенов вместе с
// диагностиками лексера. Ошибка возвращается только при сбое чтения.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
