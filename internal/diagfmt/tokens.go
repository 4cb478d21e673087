package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"

	"snowball/internal/source"
	"snowball/internal/token"
)

type TokenOutput struct {
	Kind  string      `json:"kind"`
	Text  string      `json:"text,omitempty"`
	Value string      `json:"value,omitempty"` // только для строк: текст без кавычек
	Span  source.Span `json:"span"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате, по одному
// на строку, с выровненной колонкой текста.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	textWidth := 0
	for _, tok := range tokens {
		textWidth = max(textWidth, runewidth.StringWidth(fmt.Sprintf("%q", tok.Text)))
	}
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)
		text := fmt.Sprintf("%q", tok.Text)
		if _, err := fmt.Fprintf(w, "%3d: %-10s %s at %d:%d-%d:%d\n",
			i+1, tok.Kind, runewidth.FillRight(text, textWidth),
			startPos.Line, startPos.Col, endPos.Line, endPos.Col); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{Kind: tok.Kind.String(), Text: tok.Text, Span: tok.Span}
		if tok.Kind == token.StringLit {
			out.Value = tok.Value()
		}
		output = append(output, out)
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
