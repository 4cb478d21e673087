package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"snowball/internal/lexer"
	"snowball/internal/source"
)

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.sn", []byte(`fn "héllo"`))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var pretty bytes.Buffer
	if err := FormatTokensPretty(&pretty, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(pretty.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", pretty.String())
	}
	if !strings.HasPrefix(lines[0], "  1: fn ") || !strings.Contains(lines[0], "at 1:1-1:3") {
		t.Fatalf("first line = %q", lines[0])
	}

	var js bytes.Buffer
	if err := FormatTokensJSON(&js, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(js.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != 3 || out[1].Kind != "StringLit" || out[1].Value != "héllo" || out[2].Kind != "EOF" {
		t.Fatalf("tokens = %+v", out)
	}
}
