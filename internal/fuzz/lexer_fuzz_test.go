package fuzztests

import (
	"testing"

	"snowball/internal/diag"
	"snowball/internal/lexer"
	"snowball/internal/source"
	"snowball/internal/testkit"
)

func FuzzLexerTokens(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sn", clamp(input))
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		toks := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if err := testkit.CheckTokenInvariants(toks, file); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(file.Content, 200))
		}
	})
}
