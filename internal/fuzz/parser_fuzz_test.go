package fuzztests

import (
	"context"
	"testing"
	"time"

	"snowball/internal/parser"
	"snowball/internal/source"
	"snowball/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserOutcome(f *testing.F) {
	addSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.sn", clamp(input))
		res := parser.ParseFile(context.Background(), fs, fileID, parser.Options{})
		if err := testkit.CheckParseOutcome(res); err != nil {
			t.Fatalf("%v\ninput: %q", err, truncateForLog(fs.Get(fileID).Content, 200))
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addSeeds(f)
	f.Add([]byte("fn f() { { { { } } } }"))
	f.Add([]byte("fn f() { for let i = 0 i < 10 i = i + 1 {} }"))
	f.Add([]byte("class C { public public public"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clamp(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.sn", input)
			_ = parser.ParseFile(ctx, fs, fileID, parser.Options{})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
