// Package testkit holds invariant checks shared by unit and fuzz tests.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"snowball/internal/diag"
	"snowball/internal/parser"
	"snowball/internal/source"
	"snowball/internal/token"
)

// CheckTokenInvariants runs the invariants every lexer output must hold:
// 1) the stream ends with exactly one EOF
// 2) every span belongs to sf and lies within its content
// 3) spans are ordered, do not overlap and only EOF may be empty
func CheckTokenInvariants(tokens []token.Token, sf *source.File) error {
	if sf == nil {
		return errors.New("nil file")
	}
	if len(tokens) == 0 {
		return errors.New("empty token stream")
	}
	size, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, tok := range tokens {
		last := i == len(tokens)-1
		if (tok.Kind == token.EOF) != last {
			return fmt.Errorf("token %d: EOF must be last and only last, got %s", i, tok.Kind)
		}
		sp := tok.Span
		if sp.File != sf.ID {
			return fmt.Errorf("token %d: span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End < sp.Start || sp.End > size {
			return fmt.Errorf("token %d: span %v outside content of %d bytes", i, sp, size)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("token %d: span %v overlaps previous end %d", i, sp, prevEnd)
		}
		if !last && sp.Empty() {
			return fmt.Errorf("token %d (%s): empty span", i, tok.Kind)
		}
		prevEnd = sp.End
	}
	return nil
}

// CheckParseOutcome checks the fail-fast contract of parser.ParseFile:
// success means a tree and no errors; failure means no tree and, unless the
// lexer already complained, exactly one syntax error.
func CheckParseOutcome(res parser.Result) error {
	if res.Bag == nil {
		return errors.New("nil diagnostic bag")
	}
	if res.Err == nil {
		if res.Tree.Kind() == nil {
			return errors.New("successful parse without a tree")
		}
		if res.Bag.HasErrors() {
			return fmt.Errorf("successful parse with %d diagnostics", res.Bag.Len())
		}
		return nil
	}
	if !errors.Is(res.Err, parser.ErrAborted) {
		return fmt.Errorf("unexpected error %v", res.Err)
	}
	if res.Tree.Kind() != nil {
		return errors.New("failed parse returned a tree")
	}
	var lexErrs, synErrs int
	for _, d := range res.Bag.Items() {
		switch {
		case d.Code > diag.LexInfo && d.Code < diag.SynInfo:
			lexErrs++
		case d.Code > diag.SynInfo && d.Code < diag.IOLoadFileError:
			synErrs++
		}
	}
	switch {
	case lexErrs > 0 && synErrs > 0:
		return fmt.Errorf("parser ran after %d lexer errors", lexErrs)
	case lexErrs == 0 && synErrs != 1:
		return fmt.Errorf("failed parse reported %d syntax errors, want 1", synErrs)
	}
	return nil
}
