package token

import (
	"snowball/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Value returns the literal payload of the token: the decoded content of a
// string literal, the raw text for everything else. The lexer only emits
// StringLit tokens that decode; a hand-made one that does not is returned as
// its raw text.
func (t Token) Value() string {
	if t.Kind != StringLit {
		return t.Text
	}
	if s, err := UnquoteString(t.Text); err == nil {
		return s
	}
	return t.Text
}

// IsLiteral reports whether the token is a numeric, boolean or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwFn && t.Kind <= KwFalse
}

// IsPunctOrOp reports whether the token is punctuation or an operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind <= RBracket
}
