package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadEscape is wrapped by every escape decoding failure.
var ErrBadEscape = errors.New("invalid escape sequence")

// DecodeEscape decodes the escape sequence at the start of s, which must begin
// with a backslash. Accepted forms: \n \t \r \0 \\ \" \' \xHH (ASCII) and
// \u{H..H} (1-6 hex digits, a valid scalar value). size is the number of bytes
// the sequence occupies; on failure it covers only the backslash and the
// character after it, so a closing quote is never swallowed.
func DecodeEscape(s string) (r rune, size int, err error) {
	if len(s) < 2 || s[0] != '\\' {
		return 0, len(s), fmt.Errorf("%w: truncated", ErrBadEscape)
	}
	switch s[1] {
	case 'n':
		return '\n', 2, nil
	case 't':
		return '\t', 2, nil
	case 'r':
		return '\r', 2, nil
	case '0':
		return 0, 2, nil
	case '\\', '"', '\'':
		return rune(s[1]), 2, nil
	case 'x':
		if len(s) < 4 {
			return 0, 2, fmt.Errorf("%w: \\x needs two hex digits", ErrBadEscape)
		}
		v, perr := strconv.ParseUint(s[2:4], 16, 8)
		if perr != nil || v >= utf8.RuneSelf {
			return 0, 2, fmt.Errorf("%w: \\x%s", ErrBadEscape, s[2:4])
		}
		return rune(v), 4, nil
	case 'u':
		// \u{10FFFF} is the longest form.
		end := strings.IndexByte(s[:min(len(s), 10)], '}')
		if len(s) < 3 || s[2] != '{' || end < 0 {
			return 0, 2, fmt.Errorf("%w: \\u needs {hex}", ErrBadEscape)
		}
		digits := s[3:end]
		v, perr := strconv.ParseUint(digits, 16, 32)
		if len(digits) == 0 || perr != nil || v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
			return 0, 2, fmt.Errorf("%w: \\u{%s}", ErrBadEscape, digits)
		}
		return rune(v), end + 1, nil
	}
	_, w := utf8.DecodeRuneInString(s[1:])
	return 0, 1 + w, fmt.Errorf("%w: \\%s", ErrBadEscape, s[1:1+w])
}

// UnquoteString decodes the text of a string literal including its quotes.
func UnquoteString(text string) (string, error) {
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return "", errors.New("string literal must be quoted")
	}
	body := text[1 : len(text)-1]
	if strings.IndexByte(body, '\\') < 0 {
		return body, nil
	}
	var b strings.Builder
	b.Grow(len(body))
	for len(body) > 0 {
		i := strings.IndexByte(body, '\\')
		if i < 0 {
			b.WriteString(body)
			break
		}
		b.WriteString(body[:i])
		r, size, err := DecodeEscape(body[i:])
		if err != nil {
			return "", err
		}
		b.WriteRune(r)
		body = body[i+size:]
	}
	return b.String(), nil
}
