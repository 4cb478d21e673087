// Package token defines lexical token kinds for the snowball front end.
// Invariants:
//   - Token.Text is the source text of the token (string literals keep their quotes).
//   - Token.Span matches Text in the source file.
//   - A token stream produced by the lexer ends with exactly one EOF token.
//   - Built-in type names (i32, f64, void, ...) are identifiers; they are not
//     keywords.
package token
