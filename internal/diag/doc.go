// Package diag defines the diagnostic model shared by the lexer, the parser
// and the driver.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier with a stable string form (SYN2001).
//   - Kind: the structured ErrorKind the diagnostic was built from, if any.
//   - Message: short human text, derived from Kind when present.
//   - Primary: the source.Span pointing to the issue.
//   - Info: optional help / info / note / see hints.
//   - Notes: optional secondary spans.
//
// ErrorKind is a closed set. Every kind can be rebuilt from its Code and Args
// through KindFromCode, which is what the driver's disk cache relies on.
//
// # Emitting diagnostics
//
// Phases report through a Reporter. The parser builds diagnostics with
// ReportKind(...).WithInfo(...).Emit(); BagReporter stores them in a Bag and
// DedupReporter drops exact repeats.
//
// Rendering lives in internal/diagfmt. Keep this package free of IO.
package diag
