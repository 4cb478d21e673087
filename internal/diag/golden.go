package diag

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"snowball/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
	Extra    []string
}

// FormatGoldenDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files. With includeNotes, notes and info
// hints follow their diagnostic on indented lines.
func FormatGoldenDiagnostics(diags []*Diagnostic, fs *source.FileSet, includeNotes bool) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for _, d := range diags {
		if g, ok := renderGolden(d, fs, includeNotes); ok {
			rendered = append(rendered, g)
		}
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		for _, extra := range d.Extra {
			b.WriteString("\n  ")
			b.WriteString(extra)
		}
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderGolden(d *Diagnostic, fs *source.FileSet, includeNotes bool) (goldenDiagnostic, bool) {
	loc, ok := resolveSpan(fs, d.Primary)
	if !ok {
		return goldenDiagnostic{}, false
	}
	g := goldenDiagnostic{
		Severity: d.Severity.Label(),
		Code:     d.Code.ID(),
		Path:     loc.Path,
		Line:     loc.Line,
		Column:   loc.Column,
		Message:  sanitizeMessage(d.Message),
	}
	if !includeNotes {
		return g, true
	}
	if d.Info != nil {
		for _, field := range InfoLines(*d.Info) {
			g.Extra = append(g.Extra, field.Label+": "+sanitizeMessage(field.Text))
		}
	}
	for _, note := range d.Notes {
		nloc, nok := resolveSpan(fs, note.Span)
		if !nok {
			continue
		}
		g.Extra = append(g.Extra, fmt.Sprintf("note %s:%d:%d %s", nloc.Path, nloc.Line, nloc.Column, sanitizeMessage(note.Msg)))
	}
	return g, true
}

// InfoLine is one labelled field of Info.
type InfoLine struct {
	Label string
	Text  string
}

// InfoLines returns the non-empty fields of info in help, info, note, see order.
func InfoLines(info Info) []InfoLine {
	out := make([]InfoLine, 0, 4)
	add := func(label, text string) {
		if text != "" {
			out = append(out, InfoLine{Label: label, Text: text})
		}
	}
	add("help", info.Help)
	add("info", info.Info)
	add("note", info.Note)
	add("see", info.See)
	return out
}

type resolvedSpan struct {
	Path   string
	Line   uint32
	Column uint32
}

func resolveSpan(fs *source.FileSet, span source.Span) (loc resolvedSpan, ok bool) {
	if int(span.File) >= fs.Len() {
		return resolvedSpan{}, false
	}
	file := fs.Get(span.File)
	start, _ := fs.Resolve(span)
	return resolvedSpan{
		Path:   normalizePath(file.FormatPath("relative", fs.BaseDir())),
		Line:   start.Line,
		Column: start.Col,
	}, true
}

func normalizePath(path string) string {
	p := filepath.ToSlash(path)
	for strings.HasPrefix(p, "./") {
		p = strings.TrimPrefix(p, "./")
	}
	return p
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
