package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"snowball/internal/diag"
	"snowball/internal/source"
)

type palette struct {
	err, warn, info *color.Color
	label, gutter   *color.Color
	hint            *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		label:  color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		hint:   color.New(color.FgGreen),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.label, p.gutter, p.hint} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид. Ожидается, что
// bag уже отсортирован. Для каждой диагностики:
//
//	error[SYN2003]: expected global item after "public"
//	  --> main.sn:1:8
//	   |
//	 1 | public 42
//	   |        ^^
//	   = help: ...
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	var sb strings.Builder
	for i, d := range items {
		if i > 0 {
			sb.WriteByte('\n')
		}
		writePretty(&sb, d, fs, opts, pal)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func writePretty(sb *strings.Builder, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	sev := pal.severity(d.Severity)
	sb.WriteString(sev.Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()))
	sb.WriteString(pal.label.Sprintf(": %s", d.Message))
	sb.WriteByte('\n')

	if !validSpan(fs, d.Primary) {
		return
	}
	start, _ := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)
	lineNo := fmt.Sprint(start.Line)
	pad := strings.Repeat(" ", len(lineNo))
	fmt.Fprintf(sb, "%s%s %s:%d:%d\n", pad, pal.gutter.Sprint("-->"), formatPath(file, fs, opts.PathMode), start.Line, start.Col)

	if opts.Context {
		line := file.GetLine(start.Line)
		fmt.Fprintf(sb, "%s %s\n", pad, pal.gutter.Sprint("|"))
		fmt.Fprintf(sb, "%s %s %s\n", pal.gutter.Sprint(lineNo), pal.gutter.Sprint("|"), expandTabs(line))
		fmt.Fprintf(sb, "%s %s %s\n", pad, pal.gutter.Sprint("|"), sev.Sprint(underline(line, start.Col, d.Primary.Len())))
	}

	if !opts.ShowNotes {
		return
	}
	if d.Info != nil {
		for _, l := range diag.InfoLines(*d.Info) {
			fmt.Fprintf(sb, "%s %s %s: %s\n", pad, pal.gutter.Sprint("="), pal.hint.Sprint(l.Label), l.Text)
		}
	}
	for _, n := range d.Notes {
		if !validSpan(fs, n.Span) {
			fmt.Fprintf(sb, "%s %s note: %s\n", pad, pal.gutter.Sprint("="), n.Msg)
			continue
		}
		ns, _ := fs.Resolve(n.Span)
		nf := fs.Get(n.Span.File)
		fmt.Fprintf(sb, "%s %s note: %s (%s:%d:%d)\n", pad, pal.gutter.Sprint("="), n.Msg, formatPath(nf, fs, opts.PathMode), ns.Line, ns.Col)
	}
}

// underline строит строку "    ^^^" под символами [col, col+n) строки line.
// Ширина считается в колонках терминала, а не в байтах.
func underline(line string, col, n uint32) string {
	startByte := min(int(col-1), len(line))
	endByte := min(startByte+int(n), len(line))
	lead := runewidth.StringWidth(expandTabs(line[:startByte]))
	width := runewidth.StringWidth(line[startByte:endByte])
	if width == 0 {
		width = 1
	}
	return strings.Repeat(" ", lead) + strings.Repeat("^", width)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", " ")
}

func validSpan(fs *source.FileSet, sp source.Span) bool {
	return fs != nil && int(sp.File) < fs.Len()
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	base := ""
	if mode == PathModeRelative {
		base = fs.BaseDir()
	}
	return f.FormatPath(mode.String(), base)
}
