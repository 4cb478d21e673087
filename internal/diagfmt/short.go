package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"snowball/internal/diag"
	"snowball/internal/source"
)

// Short prints one line per diagnostic, compiler-style:
//
//	main.sn:1:8: error[SYN2003]: expected global item after "public"
//
// Only Color, PathMode and Max of opts are used.
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	var sb strings.Builder
	for _, d := range items {
		if validSpan(fs, d.Primary) {
			start, _ := fs.Resolve(d.Primary)
			file := fs.Get(d.Primary.File)
			fmt.Fprintf(&sb, "%s:%d:%d: ", formatPath(file, fs, opts.PathMode), start.Line, start.Col)
		}
		sb.WriteString(pal.severity(d.Severity).Sprintf("%s[%s]", d.Severity.Label(), d.Code.ID()))
		sb.WriteString(": ")
		sb.WriteString(d.Message)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
