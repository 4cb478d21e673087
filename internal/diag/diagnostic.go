package diag

import (
	"snowball/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

// Info carries optional remediation hints. Every field is independent;
// the empty string means the field is absent.
type Info struct {
	Help string `json:"help,omitempty" msgpack:"help,omitempty"`
	Info string `json:"info,omitempty" msgpack:"info,omitempty"`
	Note string `json:"note,omitempty" msgpack:"note,omitempty"`
	See  string `json:"see,omitempty" msgpack:"see,omitempty"`
}

// Empty reports whether no field is set.
func (i Info) Empty() bool {
	return i == Info{}
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Kind     ErrorKind // nil for diagnostics that do not come from a structured kind
	Message  string
	Primary  source.Span
	Info     *Info
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError builds an error diagnostic whose code and message come from kind.
func NewError(kind ErrorKind, primary source.Span) *Diagnostic {
	return &Diagnostic{
		Severity: SevError,
		Code:     kind.Code(),
		Kind:     kind,
		Message:  kind.Message(),
		Primary:  primary,
	}
}

// WithInfo attaches info unless it is empty.
func (d *Diagnostic) WithInfo(info Info) *Diagnostic {
	if info.Empty() {
		return d
	}
	d.Info = &info
	return d
}

func (d *Diagnostic) WithNote(sp source.Span, msg string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
