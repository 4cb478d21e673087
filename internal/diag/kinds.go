package diag

import "fmt"

// ErrorKind is the closed set of error shapes a phase can report.
// Each kind owns its code and message; Args returns the payload in a form that
// KindFromCode can rebuild, so kinds survive serialisation.
type ErrorKind interface {
	Code() Code
	Message() string
	Args() []string
	errorKind()
}

// UnexpectedEOF: input ended before the construct being parsed was complete.
type UnexpectedEOF struct{}

// UnexpectedToken: a token is not allowed in this position.
type UnexpectedToken struct{ Text string }

// ExpectedItem: a specific kind of item was required after a construct.
type ExpectedItem struct {
	What  string
	After string
}

// InvalidExternalSpecifier: the linkage string after `external` is not recognised.
type InvalidExternalSpecifier struct{ Text string }

type DuplicateArgument struct{ Name string }

type InvalidLiteral struct{ Text string }

type UnknownChar struct{ Text string }

type UnterminatedString struct{}

type UnterminatedComment struct{}

type BadNumber struct {
	Text   string
	Reason string
}

// BadEscape: a string literal contains an escape sequence the language does not define.
type BadEscape struct{ Text string }

type LoadFailed struct{ Reason string }

func (UnexpectedEOF) Code() Code                  { return SynUnexpectedEOF }
func (UnexpectedToken) Code() Code                { return SynUnexpectedToken }
func (ExpectedItem) Code() Code                   { return SynExpectedItem }
func (InvalidExternalSpecifier) Code() Code       { return SynInvalidExternalSpecifier }
func (DuplicateArgument) Code() Code              { return SynDuplicateArgument }
func (InvalidLiteral) Code() Code                 { return SynInvalidLiteral }
func (UnknownChar) Code() Code                    { return LexUnknownChar }
func (UnterminatedString) Code() Code             { return LexUnterminatedString }
func (UnterminatedComment) Code() Code            { return LexUnterminatedComment }
func (BadNumber) Code() Code                      { return LexBadNumber }
func (BadEscape) Code() Code                      { return LexBadEscape }
func (LoadFailed) Code() Code                     { return IOLoadFileError }
func (UnexpectedEOF) errorKind()                  {}
func (UnexpectedToken) errorKind()                {}
func (ExpectedItem) errorKind()                   {}
func (InvalidExternalSpecifier) errorKind()       {}
func (DuplicateArgument) errorKind()              {}
func (InvalidLiteral) errorKind()                 {}
func (UnknownChar) errorKind()                    {}
func (UnterminatedString) errorKind()             {}
func (UnterminatedComment) errorKind()            {}
func (BadNumber) errorKind()                      {}
func (BadEscape) errorKind()                      {}
func (LoadFailed) errorKind()                     {}
func (UnexpectedEOF) Args() []string              { return nil }
func (k UnexpectedToken) Args() []string          { return []string{k.Text} }
func (k ExpectedItem) Args() []string             { return []string{k.What, k.After} }
func (k InvalidExternalSpecifier) Args() []string { return []string{k.Text} }
func (k DuplicateArgument) Args() []string        { return []string{k.Name} }
func (k InvalidLiteral) Args() []string           { return []string{k.Text} }
func (k UnknownChar) Args() []string              { return []string{k.Text} }
func (UnterminatedString) Args() []string         { return nil }
func (UnterminatedComment) Args() []string        { return nil }
func (k BadNumber) Args() []string                { return []string{k.Text, k.Reason} }
func (k BadEscape) Args() []string                { return []string{k.Text} }
func (k LoadFailed) Args() []string               { return []string{k.Reason} }

func (UnexpectedEOF) Message() string { return "unexpected end of file" }

func (k UnexpectedToken) Message() string {
	return fmt.Sprintf("unexpected token %q", k.Text)
}

func (k ExpectedItem) Message() string {
	return fmt.Sprintf("expected %s after %q", k.What, k.After)
}

func (k InvalidExternalSpecifier) Message() string {
	return fmt.Sprintf("invalid external specifier %q", k.Text)
}

func (k DuplicateArgument) Message() string {
	return fmt.Sprintf("argument %q is declared more than once", k.Name)
}

func (k InvalidLiteral) Message() string {
	return fmt.Sprintf("invalid literal %q", k.Text)
}

func (k UnknownChar) Message() string {
	return fmt.Sprintf("unknown character %q", k.Text)
}

func (UnterminatedString) Message() string { return "unterminated string literal" }

func (UnterminatedComment) Message() string { return "unterminated block comment" }

func (k BadNumber) Message() string {
	return fmt.Sprintf("malformed number %q: %s", k.Text, k.Reason)
}

func (k BadEscape) Message() string {
	return fmt.Sprintf("invalid escape sequence %q", k.Text)
}

func (k LoadFailed) Message() string {
	return "failed to load file: " + k.Reason
}

// KindFromCode rebuilds an ErrorKind from its code and Args.
func KindFromCode(code Code, args []string) (ErrorKind, bool) {
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}
	switch code {
	case SynUnexpectedEOF:
		return UnexpectedEOF{}, true
	case SynUnexpectedToken:
		return UnexpectedToken{Text: arg(0)}, true
	case SynExpectedItem:
		return ExpectedItem{What: arg(0), After: arg(1)}, true
	case SynInvalidExternalSpecifier:
		return InvalidExternalSpecifier{Text: arg(0)}, true
	case SynDuplicateArgument:
		return DuplicateArgument{Name: arg(0)}, true
	case SynInvalidLiteral:
		return InvalidLiteral{Text: arg(0)}, true
	case LexUnknownChar:
		return UnknownChar{Text: arg(0)}, true
	case LexUnterminatedString:
		return UnterminatedString{}, true
	case LexUnterminatedComment:
		return UnterminatedComment{}, true
	case LexBadNumber:
		return BadNumber{Text: arg(0), Reason: arg(1)}, true
	case LexBadEscape:
		return BadEscape{Text: arg(0)}, true
	case IOLoadFileError:
		return LoadFailed{Reason: arg(0)}, true
	default:
		return nil, false
	}
}
