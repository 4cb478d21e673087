package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexBadEscape           Code = 1005

	// Парсерные
	SynInfo                     Code = 2000
	SynUnexpectedToken          Code = 2001
	SynUnexpectedEOF            Code = 2002
	SynExpectedItem             Code = 2003
	SynInvalidExternalSpecifier Code = 2004
	SynDuplicateArgument        Code = 2005
	SynInvalidLiteral           Code = 2006

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedComment:      "Unterminated block comment",
	LexBadNumber:                "Malformed number",
	LexBadEscape:                "Invalid escape sequence",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnexpectedEOF:            "Unexpected end of file",
	SynExpectedItem:             "Expected item",
	SynInvalidExternalSpecifier: "Invalid external specifier",
	SynDuplicateArgument:        "Duplicate argument",
	SynInvalidLiteral:           "Invalid literal",
	IOLoadFileError:             "Failed to load file",
}

// ID returns the stable identifier of the code, e.g. SYN2001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
