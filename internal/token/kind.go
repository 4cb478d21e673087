package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating point literal.
	FloatLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// KwFn represents the 'fn' keyword.
	KwFn
	// KwStruct represents the 'struct' keyword.
	KwStruct
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwClass represents the 'class' keyword.
	KwClass
	// KwConst represents the 'const' keyword.
	KwConst
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace
	// KwImport represents the 'import' keyword.
	KwImport

	// KwPublic represents the 'public' modifier.
	KwPublic
	// KwPrivate represents the 'private' modifier.
	KwPrivate
	// KwStatic represents the 'static' modifier.
	KwStatic
	// KwInline represents the 'inline' modifier.
	KwInline
	// KwExternal represents the 'external' modifier.
	KwExternal
	// KwAbstract represents the 'abstract' modifier.
	KwAbstract
	// KwFinal represents the 'final' modifier.
	KwFinal

	KwLet
	KwReturn
	KwBreak
	KwContinue
	KwIf
	KwElse
	KwWhile
	KwDo
	KwFor
	KwNew
	KwDelete
	KwAs
	KwTrue
	KwFalse

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	Assign     // =
	EqEq       // ==
	BangEq     // !=
	Lt         // <
	LtEq       // <=
	Gt         // >
	GtEq       // >=
	AndAnd     // &&
	OrOr       // ||
	Colon      // :
	ColonColon // ::
	Semicolon  // ;
	Comma      // ,
	Dot        // .
	Arrow      // ->
	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
)

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	IntLit:      "IntLit",
	FloatLit:    "FloatLit",
	StringLit:   "StringLit",
	KwFn:        "fn",
	KwStruct:    "struct",
	KwEnum:      "enum",
	KwClass:     "class",
	KwConst:     "const",
	KwInterface: "interface",
	KwNamespace: "namespace",
	KwImport:    "import",
	KwPublic:    "public",
	KwPrivate:   "private",
	KwStatic:    "static",
	KwInline:    "inline",
	KwExternal:  "external",
	KwAbstract:  "abstract",
	KwFinal:     "final",
	KwLet:       "let",
	KwReturn:    "return",
	KwBreak:     "break",
	KwContinue:  "continue",
	KwIf:        "if",
	KwElse:      "else",
	KwWhile:     "while",
	KwDo:        "do",
	KwFor:       "for",
	KwNew:       "new",
	KwDelete:    "delete",
	KwAs:        "as",
	KwTrue:      "true",
	KwFalse:     "false",
	Plus:        "+",
	Minus:       "-",
	Star:        "*",
	Slash:       "/",
	Percent:     "%",
	Assign:      "=",
	EqEq:        "==",
	BangEq:      "!=",
	Lt:          "<",
	LtEq:        "<=",
	Gt:          ">",
	GtEq:        ">=",
	AndAnd:      "&&",
	OrOr:        "||",
	Colon:       ":",
	ColonColon:  "::",
	Semicolon:   ";",
	Comma:       ",",
	Dot:         ".",
	Arrow:       "->",
	LParen:      "(",
	RParen:      ")",
	LBrace:      "{",
	RBrace:      "}",
	LBracket:    "[",
	RBracket:    "]",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// IsModifier reports whether k is a declaration modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case KwPublic, KwPrivate, KwStatic, KwInline, KwExternal, KwAbstract, KwFinal:
		return true
	default:
		return false
	}
}

// IsGlobalItemStart reports whether k may follow a modifier at global scope:
// a declaration keyword or another modifier.
func (k Kind) IsGlobalItemStart() bool {
	switch k {
	case KwFn, KwStruct, KwEnum, KwClass, KwConst, KwInterface:
		return true
	default:
		return k.IsModifier()
	}
}
