package token

var keywords = map[string]Kind{
	"fn":        KwFn,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"class":     KwClass,
	"const":     KwConst,
	"interface": KwInterface,
	"namespace": KwNamespace,
	"import":    KwImport,
	"public":    KwPublic,
	"private":   KwPrivate,
	"static":    KwStatic,
	"inline":    KwInline,
	"external":  KwExternal,
	"abstract":  KwAbstract,
	"final":     KwFinal,
	"let":       KwLet,
	"return":    KwReturn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
	"do":        KwDo,
	"for":       KwFor,
	"new":       KwNew,
	"delete":    KwDelete,
	"as":        KwAs,
	"true":      KwTrue,
	"false":     KwFalse,
}

// LookupKeyword returns the keyword kind for ident. Keywords are case-sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
