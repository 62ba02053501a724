package translator

import "pyjs/lang"

// Token-to-JavaScript spellings live here and nowhere else, so a missing
// mapping always surfaces as UnsupportedConstructError instead of leaking
// a Python lexeme into the output. ** and // deliberately have no entry.
var binaryOps = map[lang.TokenType]string{
	lang.PLUS:      "+",
	lang.MINUS:     "-",
	lang.STAR:      "*",
	lang.SLASH:     "/",
	lang.PERCENT:   "%",
	lang.SHL:       "<<",
	lang.SHR:       ">>",
	lang.AMPERSAND: "&",
	lang.PIPE:      "|",
	lang.CARET:     "^",
}

// Python equality maps to strict equality; is and in have no entry.
var compareOps = map[lang.TokenType]string{
	lang.EQEQ:   "===",
	lang.BANGEQ: "!==",
	lang.LT:     "<",
	lang.LTEQ:   "<=",
	lang.GT:     ">",
	lang.GTEQ:   ">=",
}

var boolOps = map[lang.TokenType]string{
	lang.AND: "&&",
	lang.OR:  "||",
}

var unaryOps = map[lang.TokenType]string{
	lang.PLUS:  "+",
	lang.MINUS: "-",
	lang.TILDE: "~",
	lang.NOT:   "!",
}

var augAssignOps = map[lang.TokenType]string{
	lang.PLUSEQ:    "+=",
	lang.MINUSEQ:   "-=",
	lang.STAREQ:    "*=",
	lang.SLASHEQ:   "/=",
	lang.PERCENTEQ: "%=",
}

var literalWords = map[string]string{
	"True":  "true",
	"False": "false",
	"None":  "null",
}

// jsReserved holds the JavaScript reserved words, including the strict-mode
// and future-reserved set, that can never appear as an identifier in the
// output.
var jsReserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true,
	"class": true, "const": true, "continue": true, "debugger": true,
	"default": true, "delete": true, "do": true, "else": true,
	"enum": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "function": true, "if": true,
	"implements": true, "import": true, "in": true, "instanceof": true,
	"interface": true, "let": true, "new": true, "null": true,
	"package": true, "private": true, "protected": true, "public": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true,
	"typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
}

func checkName(name string, pos lang.Position) error {
	if jsReserved[name] {
		return &ReservedWordError{Name: name, Pos: pos}
	}
	return nil
}
