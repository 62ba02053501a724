package lang

type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF
	NEWLINE
	INDENT
	DEDENT
	IDENT
	NUMBER
	STRING

	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	COLON
	SEMICOLON
	DOT

	PLUS
	MINUS
	STAR
	DOUBLESTAR
	SLASH
	DOUBLESLASH
	PERCENT
	TILDE
	AMPERSAND
	PIPE
	CARET
	SHL
	SHR

	EQ
	PLUSEQ
	MINUSEQ
	STAREQ
	SLASHEQ
	PERCENTEQ

	EQEQ
	BANGEQ
	LT
	LTEQ
	GT
	GTEQ

	DEF
	RETURN
	IF
	ELIF
	ELSE
	FOR
	IN
	IS
	WHILE
	RAISE
	PASS
	BREAK
	CONTINUE
	LAMBDA
	NOT
	AND
	OR
	DEL
	TRUE
	FALSE
	NONE
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

var keywords = map[string]TokenType{
	"def":      DEF,
	"return":   RETURN,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"for":      FOR,
	"in":       IN,
	"is":       IS,
	"while":    WHILE,
	"raise":    RAISE,
	"pass":     PASS,
	"break":    BREAK,
	"continue": CONTINUE,
	"lambda":   LAMBDA,
	"not":      NOT,
	"and":      AND,
	"or":       OR,
	"del":      DEL,
	"True":     TRUE,
	"False":    FALSE,
	"None":     NONE,
}

func lookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

var tokenNames = map[TokenType]string{
	ILLEGAL:     "illegal",
	EOF:         "eof",
	NEWLINE:     "newline",
	INDENT:      "indent",
	DEDENT:      "dedent",
	IDENT:       "identifier",
	NUMBER:      "number",
	STRING:      "string",
	LPAREN:      "(",
	RPAREN:      ")",
	LBRACKET:    "[",
	RBRACKET:    "]",
	LBRACE:      "{",
	RBRACE:      "}",
	COMMA:       ",",
	COLON:       ":",
	SEMICOLON:   ";",
	DOT:         ".",
	PLUS:        "+",
	MINUS:       "-",
	STAR:        "*",
	DOUBLESTAR:  "**",
	SLASH:       "/",
	DOUBLESLASH: "//",
	PERCENT:     "%",
	TILDE:       "~",
	AMPERSAND:   "&",
	PIPE:        "|",
	CARET:       "^",
	SHL:         "<<",
	SHR:         ">>",
	EQ:          "=",
	PLUSEQ:      "+=",
	MINUSEQ:     "-=",
	STAREQ:      "*=",
	SLASHEQ:     "/=",
	PERCENTEQ:   "%=",
	EQEQ:        "==",
	BANGEQ:      "!=",
	LT:          "<",
	LTEQ:        "<=",
	GT:          ">",
	GTEQ:        ">=",
	DEF:         "def",
	RETURN:      "return",
	IF:          "if",
	ELIF:        "elif",
	ELSE:        "else",
	FOR:         "for",
	IN:          "in",
	IS:          "is",
	WHILE:       "while",
	RAISE:       "raise",
	PASS:        "pass",
	BREAK:       "break",
	CONTINUE:    "continue",
	LAMBDA:      "lambda",
	NOT:         "not",
	AND:         "and",
	OR:          "or",
	DEL:         "del",
	TRUE:        "True",
	FALSE:       "False",
	NONE:        "None",
}

// String returns the source lexeme for operators and keywords, or a
// descriptive name for structural tokens.
func (t TokenType) String() string {
	if s, ok := tokenNames[t]; ok {
		return s
	}
	return "unknown"
}
