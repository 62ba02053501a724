package lang

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes a Python-subset source string. Statement structure is
// carried by NEWLINE, INDENT, and DEDENT tokens; newlines inside brackets
// are treated as plain whitespace so chained call expressions can span
// lines.
type Lexer struct {
	input   string
	offset  int
	line    int
	col     int
	ch      rune
	depth   int
	indents []int
	pending []Token
	atStart bool
}

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:   input,
		line:    1,
		col:     0,
		indents: []int{0},
		atStart: true,
	}
	l.read()
	return l
}

// read advances to the next rune. line and col always describe the
// position of the current rune, so a newline is reported on the line it
// terminates.
func (l *Lexer) read() {
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	if l.offset >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.offset:])
	l.ch = r
	l.offset += size
	l.col++
}

func (l *Lexer) peek() rune {
	if l.offset >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.offset:])
	return r
}

func (l *Lexer) NextToken() Token {
	if len(l.pending) > 0 {
		tok := l.pending[0]
		l.pending = l.pending[1:]
		return tok
	}

	if l.atStart && l.depth == 0 {
		if tok, ok := l.scanIndentation(); ok {
			return tok
		}
	}

	l.skipSpacesAndComments()
	pos := Position{Line: l.line, Column: l.col}

	switch l.ch {
	case 0:
		// Close any open blocks before reporting end of input.
		if len(l.indents) > 1 {
			l.indents = l.indents[:len(l.indents)-1]
			return Token{Type: DEDENT, Pos: pos}
		}
		return Token{Type: EOF, Pos: pos}
	case '\n':
		l.read()
		if l.depth > 0 {
			return l.NextToken()
		}
		l.atStart = true
		return Token{Type: NEWLINE, Literal: "\n", Pos: pos}
	case '(':
		l.depth++
		return l.single(LPAREN, "(", pos)
	case ')':
		l.depth--
		return l.single(RPAREN, ")", pos)
	case '[':
		l.depth++
		return l.single(LBRACKET, "[", pos)
	case ']':
		l.depth--
		return l.single(RBRACKET, "]", pos)
	case '{':
		l.depth++
		return l.single(LBRACE, "{", pos)
	case '}':
		l.depth--
		return l.single(RBRACE, "}", pos)
	case ',':
		return l.single(COMMA, ",", pos)
	case ':':
		return l.single(COLON, ":", pos)
	case ';':
		return l.single(SEMICOLON, ";", pos)
	case '.':
		return l.single(DOT, ".", pos)
	case '~':
		return l.single(TILDE, "~", pos)
	case '&':
		return l.single(AMPERSAND, "&", pos)
	case '|':
		return l.single(PIPE, "|", pos)
	case '^':
		return l.single(CARET, "^", pos)
	case '+':
		if l.peek() == '=' {
			l.read()
			return l.single(PLUSEQ, "+=", pos)
		}
		return l.single(PLUS, "+", pos)
	case '-':
		if l.peek() == '=' {
			l.read()
			return l.single(MINUSEQ, "-=", pos)
		}
		return l.single(MINUS, "-", pos)
	case '*':
		if l.peek() == '*' {
			l.read()
			return l.single(DOUBLESTAR, "**", pos)
		}
		if l.peek() == '=' {
			l.read()
			return l.single(STAREQ, "*=", pos)
		}
		return l.single(STAR, "*", pos)
	case '/':
		if l.peek() == '/' {
			l.read()
			return l.single(DOUBLESLASH, "//", pos)
		}
		if l.peek() == '=' {
			l.read()
			return l.single(SLASHEQ, "/=", pos)
		}
		return l.single(SLASH, "/", pos)
	case '%':
		if l.peek() == '=' {
			l.read()
			return l.single(PERCENTEQ, "%=", pos)
		}
		return l.single(PERCENT, "%", pos)
	case '=':
		if l.peek() == '=' {
			l.read()
			return l.single(EQEQ, "==", pos)
		}
		return l.single(EQ, "=", pos)
	case '!':
		if l.peek() == '=' {
			l.read()
			return l.single(BANGEQ, "!=", pos)
		}
		return l.single(ILLEGAL, "!", pos)
	case '<':
		if l.peek() == '<' {
			l.read()
			return l.single(SHL, "<<", pos)
		}
		if l.peek() == '=' {
			l.read()
			return l.single(LTEQ, "<=", pos)
		}
		return l.single(LT, "<", pos)
	case '>':
		if l.peek() == '>' {
			l.read()
			return l.single(SHR, ">>", pos)
		}
		if l.peek() == '=' {
			l.read()
			return l.single(GTEQ, ">=", pos)
		}
		return l.single(GT, ">", pos)
	case '"', '\'':
		literal := l.readString(l.ch)
		return Token{Type: STRING, Literal: literal, Pos: pos}
	}

	if isLetter(l.ch) {
		lit := l.readIdentifier()
		return Token{Type: lookupIdent(lit), Literal: lit, Pos: pos}
	}
	if isDigit(l.ch) {
		lit := l.readNumber()
		return Token{Type: NUMBER, Literal: lit, Pos: pos}
	}

	tok := Token{Type: ILLEGAL, Literal: string(l.ch), Pos: pos}
	l.read()
	return tok
}

func (l *Lexer) single(t TokenType, literal string, pos Position) Token {
	l.read()
	return Token{Type: t, Literal: literal, Pos: pos}
}

// scanIndentation measures the leading whitespace of a logical line and
// emits INDENT or queues DEDENT tokens against the indent stack. Blank and
// comment-only lines carry no indentation information and are skipped.
func (l *Lexer) scanIndentation() (Token, bool) {
	for {
		width := 0
		for l.ch == ' ' || l.ch == '\t' {
			if l.ch == '\t' {
				width += 4
			} else {
				width++
			}
			l.read()
		}
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
		}
		if l.ch == '\n' {
			l.read()
			continue
		}
		if l.ch == 0 {
			l.atStart = false
			return Token{}, false
		}

		l.atStart = false
		pos := Position{Line: l.line, Column: l.col}
		top := l.indents[len(l.indents)-1]
		if width > top {
			l.indents = append(l.indents, width)
			return Token{Type: INDENT, Pos: pos}, true
		}
		for width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.pending = append(l.pending, Token{Type: DEDENT, Pos: pos})
		}
		if width != l.indents[len(l.indents)-1] {
			l.pending = append(l.pending, Token{Type: ILLEGAL, Literal: "inconsistent indentation", Pos: pos})
		}
		if len(l.pending) > 0 {
			tok := l.pending[0]
			l.pending = l.pending[1:]
			return tok, true
		}
		return Token{}, false
	}
}

func (l *Lexer) skipSpacesAndComments() {
	for {
		if l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
			l.read()
			continue
		}
		if l.ch == '\\' && l.peek() == '\n' {
			l.read()
			l.read()
			continue
		}
		if l.ch == '#' {
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
			continue
		}
		if l.ch == '\n' && l.depth > 0 {
			l.read()
			continue
		}
		break
	}
}

func (l *Lexer) readIdentifier() string {
	var b strings.Builder
	for isLetter(l.ch) || isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	return b.String()
}

func (l *Lexer) readNumber() string {
	var b strings.Builder
	for isDigit(l.ch) {
		b.WriteRune(l.ch)
		l.read()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		b.WriteRune(l.ch)
		l.read()
		for isDigit(l.ch) {
			b.WriteRune(l.ch)
			l.read()
		}
	}
	return b.String()
}

func (l *Lexer) readString(quote rune) string {
	// Skip opening quote.
	l.read()
	var b strings.Builder
	for l.ch != quote && l.ch != '\n' && l.ch != 0 {
		if l.ch == '\\' {
			l.read()
			switch l.ch {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case 'r':
				b.WriteRune('\r')
			case '\\', '\'', '"':
				b.WriteRune(l.ch)
			default:
				b.WriteRune('\\')
				b.WriteRune(l.ch)
			}
			l.read()
			continue
		}
		b.WriteRune(l.ch)
		l.read()
	}
	// Skip closing quote if present.
	if l.ch == quote {
		l.read()
	}
	return b.String()
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
