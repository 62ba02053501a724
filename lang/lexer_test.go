package lang

import "testing"

func collectTypes(input string) []TokenType {
	l := NewLexer(input)
	var types []TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == EOF {
			break
		}
	}
	return types
}

func expectTypes(t *testing.T, input string, want []TokenType) {
	t.Helper()
	got := collectTypes(input)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch for %q: expected %d, got %d (%v)", input, len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d mismatch for %q: expected %v, got %v", i, input, want[i], got[i])
		}
	}
}

func TestIndentedBlock(t *testing.T) {
	expectTypes(t, "def f():\n    x = 1\n", []TokenType{
		DEF, IDENT, LPAREN, RPAREN, COLON, NEWLINE,
		INDENT, IDENT, EQ, NUMBER, NEWLINE,
		DEDENT, EOF,
	})
}

func TestNestedDedents(t *testing.T) {
	src := "def f():\n    if x:\n        y = 1\n    z = 2\n"
	expectTypes(t, src, []TokenType{
		DEF, IDENT, LPAREN, RPAREN, COLON, NEWLINE,
		INDENT, IF, IDENT, COLON, NEWLINE,
		INDENT, IDENT, EQ, NUMBER, NEWLINE,
		DEDENT, IDENT, EQ, NUMBER, NEWLINE,
		DEDENT, EOF,
	})
}

func TestNewlinesInsideBracketsIgnored(t *testing.T) {
	src := "x = (1 +\n     2)\n"
	expectTypes(t, src, []TokenType{
		IDENT, EQ, LPAREN, NUMBER, PLUS, NUMBER, RPAREN, NEWLINE, EOF,
	})
}

func TestBlankAndCommentLinesSkipped(t *testing.T) {
	src := "a = 1\n\n# a comment\nb = 2\n"
	expectTypes(t, src, []TokenType{
		IDENT, EQ, NUMBER, NEWLINE,
		IDENT, EQ, NUMBER, NEWLINE, EOF,
	})
}

func TestMissingTrailingNewline(t *testing.T) {
	expectTypes(t, "def f():\n    pass", []TokenType{
		DEF, IDENT, LPAREN, RPAREN, COLON, NEWLINE,
		INDENT, PASS, DEDENT, EOF,
	})
}

func TestTwoCharOperators(t *testing.T) {
	expectTypes(t, "a <= b != c ** d // e\n", []TokenType{
		IDENT, LTEQ, IDENT, BANGEQ, IDENT, DOUBLESTAR, IDENT, DOUBLESLASH, IDENT, NEWLINE, EOF,
	})
}

func TestStringEscapes(t *testing.T) {
	l := NewLexer("s = 'a\\nb\\'c'\n")
	var str Token
	for {
		tok := l.NextToken()
		if tok.Type == STRING {
			str = tok
		}
		if tok.Type == EOF {
			break
		}
	}
	if str.Literal != "a\nb'c" {
		t.Fatalf("unexpected string literal: %q", str.Literal)
	}
}

func TestSingleAndDoubleQuotes(t *testing.T) {
	l := NewLexer(`x = "hi"` + "\n")
	var str Token
	for {
		tok := l.NextToken()
		if tok.Type == STRING {
			str = tok
		}
		if tok.Type == EOF {
			break
		}
	}
	if str.Literal != "hi" {
		t.Fatalf("unexpected string literal: %q", str.Literal)
	}
}

func TestUnicodeStringLiteral(t *testing.T) {
	l := NewLexer("s = \"héllo wörld\"\n")
	var str Token
	for {
		tok := l.NextToken()
		if tok.Type == STRING {
			str = tok
		}
		if tok.Type == EOF {
			break
		}
	}
	if str.Literal != "héllo wörld" {
		t.Fatalf("unexpected string literal: %q", str.Literal)
	}
}

func TestNewlineTokenReportsItsOwnLine(t *testing.T) {
	l := NewLexer("a = 1\nb = 2\n")
	var newlineLines []int
	var bLine int
	for {
		tok := l.NextToken()
		if tok.Type == NEWLINE {
			newlineLines = append(newlineLines, tok.Pos.Line)
		}
		if tok.Type == IDENT && tok.Literal == "b" {
			bLine = tok.Pos.Line
		}
		if tok.Type == EOF {
			break
		}
	}
	if len(newlineLines) != 2 || newlineLines[0] != 1 || newlineLines[1] != 2 {
		t.Fatalf("newline tokens must sit on the lines they terminate, got %v", newlineLines)
	}
	if bLine != 2 {
		t.Fatalf("expected b on line 2, got %d", bLine)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectTypes(t, "lambda not_a_keyword: None\n", []TokenType{
		LAMBDA, IDENT, COLON, NONE, NEWLINE, EOF,
	})
}

func TestIllegalBang(t *testing.T) {
	types := collectTypes("a ! b\n")
	found := false
	for _, tt := range types {
		if tt == ILLEGAL {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an illegal token, got %v", types)
	}
}
