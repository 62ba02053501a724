package lang

import (
	"fmt"
)

// Parse builds an AST for the given source while collecting diagnostics.
func Parse(source string) (Module, []Diagnostic) {
	lexer := NewLexer(source)
	tokens := make([]Token, 0, 256)
	diags := []Diagnostic{}

	for {
		tok := lexer.NextToken()
		if tok.Type == ILLEGAL {
			diags = append(diags, Diagnostic{
				Message: fmt.Sprintf("unexpected input %q", tok.Literal),
				Pos:     tok.Pos,
			})
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}

	p := &parser{
		tokens: tokens,
		diags:  diags,
	}
	mod := p.parseModule()
	return mod, p.diags
}

type parser struct {
	tokens []Token
	pos    int
	diags  []Diagnostic
}

func (p *parser) parseModule() Module {
	mod := Module{}
	for !p.isAtEnd() {
		if p.match(NEWLINE, SEMICOLON) {
			continue
		}
		stmt := p.parseStmt()
		if stmt != nil {
			mod.Body = append(mod.Body, stmt)
		}
	}
	return mod
}

func (p *parser) parseStmt() Stmt {
	switch {
	case p.match(DEF):
		return p.parseFunctionDef()
	case p.match(IF):
		return p.parseIf()
	case p.match(WHILE):
		return p.parseWhile()
	case p.match(FOR):
		return p.parseFor()
	default:
		stmt := p.parseSimpleStmt()
		p.endStmt()
		return stmt
	}
}

func (p *parser) parseSimpleStmt() Stmt {
	switch {
	case p.match(RETURN):
		pos := p.previous().Pos
		var value Expr
		if !p.atStmtEnd() {
			value = p.parseExprList()
		}
		return &ReturnStmt{Value: value, pos: pos}
	case p.match(RAISE):
		pos := p.previous().Pos
		var value Expr
		if !p.atStmtEnd() {
			value = p.parseExpression()
		}
		return &RaiseStmt{Value: value, pos: pos}
	case p.match(DEL):
		pos := p.previous().Pos
		targets := []Expr{p.parseTarget()}
		for p.match(COMMA) {
			targets = append(targets, p.parseTarget())
		}
		return &DeleteStmt{Targets: targets, pos: pos}
	case p.match(PASS):
		return &PassStmt{pos: p.previous().Pos}
	case p.match(BREAK):
		return &BreakStmt{pos: p.previous().Pos}
	case p.match(CONTINUE):
		return &ContinueStmt{pos: p.previous().Pos}
	default:
		return p.parseExprOrAssign()
	}
}

func (p *parser) parseExprOrAssign() Stmt {
	first := p.parseExprList()

	if p.match(PLUSEQ, MINUSEQ, STAREQ, SLASHEQ, PERCENTEQ) {
		op := p.previous()
		value := p.parseExpression()
		return &AugAssignStmt{Target: first, Op: op.Type, Value: value, pos: first.Pos()}
	}

	if p.match(EQ) {
		targets := []Expr{first}
		value := p.parseExprList()
		for p.match(EQ) {
			targets = append(targets, value)
			value = p.parseExprList()
		}
		return &AssignStmt{Targets: targets, Value: value, pos: first.Pos()}
	}

	return &ExprStmt{Expr: first, pos: first.Pos()}
}

func (p *parser) parseFunctionDef() *FunctionDef {
	nameTok := p.expect(IDENT, "expected function name after def")
	fd := &FunctionDef{Name: nameTok.Literal, pos: nameTok.Pos}

	p.expect(LPAREN, "expected '(' after function name")
	if !p.check(RPAREN) {
		for {
			paramTok := p.expect(IDENT, "expected parameter name")
			if p.match(EQ) {
				p.error(paramTok.Pos, "default parameter values are not supported")
				p.parseExpression()
			}
			fd.Params = append(fd.Params, Param{Name: paramTok.Literal, Pos: paramTok.Pos})
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.expect(RPAREN, "expected ')' to close parameter list")

	fd.Body = p.parseSuite()
	return fd
}

func (p *parser) parseIf() *IfStmt {
	pos := p.previous().Pos
	cond := p.parseExpression()
	then := p.parseSuite()
	var orelse []Stmt
	if p.match(ELIF) {
		orelse = []Stmt{p.parseIf()}
	} else if p.match(ELSE) {
		orelse = p.parseSuite()
	}
	return &IfStmt{Cond: cond, Then: then, Else: orelse, pos: pos}
}

func (p *parser) parseWhile() *WhileStmt {
	pos := p.previous().Pos
	cond := p.parseExpression()
	body := p.parseSuite()
	return &WhileStmt{Cond: cond, Body: body, pos: pos}
}

func (p *parser) parseFor() *ForStmt {
	pos := p.previous().Pos
	target := p.parseTarget()
	if p.check(COMMA) {
		elems := []Expr{target}
		for p.match(COMMA) {
			elems = append(elems, p.parseTarget())
		}
		target = &TupleLit{Elems: elems, pos: target.Pos()}
	}
	p.expect(IN, "expected 'in' in for statement")
	iter := p.parseExpression()
	body := p.parseSuite()
	return &ForStmt{Target: target, Iter: iter, Body: body, pos: pos}
}

// parseSuite handles both block forms: an indented body on the following
// lines, or simple statements inline after the colon.
func (p *parser) parseSuite() []Stmt {
	p.expect(COLON, "expected ':'")

	if p.match(NEWLINE) {
		p.expect(INDENT, "expected an indented block")
		stmts := []Stmt{}
		for !p.check(DEDENT) && !p.isAtEnd() {
			if p.match(NEWLINE, SEMICOLON) {
				continue
			}
			stmt := p.parseStmt()
			if stmt != nil {
				stmts = append(stmts, stmt)
			}
		}
		p.expect(DEDENT, "expected dedent to close block")
		return stmts
	}

	stmts := []Stmt{p.parseSimpleStmt()}
	for p.match(SEMICOLON) {
		if p.check(NEWLINE) || p.isAtEnd() {
			break
		}
		stmts = append(stmts, p.parseSimpleStmt())
	}
	p.match(NEWLINE)
	return stmts
}

// parseTarget parses an assignment or loop target without consuming the
// 'in' keyword, which the full expression grammar would read as a
// comparison operator.
func (p *parser) parseTarget() Expr {
	return p.parsePostfix(p.parsePrimary())
}

// parseExprList parses an expression, folding a top-level comma sequence
// into a tuple node.
func (p *parser) parseExprList() Expr {
	expr := p.parseExpression()
	if p.check(COMMA) {
		elems := []Expr{expr}
		for p.match(COMMA) {
			if p.atStmtEnd() || p.check(EQ) {
				break
			}
			elems = append(elems, p.parseExpression())
		}
		return &TupleLit{Elems: elems, pos: expr.Pos()}
	}
	return expr
}

func (p *parser) parseExpression() Expr {
	if p.match(LAMBDA) {
		return p.parseLambda()
	}
	return p.parseTernary()
}

func (p *parser) parseLambda() Expr {
	pos := p.previous().Pos
	params := []Param{}
	if !p.check(COLON) {
		for {
			paramTok := p.expect(IDENT, "expected lambda parameter name")
			params = append(params, Param{Name: paramTok.Literal, Pos: paramTok.Pos})
			if !p.match(COMMA) {
				break
			}
		}
	}
	p.expect(COLON, "expected ':' after lambda parameters")
	body := p.parseExpression()
	return &LambdaExpr{Params: params, Body: body, pos: pos}
}

func (p *parser) parseTernary() Expr {
	expr := p.parseOr()
	if p.match(IF) {
		cond := p.parseOr()
		p.expect(ELSE, "expected 'else' in conditional expression")
		orelse := p.parseExpression()
		return &CondExpr{Cond: cond, Then: expr, Orelse: orelse, pos: expr.Pos()}
	}
	return expr
}

func (p *parser) parseOr() Expr {
	expr := p.parseAnd()
	if p.check(OR) {
		values := []Expr{expr}
		for p.match(OR) {
			values = append(values, p.parseAnd())
		}
		return &BoolOpExpr{Op: OR, Values: values, pos: expr.Pos()}
	}
	return expr
}

func (p *parser) parseAnd() Expr {
	expr := p.parseNot()
	if p.check(AND) {
		values := []Expr{expr}
		for p.match(AND) {
			values = append(values, p.parseNot())
		}
		return &BoolOpExpr{Op: AND, Values: values, pos: expr.Pos()}
	}
	return expr
}

func (p *parser) parseNot() Expr {
	if p.match(NOT) {
		op := p.previous()
		return &UnaryExpr{Op: NOT, Operand: p.parseNot(), pos: op.Pos}
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() Expr {
	left := p.parseBitOr()
	if !p.checkAny(EQEQ, BANGEQ, LT, LTEQ, GT, GTEQ, IN, IS) {
		return left
	}
	ops := []TokenType{}
	comparators := []Expr{}
	for p.match(EQEQ, BANGEQ, LT, LTEQ, GT, GTEQ, IN, IS) {
		ops = append(ops, p.previous().Type)
		comparators = append(comparators, p.parseBitOr())
	}
	return &CompareExpr{Left: left, Ops: ops, Comparators: comparators, pos: left.Pos()}
}

func (p *parser) parseBitOr() Expr {
	expr := p.parseBitXor()
	for p.match(PIPE) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseBitXor(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseBitXor() Expr {
	expr := p.parseBitAnd()
	for p.match(CARET) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseBitAnd(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseBitAnd() Expr {
	expr := p.parseShift()
	for p.match(AMPERSAND) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseShift(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseShift() Expr {
	expr := p.parseArith()
	for p.match(SHL, SHR) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseArith(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseArith() Expr {
	expr := p.parseTerm()
	for p.match(PLUS, MINUS) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseTerm(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseTerm() Expr {
	expr := p.parseUnary()
	for p.match(STAR, SLASH, DOUBLESLASH, PERCENT) {
		op := p.previous()
		expr = &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseUnary(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parseUnary() Expr {
	if p.match(PLUS, MINUS, TILDE) {
		op := p.previous()
		return &UnaryExpr{Op: op.Type, Operand: p.parseUnary(), pos: op.Pos}
	}
	return p.parsePower()
}

func (p *parser) parsePower() Expr {
	expr := p.parsePostfix(p.parsePrimary())
	if p.match(DOUBLESTAR) {
		op := p.previous()
		// Exponentiation binds right and tighter than unary on the right.
		return &BinaryExpr{Op: op.Type, Left: expr, Right: p.parseUnary(), pos: op.Pos}
	}
	return expr
}

func (p *parser) parsePrimary() Expr {
	switch {
	case p.match(NUMBER):
		tok := p.previous()
		return &NumberLit{Value: tok.Literal, pos: tok.Pos}
	case p.match(STRING):
		tok := p.previous()
		return &StringLit{Value: tok.Literal, pos: tok.Pos}
	case p.match(TRUE):
		return &BoolLit{Value: true, pos: p.previous().Pos}
	case p.match(FALSE):
		return &BoolLit{Value: false, pos: p.previous().Pos}
	case p.match(NONE):
		return &NoneLit{pos: p.previous().Pos}
	case p.match(IDENT):
		tok := p.previous()
		return &IdentExpr{Name: tok.Literal, pos: tok.Pos}
	case p.match(LPAREN):
		return p.parseParen()
	case p.match(LBRACKET):
		return p.parseList()
	case p.match(LBRACE):
		return p.parseDict()
	default:
		tok := p.peek()
		p.error(tok.Pos, "unexpected token in expression")
		p.advance()
		return &IdentExpr{Name: "", pos: tok.Pos}
	}
}

func (p *parser) parseParen() Expr {
	pos := p.previous().Pos
	if p.match(RPAREN) {
		return &TupleLit{pos: pos}
	}
	expr := p.parseExpression()
	if p.check(COMMA) {
		elems := []Expr{expr}
		for p.match(COMMA) {
			if p.check(RPAREN) {
				break
			}
			elems = append(elems, p.parseExpression())
		}
		expr = &TupleLit{Elems: elems, pos: pos}
	}
	p.expect(RPAREN, "expected ')' after expression")
	return expr
}

func (p *parser) parseList() Expr {
	pos := p.previous().Pos
	elems := []Expr{}
	for !p.check(RBRACKET) && !p.isAtEnd() {
		elems = append(elems, p.parseExpression())
		if !p.match(COMMA) {
			break
		}
	}
	p.expect(RBRACKET, "expected ']' to close list literal")
	return &ListLit{Elems: elems, pos: pos}
}

func (p *parser) parseDict() Expr {
	pos := p.previous().Pos
	lit := &DictLit{pos: pos}
	for !p.check(RBRACE) && !p.isAtEnd() {
		key := p.parseExpression()
		p.expect(COLON, "expected ':' in dict literal")
		value := p.parseExpression()
		lit.Keys = append(lit.Keys, key)
		lit.Values = append(lit.Values, value)
		if !p.match(COMMA) {
			break
		}
	}
	p.expect(RBRACE, "expected '}' to close dict literal")
	return lit
}

func (p *parser) parsePostfix(expr Expr) Expr {
	for {
		switch {
		case p.match(LPAREN):
			args := []Expr{}
			if !p.check(RPAREN) {
				for {
					arg := p.parseExpression()
					if p.match(EQ) {
						p.error(p.previous().Pos, "keyword arguments are not supported")
						p.parseExpression()
					}
					args = append(args, arg)
					if !p.match(COMMA) {
						break
					}
				}
			}
			paren := p.expect(RPAREN, "expected ')' after call arguments")
			expr = &CallExpr{Callee: expr, Args: args, pos: paren.Pos}
		case p.match(DOT):
			prop := p.expect(IDENT, "expected attribute name after '.'")
			expr = &AttributeExpr{Object: expr, Name: prop.Literal, pos: prop.Pos}
		case p.match(LBRACKET):
			expr = p.parseSubscript(expr)
		default:
			return expr
		}
	}
}

func (p *parser) parseSubscript(object Expr) Expr {
	pos := p.previous().Pos
	var low, high Expr
	if !p.check(COLON) {
		low = p.parseExpression()
	}
	if p.match(COLON) {
		if !p.check(RBRACKET) {
			high = p.parseExpression()
		}
		p.expect(RBRACKET, "expected ']' to close subscript")
		return &SliceExpr{Object: object, Low: low, High: high, pos: pos}
	}
	p.expect(RBRACKET, "expected ']' to close subscript")
	return &IndexExpr{Object: object, Index: low, pos: pos}
}

func (p *parser) endStmt() {
	if p.match(NEWLINE, SEMICOLON) {
		return
	}
	if p.check(DEDENT) || p.isAtEnd() {
		return
	}
	p.errorAtCurrent("expected end of statement")
	for !p.check(NEWLINE) && !p.check(DEDENT) && !p.isAtEnd() {
		p.advance()
	}
	p.match(NEWLINE)
}

func (p *parser) atStmtEnd() bool {
	return p.check(NEWLINE) || p.check(SEMICOLON) || p.check(DEDENT) || p.isAtEnd()
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) previous() Token {
	if p.pos == 0 {
		return Token{}
	}
	return p.tokens[p.pos-1]
}

func (p *parser) advance() Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *parser) check(t TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *parser) checkAny(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

func (p *parser) match(types ...TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *parser) expect(t TokenType, msg string) Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorAtCurrent(msg)
	return Token{Type: t, Pos: p.peek().Pos}
}

func (p *parser) error(pos Position, msg string) {
	p.diags = append(p.diags, Diagnostic{Message: msg, Pos: pos})
}

func (p *parser) errorAtCurrent(msg string) {
	p.error(p.peek().Pos, msg)
}

func (p *parser) isAtEnd() bool {
	return p.peek().Type == EOF
}
