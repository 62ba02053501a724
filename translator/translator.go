package translator

import (
	"fmt"
	"strconv"
	"strings"

	"pyjs/lang"
)

// Transpile renders one parsed Python function definition as a
// self-contained JavaScript function. The declared-name scope is seeded
// with the function's parameters; any construct without a JavaScript
// rendering fails with a typed error and no output is returned.
func Transpile(fn *lang.FunctionDef) (string, error) {
	tr := &translator{}
	var sb strings.Builder
	if err := tr.writeFunc(&sb, fn, 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// TranspileModule renders every top-level function definition of a parsed
// module. Top-level statements other than function definitions have no
// JavaScript placement and are rejected.
func TranspileModule(mod lang.Module) (string, error) {
	parts := make([]string, 0, len(mod.Body))
	for _, stmt := range mod.Body {
		fn, ok := stmt.(*lang.FunctionDef)
		if !ok {
			return "", &UnsupportedConstructError{Construct: "top-level " + nodeKind(stmt), Pos: stmt.Pos()}
		}
		code, err := Transpile(fn)
		if err != nil {
			return "", err
		}
		parts = append(parts, code)
	}
	return strings.Join(parts, "\n"), nil
}

type loopKind int

const (
	loopNone loopKind = iota
	loopWhile
	loopCallback
)

type translator struct {
	// loop is the nearest enclosing loop form. break/continue translate
	// only inside a while; a for body becomes a forEach callback where
	// they have no equivalent.
	loop loopKind
}

func (t *translator) writeFunc(sb *strings.Builder, fn *lang.FunctionDef, indent int) error {
	if err := checkName(fn.Name, fn.Pos()); err != nil {
		return err
	}
	sc := newScope()
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		if err := checkName(p.Name, p.Pos); err != nil {
			return err
		}
		sc.add(p.Name)
		params[i] = p.Name
	}

	sb.WriteString(indentStr(indent))
	sb.WriteString("function ")
	sb.WriteString(fn.Name)
	sb.WriteString("(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteString(") {\n")

	outer := t.loop
	t.loop = loopNone
	for _, stmt := range fn.Body {
		if err := t.writeStmt(sb, stmt, indent+1, sc); err != nil {
			return err
		}
	}
	t.loop = outer

	sb.WriteString(indentStr(indent))
	sb.WriteString("}\n")
	return nil
}

func (t *translator) writeStmt(sb *strings.Builder, stmt lang.Stmt, indent int, sc *scope) error {
	switch s := stmt.(type) {
	case *lang.FunctionDef:
		return t.writeFunc(sb, s, indent)
	case *lang.AssignStmt:
		return t.writeAssign(sb, s, indent, sc)
	case *lang.AugAssignStmt:
		op, ok := augAssignOps[s.Op]
		if !ok {
			return &UnsupportedConstructError{Construct: fmt.Sprintf("augmented assignment %s=", s.Op), Pos: s.Pos()}
		}
		target, err := t.exprString(s.Target)
		if err != nil {
			return err
		}
		value, err := t.exprString(s.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%s %s %s;\n", indentStr(indent), target, op, value)
		return nil
	case *lang.IfStmt:
		return t.writeIf(sb, s, indent, sc)
	case *lang.WhileStmt:
		cond, err := t.exprString(s.Cond)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%swhile (%s) {\n", indentStr(indent), cond)
		if err := t.writeBody(sb, s.Body, indent+1, sc, loopWhile); err != nil {
			return err
		}
		sb.WriteString(indentStr(indent))
		sb.WriteString("}\n")
		return nil
	case *lang.ForStmt:
		return t.writeFor(sb, s, indent, sc)
	case *lang.ReturnStmt:
		sb.WriteString(indentStr(indent))
		sb.WriteString("return")
		if s.Value != nil {
			value, err := t.exprString(s.Value)
			if err != nil {
				return err
			}
			sb.WriteString(" ")
			sb.WriteString(value)
		}
		sb.WriteString(";\n")
		return nil
	case *lang.RaiseStmt:
		if s.Value == nil {
			return &UnsupportedConstructError{Construct: "bare raise", Pos: s.Pos()}
		}
		// Every raised value is wrapped, error-shaped or not, so the
		// output is deterministic.
		value, err := t.exprString(s.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%sthrow new Error(%s);\n", indentStr(indent), value)
		return nil
	case *lang.DeleteStmt:
		for _, target := range s.Targets {
			ts, err := t.exprString(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(sb, "%sdelete %s;\n", indentStr(indent), ts)
		}
		return nil
	case *lang.ExprStmt:
		value, err := t.exprString(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s%s;\n", indentStr(indent), value)
		return nil
	case *lang.PassStmt:
		return nil
	case *lang.BreakStmt:
		if t.loop != loopWhile {
			return &UnsupportedConstructError{Construct: "break inside a callback-translated loop", Pos: s.Pos()}
		}
		sb.WriteString(indentStr(indent))
		sb.WriteString("break;\n")
		return nil
	case *lang.ContinueStmt:
		if t.loop != loopWhile {
			return &UnsupportedConstructError{Construct: "continue inside a callback-translated loop", Pos: s.Pos()}
		}
		sb.WriteString(indentStr(indent))
		sb.WriteString("continue;\n")
		return nil
	default:
		return &UnsupportedConstructError{Construct: nodeKind(stmt), Pos: stmt.Pos()}
	}
}

func (t *translator) writeBody(sb *strings.Builder, body []lang.Stmt, indent int, sc *scope, loop loopKind) error {
	outer := t.loop
	t.loop = loop
	for _, stmt := range body {
		if err := t.writeStmt(sb, stmt, indent, sc); err != nil {
			return err
		}
	}
	t.loop = outer
	return nil
}

// writeAssign flattens chained assignment into one assignment per target.
// The rendered right-hand text is repeated verbatim, so a side-effecting
// expression runs once per target in the output; this mirrors the hoisting
// emulation and is a documented limitation, not a bug.
func (t *translator) writeAssign(sb *strings.Builder, s *lang.AssignStmt, indent int, sc *scope) error {
	value, err := t.exprString(s.Value)
	if err != nil {
		return err
	}
	for _, target := range s.Targets {
		switch tgt := target.(type) {
		case *lang.IdentExpr:
			if err := checkName(tgt.Name, tgt.Pos()); err != nil {
				return err
			}
			if sc.has(tgt.Name) {
				fmt.Fprintf(sb, "%s%s = %s;\n", indentStr(indent), tgt.Name, value)
			} else {
				sc.add(tgt.Name)
				fmt.Fprintf(sb, "%svar %s = %s;\n", indentStr(indent), tgt.Name, value)
			}
		case *lang.AttributeExpr, *lang.IndexExpr:
			ts, err := t.exprString(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(sb, "%s%s = %s;\n", indentStr(indent), ts, value)
		case *lang.TupleLit:
			return &UnsupportedConstructError{Construct: "destructuring assignment", Pos: tgt.Pos()}
		case *lang.SliceExpr:
			return &UnsupportedConstructError{Construct: "slice assignment", Pos: tgt.Pos()}
		default:
			return &TranslationError{Detail: "assignment target must be a name, attribute, or subscript", Pos: target.Pos()}
		}
	}
	return nil
}

func (t *translator) writeIf(sb *strings.Builder, s *lang.IfStmt, indent int, sc *scope) error {
	cond, err := t.exprString(s.Cond)
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "%sif (%s) {\n", indentStr(indent), cond)
	// Branches share the enclosing function scope: the first branch to
	// assign a name carries its var, every later branch assigns bare.
	for _, stmt := range s.Then {
		if err := t.writeStmt(sb, stmt, indent+1, sc); err != nil {
			return err
		}
	}
	sb.WriteString(indentStr(indent))
	sb.WriteString("}")

	orelse := s.Else
	for len(orelse) == 1 {
		elseIf, ok := orelse[0].(*lang.IfStmt)
		if !ok {
			break
		}
		cond, err := t.exprString(elseIf.Cond)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, " else if (%s) {\n", cond)
		for _, stmt := range elseIf.Then {
			if err := t.writeStmt(sb, stmt, indent+1, sc); err != nil {
				return err
			}
		}
		sb.WriteString(indentStr(indent))
		sb.WriteString("}")
		orelse = elseIf.Else
	}

	if len(orelse) > 0 {
		sb.WriteString(" else {\n")
		for _, stmt := range orelse {
			if err := t.writeStmt(sb, stmt, indent+1, sc); err != nil {
				return err
			}
		}
		sb.WriteString(indentStr(indent))
		sb.WriteString("}")
	}
	sb.WriteString("\n")
	return nil
}

// writeFor maps iteration onto forEach over the iterable, with the loop
// variable and an index as callback parameters. This is a structural
// mapping, not a counted loop; break and continue inside the body have no
// translation under it.
func (t *translator) writeFor(sb *strings.Builder, s *lang.ForStmt, indent int, sc *scope) error {
	target, ok := s.Target.(*lang.IdentExpr)
	if !ok {
		return &UnsupportedConstructError{Construct: "destructuring loop target", Pos: s.Target.Pos()}
	}
	if err := checkName(target.Name, target.Pos()); err != nil {
		return err
	}
	iter, err := t.exprString(s.Iter)
	if err != nil {
		return err
	}
	fmt.Fprintf(sb, "%s%s.forEach((%s, index) => {\n", indentStr(indent), iter, target.Name)
	if err := t.writeBody(sb, s.Body, indent+1, sc, loopCallback); err != nil {
		return err
	}
	sb.WriteString(indentStr(indent))
	sb.WriteString("});\n")
	return nil
}

// exprString renders an expression with every operator fully parenthesized.
// The output never depends on JavaScript precedence: re-parsing it yields
// the same tree shape the input had.
func (t *translator) exprString(expr lang.Expr) (string, error) {
	switch e := expr.(type) {
	case *lang.IdentExpr:
		if err := checkName(e.Name, e.Pos()); err != nil {
			return "", err
		}
		return e.Name, nil
	case *lang.NumberLit:
		return e.Value, nil
	case *lang.StringLit:
		return strconv.Quote(e.Value), nil
	case *lang.BoolLit:
		if e.Value {
			return literalWords["True"], nil
		}
		return literalWords["False"], nil
	case *lang.NoneLit:
		return literalWords["None"], nil
	case *lang.BinaryExpr:
		op, ok := binaryOps[e.Op]
		if !ok {
			return "", &UnsupportedConstructError{Construct: fmt.Sprintf("operator %s", e.Op), Pos: e.Pos()}
		}
		left, err := t.exprString(e.Left)
		if err != nil {
			return "", err
		}
		right, err := t.exprString(e.Right)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, op, right), nil
	case *lang.UnaryExpr:
		op, ok := unaryOps[e.Op]
		if !ok {
			return "", &UnsupportedConstructError{Construct: fmt.Sprintf("operator %s", e.Op), Pos: e.Pos()}
		}
		operand, err := t.exprString(e.Operand)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s%s)", op, operand), nil
	case *lang.BoolOpExpr:
		op, ok := boolOps[e.Op]
		if !ok {
			return "", &UnsupportedConstructError{Construct: fmt.Sprintf("operator %s", e.Op), Pos: e.Pos()}
		}
		parts := make([]string, len(e.Values))
		for i, v := range e.Values {
			s, err := t.exprString(v)
			if err != nil {
				return "", err
			}
			parts[i] = s
		}
		return "(" + strings.Join(parts, " "+op+" ") + ")", nil
	case *lang.CompareExpr:
		var b strings.Builder
		left, err := t.exprString(e.Left)
		if err != nil {
			return "", err
		}
		b.WriteString("(")
		b.WriteString(left)
		for i, opTok := range e.Ops {
			op, ok := compareOps[opTok]
			if !ok {
				return "", &UnsupportedConstructError{Construct: fmt.Sprintf("operator %s", opTok), Pos: e.Pos()}
			}
			comp, err := t.exprString(e.Comparators[i])
			if err != nil {
				return "", err
			}
			b.WriteString(" ")
			b.WriteString(op)
			b.WriteString(" ")
			b.WriteString(comp)
		}
		b.WriteString(")")
		return b.String(), nil
	case *lang.CallExpr:
		callee, err := t.exprString(e.Callee)
		if err != nil {
			return "", err
		}
		args := make([]string, len(e.Args))
		for i, a := range e.Args {
			s, err := t.exprString(a)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
	case *lang.AttributeExpr:
		// Attribute names are property accesses in the output, where
		// reserved words are legal, so only the object is checked.
		object, err := t.exprString(e.Object)
		if err != nil {
			return "", err
		}
		return object + "." + e.Name, nil
	case *lang.IndexExpr:
		object, err := t.exprString(e.Object)
		if err != nil {
			return "", err
		}
		index, err := t.exprString(e.Index)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", object, index), nil
	case *lang.SliceExpr:
		return "", &UnsupportedConstructError{Construct: "slicing", Pos: e.Pos()}
	case *lang.CondExpr:
		cond, err := t.exprString(e.Cond)
		if err != nil {
			return "", err
		}
		then, err := t.exprString(e.Then)
		if err != nil {
			return "", err
		}
		orelse, err := t.exprString(e.Orelse)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s) ? (%s) : (%s)", cond, then, orelse), nil
	case *lang.LambdaExpr:
		if e.Body == nil {
			return "", &TranslationError{Detail: "lambda requires an expression body", Pos: e.Pos()}
		}
		params := make([]string, len(e.Params))
		for i, p := range e.Params {
			if err := checkName(p.Name, p.Pos); err != nil {
				return "", err
			}
			params[i] = p.Name
		}
		body, err := t.exprString(e.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("((%s) => (%s))", strings.Join(params, ", "), body), nil
	case *lang.ListLit:
		elems := make([]string, len(e.Elems))
		for i, el := range e.Elems {
			s, err := t.exprString(el)
			if err != nil {
				return "", err
			}
			elems[i] = s
		}
		return "[" + strings.Join(elems, ", ") + "]", nil
	case *lang.DictLit:
		pairs := make([]string, len(e.Keys))
		for i := range e.Keys {
			k, err := t.exprString(e.Keys[i])
			if err != nil {
				return "", err
			}
			v, err := t.exprString(e.Values[i])
			if err != nil {
				return "", err
			}
			pairs[i] = k + ": " + v
		}
		return "{" + strings.Join(pairs, ", ") + "}", nil
	case *lang.TupleLit:
		return "", &UnsupportedConstructError{Construct: "tuple", Pos: e.Pos()}
	default:
		return "", &UnsupportedConstructError{Construct: nodeKind(expr), Pos: expr.Pos()}
	}
}

func nodeKind(n interface{ Pos() lang.Position }) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*lang.")
}

func indentStr(n int) string {
	return strings.Repeat("  ", n)
}
