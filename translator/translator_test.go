package translator

import (
	"errors"
	"strings"
	"testing"

	"pyjs/lang"
)

func parseFn(t *testing.T, src string) *lang.FunctionDef {
	t.Helper()
	mod, diags := lang.Parse(src)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	if len(mod.Body) == 0 {
		t.Fatalf("no statements parsed from %q", src)
	}
	fn, ok := mod.Body[0].(*lang.FunctionDef)
	if !ok {
		t.Fatalf("expected a function definition, got %T", mod.Body[0])
	}
	return fn
}

func transpile(t *testing.T, src string) string {
	t.Helper()
	code, err := Transpile(parseFn(t, src))
	if err != nil {
		t.Fatalf("transpile failed: %v", err)
	}
	return code
}

func transpileErr(t *testing.T, src string) error {
	t.Helper()
	code, err := Transpile(parseFn(t, src))
	if err == nil {
		t.Fatalf("expected an error, got output:\n%s", code)
	}
	if code != "" {
		t.Fatalf("expected no output on error, got:\n%s", code)
	}
	return err
}

func TestEmptyFunction(t *testing.T) {
	got := transpile(t, "def f():\n    pass\n")
	want := "function f() {\n}\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestSimpleFunction(t *testing.T) {
	src := `def sum_and_check_if_42(a, b):
    c = a + b
    if c == 42:
        return True
    else:
        return False
`
	want := `function sum_and_check_if_42(a, b) {
  var c = (a + b);
  if ((c === 42)) {
    return true;
  } else {
    return false;
  }
}
`
	got := transpile(t, src)
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestDeclarationEmittedOnce(t *testing.T) {
	got := transpile(t, "def f():\n    a = 1\n    a = 2\n")
	want := "function f() {\n  var a = 1;\n  a = 2;\n}\n"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestParametersArePredeclared(t *testing.T) {
	got := transpile(t, "def f(x):\n    x = 5\n")
	if strings.Contains(got, "var x") {
		t.Fatalf("parameter must not be redeclared:\n%s", got)
	}
	if !strings.Contains(got, "  x = 5;") {
		t.Fatalf("expected bare assignment to parameter:\n%s", got)
	}
}

func TestChainedAssignmentFlattens(t *testing.T) {
	got := transpile(t, "def f():\n    a = b = g()\n    b = 2\n")
	want := "function f() {\n  var a = g();\n  var b = g();\n  b = 2;\n}\n"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestBranchHoisting(t *testing.T) {
	src := `def f(cond):
    if cond:
        a = 1
    else:
        a = 2
`
	got := transpile(t, src)
	if strings.Count(got, "var a") != 1 {
		t.Fatalf("expected exactly one declaration of a:\n%s", got)
	}
	if !strings.Contains(got, "var a = 1;") {
		t.Fatalf("first rendered branch must carry the declaration:\n%s", got)
	}
	if !strings.Contains(got, "    a = 2;") {
		t.Fatalf("second branch must assign bare:\n%s", got)
	}
}

func TestNestedFunctionGetsFreshScope(t *testing.T) {
	src := `def outer():
    a = 1
    def inner():
        a = 2
`
	got := transpile(t, src)
	if strings.Count(got, "var a") != 2 {
		t.Fatalf("nested function must redeclare independently:\n%s", got)
	}
}

func TestMemberAssignmentNeverDeclares(t *testing.T) {
	got := transpile(t, "def f(o):\n    o.x = 1\n    o[0] = 2\n")
	if strings.Contains(got, "var") {
		t.Fatalf("member and subscript targets must not declare:\n%s", got)
	}
}

func TestForLoopBecomesForEach(t *testing.T) {
	src := "def f(g):\n    for x in [1, 2, 3]:\n        g(x)\n"
	want := `function f(g) {
  [1, 2, 3].forEach((x, index) => {
    g(x);
  });
}
`
	got := transpile(t, src)
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestBreakInForLoopFails(t *testing.T) {
	err := transpileErr(t, "def f(xs):\n    for x in xs:\n        break\n")
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestContinueInForLoopFails(t *testing.T) {
	err := transpileErr(t, "def f(xs):\n    for x in xs:\n        continue\n")
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestBreakInWhileLoopTranslates(t *testing.T) {
	src := `def countdown(n):
    while n > 0:
        n -= 1
        if n == 3:
            break
`
	got := transpile(t, src)
	if !strings.Contains(got, "while ((n > 0)) {") {
		t.Fatalf("expected while header:\n%s", got)
	}
	if !strings.Contains(got, "n -= 1;") {
		t.Fatalf("expected augmented assignment:\n%s", got)
	}
	if !strings.Contains(got, "break;") {
		t.Fatalf("expected break statement:\n%s", got)
	}
}

func TestBreakInForInsideWhileFails(t *testing.T) {
	src := `def f(xs):
    while True:
        for x in xs:
            break
`
	err := transpileErr(t, src)
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestFullParenthesization(t *testing.T) {
	got := transpile(t, "def f(a, b, c):\n    x = a + b * c\n")
	if !strings.Contains(got, "var x = (a + (b * c));") {
		t.Fatalf("expected fully parenthesized expression:\n%s", got)
	}
}

func TestBooleanAndUnaryOperators(t *testing.T) {
	got := transpile(t, "def f(a, b, c):\n    x = a and b or not c\n")
	if !strings.Contains(got, "var x = ((a && b) || (!c));") {
		t.Fatalf("unexpected boolean rendering:\n%s", got)
	}
}

func TestCallChainOrderPreserved(t *testing.T) {
	got := transpile(t, "def f(obj):\n    obj.a().b(1).c()\n")
	ia := strings.Index(got, ".a()")
	ib := strings.Index(got, ".b(1)")
	ic := strings.Index(got, ".c()")
	if ia < 0 || ib < 0 || ic < 0 || !(ia < ib && ib < ic) {
		t.Fatalf("call chain reordered:\n%s", got)
	}
}

func TestRenderingIsIdempotent(t *testing.T) {
	fn := parseFn(t, "def f(a, b):\n    x = a * b + 1\n    return x\n")
	first, err := Transpile(fn)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := Transpile(fn)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first != second {
		t.Fatalf("renders differ:\n%s\nvs:\n%s", first, second)
	}
}

func TestRaiseAlwaysWraps(t *testing.T) {
	got := transpile(t, "def f(err):\n    raise err\n")
	if !strings.Contains(got, "throw new Error(err);") {
		t.Fatalf("expected wrapped throw:\n%s", got)
	}
	got = transpile(t, "def g():\n    raise Exception(\"boom\")\n")
	if !strings.Contains(got, `throw new Error(Exception("boom"));`) {
		t.Fatalf("expected wrapped throw of constructed value:\n%s", got)
	}
}

func TestBareRaiseFails(t *testing.T) {
	err := transpileErr(t, "def f():\n    raise\n")
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestReservedWordTarget(t *testing.T) {
	err := transpileErr(t, "def f():\n    new = 1\n")
	var rw *ReservedWordError
	if !errors.As(err, &rw) {
		t.Fatalf("expected ReservedWordError, got %T: %v", err, err)
	}
	if rw.Name != "new" {
		t.Fatalf("expected offending name new, got %q", rw.Name)
	}
}

func TestReservedWordFunctionName(t *testing.T) {
	err := transpileErr(t, "def typeof():\n    pass\n")
	var rw *ReservedWordError
	if !errors.As(err, &rw) {
		t.Fatalf("expected ReservedWordError, got %T: %v", err, err)
	}
}

func TestSlicingFails(t *testing.T) {
	err := transpileErr(t, "def f(xs):\n    y = xs[1:2]\n")
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
	if uc.Construct != "slicing" {
		t.Fatalf("expected slicing, got %q", uc.Construct)
	}
}

func TestTupleUnpackingFails(t *testing.T) {
	err := transpileErr(t, "def f(pair):\n    a, b = pair\n")
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestUnmappedOperatorsFail(t *testing.T) {
	for _, src := range []string{
		"def f(a, b):\n    x = a ** b\n",
		"def f(a, b):\n    x = a // b\n",
		"def f(a, b):\n    x = a in b\n",
		"def f(a, b):\n    x = a is b\n",
	} {
		err := transpileErr(t, src)
		var uc *UnsupportedConstructError
		if !errors.As(err, &uc) {
			t.Fatalf("expected UnsupportedConstructError for %q, got %T: %v", src, err, err)
		}
	}
}

func TestLambdaRendering(t *testing.T) {
	got := transpile(t, "def f(xs):\n    return xs.map(lambda d: d.r)\n")
	if !strings.Contains(got, "xs.map(((d) => (d.r)))") {
		t.Fatalf("unexpected lambda rendering:\n%s", got)
	}
}

func TestLambdaWithoutBodyFails(t *testing.T) {
	fn := &lang.FunctionDef{
		Name: "f",
		Body: []lang.Stmt{
			&lang.ExprStmt{Expr: &lang.LambdaExpr{}},
		},
	}
	_, err := Transpile(fn)
	var te *TranslationError
	if !errors.As(err, &te) {
		t.Fatalf("expected TranslationError, got %T: %v", err, err)
	}
}

func TestConditionalExpression(t *testing.T) {
	got := transpile(t, "def f(c):\n    x = 1 if c else 2\n")
	if !strings.Contains(got, "var x = (c) ? (1) : (2);") {
		t.Fatalf("unexpected conditional rendering:\n%s", got)
	}
}

func TestCollectionLiterals(t *testing.T) {
	got := transpile(t, "def f(node):\n    d = {\"name\": node.name, \"value\": node.size}\n    xs = [1, 2, 3]\n")
	if !strings.Contains(got, `var d = {"name": node.name, "value": node.size};`) {
		t.Fatalf("unexpected dict rendering:\n%s", got)
	}
	if !strings.Contains(got, "var xs = [1, 2, 3];") {
		t.Fatalf("unexpected list rendering:\n%s", got)
	}
}

func TestStringRequoting(t *testing.T) {
	got := transpile(t, "def f():\n    s = 'hi \"there\"'\n")
	if !strings.Contains(got, `var s = "hi \"there\"";`) {
		t.Fatalf("unexpected string requoting:\n%s", got)
	}
}

func TestNonASCIIStringLiteral(t *testing.T) {
	got := transpile(t, "def f():\n    s = \"héllo\"\n")
	if !strings.Contains(got, `var s = "héllo";`) {
		t.Fatalf("non-ASCII string corrupted:\n%s", got)
	}
}

func TestLoopBodyDeclarationStaysInCallback(t *testing.T) {
	src := `def f(xs):
    for x in xs:
        y = 1
    y = 2
`
	want := `function f(xs) {
  xs.forEach((x, index) => {
    var y = 1;
  });
  y = 2;
}
`
	got := transpile(t, src)
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestElifChainRendering(t *testing.T) {
	src := `def f(a, b):
    if a:
        x = 1
    elif b:
        x = 2
    else:
        x = 3
`
	got := transpile(t, src)
	if !strings.Contains(got, "} else if (b) {") {
		t.Fatalf("expected else-if chain:\n%s", got)
	}
	if strings.Count(got, "var x") != 1 {
		t.Fatalf("hoisting must declare x once across branches:\n%s", got)
	}
}

func TestDeleteStatement(t *testing.T) {
	got := transpile(t, "def f(obj):\n    del obj.cache\n")
	if !strings.Contains(got, "delete obj.cache;") {
		t.Fatalf("unexpected delete rendering:\n%s", got)
	}
}

func TestDocstringRendersAsExpression(t *testing.T) {
	got := transpile(t, "def f():\n    'does a thing'\n")
	if !strings.Contains(got, `"does a thing";`) {
		t.Fatalf("unexpected docstring rendering:\n%s", got)
	}
}

func TestChainedComparisonSingleGroup(t *testing.T) {
	got := transpile(t, "def f(a, b, c):\n    return a < b <= c\n")
	if !strings.Contains(got, "return (a < b <= c);") {
		t.Fatalf("unexpected comparison rendering:\n%s", got)
	}
}

func TestTranspileModule(t *testing.T) {
	src := "def a():\n    pass\n\ndef b():\n    pass\n"
	mod, diags := lang.Parse(src)
	if len(diags) > 0 {
		t.Fatalf("unexpected diagnostics: %+v", diags)
	}
	code, err := TranspileModule(mod)
	if err != nil {
		t.Fatalf("module transpile failed: %v", err)
	}
	want := "function a() {\n}\n\nfunction b() {\n}\n"
	if code != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, code)
	}
}

func TestTopLevelStatementRejected(t *testing.T) {
	mod, _ := lang.Parse("x = 1\n")
	_, err := TranspileModule(mod)
	var uc *UnsupportedConstructError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnsupportedConstructError, got %T: %v", err, err)
	}
}

func TestNestedFunctionsEndToEnd(t *testing.T) {
	src := `def flatten(root):
    nodes = []

    def recurse(node):
        if node.children:
            node.children.forEach(recurse)
        else:
            nodes.push({"name": node.name, "value": node.size})

    recurse(root)
    return {"children": nodes}
`
	want := `function flatten(root) {
  var nodes = [];
  function recurse(node) {
    if (node.children) {
      node.children.forEach(recurse);
    } else {
      nodes.push({"name": node.name, "value": node.size});
    }
  }
  recurse(root);
  return {"children": nodes};
}
`
	got := transpile(t, src)
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}
