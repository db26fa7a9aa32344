package parser

import (
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/lexer"
)

func parse(t *testing.T, src string) (*ast.Program, []string) {
	t.Helper()
	tokens, errs := lexer.Tokenize(src)
	if len(errs) > 0 {
		t.Fatalf("lex %q: %v", src, errs)
	}
	return Parse(tokens)
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	program, errs := parse(t, src)
	if len(errs) > 0 {
		t.Fatalf("parse %q: %v", src, errs)
	}
	return program
}

func TestScenario(t *testing.T) {
	program := mustParse(t, "let x = 2; let y = 3; print(x + y);")
	if len(program.Stmts) != 3 {
		t.Fatalf("got %d", len(program.Stmts))
	}
	decl, ok := program.Stmts[0].(*ast.VarDecl)
	if !ok || decl.Name != "x" {
		t.Fatalf("got %#v", program.Stmts[0])
	}
	if got := program.Stmts[2].String(); got != "print((x + y));" {
		t.Fatalf("got %s", got)
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3));"},
		{"(1 + 2) * 3;", "((1 + 2) * 3);"},
		{"1 - 2 - 3;", "((1 - 2) - 3);"},
		{"10 % 3 / 2;", "((10 % 3) / 2);"},
		{"a or b and c;", "(a or (b and c));"},
		{"a == b != c;", "((a == b) != c);"},
		{"a < b == c >= d;", "((a < b) == (c >= d));"},
		{"-x * +y;", "((-x) * (+y));"},
		{"not !ok;", "(!(!ok));"},
		{"a = b = 1;", "(a = (b = 1));"},
		{"f(1, g(2))(3);", "f(1, g(2))(3);"},
		{"a.b[0].c;", "a.b[0].c;"},
		{"true == false;", "(true == false);"},
		{"1.5;", "1.5;"},
		{`"a\tb";`, `"a\tb";`},
		{"let mut n: int = 1;", "let mut n: int = 1;"},
		{"let n;", "let n;"},
		{"return;", "return;"},
		{"return 1 + 1;", "return (1 + 1);"},
		{"{ x; }", "{\n  x;\n}"},
		{"while x < 3 { x = x + 1; }", "while (x < 3) {\n  (x = (x + 1));\n}"},
		{"if x { a; } else { b; }", "if x {\n  a;\n} else {\n  b;\n}"},
		{"if x a; else if y b;", "if x a; else if y b;"},
		{"for i in 0..10 { print(i); }", "for i in 0..10 {\n  print(i);\n}"},
		{"for i in a.n..b { }", "for i in a.n..b {\n}"},
		{
			"fn add(a: int, b: int) -> int { return a + b; }",
			"fn add(a: int, b: int) -> int {\n  return (a + b);\n}",
		},
		{"fn noop() { }", "fn noop() {\n}"},
	}
	for _, test := range tests {
		program := mustParse(t, test.src)
		if len(program.Stmts) != 1 {
			t.Fatalf("%s: got %d statements", test.src, len(program.Stmts))
		}
		if got := program.Stmts[0].String(); got != test.expected {
			t.Fatalf("%s: got %q, expected %q", test.src, got, test.expected)
		}
	}
}

func TestBooleanLiteral(t *testing.T) {
	program := mustParse(t, "let t = true; let f = false;")
	for i, expected := range []bool{true, false} {
		lit, ok := program.Stmts[i].(*ast.VarDecl).Init.(*ast.BooleanLiteral)
		if !ok {
			t.Fatalf("got %#v", program.Stmts[i])
		}
		if lit.Value != expected {
			t.Fatalf("got %v", lit.Value)
		}
	}
}

func TestContextConditional(t *testing.T) {
	tests := []struct {
		src     string
		context string
	}{
		{`log("x") if context == "dev";`, "dev"},
		{`debug if ctx == "prod";`, "prod"},
		{`let v = a.b if context == "test";`, "test"},
	}
	for _, test := range tests {
		program := mustParse(t, test.src)
		var found *ast.ContextConditional
		ast.Inspect(program, func(node ast.Node) bool {
			if cond, ok := node.(*ast.ContextConditional); ok {
				found = cond
			}
			return true
		})
		if found == nil {
			t.Fatalf("%s: no context conditional", test.src)
		}
		if found.Context != test.context {
			t.Fatalf("%s: got %s", test.src, found.Context)
		}
	}

	_, errs := parse(t, `x if context == dev;`)
	if len(errs) == 0 {
		t.Fatal("expected error")
	}
	if !strings.Contains(errs[0], "Expected context string") {
		t.Fatalf("got %v", errs)
	}
}

func TestNewlines(t *testing.T) {
	program := mustParse(t, heredoc.Doc(`

		let x = 1;

		if x {
			print(x);
		}
		else {
			print(0);
		}

	`))
	if len(program.Stmts) != 2 {
		t.Fatalf("got %d", len(program.Stmts))
	}
	stmt := program.Stmts[1].(*ast.IfStmt)
	if stmt.Else == nil {
		t.Fatal("else dropped")
	}
}

func TestPositions(t *testing.T) {
	program := mustParse(t, heredoc.Doc(`
		let x = 1;
		  print(x);
	`))
	if pos := program.Stmts[0].Position(); pos.Line != 1 || pos.Column != 1 {
		t.Fatalf("got %v", pos)
	}
	if pos := program.Stmts[1].Position(); pos.Line != 2 || pos.Column != 3 {
		t.Fatalf("got %v", pos)
	}
	call := program.Stmts[1].(*ast.ExprStmt).Expr.(*ast.CallExpr)
	if pos := call.Args[0].Position(); pos.Line != 2 || pos.Column != 9 {
		t.Fatalf("got %v", pos)
	}
}

func TestMalformedFunction(t *testing.T) {
	_, errs := parse(t, "fn invalid_syntax( { let x = return y }")
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
	for _, err := range errs {
		if !strings.HasPrefix(err, "Line 1, Column ") {
			t.Fatalf("got %q", err)
		}
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{"let = 1;", "Line 1, Column 5: Expect variable name (got '=')"},
		{"let x = 1", "Line 1, Column 10: Expect ';' after variable declaration (got '')"},
		{"1 + ;", "Line 1, Column 5: Expect expression (got ';')"},
		{"f(1, 2;", "Line 1, Column 7: Expect ')' after arguments (got ';')"},
		{"a[1;", "Line 1, Column 4: Expect ']' after array index (got ';')"},
		{"a.1;", "Line 1, Column 3: Expect property name after '.' (got '1')"},
		{"fn (a: int) {}", "Line 1, Column 4: Expect function name (got '(')"},
		{"fn f(a int) {}", "Line 1, Column 8: Expect ':' after parameter name (got 'int')"},
		{"fn f() int {}", "Line 1, Column 8: Expect '{' before function body (got 'int')"},
		{"for 1 in 0..1 {}", "Line 1, Column 5: Expect variable name after 'for' (got '1')"},
		{"for i 0..1 {}", "Line 1, Column 7: Expect 'in' after for loop variable (got '0')"},
		{"{ x;", "Line 1, Column 5: Expect '}' after block (got '')"},
	}
	for _, test := range tests {
		_, errs := parse(t, test.src)
		if len(errs) == 0 {
			t.Fatalf("%s: expected error", test.src)
		}
		if errs[0] != test.expected {
			t.Fatalf("%s: got %q", test.src, errs[0])
		}
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	program, errs := parse(t, "1 = 2; print(3);")
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	if errs[0] != "Line 1, Column 3: Invalid assignment target (got '=')" {
		t.Fatalf("got %q", errs[0])
	}
	// the statement survives with the right-hand value
	if len(program.Stmts) != 2 {
		t.Fatalf("got %d", len(program.Stmts))
	}
	if got := program.Stmts[0].String(); got != "2;" {
		t.Fatalf("got %s", got)
	}
}

func TestRecovery(t *testing.T) {
	program, errs := parse(t, heredoc.Doc(`
		let a = ;
		let b = 2;
		fn f() {
			let c = ;
			print(c);
		}
		print(b);
	`))
	if len(errs) != 2 {
		t.Fatalf("got %v", errs)
	}
	if len(program.Stmts) != 3 {
		t.Fatalf("got %d: %v", len(program.Stmts), program)
	}
	fn := program.Stmts[1].(*ast.FunctionDef)
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("got %v", fn.Body)
	}
}

func TestRecoveryInsideBlockStopsAtBrace(t *testing.T) {
	program, errs := parse(t, "if x { let y = } print(1);")
	if len(errs) != 1 {
		t.Fatalf("got %v", errs)
	}
	if len(program.Stmts) != 2 {
		t.Fatalf("got %d", len(program.Stmts))
	}
}

func TestStrayTokensTerminate(t *testing.T) {
	for _, src := range []string{
		"}",
		"} } }",
		")",
		"fn",
		"fn f(",
		"let",
		"if",
		"while {",
		"for i in",
		"{{{{",
		"else",
		"x if context ==",
	} {
		_, errs := parse(t, src)
		if len(errs) == 0 {
			t.Fatalf("%q: expected error", src)
		}
	}
}

func TestMissingEOF(t *testing.T) {
	// tokens not terminated by EOF are still handled
	tokens := []lexer.Token{
		{Kind: lexer.TokenIdentifier, Lexeme: "x", Pos: lexer.Pos{Line: 1, Column: 1}},
		{Kind: lexer.TokenSemicolon, Lexeme: ";", Pos: lexer.Pos{Line: 1, Column: 2}},
	}
	p := New(tokens)
	program := p.ParseProgram()
	if p.HasErrors() {
		t.Fatal(p.Errors())
	}
	if len(program.Stmts) != 1 {
		t.Fatalf("got %d", len(program.Stmts))
	}
}
