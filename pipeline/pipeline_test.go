package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/reusee/dscope"
	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/configs"
	"github.com/reusee/myndra/interp"
	"github.com/reusee/myndra/lexer"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/modes"
	"github.com/reusee/myndra/options"
)

type testEnv struct {
	stdout *bytes.Buffer
	log    *bytes.Buffer
	stdin  *strings.Reader
}

func testScope(t *testing.T, input string, defs ...any) (dscope.Scope, *testEnv) {
	env := &testEnv{
		stdout: new(bytes.Buffer),
		log:    new(bytes.Buffer),
		stdin:  strings.NewReader(input),
	}
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() Stdout {
			return env.stdout
		},
		func() Stdin {
			return env.stdin
		},
		func() logs.Writer {
			return env.log
		},
		func() options.Flags {
			return options.Flags{}
		},
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return scope, env
}

func TestScenario(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		if err := p.Run(context.Background(), "scenario", "let x = 2; let y = 3; print(x + y);"); err != nil {
			t.Fatal(err)
		}
		if env.stdout.String() != "5\n" {
			t.Fatalf("got %q", env.stdout.String())
		}
	})
}

func TestAcknowledgments(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		out := env.log.String()
		for _, expected := range []string{
			"Myndra Compiler initialized",
			"context=test",
			"Live code reloading enabled",
			"Reactive programming enabled",
			"Temporal programming enabled",
			"Decentralized identity enabled",
		} {
			if !strings.Contains(out, expected) {
				t.Fatalf("missing %q in %s", expected, out)
			}
		}
		if p.Options().Context != "test" {
			t.Fatalf("got %v", p.Options().Context)
		}
	})
}

func TestDisabledFeaturesNotAcknowledged(t *testing.T) {
	scope, env := testScope(t, "", func() options.Flags {
		return options.Flags{
			NoReactive: true,
			NoDID:      true,
		}
	})
	scope.Call(func(
		_ *Pipeline,
	) {
		out := env.log.String()
		if strings.Contains(out, "Reactive programming") {
			t.Fatalf("got %s", out)
		}
		if strings.Contains(out, "Decentralized identity") {
			t.Fatalf("got %s", out)
		}
		if !strings.Contains(out, "Temporal programming enabled") {
			t.Fatalf("got %s", out)
		}
	})
}

func TestLexerErrorStopsPipeline(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		err := p.Run(context.Background(), "bad", `print(1); let s = "abc`)
		var compileErr *CompileError
		if !errors.As(err, &compileErr) {
			t.Fatalf("got %v", err)
		}
		if compileErr.Stage != StageLexer {
			t.Fatalf("got %v", compileErr.Stage)
		}
		if !strings.HasPrefix(err.Error(), "Lexer error: ") {
			t.Fatalf("got %v", err)
		}
		// nothing was executed
		if env.stdout.Len() != 0 {
			t.Fatalf("got %q", env.stdout.String())
		}
	})
}

func TestParseErrors(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		err := p.Run(context.Background(), "bad", heredoc.Doc(`
			print(1);
			let = 1;
			let y 2;
		`))
		var compileErr *CompileError
		if !errors.As(err, &compileErr) {
			t.Fatalf("got %v", err)
		}
		if compileErr.Stage != StageParser {
			t.Fatalf("got %v", compileErr.Stage)
		}
		if len(compileErr.Messages) != 2 {
			t.Fatalf("got %v", compileErr.Messages)
		}
		lines := strings.Split(err.Error(), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %v", lines)
		}
		for _, line := range lines {
			if !strings.HasPrefix(line, "Parse error: Line ") {
				t.Fatalf("got %v", line)
			}
		}
		if env.stdout.Len() != 0 {
			t.Fatalf("got %q", env.stdout.String())
		}
	})
}

func TestRuntimeErrorSnippet(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		err := p.Run(context.Background(), "div", heredoc.Doc(`
			print("before");
			let z = 1 / 0;
			print("after");
		`))
		if !errors.Is(err, interp.ErrDivisionByZero) {
			t.Fatalf("got %v", err)
		}
		if err.Error() != "Line 2, Column 9: Division by zero" {
			t.Fatalf("got %v", err)
		}
		snippet := p.Snippet(err)
		if snippet != "let z = 1 / 0;\n        ^\n" {
			t.Fatalf("got %q", snippet)
		}
		if env.stdout.String() != "before\n" {
			t.Fatalf("got %q", env.stdout.String())
		}
		if p.Snippet(errors.New("foo")) != "" {
			t.Fatal()
		}
	})
}

func TestSessionPersists(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		ctx := context.Background()
		for _, line := range []string{
			"let x = 40;",
			"x = x + 2;",
			"print(x);",
			"fn f() { return 1; }",
		} {
			if err := p.Run(ctx, "repl", line); err != nil {
				t.Fatal(err)
			}
		}
		if env.stdout.String() != "42\n" {
			t.Fatalf("got %q", env.stdout.String())
		}
		if p.Interpreter().Globals()["x"] != interp.Int(42) {
			t.Fatalf("got %v", p.Interpreter().Globals())
		}
		if !slices.Equal(p.Interpreter().Functions(), []string{"f"}) {
			t.Fatalf("got %v", p.Interpreter().Functions())
		}
	})
}

func TestSetContext(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		p.SetContext("prod")
		if p.Options().Context != "prod" {
			t.Fatalf("got %v", p.Options().Context)
		}
		if !strings.Contains(env.log.String(), "context changed") {
			t.Fatalf("got %s", env.log.String())
		}
	})
}

func TestInput(t *testing.T) {
	scope, env := testScope(t, "Ada\n")
	scope.Call(func(
		p *Pipeline,
	) {
		if err := p.Run(context.Background(), "input", `let name = input("name? "); print("hi " + name);`); err != nil {
			t.Fatal(err)
		}
		if env.stdout.String() != "name? hi Ada\n" {
			t.Fatalf("got %q", env.stdout.String())
		}
	})
}

func TestRunFile(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		dir := t.TempDir()
		path := filepath.Join(dir, "main.myn")
		if err := os.WriteFile(path, []byte("print(length(\"hello\"));\n"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := p.RunFile(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if env.stdout.String() != "5\n" {
			t.Fatalf("got %q", env.stdout.String())
		}

		err := p.RunFile(context.Background(), filepath.Join(dir, "missing.myn"))
		var fileErr *FileError
		if !errors.As(err, &fileErr) {
			t.Fatalf("got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Fatalf("got %v", err)
		}
		// stack trace and span are attached
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestCheckFile(t *testing.T) {
	scope, env := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		path := filepath.Join(t.TempDir(), "main.myn")
		if err := os.WriteFile(path, []byte("let x = 1 / 0; print(x);"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := p.CheckFile(context.Background(), path); err != nil {
			t.Fatal(err)
		}
		if env.stdout.Len() != 0 {
			t.Fatalf("got %q", env.stdout.String())
		}
		if len(p.Interpreter().Globals()) != 0 {
			t.Fatalf("got %v", p.Interpreter().Globals())
		}
	})
}

func TestHooks(t *testing.T) {
	scope, _ := testScope(t, "")
	scope.Call(func(
		p *Pipeline,
	) {
		var numTokens, numStmts int
		p.SetHooks(Hooks{
			Tokens: func(tokens []lexer.Token) error {
				numTokens = len(tokens)
				return nil
			},
			Program: func(program *ast.Program) error {
				numStmts = len(program.Stmts)
				return nil
			},
		})
		if err := p.Run(context.Background(), "hooks", "let x = 2; let y = 3; print(x + y);"); err != nil {
			t.Fatal(err)
		}
		if numTokens != 18 || numStmts != 3 {
			t.Fatalf("got %d %d", numTokens, numStmts)
		}

		// a failing hook stops the run
		stop := errors.New("stop")
		p.SetHooks(Hooks{
			Program: func(*ast.Program) error {
				return stop
			},
		})
		if err := p.Run(context.Background(), "hooks", "let z = 1;"); !errors.Is(err, stop) {
			t.Fatalf("got %v", err)
		}
		if _, ok := p.Interpreter().Globals()["z"]; ok {
			t.Fatal()
		}
	})
}

