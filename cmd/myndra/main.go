package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/cmds"
	"github.com/reusee/myndra/configs"
	"github.com/reusee/myndra/debugs"
	"github.com/reusee/myndra/lexer"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/modes"
	"github.com/reusee/myndra/pipeline"
	"github.com/reusee/myndra/repl"
)

func main() {
	cmds.Execute(os.Args[1:])

	if inputFile == "" && !*interactive {
		fmt.Fprintln(os.Stderr, "Error: No input file specified")
		cmds.GlobalExecutor.FprintUsage(os.Stderr)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var mode any = modes.ForDevelopment()
	if *production {
		mode = modes.ForProduction()
	}
	scope := dscope.New(
		new(Module),
		mode,
	)

	if err := configError(scope); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	code := 0
	scope.Call(func(
		p *pipeline.Pipeline,
		runREPL repl.Run,
		tap debugs.Tap,
		logger logs.Logger,
	) {
		if inputFile != "" {
			if err := runFile(ctx, p, os.Stdout, inputFile, runOptions{
				check:      *checkOnly,
				dumpAST:    *dumpAST,
				dumpTokens: *dumpTokens,
			}); err != nil {
				p.Report(os.Stderr, err)
				code = 1
				return
			}
			if *tapGlobals && !*checkOnly {
				tap(ctx, inputFile, debugs.InterpreterGlobals(p.Interpreter()))
			}
		}

		if *interactive {
			p.SetHooks(pipeline.Hooks{})
			if err := runREPL(ctx); err != nil {
				logger.Error("repl", "error", err)
				code = 1
			}
		}
	})

	stop()
	os.Exit(code)
}

// configError reports a config file that cannot be loaded, before anything depends on it.
func configError(scope dscope.Scope) (err error) {
	scope.Call(func(
		loader configs.Loader,
	) {
		err = loader.Err()
	})
	return
}

type runOptions struct {
	check      bool
	dumpAST    bool
	dumpTokens bool
}

func runFile(ctx context.Context, p *pipeline.Pipeline, w io.Writer, path string, options runOptions) error {
	var hooks pipeline.Hooks
	if options.dumpTokens {
		hooks.Tokens = func(tokens []lexer.Token) error {
			return writeTokens(w, tokens)
		}
	}
	if options.dumpAST {
		hooks.Program = func(program *ast.Program) error {
			for _, stmt := range program.Stmts {
				if _, err := fmt.Fprintln(w, stmt.String()); err != nil {
					return err
				}
			}
			return nil
		}
	}
	p.SetHooks(hooks)

	if options.check {
		if err := p.CheckFile(ctx, path); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w, "Compilation successful!")
		return err
	}
	return p.RunFile(ctx, path)
}
