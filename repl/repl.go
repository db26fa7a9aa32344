package repl

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/pipeline"
)

const prompt = "myn> "

const helpText = `REPL Commands:
  help                    Show this help
  exit/quit               Exit REPL
  context <type>          Change context (dev|prod|test)
  capabilities            Show current capabilities
  globals                 Show global variables
`

// Run reads lines until end of input or an exit command.
type Run func(ctx context.Context) error

func (Module) Run(
	newPrompter NewPrompter,
	p *pipeline.Pipeline,
	stdout pipeline.Stdout,
	logger logs.Logger,
) Run {
	return func(ctx context.Context) error {
		prompter := newPrompter()
		defer prompter.Close()

		fmt.Fprint(stdout, "Myndra Interactive REPL\nType 'exit' to quit, 'help' for commands\n\n")

		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := prompter.Prompt(prompt)
			if err != nil {
				if isEnd(err) {
					return nil
				}
				return err
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			prompter.AppendHistory(line)

			if quit := handle(ctx, p, stdout, line); quit {
				logger.Debug("repl exit")
				return nil
			}
		}
	}
}

// handle processes one line and reports whether the session ends.
func handle(ctx context.Context, p *pipeline.Pipeline, w io.Writer, line string) bool {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {

	case "exit", "quit":
		return true

	case "help":
		fmt.Fprint(w, helpText)
		return false

	case "context":
		if arg == "" {
			fmt.Fprintln(w, "Failed to change context")
			return false
		}
		p.SetContext(arg)
		fmt.Fprintf(w, "Context changed to: %s\n", arg)
		return false

	case "capabilities":
		caps := p.Options().Capabilities
		if len(caps) == 0 {
			fmt.Fprintln(w, "(none)")
			return false
		}
		for _, c := range caps {
			fmt.Fprintln(w, c)
		}
		return false

	case "globals":
		globals := p.Interpreter().Globals()
		for _, name := range sortedKeys(globals) {
			v := globals[name]
			fmt.Fprintf(w, "%s: %s = %s\n", name, v.TypeName(), v)
		}
		return false

	}

	program, err := p.Compile(ctx, "repl", line)
	if err != nil {
		p.Report(w, err)
		return false
	}
	if err := p.Execute(ctx, program); err != nil {
		p.Report(w, err)
		return false
	}
	if len(program.Stmts) > 0 {
		if _, ok := program.Stmts[len(program.Stmts)-1].(*ast.ExprStmt); ok {
			if v := p.Interpreter().Last(); v != nil {
				fmt.Fprintf(w, "=> %s\n", v)
			}
		}
	}
	return false
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
