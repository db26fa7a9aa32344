package pipeline

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/reusee/myndra/ast"
	"github.com/reusee/myndra/interp"
	"github.com/reusee/myndra/lexer"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/options"
	"github.com/reusee/myndra/parser"
)

// Pipeline runs source through lexing, parsing and evaluation.
// It owns one Interpreter, so globals persist across runs.
type Pipeline struct {
	logger  logs.Logger
	newSpan logs.NewSpan
	options options.Options
	interp  *interp.Interpreter
	source  string
	hooks   Hooks
}

// Hooks observe compilation. Nil hooks are skipped.
type Hooks struct {
	// Tokens sees the token stream even when lexing failed
	Tokens  func([]lexer.Token) error
	Program func(*ast.Program) error
}

func (Module) Pipeline(
	logger logs.Logger,
	newSpan logs.NewSpan,
	opts options.Options,
	stdout Stdout,
	reader *bufio.Reader,
) *Pipeline {
	p := &Pipeline{
		logger:  logger,
		newSpan: newSpan,
		options: opts,
		interp: interp.New(
			stdout,
			reader,
			interp.WithLogger(logger.With("component", "interp")),
		),
	}
	p.acknowledge()
	return p
}

func (p *Pipeline) acknowledge() {
	p.logger.Info("Myndra Compiler initialized", "context", p.options.Context)
	if p.options.LiveReload {
		p.logger.Info("✓ Live code reloading enabled")
	}
	if p.options.Reactive {
		p.logger.Info("✓ Reactive programming enabled")
	}
	if p.options.Temporal {
		p.logger.Info("✓ Temporal programming enabled")
	}
	if p.options.DID {
		p.logger.Info("✓ Decentralized identity enabled")
	}
	if len(p.options.Capabilities) > 0 {
		p.logger.Info("capabilities granted", "capabilities", p.options.Capabilities)
	}
}

func (p *Pipeline) Interpreter() *interp.Interpreter {
	return p.interp
}

func (p *Pipeline) Options() options.Options {
	return p.options
}

func (p *Pipeline) SetHooks(hooks Hooks) {
	p.hooks = hooks
}

// SetContext changes the execution context label used for diagnostics.
func (p *Pipeline) SetContext(name string) {
	p.options.Context = name
	p.logger.Info("context changed", "context", name)
}

// Compile lexes and parses src. Lexing errors stop before parsing.
func (p *Pipeline) Compile(ctx context.Context, name string, src string) (*ast.Program, error) {
	p.source = src
	p.logger.DebugContext(ctx, "Compiling source code...", "name", name)

	tokens, lexErrs := lexer.Tokenize(src)
	if p.hooks.Tokens != nil {
		if err := p.hooks.Tokens(tokens); err != nil {
			return nil, err
		}
	}
	if len(lexErrs) > 0 {
		return nil, &CompileError{
			Name:     name,
			Stage:    StageLexer,
			Messages: lexErrs,
		}
	}
	p.logger.DebugContext(ctx, "✓ Lexical analysis completed", "tokens", len(tokens))

	program, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		return nil, &CompileError{
			Name:     name,
			Stage:    StageParser,
			Messages: parseErrs,
		}
	}
	p.logger.DebugContext(ctx, "✓ Parsing completed", "statements", len(program.Stmts))

	if p.options.Context == "dev" {
		for _, stmt := range program.Stmts {
			p.logger.DebugContext(ctx, "ast", "stmt", stmt.String())
		}
	}
	if p.hooks.Program != nil {
		if err := p.hooks.Program(program); err != nil {
			return nil, err
		}
	}

	return program, nil
}

func (p *Pipeline) Execute(ctx context.Context, program *ast.Program) error {
	if err := p.interp.Run(ctx, program); err != nil {
		return err
	}
	p.logger.DebugContext(ctx, "✓ Execution completed")
	return nil
}

// Run compiles and executes src within a new span.
func (p *Pipeline) Run(ctx context.Context, name string, src string) error {
	ctx, _ = p.newSpan(ctx, "")
	return p.run(ctx, name, src)
}

func (p *Pipeline) run(ctx context.Context, name string, src string) error {
	program, err := p.Compile(ctx, name, src)
	if err != nil {
		return err
	}
	return p.Execute(ctx, program)
}

func (p *Pipeline) RunFile(ctx context.Context, path string) error {
	ctx, _ = p.newSpan(ctx, "")
	src, err := p.readFile(ctx, path)
	if err != nil {
		return err
	}
	return p.run(ctx, path, src)
}

// CheckFile lexes and parses a file without executing it.
func (p *Pipeline) CheckFile(ctx context.Context, path string) error {
	ctx, _ = p.newSpan(ctx, "")
	src, err := p.readFile(ctx, path)
	if err != nil {
		return err
	}
	_, err = p.Compile(ctx, path, src)
	return err
}

func (p *Pipeline) readFile(ctx context.Context, path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		p.logger.ErrorContext(ctx, "read source file", "path", path, "error", err)
		return "", logs.WrapSpan(ctx, wrap(&FileError{
			Path: path,
			Err:  err,
		}))
	}
	return string(content), nil
}

// Snippet renders the source line of a runtime error from the last compiled source.
func (p *Pipeline) Snippet(err error) string {
	var runtimeErr *interp.RuntimeError
	if !errors.As(err, &runtimeErr) {
		return ""
	}
	return runtimeErr.Snippet(p.source)
}
