package interp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"

	"github.com/reusee/myndra/ast"
)

// Interpreter evaluates programs against a persistent global scope.
type Interpreter struct {
	stdout    io.Writer
	stdin     *bufio.Reader
	logger    *slog.Logger
	env       *Env
	functions map[string]*ast.FunctionDef
	last      Value
}

type Option func(*Interpreter)

func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New reads input through stdin itself when it is a *bufio.Reader, so callers can share the buffer.
func New(stdout io.Writer, stdin io.Reader, options ...Option) *Interpreter {
	reader, ok := stdin.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(stdin)
	}
	i := &Interpreter{
		stdout:    stdout,
		stdin:     reader,
		logger:    slog.New(slog.DiscardHandler),
		env:       NewEnv(),
		functions: make(map[string]*ast.FunctionDef),
	}
	for _, option := range options {
		option(i)
	}
	return i
}

func (i *Interpreter) Env() *Env {
	return i.env
}

func (i *Interpreter) Globals() map[string]Value {
	return i.env.Globals()
}

// Functions returns the sorted names of declared functions.
func (i *Interpreter) Functions() []string {
	return slices.Sorted(maps.Keys(i.functions))
}

// Last returns the value of the most recent expression statement, or nil.
func (i *Interpreter) Last() Value {
	return i.last
}

func (i *Interpreter) Run(ctx context.Context, program *ast.Program) error {
	for _, stmt := range program.Stmts {
		if err := i.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Exec(ctx context.Context, stmt ast.Stmt) error {
	switch stmt := stmt.(type) {

	case *ast.ExprStmt:
		v, err := i.Eval(stmt.Expr)
		if err != nil {
			return err
		}
		i.last = v
		return nil

	case *ast.VarDecl:
		var v Value = Int(0)
		if stmt.Init != nil {
			var err error
			v, err = i.Eval(stmt.Init)
			if err != nil {
				return err
			}
		}
		i.env.Define(stmt.Name, v)
		return nil

	case *ast.BlockStmt:
		return i.execBlock(ctx, stmt)

	case *ast.FunctionDef:
		i.functions[stmt.Name] = stmt
		i.logger.Info("function defined, not yet executable",
			"name", stmt.Name,
			"params", len(stmt.Params),
			"pos", stmt.Pos.String(),
		)
		return nil

	case *ast.ReturnStmt:
		return &RuntimeError{
			Pos: stmt.Pos,
			Err: errorf(ErrNotImplemented, "Return statements not yet implemented"),
		}

	case *ast.IfStmt:
		cond, err := i.Eval(stmt.Cond)
		if err != nil {
			return err
		}
		if Truthy(cond) {
			return i.Exec(ctx, stmt.Then)
		} else if stmt.Else != nil {
			return i.Exec(ctx, stmt.Else)
		}
		return nil

	case *ast.WhileStmt:
		for {
			if err := ctx.Err(); err != nil {
				return withPos(err, stmt.Pos)
			}
			cond, err := i.Eval(stmt.Cond)
			if err != nil {
				return err
			}
			if !Truthy(cond) {
				return nil
			}
			if err := i.Exec(ctx, stmt.Body); err != nil {
				return err
			}
		}

	case *ast.ForStmt:
		return &RuntimeError{
			Pos: stmt.Pos,
			Err: errorf(ErrNotImplemented, "For loops not yet implemented"),
		}

	}

	return fmt.Errorf("unexpected statement type %T", stmt)
}

func (i *Interpreter) execBlock(ctx context.Context, block *ast.BlockStmt) error {
	i.env.Push()
	defer i.env.Pop()
	for _, stmt := range block.Stmts {
		if err := i.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) Eval(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {

	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral, *ast.BooleanLiteral:
		v, _ := FromLiteral(expr)
		return v, nil

	case *ast.Identifier:
		v, ok := i.env.Get(expr.Name)
		if !ok {
			return nil, &RuntimeError{
				Pos: expr.Pos,
				Err: errorf(ErrUndefinedVariable, "Undefined variable '%s'", expr.Name),
			}
		}
		return v, nil

	case *ast.BinaryExpr:
		if expr.Op == ast.OpAssign {
			return i.evalAssign(expr)
		}
		left, err := i.Eval(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.Eval(expr.Right)
		if err != nil {
			return nil, err
		}
		v, err := binaryOp(expr.Op, left, right)
		if err != nil {
			return nil, withPos(err, expr.Pos)
		}
		return v, nil

	case *ast.UnaryExpr:
		operand, err := i.Eval(expr.Operand)
		if err != nil {
			return nil, err
		}
		v, err := unaryOp(expr.Op, operand)
		if err != nil {
			return nil, withPos(err, expr.Pos)
		}
		return v, nil

	case *ast.CallExpr:
		return i.evalCall(expr)

	case *ast.IndexExpr:
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrNotImplemented, "Array access not yet implemented"),
		}

	case *ast.MemberExpr:
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrNotImplemented, "Member access not yet implemented"),
		}

	case *ast.ContextConditional:
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrNotImplemented, "Context conditionals not yet implemented"),
		}

	}

	return nil, fmt.Errorf("unexpected expression type %T", expr)
}

func (i *Interpreter) evalAssign(expr *ast.BinaryExpr) (Value, error) {
	ident, ok := expr.Left.(*ast.Identifier)
	if !ok {
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrType, "Invalid assignment target"),
		}
	}
	v, err := i.Eval(expr.Right)
	if err != nil {
		return nil, err
	}
	if !i.env.Assign(ident.Name, v) {
		return nil, &RuntimeError{
			Pos: ident.Pos,
			Err: errorf(ErrUndefinedVariable, "Undefined variable '%s'", ident.Name),
		}
	}
	return v, nil
}

func (i *Interpreter) evalCall(expr *ast.CallExpr) (Value, error) {
	ident, ok := expr.Callee.(*ast.Identifier)
	if !ok {
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrNotImplemented, "Function calls with complex expressions not yet implemented"),
		}
	}

	fn, ok := i.builtin(ident.Name)
	if !ok {
		return nil, &RuntimeError{
			Pos: expr.Pos,
			Err: errorf(ErrUndefinedFunction, "Function '%s' is not defined", ident.Name),
		}
	}

	args := make([]Value, 0, len(expr.Args))
	for _, arg := range expr.Args {
		v, err := i.Eval(arg)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	v, err := fn(args)
	if err != nil {
		return nil, withPos(err, expr.Pos)
	}
	return v, nil
}
