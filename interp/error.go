package interp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/reusee/myndra/ast"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrType              = errors.New("type error")
	ErrNotImplemented    = errors.New("not yet implemented")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArity             = errors.New("wrong number of arguments")
)

// kindError carries a user-facing message while matching one of the sentinel errors.
type kindError struct {
	kind error
	msg  string
}

func (k kindError) Error() string {
	return k.msg
}

func (k kindError) Unwrap() error {
	return k.kind
}

func errorf(kind error, format string, args ...any) error {
	return kindError{
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
	}
}

// RuntimeError is an evaluation failure at a source position.
type RuntimeError struct {
	Pos ast.Pos
	Err error
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%s: %s", r.Pos, r.Err)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}

// Snippet renders the offending source line with a caret under the error column.
func (r *RuntimeError) Snippet(src string) string {
	var line string
	n := 0
	for l := range strings.Lines(src) {
		n++
		if n == r.Pos.Line {
			line = strings.TrimRight(l, "\r\n")
			break
		}
	}
	if n != r.Pos.Line {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(line)
	sb.WriteString("\n")
	col := r.Pos.Column - 1
	for i, c := range []rune(line) {
		if i >= col {
			break
		}
		if c == '\t' {
			sb.WriteString("\t")
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(c)))
	}
	sb.WriteString("^\n")
	return sb.String()
}

// withPos attaches pos unless err already carries a position.
func withPos(err error, pos ast.Pos) error {
	if err == nil {
		return nil
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return err
	}
	return &RuntimeError{
		Pos: pos,
		Err: err,
	}
}
