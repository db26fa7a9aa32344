package interp

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
)

type builtinFunc func(args []Value) (Value, error)

// Builtins lists the names dispatched before any user scope lookup.
var Builtins = []string{
	"print",
	"input",
	"length",
	"substring",
}

func (i *Interpreter) builtin(name string) (builtinFunc, bool) {
	switch name {
	case "print":
		return i.print, true
	case "input":
		return i.input, true
	case "length":
		return length, true
	case "substring":
		return substring, true
	}
	return nil, false
}

// print writes the arguments separated by single spaces and a newline. It returns 0.
func (i *Interpreter) print(args []Value) (Value, error) {
	line := strings.Join(lo.Map(args, func(v Value, _ int) string {
		return v.String()
	}), " ")
	if _, err := fmt.Fprintln(i.stdout, line); err != nil {
		return nil, err
	}
	return Int(0), nil
}

// input writes the optional prompt and reads one line without its terminator.
func (i *Interpreter) input(args []Value) (Value, error) {
	if len(args) > 0 {
		if _, err := io.WriteString(i.stdout, args[0].String()); err != nil {
			return nil, err
		}
	}
	line, err := i.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return String(line), nil
}

// length counts bytes.
func length(args []Value) (Value, error) {
	if len(args) != 1 {
		return nil, errorf(ErrArity, "length() expects exactly 1 argument")
	}
	s, ok := args[0].(String)
	if !ok {
		return nil, errorf(ErrType, "length() can only be called on strings")
	}
	return Int(len(s)), nil
}

// substring takes a byte offset and an optional byte count.
// Out of range starts and negative counts give the empty string; counts past the end are clamped.
// Offsets are not aligned to rune boundaries, so cutting inside a multi-byte character yields
// invalid UTF-8.
func substring(args []Value) (Value, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, errorf(ErrArity, "substring() expects 2 or 3 arguments: substring(string, start, [length])")
	}
	s, ok := args[0].(String)
	if !ok {
		return nil, errorf(ErrType, "substring() first argument must be a string")
	}
	start, ok := args[1].(Int)
	if !ok {
		return nil, errorf(ErrType, "substring() second argument must be an integer")
	}
	var count Int
	if len(args) == 3 {
		count, ok = args[2].(Int)
		if !ok {
			return nil, errorf(ErrType, "substring() third argument must be an integer")
		}
	}

	if start < 0 || start >= Int(len(s)) {
		return String(""), nil
	}
	rest := s[start:]
	if len(args) == 3 {
		if count < 0 {
			return String(""), nil
		}
		if count < Int(len(rest)) {
			rest = rest[:count]
		}
	}
	return rest, nil
}

// Call invokes a built-in that does not touch the console.
func Call(name string, args ...Value) (Value, error) {
	switch name {
	case "length":
		return length(args)
	case "substring":
		return substring(args)
	}
	return nil, errorf(ErrUndefinedFunction, "Function '%s' is not defined", name)
}
