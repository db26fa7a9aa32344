package pipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
	"github.com/reusee/myndra/interp"
)

// Report writes a diagnostic for err. Colors are used only when w is a terminal.
func (p *Pipeline) Report(w io.Writer, err error) {
	out := termenv.NewOutput(w)
	red := out.Color("9")
	faint := func(s string) string {
		return out.String(s).Faint().String()
	}

	var compileErr *CompileError
	var runtimeErr *interp.RuntimeError
	var fileErr *FileError
	switch {

	case errors.As(err, &fileErr):
		fmt.Fprintln(w, out.String("Error: "+fileErr.Error()).Foreground(red).String())

	case errors.As(err, &compileErr):
		fmt.Fprintln(w, out.String(compileErr.Error()).Foreground(red).String())

	case errors.As(err, &runtimeErr):
		fmt.Fprintln(w, out.String("Runtime error: "+runtimeErr.Error()).Foreground(red).String())
		if snippet := runtimeErr.Snippet(p.source); snippet != "" {
			fmt.Fprint(w, faint(snippet))
		}

	default:
		fmt.Fprintln(w, out.String("Error: "+err.Error()).Foreground(red).String())

	}
}
