package pipeline

import (
	"bufio"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/myndra/options"
)

type Module struct {
	dscope.Module
	Options options.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Stdout receives script output.
type Stdout io.Writer

// Stdin feeds the input built-in.
type Stdin io.Reader

func (Module) Stdout() Stdout {
	return os.Stdout
}

func (Module) Stdin() Stdin {
	return os.Stdin
}

// Reader is the only buffer over Stdin. Prompts and the input built-in both read from it.
func (Module) Reader(stdin Stdin) *bufio.Reader {
	return bufio.NewReader(stdin)
}
