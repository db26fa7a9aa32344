package repl

import (
	"github.com/reusee/dscope"
	"github.com/reusee/myndra/pipeline"
)

type Module struct {
	dscope.Module
	Pipeline pipeline.Module
}
