package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/myndra/debugs"
	"github.com/reusee/myndra/pipeline"
	"github.com/reusee/myndra/repl"
)

type Module struct {
	dscope.Module
	Pipeline pipeline.Module
	Repl     repl.Module
	Debugs   debugs.Module
}
