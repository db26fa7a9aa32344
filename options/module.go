package options

import (
	"github.com/reusee/dscope"
	"github.com/reusee/myndra/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
