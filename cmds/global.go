package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Positional(fn func(arg string) error) {
	GlobalExecutor.Positional(fn)
}

func PrintUsage() {
	GlobalExecutor.PrintUsage()
}

// Execute runs args against the global executor, exiting with status 1 on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
