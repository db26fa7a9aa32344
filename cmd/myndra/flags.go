package main

import (
	"fmt"
	"os"

	"github.com/reusee/myndra/cmds"
)

const Version = "1.0.0"

var (
	inputFile string

	interactive = cmds.Switch("-i", "start interactive REPL", "-interactive", "--interactive")
	dumpAST     = cmds.Switch("-dump-ast", "print the parsed program before running it")
	dumpTokens  = cmds.Switch("-dump-tokens", "print the token stream as YAML before running")
	tapGlobals  = cmds.Switch("-tap", "open a starlark REPL over the globals after running")
	production  = cmds.Switch("-production", "run in production mode, default context prod")
	checkOnly   = cmds.Switch("-check", "compile only and report errors without running", "--check")
)

func init() {
	cmds.Define("-v", cmds.Func(func() {
		printVersion()
		os.Exit(0)
	}).Desc("show version information").Alias("-version", "--version"))

	cmds.Positional(func(arg string) error {
		if inputFile != "" {
			return fmt.Errorf("multiple input files: %s, %s", inputFile, arg)
		}
		inputFile = arg
		return nil
	})
}

func printVersion() {
	fmt.Printf("Myndra Programming Language\nVersion: %s\n", Version)
}
