package pipeline

import (
	"fmt"
	"strings"
)

type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// CompileError collects the diagnostics of the first failing stage.
type CompileError struct {
	Name     string
	Stage    Stage
	Messages []string
}

func (c *CompileError) Error() string {
	var prefix string
	switch c.Stage {
	case StageLexer:
		prefix = "Lexer error: "
	case StageParser:
		prefix = "Parse error: "
	}
	var sb strings.Builder
	for i, msg := range c.Messages {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(prefix)
		sb.WriteString(msg)
	}
	return sb.String()
}

// FileError is a source file that could not be read.
type FileError struct {
	Path string
	Err  error
}

func (f *FileError) Error() string {
	return fmt.Sprintf("Cannot open file '%s': %v", f.Path, f.Err)
}

func (f *FileError) Unwrap() error {
	return f.Err
}
