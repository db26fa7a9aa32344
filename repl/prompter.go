package repl

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/reusee/myndra/logs"
	"github.com/reusee/myndra/pipeline"
	"golang.org/x/term"
)

// Prompter reads one line of input after showing a prompt.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// ErrAborted ends the loop like end of input.
var ErrAborted = liner.ErrPromptAborted

type NewPrompter func() Prompter

func (Module) NewPrompter(
	stdin pipeline.Stdin,
	reader *bufio.Reader,
	stdout pipeline.Stdout,
	logger logs.Logger,
) NewPrompter {
	return func() Prompter {
		if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return newLinerPrompter(logger)
		}
		return &readerPrompter{
			reader: reader,
			out:    stdout,
		}
	}
}

type linerPrompter struct {
	*liner.State
	historyPath string
	logger      logs.Logger
}

func historyPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "myndra", "repl_history"), nil
}

func newLinerPrompter(logger logs.Logger) *linerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	p := &linerPrompter{
		State:  line,
		logger: logger,
	}
	path, err := historyPath()
	if err != nil {
		logger.Warn("get history path error", "err", err)
		return p
	}
	p.historyPath = path
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return p
}

func (l *linerPrompter) Close() error {
	if l.historyPath != "" {
		if err := os.MkdirAll(filepath.Dir(l.historyPath), 0755); err != nil {
			l.logger.Warn("create history dir error", "err", err)
		} else if f, err := os.Create(l.historyPath); err != nil {
			l.logger.Warn("create history file error", "err", err)
		} else {
			l.WriteHistory(f)
			f.Close()
		}
	}
	return l.State.Close()
}

// readerPrompter serves piped input. It shares its buffer with the input built-in.
type readerPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (r *readerPrompter) Prompt(prompt string) (string, error) {
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *readerPrompter) AppendHistory(string) {}

func (r *readerPrompter) Close() error {
	return nil
}

func isEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrAborted)
}
