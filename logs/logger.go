package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/myndra/cmds"
	"github.com/reusee/myndra/modes"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	cmds.Define("-log-debug", cmds.Func(func() {
		level.Set(slog.LevelDebug)
	}).Desc("set log level to debug"))
	cmds.Define("-log-info", cmds.Func(func() {
		level.Set(slog.LevelInfo)
	}).Desc("set log level to info"))
	cmds.Define("-log-warn", cmds.Func(func() {
		level.Set(slog.LevelWarn)
	}).Desc("set log level to warn"))
	cmds.Define("-log-error", cmds.Func(func() {
		level.Set(slog.LevelError)
	}).Desc("set log level to error"))
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
	mode modes.Mode,
) Logger {
	isSystemdService := false
	if mode != modes.ModeTest {
		cgroupPath, err := getCgroupPath()
		if err == nil {
			isSystemdService = strings.HasSuffix(
				path.Dir(cgroupPath),
				".service",
			)
		}
	}

	// systemd journal, never from tests
	var newJournal func() (slog.Handler, error)
	if mode != modes.ModeTest {
		newJournal = func() (slog.Handler, error) {
			return slogjournal.NewHandler(&slogjournal.Options{
				Level: level,
				ReplaceGroup: func(key string) string {
					return toJournalKey(key)
				},
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					a.Key = toJournalKey(a.Key)
					return a
				},
			})
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(buildHandlers(writer, isSystemdService, newJournal)...),
	}).With("mode", mode.String())
}

// buildHandlers logs to the terminal, or to the journal when running as a service.
// A service falls back to the terminal writer if the journal is unavailable.
func buildHandlers(
	writer Writer,
	isSystemdService bool,
	newJournal func() (slog.Handler, error),
) (handlers []slog.Handler) {
	newTerminalHandler := func() slog.Handler {
		return slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
	}

	if !isSystemdService {
		handlers = append(handlers, newTerminalHandler())
	}

	if newJournal == nil {
		return
	}
	journalHandler, err := newJournal()
	if err != nil {
		if isSystemdService {
			terminalHandler := newTerminalHandler()
			handlers = append(handlers, terminalHandler)
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else if isSystemdService {
		handlers = append(handlers, journalHandler)
	}

	return
}

// toJournalKey maps attribute keys to journald field names, prefixed to avoid clashing with
// trusted fields.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return "MYNDRA_" + str
}

func getCgroupPath() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) >= 3 {
		return parts[2], nil
	}
	return "", nil
}
