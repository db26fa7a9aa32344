package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	fprintCommands(w, p.commands, 0)
}

func fprintCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases are printed with their command
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true

		line := strings.Repeat("  ", depth) + name
		if len(command.Aliases) > 0 {
			line += " (" + strings.Join(command.Aliases, ", ") + ")"
		}
		if command.Func.IsValid() {
			fnType := command.Func.Type()
			for i := range fnType.NumIn() {
				line += " <" + fnType.In(i).String() + ">"
			}
		}
		if command.Description != "" {
			line += "\t" + command.Description
		}
		fmt.Fprintln(w, line)

		if len(command.Subs) > 0 {
			fprintCommands(w, command.Subs, depth+1)
		}
	}
}
