package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stdout)
}

// WriteUsage lists commands sorted by name. Aliases share one entry.
func (p *Executor) WriteUsage(w io.Writer) {
	if p.Synopsis != "" {
		fmt.Fprintf(w, "usage: %s\n\n", p.Synopsis)
	}
	writeCommands(w, p.commands, 0)
}

func writeCommands(w io.Writer, commands map[string]*Command, depth int) {
	seen := make(map[*Command]bool)
	names := slices.Sorted(func(yield func(string) bool) {
		for name := range commands {
			if !yield(name) {
				return
			}
		}
	})
	indent := strings.Repeat("  ", depth+1)
	for _, name := range names {
		command := commands[name]
		if command == nil || command.Hidden || seen[command] || slices.Contains(command.Aliases, name) {
			continue
		}
		seen[command] = true
		label := strings.Join(append([]string{name}, command.Aliases...), ", ")
		if args := command.argsUsage(); args != "" {
			label += " " + args
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%-24s %s\n", indent, label, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, label)
		}
		if len(command.Subs) > 0 {
			writeCommands(w, command.Subs, depth+1)
		}
	}
}
