package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/archbtw/cmds"
	"github.com/reusee/archbtw/logs"
	"github.com/reusee/archbtw/machines"
	"github.com/reusee/archbtw/modes"
	"github.com/reusee/archbtw/programs"
	"github.com/reusee/dscope"
)

const version = "0.1.0"

var args = cmds.Args()

var errVersion = errors.New("version requested")

func init() {
	cmds.GlobalExecutor.Synopsis = "archbtw [options] [--] <source file>"
	cmds.GlobalExecutor.IsPositional = isFile
	cmds.Define("-V", cmds.Func(func() error {
		return errVersion
	}).Desc("print version").Alias("-version"))
}

// isFile reports whether word names an existing regular file.
func isFile(word string) bool {
	info, err := os.Stat(word)
	return err == nil && info.Mode().IsRegular()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	*args = (*args)[:0]

	if err := cmds.Execute(argv); err != nil {
		switch {
		case errors.Is(err, cmds.ErrHelp):
			cmds.GlobalExecutor.WriteUsage(stdout)
			return 0
		case errors.Is(err, errVersion):
			fmt.Fprintf(stdout, "archbtw %s\n", version)
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		cmds.GlobalExecutor.WriteUsage(stderr)
		return 1
	}

	if len(*args) != 1 {
		cmds.GlobalExecutor.WriteUsage(stderr)
		return 1
	}

	scope := dscope.New(
		new(programs.Module),
		modes.ForProduction(),
	).Fork(
		func() machines.Output {
			return stdout
		},
		func() machines.DebugOutput {
			return stderr
		},
		func() logs.Writer {
			return stderr
		},
	)

	code := 0
	scope.Call(func(
		runProgram programs.Run,
	) {
		if err := runProgram(context.Background(), (*args)[0]); err != nil {
			var fileErr *programs.FileError
			if errors.As(err, &fileErr) {
				fmt.Fprintf(stderr, "Error: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "Execution halted: %v\n", err)
			}
			code = 1
		}
	})
	return code
}
