package machines

import (
	"io"
	"os"

	"github.com/reusee/archbtw/logs"
	"github.com/reusee/archbtw/settings"
	"github.com/reusee/archbtw/tokens"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type Input io.Reader

func (Module) Input() Input {
	return os.Stdin
}

type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

type DebugOutput io.Writer

func (Module) DebugOutput() DebugOutput {
	return os.Stderr
}

type NewMachine func(src *tokens.Source, toks []tokens.Token) *Machine

func (Module) NewMachine(
	input Input,
	output Output,
	debugOutput DebugOutput,
	debugColor settings.DebugColor,
	suggest settings.SuggestKeywords,
	logger logs.Logger,
) NewMachine {
	return func(src *tokens.Source, toks []tokens.Token) *Machine {
		m := New(src, toks)
		m.SetInput(input)
		m.Output = output
		m.Debug = debugOutput
		m.DebugColor = bool(debugColor)
		m.Suggest = bool(suggest)
		m.Logger = logger
		return m
	}
}
