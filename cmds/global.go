package cmds

import "fmt"

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func Execute(args []string) error {
	return GlobalExecutor.Execute(args)
}

// Lookup returns a defined command of the global executor.
func Lookup(name string) *Command {
	command, ok := GlobalExecutor.commands[name]
	if !ok {
		panic(fmt.Errorf("undefined command %s", name))
	}
	return command
}

// Describe sets the description of a defined command.
func Describe(name string, desc string) {
	Lookup(name).Desc(desc)
}
