package cmds

import (
	"fmt"
	"reflect"
	"strings"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	ArgNames    []string
	Hidden      bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Hide omits the command from usage output.
func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Args names the arguments in usage output.
func (c *Command) Args(names ...string) *Command {
	c.ArgNames = names
	return c
}

// argsUsage returns the named arguments, or the parameter kinds when unnamed.
func (c *Command) argsUsage() string {
	var parts []string
	if len(c.ArgNames) > 0 {
		for _, name := range c.ArgNames {
			parts = append(parts, "<"+name+">")
		}
	} else if c.Func.IsValid() {
		t := c.Func.Type()
		for i := 0; i < t.NumIn(); i++ {
			in := t.In(i)
			if in.Kind() == reflect.Pointer {
				parts = append(parts, "["+in.Elem().Kind().String()+"]")
			} else {
				parts = append(parts, "<"+in.Kind().String()+">")
			}
		}
	}
	return strings.Join(parts, " ")
}

func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnValue.Type().NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnValue.Type().Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	return &Command{
		Func: fnValue,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
