package cmds

func Var[T any](name string) *T {
	var value T

	// set
	Define(name, Func(func(v T) {
		value = v
	}))

	// set zero
	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Hide())

	return &value
}

func Switch(name string) *bool {
	var value bool

	// set true
	Define(name, Func(func() {
		value = true
	}))

	// set false
	Define("!"+name, Func(func() {
		value = false
	}).Hide())

	return &value
}

// Count returns a counter incremented each time name appears.
func Count(name string) *int {
	var value int
	Define(name, Func(func() {
		value++
	}))
	return &value
}

// Args collects the positional arguments of the global executor.
func Args() *[]string {
	var value []string
	GlobalExecutor.Positional(func(arg string) {
		value = append(value, arg)
	})
	return &value
}
