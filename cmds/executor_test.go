package cmds

import (
	"errors"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var a int
	executor.Define("+a", Func(func() {
		a = 42
	}))
	executor.Define("a", Func(func(i int) {
		a = i
	}))

	if err := executor.Execute([]string{
		"+a",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 42 {
		t.Fatal()
	}

	if err := executor.Execute([]string{
		"a", "1",
	}); err != nil {
		t.Fatal(err)
	}
	if a != 1 {
		t.Fatal()
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var bar, baz int
	executor.Define("foo", Sub(map[string]*Command{
		"bar": Func(func() {
			bar = 1
		}),
		"baz": Func(func(i int) {
			baz = i
		}),
	}))

	if err := executor.Execute([]string{
		"foo",
		"bar",
		"baz", "42",
	}); err != nil {
		t.Fatal(err)
	}

	if bar != 1 {
		t.Fatal()
	}
	if baz != 42 {
		t.Fatal()
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", Sub(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", Sub(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var words []string
	executor.Positional(func(word string) {
		words = append(words, word)
	})
	var dump string
	executor.Define("-dump", Func(func(path string) {
		dump = path
	}))

	if err := executor.Execute([]string{
		"hello.archbtw", "-dump", "state.yaml", "world",
	}); err != nil {
		t.Fatal(err)
	}
	if dump != "state.yaml" {
		t.Fatalf("got %q", dump)
	}
	if len(words) != 2 || words[0] != "hello.archbtw" || words[1] != "world" {
		t.Fatalf("got %v", words)
	}

	err := executor.Execute([]string{"-nope"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -nope") {
		t.Fatalf("got %v", err)
	}

	err = executor.Execute([]string{"-dump"})
	if err == nil || !strings.Contains(err.Error(), "-dump: expecting argument") {
		t.Fatalf("got %v", err)
	}

	// words after -- are positional
	words = nil
	dump = ""
	if err := executor.Execute([]string{
		"-dump", "a.yaml", "--", "-dump", "help", "--",
	}); err != nil {
		t.Fatal(err)
	}
	if dump != "a.yaml" {
		t.Fatalf("got %q", dump)
	}
	if len(words) != 3 || words[0] != "-dump" || words[1] != "help" || words[2] != "--" {
		t.Fatalf("got %v", words)
	}

	// IsPositional takes precedence over commands
	words = nil
	executor.IsPositional = func(word string) bool {
		return word == "help" || word == "-prog"
	}
	if err := executor.Execute([]string{"help", "-prog"}); err != nil {
		t.Fatal(err)
	}
	if len(words) != 2 || words[0] != "help" || words[1] != "-prog" {
		t.Fatalf("got %v", words)
	}
}

func TestDoubleDashWithoutPositional(t *testing.T) {
	executor := NewExecutor()
	err := executor.Execute([]string{"--", "foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: --") {
		t.Fatalf("got %v", err)
	}
}

func TestHelp(t *testing.T) {
	executor := NewExecutor()
	for _, name := range []string{"-h", "help", "-help", "--help"} {
		if err := executor.Execute([]string{name}); !errors.Is(err, ErrHelp) {
			t.Fatalf("%s: got %v", name, err)
		}
	}
}

func TestCommandError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("fail", Func(func() error {
		return errors.New("failed")
	}))
	executor.Define("ok", Func(func() error {
		return nil
	}))
	if err := executor.Execute([]string{"ok"}); err != nil {
		t.Fatal(err)
	}
	if err := executor.Execute([]string{"fail"}); err == nil || err.Error() != "failed" {
		t.Fatalf("got %v", err)
	}
}
