package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProgram(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runArgs(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestNoSourceFile(t *testing.T) {
	code, stdout, stderr := runArgs()
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout != "" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "usage: archbtw") {
		t.Fatalf("got %q", stderr)
	}
}

func TestTooManySourceFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.archbtw")
	b := filepath.Join(dir, "b.archbtw")
	code, _, stderr := runArgs(a, b)
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.HasPrefix(stderr, "usage: archbtw") {
		t.Fatalf("got %q", stderr)
	}
}

func TestHelpAndVersion(t *testing.T) {
	for _, arg := range []string{"-h", "help", "--help"} {
		code, stdout, stderr := runArgs(arg)
		if code != 0 {
			t.Fatalf("%s: got %d", arg, code)
		}
		if !strings.HasPrefix(stdout, "usage: archbtw") || stderr != "" {
			t.Fatalf("%s: got %q %q", arg, stdout, stderr)
		}
		if !strings.Contains(stdout, "-dump <file>") || strings.Contains(stdout, "!-check") {
			t.Fatalf("%s: got %q", arg, stdout)
		}
	}

	for _, arg := range []string{"-V", "-version"} {
		code, stdout, _ := runArgs(arg)
		if code != 0 {
			t.Fatalf("%s: got %d", arg, code)
		}
		if stdout != "archbtw "+version+"\n" {
			t.Fatalf("%s: got %q", arg, stdout)
		}
	}
}

func TestUnknownOption(t *testing.T) {
	code, _, stderr := runArgs("-nope")
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.HasPrefix(stderr, "Error: unknown command: -nope\n") {
		t.Fatalf("got %q", stderr)
	}
}

func TestRunProgram(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "three.archbtw", "arch arch arch btw\n")
	code, stdout, stderr := runArgs(path)
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != "\x03" {
		t.Fatalf("got %q", stdout)
	}
}

func TestFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.archbtw")
	code, stdout, stderr := runArgs(path)
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout != "" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "Error: read source file "+path+": ") {
		t.Fatalf("got %q", stderr)
	}
}

func TestFatalError(t *testing.T) {
	path := writeProgram(t, t.TempDir(), "unbalanced.archbtw", "arch btw linux the\n")
	code, stdout, stderr := runArgs(path)
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if stdout != "\x01" {
		t.Fatalf("got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "Execution halted: unbalanced loop at "+path+":1:16\n") {
		t.Fatalf("got %q", stderr)
	}
}

func TestSourceFileNamedLikeOption(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeProgram(t, dir, "help", "arch btw")
	writeProgram(t, dir, "-prog", "arch arch btw")

	// an existing file wins over the command of the same name
	code, stdout, stderr := runArgs("help")
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != "\x01" {
		t.Fatalf("got %q", stdout)
	}

	code, stdout, stderr = runArgs("-prog")
	if code != 0 {
		t.Fatalf("got %d: %s", code, stderr)
	}
	if stdout != "\x02" {
		t.Fatalf("got %q", stdout)
	}

	// words after -- are source files even when missing
	code, _, stderr = runArgs("--", "-missing")
	if code != 1 {
		t.Fatalf("got %d", code)
	}
	if !strings.HasPrefix(stderr, "Error: read source file -missing: ") {
		t.Fatalf("got %q", stderr)
	}
}
