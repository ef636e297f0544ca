package shell

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/minsh-sh/minsh/core/vos"
)

// AllBuiltins holds the closed set of registered shell builtins, keyed
// by exact command name.
var AllBuiltins = make(map[string]Builtin)

// Builtin is a command implemented inside the interpreter itself, never
// looked up on PATH.
type Builtin interface {
	Main(s *Shell, args []string) int
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) int

func (f BuiltinFunc) Main(s *Shell, args []string) int {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Exit ends the interpreter with the given status, default 0. A
// malformed code is reported and the loop continues.
func Exit(s *Shell, args []string) int {
	code := 0
	if len(args) > 1 {
		parsed, err := strconv.ParseUint(args[1], 10, 8)
		if err != nil {
			fmt.Fprintf(s.OS.Stdout(), "exit: %s: numeric argument required\n", args[1])
			return 1
		}
		code = int(parsed)
	}

	s.exit(code)
	return code
}

// Echo prints each argument followed by a single space, then a newline.
// The trailing space before the newline is part of the command's
// observable output.
func Echo(s *Shell, args []string) int {
	w := s.OS.Stdout()
	for _, arg := range args[1:] {
		fmt.Fprintf(w, "%s ", arg)
	}
	fmt.Fprintln(w)
	return 0
}

// Type reports whether a name is a builtin or an executable on PATH.
func Type(s *Shell, args []string) int {
	if len(args) < 2 {
		return 0
	}
	name := args[1]
	w := s.OS.Stdout()

	if _, ok := AllBuiltins[name]; ok {
		fmt.Fprintf(w, "%s is a shell builtin\n", name)
		return 0
	}

	if execPath, err := vos.LookPath(s.OS, name); err == nil {
		fmt.Fprintf(w, "%s is %s\n", name, execPath)
		return 0
	}

	fmt.Fprintf(w, "%s: not found\n", name)
	return 1
}

// Pwd prints the current working directory.
func Pwd(s *Shell, args []string) int {
	wd, err := s.OS.Getwd()
	if err != nil {
		fmt.Fprintf(s.OS.Stderr(), "pwd: %v\n", err)
		s.exit(1)
		return 1
	}
	fmt.Fprintln(s.OS.Stdout(), wd)
	return 0
}

// Cd changes the working directory. With no argument the target is
// $HOME; a leading ~ expands to $HOME. A failed change leaves the
// working directory untouched and is never fatal.
func Cd(s *Shell, args []string) int {
	home, homeSet := s.OS.LookupEnv(EnvHome)

	var target, display string
	switch {
	case len(args) < 2:
		if !homeSet {
			fmt.Fprintln(s.OS.Stdout(), "cd: HOME not set")
			return 1
		}
		target, display = home, home
	case args[1] == "~":
		target, display = home, args[1]
	case strings.HasPrefix(args[1], "~/"):
		target, display = path.Join(home, strings.TrimPrefix(args[1], "~/")), args[1]
	default:
		target, display = args[1], args[1]
	}

	if err := s.OS.Chdir(target); err != nil {
		fmt.Fprintf(s.OS.Stdout(), "cd: %s: No such file or directory\n", display)
		return 1
	}
	return 0
}

// Hello prints a greeting. A diagnostic builtin with no other effects.
func Hello(s *Shell, args []string) int {
	fmt.Fprintln(s.OS.Stdout(), "Hello, World!")
	return 0
}

func init() {
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["echo"] = BuiltinFunc(Echo)
	AllBuiltins["type"] = BuiltinFunc(Type)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["hello"] = BuiltinFunc(Hello)
}
