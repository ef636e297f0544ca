// Package shell implements the interpreter loop: read a line, split it
// into tokens, and run it as either a builtin or an external command
// resolved on PATH.
package shell

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/minsh-sh/minsh/core/vos"
)

const (
	EnvHome = "HOME"
	EnvPath = "PATH"

	DefaultPrompt = "$ "
)

// Shell drives the read-dispatch loop over a virtual OS.
type Shell struct {
	OS vos.VOS

	reader LineReader

	exitRequested bool
	exitCode      int
}

// New creates a Shell reading lines from reader and running them
// against virtOS.
func New(virtOS vos.VOS, reader LineReader) *Shell {
	return &Shell{
		OS:     virtOS,
		reader: reader,
	}
}

// Tokenize splits a command line into tokens on single space
// characters. Splitting is naive, not shell-aware: runs of spaces
// produce empty tokens and no quoting is recognized.
func Tokenize(line string) []string {
	return strings.Split(line, " ")
}

// Run executes the interpreter loop until the input stream ends or a
// builtin requests exit, and returns the shell's exit status. Output is
// written straight to the session streams, so nothing is buffered
// across prompts.
func (s *Shell) Run() int {
	for {
		line, err := s.reader.ReadLine()
		switch {
		case err == io.EOF:
			// Input closed, normal end.
			return 0

		case err != nil:
			log.Printf("readline: %v", err)
			continue

		case len(line) == 0:
			continue
		}

		s.Dispatch(Tokenize(line))
		if s.exitRequested {
			return s.exitCode
		}
	}
}

// Dispatch routes one token sequence: builtins run in-process, anything
// else is resolved on PATH and spawned. An unresolvable name reports
// "command not found" and the loop carries on.
func (s *Shell) Dispatch(tokens []string) {
	if len(tokens) == 0 {
		return
	}
	name := tokens[0]

	if builtin, ok := AllBuiltins[name]; ok {
		builtin.Main(s, tokens)
		return
	}

	execPath, err := vos.LookPath(s.OS, name)
	if err != nil {
		fmt.Fprintf(s.OS.Stdout(), "%s: command not found\n", name)
		return
	}

	// argv[0] is the name as typed, not the resolved path. The child's
	// status is absorbed; the loop continues either way.
	s.OS.Spawn(execPath, tokens)
}

// exit makes Run return with the given status after the current
// iteration.
func (s *Shell) exit(code int) {
	s.exitRequested = true
	s.exitCode = code
}
