// Package vos abstracts the pieces of the operating system the
// interpreter touches: environment variables, the filesystem, standard
// streams, the working directory, and process creation. Everything above
// this package talks to these interfaces so the dispatcher, the PATH
// resolver, and the executor can run against fakes in tests.
package vos

import (
	"io"

	"github.com/spf13/afero"
)

// VFS is the filesystem used for PATH candidate checks.
type VFS = afero.Fs

// VEnv is an opaque key/value view of environment variables.
type VEnv interface {
	// Getenv retrieves the value of the environment variable named by the
	// key, or the empty string if it is unset.
	Getenv(key string) string

	// LookupEnv retrieves the value of the environment variable named by
	// the key. The boolean reports whether the variable is set at all,
	// distinguishing an empty value from an absent one.
	LookupEnv(key string) (string, bool)

	// Setenv sets the value of the environment variable named by the key.
	Setenv(key, value string) error

	// Unsetenv unsets a single environment variable.
	Unsetenv(key string) error

	// Environ returns a copy of strings representing the environment, in
	// the form "key=value".
	Environ() []string

	// UserHomeDir returns the current user's home directory.
	UserHomeDir() (string, error)
}

// VIO holds the standard streams a session reads and writes.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// VProc exposes the per-process state the interpreter mutates: the
// working directory, changed only by cd.
type VProc interface {
	Getwd() (string, error)
	Chdir(dir string) error
}

// Spawner launches the executable at path with the given argument
// vector, streams inherited from the session, and blocks until the
// child exits. argv[0] is the command name as typed, not the resolved
// path. The return value is the child's exit status; a spawn that never
// starts behaves like a child exiting 1.
type Spawner interface {
	Spawn(path string, argv []string) int
}

// VOS is the full operating system surface the interpreter runs on.
type VOS interface {
	VEnv
	VIO
	VProc
	Spawner
	VFS
}
