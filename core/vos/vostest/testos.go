// Package vostest provides a deterministic in-memory VOS for testing
// the interpreter without touching real OS state.
package vostest

import (
	"bytes"
	"fmt"
	"path"

	"github.com/spf13/afero"

	"github.com/minsh-sh/minsh/core/vos"
)

// SpawnCall records one invocation of the fake spawner.
type SpawnCall struct {
	// Path is the resolved executable path passed to Spawn.
	Path string
	// Argv is the argument vector, argv[0] being the name as typed.
	Argv []string
}

// FakeOS is a VOS backed entirely by memory: a MapEnv, an afero
// MemMapFs, an in-memory working directory, and a spawner that records
// invocations instead of creating processes.
type FakeOS struct {
	*vos.MapEnv
	vos.VFS
	vos.VIO

	// Dir is the current working directory.
	Dir string
	// Output collects everything written to stdout and stderr.
	Output *bytes.Buffer
	// SpawnCalls records every Spawn invocation in order.
	SpawnCalls []SpawnCall
	// SpawnStatus is the exit status the fake spawner reports.
	SpawnStatus int
}

var _ vos.VOS = (*FakeOS)(nil)

// NewFakeOS creates a FakeOS with an empty environment and filesystem,
// rooted at /.
func NewFakeOS() *FakeOS {
	out := &bytes.Buffer{}
	return &FakeOS{
		MapEnv: vos.NewMapEnv(),
		VFS:    afero.NewMemMapFs(),
		VIO:    vos.NewVIOAdapter(nil, out, out),
		Dir:    "/",
		Output: out,
	}
}

// Getwd implements VProc.Getwd.
func (f *FakeOS) Getwd() (string, error) {
	return f.Dir, nil
}

// Chdir implements VProc.Chdir. Relative paths resolve against the
// current directory; the target must exist and be a directory.
func (f *FakeOS) Chdir(dir string) error {
	if !path.IsAbs(dir) {
		dir = path.Clean(path.Join(f.Dir, dir))
	}

	stat, err := f.Stat(dir)
	switch {
	case err != nil:
		return err
	case !stat.IsDir():
		return fmt.Errorf("%s: not a directory", dir)
	default:
		f.Dir = dir
		return nil
	}
}

// Spawn implements Spawner by recording the invocation.
func (f *FakeOS) Spawn(execPath string, argv []string) int {
	f.SpawnCalls = append(f.SpawnCalls, SpawnCall{
		Path: execPath,
		Argv: append([]string(nil), argv...),
	})
	return f.SpawnStatus
}

// WriteExecutable creates an executable file at the given path,
// creating parent directories as needed.
func (f *FakeOS) WriteExecutable(execPath string) error {
	if err := f.MkdirAll(path.Dir(execPath), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(f.VFS, execPath, []byte("#!/bin/sh\n"), 0755); err != nil {
		return err
	}
	// MemMapFs does not reliably apply the create mode.
	return f.Chmod(execPath, 0755)
}

// WriteRegularFile creates a file with no execute bits set.
func (f *FakeOS) WriteRegularFile(filePath string) error {
	if err := f.MkdirAll(path.Dir(filePath), 0755); err != nil {
		return err
	}
	if err := afero.WriteFile(f.VFS, filePath, []byte("data\n"), 0644); err != nil {
		return err
	}
	return f.Chmod(filePath, 0644)
}
