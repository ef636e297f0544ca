package vos

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// HostOS is the VOS backed by the real operating system: the process
// environment, the process working directory, the host filesystem, and
// fork/exec process creation with inherited standard streams.
type HostOS struct {
	VFS
	VIO
}

var _ VOS = (*HostOS)(nil)

// NewHostOS creates a VOS bound to the current process.
func NewHostOS() *HostOS {
	return &HostOS{
		VFS: afero.NewOsFs(),
		VIO: NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr),
	}
}

// Getenv implements VEnv.Getenv.
func (h *HostOS) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv implements VEnv.LookupEnv.
func (h *HostOS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Setenv implements VEnv.Setenv.
func (h *HostOS) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// Unsetenv implements VEnv.Unsetenv.
func (h *HostOS) Unsetenv(key string) error {
	return os.Unsetenv(key)
}

// Environ implements VEnv.Environ.
func (h *HostOS) Environ() []string {
	return os.Environ()
}

// UserHomeDir implements VEnv.UserHomeDir.
func (h *HostOS) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Getwd implements VProc.Getwd.
func (h *HostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VProc.Chdir.
func (h *HostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// Spawn implements Spawner by running the executable at path as a child
// process. The child inherits the session's standard streams untouched
// and the parent blocks until it exits. A start failure is absorbed as
// exit status 1; the status is otherwise whatever the child reports.
func (h *HostOS) Spawn(path string, argv []string) int {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Stdin:  h.Stdin(),
		Stdout: h.Stdout(),
		Stderr: h.Stderr(),
	}

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &exitErr):
		return exitErr.ExitCode()
	default:
		return 1
	}
}
