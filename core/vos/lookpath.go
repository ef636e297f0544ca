package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an
// executable file. An unset PATH and inaccessible candidates both
// collapse to this outcome.
var ErrNotFound = exec.ErrNotFound

func findExecutable(vos VOS, file string) error {
	d, err := vos.Stat(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories
// named by the PATH environment variable, in order; the first candidate
// that exists and has any execute bit set wins. If file contains a
// slash, it is tried directly and the PATH is not consulted. Candidates
// are resolved fresh on every call, never cached.
func LookPath(vos VOS, file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := findExecutable(vos, file); err == nil {
			return file, nil
		}
		return "", ErrNotFound
	}
	path, ok := vos.LookupEnv("PATH")
	if !ok {
		return "", ErrNotFound
	}
	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(vos, candidate); err == nil {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}
