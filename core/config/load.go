package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"

	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load loads the configuration from the directory.
func Load(configFs afero.Fs, path string) (*Configuration, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	contents, err := afero.ReadFile(configFs, filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}

	out := Default()
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadOrDefault loads the configuration, falling back to the defaults
// when no configuration file exists.
func LoadOrDefault(configFs afero.Fs, path string) (*Configuration, error) {
	out, err := Load(configFs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return out, err
}

// Initialize writes a default configuration file into the directory. It
// refuses to overwrite an existing one.
func Initialize(configFs afero.Fs, path string, logger *log.Logger) (*Configuration, error) {
	dest := filepath.Join(path, ConfigurationName)
	if _, err := configFs.Stat(dest); err == nil {
		return nil, fmt.Errorf("%s already exists", dest)
	}

	out := Default()
	contents, err := yaml.Marshal(out)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(configFs, dest, contents, 0644); err != nil {
		return nil, err
	}
	logger.Printf("Wrote %s", dest)

	return out, nil
}
