package config

import (
	"bytes"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultPrompt, cfg.Prompt)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_emptyPrompt(t *testing.T) {
	cfg := &Configuration{}

	assert.Error(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/minsh/config.yaml", []byte("prompt: '> '\nmotd: hi\n"), 0644))

	cfg, err := Load(fs, "/etc/minsh")
	require.NoError(t, err)
	assert.Equal(t, "> ", cfg.Prompt)
	assert.Equal(t, "hi", cfg.Motd)
}

func TestLoad_acceptsFilePath(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/minsh/config.yaml", []byte("motd: hi\n"), 0644))

	// Pointing at the file itself works the same as its directory, and
	// omitted fields keep their defaults.
	cfg, err := Load(fs, "/etc/minsh/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompt, cfg.Prompt)
}

func TestLoad_unknownField(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/minsh/config.yaml", []byte("bogus: true\n"), 0644))

	_, err := Load(fs, "/etc/minsh")
	assert.Error(t, err)
}

func TestLoadOrDefault_missingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := LoadOrDefault(fs, "/etc/minsh")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestInitialize(t *testing.T) {
	fs := afero.NewMemMapFs()
	logger := log.New(&bytes.Buffer{}, "", 0)

	_, err := Initialize(fs, "/etc/minsh", logger)
	require.NoError(t, err)

	cfg, err := Load(fs, "/etc/minsh")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// A second init refuses to clobber the existing file.
	_, err = Initialize(fs, "/etc/minsh", logger)
	assert.Error(t, err)
}
