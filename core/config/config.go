// Package config holds the user-tunable settings for the interpreter.
package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ConfigurationName is the name of the configuration file.
const ConfigurationName = "config.yaml"

// DefaultPrompt is printed before each line is read.
const DefaultPrompt = "$ "

// Configuration is the on-disk configuration.
type Configuration struct {
	// Prompt is printed before each line is read.
	Prompt string `json:"prompt" validate:"required"`

	// Motd is printed once before the first prompt on interactive
	// sessions. Empty disables it.
	Motd string `json:"motd"`

	// HistoryFile, if set, persists interactive line history between
	// runs.
	HistoryFile string `json:"history_file"`
}

// Default returns the configuration used when no file is present.
func Default() *Configuration {
	return &Configuration{
		Prompt: DefaultPrompt,
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}
