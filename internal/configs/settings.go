package configs

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	// EditorEnvVar names the variable that supplies the default editor.
	EditorEnvVar = "EDITOR"

	// DefaultEditor is used when EditorEnvVar is unset or blank.
	DefaultEditor = "vim"

	// DefaultDiff is the diff viewer used when --diff is not given.
	DefaultDiff = "meld"

	// DefaultGPG is the encryption program used when --gpg is not given.
	DefaultGPG = "gpg"
)

// Environment holds the settings veil reads from the process environment.
type Environment struct {
	// Editor is the default editor command.
	// Env: EDITOR
	Editor string `env:"EDITOR"`
}

// LoadEnvironment parses the process environment into an Environment.
func LoadEnvironment() (Environment, error) {
	var e Environment
	if err := env.Parse(&e); err != nil {
		return Environment{}, fmt.Errorf("error getting env configs: %w", err)
	}

	if strings.TrimSpace(e.Editor) == "" {
		e.Editor = DefaultEditor
	}

	return e, nil
}

// DefaultEnvironment is the Environment used when nothing is set.
func DefaultEnvironment() Environment {
	return Environment{Editor: DefaultEditor}
}
