package configs

import (
	"errors"
	"fmt"
	"strings"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance.
var validate = validator.New()

// Config is the fully resolved invocation of veil.
type Config struct {
	// File is the encrypted file to edit.
	File string `validate:"required"`

	// New creates File as an empty encrypted file before editing it.
	New bool

	// Editor is invoked with one argument, the decrypted working copy.
	Editor string `validate:"required"`

	// Diff is invoked with two arguments, the pristine and edited copies.
	Diff string `validate:"required"`

	// GPG is the encryption program.
	GPG string `validate:"required"`
}

// Resolve builds a Config from flag values, filling unset commands from
// the Environment and the package defaults.
func Resolve(file string, isNew bool, editor, diff, gpg string, e Environment) Config {
	cfg := Config{
		File:   file,
		New:    isNew,
		Editor: strings.TrimSpace(editor),
		Diff:   strings.TrimSpace(diff),
		GPG:    strings.TrimSpace(gpg),
	}

	if cfg.Editor == "" {
		cfg.Editor = e.Editor
	}
	if cfg.Editor == "" {
		cfg.Editor = DefaultEditor
	}
	if cfg.Diff == "" {
		cfg.Diff = DefaultDiff
	}
	if cfg.GPG == "" {
		cfg.GPG = DefaultGPG
	}

	return cfg
}

// Validate checks that every field required to run is present.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", verrors.ErrInvalidOptions, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s is %s", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", verrors.ErrInvalidOptions, strings.Join(fields, ", "))
}
