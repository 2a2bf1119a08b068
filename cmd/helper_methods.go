package cmd

import (
	"context"
	"os"
	"time"

	"github.com/PolarWolf314/veil/internal/workflows"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner with the given message when not in verbose or debug mode.
// Returns a function that should be deferred to clean up.
// The spinner writes to stderr, leaving stdout to prompts and the status line.
func startSpinner(message string, verbose bool) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("%s", message)
	}

	cleanup := func() {
		if quiet {
			s.Stop()
		}
	}

	return cleanup
}

// spinnerCipher shows a spinner while the wrapped cipher runs. It never
// spans the editor or any prompt, which need the terminal.
type spinnerCipher struct {
	inner   workflows.Cipher
	verbose bool
}

func (c spinnerCipher) Encrypt(ctx context.Context, src, dst, passphrase string) error {
	cleanup := startSpinner("Encrypting...", c.verbose)
	defer cleanup()
	return c.inner.Encrypt(ctx, src, dst, passphrase)
}

func (c spinnerCipher) Decrypt(ctx context.Context, src, dst, passphrase string) error {
	cleanup := startSpinner("Decrypting...", c.verbose)
	defer cleanup()
	return c.inner.Decrypt(ctx, src, dst, passphrase)
}
