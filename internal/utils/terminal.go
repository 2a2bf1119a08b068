package utils

import (
	"context"
	"fmt"
	"os"
	"runtime"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"golang.org/x/term"
)

// ReadPassphrase prompts for a passphrase without echoing input.
// It reads from stdin when stdin is a terminal and from the controlling
// terminal otherwise. The returned string is exactly what was typed,
// without the line terminator. Cancelling ctx abandons the read and
// restores the terminal.
func ReadPassphrase(ctx context.Context, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		return readHidden(ctx, fd, prompt)
	}
	return ReadPassphraseFromTTY(ctx, prompt)
}

// ReadPassphraseFromTTY prompts for a passphrase on /dev/tty (or CON on Windows).
// This is useful when stdin is being used for other input.
func ReadPassphraseFromTTY(ctx context.Context, prompt string) (string, error) {
	ttyPath := ttyPath()

	tty, err := os.Open(ttyPath)
	if err != nil {
		return "", fmt.Errorf("%w: cannot open %s: %v", verrors.ErrNotTerminal, ttyPath, err)
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("%w: %s is not a terminal", verrors.ErrNotTerminal, ttyPath)
	}

	return readHidden(ctx, fd, prompt)
}

type hiddenInput struct {
	secret []byte
	err    error
}

func readHidden(ctx context.Context, fd int, prompt string) (string, error) {
	state, err := term.GetState(fd)
	if err != nil {
		return "", fmt.Errorf("%w: %v", verrors.ErrNotTerminal, err)
	}

	fmt.Fprint(os.Stderr, prompt)

	done := make(chan hiddenInput, 1)
	go func() {
		secret, err := term.ReadPassword(fd)
		done <- hiddenInput{secret: secret, err: err}
	}()

	select {
	case in := <-done:
		fmt.Fprintln(os.Stderr) // Add newline after hidden input
		if in.err != nil {
			return "", fmt.Errorf("failed to read passphrase: %w", in.err)
		}
		return string(in.secret), nil
	case <-ctx.Done():
		// ReadPassword is still blocked with echo off.
		_ = term.Restore(fd, state)
		fmt.Fprintln(os.Stderr)
		return "", ctx.Err()
	}
}

func ttyPath() string {
	if runtime.GOOS == "windows" {
		return "CON"
	}
	return "/dev/tty"
}
