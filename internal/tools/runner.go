package tools

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"

	verrors "github.com/PolarWolf314/veil/internal/errors"
)

// Command describes one invocation of an external program.
type Command struct {
	Name string
	Args []string

	// Nil streams are connected to the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Foreground programs own the terminal. They are not killed when the
	// context is cancelled; the user stops them, and the cancellation is
	// reported once they exit.
	Foreground bool
}

// Interactive returns a Command wired to the terminal, for programs the
// user drives directly such as editors and diff viewers.
func Interactive(name string, args ...string) Command {
	return Command{
		Name:       name,
		Args:       args,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Foreground: true,
	}
}

// Runner starts a Command and waits for it to exit.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner. Once ctx is done the result wraps ctx.Err(),
// whatever the child's exit status.
func (ExecRunner) Run(ctx context.Context, c Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var cmd *exec.Cmd
	if c.Foreground {
		// #nosec G204 -- program names come from the user's own flags and environment
		cmd = exec.Command(c.Name, c.Args...)
	} else {
		// #nosec G204 -- program names come from the user's own flags and environment
		cmd = exec.CommandContext(ctx, c.Name, c.Args...)
	}
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%s interrupted: %w", c.Name, ctxErr)
	}
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", verrors.ErrToolNotFound, c.Name)
		}
		return err
	}
	return nil
}

// ExitCode reports the exit status carried by err, if the child ran and
// exited normally. It returns false for launch failures and for children
// killed by a signal.
func ExitCode(err error) (int, bool) {
	var exitErr interface{ ExitCode() int }
	if !errors.As(err, &exitErr) {
		return 0, false
	}
	code := exitErr.ExitCode()
	if code < 0 {
		return 0, false
	}
	return code, true
}
