package workflows

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/PolarWolf314/veil/internal/tools"
)

const fakeHeader = "fake-veil:"

// fakeCipher "encrypts" by prefixing the passphrase, so a wrong passphrase
// is detected on decryption like the real thing.
type fakeCipher struct {
	encrypts int
	decrypts int
	failWith error
}

func (c *fakeCipher) Encrypt(_ context.Context, src, dst, passphrase string) error {
	c.encrypts++
	if c.failWith != nil {
		return c.failWith
	}
	plain, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, append([]byte(fakeHeader+passphrase+"\n"), plain...), 0600)
}

func (c *fakeCipher) Decrypt(_ context.Context, src, dst, passphrase string) error {
	c.decrypts++
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", verrors.ErrDecryptFailed, err)
	}
	header := []byte(fakeHeader + passphrase + "\n")
	if !bytes.HasPrefix(data, header) {
		return fmt.Errorf("%w: bad passphrase", verrors.ErrDecryptFailed)
	}
	return os.WriteFile(dst, data[len(header):], 0600)
}

// fakePrompter returns canned answers.
type fakePrompter struct {
	passphrase    string
	passErr       error
	answer        bool
	confirmErr    error
	confirmedWith []bool
	asked         []string
}

func (p *fakePrompter) Passphrase(_ context.Context, confirm bool) (string, error) {
	p.confirmedWith = append(p.confirmedWith, confirm)
	return p.passphrase, p.passErr
}

func (p *fakePrompter) ConfirmOverwrite(_ context.Context, path string) (bool, error) {
	p.asked = append(p.asked, path)
	return p.answer, p.confirmErr
}

// fakeRunner dispatches commands by program name. Like ExecRunner it
// refuses to start anything once ctx is done.
type fakeRunner struct {
	handlers map[string]func(c tools.Command) error
	commands []tools.Command
}

func (r *fakeRunner) Run(ctx context.Context, c tools.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.commands = append(r.commands, c)
	if h, ok := r.handlers[c.Name]; ok {
		return h(c)
	}
	return nil
}

func (r *fakeRunner) ran(name string) []tools.Command {
	var out []tools.Command
	for _, c := range r.commands {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// exitStatus mimics *exec.ExitError.
type exitStatus int

func (e exitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }
func (e exitStatus) ExitCode() int { return int(e) }

// writeWith returns an editor handler that replaces the file's content.
func writeWith(content string) func(c tools.Command) error {
	return func(c tools.Command) error {
		return os.WriteFile(c.Args[0], []byte(content), 0600)
	}
}

// isolateTempDir points os.TempDir at a fresh directory so leftovers can be inspected.
func isolateTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TMPDIR", dir)
	return dir
}

// tempEntries lists the names left in dir.
func tempEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

// writeVeil creates an encrypted file holding content under passphrase.
func writeVeil(t *testing.T, path, passphrase, content string) {
	t.Helper()
	data := fakeHeader + passphrase + "\n" + content
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatalf("Failed to create encrypted file: %v", err)
	}
}

// readVeil decrypts path with passphrase using the fake scheme.
func readVeil(t *testing.T, path, passphrase string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read encrypted file: %v", err)
	}
	header := fakeHeader + passphrase + "\n"
	if !strings.HasPrefix(string(data), header) {
		t.Fatalf("File %s is not encrypted with %q", path, passphrase)
	}
	return strings.TrimPrefix(string(data), header)
}
