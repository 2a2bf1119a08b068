// Package prompt asks the user for the passphrase and for permission to
// overwrite the encrypted file.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/PolarWolf314/veil/internal/ui"
	"github.com/PolarWolf314/veil/internal/utils"
)

const (
	passphrasePrompt = "Password: "
	repeatPrompt     = "Repeat password: "
)

// SecretReader reads one line of hidden input after showing prompt. It
// returns ctx.Err() if ctx is done first.
type SecretReader func(ctx context.Context, prompt string) (string, error)

// Prompter asks questions on a line-oriented stream and collects secrets
// through a separate hidden-input reader.
type Prompter struct {
	in         *bufio.Reader
	out        io.Writer
	readSecret SecretReader
}

// New returns a Prompter. A nil readSecret uses the terminal.
func New(in io.Reader, out io.Writer, readSecret SecretReader) *Prompter {
	if readSecret == nil {
		readSecret = utils.ReadPassphrase
	}
	return &Prompter{
		in:         bufio.NewReader(in),
		out:        out,
		readSecret: readSecret,
	}
}

// Passphrase reads the passphrase. With confirm it is read twice and the
// entries must match exactly.
func (p *Prompter) Passphrase(ctx context.Context, confirm bool) (string, error) {
	passphrase, err := p.readSecret(ctx, passphrasePrompt)
	if err != nil {
		return "", err
	}

	if confirm {
		repeated, err := p.readSecret(ctx, repeatPrompt)
		if err != nil {
			return "", err
		}
		if repeated != passphrase {
			return "", verrors.ErrPassphraseMismatch
		}
	}

	return passphrase, nil
}

// ConfirmOverwrite asks whether path should be overwritten until the
// answer is exactly "y" or "n". It stops waiting when ctx is done.
func (p *Prompter) ConfirmOverwrite(ctx context.Context, path string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "Overwrite %s? [y/n] ", path)

		answer, err := p.readLineContext(ctx)
		if err != nil {
			return false, err
		}

		switch answer {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		fmt.Fprintf(p.out, "Please answer %s or %s\n", ui.Highlight.Sprint("y"), ui.Highlight.Sprint("n"))
	}
}

type answerLine struct {
	text string
	err  error
}

// readLineContext is readLine that gives up when ctx is done. The pending
// read is abandoned, so the Prompter must not be used afterwards.
func (p *Prompter) readLineContext(ctx context.Context) (string, error) {
	done := make(chan answerLine, 1)
	go func() {
		text, err := p.readLine()
		done <- answerLine{text: text, err: err}
	}()

	select {
	case line := <-done:
		return line.text, line.err
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return "", ctx.Err()
	}
}

// readLine returns the next line without its terminator. A final line
// without a terminator is still returned.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", verrors.ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
