package gpg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/PolarWolf314/veil/internal/tools"
)

// Client runs a gpg binary.
type Client struct {
	binary string
	runner tools.Runner
}

// New returns a Client that runs binary through runner.
func New(binary string, runner tools.Runner) *Client {
	return &Client{binary: binary, runner: runner}
}

// Encrypt writes src encrypted with passphrase to dst, replacing dst if it exists.
func (c *Client) Encrypt(ctx context.Context, src, dst, passphrase string) error {
	args := append(baseArgs(), "--symmetric", "--output", dst, src)
	if err := c.run(ctx, args, passphrase); err != nil {
		return fmt.Errorf("%w: %s: %w", verrors.ErrEncryptFailed, src, err)
	}
	return nil
}

// Decrypt writes the plaintext of src, encrypted with passphrase, to dst.
func (c *Client) Decrypt(ctx context.Context, src, dst, passphrase string) error {
	args := append(baseArgs(), "--decrypt", "--output", dst, src)
	if err := c.run(ctx, args, passphrase); err != nil {
		return fmt.Errorf("%w: %s: %w", verrors.ErrDecryptFailed, src, err)
	}
	return nil
}

func baseArgs() []string {
	return []string{
		"--batch",
		"--yes",
		"--quiet",
		"--pinentry-mode", "loopback",
		"--passphrase-fd", "0",
	}
}

func (c *Client) run(ctx context.Context, args []string, passphrase string) error {
	var stderr bytes.Buffer
	err := c.runner.Run(ctx, tools.Command{
		Name:   c.binary,
		Args:   args,
		Stdin:  strings.NewReader(passphrase),
		Stderr: &stderr,
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, verrors.ErrToolNotFound) {
		return err
	}

	if msg := strings.TrimSpace(stderr.String()); msg != "" {
		return fmt.Errorf("%w: %s", err, msg)
	}
	return err
}
