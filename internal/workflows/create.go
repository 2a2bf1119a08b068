package workflows

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	verrors "github.com/PolarWolf314/veil/internal/errors"
	"github.com/PolarWolf314/veil/internal/utils"
)

// MakeNewVeil creates dest as an encrypted file with empty content.
//
// Returns ErrAlreadyExists if anything, including a dangling symlink, is
// already at dest. The ciphertext is produced next to dest and then linked
// into place, so dest is either absent or complete.
func MakeNewVeil(ctx context.Context, cipher Cipher, dest, passphrase string) error {
	exists, err := utils.Lexists(dest)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", verrors.ErrAlreadyExists, dest)
	}

	scratchDir, err := os.MkdirTemp("", "veil-new-*")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(scratchDir)

	empty := filepath.Join(scratchDir, "empty")
	f, err := os.OpenFile(empty, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("creating empty file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("creating empty file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".veil-*")
	if err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("creating temporary output: %w", err)
	}
	defer os.Remove(tmpPath)

	if err := cipher.Encrypt(ctx, empty, tmpPath, passphrase); err != nil {
		return err
	}

	return publish(tmpPath, dest)
}

// publish moves the finished file at tmp to dest without replacing
// anything that appeared at dest in the meantime.
func publish(tmp, dest string) error {
	err := os.Link(tmp, dest)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", verrors.ErrAlreadyExists, dest)
	}

	// Some filesystems have no hard links.
	exists, lerr := utils.Lexists(dest)
	if lerr != nil {
		return lerr
	}
	if exists {
		return fmt.Errorf("%w: %s", verrors.ErrAlreadyExists, dest)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return fmt.Errorf("moving encrypted file into place: %w", err)
	}
	return nil
}
