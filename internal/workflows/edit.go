package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/veil/internal/compare"
	"github.com/PolarWolf314/veil/internal/configs"
	verrors "github.com/PolarWolf314/veil/internal/errors"
	logger "github.com/PolarWolf314/veil/internal/logging"
	"github.com/PolarWolf314/veil/internal/tools"
	"github.com/PolarWolf314/veil/internal/utils"
)

// Cipher encrypts and decrypts whole files with a passphrase.
type Cipher interface {
	Encrypt(ctx context.Context, src, dst, passphrase string) error
	Decrypt(ctx context.Context, src, dst, passphrase string) error
}

// Prompter collects the user's decisions. Both calls return ctx.Err()
// when ctx is done while waiting.
type Prompter interface {
	Passphrase(ctx context.Context, confirm bool) (string, error)
	ConfirmOverwrite(ctx context.Context, path string) (bool, error)
}

// EditOptions configures the edit workflow.
type EditOptions struct {
	// Config is the resolved invocation.
	Config configs.Config

	Cipher   Cipher
	Prompter Prompter

	// Runner starts the editor and the diff viewer.
	Runner tools.Runner

	Logger logger.Logger
}

// Outcome is how a successful edit session ended.
type Outcome int

const (
	// NotChanged means the editor left the content byte-for-byte identical.
	NotChanged Outcome = iota + 1
	// Overwritten means the edited content was encrypted over the file.
	Overwritten
	// Discarded means the user declined to keep the changes.
	Discarded
)

// Message renders the status line reported for file.
func (o Outcome) Message(file string) string {
	switch o {
	case NotChanged:
		return fmt.Sprintf("%s not changed.", file)
	case Overwritten:
		return fmt.Sprintf("%s overwritten.", file)
	case Discarded:
		return fmt.Sprintf("Discarded changes to %s.", file)
	default:
		return fmt.Sprintf("%s: unknown outcome.", file)
	}
}

// EditResult contains the outcome of an edit session.
type EditResult struct {
	// File is the encrypted file that was edited.
	File string

	Outcome Outcome
}

// PreservedError reports a failure that happened while a decrypted working
// copy existed. The working copy is left at Path.
type PreservedError struct {
	Path string
	Err  error
}

func (e *PreservedError) Error() string {
	return e.Err.Error()
}

func (e *PreservedError) Unwrap() error {
	return e.Err
}

// Edit runs one edit session on the encrypted file named by opts.Config.
//
// It reads the passphrase (twice when creating), optionally creates the
// file with MakeNewVeil, decrypts it into a private working copy, snapshots
// that copy, runs the editor and compares the result with the snapshot.
// Changed content is shown with the diff viewer and only encrypted back
// after the user confirms.
//
// The snapshot is always removed. The working copy is removed on success
// and kept on any failure after decryption, reported via *PreservedError.
// Cancelling ctx (an interrupt) is such a failure.
func Edit(ctx context.Context, opts EditOptions) (*EditResult, error) {
	cfg := opts.Config
	log := opts.Logger

	if err := cfg.Validate(); err != nil {
		return nil, log.ErrorfAndReturn("checking options: %w", err)
	}

	passphrase, err := opts.Prompter.Passphrase(ctx, cfg.New)
	if err != nil {
		return nil, err
	}

	if cfg.New {
		log.Debugf("Creating new encrypted file at %s", cfg.File)
		if err := MakeNewVeil(ctx, opts.Cipher, cfg.File, passphrase); err != nil {
			return nil, err
		}
		log.Infof("Created %s", cfg.File)
	}

	editDir, err := os.MkdirTemp("", "veil-edit-*")
	if err != nil {
		return nil, fmt.Errorf("creating working directory: %w", err)
	}
	editFile := filepath.Join(editDir, "edit")

	log.Debugf("Decrypting %s to %s", cfg.File, editFile)
	if err := opts.Cipher.Decrypt(ctx, cfg.File, editFile, passphrase); err != nil {
		// Nothing was decrypted, so there is nothing to keep.
		_ = os.RemoveAll(editDir)
		return nil, err
	}

	outcome, err := editDecrypted(ctx, opts, passphrase, editFile)
	if err != nil {
		log.Debugf("Keeping working copy %s after failure", editFile)
		return nil, &PreservedError{Path: editFile, Err: err}
	}

	if err := os.RemoveAll(editDir); err != nil {
		log.Warnf("Failed to remove working directory %s: %v", editDir, err)
	}

	return &EditResult{File: cfg.File, Outcome: outcome}, nil
}

// editDecrypted runs the part of the session during which the decrypted
// working copy at editFile exists.
func editDecrypted(ctx context.Context, opts EditOptions, passphrase, editFile string) (Outcome, error) {
	cfg := opts.Config
	log := opts.Logger

	origDir, err := os.MkdirTemp("", "veil-orig-*")
	if err != nil {
		return 0, fmt.Errorf("creating snapshot directory: %w", err)
	}
	defer os.RemoveAll(origDir)

	origFile := filepath.Join(origDir, "orig")
	if err := utils.CopyFile(editFile, origFile); err != nil {
		return 0, fmt.Errorf("snapshotting decrypted file: %w", err)
	}

	log.Infof("Running editor %s", cfg.Editor)
	if err := opts.Runner.Run(ctx, tools.Interactive(cfg.Editor, editFile)); err != nil {
		return 0, fmt.Errorf("%w: %s: %w", verrors.ErrEditorFailed, cfg.Editor, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("interrupted after editing: %w", err)
	}

	result, err := compare.Files(origFile, editFile)
	if err != nil {
		return 0, err
	}
	log.Debugf("Comparison result: %s", result)

	switch result {
	case compare.Same:
		return NotChanged, nil
	case compare.Different:
	default:
		return 0, fmt.Errorf("%w: unexpected result %s", verrors.ErrCompareFailed, result)
	}

	if err := showDiff(ctx, opts, origFile, editFile); err != nil {
		return 0, err
	}

	overwrite, err := opts.Prompter.ConfirmOverwrite(ctx, cfg.File)
	if err != nil {
		return 0, err
	}
	if !overwrite {
		return Discarded, nil
	}

	log.Debugf("Encrypting %s over %s", editFile, cfg.File)
	if err := opts.Cipher.Encrypt(ctx, editFile, cfg.File, passphrase); err != nil {
		return 0, err
	}

	return Overwritten, nil
}

// showDiff runs the diff viewer. Exit status 1 is the usual "differences
// found" signal and is accepted; any other failure is fatal.
func showDiff(ctx context.Context, opts EditOptions, origFile, editFile string) error {
	diff := opts.Config.Diff
	opts.Logger.Infof("Running diff viewer %s", diff)

	err := opts.Runner.Run(ctx, tools.Interactive(diff, origFile, editFile))
	if err == nil {
		return nil
	}
	if code, ok := tools.ExitCode(err); ok && code == 1 {
		opts.Logger.Debugf("Diff viewer %s reported differences", diff)
		return nil
	}

	return fmt.Errorf("%w: %s: %w", verrors.ErrDiffFailed, diff, err)
}
