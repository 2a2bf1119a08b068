// Package errors provides typed error values for veil.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. The cmd
// layer relies on this to decide what to print, and tests rely on it to
// assert the failure mode without depending on gpg's wording.
//
// # Error Categories
//
// Errors are grouped the way failures surface to the user:
//
//   - Usage errors: bad invocation (ErrAlreadyExists, ErrInvalidOptions)
//   - Authentication errors: wrong or mistyped secret (ErrDecryptFailed,
//     ErrPassphraseMismatch)
//   - Input errors: no usable terminal or input (ErrNotTerminal, ErrNoInput)
//   - Tool errors: an external program is missing or failed
//     (ErrToolNotFound, ErrEncryptFailed, ErrEditorFailed, ErrDiffFailed)
//   - Comparator errors: content equality could not be decided
//     (ErrCompareFailed)
//
// # Usage
//
// Wrap sentinels with the detail that identifies the failing resource:
//
//	return fmt.Errorf("%w: %s", errors.ErrAlreadyExists, dest)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, verrors.ErrPassphraseMismatch) {
//	    // nothing was written, safe to retry by hand
//	}
package errors
