package errors

import "errors"

// Usage errors indicate the tool was invoked in a way it cannot honour.
var (
	// ErrAlreadyExists indicates --new was given for a path that already exists.
	ErrAlreadyExists = errors.New("file already exists")

	// ErrInvalidOptions indicates the resolved configuration is incomplete.
	ErrInvalidOptions = errors.New("invalid options")
)

// Authentication errors indicate the secret was wrong or mistyped.
var (
	// ErrPassphraseMismatch indicates the confirmation passphrase differed from the first entry.
	ErrPassphraseMismatch = errors.New("passwords do not match")

	// ErrDecryptFailed indicates the encrypted file could not be decrypted.
	ErrDecryptFailed = errors.New("failed to decrypt file")
)

// Input errors indicate interactive input could not be obtained.
var (
	// ErrNotTerminal indicates no terminal is available for hidden input.
	ErrNotTerminal = errors.New("no terminal available for passphrase input")

	// ErrNoInput indicates input ended before an answer was given.
	ErrNoInput = errors.New("input ended before an answer was given")
)

// Tool errors indicate an external program is missing or failed.
var (
	// ErrToolNotFound indicates an external program could not be located.
	ErrToolNotFound = errors.New("external program not found")

	// ErrEncryptFailed indicates the encryption program failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrEditorFailed indicates the editor exited unsuccessfully.
	ErrEditorFailed = errors.New("editor failed")

	// ErrDiffFailed indicates the diff viewer exited unsuccessfully.
	ErrDiffFailed = errors.New("diff viewer failed")
)

// Comparator errors indicate content equality could not be decided.
var (
	// ErrCompareFailed indicates the comparison was neither "same" nor "different".
	ErrCompareFailed = errors.New("could not compare files")
)
