// Package workflows provides the orchestration behind the veil command.
//
// Workflows sequence the external collaborators (the encryption program,
// the editor and the diff viewer) and own the temporary files in between.
// They are independent of CLI concerns like flag parsing, spinners and
// output formatting; the cmd package builds the options, calls the
// workflow and prints the result.
//
// # Available Workflows
//
//   - MakeNewVeil: creates a fresh encrypted file with empty content
//   - Edit: decrypt, edit, compare, diff, confirm and re-encrypt
//
// # Collaborators
//
// Workflows depend on small interfaces rather than concrete packages:
//
//   - Cipher: encrypts and decrypts files (internal/gpg in production)
//   - Prompter: asks for the passphrase and the overwrite decision
//     (internal/prompt in production)
//   - tools.Runner: starts the editor and the diff viewer
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Any
// failure after the encrypted file was decrypted is returned as a
// *PreservedError naming the plaintext working copy, which is left on disk
// so unsaved edits are never lost:
//
//	result, err := workflows.Edit(ctx, opts)
//	var preserved *workflows.PreservedError
//	if errors.As(err, &preserved) {
//	    fmt.Fprintln(os.Stderr, "Preserved the file being edited:", preserved.Path)
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first
// parameter and pass it to every external program they start.
package workflows
