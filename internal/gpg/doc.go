// Package gpg encrypts and decrypts files with the GnuPG command-line tool
// in symmetric (passphrase-only) mode.
//
// The passphrase is written to gpg's standard input and selected with
// --passphrase-fd 0. It never appears in gpg's argument list or
// environment, so it cannot leak through process listings.
//
//	c := gpg.New("gpg", tools.ExecRunner{})
//	if err := c.Decrypt(ctx, "notes.gpg", "/tmp/veil-edit-1/edit", pass); err != nil {
//	    // wrong passphrase, corrupt file or missing gpg
//	}
//
// Both operations run in batch mode and overwrite the destination. Errors
// wrap errors.ErrEncryptFailed or errors.ErrDecryptFailed and carry gpg's
// own diagnostics.
package gpg
