// Package utils provides shared helpers for veil.
//
// # Terminal Utilities
//
//   - ReadPassphrase: hidden input from stdin, or /dev/tty when stdin is not a terminal
//   - ReadPassphraseFromTTY: hidden input from the controlling terminal
//
// # Filesystem Utilities
//
//   - Lexists: existence check that does not follow a final symlink
//   - CopyFile: exclusive, private (0600) copy of a file
package utils
