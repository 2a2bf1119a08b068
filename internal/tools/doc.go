// Package tools runs the external programs veil orchestrates.
//
// Every program (gpg, the editor, the diff viewer) is started through a
// Runner so that workflows can be exercised in tests without the real
// binaries. Runs are blocking: Run returns only once the child has exited.
//
// # Exit Status
//
// A child that ran and exited non-zero yields an error for which ExitCode
// reports the status. A program that could not be found yields an error
// wrapping errors.ErrToolNotFound.
package tools
