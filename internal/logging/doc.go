// Package logger provides leveled, coloured logging for veil.
//
// The logger supports two verbosity levels controlled by command-line
// flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown, on stderr.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Decrypting %s", path)
//
// The root command builds the logger in PersistentPreRun and hands it to
// the workflows through their options.
//
// The passphrase must never be passed to any of these methods.
package logger
