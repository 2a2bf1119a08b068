// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by meaning (paths, commands, errors) rather
// than by colour. When colours are available the text is colourised; when
// NO_COLOR is set or the terminal cannot show colours, plain-text
// decorations are used instead.
//
//	ui.Code.Sprint("veil --new notes.gpg")  // Commands
//	ui.Path.Sprint("/tmp/veil-edit-1/edit") // File paths
//	ui.Error.Sprint("Error:")                // Error indicators
//	ui.Highlight.Sprint("y")                 // Expected user input
//
// Without colour, Code gains `backticks` and Highlight gains 'quotes';
// the other formatters are left undecorated.
package ui
