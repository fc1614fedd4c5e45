// Package terminal detects whether wp-proxy is attached to a terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both terminals.
// Prompts are only shown when this holds.
func IsInteractive() bool {
	return Attached(os.Stdin) && Attached(os.Stdout)
}

// Attached reports whether f refers to a terminal. A nil file is not a terminal.
func Attached(f *os.File) bool {
	if f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
