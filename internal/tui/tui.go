package tui

import (
	"os"

	"golang.org/x/term"
)

// New returns the huh forms when stdin and stderr are a terminal and noTUI
// is unset, and the plain prompt fallback otherwise.
func New(noTUI bool) UI {
	if noTUI || !IsTerminal() {
		return NewFallbackUI()
	}

	return NewHuhUI()
}

// IsTerminal reports whether anot can hold a form: input on stdin, forms
// drawn on stderr so stdout stays clean for hook output.
func IsTerminal() bool {
	return isTTY(os.Stdin) && isTTY(os.Stderr)
}

func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // fd fits int
}
