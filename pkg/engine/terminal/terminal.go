// Package terminal reports properties of the attached terminal.
package terminal

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to $COLUMNS/$LINES, then to the defaults, when stdout is not a terminal.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && width > 0 && height > 0 {
		return width, height
	}
	return envInt("COLUMNS", DefaultWidth), envInt("LINES", DefaultHeight)
}

// Width returns the current terminal width in columns
func Width() int {
	width, _ := GetSize()
	return width
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func envInt(name string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
