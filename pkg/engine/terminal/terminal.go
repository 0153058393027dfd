// Package terminal wraps the few terminal queries the text front-end needs.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// GetSize returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func GetSize(f *os.File) (width, height int) {
	if !IsTerminal(f) {
		return DefaultWidth, DefaultHeight
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the terminal width of f.
func GetWidth(f *os.File) int {
	width, _ := GetSize(f)
	return width
}

// Clear clears the screen and homes the cursor
func Clear(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}
