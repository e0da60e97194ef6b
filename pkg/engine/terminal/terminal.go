// Package terminal queries the size and capabilities of the attached terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ClearScreen moves the cursor home and clears the display
const ClearScreen = "\033[H\033[2J"

// SizeOf returns the width and height of the terminal behind f.
// Falls back to defaults if the size cannot be determined.
func SizeOf(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal returns true if f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a board of rows x cols cells, each cellWidth
// characters wide, plus extra lines of text fits on a width x height screen.
func Fits(width, height, rows, cols, cellWidth, extra int) bool {
	return cols*cellWidth <= width && rows+extra <= height
}
