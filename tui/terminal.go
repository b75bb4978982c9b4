package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Width bounds for table rendering.
const (
	DefaultTerminalWidth = 80
	MinTerminalWidth     = 60
	MaxTerminalWidth     = 200
)

// TerminalWidth returns the width of the terminal behind w, clamped to
// [MinTerminalWidth, MaxTerminalWidth]. Writers that are not terminals, such
// as pipes and buffers, get DefaultTerminalWidth.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return DefaultTerminalWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return min(max(width, MinTerminalWidth), MaxTerminalWidth)
}

// IsWriterTerminal reports whether w writes to a terminal.
func IsWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
