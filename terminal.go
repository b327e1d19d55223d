package tablefit

import (
	"io"

	"golang.org/x/term"
)

// WidthFunc reports the display width in columns. It returns false when the
// width is unknown, for example when output is redirected to a file, in which
// case tables are not fitted.
type WidthFunc func() (int, bool)

type fdWriter interface {
	Fd() uintptr
}

// TerminalWidth returns a WidthFunc reporting the width of the terminal w
// writes to. The width is unknown when w is not a terminal.
func TerminalWidth(w io.Writer) WidthFunc {
	return func() (int, bool) {
		f, ok := w.(fdWriter)
		if !ok {
			return 0, false
		}
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			return 0, false
		}
		width, _, err := term.GetSize(fd)
		if err != nil || width <= 0 {
			return 0, false
		}
		return width, true
	}
}

// FixedWidth returns a WidthFunc that always reports n. A non-positive n is
// reported as unknown.
func FixedWidth(n int) WidthFunc {
	return func() (int, bool) {
		return n, n > 0
	}
}
