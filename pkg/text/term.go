package text

import (
	"io"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

var cachedColumnCount = -1

// ColumnCount returns the width of the terminal, honouring $COLUMNS.
func ColumnCount() int {
	if cachedColumnCount > 0 {
		return cachedColumnCount
	}
	if count, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil {
		cachedColumnCount = count
		return cachedColumnCount
	}
	if ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ); err == nil {
		cachedColumnCount = int(ws.Col)
		return cachedColumnCount
	}
	return 80
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func OutIsTerminal() bool {
	return IsTerminal(Out)
}

// IsLinuxVT reports whether we run on the linux virtual console which lacks
// some glyphs, like the em dash.
func IsLinuxVT() bool {
	return os.Getenv("TERM") == "linux"
}
