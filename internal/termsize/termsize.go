// Package termsize reports the dimensions of the controlling terminal. It is
// only used to lay out help and list output.
package termsize

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	DefaultColumns = 80
	DefaultRows    = 25
)

// Columns returns $COLUMNS when it holds a positive number, the width of the
// terminal on stdout otherwise, or DefaultColumns.
func Columns() int {
	if n, ok := fromEnv("COLUMNS"); ok {
		return n
	}
	if width, _, ok := size(); ok {
		return width
	}
	return DefaultColumns
}

// Rows returns $LINES, the terminal height or DefaultRows.
func Rows() int {
	if n, ok := fromEnv("LINES"); ok {
		return n
	}
	if _, height, ok := size(); ok {
		return height
	}
	return DefaultRows
}

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func size() (int, int, bool) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

func fromEnv(name string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(name)))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
