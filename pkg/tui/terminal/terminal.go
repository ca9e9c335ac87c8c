// ABOUTME: Defines the Terminal interface for raw mode, input, output, and cursor queries
// ABOUTME: Implementations target the real process tty or an in-memory fake for tests

package terminal

import "errors"

// ErrCursorUnsupported is returned by CursorPosition when the terminal
// cannot answer a position query (not a tty, or a test fake).
var ErrCursorUnsupported = errors.New("cursor position query unsupported")

// Terminal abstracts the byte-level terminal a line reader drives:
// raw mode toggling, blocking input, output, size, and cursor queries.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Size() (width, height int, err error)
	// CursorPosition reports the 1-based row and column of the cursor.
	CursorPosition() (row, col int, err error)
}
