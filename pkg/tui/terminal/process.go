// ABOUTME: ProcessTerminal implements Terminal over os.Stdin and os.Stdout
// ABOUTME: Raw mode through RawMode on stdin; size and tty detection via golang.org/x/term

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// ProcessTerminal is the real terminal of the running process.
type ProcessTerminal struct {
	in  *os.File
	out *os.File
	raw *RawMode
}

// NewProcessTerminal returns a ProcessTerminal on stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return &ProcessTerminal{
		in:  os.Stdin,
		out: os.Stdout,
		raw: NewRawMode(int(os.Stdin.Fd()), os.Stdout),
	}
}

// EnterRawMode switches stdin to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	return t.raw.Enable()
}

// ExitRawMode restores stdin to its previous state.
func (t *ProcessTerminal) ExitRawMode() error {
	return t.raw.Disable()
}

// Read reads input bytes from stdin.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to stdout.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to stdout: %w", err)
	}
	return n, nil
}

// Size returns the current terminal dimensions.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// IsTerminal reports whether both stdin and stdout are ttys.
func (t *ProcessTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// CursorPosition asks the terminal where the cursor is. Raw mode is
// entered for the duration of the query when it is not already active,
// since a cooked tty would hold the report until the user hits Enter.
// Keys typed between the query and the report are lost.
func (t *ProcessTerminal) CursorPosition() (row, col int, err error) {
	if !t.IsTerminal() {
		return 0, 0, ErrCursorUnsupported
	}
	if !t.raw.Active() {
		if err := t.raw.Enable(); err != nil {
			return 0, 0, err
		}
		defer func() { _ = t.raw.Disable() }()
	}
	if _, err := t.Write([]byte(QueryCursor)); err != nil {
		return 0, 0, err
	}
	return ReadCursorReport(t.in)
}
