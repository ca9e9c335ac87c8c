// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY
// ABOUTME: Replays scripted input, captures output, and tracks raw-mode transitions

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. Input is whatever was
// passed to Feed; once it is consumed Read reports io.EOF, which is how a
// closed stdin looks to a reader.
type VirtualTerminal struct {
	mu         sync.Mutex
	in         bytes.Buffer
	out        bytes.Buffer
	width      int
	height     int
	rawMode    bool
	enterCount int
	exitCount  int

	cursorSet bool
	row, col  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnterRawMode records a raw-mode entry. Nested entries are counted but
// leave the mode unchanged.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Read consumes scripted input.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.in.Read(p)
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n, err := v.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// CursorPosition returns the position set by SetCursorPosition, or
// ErrCursorUnsupported when none was set.
func (v *VirtualTerminal) CursorPosition() (row, col int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.cursorSet {
		return 0, 0, ErrCursorUnsupported
	}
	return v.row, v.col, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed appends s to the pending input.
func (v *VirtualTerminal) Feed(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in.WriteString(s)
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the output buffer.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSize updates the terminal dimensions.
func (v *VirtualTerminal) SetSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.width = width
	v.height = height
}

// SetCursorPosition makes CursorPosition answer with (row, col).
func (v *VirtualTerminal) SetCursorPosition(row, col int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.cursorSet = true
	v.row, v.col = row, col
}
