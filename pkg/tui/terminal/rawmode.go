// ABOUTME: RawMode owns the saved line discipline of one tty file descriptor
// ABOUTME: Enable is idempotent; Disable without a matching Enable is a no-op

package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/mauromedda/promptline/internal/log"
)

// RawMode switches a tty between cooked mode and a byte-at-a-time,
// unechoed mode. Carriage return translation and output processing are
// left alone, so Enter still arrives as '\n' and '\n' still moves to
// column one.
type RawMode struct {
	mu    sync.Mutex
	fd    int
	out   io.Writer
	saved *savedState
}

// NewRawMode returns a controller for fd. Pending output on out (when it
// can Flush or Sync) is pushed before each switch; out may be nil.
func NewRawMode(fd int, out io.Writer) *RawMode {
	return &RawMode{fd: fd, out: out}
}

// Enable saves the current attributes (once) and enters raw mode.
func (m *RawMode) Enable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.flush()
	if m.saved != nil {
		return nil
	}
	state, err := makeRaw(m.fd)
	if err != nil {
		log.Debug("terminal: enable raw mode on fd %d: %v", m.fd, err)
		return fmt.Errorf("entering raw mode: %w", err)
	}
	m.saved = state
	return nil
}

// Disable restores the attributes saved by Enable.
func (m *RawMode) Disable() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.saved == nil {
		return nil
	}
	m.flush()
	state := m.saved
	m.saved = nil
	if err := restore(m.fd, state); err != nil {
		log.Debug("terminal: restore fd %d: %v", m.fd, err)
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	return nil
}

// Active reports whether raw mode is currently enabled.
func (m *RawMode) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saved != nil
}

func (m *RawMode) flush() {
	switch w := m.out.(type) {
	case interface{ Flush() error }:
		_ = w.Flush()
	case interface{ Sync() error }:
		// Sync on a tty commonly fails with EINVAL; the data is already written.
		_ = w.Sync()
	}
}
