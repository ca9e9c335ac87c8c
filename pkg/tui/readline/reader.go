// ABOUTME: InputReader turns key events into edits on the line buffer for one attempt
// ABOUTME: The basic reader echoes keys, ignores Tab, and submits on Enter

package readline

import (
	"github.com/mauromedda/promptline/pkg/tui/editbuf"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
	"github.com/mauromedda/promptline/pkg/tui/theme"
)

// Action tells the engine what to do after a key was handled.
type Action int

const (
	// Continue keeps reading keys.
	Continue Action = iota
	// Submit ends the attempt with the buffer content.
	Submit
)

// InputReader owns the buffer for one attempt at reading a line.
type InputReader interface {
	// Start draws the initial state, such as a suggested default.
	Start()
	// Handle applies k to the buffer.
	Handle(k key.Key) Action
	// AcceptsDefault reports whether a submitted line stands for the
	// default value rather than for its own text.
	AcceptsDefault() bool
}

// Session is what an attempt needs to build its InputReader.
type Session struct {
	Buffer  *editbuf.Buffer
	Palette theme.Palette

	// Retry is set on every attempt after the first.
	Retry bool

	// Fuzzy enables fuzzy completion in option readers.
	Fuzzy bool

	// Default is the formatted default value when HasDefault is set.
	Default    string
	HasDefault bool
}

// Ghost returns the default as suggestion text. It is empty when there is
// no default and on retries.
func (s Session) Ghost() style.Text {
	if !s.HasDefault || s.Retry {
		return style.Text{}
	}
	return style.Styled(s.Default, s.Palette.Ghost)
}

type basicReader struct {
	buf *editbuf.Buffer
}

// NewBasicReader returns a reader with plain line editing.
func NewBasicReader(buf *editbuf.Buffer) InputReader {
	return &basicReader{buf: buf}
}

func (r *basicReader) Start() {}

func (r *basicReader) Handle(k key.Key) Action {
	switch k.Type {
	case key.KeyNewline:
		return Submit
	case key.KeyTab:
	default:
		r.buf.Handle(k)
	}
	return Continue
}

func (r *basicReader) AcceptsDefault() bool { return r.buf.Len() == 0 }
