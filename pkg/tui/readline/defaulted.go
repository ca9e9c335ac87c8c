// ABOUTME: Reader that shows the default value as dim ghost text after the cursor
// ABOUTME: Typing matching scalars confirms the ghost, a mismatch erases it, Tab/Right accept it

package readline

import (
	"strings"

	"github.com/mauromedda/promptline/pkg/tui/editbuf"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

// defaultedReader keeps the ghost inside the buffer. The last pending
// scalars of the buffer are the part of the ghost not yet confirmed.
type defaultedReader struct {
	buf     *editbuf.Buffer
	ghost   style.Text
	value   string
	size    int
	pending int
}

// NewDefaultedReader returns a reader suggesting ghost as the line.
func NewDefaultedReader(buf *editbuf.Buffer, ghost style.Text) InputReader {
	return &defaultedReader{
		buf:   buf,
		ghost: ghost,
		value: ghost.Raw(),
		size:  ghost.RawLen(),
	}
}

func (r *defaultedReader) Start() {
	r.pending = r.buf.InsertText(r.ghost)
	r.buf.Move(editbuf.Left, r.pending)
}

func (r *defaultedReader) Handle(k key.Key) Action {
	switch k.Type {
	case key.KeyNewline:
		return Submit
	case key.KeyRight:
		r.right()
	case key.KeyTab:
		r.accept()
	case key.KeyDelete:
		r.delete()
	case key.KeyChar:
		r.char(k.Rune)
	default:
		r.buf.Handle(k)
	}
	return Continue
}

func (r *defaultedReader) AcceptsDefault() bool {
	return r.pending == r.size && r.buf.Len() == r.size
}

func (r *defaultedReader) boundary() int { return r.buf.Len() - r.pending }

// remainder returns the ghost text past what precedes the cursor.
func (r *defaultedReader) remainder() (string, bool) {
	before := r.buf.BeforeCursor()
	if !strings.HasPrefix(r.value, before) {
		return "", false
	}
	return r.value[len(before):], true
}

// right accepts the ghost when the cursor sits on it, leaving the cursor
// one scalar past the boundary as a plain Right would.
func (r *defaultedReader) right() {
	if r.pending == 0 || r.buf.Cursor() < r.boundary() {
		r.buf.Move(editbuf.Right, 1)
		return
	}
	rest, ok := r.remainder()
	if !ok || rest == "" {
		r.buf.Move(editbuf.Right, 1)
		return
	}
	r.buf.WriteString(rest)
	r.pending = 0
	r.buf.Move(editbuf.Left, len([]rune(rest))-1)
}

func (r *defaultedReader) accept() {
	if r.pending == 0 {
		return
	}
	if rest, ok := r.remainder(); ok {
		r.buf.WriteString(rest)
		r.pending = 0
	}
}

// delete drops the unconfirmed ghost before removing a scalar.
func (r *defaultedReader) delete() {
	if r.buf.Cursor() == 0 {
		return
	}
	if r.pending > 0 {
		shift := r.boundary() - r.buf.Cursor()
		r.buf.Move(editbuf.Right, shift)
		r.buf.DeleteAfterCursor(r.pending)
		r.buf.Move(editbuf.Left, shift)
		r.pending = 0
	}
	r.buf.DeleteBeforeCursor(1)
}

func (r *defaultedReader) char(c rune) {
	if r.pending == 0 || r.buf.Cursor() != r.boundary() {
		r.buf.InsertRune(c)
		return
	}
	if cur, ok := r.buf.RuneAtCursor(); ok && cur == c {
		r.pending--
		r.buf.WriteRune(c)
		return
	}
	r.buf.EraseToEndOfLine()
	r.pending = 0
	r.buf.WriteRune(c)
}
