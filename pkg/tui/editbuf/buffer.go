// ABOUTME: Cursor-tracked line buffer whose every mutation is mirrored on the terminal
// ABOUTME: Emits the minimal CSI sequences so the visible line always equals the buffer

package editbuf

import (
	"bufio"
	"io"
	"strings"

	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/mauromedda/promptline/pkg/tui/ansi"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
	"github.com/mauromedda/promptline/pkg/tui/width"
)

// Direction is a horizontal cursor direction.
type Direction int

const (
	Left Direction = iota
	Right
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Buffer holds the scalars typed on the current line and a cursor into
// them. After every method returns, the bytes written to the terminal show
// exactly the buffer content with the terminal cursor at Cursor(). Output
// is flushed at the end of each method.
//
// A Buffer assumes it owns the line from the column where it was created;
// it never looks at what precedes that column.
type Buffer struct {
	out    *bufio.Writer
	runes  *arraylist.List[rune]
	cursor int
	width  width.Func
	render style.Renderer
	err    error
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithWidth sets the per-scalar column width used for cursor arithmetic.
func WithWidth(fn width.Func) Option {
	return func(b *Buffer) {
		if fn != nil {
			b.width = fn
		}
	}
}

// WithRenderer sets how formatted text is rendered.
func WithRenderer(r style.Renderer) Option {
	return func(b *Buffer) { b.render = r }
}

// New returns an empty buffer writing to w. When w is already a
// *bufio.Writer it is used directly so callers can interleave their own
// output with the buffer's.
func New(w io.Writer, opts ...Option) *Buffer {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	b := &Buffer{
		out:   bw,
		runes: arraylist.New[rune](),
		width: width.Heuristic,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Err returns the first write error encountered, if any.
func (b *Buffer) Err() error { return b.err }

// Len returns the number of scalars in the buffer.
func (b *Buffer) Len() int { return b.runes.Size() }

// Cursor returns the cursor position in scalars; 0 is before the first one.
func (b *Buffer) Cursor() int { return b.cursor }

// String returns the buffer content.
func (b *Buffer) String() string { return string(b.runes.Values()) }

// BeforeCursor returns the content left of the cursor.
func (b *Buffer) BeforeCursor() string {
	return string(b.runes.Values()[:b.cursor])
}

// RuneAtCursor returns the scalar under the cursor, if any.
func (b *Buffer) RuneAtCursor() (rune, bool) {
	return b.runes.Get(b.cursor)
}

// Move shifts the cursor n scalars in dir, clamped to the buffer, and
// returns how many scalars it actually moved. Negative n moves the other
// way. The terminal cursor moves by the display width of the scalars
// crossed, in a single sequence.
func (b *Buffer) Move(dir Direction, n int) int {
	if n < 0 {
		return b.Move(dir.Opposite(), -n)
	}
	var cols int
	switch dir {
	case Left:
		n = min(n, b.cursor)
		cols = -b.span(b.cursor-n, b.cursor)
		b.cursor -= n
	case Right:
		n = min(n, b.Len()-b.cursor)
		cols = b.span(b.cursor, b.cursor+n)
		b.cursor += n
	}
	b.emit(ansi.Horizontal(cols))
	return n
}

// InsertRune inserts r at the cursor. At the end of the line it is simply
// printed; elsewhere a blank cell is opened first so the tail shifts right.
func (b *Buffer) InsertRune(r rune) {
	if b.cursor == b.Len() {
		b.emit(string(r))
	} else {
		b.emit(ansi.InsertChar + string(r))
	}
	b.runes.Insert(b.cursor, r)
	b.cursor++
}

// WriteRune prints r over the scalar at the cursor, replacing it, or
// appends it at the end of the line.
func (b *Buffer) WriteRune(r rune) {
	b.emit(string(r))
	b.overwrite(r)
}

// WriteString calls WriteRune for every scalar of s.
func (b *Buffer) WriteString(s string) {
	for _, r := range s {
		b.WriteRune(r)
	}
}

// InsertString inserts s at the cursor and returns the number of scalars
// inserted.
func (b *Buffer) InsertString(s string) int {
	rs := []rune(s)
	if b.cursor == b.Len() {
		b.emit(s)
		b.runes.Add(rs...)
		b.cursor += len(rs)
		return len(rs)
	}
	for _, r := range rs {
		b.InsertRune(r)
	}
	return len(rs)
}

// WriteText prints styled text over the cells at the cursor and stores its
// raw scalars, replacing as many existing ones as it covers. It returns
// the raw length.
func (b *Buffer) WriteText(t style.Text) int {
	b.emit(b.render.Render(t))
	raw := []rune(t.Raw())
	for _, r := range raw {
		b.overwrite(r)
	}
	return len(raw)
}

// InsertText inserts styled text at the cursor and returns its raw length.
// In the middle of the line, placeholder spaces are inserted first and
// then overwritten so the tail keeps its position.
func (b *Buffer) InsertText(t style.Text) int {
	n := t.RawLen()
	if n == 0 {
		return 0
	}
	if b.cursor == b.Len() {
		b.emit(b.render.Render(t))
		b.runes.Add([]rune(t.Raw())...)
		b.cursor += n
		return n
	}
	b.InsertString(strings.Repeat(" ", n))
	b.Move(Left, n)
	return b.WriteText(t)
}

// DeleteBeforeCursor removes up to n scalars left of the cursor and returns
// how many were removed. Nothing is written when nothing is removable.
func (b *Buffer) DeleteBeforeCursor(n int) int {
	n = min(n, b.cursor)
	if n <= 0 {
		return 0
	}
	cols := b.span(b.cursor-n, b.cursor)
	b.emit(ansi.CursorBack(cols) + ansi.DeleteChars(cols))
	b.cursor -= n
	b.remove(b.cursor, n)
	return n
}

// DeleteAfterCursor removes up to n scalars starting at the cursor without
// moving it, and returns how many were removed.
func (b *Buffer) DeleteAfterCursor(n int) int {
	n = min(n, b.Len()-b.cursor)
	if n <= 0 {
		return 0
	}
	b.emit(ansi.DeleteChars(b.span(b.cursor, b.cursor+n)))
	b.remove(b.cursor, n)
	return n
}

// EraseToEndOfLine clears the terminal from the cursor on and truncates
// the buffer at the cursor.
func (b *Buffer) EraseToEndOfLine() {
	b.emit(ansi.EraseLineRight)
	b.remove(b.cursor, b.Len()-b.cursor)
}

// SeekToEnd moves the cursor to the end and returns how far it moved.
func (b *Buffer) SeekToEnd() int {
	return b.Move(Right, b.Len()-b.cursor)
}

// ClearEntered erases everything typed and returns what the buffer held.
func (b *Buffer) ClearEntered() string {
	old := b.String()
	b.SeekToEnd()
	b.DeleteBeforeCursor(b.Len())
	return old
}

// Handle applies the default editing action for k.
func (b *Buffer) Handle(k key.Key) {
	switch k.Type {
	case key.KeyLeft:
		b.Move(Left, 1)
	case key.KeyRight:
		b.Move(Right, 1)
	case key.KeyTab:
		b.InsertRune(' ')
	case key.KeyNewline:
		b.InsertRune('\n')
	case key.KeyDelete:
		b.DeleteBeforeCursor(1)
	case key.KeyChar:
		b.InsertRune(k.Rune)
	case key.KeyEscape:
		b.InsertString(ansi.CSI + string(k.Rune))
	}
}

// span returns the display width of scalars [from, to).
func (b *Buffer) span(from, to int) int {
	cols := 0
	for i := from; i < to; i++ {
		r, _ := b.runes.Get(i)
		cols += b.width(r)
	}
	return cols
}

func (b *Buffer) overwrite(r rune) {
	if b.cursor < b.Len() {
		b.runes.Set(b.cursor, r)
	} else {
		b.runes.Add(r)
	}
	b.cursor++
}

func (b *Buffer) remove(at, n int) {
	for range n {
		b.runes.Remove(at)
	}
}

// emit writes s and flushes. A failed write is remembered in Err; the
// buffer state still advances so it keeps describing the intended line.
func (b *Buffer) emit(s string) {
	if s != "" {
		if _, err := b.out.WriteString(s); err != nil && b.err == nil {
			b.err = err
		}
	}
	if err := b.out.Flush(); err != nil && b.err == nil {
		b.err = err
	}
}
