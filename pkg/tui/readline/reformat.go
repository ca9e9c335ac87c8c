// ABOUTME: Reader that redraws the whole line through a formatter after each edit
// ABOUTME: Used for live colouring of what is typed; Tab completes the default

package readline

import (
	"strings"

	"github.com/mauromedda/promptline/pkg/tui/editbuf"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

type reformattingReader struct {
	buf    *editbuf.Buffer
	format func(string) style.Text
	def    string
}

// NewReformattingReader returns a reader that redraws the line through
// format after every key other than cursor moves and Delete. def, when
// not empty, is completed by Tab.
func NewReformattingReader(buf *editbuf.Buffer, format func(string) style.Text, def string) InputReader {
	return &reformattingReader{buf: buf, format: format, def: def}
}

func (r *reformattingReader) Start() {}

func (r *reformattingReader) Handle(k key.Key) Action {
	switch k.Type {
	case key.KeyNewline:
		return Submit
	case key.KeyLeft, key.KeyRight, key.KeyDelete:
		r.buf.Handle(k)
		return Continue
	case key.KeyBadSymbol, key.KeyEmpty:
		return Continue
	case key.KeyTab:
		line := r.buf.String()
		if r.def == "" || !strings.HasPrefix(r.def, line) {
			return Continue
		}
		r.buf.SeekToEnd()
		r.buf.InsertString(r.def[len(line):])
	default:
		r.buf.Handle(k)
	}
	r.redraw()
	return Continue
}

func (r *reformattingReader) AcceptsDefault() bool { return r.buf.Len() == 0 }

// redraw replaces the line with its formatted form, keeping the cursor.
func (r *reformattingReader) redraw() {
	at := r.buf.Cursor()
	n := r.buf.InsertText(r.format(r.buf.ClearEntered()))
	r.buf.Move(editbuf.Left, n-at)
}
