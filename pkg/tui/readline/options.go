// ABOUTME: Reader for choosing among fixed options with arrows and Tab completion
// ABOUTME: Up/Down rotate through options, Tab cycles prefix (or fuzzy) matches of the typed text

package readline

import (
	"strings"

	"github.com/mauromedda/promptline/pkg/tui/editbuf"
	"github.com/mauromedda/promptline/pkg/tui/fuzzy"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

type optionsReader struct {
	buf     *editbuf.Buffer
	options []string
	ghost   style.Text
	fuzzy   bool

	// override is set while the buffer shows a suggestion that typed
	// scalars confirm or replace.
	override bool
	edited   bool

	rotating bool
	rotate   int

	snapshot string
	matches  []string
	matchAt  int

	last    key.KeyType
	started bool
}

// NewOptionsReader returns a reader completing to options. ghost, when
// not empty, is suggested the way NewDefaultedReader does.
func NewOptionsReader(buf *editbuf.Buffer, options []string, ghost style.Text, fuzzy bool) InputReader {
	return &optionsReader{
		buf:     buf,
		options: options,
		ghost:   ghost,
		fuzzy:   fuzzy,
	}
}

func (r *optionsReader) Start() {
	if r.ghost.IsEmpty() {
		return
	}
	n := r.buf.InsertText(r.ghost)
	r.buf.Move(editbuf.Left, n)
	r.override = true
}

func (r *optionsReader) Handle(k key.Key) Action {
	defer func() {
		r.last = k.Type
		r.started = true
	}()

	switch k.Type {
	case key.KeyNewline:
		return Submit
	case key.KeyUp:
		r.rotateBy(-1)
	case key.KeyDown:
		r.rotateBy(1)
	case key.KeyLeft, key.KeyRight:
		r.buf.Handle(k)
	case key.KeyTab:
		r.complete()
	case key.KeyDelete:
		r.edited = true
		r.buf.DeleteBeforeCursor(1)
	case key.KeyChar:
		r.char(k.Rune)
	}
	return Continue
}

func (r *optionsReader) AcceptsDefault() bool {
	return (!r.ghost.IsEmpty() && !r.edited) || r.buf.Len() == 0
}

// rotateBy steps through the options. The first step down shows the
// first option and the first step up shows the last one.
func (r *optionsReader) rotateBy(step int) {
	n := len(r.options)
	if n == 0 {
		return
	}
	switch {
	case !r.rotating && step > 0:
		r.rotate = 0
	case !r.rotating:
		r.rotate = n - 1
	default:
		r.rotate = ((r.rotate+step)%n + n) % n
	}
	r.rotating = true
	r.show(r.options[r.rotate])
}

// complete shows the next match of the text typed before the current run
// of Tabs.
func (r *optionsReader) complete() {
	if !r.started || r.last != key.KeyTab {
		r.snapshot = r.typed()
		r.matches = r.candidates(r.snapshot)
		r.matchAt = 0
	} else if len(r.matches) > 0 {
		r.matchAt = (r.matchAt + 1) % len(r.matches)
	}
	if len(r.matches) == 0 {
		return
	}
	r.show(r.matches[r.matchAt])
}

func (r *optionsReader) typed() string {
	if r.override {
		return r.buf.BeforeCursor()
	}
	return r.buf.String()
}

func (r *optionsReader) candidates(prefix string) []string {
	var out []string
	for _, o := range r.options {
		if strings.HasPrefix(o, prefix) {
			out = append(out, o)
		}
	}
	if len(out) == 0 && r.fuzzy {
		out = fuzzy.Completions(prefix, r.options)
	}
	return out
}

func (r *optionsReader) show(s string) {
	r.buf.ClearEntered()
	r.buf.InsertString(s)
	r.override = true
	r.edited = true
}

func (r *optionsReader) char(c rune) {
	r.edited = true
	if !r.override {
		r.buf.InsertRune(c)
		return
	}
	cur, ok := r.buf.RuneAtCursor()
	if ok && cur == c {
		r.buf.WriteRune(c)
		return
	}
	r.override = false
	if !ok {
		r.buf.InsertRune(c)
		return
	}
	r.buf.EraseToEndOfLine()
	r.buf.WriteRune(c)
}
