// ABOUTME: Engine drives prompt, edit, validate, and retry cycles on a terminal
// ABOUTME: Read blocks until a valid value is typed; invalid lines are explained and retried

package readline

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dlclark/regexp2"

	"github.com/mauromedda/promptline/internal/log"
	"github.com/mauromedda/promptline/pkg/tui/ansi"
	"github.com/mauromedda/promptline/pkg/tui/editbuf"
	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
	"github.com/mauromedda/promptline/pkg/tui/terminal"
	"github.com/mauromedda/promptline/pkg/tui/theme"
	"github.com/mauromedda/promptline/pkg/tui/width"
)

// DefaultRetryMessage is shown when a rejected line carries no reason.
const DefaultRetryMessage = "Invalid Input, please try again"

// defaultColumns is used for progress bars when the size is unknown.
const defaultColumns = 80

type config struct {
	width    width.Func
	renderer style.Renderer
	palette  theme.Palette
	bell     bool
	retry    string
	fuzzy    bool
	maxEOF   int
}

// Option configures an Engine.
type Option func(*config)

// WithWidth sets the column width function used for cursor arithmetic.
func WithWidth(fn width.Func) Option {
	return func(c *config) {
		if fn != nil {
			c.width = fn
		}
	}
}

// WithRenderer sets how styled text is rendered.
func WithRenderer(r style.Renderer) Option {
	return func(c *config) { c.renderer = r }
}

// WithPalette sets the modifiers for ghost text, errors, and the rest.
func WithPalette(p theme.Palette) Option {
	return func(c *config) { c.palette = p }
}

// WithBell enables or disables the terminal bell on rejected input.
func WithBell(on bool) Option {
	return func(c *config) { c.bell = on }
}

// WithRetryMessage replaces DefaultRetryMessage.
func WithRetryMessage(msg string) Option {
	return func(c *config) {
		if msg != "" {
			c.retry = msg
		}
	}
}

// WithFuzzyOptions turns on fuzzy Tab completion for every options read.
func WithFuzzyOptions(on bool) Option {
	return func(c *config) { c.fuzzy = on }
}

// WithMaxEOF makes ReadContext give up after n consecutive attempts that
// ended with the input closed. Zero, the default, retries forever.
func WithMaxEOF(n int) Option {
	return func(c *config) { c.maxEOF = max(n, 0) }
}

// Engine reads validated values from a terminal. One read runs at a time;
// concurrent calls wait for each other.
type Engine struct {
	mu   sync.Mutex
	term terminal.Terminal
	out  *bufio.Writer
	keys *key.Decoder
	cfg  config
}

// New returns an Engine on t.
func New(t terminal.Terminal, opts ...Option) *Engine {
	cfg := config{
		width:   width.Heuristic,
		palette: theme.Current().Palette,
		bell:    true,
		retry:   DefaultRetryMessage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{
		term: t,
		out:  bufio.NewWriter(t),
		keys: key.NewDecoder(t),
		cfg:  cfg,
	}
}

// Read prompts until r accepts a line and returns its value. It never
// fails; when the input is closed it keeps ringing the bell and waiting
// unless WithMaxEOF was set, in which case the zero value is returned.
func Read[T any](e *Engine, r Readable[T], prompt style.Text) T {
	v, _ := ReadContext(context.Background(), e, r, prompt)
	return v
}

// ReadContext is Read with cancellation, checked between attempts.
func ReadContext[T any](ctx context.Context, e *Engine, r Readable[T], prompt style.Text) (T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var zero T
	e.write(e.cfg.renderer.Render(prompt))
	row, col := e.rollbackPosition()
	stops := r.StopSequences()

	closed := 0
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		s := e.session(attempt > 0)
		rd := r.NewReader(s)
		line, err := e.edit(rd, s.Buffer, stops)
		if err != nil {
			log.Debug("readline: no input: %v", err)
			closed++
			if e.cfg.maxEOF > 0 && closed >= e.cfg.maxEOF {
				return zero, fmt.Errorf("reading line: %w", err)
			}
			e.ring()
			continue
		}
		closed = 0

		v, err := validate(r, rd, line)
		if err == nil {
			e.write(ansi.EraseScreenDown)
			return v, nil
		}
		log.Debug("readline: rejected %q: %v", line, err)
		e.reject(row, col, err)
	}
}

func validate[T any](r Readable[T], rd InputReader, line string) (T, error) {
	if v, ok := r.Default(); ok && rd.AcceptsDefault() {
		return v, nil
	}
	v, err := r.Transform(line)
	if err != nil {
		return v, err
	}
	return v, r.Check(v)
}

func (e *Engine) session(retry bool) Session {
	return Session{
		Buffer: editbuf.New(e.out,
			editbuf.WithWidth(e.cfg.width),
			editbuf.WithRenderer(e.cfg.renderer)),
		Palette: e.cfg.palette,
		Retry:   retry,
		Fuzzy:   e.cfg.fuzzy,
	}
}

// rollbackPosition returns where the line starts. Terminals that cannot
// report it get the origin.
func (e *Engine) rollbackPosition() (row, col int) {
	row, col, err := e.term.CursorPosition()
	if err != nil {
		log.Debug("readline: cursor position: %v", err)
		return 0, 0
	}
	return row, col
}

// edit runs one attempt in raw mode and returns the line.
func (e *Engine) edit(rd InputReader, buf *editbuf.Buffer, stops []*regexp2.Regexp) (string, error) {
	if err := e.term.EnterRawMode(); err != nil {
		log.Debug("readline: raw mode: %v", err)
	}
	defer func() {
		if err := e.term.ExitRawMode(); err != nil {
			log.Debug("readline: restoring mode: %v", err)
		}
	}()

	rd.Start()
	for {
		k, err := e.keys.Next()
		if err != nil {
			return "", err
		}
		if rd.Handle(k) == Submit {
			e.write("\n")
			return buf.String(), nil
		}
		if line := buf.String(); stopped(stops, line) {
			return line, nil
		}
	}
}

func stopped(stops []*regexp2.Regexp, line string) bool {
	for _, re := range stops {
		ok, err := re.MatchString(line)
		if err != nil {
			log.Warn("readline: stop sequence %s: %v", re, err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// reject clears what was typed, prints the reason under the line, and
// puts the cursor back where the line starts.
func (e *Engine) reject(row, col int, err error) {
	msg := reason(err, e.cfg.retry)
	e.write(ansi.MoveTo(row, col) +
		ansi.EraseScreenDown +
		"\n" + e.cfg.renderer.Modify(e.cfg.palette.Error, msg) +
		ansi.MoveTo(row, col))
	e.ring()
}

func (e *Engine) ring() {
	if e.cfg.bell {
		e.write(ansi.Bell)
	}
}

func (e *Engine) write(s string) {
	if s != "" {
		if _, err := e.out.WriteString(s); err != nil {
			log.Debug("readline: write: %v", err)
		}
	}
	if err := e.out.Flush(); err != nil {
		log.Debug("readline: flush: %v", err)
	}
}

// Print writes t followed by terminator. It waits for a read in progress,
// so it must not be called from a transform or check.
func (e *Engine) Print(t style.Text, terminator string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.write(e.cfg.renderer.Render(t) + terminator)
}

// Bell rings the terminal bell, even when WithBell(false) silenced it for
// rejected input.
func (e *Engine) Bell() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.write(ansi.Bell)
}

// Progress draws a bar spanning the terminal width, filled to fraction,
// and returns the cursor to the start of the line.
func (e *Engine) Progress(fraction float64) {
	e.ProgressLabel(fraction, style.Text{})
}

// ProgressLabel is Progress with label printed before the bar. The bar
// shrinks by the label's display width; a label that leaves no room for
// the bar is not drawn.
func (e *Engine) ProgressLabel(fraction float64, label style.Text) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cols, _, err := e.term.Size()
	if err != nil || cols < 3 {
		cols = defaultColumns
	}
	prefix := ""
	if !label.IsEmpty() {
		prefix = e.cfg.renderer.Render(label) + " "
	}
	total := cols - 2 - width.VisibleWidth(prefix)
	if total < 1 {
		prefix, total = "", cols-2
	}
	done := min(max(int(float64(total)*fraction), 0), total)
	e.write(prefix + "[" + strings.Repeat("=", done) + strings.Repeat(" ", total-done) + "]\r")
}
