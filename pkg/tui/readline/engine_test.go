// ABOUTME: Tests for the read engine: exact terminal output of prompts, defaults, options, retries
// ABOUTME: Drives an Engine over a VirtualTerminal with scripted key input

package readline

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mauromedda/promptline/pkg/tui/key"
	"github.com/mauromedda/promptline/pkg/tui/style"
	"github.com/mauromedda/promptline/pkg/tui/terminal"
	"github.com/mauromedda/promptline/pkg/tui/theme"
)

const (
	eraseDown = "\x1b[0J"
	retryMsg  = "\x1b[0;0f\x1b[0J\n\x1b[31mInvalid Input, please try again\x1b[0m\x1b[0;0f\a"
)

func newTestEngine(input string, opts ...Option) (*Engine, *terminal.VirtualTerminal) {
	vt := terminal.NewVirtualTerminal(40, 10)
	vt.Feed(input)
	base := []Option{WithPalette(theme.DefaultPalette()), WithMaxEOF(1)}
	return New(vt, append(base, opts...)...), vt
}

func TestRead_String(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("hello!\n")
	got := Read(e, String(), style.Plain("String here: "))

	if got != "hello!" {
		t.Errorf("Read() = %q, want %q", got, "hello!")
	}
	if want := "String here: hello!\n" + eraseDown; vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestRead_DefaultValue(t *testing.T) {
	t.Parallel()

	const ghost = "\x1b[2mabc\x1b[0m\x1b[3D"
	left := key.Script(key.Left)
	tests := []struct {
		name  string
		input string
		body  string
		want  string
	}{
		{"enter only", "", "", "abc"},
		{"matching prefix", "a", "a", "abc"},
		{"diverging", "f", "\x1b[0Kf", "f"},
		{"tab accepts", "\t", "abc", "abc"},
		{"tab after prefix", "a\t", "abc", "abc"},
		{"tab after divergence", "f\t", "\x1b[0Kf", "f"},
		{"delete at start then tab", "\x7f\t", "abc", "abc"},
		{"right accepts", key.Script(key.Right), "abc\x1b[2D", "abc"},
		{"delete drops ghost", "ab" + left + "\x7f\t", "ab\x1b[1D\x1b[1C\x1b[1P\x1b[1D\x1b[1D\x1b[1P", "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, vt := newTestEngine(tt.input + "\n")
			got := Read(e, String().WithDefault("abc"), style.Text{})

			if got != tt.want {
				t.Errorf("Read(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if want := ghost + tt.body + "\n" + eraseDown; vt.Output() != want {
				t.Errorf("Read(%q) output = %q, want %q", tt.input, vt.Output(), want)
			}
		})
	}
}

func TestRead_StopSequence(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("?")
	got := Read(e, String().WithDefault("abcd").WithStopSequence(`\?`), style.Plain("read: "))

	if got != "?" {
		t.Errorf("Read() = %q, want %q", got, "?")
	}
	want := "read: \x1b[2mabcd\x1b[0m\x1b[4D\x1b[0K?" + eraseDown
	if vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
	if strings.Contains(vt.Output(), "\n") {
		t.Error("stop sequence echoed a newline")
	}
}

func TestRead_StopSequenceWholeMatch(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine("a?b\n")
	got := Read(e, String().WithStopSequence(`\?`), style.Text{})
	if got != "a?b" {
		t.Errorf("Read() = %q, want %q", got, "a?b")
	}
}

func TestRead_BoolDefault(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("\n")
	got := Read(e, Bool().WithDefault(true), style.Text{})

	if !got {
		t.Error("Read() = false, want true")
	}
	if want := "\x1b[2myes\x1b[0m\x1b[3D\n" + eraseDown; vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestRead_OptionsRotation(t *testing.T) {
	t.Parallel()

	pool := []string{"option 10000", "option 20000", "option 30000"}
	reversed := []string{pool[2], pool[1], pool[0]}
	symbols := []struct {
		name string
		seq  string
		pool []string
	}{
		{"tab", "\t", pool},
		{"down", key.Script(key.Down), pool},
		{"up", key.Script(key.Up), reversed},
	}
	for _, sym := range symbols {
		for k := 1; k <= 5; k++ {
			e, vt := newTestEngine(strings.Repeat(sym.seq, k) + "\n")
			got := Read(e, Options(pool...), style.Text{})

			shown := make([]string, k)
			for i := range k {
				shown[i] = sym.pool[i%3]
			}
			if want := sym.pool[(k-1)%3]; got != want {
				t.Errorf("%s x%d: Read() = %q, want %q", sym.name, k, got, want)
			}
			want := strings.Join(shown, "\x1b[12D\x1b[12P") + "\n" + eraseDown
			if vt.Output() != want {
				t.Errorf("%s x%d: output = %q, want %q", sym.name, k, vt.Output(), want)
			}
		}
	}
}

func TestRead_OptionsArrows(t *testing.T) {
	t.Parallel()

	down, up := key.Script(key.Down), key.Script(key.Up)
	tests := []struct {
		input string
		want  string
	}{
		{down, "a"},
		{down + down, "b"},
		{up, "c"},
		{up + up + down, "c"},
		{down + up, "c"},
	}
	for _, tt := range tests {
		e, _ := newTestEngine(tt.input + "\n")
		if got := Read(e, Options("a", "b", "c"), style.Text{}); got != tt.want {
			t.Errorf("Read(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRead_OptionsRejectsOutsider(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("stagin\nstaging\n")
	got := Read(e, Options("staging", "production"), style.Text{})
	if got != "staging" {
		t.Errorf("Read() = %q, want %q", got, "staging")
	}
	if !strings.Contains(vt.Output(), `Did you mean "staging"?`) {
		t.Errorf("output %q lacks the suggestion", vt.Output())
	}
}

func TestRead_OptionsDefault(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine("\n")
	if got := Read(e, Options("x", "y").WithDefault("y"), style.Text{}); got != "y" {
		t.Errorf("Read() = %q, want %q", got, "y")
	}
}

func TestRead_UnboundedOptionsFuzzy(t *testing.T) {
	t.Parallel()

	e, _ := newTestEngine("prd\t\n", WithFuzzyOptions(true))
	got := Read(e, UnboundedOptions("staging", "production"), style.Text{})
	if got != "production" {
		t.Errorf("Read() = %q, want %q", got, "production")
	}

	e, _ = newTestEngine("prd\t\n")
	got = Read(e, UnboundedOptions("staging", "production"), style.Text{})
	if got != "prd" {
		t.Errorf("Read() without fuzzy = %q, want %q", got, "prd")
	}
}

func TestRead_RetryAfterInvalid(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("xyz\n42\n")
	got := Read(e, Int(), style.Text{})

	if got != 42 {
		t.Errorf("Read() = %d, want 42", got)
	}
	if want := "xyz\n" + retryMsg + "42\n" + eraseDown; vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestRead_RetryUsesRollbackPosition(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(40, 10)
	vt.SetCursorPosition(3, 7)
	vt.Feed("maybe\nn\n")
	e := New(vt, WithPalette(theme.DefaultPalette()), WithMaxEOF(1))

	if got := Read(e, Bool(), style.Plain("ok? ")); got {
		t.Error("Read() = true, want false")
	}
	want := "ok? maybe\n\x1b[3;7f\x1b[0J\n\x1b[31mNot a boolean value.\x1b[0m\x1b[3;7f\an\n" + eraseDown
	if vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestRead_GhostOnlyOnFirstAttempt(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("x\n\n")
	got := Read(e, Int().WithDefault(7), style.Text{})
	if got != 7 {
		t.Errorf("Read() = %d, want 7", got)
	}
	if n := strings.Count(vt.Output(), "\x1b[2m7"); n != 1 {
		t.Errorf("ghost drawn %d times, want 1", n)
	}
}

func TestRead_ConditionAndCheck(t *testing.T) {
	t.Parallel()

	even := Int().
		WithCondition(func(n int) bool { return n > 0 }).
		WithCheck(func(n int) error {
			if n%2 != 0 {
				return Invalid("%d is odd", n)
			}
			return nil
		})

	e, vt := newTestEngine("-2\n3\n4\n")
	if got := Read(e, even, style.Text{}); got != 4 {
		t.Errorf("Read() = %d, want 4", got)
	}
	out := vt.Output()
	if !strings.Contains(out, DefaultRetryMessage) {
		t.Errorf("output %q lacks the generic message", out)
	}
	if !strings.Contains(out, "3 is odd") {
		t.Errorf("output %q lacks the check reason", out)
	}
}

func TestRead_CustomRetryMessageAndSilentBell(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("x\n1\n", WithRetryMessage("nope"), WithBell(false))
	Read(e, Int(), style.Text{})
	if !strings.Contains(vt.Output(), "nope") {
		t.Errorf("output %q lacks the custom message", vt.Output())
	}
	if strings.Contains(vt.Output(), "\a") {
		t.Error("bell rang with WithBell(false)")
	}
}

func TestReadContext_InputClosed(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("12", WithMaxEOF(2))
	_, err := ReadContext(context.Background(), e, Int(), style.Text{})
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadContext() error = %v, want io.EOF", err)
	}
	if n := strings.Count(vt.Output(), "\a"); n != 1 {
		t.Errorf("bell rang %d times before giving up, want 1", n)
	}
}

func TestReadContext_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e, _ := newTestEngine("1\n")
	if _, err := ReadContext(ctx, e, Int(), style.Text{}); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadContext() error = %v, want context.Canceled", err)
	}
}

func TestRead_RawModeBracketsEachAttempt(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("x\n5\n")
	Read(e, Int(), style.Text{})
	if vt.EnterCount() != 2 || vt.ExitCount() != 2 {
		t.Errorf("raw mode entered %d / exited %d times, want 2 / 2", vt.EnterCount(), vt.ExitCount())
	}
	if vt.IsRawMode() {
		t.Error("terminal left in raw mode")
	}
}

func TestRead_Reformatting(t *testing.T) {
	t.Parallel()

	upper := func(s string) style.Text { return style.Styled(s, style.Default.Bold()) }
	e, vt := newTestEngine("ab\n")
	got := Read(e, Reformatting(upper), style.Text{})

	if got != "ab" {
		t.Errorf("Read() = %q, want %q", got, "ab")
	}
	want := "a\x1b[1D\x1b[1P\x1b[1ma\x1b[0m" +
		"b\x1b[2D\x1b[2P\x1b[1mab\x1b[0m" +
		"\n" + eraseDown
	if vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestEngine_Print(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("")
	e.Print(style.Styled("blue", style.Default.Foreground(style.Blue)), "")
	e.Print(style.Plain("plain"), "\n")

	if want := "\x1b[34mblue\x1b[0mplain\n"; vt.Output() != want {
		t.Errorf("output = %q, want %q", vt.Output(), want)
	}
}

func TestEngine_PrintPlainRenderer(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("", WithRenderer(style.Renderer{Plain: true}))
	e.Print(style.Styled("blue", style.Default.Foreground(style.Blue)), "\n")
	if vt.Output() != "blue\n" {
		t.Errorf("output = %q, want %q", vt.Output(), "blue\n")
	}
}

func TestEngine_Bell(t *testing.T) {
	t.Parallel()

	e, vt := newTestEngine("", WithBell(false))
	e.Bell()
	if vt.Output() != "\a" {
		t.Errorf("output = %q, want %q", vt.Output(), "\a")
	}
}

func TestEngine_Progress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "[        ]\r"},
		{0.5, "[====    ]\r"},
		{1, "[========]\r"},
		{2, "[========]\r"},
		{-1, "[        ]\r"},
	}
	for _, tt := range tests {
		e, vt := newTestEngine("")
		vt.SetSize(10, 5)
		e.Progress(tt.fraction)
		if vt.Output() != tt.want {
			t.Errorf("Progress(%v) = %q, want %q", tt.fraction, vt.Output(), tt.want)
		}
	}
}

func TestEngine_ProgressLabel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cols  int
		label style.Text
		want  string
	}{
		{"styled label", 20, style.Styled("dl", style.Default.Bold()), "\x1b[1mdl\x1b[0m [======         ]\r"},
		{"wide label", 20, style.Plain("下载"), "下载 [=====        ]\r"},
		{"empty label", 10, style.Text{}, "[===     ]\r"},
		{"label leaves no room", 10, style.Plain("abcdefghij"), "[===     ]\r"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, vt := newTestEngine("")
			vt.SetSize(tt.cols, 5)
			e.ProgressLabel(0.4, tt.label)
			if vt.Output() != tt.want {
				t.Errorf("ProgressLabel(0.4, %q) = %q, want %q", tt.label.Raw(), vt.Output(), tt.want)
			}
		})
	}
}
