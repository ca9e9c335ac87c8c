// ABOUTME: Text is an ordered list of styled runs composed by appending
// ABOUTME: String renders every run in order; Raw drops all styling and escape bytes

package style

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Run is a piece of text rendered with one modifier.
type Run struct {
	Text string
	Mod  Modifier
}

// Text is an immutable sequence of runs. Methods return new values, so a
// Text can be shared and extended from several places.
type Text struct {
	runs []Run
}

// Plain returns unstyled text.
func Plain(s string) Text {
	return Text{}.Append(s)
}

// Styled returns text rendered with m.
func Styled(s string, m Modifier) Text {
	return Text{}.AppendStyled(s, m)
}

// Join concatenates texts in order.
func Join(texts ...Text) Text {
	var out Text
	for _, t := range texts {
		out = out.AppendText(t)
	}
	return out
}

// Append adds an unstyled run.
func (t Text) Append(s string) Text {
	return t.AppendStyled(s, Default)
}

// AppendStyled adds a run rendered with m. SGR sequences already in s are
// lifted into runs of their own, layered over m; other escapes are
// dropped. Run text therefore never holds escape bytes.
func (t Text) AppendStyled(s string, m Modifier) Text {
	if !strings.ContainsRune(s, '\x1b') {
		return Text{runs: append(slices.Clip(t.runs), Run{Text: s, Mod: m})}
	}
	runs := slices.Clip(t.runs)
	for _, r := range Parse(s).runs {
		runs = append(runs, Run{Text: r.Text, Mod: r.Mod.Union(m)})
	}
	return Text{runs: runs}
}

// AppendText inlines the runs of o, keeping their styling.
func (t Text) AppendText(o Text) Text {
	if len(o.runs) == 0 {
		return t
	}
	return Text{runs: append(slices.Clip(t.runs), o.runs...)}
}

// Modify merges m into the most recently appended run. On empty text it
// is a no-op.
func (t Text) Modify(m Modifier) Text {
	if len(t.runs) == 0 {
		return t
	}
	runs := slices.Clone(t.runs)
	last := &runs[len(runs)-1]
	last.Mod = last.Mod.Union(m)
	return Text{runs: runs}
}

// Runs returns a copy of the runs.
func (t Text) Runs() []Run {
	return slices.Clone(t.runs)
}

// String renders every run through its modifier.
func (t Text) String() string {
	var b strings.Builder
	for _, r := range t.runs {
		b.WriteString(r.Mod.Modify(r.Text))
	}
	return b.String()
}

// Raw returns the text without any styling.
func (t Text) Raw() string {
	var b strings.Builder
	for _, r := range t.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// RawLen returns the number of scalars in Raw.
func (t Text) RawLen() int {
	n := 0
	for _, r := range t.runs {
		n += utf8.RuneCountInString(r.Text)
	}
	return n
}

// IsEmpty reports whether t has no visible characters.
func (t Text) IsEmpty() bool {
	return t.RawLen() == 0
}
