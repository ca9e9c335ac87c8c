// ABOUTME: Bridge from attributed rich-text runs to styled terminal Text
// ABOUTME: Emphasis maps to italic, strong to bold, strikethrough to strikethrough

package richtext

import (
	"github.com/mauromedda/promptline/internal/log"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

// Color is a rich-text color: either a terminal color name or an RGB
// triplet. The zero value means unset.
type Color struct {
	Name    string
	R, G, B uint8
	isRGB   bool
}

// Named returns a color referring to a terminal color name ("red",
// "bright-cyan").
func Named(name string) Color { return Color{Name: name} }

// RGB returns an arbitrary 24-bit color.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, isRGB: true} }

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c.Name == "" && !c.isRGB }

// Attributes describe how one run of rich text is presented.
type Attributes struct {
	Emphasis      bool
	Strong        bool
	Strikethrough bool
	Underline     bool
	Code          bool
	Foreground    Color
	Background    Color
}

// Run is a piece of text with uniform attributes.
type Run struct {
	Text  string
	Attrs Attributes
}

// Source is anything that can be flattened into attributed runs.
type Source interface {
	Runs() []Run
}

// Runs is a Source backed by a slice.
type Runs []Run

// Runs returns r itself.
func (r Runs) Runs() []Run { return r }

// codeColor is applied to code spans that carry no explicit foreground.
var codeColor = style.Cyan

// ToText converts every run of src into styled Text.
func ToText(src Source) style.Text {
	var out style.Text
	for _, r := range src.Runs() {
		out = out.AppendStyled(r.Text, Modifier(r.Attrs))
	}
	return out
}

// Modifier maps rich-text attributes onto a terminal modifier.
func Modifier(a Attributes) style.Modifier {
	var m style.Modifier
	if a.Strong {
		m = m.Bold()
	}
	if a.Emphasis {
		m = m.Italic()
	}
	if a.Underline {
		m = m.Underline()
	}
	if a.Strikethrough {
		m = m.Strikethrough()
	}
	m.Fg = resolve(a.Foreground)
	m.Bg = resolve(a.Background)
	if a.Code && m.Fg.IsZero() {
		m.Fg = codeColor
	}
	return m
}

func resolve(c Color) style.Color {
	switch {
	case c.isRGB:
		return style.RGB(c.R, c.G, c.B)
	case c.Name != "":
		sc, err := style.ParseColor(c.Name)
		if err != nil {
			log.Debug("richtext: ignoring color: %v", err)
			return style.Color{}
		}
		return sc
	}
	return style.Color{}
}
