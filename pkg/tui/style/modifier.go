// ABOUTME: Modifier is a set of SGR text attributes plus optional colors
// ABOUTME: Modify wraps text in one SGR sequence and a reset; the zero Modifier is the identity

package style

import "strings"

// Attr is a bit set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrInverse
	AttrHidden
	AttrStrikethrough
)

// attrCodes lists SGR codes in emission order.
var attrCodes = []struct {
	attr Attr
	code string
	name string
}{
	{AttrBold, "1", "bold"},
	{AttrDim, "2", "dim"},
	{AttrItalic, "3", "italic"},
	{AttrUnderline, "4", "underline"},
	{AttrBlink, "5", "blink"},
	{AttrInverse, "7", "inverse"},
	{AttrHidden, "8", "hidden"},
	{AttrStrikethrough, "9", "strikethrough"},
}

// Reset is the SGR sequence that clears all attributes.
const Reset = "\x1b[0m"

// Modifier styles a run of text. It is a value type; builder methods return
// a modified copy.
type Modifier struct {
	Attrs Attr
	Fg    Color
	Bg    Color
}

// Default is the unstyled modifier.
var Default = Modifier{}

func (m Modifier) with(a Attr) Modifier {
	m.Attrs |= a
	return m
}

func (m Modifier) Bold() Modifier          { return m.with(AttrBold) }
func (m Modifier) Dim() Modifier           { return m.with(AttrDim) }
func (m Modifier) Italic() Modifier        { return m.with(AttrItalic) }
func (m Modifier) Underline() Modifier     { return m.with(AttrUnderline) }
func (m Modifier) Blink() Modifier         { return m.with(AttrBlink) }
func (m Modifier) Inverse() Modifier       { return m.with(AttrInverse) }
func (m Modifier) Hidden() Modifier        { return m.with(AttrHidden) }
func (m Modifier) Strikethrough() Modifier { return m.with(AttrStrikethrough) }

// Foreground sets the text color.
func (m Modifier) Foreground(c Color) Modifier {
	m.Fg = c
	return m
}

// Background sets the cell color.
func (m Modifier) Background(c Color) Modifier {
	m.Bg = c
	return m
}

// Has reports whether all attributes in a are set.
func (m Modifier) Has(a Attr) bool { return m.Attrs&a == a }

// IsDefault reports whether m carries no styling at all.
func (m Modifier) IsDefault() bool { return m == Default }

// Union ORs the attribute sets. Colors already set on m win; unset ones
// are taken from o.
func (m Modifier) Union(o Modifier) Modifier {
	m.Attrs |= o.Attrs
	if m.Fg.IsZero() {
		m.Fg = o.Fg
	}
	if m.Bg.IsZero() {
		m.Bg = o.Bg
	}
	return m
}

// Params returns the SGR parameters for m in emission order: attributes,
// then foreground, then background.
func (m Modifier) Params() []string {
	var params []string
	for _, ac := range attrCodes {
		if m.Attrs&ac.attr != 0 {
			params = append(params, ac.code)
		}
	}
	if p := m.Fg.fgParams(); p != "" {
		params = append(params, p)
	}
	if p := m.Bg.bgParams(); p != "" {
		params = append(params, p)
	}
	return params
}

// Sequence returns the opening SGR escape for m, or "" for the default.
func (m Modifier) Sequence() string {
	if m.IsDefault() {
		return ""
	}
	return "\x1b[" + strings.Join(m.Params(), ";") + "m"
}

// Modify renders text with m. The default modifier returns text unchanged.
func (m Modifier) Modify(text string) string {
	if m.IsDefault() {
		return text
	}
	return m.Sequence() + text + Reset
}

// ParseModifier reads a space separated description such as "dim",
// "bold red", or "italic #ff8800 on blue". Words after "on" set the
// background.
func ParseModifier(s string) (Modifier, error) {
	var m Modifier
	background := false
	for _, word := range strings.Fields(strings.ToLower(s)) {
		if word == "on" {
			background = true
			continue
		}
		if a, ok := attrByName(word); ok {
			m.Attrs |= a
			continue
		}
		c, err := ParseColor(word)
		if err != nil {
			return Modifier{}, err
		}
		if background {
			m.Bg = c
		} else {
			m.Fg = c
		}
	}
	return m, nil
}

func attrByName(name string) (Attr, bool) {
	for _, ac := range attrCodes {
		if ac.name == name {
			return ac.attr, true
		}
	}
	return 0, false
}
