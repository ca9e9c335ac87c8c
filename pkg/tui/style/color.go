// ABOUTME: Terminal colors: eight standard, eight bright, the default, and the 6x6x6 cube
// ABOUTME: RGB and hex inputs are quantized onto cube indices 16-231

package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	kindNone colorKind = iota
	kindNamed
	kindIndexed
)

// Color is a foreground or background color. The zero value means "no
// color" and renders nothing.
type Color struct {
	kind colorKind
	code uint8 // SGR foreground code for named colors, palette index otherwise
}

// Named colors. Background codes are derived by adding 10.
var (
	Black   = Color{kind: kindNamed, code: 30}
	Red     = Color{kind: kindNamed, code: 31}
	Green   = Color{kind: kindNamed, code: 32}
	Yellow  = Color{kind: kindNamed, code: 33}
	Blue    = Color{kind: kindNamed, code: 34}
	Magenta = Color{kind: kindNamed, code: 35}
	Cyan    = Color{kind: kindNamed, code: 36}
	White   = Color{kind: kindNamed, code: 37}

	BrightBlack   = Color{kind: kindNamed, code: 90}
	BrightRed     = Color{kind: kindNamed, code: 91}
	BrightGreen   = Color{kind: kindNamed, code: 92}
	BrightYellow  = Color{kind: kindNamed, code: 93}
	BrightBlue    = Color{kind: kindNamed, code: 94}
	BrightMagenta = Color{kind: kindNamed, code: 95}
	BrightCyan    = Color{kind: kindNamed, code: 96}
	BrightWhite   = Color{kind: kindNamed, code: 97}

	// DefaultColor is the terminal's own foreground/background.
	DefaultColor = Color{kind: kindNamed, code: 39}
)

var colorNames = map[string]Color{
	"black":          Black,
	"red":            Red,
	"green":          Green,
	"yellow":         Yellow,
	"blue":           Blue,
	"magenta":        Magenta,
	"cyan":           Cyan,
	"white":          White,
	"bright-black":   BrightBlack,
	"gray":           BrightBlack,
	"grey":           BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
	"default":        DefaultColor,
}

// Indexed returns palette entry n of a 256-color terminal.
func Indexed(n uint8) Color {
	return Color{kind: kindIndexed, code: n}
}

// RGB quantizes a 24-bit color onto the 6x6x6 cube, yielding an index in
// [16, 231].
func RGB(r, g, b uint8) Color {
	q := func(v uint8) int { return int(float64(v) / 255 * 5) }
	return Indexed(uint8(16 + 36*q(r) + 6*q(g) + q(b)))
}

// Hex parses "#rrggbb" (or "#rgb") and quantizes it with RGB.
func Hex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// ParseColor accepts a color name ("red", "bright-blue", "default"), a
// palette index ("208"), or a hex triplet ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}
	return Color{}, fmt.Errorf("unknown color %q", s)
}

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c.kind == kindNone }

// Index returns the palette index of an indexed color, or -1.
func (c Color) Index() int {
	if c.kind != kindIndexed {
		return -1
	}
	return int(c.code)
}

func (c Color) fgParams() string {
	switch c.kind {
	case kindNamed:
		return strconv.Itoa(int(c.code))
	case kindIndexed:
		return "38;5;" + strconv.Itoa(int(c.code))
	}
	return ""
}

func (c Color) bgParams() string {
	switch c.kind {
	case kindNamed:
		return strconv.Itoa(int(c.code) + 10)
	case kindIndexed:
		return "48;5;" + strconv.Itoa(int(c.code))
	}
	return ""
}

// String returns the name or index form accepted by ParseColor.
func (c Color) String() string {
	switch c.kind {
	case kindNamed:
		for name, nc := range colorNames {
			if nc == c && name != "gray" && name != "grey" {
				return name
			}
		}
	case kindIndexed:
		return strconv.Itoa(int(c.code))
	}
	return ""
}

// namedFromCode maps an SGR foreground code (30-37, 90-97, 39) to a Color.
func namedFromCode(code int) (Color, bool) {
	if (code >= 30 && code <= 37) || (code >= 90 && code <= 97) || code == 39 {
		return Color{kind: kindNamed, code: uint8(code)}, true
	}
	return Color{}, false
}
