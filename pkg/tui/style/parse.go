// ABOUTME: Parse lifts an ANSI-escaped string back into styled runs
// ABOUTME: Tracks SGR state across sequences; other escapes are dropped

package style

import (
	"strconv"
	"strings"

	"github.com/mauromedda/promptline/pkg/tui/width"
)

// Parse converts s, which may contain SGR sequences, into Text. Adjacent
// characters sharing the same active style become one run. Non-SGR escape
// sequences (cursor movement, OSC) carry no text and are discarded.
func Parse(s string) Text {
	var (
		out  Text
		cur  Modifier
		text strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			out = out.AppendStyled(text.String(), cur)
			text.Reset()
		}
	}

	for i := 0; i < len(s); {
		if s[i] != '\x1b' {
			j := strings.IndexByte(s[i:], '\x1b')
			if j < 0 {
				j = len(s) - i
			}
			text.WriteString(s[i : i+j])
			i += j
			continue
		}
		end := width.SkipSequence(s, i)
		seq := s[i:end]
		i = end
		if !isSGR(seq) {
			continue
		}
		next := applySGR(cur, seq[2:len(seq)-1])
		if next != cur {
			flush()
			cur = next
		}
	}
	flush()
	return out
}

func isSGR(seq string) bool {
	return len(seq) >= 3 && strings.HasPrefix(seq, "\x1b[") && seq[len(seq)-1] == 'm'
}

// applySGR folds the semicolon separated parameters into m.
func applySGR(m Modifier, params string) Modifier {
	if params == "" {
		return Default
	}
	parts := strings.Split(params, ";")
	for i := 0; i < len(parts); i++ {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case code == 0:
			m = Default
		case code >= 1 && code <= 9:
			if a, ok := attrForCode(code); ok {
				m.Attrs |= a
			}
		case code == 22:
			m.Attrs &^= AttrBold | AttrDim
		case code == 23:
			m.Attrs &^= AttrItalic
		case code == 24:
			m.Attrs &^= AttrUnderline
		case code == 25:
			m.Attrs &^= AttrBlink
		case code == 27:
			m.Attrs &^= AttrInverse
		case code == 28:
			m.Attrs &^= AttrHidden
		case code == 29:
			m.Attrs &^= AttrStrikethrough
		case code == 38 || code == 48:
			c, used := extendedColor(parts[i+1:])
			if code == 38 {
				m.Fg = c
			} else {
				m.Bg = c
			}
			i += used
		case code == 49:
			m.Bg = Color{}
		case code >= 40 && code <= 47, code >= 100 && code <= 107:
			m.Bg, _ = namedFromCode(code - 10)
		default:
			if c, ok := namedFromCode(code); ok {
				if code == 39 {
					c = Color{}
				}
				m.Fg = c
			}
		}
	}
	return m
}

// extendedColor parses the arguments after 38 or 48: "5;n" or "2;r;g;b".
// It returns the color and how many parameters it consumed.
func extendedColor(args []string) (Color, int) {
	if len(args) == 0 {
		return Color{}, 0
	}
	num := func(i int) uint8 {
		if i >= len(args) {
			return 0
		}
		n, _ := strconv.ParseUint(args[i], 10, 8)
		return uint8(n)
	}
	switch args[0] {
	case "5":
		return Indexed(num(1)), min(2, len(args))
	case "2":
		return RGB(num(1), num(2), num(3)), min(4, len(args))
	}
	return Color{}, 1
}

func attrForCode(code int) (Attr, bool) {
	s := strconv.Itoa(code)
	for _, ac := range attrCodes {
		if ac.code == s {
			return ac.attr, true
		}
	}
	return 0, false
}
