// ABOUTME: Defines the Key event type produced by the input decoder
// ABOUTME: Arrows, tab, newline, delete, printable scalars, unknown escapes, and malformed input

package key

import (
	"fmt"
	"io"
	"strings"
)

// Key represents a single decoded keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // Payload for KeyChar and KeyEscape
}

// KeyType enumerates the kinds of key events the decoder can produce.
type KeyType int

const (
	KeyChar      KeyType = iota // Printable (or otherwise unclassified) scalar
	KeyUp                       // ESC [ A
	KeyDown                     // ESC [ B
	KeyRight                    // ESC [ C
	KeyLeft                     // ESC [ D
	KeyTab                      // 0x09
	KeyNewline                  // 0x0A
	KeyDelete                   // 0x7F (backspace on most keyboards)
	KeyEscape                   // ESC followed by two bytes that are not an arrow
	KeyBadSymbol                // Malformed UTF-8 or truncated escape
	KeyEmpty                    // Input ended in the middle of a scalar
)

// Convenience values for keys without payload.
var (
	Up        = Key{Type: KeyUp}
	Down      = Key{Type: KeyDown}
	Right     = Key{Type: KeyRight}
	Left      = Key{Type: KeyLeft}
	Tab       = Key{Type: KeyTab}
	Newline   = Key{Type: KeyNewline}
	Delete    = Key{Type: KeyDelete}
	BadSymbol = Key{Type: KeyBadSymbol}
	Empty     = Key{Type: KeyEmpty}
)

// Char returns a printable scalar key.
func Char(r rune) Key { return Key{Type: KeyChar, Rune: r} }

// Escape returns an unrecognized escape key carrying the final byte.
func Escape(r rune) Key { return Key{Type: KeyEscape, Rune: r} }

// ParseKey decodes the first key event in data. Empty input yields KeyEmpty.
func ParseKey(data string) Key {
	k, err := NewDecoder(strings.NewReader(data)).Next()
	if err == io.EOF {
		return Empty
	}
	return k
}

// ParseKeys decodes every key event in data, in order.
func ParseKeys(data string) []Key {
	d := NewDecoder(strings.NewReader(data))
	var keys []Key
	for {
		k, err := d.Next()
		if err != nil {
			return keys
		}
		keys = append(keys, k)
	}
}

// Sequence returns the byte encoding a terminal sends for k. BadSymbol and
// Empty have no encoding and return "".
func (k Key) Sequence() string {
	switch k.Type {
	case KeyChar:
		return string(k.Rune)
	case KeyEscape:
		return "\x1b[" + string(k.Rune)
	case KeyTab:
		return "\t"
	case KeyNewline:
		return "\n"
	case KeyDelete:
		return "\x7f"
	}
	if seq, ok := arrowSequences[k.Type]; ok {
		return seq
	}
	return ""
}

// Script concatenates the byte encodings of keys. Handy for feeding a
// decoder a sequence of keystrokes.
func Script(keys ...Key) string {
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k.Sequence())
	}
	return b.String()
}

// IsPrintable reports whether k inserts visible text.
func (k Key) IsPrintable() bool {
	return k.Type == KeyChar
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyTab:       "Tab",
	KeyNewline:   "Newline",
	KeyDelete:    "Delete",
	KeyBadSymbol: "BadSymbol",
	KeyEmpty:     "Empty",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	switch k.Type {
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KeyEscape:
		return fmt.Sprintf("Escape(%q)", k.Rune)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}
