// ABOUTME: Table-driven tests for key decoding covering arrows, control bytes, and UTF-8
// ABOUTME: Validates ParseKey, Decoder streaming, Sequence round trips, and String labels

package key

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

func TestParseKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Key
	}{
		// Printable ASCII
		{name: "lowercase a", data: "a", want: Char('a')},
		{name: "uppercase Z", data: "Z", want: Char('Z')},
		{name: "digit", data: "7", want: Char('7')},
		{name: "space", data: " ", want: Char(' ')},

		// Control bytes
		{name: "tab", data: "\t", want: Tab},
		{name: "newline", data: "\n", want: Newline},
		{name: "delete", data: "\x7f", want: Delete},
		{name: "carriage return is a char", data: "\r", want: Char('\r')},

		// Arrows
		{name: "arrow up", data: "\x1b[A", want: Up},
		{name: "arrow down", data: "\x1b[B", want: Down},
		{name: "arrow right", data: "\x1b[C", want: Right},
		{name: "arrow left", data: "\x1b[D", want: Left},

		// Other escapes
		{name: "csi home", data: "\x1b[H", want: Escape('H')},
		{name: "ss3 up", data: "\x1bOA", want: Escape('A')},
		{name: "lone escape", data: "\x1b", want: BadSymbol},
		{name: "short escape", data: "\x1b[", want: BadSymbol},

		// UTF-8
		{name: "two byte", data: "é", want: Char('é')},
		{name: "three byte", data: "你", want: Char('你')},
		{name: "four byte", data: "😊", want: Char('😊')},
		{name: "truncated scalar", data: "\xe4\xbd", want: Empty},
		{name: "bad continuation", data: "\xe4\x41\x41", want: BadSymbol},
		{name: "stray continuation byte", data: "\x80", want: Char(0x80)},

		{name: "empty input", data: "", want: Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseKey(tt.data)
			if got != tt.want {
				t.Errorf("ParseKey(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestDecoder_StreamsOneEventPerCall(t *testing.T) {
	t.Parallel()

	d := NewDecoder(strings.NewReader("ab\x1b[Dé\t\n"))
	want := []Key{Char('a'), Char('b'), Left, Char('é'), Tab, Newline}

	var got []Key
	for {
		k, err := d.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		got = append(got, k)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decoded keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_OneByteReader(t *testing.T) {
	t.Parallel()

	// A reader that hands out one byte per Read mimics a raw-mode tty.
	d := NewDecoder(iotest.OneByteReader(strings.NewReader("\x1b[B😊")))
	if k, _ := d.Next(); k != Down {
		t.Errorf("first key = %v, want Down", k)
	}
	if k, _ := d.Next(); k != Char('😊') {
		t.Errorf("second key = %v, want Char('😊')", k)
	}
	if _, err := d.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("third Next() err = %v, want io.EOF", err)
	}
}

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	d := NewDecoder(iotest.ErrReader(boom))
	if _, err := d.Next(); !errors.Is(err, boom) {
		t.Errorf("Next() err = %v, want %v", err, boom)
	}
}

func TestPrintableRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{"hello world", "Grüße, 你好 😊", "~!@#$%^&*()_+"}
	for _, in := range inputs {
		var b strings.Builder
		for _, k := range ParseKeys(in) {
			if k.Type != KeyChar {
				t.Fatalf("ParseKeys(%q) produced non-char %v", in, k)
			}
			b.WriteRune(k.Rune)
		}
		if b.String() != in {
			t.Errorf("round trip of %q = %q", in, b.String())
		}
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	keys := []Key{Up, Down, Right, Left, Tab, Newline, Delete, Char('x'), Char('你'), Escape('H')}
	got := ParseKeys(Script(keys...))
	if diff := cmp.Diff(keys, got); diff != "" {
		t.Errorf("Script round trip mismatch (-want +got):\n%s", diff)
	}
	if BadSymbol.Sequence() != "" || Empty.Sequence() != "" {
		t.Error("BadSymbol and Empty should have no encoding")
	}
}

func TestKeyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key  Key
		want string
	}{
		{key: Char('a'), want: "Char('a')"},
		{key: Escape('H'), want: "Escape('H')"},
		{key: Up, want: "Up"},
		{key: Newline, want: "Newline"},
		{key: BadSymbol, want: "BadSymbol"},
		{key: Key{Type: KeyType(99)}, want: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.key.String(); got != tt.want {
				t.Errorf("Key.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
