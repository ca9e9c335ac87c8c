// ABOUTME: Tests for ANSI stripping and escape sequence skipping
// ABOUTME: Covers CSI, OSC with BEL and ST terminators, and truncated sequences

package width

import "testing"

func TestStripANSI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no escapes", input: "plain", want: "plain"},
		{name: "sgr", input: "\x1b[1;31mbold red\x1b[0m", want: "bold red"},
		{name: "cursor move", input: "ab\x1b[2Dc", want: "abc"},
		{name: "osc bel", input: "\x1b]0;title\x07text", want: "text"},
		{name: "osc st", input: "\x1b]8;;http://x\x1b\\link", want: "link"},
		{name: "charset", input: "\x1b(Bok", want: "ok"},
		{name: "truncated csi", input: "x\x1b[12", want: "x"},
		{name: "lone esc", input: "x\x1b", want: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSkipSequence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		start int
		want  int
	}{
		{name: "not escape", input: "abc", start: 1, want: 1},
		{name: "sgr", input: "\x1b[0mX", start: 0, want: 4},
		{name: "params", input: "a\x1b[38;5;21mb", start: 1, want: 11},
		{name: "two byte", input: "\x1b7rest", start: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := SkipSequence(tt.input, tt.start); got != tt.want {
				t.Errorf("SkipSequence(%q, %d) = %d, want %d", tt.input, tt.start, got, tt.want)
			}
		})
	}
}
