// ABOUTME: Tests for built-in contents, builders, and rejection reasons
// ABOUTME: Covers transforms, formatters, stop sequence compilation, and option suggestions

package readline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestBool_Transform(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{"yes", true, false},
		{"Y", true, false},
		{"true", true, false},
		{"no", false, false},
		{"N", false, false},
		{"FALSE", false, false},
		{"maybe", false, true},
		{"", false, true},
	}
	for _, tt := range tests {
		got, err := Bool().Transform(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Bool().Transform(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
	if got := Bool().Format(false); got != "no" {
		t.Errorf("Bool().Format(false) = %q, want %q", got, "no")
	}
}

func TestNumbers_Transform(t *testing.T) {
	t.Parallel()

	if n, err := Int().Transform("-17"); err != nil || n != -17 {
		t.Errorf("Int().Transform(-17) = %d, %v", n, err)
	}
	if _, err := Int().Transform("1.5"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Int().Transform(1.5) error = %v, want ErrInvalidInput", err)
	}
	if f, err := Double().Transform("2.5e3"); err != nil || f != 2500 {
		t.Errorf("Double().Transform(2.5e3) = %v, %v", f, err)
	}
	if got := Double().Format(0.5); got != "0.5" {
		t.Errorf("Double().Format(0.5) = %q, want %q", got, "0.5")
	}
}

func TestPathContents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "my file.txt")
	if err := os.WriteFile(path, []byte("contents"), 0o644); err != nil {
		t.Fatal(err)
	}
	escaped := filepath.Join(dir, `my\ file.txt`) + " "

	if got, _ := FilePath().Transform(escaped); got != path {
		t.Errorf("FilePath().Transform(%q) = %q, want %q", escaped, got, path)
	}
	if got, err := ExistingPath().Transform(escaped); err != nil || got != path {
		t.Errorf("ExistingPath().Transform(%q) = %q, %v; want %q", escaped, got, err, path)
	}
	_, err := ExistingPath().Transform(filepath.Join(dir, "none"))
	if want := "Invalid Input: The input filePath does not exist"; err == nil || err.Error() != want {
		t.Errorf("ExistingPath() on missing file error = %v, want %q", err, want)
	}
	if got, err := TextFile().Transform(escaped); err != nil || got != "contents" {
		t.Errorf("TextFile().Transform(%q) = %q, %v", escaped, got, err)
	}
	if _, err := TextFile().Transform(filepath.Join(dir, "none")); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("TextFile() on missing file error = %v, want ErrInvalidInput", err)
	}
}

func TestOptions_Transform(t *testing.T) {
	t.Parallel()

	opts := Options("staging", "production")
	tests := []struct {
		in   string
		want string
	}{
		{"staging", ""},
		{"prodution", `Invalid Input: Input not in acceptable set. Did you mean "production"?`},
		{"qa", "Invalid Input: Input not in acceptable set"},
		{"", "Invalid Input: Input not in acceptable set"},
	}
	for _, tt := range tests {
		_, err := opts.Transform(tt.in)
		got := ""
		if err != nil {
			got = err.Error()
		}
		if got != tt.want {
			t.Errorf("Options.Transform(%q) error = %q, want %q", tt.in, got, tt.want)
		}
	}
	if _, err := UnboundedOptions("a").Transform("zzz"); err != nil {
		t.Errorf("UnboundedOptions.Transform() error = %v", err)
	}
}

func TestContent_BuildersAreImmutable(t *testing.T) {
	t.Parallel()

	base := Int()
	withDef := base.WithDefault(3)
	positive := base.WithCondition(func(n int) bool { return n > 0 })

	if _, ok := base.Default(); ok {
		t.Error("WithDefault modified the receiver")
	}
	if v, ok := withDef.Default(); !ok || v != 3 {
		t.Errorf("Default() = %d, %v; want 3, true", v, ok)
	}
	if err := base.Check(-1); err != nil {
		t.Errorf("base.Check(-1) = %v, want nil", err)
	}
	if err := positive.Check(-1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("positive.Check(-1) = %v, want ErrInvalidInput", err)
	}

	a := base.WithStopSequence("a")
	b := a.WithStopSequence("b")
	if len(a.StopSequences()) != 1 || len(b.StopSequences()) != 2 {
		t.Errorf("stop sequences: a has %d, b has %d; want 1 and 2", len(a.StopSequences()), len(b.StopSequences()))
	}
}

func TestCompileStopSequence(t *testing.T) {
	t.Parallel()

	re, err := CompileStopSequence(`q|quit`)
	if err != nil {
		t.Fatalf("CompileStopSequence() error = %v", err)
	}
	tests := []struct {
		line string
		want bool
	}{
		{"q", true},
		{"quit", true},
		{"qu", false},
		{"quitter", false},
		{"a q", false},
	}
	for _, tt := range tests {
		if got, _ := re.MatchString(tt.line); got != tt.want {
			t.Errorf("match(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
	if _, err := CompileStopSequence(`(`); err == nil {
		t.Error("CompileStopSequence(\"(\") should fail")
	}
}

func TestReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{&ReadError{Reason: "bad"}, "bad"},
		{fmt.Errorf("wrapped: %w", &ReadError{Reason: "deep"}), "deep"},
		{ErrInvalidInput, "generic"},
		{fmt.Errorf("%w: detail", ErrInvalidInput), "generic"},
		{&ReadError{}, "generic"},
		{errors.New("custom failure"), "custom failure"},
	}
	for _, tt := range tests {
		if got := reason(tt.err, "generic"); got != tt.want {
			t.Errorf("reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestTransform_Custom(t *testing.T) {
	t.Parallel()

	hex := Transform(func(s string) (int64, error) {
		var n int64
		_, err := fmt.Sscanf(s, "%x", &n)
		return n, err
	}).WithFormatter(func(n int64) string { return fmt.Sprintf("%#x", n) })

	if n, err := hex.Transform("ff"); err != nil || n != 255 {
		t.Errorf("Transform(ff) = %d, %v", n, err)
	}
	if got := hex.Format(16); got != "0x10" {
		t.Errorf("Format(16) = %q, want %q", got, "0x10")
	}
}
