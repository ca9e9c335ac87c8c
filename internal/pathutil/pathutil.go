// ABOUTME: Path normalization for paths typed or dropped into a prompt
// ABOUTME: Undoes shell escaping, expands ~, folds Unicode spaces, and tries NFC/NFD variants

package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSpaces replaces Unicode space characters with ASCII space (U+0020).
// Covered codepoints: U+00A0, U+2000-U+200A, U+202F, U+205F, U+3000.
func NormalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if isUnicodeSpace(r) {
			return ' '
		}
		return r
	}, s)
}

func isUnicodeSpace(r rune) bool {
	switch {
	case r == '\u00A0', r == '\u202F', r == '\u205F', r == '\u3000':
		return true
	case r >= '\u2000' && r <= '\u200A':
		return true
	}
	return false
}

// Unescape removes shell backslash escaping: every "\x" becomes "x". A
// lone trailing backslash is kept.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	if escaped {
		b.WriteByte('\\')
	}
	return b.String()
}

// Normalize turns a path as a user typed it into a usable one. Terminals
// append one space to dropped files and escape special characters, so a
// single trailing space is dropped and escapes are undone. A leading "~"
// expands to the home directory and the result is NFC normalized.
func Normalize(path string) string {
	path = strings.TrimSuffix(path, " ")
	path = Unescape(path)
	path = NormalizeSpaces(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return norm.NFC.String(path)
}

// ResolveToCwd normalizes path and, if it is relative, joins it with cwd.
// The result is always filepath.Clean'd.
func ResolveToCwd(path, cwd string) string {
	path = Normalize(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}
	return filepath.Clean(path)
}

// ResolveExisting tries Unicode variants of path against the filesystem
// and returns the first one that exists. When none does it returns the
// direct resolution and false.
func ResolveExisting(path, cwd string) (string, bool) {
	candidates := []string{
		ResolveToCwd(path, cwd),
		ResolveToCwd(norm.NFD.String(path), cwd),
		ResolveToCwd(strings.ReplaceAll(path, "\u2019", "'"), cwd),
		ResolveToCwd(norm.NFD.String(strings.ReplaceAll(path, "\u2019", "'")), cwd),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, true
		}
	}
	return candidates[0], false
}

// ReadText resolves path against the working directory and returns the
// file's contents.
func ReadText(path string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}
	resolved, _ := ResolveExisting(path, cwd)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", resolved, err)
	}
	return string(data), nil
}
