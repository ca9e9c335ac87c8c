// ABOUTME: Built-in contents: strings, numbers, booleans, paths, files, options
// ABOUTME: Each returns a Content ready for Read and further With customization

package readline

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/mauromedda/promptline/internal/pathutil"
	"github.com/mauromedda/promptline/pkg/tui/style"
)

// String accepts any line as is.
func String() Content[string] {
	return Transform(func(s string) (string, error) { return s, nil })
}

// Int accepts a base 10 integer.
func Int() Content[int] {
	return Transform(func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, s)
		}
		return n, nil
	})
}

// Double accepts a floating point number.
func Double() Content[float64] {
	return Transform(func(s string) (float64, error) {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, s)
		}
		return f, nil
	}).WithFormatter(func(f float64) string {
		return strconv.FormatFloat(f, 'g', -1, 64)
	})
}

// Bool accepts yes/y/true and no/n/false in any case.
func Bool() Content[bool] {
	return Transform(func(s string) (bool, error) {
		switch strings.ToLower(s) {
		case "yes", "y", "true":
			return true, nil
		case "no", "n", "false":
			return false, nil
		}
		return false, &ReadError{Reason: "Not a boolean value."}
	}).WithFormatter(func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	})
}

// FilePath accepts a path and normalizes it as typed into a shell.
func FilePath() Content[string] {
	return Transform(func(s string) (string, error) {
		return pathutil.Normalize(s), nil
	})
}

// ExistingPath accepts a path only when something exists there, and
// returns it resolved against the working directory.
func ExistingPath() Content[string] {
	return Transform(func(s string) (string, error) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting working directory: %w", err)
		}
		path, ok := pathutil.ResolveExisting(s, cwd)
		if !ok {
			return "", &ReadError{Reason: "Invalid Input: The input filePath does not exist"}
		}
		return path, nil
	})
}

// TextFile reads the file at the typed path and returns its contents.
func TextFile() Content[string] {
	return Transform(func(s string) (string, error) {
		text, err := pathutil.ReadText(s)
		if err != nil {
			return "", Invalid("Invalid Input: %v", err)
		}
		return text, nil
	})
}

// Options accepts exactly one of options. Up/Down and Tab complete to
// them while typing.
func Options(options ...string) Content[string] {
	options = slices.Clone(options)
	return Transform(func(s string) (string, error) {
		if slices.Contains(options, s) {
			return s, nil
		}
		if best, ok := closest(s, options); ok {
			return "", Invalid("Invalid Input: Input not in acceptable set. Did you mean %q?", best)
		}
		return "", &ReadError{Reason: "Invalid Input: Input not in acceptable set"}
	}).WithReader(optionsReaderFor(options))
}

// UnboundedOptions completes to options but accepts any line.
func UnboundedOptions(options ...string) Content[string] {
	options = slices.Clone(options)
	return String().WithReader(optionsReaderFor(options))
}

// Reformatting accepts any line and redraws it through format while it
// is typed. format must keep the raw text unchanged.
func Reformatting(format func(string) style.Text) Content[string] {
	return String().WithReader(func(s Session) InputReader {
		def := ""
		if s.HasDefault {
			def = s.Default
		}
		return NewReformattingReader(s.Buffer, format, def)
	})
}

func optionsReaderFor(options []string) func(Session) InputReader {
	return func(s Session) InputReader {
		return NewOptionsReader(s.Buffer, options, s.Ghost(), s.Fuzzy)
	}
}

// closest returns the option nearest to s by edit distance, if any is
// near enough to be a plausible typo.
func closest(s string, options []string) (string, bool) {
	if s == "" {
		return "", false
	}
	best, bestDist := "", -1
	for _, o := range options {
		d := levenshtein.ComputeDistance(s, o)
		if bestDist < 0 || d < bestDist {
			best, bestDist = o, d
		}
	}
	if bestDist < 0 || bestDist > max(2, utf8.RuneCountInString(best)/2) {
		return "", false
	}
	return best, true
}
