// ABOUTME: Readable describes how a typed line becomes a value of type T
// ABOUTME: Content is the immutable builder implementing it: default, conditions, stops, reader

package readline

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dlclark/regexp2"
)

// stopTimeout bounds a single stop-sequence match.
const stopTimeout = 100 * time.Millisecond

// Readable is consumed by Read to turn a line into a T.
type Readable[T any] interface {
	// Transform converts the submitted line.
	Transform(line string) (T, error)
	// Check validates a transformed value.
	Check(v T) error
	// Format renders a value, as when it is shown as the default.
	Format(v T) string
	// Default returns the value chosen by submitting the untouched
	// suggestion.
	Default() (T, bool)
	// StopSequences returns patterns that end the line as soon as the
	// whole buffer matches one, without waiting for Enter.
	StopSequences() []*regexp2.Regexp
	// NewReader builds the reader for one attempt.
	NewReader(s Session) InputReader
}

// Content is a Readable built from functions. Its With methods return
// modified copies, so a Content can be shared.
type Content[T any] struct {
	transform func(string) (T, error)
	checks    []func(T) error
	format    func(T) string
	def       T
	hasDef    bool
	stops     []*regexp2.Regexp
	reader    func(Session) InputReader
	fuzzy     bool
}

// Transform returns a Content converting lines with fn.
func Transform[T any](fn func(string) (T, error)) Content[T] {
	return Content[T]{transform: fn}
}

// Transform implements Readable.
func (c Content[T]) Transform(line string) (T, error) {
	if c.transform == nil {
		var zero T
		return zero, errors.New("content has no transform")
	}
	return c.transform(line)
}

// Check implements Readable.
func (c Content[T]) Check(v T) error {
	for _, check := range c.checks {
		if err := check(v); err != nil {
			return err
		}
	}
	return nil
}

// Format implements Readable.
func (c Content[T]) Format(v T) string {
	if c.format != nil {
		return c.format(v)
	}
	return fmt.Sprint(v)
}

// Default implements Readable.
func (c Content[T]) Default() (T, bool) { return c.def, c.hasDef }

// StopSequences implements Readable.
func (c Content[T]) StopSequences() []*regexp2.Regexp { return c.stops }

// NewReader implements Readable. Without an explicit reader, a default
// is suggested as ghost text on the first attempt.
func (c Content[T]) NewReader(s Session) InputReader {
	if c.hasDef {
		s.HasDefault = true
		s.Default = c.Format(c.def)
	}
	s.Fuzzy = s.Fuzzy || c.fuzzy
	switch {
	case c.reader != nil:
		return c.reader(s)
	case s.HasDefault && !s.Retry:
		return NewDefaultedReader(s.Buffer, s.Ghost())
	}
	return NewBasicReader(s.Buffer)
}

// WithDefault sets the value returned when the suggestion is submitted
// untouched.
func (c Content[T]) WithDefault(v T) Content[T] {
	c.def, c.hasDef = v, true
	return c
}

// WithCondition adds a predicate every value must satisfy. Rejected
// values get the generic retry message.
func (c Content[T]) WithCondition(cond func(T) bool) Content[T] {
	return c.WithCheck(func(v T) error {
		if !cond(v) {
			return ErrInvalidInput
		}
		return nil
	})
}

// WithCheck adds a validation whose error explains the rejection.
func (c Content[T]) WithCheck(check func(T) error) Content[T] {
	c.checks = append(slices.Clip(c.checks), check)
	return c
}

// WithFormatter sets how values are rendered.
func (c Content[T]) WithFormatter(format func(T) string) Content[T] {
	c.format = format
	return c
}

// WithStopSequence adds a stop pattern. It panics when expr does not
// compile; use CompileStopSequence for patterns from user input.
func (c Content[T]) WithStopSequence(expr string) Content[T] {
	re, err := CompileStopSequence(expr)
	if err != nil {
		panic(err)
	}
	return c.WithStopRegexp(re)
}

// WithStopRegexp adds a compiled stop pattern. It must match the whole
// line, as CompileStopSequence arranges.
func (c Content[T]) WithStopRegexp(re *regexp2.Regexp) Content[T] {
	c.stops = append(slices.Clip(c.stops), re)
	return c
}

// WithFuzzyCompletion lets option readers fall back to fuzzy matches.
func (c Content[T]) WithFuzzyCompletion() Content[T] {
	c.fuzzy = true
	return c
}

// WithReader replaces the reader built for each attempt.
func (c Content[T]) WithReader(build func(Session) InputReader) Content[T] {
	c.reader = build
	return c
}

// CompileStopSequence compiles expr anchored so that it only matches a
// whole line.
func CompileStopSequence(expr string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(`\A(?:`+expr+`)\z`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("compiling stop sequence %q: %w", expr, err)
	}
	re.MatchTimeout = stopTimeout
	return re, nil
}
