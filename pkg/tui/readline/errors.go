// ABOUTME: Validation errors raised while turning a typed line into a value
// ABOUTME: ReadError carries the reason shown to the user; ErrInvalidInput classifies them

package readline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every rejected line. A transform that wraps it
// without a ReadError gets the engine's generic retry message.
var ErrInvalidInput = errors.New("invalid input")

// ReadError rejects a line with a reason printed under the prompt.
type ReadError struct {
	Reason string
}

func (e *ReadError) Error() string { return e.Reason }

// Is makes every ReadError match ErrInvalidInput.
func (e *ReadError) Is(target error) bool { return target == ErrInvalidInput }

// Invalid returns a ReadError with a formatted reason.
func Invalid(format string, args ...any) error {
	return &ReadError{Reason: fmt.Sprintf(format, args...)}
}

// reason picks the text shown for a rejected line.
func reason(err error, generic string) string {
	var re *ReadError
	switch {
	case errors.As(err, &re) && re.Reason != "":
		return re.Reason
	case errors.Is(err, ErrInvalidInput), err.Error() == "":
		return generic
	}
	return err.Error()
}
