package numeric

import (
	"errors"
	"fmt"
)

// Sentinel errors for the numeric operations.
var (
	// ErrInvalidInput indicates unparsable text or a value outside the operation's grammar.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOutOfRange indicates a parsable value outside the operation's domain.
	ErrOutOfRange = errors.New("out of range")
)

// Error describes a rejected input. Kind is one of the sentinel errors above.
type Error struct {
	Op     string
	Input  string
	Kind   error
	Reason string
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %s: %s", e.Op, e.Input, e.Kind, e.Reason)
}

// Unwrap exposes Kind so errors.Is works against the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

func invalid(op, input, reason string) *Error {
	return &Error{Op: op, Input: input, Kind: ErrInvalidInput, Reason: reason}
}

func outOfRange(op, input, reason string) *Error {
	return &Error{Op: op, Input: input, Kind: ErrOutOfRange, Reason: reason}
}

// Reason returns the user-facing reason carried by err, or err.Error()
// when err is not a *Error.
func Reason(err error) string {
	var ne *Error
	if errors.As(err, &ne) {
		return ne.Reason
	}
	return err.Error()
}
