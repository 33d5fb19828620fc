package numeric

import (
	"errors"
	"strconv"
	"strings"
)

// ParseInteger parses raw caller text as a base-10 signed integer.
// Surrounding whitespace is ignored. Fractions, exponents and trailing
// garbage are rejected with ErrInvalidInput; values that do not fit in
// an int64 are rejected with ErrOutOfRange.
func ParseInteger(raw string) (int64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, invalid("parse", raw, "Please enter a valid integer.")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, outOfRange("parse", raw, "Number is too large.")
		}
		return 0, invalid("parse", raw, "Please enter a valid integer.")
	}
	return n, nil
}

// parseFor parses raw and relabels any failure with op and reason.
func parseFor(op, raw, reason string) (int64, error) {
	n, err := ParseInteger(raw)
	if err == nil {
		return n, nil
	}
	var ne *Error
	if errors.As(err, &ne) {
		return 0, &Error{Op: op, Input: raw, Kind: ne.Kind, Reason: reason}
	}
	return 0, err
}
