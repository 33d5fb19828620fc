// Package numeric implements the numeric utilities behind numconv:
// integer to Roman numeral conversion and back, parity classification,
// primality testing by trial division, and bounded factorials.
//
// Every function is pure. Expected input problems are reported as *Error
// values wrapping ErrInvalidInput or ErrOutOfRange, so callers can branch
// with errors.Is and show Error.Reason to the user.
package numeric
