package numeric

import (
	"errors"
	"strconv"
	"strings"
)

// MaxFactorial is the largest n whose factorial fits exactly in a uint64
// (and in an int64).
const MaxFactorial = 20

// Factorial returns n! for 0 <= n <= MaxFactorial.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, invalid("factorial", strconv.Itoa(n), "Enter a non-negative number.")
	}
	if n > MaxFactorial {
		return 0, outOfRange("factorial", strconv.Itoa(n), "Number too large (Max 20).")
	}
	result := uint64(1)
	for i := 2; i <= n; i++ {
		result *= uint64(i)
	}
	return result, nil
}

// FactorialString parses raw and computes its factorial.
func FactorialString(raw string) (uint64, error) {
	n, err := ParseInteger(raw)
	if err != nil {
		// overflow is reported for both signs; a negative one is still invalid
		if errors.Is(err, ErrOutOfRange) && !strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return 0, outOfRange("factorial", raw, "Number too large (Max 20).")
		}
		return 0, invalid("factorial", raw, "Enter a non-negative number.")
	}
	if n < 0 {
		return 0, invalid("factorial", raw, "Enter a non-negative number.")
	}
	if n > MaxFactorial {
		return 0, outOfRange("factorial", raw, "Number too large (Max 20).")
	}
	return Factorial(int(n))
}
