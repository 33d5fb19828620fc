package entity

import (
	"fmt"
	"strings"
)

// Operation identifies one of the numeric utilities.
type Operation string

const (
	OpIntToRoman Operation = "int-to-roman"
	OpRomanToInt Operation = "roman-to-int"
	OpParity     Operation = "parity"
	OpPrime      Operation = "prime"
	OpFactorial  Operation = "factorial"
)

// AllOperations lists every operation in display order.
func AllOperations() []Operation {
	return []Operation{OpIntToRoman, OpRomanToInt, OpParity, OpPrime, OpFactorial}
}

// Valid reports whether o is a known operation.
func (o Operation) Valid() bool {
	switch o {
	case OpIntToRoman, OpRomanToInt, OpParity, OpPrime, OpFactorial:
		return true
	}
	return false
}

// ParseOperation resolves an operation name, ignoring case and surrounding whitespace.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	if !op.Valid() {
		return "", &ValidationError{Field: "operation", Message: fmt.Sprintf("unknown operation %q", s)}
	}
	return op, nil
}
