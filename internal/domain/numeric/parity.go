package numeric

// Parity is the result of ClassifyParity.
type Parity int

const (
	Even Parity = iota
	Odd
)

// String returns "Even" or "Odd".
func (p Parity) String() string {
	if p == Odd {
		return "Odd"
	}
	return "Even"
}

// ClassifyParity reports whether n is even or odd. Negative values are
// allowed; Go's remainder is zero for every even n regardless of sign.
func ClassifyParity(n int64) Parity {
	if n%2 == 0 {
		return Even
	}
	return Odd
}

// ClassifyParityString parses raw and classifies it.
func ClassifyParityString(raw string) (Parity, error) {
	n, err := ParseInteger(raw)
	if err != nil {
		return Even, invalid("parity", raw, "Please enter a valid integer.")
	}
	return ClassifyParity(n), nil
}
