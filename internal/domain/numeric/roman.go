package numeric

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	// MinRoman is the smallest integer representable as a Roman numeral.
	MinRoman = 1
	// MaxRoman is the largest integer representable in standard notation.
	MaxRoman = 3999
)

type romanPair struct {
	symbol string
	value  int
}

// romanTable must stay in strictly descending value order: ToRoman is a
// greedy walk over it.
var romanTable = [...]romanPair{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4},
	{"I", 1},
}

var romanPattern = regexp.MustCompile(`^M{0,3}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

const romanRangeReason = "Please enter a number between 1 and 3999."

// ToRoman converts n to its Roman numeral form.
// n must lie within [MinRoman, MaxRoman].
func ToRoman(n int) (string, error) {
	if n < MinRoman || n > MaxRoman {
		return "", outOfRange("int-to-roman", strconv.Itoa(n), romanRangeReason)
	}

	var b strings.Builder
	for _, p := range romanTable {
		for n >= p.value {
			b.WriteString(p.symbol)
			n -= p.value
		}
	}
	return b.String(), nil
}

// ToRomanString parses raw as an integer and converts it with ToRoman.
func ToRomanString(raw string) (string, error) {
	n, err := parseFor("int-to-roman", raw, romanRangeReason)
	if err != nil {
		return "", err
	}
	if n < MinRoman || n > MaxRoman {
		return "", outOfRange("int-to-roman", raw, romanRangeReason)
	}
	return ToRoman(int(n))
}

// NormalizeRoman trims and upper-cases a numeral as FromRoman sees it.
func NormalizeRoman(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidRoman reports whether s (after normalisation) is a well-formed
// numeral in standard subtractive notation.
func ValidRoman(s string) bool {
	s = NormalizeRoman(s)
	return s != "" && romanPattern.MatchString(s)
}

// FromRoman converts a Roman numeral to its integer value. Input is
// case-insensitive and may carry surrounding whitespace. The numeral is
// checked against the standard grammar before any arithmetic happens, so
// strings such as "IIII", "VX" or "IIX" are rejected rather than summed.
func FromRoman(s string) (int, error) {
	norm := NormalizeRoman(s)
	if norm == "" || !romanPattern.MatchString(norm) {
		return 0, invalid("roman-to-int", s, "Invalid Roman Numeral.")
	}
	return scanRoman(norm), nil
}

func romanDigit(c byte) int {
	switch c {
	case 'I':
		return 1
	case 'V':
		return 5
	case 'X':
		return 10
	case 'L':
		return 50
	case 'C':
		return 100
	case 'D':
		return 500
	case 'M':
		return 1000
	}
	return 0
}

// scanRoman assumes s already matched romanPattern.
func scanRoman(s string) int {
	total := 0
	for i := 0; i < len(s); i++ {
		cur := romanDigit(s[i])
		if i+1 < len(s) && romanDigit(s[i+1]) > cur {
			total -= cur
		} else {
			total += cur
		}
	}
	return total
}
