package numeric

import "strconv"

const primeReason = "Please enter a positive integer."

// Primality is the outcome of CheckPrime. When Prime is false, Divisor
// holds the smallest nontrivial divisor found, or 0 for 0 and 1 where no
// divisor applies.
type Primality struct {
	N       int64
	Prime   bool
	Divisor int64
}

// HasDivisor reports whether a divisor was found.
func (p Primality) HasDivisor() bool {
	return !p.Prime && p.Divisor > 1
}

// String renders the result the way the calculator page does.
func (p Primality) String() string {
	switch {
	case p.Prime:
		return "Prime Number"
	case p.HasDivisor():
		return "Not Prime (Divisible by " + strconv.FormatInt(p.Divisor, 10) + ")"
	default:
		return "Not Prime (Divisible by N/A)"
	}
}

// CheckPrime tests n by trial division. 0 and 1 are not prime and carry no
// divisor; 2 and 3 are prime. Beyond that, 2 and 3 are tried first and
// then the 6k±1 wheel (5, 7, 11, 13, ...) while i*i <= n.
func CheckPrime(n int64) (Primality, error) {
	if n < 0 {
		return Primality{}, outOfRange("prime", strconv.FormatInt(n, 10), primeReason)
	}
	return checkPrime(n), nil
}

// CheckPrimeString parses raw and tests it with CheckPrime.
func CheckPrimeString(raw string) (Primality, error) {
	n, err := parseFor("prime", raw, primeReason)
	if err != nil {
		return Primality{}, err
	}
	if n < 0 {
		return Primality{}, outOfRange("prime", raw, primeReason)
	}
	return checkPrime(n), nil
}

func checkPrime(n int64) Primality {
	switch {
	case n <= 1:
		return Primality{N: n}
	case n <= 3:
		return Primality{N: n, Prime: true}
	case n%2 == 0:
		return Primality{N: n, Divisor: 2}
	case n%3 == 0:
		return Primality{N: n, Divisor: 3}
	}

	// i <= n/i is i*i <= n without overflowing near MaxInt64.
	for i := int64(5); i <= n/i; i += 6 {
		if n%i == 0 {
			return Primality{N: n, Divisor: i}
		}
		if n%(i+2) == 0 {
			return Primality{N: n, Divisor: i + 2}
		}
	}
	return Primality{N: n, Prime: true}
}
