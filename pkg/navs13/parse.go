package navs13

import "errors"

// Parse extracts the decimal digits of input and validates them as a NAVS13.
//
// Every character that is not a decimal digit is ignored, so "756.1234.5678.97",
// "7561234567897" and "AHV 756 1234 5678 97" are equivalent. Checks run in a
// fixed order: digit count, country code, checksum. The returned error is one
// of *LengthError, *CountryCodeError or *ChecksumError.
func Parse(input string) (Number, error) {
	values := extractDigits(input)

	if len(values) != Length {
		return Number{}, &LengthError{Count: len(values)}
	}

	prefix := [3]uint8{values[0], values[1], values[2]}
	if prefix != swissCountryCode {
		return Number{}, &CountryCodeError{Observed: prefix}
	}

	var n Number
	copy(n.digits[:], values[:PayloadLength])
	n.check = values[PayloadLength]

	if Checksum(n.digits) != n.check {
		return Number{}, &ChecksumError{Claimed: n.check}
	}
	return n, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package level fixtures.
func MustParse(input string) Number {
	n, err := Parse(input)
	if err != nil {
		panic("navs13: MustParse(" + input + "): " + err.Error())
	}
	return n
}

// Valid reports whether input parses as a NAVS13.
func Valid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

// extractDigits keeps the ASCII decimal digits of s, in order.
func extractDigits(s string) []uint8 {
	values := make([]uint8, 0, Length)
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			values = append(values, c-'0')
		}
	}
	return values
}

func asParseError(err error) (ParseError, bool) {
	var pe ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}
