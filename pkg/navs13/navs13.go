// Package navs13 validates and generates Swiss social-insurance numbers
// (NAVS13, "AHV-Nummer" / "numéro AVS").
//
// A NAVS13 is a 13 digit EAN-13 code: the ISO 3166 numeric country code of
// Switzerland (756), nine free digits and a trailing check digit. Only the
// structure is validated; a valid number is not necessarily issued.
//
// Example:
//
//	n, err := navs13.Parse("756.2465.8935.64")
//	if err != nil {
//	    var lenErr *navs13.LengthError
//	    if errors.As(err, &lenErr) {
//	        // lenErr.Count digits were found
//	    }
//	}
//	fmt.Println(n) // 756.2465.8935.64
package navs13

import "strings"

// swissCountryCode is the ISO 3166-1 numeric code of Switzerland, split in
// digits. Number.CountryCode exposes it as a copy.
var swissCountryCode = [3]uint8{7, 5, 6}

const (
	// Length is the number of digits in a NAVS13, check digit included.
	Length = 13

	// PayloadLength is the number of digits covered by the check digit.
	PayloadLength = 12
)

// Number is a structurally valid NAVS13.
//
// The zero value is not a valid number; values are obtained from Parse,
// ParseCanonical or Generate.
type Number struct {
	digits [PayloadLength]uint8
	check  uint8
}

// Digits returns the 12 payload digits, country code included.
func (n Number) Digits() [PayloadLength]uint8 {
	return n.digits
}

// Check returns the EAN-13 check digit.
func (n Number) Check() uint8 {
	return n.check
}

// CountryCode returns the first three digits.
func (n Number) CountryCode() [3]uint8 {
	return [3]uint8{n.digits[0], n.digits[1], n.digits[2]}
}

// IsZero reports whether n is the zero Number.
func (n Number) IsZero() bool {
	return n == Number{}
}

// String renders n in the canonical DDD.DDDD.DDDD.DD layout.
func (n Number) String() string {
	var b strings.Builder
	b.Grow(Length + 3)
	for i, d := range n.digits {
		if i == 3 || i == 7 || i == 11 {
			b.WriteByte('.')
		}
		b.WriteByte('0' + d)
	}
	b.WriteByte('0' + n.check)
	return b.String()
}

// Compact renders n as 13 digits without separators.
func (n Number) Compact() string {
	var b strings.Builder
	b.Grow(Length)
	for _, d := range n.digits {
		b.WriteByte('0' + d)
	}
	b.WriteByte('0' + n.check)
	return b.String()
}
