package navs13

import (
	"fmt"
	"strings"
)

// Kind classifies a parse failure.
type Kind int

const (
	// InvalidLength means the input did not hold exactly 13 digits.
	InvalidLength Kind = iota + 1
	// InvalidCountryCode means the first three digits are not 756.
	InvalidCountryCode
	// InvalidChecksum means the check digit does not match the payload.
	InvalidChecksum
	// InvalidFormat means the input is not in the canonical dotted layout.
	// Only ParseCanonical reports it.
	InvalidFormat
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case InvalidLength:
		return "InvalidLength"
	case InvalidCountryCode:
		return "InvalidCountryCode"
	case InvalidChecksum:
		return "InvalidChecksum"
	case InvalidFormat:
		return "InvalidFormat"
	default:
		return "Unknown"
	}
}

// ParseError is implemented by every error returned from Parse and
// ParseCanonical.
type ParseError interface {
	error
	Kind() Kind
}

// LengthError reports an input with the wrong number of digits.
type LengthError struct {
	Count int // digits found after filtering
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("number of digits should be %d, found: %d", Length, e.Count)
}

// Kind returns InvalidLength.
func (e *LengthError) Kind() Kind { return InvalidLength }

// CountryCodeError reports a prefix other than 756.
type CountryCodeError struct {
	Observed [3]uint8
}

func (e *CountryCodeError) Error() string {
	return fmt.Sprintf("%d%d%d isn't iso-3166 for Switzerland", e.Observed[0], e.Observed[1], e.Observed[2])
}

// Kind returns InvalidCountryCode.
func (e *CountryCodeError) Kind() Kind { return InvalidCountryCode }

// ChecksumError reports a check digit that does not match the payload.
type ChecksumError struct {
	Claimed uint8
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("%d is an invalid EAN-13 check digit", e.Claimed)
}

// Kind returns InvalidChecksum.
func (e *ChecksumError) Kind() Kind { return InvalidChecksum }

// FormatError reports an input rejected by ParseCanonical before any digit
// was validated.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%q is not in the DDD.DDDD.DDDD.DD layout", e.Input)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Kind returns InvalidFormat.
func (e *FormatError) Kind() Kind { return InvalidFormat }

// KindOf returns the kind of err, or 0 if err is not a ParseError.
func KindOf(err error) Kind {
	if pe, ok := asParseError(err); ok {
		return pe.Kind()
	}
	return 0
}
