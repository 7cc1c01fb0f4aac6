package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/toyz/navs13/pkg/navs13"
)

// FromParseError lifts a navs13 parse failure into a BaseError carrying the
// offending input and suggestions for the user. Other errors are wrapped
// with UnknownErrorCode.
func FromParseError(input string, cause error) *BaseError {
	code := CodeOf(cause)
	err := Wrap(code, cause.Error(), cause).WithContext("input", input)

	var (
		lenErr *navs13.LengthError
		ccErr  *navs13.CountryCodeError
		sumErr *navs13.ChecksumError
		fmtErr *navs13.FormatError
	)
	switch {
	case stderrors.As(cause, &lenErr):
		err.WithContext("digits_found", lenErr.Count).
			WithContext("digits_expected", navs13.Length)
		if lenErr.Count < navs13.Length {
			err.WithSuggestion(fmt.Sprintf("%d digit(s) are missing, check for a dropped group", navs13.Length-lenErr.Count))
		} else {
			err.WithSuggestion(fmt.Sprintf("%d extra digit(s) found, only separators may surround the number", lenErr.Count-navs13.Length))
		}
	case stderrors.As(cause, &ccErr):
		err.WithContext("country_code", fmt.Sprintf("%d%d%d", ccErr.Observed[0], ccErr.Observed[1], ccErr.Observed[2])).
			WithSuggestion("Swiss social-insurance numbers always start with 756")
	case stderrors.As(cause, &sumErr):
		err.WithContext("check_digit", sumErr.Claimed).
			WithSuggestion("the last digit does not match, look for a mistyped or swapped digit")
	case stderrors.As(cause, &fmtErr):
		err.WithSuggestion("write the number as DDD.DDDD.DDDD.DD or drop -strict")
	}
	return err
}

// WrapUsageError wraps a command line error
func WrapUsageError(flag string, cause error) *BaseError {
	return Wrapf(UsageErrorCode, cause, "invalid use of %s", flag).
		WithContext("flag", flag)
}

// WrapServerError wraps an HTTP server failure
func WrapServerError(operation, engine string, cause error) *BaseError {
	return Wrapf(ServerErrorCode, cause, "failed to %s %s server", operation, engine).
		WithContext("operation", operation).
		WithContext("engine", engine)
}
