package errors

import "fmt"

// ValidationError reports a command line or request parameter with an
// unacceptable value
type ValidationError struct {
	*BaseError
	Field    string // flag or parameter that failed validation
	Expected string // what was expected
	Actual   string // what was provided
}

// NewValidationError creates a new usage-class validation error
func NewValidationError(field, expected, actual string) *ValidationError {
	message := fmt.Sprintf("invalid value for %s: expected %s, got %s", field, expected, actual)

	return &ValidationError{
		BaseError: New(UsageErrorCode, message).
			WithContext("field", field),
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

// NewConflictError reports two options that cannot be used together
func NewConflictError(first, second string) *ValidationError {
	message := fmt.Sprintf("%s cannot be used together with %s", first, second)

	return &ValidationError{
		BaseError: New(UsageErrorCode, message).
			WithContext("field", first).
			WithContext("conflicts_with", second),
		Field:    first,
		Expected: "used alone",
		Actual:   "combined with " + second,
	}
}

// WithSuggestion adds a helpful suggestion
func (e *ValidationError) WithSuggestion(suggestion string) *ValidationError {
	e.BaseError.WithSuggestion(suggestion)
	return e
}
