package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toyz/navs13/pkg/navs13"
)

func TestErrorCode_ExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		exit int
	}{
		{InvalidLengthErrorCode, 64},
		{InvalidCountryCodeErrorCode, 65},
		{InvalidChecksumErrorCode, 66},
		{InvalidFormatErrorCode, 67},
		{UsageErrorCode, 1},
		{ServerErrorCode, 1},
		{UnknownErrorCode, 1},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.exit, tt.code.ExitCode())
		})
	}
}

func TestExitCodeOf(t *testing.T) {
	_, lenErr := navs13.Parse("756.246.8935.64")
	_, ccErr := navs13.Parse("471.9512.0028.88")
	_, sumErr := navs13.Parse("756.2465.8935.65")

	assert.Equal(t, ExitOK, ExitCodeOf(nil))
	assert.Equal(t, ExitInvalidLength, ExitCodeOf(lenErr))
	assert.Equal(t, ExitInvalidCountryCode, ExitCodeOf(ccErr))
	assert.Equal(t, ExitInvalidChecksum, ExitCodeOf(sumErr))
	assert.Equal(t, ExitFailure, ExitCodeOf(stderrors.New("boom")))

	wrapped := fmt.Errorf("validating: %w", FromParseError("x", sumErr))
	assert.Equal(t, ExitInvalidChecksum, ExitCodeOf(wrapped))
}

func TestFromParseError(t *testing.T) {
	t.Run("too few digits", func(t *testing.T) {
		_, cause := navs13.Parse("756.246.8935.64")
		err := FromParseError("756.246.8935.64", cause)

		assert.Equal(t, InvalidLengthErrorCode, err.ErrorCode())
		assert.Equal(t, "number of digits should be 13, found: 12", err.Error())
		assert.Equal(t, 12, err.Context()["digits_found"])
		assert.Equal(t, "756.246.8935.64", err.Context()["input"])
		require.Len(t, err.Suggestions(), 1)
		assert.Contains(t, err.Suggestions()[0], "1 digit(s) are missing")
		assert.True(t, stderrors.Is(err, cause))
	})

	t.Run("too many digits", func(t *testing.T) {
		_, cause := navs13.Parse("756.2465.8935.6412")
		err := FromParseError("", cause)
		assert.Contains(t, err.Suggestions()[0], "2 extra digit(s)")
	})

	t.Run("country code", func(t *testing.T) {
		_, cause := navs13.Parse("471.9512.0028.88")
		err := FromParseError("471.9512.0028.88", cause)

		assert.Equal(t, InvalidCountryCodeErrorCode, err.ErrorCode())
		assert.Equal(t, "471", err.Context()["country_code"])
	})

	t.Run("checksum", func(t *testing.T) {
		_, cause := navs13.Parse("756.2465.8935.65")
		err := FromParseError("756.2465.8935.65", cause)

		assert.Equal(t, InvalidChecksumErrorCode, err.ErrorCode())
		assert.Equal(t, uint8(5), err.Context()["check_digit"])
	})

	t.Run("format", func(t *testing.T) {
		_, cause := navs13.ParseCanonical("7562465893564")
		err := FromParseError("7562465893564", cause)

		assert.Equal(t, InvalidFormatErrorCode, err.ErrorCode())
		assert.Contains(t, err.Suggestions()[0], "-strict")
	})

	t.Run("unclassified", func(t *testing.T) {
		err := FromParseError("x", stderrors.New("boom"))
		assert.Equal(t, UnknownErrorCode, err.ErrorCode())
		assert.Empty(t, err.Suggestions())
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("-number", "a value between 1 and 255", "0").
		WithSuggestion("use -number 1")

	assert.Equal(t, "invalid value for -number: expected a value between 1 and 255, got 0", err.Error())
	assert.Equal(t, UsageErrorCode, CodeOf(err))
	assert.Equal(t, ExitFailure, ExitCodeOf(err))
	assert.Equal(t, []string{"use -number 1"}, err.Suggestions())
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("navs13", "-create")

	assert.Equal(t, "navs13 cannot be used together with -create", err.Error())
	assert.Equal(t, "-create", err.Context()["conflicts_with"])
}

func TestWrapServerError(t *testing.T) {
	cause := stderrors.New("address already in use")
	err := WrapServerError("start", "Gin", cause)

	assert.Equal(t, "failed to start Gin server", err.Error())
	assert.Equal(t, ServerErrorCode, err.ErrorCode())
	assert.Same(t, cause, stderrors.Unwrap(err))
}

func TestWrapUsageError(t *testing.T) {
	err := WrapUsageError("-engine", stderrors.New("unknown engine"))
	assert.Equal(t, "invalid use of -engine", err.Error())
	assert.Equal(t, "-engine", err.Context()["flag"])
}
