package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	apperrors "github.com/toyz/navs13/internal/errors"
	"github.com/toyz/navs13/pkg/navs13"
)

func TestDiagnosticReporter_ReportError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false, false)

	_, cause := navs13.Parse("471.9512.0028.88")
	reporter.ReportError(apperrors.FromParseError("471.9512.0028.88", cause))

	output := buf.String()
	assert.Contains(t, output, "Type: Invalid Country Code (exit code 65)")
	assert.Contains(t, output, "Message: 471 isn't iso-3166 for Switzerland")
	assert.Contains(t, output, "   Country Code: 471\n   Input: 471.9512.0028.88\n")
	assert.Contains(t, output, "   1. Swiss social-insurance numbers always start with 756")
	assert.NotContains(t, output, "Error Chain:")
}

func TestDiagnosticReporter_ReportErrorVerbose(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, true, false)

	_, cause := navs13.Parse("756.2465.8935.65")
	reporter.ReportError(fmt.Errorf("validating: %w", apperrors.FromParseError("756.2465.8935.65", cause)))

	output := buf.String()
	assert.Contains(t, output, "Type: Invalid Checksum (exit code 66)")
	assert.Contains(t, output, "Error Chain:")
	assert.Contains(t, output, "(*navs13.ChecksumError)")
}

func TestDiagnosticReporter_ReportPlainError(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false, false)

	reporter.ReportError(errors.New("boom"))

	assert.Equal(t, "ERROR: boom\n", buf.String())
}

func TestDiagnosticReporter_ReportHints(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewDiagnosticReporter(&buf, false, false)

	_, cause := navs13.Parse("756.246.8935.64")
	reporter.ReportHints(apperrors.FromParseError("756.246.8935.64", cause))
	reporter.ReportHints(errors.New("no hints here"))

	assert.Equal(t, "hint: 1 digit(s) are missing, check for a dropped group\n", buf.String())
}

func TestFormatContextKey(t *testing.T) {
	assert.Equal(t, "Digits Found", formatContextKey("digits_found"))
	assert.Equal(t, "Input", formatContextKey("input"))
}
