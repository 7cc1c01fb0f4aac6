package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	apperrors "github.com/toyz/navs13/internal/errors"
)

// DiagnosticReporter explains failures to the user
type DiagnosticReporter struct {
	out     io.Writer
	verbose bool
	colors  bool
}

// NewDiagnosticReporter creates a new diagnostic reporter writing to out
func NewDiagnosticReporter(out io.Writer, verbose, colors bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		out:     out,
		verbose: verbose,
		colors:  colors,
	}
}

// ReportHints prints the suggestions attached to err, if any
func (r *DiagnosticReporter) ReportHints(err error) {
	var appErr apperrors.AppError
	if !stderrors.As(err, &appErr) {
		return
	}
	for _, suggestion := range appErr.Suggestions() {
		fmt.Fprintf(r.out, "%s %s\n", r.paint("hint:", color.FgYellow), suggestion)
	}
}

// ReportError prints a classified report of err. In verbose mode the error
// chain is included.
func (r *DiagnosticReporter) ReportError(err error) {
	var appErr apperrors.AppError
	if !stderrors.As(err, &appErr) {
		fmt.Fprintf(r.out, "%s %s\n", r.paint("ERROR:", color.FgRed, color.Bold), err.Error())
		return
	}

	r.printErrorHeader(appErr.ErrorCode())
	fmt.Fprintf(r.out, "Message: %s\n", appErr.Error())

	if len(appErr.Context()) > 0 {
		r.printContext(appErr.Context())
	}
	if len(appErr.Suggestions()) > 0 {
		r.printSuggestions(appErr.Suggestions())
	}
	if r.verbose {
		r.printErrorChain(err)
	}
}

// printErrorHeader prints a formatted error header based on error code
func (r *DiagnosticReporter) printErrorHeader(code apperrors.ErrorCode) {
	var title string

	switch code {
	case apperrors.InvalidLengthErrorCode:
		title = "Invalid Length"
	case apperrors.InvalidCountryCodeErrorCode:
		title = "Invalid Country Code"
	case apperrors.InvalidChecksumErrorCode:
		title = "Invalid Checksum"
	case apperrors.InvalidFormatErrorCode:
		title = "Invalid Format"
	case apperrors.UsageErrorCode:
		title = "Usage Error"
	case apperrors.ServerErrorCode:
		title = "Server Error"
	default:
		title = "Unknown Error"
	}

	header := fmt.Sprintf("Type: %s (exit code %d)", title, code.ExitCode())
	fmt.Fprintf(r.out, "\n%s\n", r.paint(header, color.FgRed, color.Bold))
	fmt.Fprintf(r.out, "%s\n", strings.Repeat("-", len(header)))
}

// printContext prints context information in a readable format
func (r *DiagnosticReporter) printContext(context map[string]interface{}) {
	fmt.Fprintf(r.out, "Context:\n")

	keys := make([]string, 0, len(context))
	for key := range context {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(r.out, "   %s: %v\n", formatContextKey(key), context[key])
	}
}

// printSuggestions prints actionable suggestions
func (r *DiagnosticReporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.out, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.out, "   %d. %s\n", i+1, suggestion)
	}
}

// printErrorChain prints every wrapped error
func (r *DiagnosticReporter) printErrorChain(err error) {
	fmt.Fprintf(r.out, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.out, "    %d. %s (%T)\n", level, err.Error(), err)
		err = stderrors.Unwrap(err)
		level++
	}
}

func (r *DiagnosticReporter) paint(s string, attrs ...color.Attribute) string {
	if !r.colors {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

// formatContextKey converts snake_case keys to Title Case
func formatContextKey(key string) string {
	parts := strings.Split(key, "_")
	for i, part := range parts {
		if len(part) > 0 {
			parts[i] = strings.ToUpper(part[:1]) + part[1:]
		}
	}
	return strings.Join(parts, " ")
}
