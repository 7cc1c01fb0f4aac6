package cli

import (
	"context"
	"time"

	apperrors "github.com/toyz/navs13/internal/errors"
	"github.com/toyz/navs13/internal/server"
	"github.com/toyz/navs13/internal/utils"
	"github.com/toyz/navs13/pkg/navs13"
)

// ShutdownTimeout bounds the graceful shutdown of the HTTP API
const ShutdownTimeout = 5 * time.Second

// Summary counts what a run did
type Summary struct {
	Validated int
	Rejected  int
	Generated int
}

// Runner executes the validate, generate and serve actions
type Runner struct {
	diagnostics *utils.DiagnosticSystem
	reporter    *DiagnosticReporter
	source      navs13.DigitSource
	summary     Summary
}

// NewRunner creates a runner. source feeds the generator and the HTTP API.
func NewRunner(diagnostics *utils.DiagnosticSystem, reporter *DiagnosticReporter, source navs13.DigitSource) *Runner {
	return &Runner{
		diagnostics: diagnostics,
		reporter:    reporter,
		source:      source,
	}
}

// Summary returns the counters of the run so far
func (r *Runner) Summary() Summary {
	return r.summary
}

// Validate checks input and prints the outcome. The returned error carries
// the exit code of the failure kind.
func (r *Runner) Validate(input string, strict bool) (navs13.Number, error) {
	parse := navs13.Parse
	if strict {
		parse = navs13.ParseCanonical
	}

	r.diagnostics.Debug("validating %q (strict=%t)", input, strict)
	n, err := parse(input)
	if err != nil {
		r.summary.Rejected++
		appErr := apperrors.FromParseError(input, err)
		r.diagnostics.Failure("%s is invalid. Error code %d, description %s", input, appErr.ErrorCode().ExitCode(), appErr.Error())

		switch {
		case r.diagnostics.Level() >= utils.DiagnosticVerbose:
			r.reporter.ReportError(appErr)
		case r.diagnostics.Level() >= utils.DiagnosticInfo:
			r.reporter.ReportHints(appErr)
		}
		return navs13.Number{}, appErr
	}

	r.summary.Validated++
	r.diagnostics.Result("%s is valid.", n)
	return n, nil
}

// Generate prints count freshly generated numbers
func (r *Runner) Generate(count int) []navs13.Number {
	r.diagnostics.Verbose("generating %d number(s)", count)

	numbers := navs13.GenerateN(r.source, count)
	for _, n := range numbers {
		r.diagnostics.Result("%s", n)
	}
	r.summary.Generated += len(numbers)
	return numbers
}

// Serve runs the HTTP API on addr until ctx is cancelled or the server fails
func (r *Runner) Serve(ctx context.Context, ws server.WebServer, addr string) error {
	routes := server.RegisterRoutes(ws, server.NewHandlers(r.source, r.diagnostics))

	errCh := make(chan error, 1)
	go func() {
		errCh <- ws.Start(addr)
	}()
	r.diagnostics.Info("%s server listening on %s", ws.Name(), addr)
	r.diagnostics.Indent()
	for _, route := range routes {
		r.diagnostics.List("%s %s", route.Method, route.Path)
	}
	r.diagnostics.Unindent()

	select {
	case err := <-errCh:
		if err != nil {
			return apperrors.WrapServerError("start", ws.Name(), err).
				WithContext("address", addr)
		}
		return nil
	case <-ctx.Done():
	}

	r.diagnostics.Info("shutting down %s server", ws.Name())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := ws.Stop(shutdownCtx); err != nil {
		return apperrors.WrapServerError("stop", ws.Name(), err)
	}
	if err := <-errCh; err != nil {
		return apperrors.WrapServerError("run", ws.Name(), err)
	}
	r.diagnostics.Success("server stopped")
	return nil
}
