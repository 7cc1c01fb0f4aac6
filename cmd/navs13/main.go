package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/toyz/navs13/internal/cli"
	apperrors "github.com/toyz/navs13/internal/errors"
	"github.com/toyz/navs13/internal/server/adapters"
	"github.com/toyz/navs13/internal/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg := cli.DefaultConfig()

	fs := flag.NewFlagSet("navs13", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var helpFlag bool
	fs.BoolVar(&cfg.Create, "create", false, "Create structurally valid NAVS13 numbers for test purposes")
	fs.BoolVar(&cfg.Create, "c", false, "Shorthand for -create")
	fs.IntVar(&cfg.Count, "number", cfg.Count, "Number of NAVS13 to create (1-255)")
	fs.IntVar(&cfg.Count, "n", cfg.Count, "Shorthand for -number")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Seed the generator for reproducible output")
	fs.BoolVar(&cfg.Strict, "strict", false, "Only accept the canonical DDD.DDDD.DDDD.DD layout")
	fs.StringVar(&cfg.Serve, "serve", "", "Serve the HTTP API on the given address (e.g. :8080)")
	fs.StringVar(&cfg.Engine, "engine", cfg.Engine, "HTTP engine for -serve: "+strings.Join(adapters.Engines(), ", "))
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable verbose output and detailed error reporting")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only show results and errors")
	fs.BoolVar(&helpFlag, "help", false, "Show help information")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: navs13 [options] <navs13>\n")
		fmt.Fprintf(out, "       navs13 -create [-number N] [-seed S]\n")
		fmt.Fprintf(out, "       navs13 -serve ADDR [-engine gin|echo|fiber]\n\n")
		fmt.Fprintf(out, "Validates and generates Swiss social-insurance numbers (NAVS13).\n")
		fmt.Fprintf(out, "Only the structure is validated: a valid number is not necessarily issued.\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nArguments:\n")
		fmt.Fprintf(out, "  navs13    Number to validate, e.g. 756.1234.5678.97\n")
		fmt.Fprintf(out, "             Characters other than digits are ignored unless -strict is set\n")
		fmt.Fprintf(out, "\nExit codes:\n")
		fmt.Fprintf(out, "  0   valid number, or numbers created\n")
		fmt.Fprintf(out, "  1   usage or server error\n")
		fmt.Fprintf(out, "  64  wrong number of digits\n")
		fmt.Fprintf(out, "  65  country code is not 756\n")
		fmt.Fprintf(out, "  66  check digit mismatch\n")
		fmt.Fprintf(out, "  67  not in the canonical layout (-strict)\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitOK
		}
		return apperrors.ExitFailure
	}

	if helpFlag {
		fs.Usage()
		return apperrors.ExitOK
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "number", "n":
			cfg.CountSet = true
		case "seed":
			cfg.SeedSet = true
		}
	})
	// Unquoted numbers split by the shell are joined back together
	cfg.Input = strings.Join(fs.Args(), " ")
	cfg.InputSet = fs.NArg() > 0

	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticVerbose
	}
	diagnostics := utils.NewDiagnosticSystemWithWriters(level, stdout, stderr)
	reporter := cli.NewDiagnosticReporter(stderr, cfg.Verbose, utils.ShouldUseColors())

	if err := cfg.Validate(); err != nil {
		diagnostics.Error("%v", err)
		reporter.ReportHints(err)
		return apperrors.ExitCodeOf(err)
	}

	if cfg.Mode() == cli.ModeHelp {
		fs.Usage()
		return apperrors.ExitFailure
	}
	for _, warning := range cfg.Warnings() {
		diagnostics.Warn("%s", warning)
	}

	runner := cli.NewRunner(diagnostics, reporter, cfg.Source())
	diagnostics.Verbose("mode=%d strict=%t engine=%s", cfg.Mode(), cfg.Strict, cfg.Engine)

	var err error
	switch cfg.Mode() {
	case cli.ModeValidate:
		_, err = runner.Validate(cfg.Input, cfg.Strict)
	case cli.ModeGenerate:
		runner.Generate(cfg.Count)
	case cli.ModeServe:
		ws, newErr := adapters.New(cfg.Engine)
		if newErr != nil {
			err = apperrors.WrapUsageError("-engine", newErr)
		} else {
			err = runner.Serve(ctx, ws, cfg.Serve)
		}
		if err != nil {
			diagnostics.Error("%v", err)
			reporter.ReportError(err)
		}
	}

	summary := runner.Summary()
	diagnostics.Summary("Summary", map[string]interface{}{
		"Validated": summary.Validated,
		"Rejected":  summary.Rejected,
		"Generated": summary.Generated,
	})

	return apperrors.ExitCodeOf(err)
}
