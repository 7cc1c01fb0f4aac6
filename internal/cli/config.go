package cli

import (
	"strconv"

	apperrors "github.com/toyz/navs13/internal/errors"
	"github.com/toyz/navs13/internal/server/adapters"
	"github.com/toyz/navs13/pkg/navs13"
)

// Mode is the action selected on the command line
type Mode int

const (
	ModeHelp Mode = iota
	ModeValidate
	ModeGenerate
	ModeServe
)

// Config holds the parsed command line
type Config struct {
	// Input is the number to validate. InputSet records that a positional
	// argument was given, even an empty one.
	Input    string
	InputSet bool

	// Create generates Count numbers instead of validating
	Create bool

	// Count is the number of identifiers to generate
	Count int

	// CountSet records that Count was given explicitly
	CountSet bool

	// Seed makes generation reproducible when SeedSet is true
	Seed    uint64
	SeedSet bool

	// Strict requires the canonical DDD.DDDD.DDDD.DD layout
	Strict bool

	// Serve is the listen address of the HTTP API, empty when disabled
	Serve string

	// Engine selects the HTTP framework
	Engine string

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet only shows results and errors
	Quiet bool
}

// DefaultConfig returns the configuration used when no flag is given
func DefaultConfig() Config {
	return Config{
		Count:  1,
		Engine: adapters.EngineGin,
	}
}

// Mode returns the action the configuration asks for
func (c Config) Mode() Mode {
	switch {
	case c.Serve != "":
		return ModeServe
	case c.Create:
		return ModeGenerate
	case c.hasInput():
		return ModeValidate
	default:
		return ModeHelp
	}
}

// Source returns the digit source for generation, seeded when requested
func (c Config) Source() navs13.DigitSource {
	if c.SeedSet {
		return navs13.NewSeededSource(c.Seed, c.Seed)
	}
	return navs13.NewRandSource()
}

// Validate checks flag combinations
func (c Config) Validate() error {
	if c.Verbose && c.Quiet {
		return apperrors.NewConflictError("-verbose", "-quiet")
	}

	if c.hasInput() {
		if c.Create {
			return apperrors.NewConflictError("navs13", "-create")
		}
		if c.CountSet {
			return apperrors.NewConflictError("navs13", "-number")
		}
		if c.Serve != "" {
			return apperrors.NewConflictError("navs13", "-serve")
		}
	}

	if c.Serve != "" && c.Create {
		return apperrors.NewConflictError("-serve", "-create")
	}

	if c.CountSet && !c.Create {
		return apperrors.NewValidationError("-number", "-create to be set", "-number alone").
			WithSuggestion("add -create to generate numbers")
	}

	if c.Count < 1 || c.Count > navs13.MaxBatch {
		return apperrors.NewValidationError("-number", "a value between 1 and 255", strconv.Itoa(c.Count))
	}

	if !adapters.Supported(c.Engine) {
		return apperrors.NewValidationError("-engine", "one of echo, fiber, gin", c.Engine)
	}

	return nil
}

// Warnings lists flags that were given but have no effect in the selected mode
func (c Config) Warnings() []string {
	var warnings []string
	mode := c.Mode()
	if c.SeedSet && mode == ModeValidate {
		warnings = append(warnings, "-seed has no effect when validating")
	}
	if c.Strict && (mode == ModeGenerate || mode == ModeServe) {
		warnings = append(warnings, "-strict only applies to a number given on the command line")
	}
	return warnings
}

func (c Config) hasInput() bool {
	return c.InputSet || c.Input != ""
}
