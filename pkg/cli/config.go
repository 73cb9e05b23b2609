package cli

import (
	"flag"
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/wildfunctions/computor/pkg/poly"
)

// Config holds the options of one run.
type Config struct {
	Variable  string // variable marker, "X" by default
	Precision int    // max decimals printed for results
	LaTeX     bool   // also print the reduced form as LaTeX
	Verbose   bool   // log parsed terms and raw coefficients
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Variable:  poly.DefaultVariable,
		Precision: 6,
	}
}

// Validate rejects option values the pipeline cannot use.
func (c Config) Validate() error {
	if c.Variable == "" {
		return fmt.Errorf("%w: -var must not be empty", ErrUsage)
	}
	if r, _ := utf8.DecodeRuneInString(c.Variable); !unicode.IsLetter(r) {
		return fmt.Errorf("%w: -var must start with a letter, got %q", ErrUsage, c.Variable)
	}
	if c.Precision < 0 || c.Precision > 17 {
		return fmt.Errorf("%w: -precision must be between 0 and 17, got %d", ErrUsage, c.Precision)
	}
	return nil
}

// bindFlags registers the config fields on fs.
func (c *Config) bindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Variable, "var", c.Variable, "variable marker used in the equation")
	fs.IntVar(&c.Precision, "precision", c.Precision, "max decimals printed for solutions")
	fs.BoolVar(&c.LaTeX, "latex", c.LaTeX, "also print the reduced form as LaTeX")
	fs.BoolVar(&c.Verbose, "verbose", c.Verbose, "log parsed terms and raw coefficients to stderr")
}
