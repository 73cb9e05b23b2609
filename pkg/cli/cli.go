// Package cli wires input acquisition, parsing, reduction and solving into
// the computor command and maps every outcome to an exit code.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/wildfunctions/computor/pkg/poly"
	"github.com/wildfunctions/computor/pkg/solve"
)

const usage = `Usage: computor [flags] [--] [equation]

With no equation argument, computor prompts for one on standard input.
Example: computor "5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"

Flags:`

// Run executes one invocation and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("computor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	cfg.bindFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		return ExitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitUsage
	}

	log := newLogger(stderr, cfg.Verbose)

	equation, err := ReadEquation(fs.Args(), stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, ErrUsage) {
			fs.Usage()
		}
		return ExitCode(err)
	}
	log.Debug("read equation", "equation", equation)

	p, err := Reduce(equation, cfg, log)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return ExitCode(err)
	}

	s := solve.Solve(p)
	log.Debug("solved", "kind", s.Kind, "degree", s.Degree, "discriminant", s.Discriminant)

	WriteReport(stdout, cfg, p, s)
	return SolutionCode(s)
}

// Reduce parses equation and returns its trimmed reduced form.
func Reduce(equation string, cfg Config, log *slog.Logger) (poly.Polynomial, error) {
	terms, err := poly.Parse(equation, poly.WithVariable(cfg.Variable))
	if err != nil {
		return nil, err
	}
	for i, t := range terms {
		log.Debug("term", "index", i, "sign", t.Sign, "coefficient", t.Coefficient, "power", t.Power, "side", t.Side)
	}

	raw := poly.Reduce(terms)
	log.Debug("coefficients", "raw", []float64(raw))
	if err := raw.CheckFinite(); err != nil {
		return nil, err
	}
	return raw.Trim(), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
