package cli

import (
	"errors"

	"github.com/wildfunctions/computor/pkg/poly"
	"github.com/wildfunctions/computor/pkg/solve"
)

// Process exit codes. These values are stable.
const (
	ExitOK             = 0
	ExitInput          = 1 // reading standard input failed, or any unclassified error
	ExitUsage          = 2 // wrong argument count or bad flags
	ExitPowerFormat    = 3 // X^n with a bad exponent
	ExitVariableFormat = 4 // variable token that is neither X nor X^n
	ExitNumber         = 5 // token that is not a finite number, or float64 overflow
	ExitDegree         = 6 // reduced degree above 2
	ExitNoSolution     = 7 // nonzero constant equals zero
	ExitSyntax         = 8 // empty equation or repeated "="
)

var (
	// ErrUsage reports a wrong argument count or an invalid flag value.
	ErrUsage = errors.New("usage error")
	// ErrInput reports a failure reading the equation from standard input.
	ErrInput = errors.New("input error")
)

// ExitCode maps an error from input acquisition or parsing to its exit
// code. A nil error is ExitOK.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrInput):
		return ExitInput
	case errors.Is(err, poly.ErrPowerFormat):
		return ExitPowerFormat
	case errors.Is(err, poly.ErrVariableFormat):
		return ExitVariableFormat
	case errors.Is(err, poly.ErrNumber):
		return ExitNumber
	case errors.Is(err, poly.ErrSyntax):
		return ExitSyntax
	default:
		return ExitInput
	}
}

// SolutionCode maps a solution to its exit code.
func SolutionCode(s solve.Solution) int {
	switch s.Kind {
	case solve.Unsolvable:
		return ExitDegree
	case solve.Invalid:
		return ExitNoSolution
	case solve.Overflow:
		return ExitNumber
	default:
		return ExitOK
	}
}
