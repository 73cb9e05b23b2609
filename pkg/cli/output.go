package cli

import (
	"fmt"
	"io"

	"github.com/wildfunctions/computor/pkg/poly"
	"github.com/wildfunctions/computor/pkg/solve"
)

// WriteReduced writes the reduced form and degree of p.
func WriteReduced(w io.Writer, cfg Config, p poly.Polynomial) {
	fmt.Fprintf(w, "Reduced form: %s\n", p.Format(cfg.Variable, -1))
	if cfg.LaTeX {
		fmt.Fprintf(w, "LaTeX form: %s\n", p.LaTeX(cfg.Variable, -1))
	}
	fmt.Fprintf(w, "Polynomial degree: %d\n", p.Degree())
}

// WriteSolution writes the human-readable message for s.
func WriteSolution(w io.Writer, cfg Config, s solve.Solution) {
	num := func(v float64) string {
		return poly.FormatNumber(v, cfg.Precision)
	}

	switch s.Kind {
	case solve.Unsolvable:
		fmt.Fprintf(w, "The polynomial degree is strictly greater than %d, I can't solve.\n", solve.MaxDegree)
	case solve.AllReals:
		fmt.Fprintln(w, "Every real number is a solution.")
	case solve.Invalid:
		fmt.Fprintf(w, "The equation provided is invalid, no value of %s can satisfy it.\n", cfg.Variable)
	case solve.Overflow:
		fmt.Fprintln(w, "The coefficients are too large to solve in double precision.")
	case solve.OneSolution:
		if s.Degree == 2 {
			fmt.Fprintln(w, "Discriminant is zero, the solution is:")
		} else {
			fmt.Fprintln(w, "The solution is:")
		}
		fmt.Fprintln(w, num(s.Roots[0]))
	case solve.TwoSolutions:
		fmt.Fprintln(w, "Discriminant is strictly positive, the two solutions are:")
		fmt.Fprintln(w, num(s.Roots[0]))
		fmt.Fprintln(w, num(s.Roots[1]))
	case solve.NoRealSolution:
		fmt.Fprintln(w, "Discriminant is strictly negative, there is no real solution. The two complex solutions are:")
		fmt.Fprintf(w, "%s + %si\n", num(s.Real), num(s.Imag))
		fmt.Fprintf(w, "%s - %si\n", num(s.Real), num(s.Imag))
	}
}

// WriteReport writes the reduced form followed by the solution.
func WriteReport(w io.Writer, cfg Config, p poly.Polynomial, s solve.Solution) {
	WriteReduced(w, cfg, p)
	WriteSolution(w, cfg, s)
}
