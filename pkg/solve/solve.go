// Package solve finds the roots of reduced polynomials of degree two or
// less.
package solve

import (
	"math"

	"github.com/wildfunctions/computor/pkg/poly"
)

// MaxDegree is the highest degree Solve resolves.
const MaxDegree = 2

// Kind identifies the shape of a solution set.
type Kind int

const (
	AllReals Kind = iota
	NoRealSolution
	OneSolution
	TwoSolutions
	Invalid    // a nonzero constant equals zero
	Unsolvable // degree above MaxDegree
	Overflow   // float64 arithmetic overflowed while solving
)

var kindNames = map[Kind]string{
	AllReals:       "all reals",
	NoRealSolution: "no real solution",
	OneSolution:    "one solution",
	TwoSolutions:   "two solutions",
	Invalid:        "invalid",
	Unsolvable:     "unsolvable",
	Overflow:       "overflow",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Solution is the outcome of solving one polynomial.
type Solution struct {
	Kind   Kind
	Degree int

	// Discriminant is b^2 - 4ac, set for degree-two polynomials only.
	Discriminant float64

	// Roots holds the real roots, larger first.
	Roots []float64

	// Real and Imag describe the conjugate pair Real ± Imag·i when Kind is
	// NoRealSolution. Imag is positive.
	Real, Imag float64
}

// Complex returns the two complex roots of a negative-discriminant
// quadratic.
func (s Solution) Complex() (complex128, complex128) {
	return complex(s.Real, s.Imag), complex(s.Real, -s.Imag)
}

// Solve dispatches on the degree of p, which must already be trimmed.
func Solve(p poly.Polynomial) Solution {
	d := p.Degree()
	switch {
	case d > MaxDegree:
		return Solution{Kind: Unsolvable, Degree: d}
	case d == 2:
		return quadratic(p[2], p[1], p[0])
	case d == 1:
		return linear(p[1], p[0])
	default:
		if len(p) == 0 || p[0] == 0 {
			return Solution{Kind: AllReals}
		}
		return Solution{Kind: Invalid}
	}
}

// linear solves bx + c = 0.
func linear(b, c float64) Solution {
	if b == 0 && c == 0 {
		return Solution{Kind: AllReals, Degree: 1}
	}
	x, ok := finite(-c / b)
	if !ok {
		return Solution{Kind: Overflow, Degree: 1}
	}
	return Solution{Kind: OneSolution, Degree: 1, Roots: []float64{x}}
}

// quadratic solves ax^2 + bx + c = 0.
func quadratic(a, b, c float64) Solution {
	if a == 0 && b == 0 && c == 0 {
		return Solution{Kind: AllReals, Degree: 2}
	}

	delta, ok := finite(b*b - 4*a*c)
	if !ok {
		return Solution{Kind: Overflow, Degree: 2}
	}
	s := Solution{Degree: 2, Discriminant: delta}
	switch {
	case delta < 0:
		re, ok1 := finite(-b / (2 * a))
		im, ok2 := finite(Sqrt(-delta) / (2 * a))
		if !ok1 || !ok2 {
			return Solution{Kind: Overflow, Degree: 2, Discriminant: delta}
		}
		s.Kind = NoRealSolution
		s.Real = re
		s.Imag = abs(im)
	case delta == 0:
		x, ok := finite(-b / (2 * a))
		if !ok {
			return Solution{Kind: Overflow, Degree: 2, Discriminant: delta}
		}
		s.Kind = OneSolution
		s.Roots = []float64{x}
	default:
		root := Sqrt(delta)
		x1, ok1 := finite((-b + root) / (2 * a))
		x2, ok2 := finite((-b - root) / (2 * a))
		if !ok1 || !ok2 {
			return Solution{Kind: Overflow, Degree: 2, Discriminant: delta}
		}
		if x2 > x1 {
			x1, x2 = x2, x1
		}
		s.Kind = TwoSolutions
		s.Roots = []float64{x1, x2}
	}
	return s
}

// finite normalizes -0 to +0 and reports whether v is a usable result.
func finite(v float64) (float64, bool) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return positiveZero(v), true
}

// positiveZero maps -0 to +0 and leaves every other value alone.
func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
