package poly

import (
	"fmt"
	"math"
)

// Polynomial holds coefficients indexed by power; index 0 is the constant.
type Polynomial []float64

// Reduce moves every term to the left of the equality and sums
// coefficients by power. The result is untrimmed: its length is the highest
// power seen plus one.
func Reduce(terms []Term) Polynomial {
	var maxPower uint
	for _, t := range terms {
		if t.Power > maxPower {
			maxPower = t.Power
		}
	}

	p := make(Polynomial, maxPower+1)
	for _, t := range terms {
		if t.Side == Right {
			p[t.Power] -= t.Value()
		} else {
			p[t.Power] += t.Value()
		}
	}
	return p
}

// CheckFinite reports the first coefficient that overflowed float64 while
// terms were summed.
func (p Polynomial) CheckFinite() error {
	for i, c := range p {
		if math.IsInf(c, 0) || math.IsNaN(c) {
			return &TokenError{
				Token: fmt.Sprintf("coefficient of X^%d overflows float64", i),
				Index: -1,
				Err:   ErrNumber,
			}
		}
	}
	return nil
}

// Trim drops trailing zero coefficients. A polynomial that cancels out
// entirely ("0 = 0") trims to an empty slice. Trim shares p's storage.
func (p Polynomial) Trim() Polynomial {
	n := len(p)
	for n > 0 && p[n-1] == 0 {
		n--
	}
	return p[:n]
}

// Degree returns the highest power present. The empty polynomial has
// degree 0.
func (p Polynomial) Degree() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Coefficient returns the coefficient of X^power, 0 beyond the end.
func (p Polynomial) Coefficient(power int) float64 {
	if power < 0 || power >= len(p) {
		return 0
	}
	return p[power]
}

// IsZero reports whether every coefficient is zero.
func (p Polynomial) IsZero() bool {
	return len(p.Trim()) == 0
}
