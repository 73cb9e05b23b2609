package poly

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders v with at most precision decimals and no trailing
// zeros. A negative precision uses the shortest exact representation.
// Negative zero prints as "0".
func FormatNumber(v float64, precision int) string {
	var s string
	if precision < 0 {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// Format renders the reduced form, e.g. "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0".
// The empty polynomial renders as "0 = 0".
func (p Polynomial) Format(variable string, precision int) string {
	if len(p) == 0 {
		return "0 = 0"
	}
	var b strings.Builder
	for i, c := range p {
		writeSign(&b, i, c)
		fmt.Fprintf(&b, "%s * %s^%d", FormatNumber(math.Abs(c), precision), variable, i)
	}
	b.WriteString(" = 0")
	return b.String()
}

// LaTeX renders the reduced form for a math environment.
func (p Polynomial) LaTeX(variable string, precision int) string {
	if len(p) == 0 {
		return "0 = 0"
	}
	var b strings.Builder
	for i, c := range p {
		writeSign(&b, i, c)
		fmt.Fprintf(&b, "%s \\cdot %s^{%d}", FormatNumber(math.Abs(c), precision), variable, i)
	}
	b.WriteString(" = 0")
	return b.String()
}

func (p Polynomial) String() string {
	return p.Format(DefaultVariable, -1)
}

// writeSign writes the separator before the i-th term. The first term only
// gets a sign when negative.
func writeSign(b *strings.Builder, i int, c float64) {
	neg := c < 0
	switch {
	case i == 0 && neg:
		b.WriteString("-")
	case i == 0:
	case neg:
		b.WriteString(" - ")
	default:
		b.WriteString(" + ")
	}
}
