package poly

import "fmt"

// Side identifies which side of the equality a term was written on.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Term is a single signed coefficient * X^power contribution.
type Term struct {
	Sign        int // +1 or -1
	Coefficient float64
	Power       uint
	Side        Side
}

// Value returns the signed coefficient as written on its own side.
func (t Term) Value() float64 {
	return t.Coefficient * float64(t.Sign)
}

func (t Term) String() string {
	sign := "+"
	if t.Sign < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s * X^%d (%s)", sign, FormatNumber(t.Coefficient, -1), t.Power, t.Side)
}
