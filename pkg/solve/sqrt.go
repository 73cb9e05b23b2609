package solve

import (
	"fmt"
	"math"
)

// Tolerance is the absolute residual |r*r - x| Sqrt guarantees for inputs
// whose root float64 can resolve that finely.
const Tolerance = 1e-10

const maxSqrtIterations = 128

// Sqrt returns the square root of x by Newton's method.
//
// The first estimate is a power of two at or above the root, read off the
// binary exponent of x. From above, every Newton step decreases the
// estimate until it reaches the floating point root, so iteration stops as
// soon as an estimate fails to decrease.
//
// Sqrt panics if x is negative or NaN.
func Sqrt(x float64) float64 {
	if !(x >= 0) {
		panic(fmt.Sprintf("solve: square root of %v", x))
	}
	if x == 0 || math.IsInf(x, 1) {
		return x
	}

	_, exp := math.Frexp(x)
	r := math.Ldexp(1, (exp+1)/2)
	for i := 0; i < maxSqrtIterations; i++ {
		next := 0.5 * (r + x/r)
		if next >= r {
			break
		}
		r = next
	}
	return r
}
