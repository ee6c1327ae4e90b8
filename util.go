package easing

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance used to decide whether a parameter sits exactly on a regime boundary, such as critical damping.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// clamp returns x limited to the interval [min,max].
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	} else if max < x {
		return max
	}
	return x
}

// isFinite returns true if x is neither NaN nor infinite.
func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// num formats f as a JavaScript numeric literal that parses back to the exact same float64. Negative values are parenthesized so that they can follow any binary operator.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if math.Signbit(f) {
		return "(" + s + ")"
	}
	return s
}

// ftos formats f for human consumption, such as in descriptor headers and error messages.
func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', 6, 64)
}

////////////////////////////////////////////////////////////////

// bisectionMethod finds x in [xmin,xmax] for which the monotonically increasing f(x) = y, starting the search at x0. It stops when |f(x)-y| < tolerance or after maxIterations halvings, and always returns a value within [xmin,xmax].
func bisectionMethod(f func(float64) float64, y, x0, xmin, xmax, tolerance float64, maxIterations int) float64 {
	x := clamp(x0, xmin, xmax)
	for i := 0; i < maxIterations; i++ {
		fx := f(x)
		if math.Abs(fx-y) < tolerance {
			return x
		} else if fx < y {
			xmin = x
		} else {
			xmax = x
		}
		x = (xmin + xmax) / 2.0
	}
	return x // maxIterations reached
}
