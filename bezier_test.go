package easing

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestCubicBezierCoefficients(t *testing.T) {
	b := NewCubicBezier(0.4, 0.0, 0.2, 1.0)
	test.Float(t, b.ax, 1.0-3.0*0.2+3.0*0.4)
	test.Float(t, b.bx, 3.0*0.2-6.0*0.4)
	test.Float(t, b.cx, 3.0*0.4)
	test.Float(t, b.SampleX(0.0), 0.0)
	test.Float(t, b.SampleX(1.0), 1.0)
	test.Float(t, b.SampleY(0.0), 0.0)
	test.Float(t, b.SampleY(1.0), 1.0)
	test.Float(t, b.SampleDerivativeX(0.0), 3.0*0.4)
}

func TestCubicBezierEase(t *testing.T) {
	var tests = []struct {
		b CubicBezier
		t float64
	}{
		{NewCubicBezier(0.4, 0.0, 0.2, 1.0), 0.5},
		{NewCubicBezier(0.25, 0.1, 0.25, 1.0), 0.25},
		{NewCubicBezier(0.42, 0.0, 1.0, 1.0), 0.75},
		{NewCubicBezier(0.0, 0.0, 0.58, 1.0), 0.1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.b.X1, tt.b.Y1, tt.b.X2, tt.b.Y2, tt.t), func(t *testing.T) {
			s := tt.b.SolveX(tt.t)
			test.That(t, math.Abs(tt.b.SampleX(s)-tt.t) < 1e-6, s)
			test.Float(t, tt.b.Ease(tt.t), tt.b.SampleY(s))
		})
	}

	b := NewCubicBezier(0.4, 0.0, 0.2, 1.0)
	test.Float(t, b.Ease(0.0), 0.0)
	test.Float(t, b.Ease(1.0), 1.0)
	test.That(t, 0.5 < b.Ease(0.5), "fast out")
}

func TestCubicBezierLinear(t *testing.T) {
	b := NewCubicBezier(0.0, 0.0, 1.0, 1.0)
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20.0
		test.That(t, math.Abs(b.Ease(x)-x) < 1e-5, x)
	}
}

func TestCubicBezierSolverConvergence(t *testing.T) {
	// x(t) is monotonic for x1,x2 in [0,1] so the solution always lies in [0,1]
	for _, x1 := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		for _, x2 := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
			b := NewCubicBezier(x1, -1.0, x2, 2.0)
			for i := 0; i <= 20; i++ {
				x := float64(i) / 20.0
				s := b.SolveX(x)
				test.That(t, 0.0 <= s && s <= 1.0, x1, x2, x, s)
				test.That(t, math.Abs(b.SampleX(s)-x) < 1e-4, x1, x2, x, s)
			}
		}
	}
}

func TestCubicBezierBisectionFallback(t *testing.T) {
	// the derivative vanishes at t = 0.5 and Newton-Raphson steps out of [0,1] from t = x
	b := NewCubicBezier(1.0, 0.2, 0.0, 0.8)
	for _, x := range []float64{0.01, 0.45, 0.5, 0.55, 0.99} {
		s := b.SolveX(x)
		test.That(t, 0.0 <= s && s <= 1.0, x, s)
		test.That(t, math.Abs(b.SampleX(s)-x) < 1e-6, x, s)
	}
}
