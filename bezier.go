package easing

import "math"

const (
	bezierNewtonIterations    = 8
	bezierBisectionIterations = 32
	bezierTolerance           = 1e-6
)

// CubicBezier is a timing curve defined by a cubic Bézier from (0,0) to (1,1) with control points (X1,Y1) and (X2,Y2), as used by CSS, CAMediaTimingFunction and Android's PathInterpolator. Progress x is mapped to y by first solving the curve parameter t for which x(t) = x.
type CubicBezier struct {
	X1, Y1, X2, Y2 float64

	// polynomial coefficients of x(t) = ((ax*t + bx)*t + cx)*t and likewise y(t)
	ax, bx, cx float64
	ay, by, cy float64
}

// NewCubicBezier returns a timing curve with control points (x1,y1) and (x2,y2). For x1 and x2 in [0,1] the curve's x(t) is monotonic, which guarantees a unique parameter for every progress value.
func NewCubicBezier(x1, y1, x2, y2 float64) CubicBezier {
	return CubicBezier{
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		ax: 1.0 - 3.0*x2 + 3.0*x1,
		bx: 3.0*x2 - 6.0*x1,
		cx: 3.0 * x1,
		ay: 1.0 - 3.0*y2 + 3.0*y1,
		by: 3.0*y2 - 6.0*y1,
		cy: 3.0 * y1,
	}
}

// SampleX returns the x coordinate at curve parameter t.
func (b CubicBezier) SampleX(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

// SampleY returns the y coordinate at curve parameter t.
func (b CubicBezier) SampleY(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

// SampleDerivativeX returns dx/dt at curve parameter t.
func (b CubicBezier) SampleDerivativeX(t float64) float64 {
	return (3.0*b.ax*t+2.0*b.bx)*t + b.cx
}

// SolveX returns the curve parameter t in [0,1] for which x(t) = x. It runs up to eight Newton-Raphson iterations starting at t = x and falls back to bisection over [0,1] when Newton-Raphson does not converge, when the derivative vanishes, or when it converges outside of [0,1].
func (b CubicBezier) SolveX(x float64) float64 {
	t := clamp(x, 0.0, 1.0)
	for i := 0; i < bezierNewtonIterations; i++ {
		dx := b.SampleX(t) - x
		if math.Abs(dx) < bezierTolerance {
			if 0.0 <= t && t <= 1.0 {
				return t
			}
			break
		}
		d := b.SampleDerivativeX(t)
		if math.Abs(d) < bezierTolerance {
			break
		}
		t -= dx / d
	}
	return bisectionMethod(b.SampleX, x, x, 0.0, 1.0, bezierTolerance, bezierBisectionIterations)
}

// Ease returns the curve's y for progress t. The endpoints are returned exactly.
func (b CubicBezier) Ease(t float64) float64 {
	if t == 0.0 {
		return 0.0
	} else if t == 1.0 {
		return 1.0
	}
	return b.SampleY(b.SolveX(t))
}

func (b CubicBezier) writeExpr(w *exprWriter) {
	w.line("var ax = %s, bx = %s, cx = %s;", num(b.ax), num(b.bx), num(b.cx))
	w.line("var ay = %s, by = %s, cy = %s;", num(b.ay), num(b.by), num(b.cy))
	w.line("function sampleX(t) {")
	w.line("  return ((ax * t + bx) * t + cx) * t;")
	w.line("}")
	w.line("function sampleY(t) {")
	w.line("  return ((ay * t + by) * t + cy) * t;")
	w.line("}")
	w.line("function sampleDerivativeX(t) {")
	w.line("  return (3 * ax * t + 2 * bx) * t + cx;")
	w.line("}")
	w.line("function solveX(x) {")
	w.line("  var t = Math.min(Math.max(x, 0), 1);")
	w.line("  for (var i = 0; i < %d; i++) {", bezierNewtonIterations)
	w.line("    var dx = sampleX(t) - x;")
	w.line("    if (Math.abs(dx) < %s) {", num(bezierTolerance))
	w.line("      if (0 <= t && t <= 1) return t;")
	w.line("      break;")
	w.line("    }")
	w.line("    var d = sampleDerivativeX(t);")
	w.line("    if (Math.abs(d) < %s) break;", num(bezierTolerance))
	w.line("    t -= dx / d;")
	w.line("  }")
	w.line("  var lo = 0, hi = 1;")
	w.line("  t = Math.min(Math.max(x, lo), hi);")
	w.line("  for (var j = 0; j < %d; j++) {", bezierBisectionIterations)
	w.line("    var xt = sampleX(t);")
	w.line("    if (Math.abs(xt - x) < %s) return t;", num(bezierTolerance))
	w.line("    if (xt < x) lo = t;")
	w.line("    else hi = t;")
	w.line("    t = (lo + hi) / 2;")
	w.line("  }")
	w.line("  return t;")
	w.line("}")
	w.line("if (t == 0) {")
	w.line("  val = 0;")
	w.line("} else if (t == 1) {")
	w.line("  val = 1;")
	w.line("} else {")
	w.line("  val = sampleY(solveX(t));")
	w.line("}")
}
