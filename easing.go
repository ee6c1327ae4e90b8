package easing

import "math"

// Easer maps normalized time t in [0,1] to an eased progress value. Most curves map 0 to 0 and 1 to 1, but values in between may leave [0,1] for curves that anticipate, overshoot, bounce or oscillate.
type Easer interface {
	Ease(t float64) float64
}

// Linear is the identity curve.
type Linear struct{}

func (Linear) Ease(t float64) float64 {
	return t
}

func (Linear) writeExpr(w *exprWriter) {
	w.line("val = t;")
}

// Accelerate starts slowly and speeds up, t^(2*Factor). A factor of one uses the plain square.
type Accelerate struct {
	Factor float64
}

func (a Accelerate) Ease(t float64) float64 {
	if a.Factor == 1.0 {
		return t * t
	}
	return math.Pow(t, 2.0*a.Factor)
}

func (a Accelerate) writeExpr(w *exprWriter) {
	if a.Factor == 1.0 {
		w.line("val = t * t;")
		return
	}
	w.line("val = Math.pow(t, %s);", num(2.0*a.Factor))
}

// Decelerate starts quickly and slows down, 1-(1-t)^(2*Factor). A factor of one uses the plain square.
type Decelerate struct {
	Factor float64
}

func (d Decelerate) Ease(t float64) float64 {
	if d.Factor == 1.0 {
		return 1.0 - (1.0-t)*(1.0-t)
	}
	return 1.0 - math.Pow(1.0-t, 2.0*d.Factor)
}

func (d Decelerate) writeExpr(w *exprWriter) {
	if d.Factor == 1.0 {
		w.line("val = 1 - (1 - t) * (1 - t);")
		return
	}
	w.line("val = 1 - Math.pow(1 - t, %s);", num(2.0*d.Factor))
}

// AccelerateDecelerate blends along half a cosine period, starting and ending slowly.
type AccelerateDecelerate struct{}

func (AccelerateDecelerate) Ease(t float64) float64 {
	return math.Cos((t+1.0)*math.Pi)/2.0 + 0.5
}

func (AccelerateDecelerate) writeExpr(w *exprWriter) {
	w.line("val = Math.cos((t + 1) * Math.PI) / 2 + 0.5;")
}

// Anticipate moves backwards before moving forward, t^2*((Tension+1)*t - Tension). The undershoot grows with the tension.
type Anticipate struct {
	Tension float64
}

func (a Anticipate) Ease(t float64) float64 {
	return t * t * ((a.Tension+1.0)*t - a.Tension)
}

func (a Anticipate) writeExpr(w *exprWriter) {
	w.line("val = t * t * (%s * t - %s);", num(a.Tension+1.0), num(a.Tension))
}

// Overshoot flings past the target and settles back, the mirror image of Anticipate.
type Overshoot struct {
	Tension float64
}

func (o Overshoot) Ease(t float64) float64 {
	t -= 1.0
	return t*t*((o.Tension+1.0)*t+o.Tension) + 1.0
}

func (o Overshoot) writeExpr(w *exprWriter) {
	w.line("t -= 1;")
	w.line("val = t * t * (%s * t + %s) + 1;", num(o.Tension+1.0), num(o.Tension))
}

// AnticipateOvershoot anticipates during the first half and overshoots during the second half. Each half rescales t into [0,1] and its result into its own half of the output range.
type AnticipateOvershoot struct {
	Tension float64
}

func (a AnticipateOvershoot) Ease(t float64) float64 {
	if t < 0.5 {
		t *= 2.0
		return 0.5 * (t * t * ((a.Tension+1.0)*t - a.Tension))
	}
	t = (t-0.5)*2.0 - 1.0
	return 0.5*(t*t*((a.Tension+1.0)*t+a.Tension)+1.0) + 0.5
}

func (a AnticipateOvershoot) writeExpr(w *exprWriter) {
	w.line("if (t < 0.5) {")
	w.line("  t *= 2;")
	w.line("  val = 0.5 * (t * t * (%s * t - %s));", num(a.Tension+1.0), num(a.Tension))
	w.line("} else {")
	w.line("  t = (t - 0.5) * 2 - 1;")
	w.line("  val = 0.5 * (t * t * (%s * t + %s) + 1) + 0.5;", num(a.Tension+1.0), num(a.Tension))
	w.line("}")
}

// Bounce bounces off the target three times with decreasing height. It is made of four parabolic segments that split at 1/2.75, 2/2.75 and 2.5/2.75, where each segment includes its lower bound.
type Bounce struct{}

func (Bounce) Ease(t float64) float64 {
	if t < 1.0/2.75 {
		return 7.5625 * t * t
	} else if t < 2.0/2.75 {
		t -= 1.5 / 2.75
		return 7.5625*t*t + 0.75
	} else if t < 2.5/2.75 {
		t -= 2.25 / 2.75
		return 7.5625*t*t + 0.9375
	}
	t -= 2.625 / 2.75
	return 7.5625*t*t + 0.984375
}

func (Bounce) writeExpr(w *exprWriter) {
	w.line("if (t < 1 / 2.75) {")
	w.line("  val = 7.5625 * t * t;")
	w.line("} else if (t < 2 / 2.75) {")
	w.line("  t -= 1.5 / 2.75;")
	w.line("  val = 7.5625 * t * t + 0.75;")
	w.line("} else if (t < 2.5 / 2.75) {")
	w.line("  t -= 2.25 / 2.75;")
	w.line("  val = 7.5625 * t * t + 0.9375;")
	w.line("} else {")
	w.line("  t -= 2.625 / 2.75;")
	w.line("  val = 7.5625 * t * t + 0.984375;")
	w.line("}")
}

// QuadIn is the quadratic ease-in, t^2.
type QuadIn struct{}

func (QuadIn) Ease(t float64) float64 {
	return t * t
}

func (QuadIn) writeExpr(w *exprWriter) {
	w.line("val = t * t;")
}

// QuadOut is the quadratic ease-out, 1-(1-t)^2.
type QuadOut struct{}

func (QuadOut) Ease(t float64) float64 {
	return 1.0 - (1.0-t)*(1.0-t)
}

func (QuadOut) writeExpr(w *exprWriter) {
	w.line("val = 1 - (1 - t) * (1 - t);")
}

// QuadInOut is the piecewise quadratic ease-in-out, 2t^2 for the first half and 1-2(1-t)^2 for the second half.
type QuadInOut struct{}

func (QuadInOut) Ease(t float64) float64 {
	if t < 0.5 {
		return 2.0 * t * t
	}
	return 1.0 - 2.0*(1.0-t)*(1.0-t)
}

func (QuadInOut) writeExpr(w *exprWriter) {
	w.line("if (t < 0.5) {")
	w.line("  val = 2 * t * t;")
	w.line("} else {")
	w.line("  val = 1 - 2 * (1 - t) * (1 - t);")
	w.line("}")
}
