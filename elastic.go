package easing

import "math"

// Elastic is Rive's elastic curve: an exponentially decaying sinusoid with the given amplitude and period. The phase shift s = Period/(2π)·asin(1/Amplitude) makes the sinusoid pass through the endpoints, which requires Amplitude >= 1.
type Elastic struct {
	Amplitude float64
	Period    float64
	Easing    Easing

	s float64
}

// NewElastic returns an elastic curve. It returns a *DomainError if amplitude < 1, where the phase shift is undefined, or if period is not positive.
func NewElastic(amplitude, period float64, easing Easing) (Elastic, error) {
	if !isFinite(amplitude) || amplitude < 1.0 {
		return Elastic{}, &DomainError{"amplitude", amplitude, "must be at least 1 for asin(1/amplitude) to be defined"}
	} else if !isFinite(period) || period <= 0.0 {
		return Elastic{}, &DomainError{"period", period, "must be positive"}
	} else if easing < EaseOut || EaseInOut < easing {
		return Elastic{}, ErrUnknownEasing
	}
	return Elastic{
		Amplitude: amplitude,
		Period:    period,
		Easing:    easing,
		s:         period / (2.0 * math.Pi) * math.Asin(1.0/amplitude),
	}, nil
}

// Ease returns exactly 0 and 1 at the endpoints, where the general formula is only approximately 0 or 1.
func (e Elastic) Ease(t float64) float64 {
	if t == 0.0 {
		return 0.0
	} else if t == 1.0 {
		return 1.0
	}

	a, p := e.Amplitude, e.Period
	switch e.Easing {
	case EaseIn:
		return -(a * math.Pow(2.0, 10.0*(t-1.0)) * math.Sin((t-1.0-e.s)*(2.0*math.Pi)/p))
	case EaseInOut:
		t *= 2.0
		if t < 1.0 {
			return -0.5 * (a * math.Pow(2.0, 10.0*(t-1.0)) * math.Sin((t-1.0-e.s)*(2.0*math.Pi)/p))
		}
		return a*math.Pow(2.0, -10.0*(t-1.0))*math.Sin((t-1.0-e.s)*(2.0*math.Pi)/p)*0.5 + 1.0
	}
	return a*math.Pow(2.0, -10.0*t)*math.Sin((t-e.s)*(2.0*math.Pi)/p) + 1.0
}

func (e Elastic) writeExpr(w *exprWriter) {
	w.line("var a = %s;", num(e.Amplitude))
	w.line("var p = %s;", num(e.Period))
	w.line("var s = p / (2 * Math.PI) * Math.asin(1 / a);")
	w.line("if (t == 0) {")
	w.line("  val = 0;")
	w.line("} else if (t == 1) {")
	w.line("  val = 1;")
	switch e.Easing {
	case EaseIn:
		w.line("} else {")
		w.line("  val = -(a * Math.pow(2, 10 * (t - 1)) * Math.sin((t - 1 - s) * (2 * Math.PI) / p));")
	case EaseInOut:
		w.line("} else if (t < 0.5) {")
		w.line("  t *= 2;")
		w.line("  val = -0.5 * (a * Math.pow(2, 10 * (t - 1)) * Math.sin((t - 1 - s) * (2 * Math.PI) / p));")
		w.line("} else {")
		w.line("  t *= 2;")
		w.line("  val = a * Math.pow(2, -10 * (t - 1)) * Math.sin((t - 1 - s) * (2 * Math.PI) / p) * 0.5 + 1;")
	default:
		w.line("} else {")
		w.line("  val = a * Math.pow(2, -10 * t) * Math.sin((t - s) * (2 * Math.PI) / p) + 1;")
	}
	w.line("}")
}
