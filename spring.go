package easing

import "math"

type springRegime int

const (
	underdamped springRegime = iota
	criticallyDamped
	overdamped
)

// Spring is the closed-form step response of a damped harmonic oscillator released from 0 towards 1 with initial velocity Velocity (in units per normalized time). Its natural angular frequency is 2π/Duration and Damping is the damping ratio ζ: below one the spring oscillates, at one it is critically damped and above one it is overdamped.
type Spring struct {
	Damping  float64
	Velocity float64
	Duration float64

	regime springRegime
	omega  float64
	omegaD float64 // damped angular frequency, underdamped only
	k      float64 // sine coefficient, underdamped only
	r1, r2 float64 // characteristic roots, overdamped only
	c1, c2 float64 // root coefficients, overdamped only
}

// NewSpring returns a spring curve. A damping ratio within Epsilon of one is treated as critically damped, where both the underdamped and overdamped solutions degenerate. It returns a *DomainError for a non-positive damping ratio or duration.
func NewSpring(damping, velocity, duration float64) (Spring, error) {
	if !isFinite(damping) || damping <= 0.0 {
		return Spring{}, &DomainError{"damping", damping, "must be positive"}
	} else if !isFinite(duration) || duration <= 0.0 {
		return Spring{}, &DomainError{"duration", duration, "must be positive"}
	} else if !isFinite(velocity) {
		return Spring{}, &DomainError{"velocity", velocity, "must be finite"}
	}

	zeta, v0 := damping, velocity
	s := Spring{
		Damping:  damping,
		Velocity: velocity,
		Duration: duration,
		omega:    2.0 * math.Pi / duration,
	}
	if equal(zeta, 1.0) {
		s.regime = criticallyDamped
	} else if zeta < 1.0 {
		s.regime = underdamped
		s.omegaD = s.omega * math.Sqrt(1.0-zeta*zeta)
		s.k = (zeta*s.omega - v0) / s.omegaD
	} else {
		s.regime = overdamped
		r := math.Sqrt(zeta*zeta - 1.0)
		s.r1 = -s.omega * (zeta + r)
		s.r2 = -s.omega * (zeta - r)
		s.c1 = (-v0 - s.r2) / (s.r1 - s.r2)
		s.c2 = 1.0 - s.c1
	}
	return s, nil
}

// Ease returns exactly 0 and 1 at the endpoints; in between the spring generally has not fully settled.
func (s Spring) Ease(t float64) float64 {
	if t == 0.0 {
		return 0.0
	} else if t == 1.0 {
		return 1.0
	}

	switch s.regime {
	case criticallyDamped:
		return 1.0 - math.Exp(-s.omega*t)*(1.0+(s.omega-s.Velocity)*t)
	case overdamped:
		return 1.0 - (s.c1*math.Exp(s.r1*t) + s.c2*math.Exp(s.r2*t))
	}
	return 1.0 - math.Exp(-s.Damping*s.omega*t)*(math.Cos(s.omegaD*t)+s.k*math.Sin(s.omegaD*t))
}

func (s Spring) writeExpr(w *exprWriter) {
	w.line("var zeta = %s;", num(s.Damping))
	w.line("var vel = %s;", num(s.Velocity))
	w.line("var omega = 2 * Math.PI / %s;", num(s.Duration))
	switch s.regime {
	case criticallyDamped:
		w.line("var f = function (t) {")
		w.line("  return 1 - Math.exp(-omega * t) * (1 + (omega - vel) * t);")
		w.line("};")
	case overdamped:
		w.line("var r = Math.sqrt(zeta * zeta - 1);")
		w.line("var r1 = -omega * (zeta + r);")
		w.line("var r2 = -omega * (zeta - r);")
		w.line("var c1 = (-vel - r2) / (r1 - r2);")
		w.line("var c2 = 1 - c1;")
		w.line("var f = function (t) {")
		w.line("  return 1 - (c1 * Math.exp(r1 * t) + c2 * Math.exp(r2 * t));")
		w.line("};")
	default:
		w.line("var omegaD = omega * Math.sqrt(1 - zeta * zeta);")
		w.line("var k = (zeta * omega - vel) / omegaD;")
		w.line("var f = function (t) {")
		w.line("  return 1 - Math.exp(-zeta * omega * t) * (Math.cos(omegaD * t) + k * Math.sin(omegaD * t));")
		w.line("};")
	}
	w.line("if (t == 0) {")
	w.line("  val = 0;")
	w.line("} else if (t == 1) {")
	w.line("  val = 1;")
	w.line("} else {")
	w.line("  val = f(t);")
	w.line("}")
}
