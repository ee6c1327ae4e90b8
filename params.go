package easing

import (
	"math"
	"sort"
	"strings"
)

// ParamSpec declares the valid domain of a tunable curve parameter. Step is the granularity offered to users.
type ParamSpec struct {
	Name  string
	Label string
	Min   float64
	Max   float64
	Step  float64
}

var paramSpecs = map[string]ParamSpec{
	"amplitude": {"amplitude", "Amplitude", 0.1, 10.0, 0.1},
	"period":    {"period", "Period", 0.1, 5.0, 0.1},
	"factor":    {"factor", "Factor", 0.1, 3.0, 0.1},
	"tension":   {"tension", "Tension", 0.0, 5.0, 0.1},
	"damping":   {"damping", "Damping", 0.1, 2.0, 0.05},
	"velocity":  {"velocity", "Velocity", 0.0, 3.0, 0.1},
	"duration":  {"duration", "Duration", 0.1, 2.0, 0.1},
	"x1":        {"x1", "X1", 0.0, 1.0, 0.01},
	"y1":        {"y1", "Y1", -1.0, 2.0, 0.01},
	"x2":        {"x2", "X2", 0.0, 1.0, 0.01},
	"y2":        {"y2", "Y2", -1.0, 2.0, 0.01},
}

// LookupParamSpec returns the spec of the named parameter.
func LookupParamSpec(name string) (ParamSpec, bool) {
	spec, ok := paramSpecs[name]
	return spec, ok
}

// Validate returns a *ValidationError if v lies outside [Min,Max] or is NaN.
func (s ParamSpec) Validate(v float64) error {
	if math.IsNaN(v) || v < s.Min || s.Max < v {
		return &ValidationError{s, v}
	}
	return nil
}

// Clamp limits v to [Min,Max]. NaN is mapped to Min.
func (s ParamSpec) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return s.Min
	}
	return clamp(v, s.Min, s.Max)
}

// Snap clamps v and rounds it to the nearest multiple of Step from Min.
func (s ParamSpec) Snap(v float64) float64 {
	v = s.Clamp(v)
	if s.Step <= 0.0 {
		return v
	}
	n := math.Round((v - s.Min) / s.Step)
	return clamp(s.Min+n*s.Step, s.Min, s.Max)
}

// Params maps parameter names to values.
type Params map[string]float64

// Clone returns a copy of the parameters.
func (p Params) Clone() Params {
	q := make(Params, len(p))
	for name, v := range p {
		q[name] = v
	}
	return q
}

// Names returns the parameter names in sorted order.
func (p Params) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Params) String() string {
	sb := strings.Builder{}
	for i, name := range p.Names() {
		if i != 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(name)
		sb.WriteString("=")
		sb.WriteString(ftos(p[name]))
	}
	return sb.String()
}
