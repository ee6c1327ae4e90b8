package easing

import (
	"fmt"
)

// Family is the immutable registration record of a curve: its defaults, the parameters users may tune, and how to build its evaluator. Families are stateless, all state lives in the parameters.
type Family struct {
	Curve      Curve
	Platform   Platform
	Key        string   // curve type, unique within the platform
	Name       string   // display name
	ParamNames []string // tunable parameters in display order
	Defaults   Params
	Modes      bool // whether the curve accepts an Easing mode

	new func(Params, Easing) (Easer, error)
}

// ParamSpecs returns the specs of the family's tunable parameters in display order.
func (f *Family) ParamSpecs() []ParamSpec {
	specs := make([]ParamSpec, 0, len(f.ParamNames))
	for _, name := range f.ParamNames {
		specs = append(specs, paramSpecs[name])
	}
	return specs
}

// HasParam returns true if name is one of the family's tunable parameters.
func (f *Family) HasParam(name string) bool {
	_, ok := f.Defaults[name]
	return ok
}

// New returns the family's evaluator for params merged over its defaults. It returns ErrUnknownParam for parameters the family does not have, a *ValidationError for values outside their declared range, and a *DomainError for values where the formula is undefined.
func (f *Family) New(params Params, easing Easing) (Easer, error) {
	p := f.Defaults.Clone()
	for _, name := range params.Names() {
		if !f.HasParam(name) {
			return nil, fmt.Errorf("%w: %s for %s/%s", ErrUnknownParam, name, f.Platform, f.Key)
		}
		v := params[name]
		if err := paramSpecs[name].Validate(v); err != nil {
			return nil, err
		}
		p[name] = v
	}
	return f.new(p, easing)
}

func (f *Family) String() string {
	return f.Platform.String() + "/" + f.Key
}

func fixed(e Easer) func(Params, Easing) (Easer, error) {
	return func(Params, Easing) (Easer, error) {
		return e, nil
	}
}

func newElastic(p Params, easing Easing) (Easer, error) {
	return NewElastic(p["amplitude"], p["period"], easing)
}

func newSpring(p Params, _ Easing) (Easer, error) {
	return NewSpring(p["damping"], p["velocity"], p["duration"])
}

func spring(damping, velocity, duration float64) Easer {
	s, err := NewSpring(damping, velocity, duration)
	if err != nil {
		panic(err)
	}
	return s
}

func newCubicBezier(p Params, _ Easing) (Easer, error) {
	return NewCubicBezier(p["x1"], p["y1"], p["x2"], p["y2"]), nil
}

var families = [numCurves]Family{
	RiveElastic: {Platform: Rive, Key: "elastic", Name: "Elastic", ParamNames: []string{"amplitude", "period"}, Defaults: Params{"amplitude": 1.0, "period": 0.5}, Modes: true, new: newElastic},

	AndroidLinear:               {Platform: Android, Key: "linear", Name: "Linear", new: fixed(Linear{})},
	AndroidAccelerate:           {Platform: Android, Key: "accelerate", Name: "Accelerate", ParamNames: []string{"factor"}, Defaults: Params{"factor": 1.0}, new: func(p Params, _ Easing) (Easer, error) { return Accelerate{p["factor"]}, nil }},
	AndroidDecelerate:           {Platform: Android, Key: "decelerate", Name: "Decelerate", ParamNames: []string{"factor"}, Defaults: Params{"factor": 1.0}, new: func(p Params, _ Easing) (Easer, error) { return Decelerate{p["factor"]}, nil }},
	AndroidAccelerateDecelerate: {Platform: Android, Key: "accelerateDecelerate", Name: "Accel/Decel", new: fixed(AccelerateDecelerate{})},
	AndroidAnticipate:           {Platform: Android, Key: "anticipate", Name: "Anticipate", ParamNames: []string{"tension"}, Defaults: Params{"tension": 2.0}, new: func(p Params, _ Easing) (Easer, error) { return Anticipate{p["tension"]}, nil }},
	AndroidOvershoot:            {Platform: Android, Key: "overshoot", Name: "Overshoot", ParamNames: []string{"tension"}, Defaults: Params{"tension": 2.0}, new: func(p Params, _ Easing) (Easer, error) { return Overshoot{p["tension"]}, nil }},
	AndroidAnticipateOvershoot:  {Platform: Android, Key: "anticipateOvershoot", Name: "Anti/Over", ParamNames: []string{"tension"}, Defaults: Params{"tension": 2.0}, new: func(p Params, _ Easing) (Easer, error) { return AnticipateOvershoot{p["tension"]}, nil }},
	AndroidBounce:               {Platform: Android, Key: "bounce", Name: "Bounce", new: fixed(Bounce{})},
	AndroidFastOutSlowIn:        {Platform: Android, Key: "fastOutSlowIn", Name: "Fast/Slow", new: fixed(NewCubicBezier(0.4, 0.0, 0.2, 1.0))},
	AndroidFastOutLinearIn:      {Platform: Android, Key: "fastOutLinearIn", Name: "Fast/Linear", new: fixed(NewCubicBezier(0.4, 0.0, 1.0, 1.0))},
	AndroidLinearOutSlowIn:      {Platform: Android, Key: "linearOutSlowIn", Name: "Linear/Slow", new: fixed(NewCubicBezier(0.0, 0.0, 0.2, 1.0))},
	AndroidPathInterpolator:     {Platform: Android, Key: "pathInterpolator", Name: "Path Interpolator", ParamNames: []string{"x1", "y1", "x2", "y2"}, Defaults: Params{"x1": 0.4, "y1": 0.0, "x2": 0.2, "y2": 1.0}, new: newCubicBezier},

	IOSLinear:          {Platform: IOS, Key: "linear", Name: "Linear", new: fixed(Linear{})},
	IOSEaseIn:          {Platform: IOS, Key: "easeIn", Name: "Ease In", new: fixed(QuadIn{})},
	IOSEaseOut:         {Platform: IOS, Key: "easeOut", Name: "Ease Out", new: fixed(QuadOut{})},
	IOSEaseInOut:       {Platform: IOS, Key: "easeInOut", Name: "Ease In-Out", new: fixed(QuadInOut{})},
	IOSSpringDefault:   {Platform: IOS, Key: "springDefault", Name: "Spring Default", new: fixed(spring(0.7, 0.0, 0.5))},
	IOSSpringGentle:    {Platform: IOS, Key: "springGentle", Name: "Spring Gentle", new: fixed(spring(0.9, 0.0, 0.5))},
	IOSSpringBouncy:    {Platform: IOS, Key: "springBouncy", Name: "Spring Bouncy", new: fixed(spring(0.5, 1.0, 0.5))},
	IOSSpringCustom:    {Platform: IOS, Key: "springCustom", Name: "Spring Custom", ParamNames: []string{"damping", "velocity", "duration"}, Defaults: Params{"damping": 0.7, "velocity": 0.0, "duration": 0.5}, new: newSpring},
	IOSCADefault:       {Platform: IOS, Key: "caDefault", Name: "CA Default", new: fixed(NewCubicBezier(0.25, 0.1, 0.25, 1.0))},
	IOSCAEaseIn:        {Platform: IOS, Key: "caEaseIn", Name: "CA Ease In", new: fixed(NewCubicBezier(0.42, 0.0, 1.0, 1.0))},
	IOSCAEaseOut:       {Platform: IOS, Key: "caEaseOut", Name: "CA Ease Out", new: fixed(NewCubicBezier(0.0, 0.0, 0.58, 1.0))},
	IOSCAEaseInEaseOut: {Platform: IOS, Key: "caEaseInEaseOut", Name: "CA Ease In-Out", new: fixed(NewCubicBezier(0.42, 0.0, 0.58, 1.0))},
	IOSCALinear:        {Platform: IOS, Key: "caLinear", Name: "CA Linear", new: fixed(NewCubicBezier(0.0, 0.0, 1.0, 1.0))},
	IOSCACustom:        {Platform: IOS, Key: "caCustom", Name: "CA Custom", ParamNames: []string{"x1", "y1", "x2", "y2"}, Defaults: Params{"x1": 0.25, "y1": 0.1, "x2": 0.25, "y2": 1.0}, new: newCubicBezier},
}

// fallbackFamily is resolved for unknown (platform, curve type) pairs.
var fallbackFamily = Family{Curve: -1, Key: "linear", Name: "Linear", new: fixed(Linear{})}

// defaultCurves are selected when switching platforms.
var defaultCurves = [numPlatforms]Curve{
	Rive:    RiveElastic,
	Android: AndroidAccelerate,
	IOS:     IOSEaseInOut,
}

var curvesByKey [numPlatforms]map[string]Curve

func init() {
	for i := range curvesByKey {
		curvesByKey[i] = map[string]Curve{}
	}
	for c := range families {
		f := &families[c]
		f.Curve = Curve(c)
		if f.Defaults == nil {
			f.Defaults = Params{}
		}
		curvesByKey[f.Platform][f.Key] = Curve(c)
	}
	fallbackFamily.Defaults = Params{}
}

// Lookup returns the family registered for the platform and curve type.
func Lookup(platform Platform, key string) (*Family, bool) {
	if platform < 0 || numPlatforms <= platform {
		return nil, false
	}
	c, ok := curvesByKey[platform][key]
	if !ok {
		return nil, false
	}
	return &families[c], true
}

// Families returns the families of a platform in display order.
func Families(platform Platform) []*Family {
	fs := []*Family{}
	for c := range families {
		if families[c].Platform == platform {
			fs = append(fs, &families[c])
		}
	}
	return fs
}

// DefaultCurve returns the curve selected when switching to the platform.
func DefaultCurve(platform Platform) Curve {
	if platform < 0 || numPlatforms <= platform {
		return AndroidLinear
	}
	return defaultCurves[platform]
}

// Resolved is an evaluator together with the family it was built from.
type Resolved struct {
	Easer
	Family   *Family
	Fallback bool // true if the curve type was unknown and resolved to the identity curve
}

// Resolve returns the evaluator for a platform, curve type, parameters and easing mode. Unknown (platform, curve type) pairs do not fail: they resolve to the identity curve with Fallback set. Parameter errors are returned as with Family.New.
func Resolve(platform Platform, key string, params Params, easing Easing) (Resolved, error) {
	f, ok := Lookup(platform, key)
	if !ok {
		fallback := fallbackFamily
		fallback.Platform = platform
		return Resolved{Easer: Linear{}, Family: &fallback, Fallback: true}, nil
	}
	e, err := f.New(params, easing)
	if err != nil {
		return Resolved{}, err
	}
	return Resolved{Easer: e, Family: f}, nil
}
