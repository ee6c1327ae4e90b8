package host

import (
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/easing"
	"github.com/tdewolff/test"
)

func TestEval(t *testing.T) {
	v, err := Eval("var x = time * 2;\nx + 1;", 0.25)
	test.Error(t, err)
	test.Float(t, v, 1.5)

	_, err = Eval("var x = ;", 0.5)
	test.That(t, err != nil)

	_, err = Eval("undefinedFunction(time);", 0.5)
	test.That(t, err != nil)

	_, err = Eval("var x = 1;", 0.5)
	test.That(t, err != nil, "no value")

	_, err = Eval("1 / 0;", 0.5)
	test.That(t, err != nil, "infinite value")
}

func TestBindings(t *testing.T) {
	b := Bindings{Time: 3.0, InPoint: 2.0, OutPoint: 6.0, ValueIn: 10.0, ValueOut: 30.0}
	test.Float(t, b.ValueAtTime(0.0), 10.0)
	test.Float(t, b.ValueAtTime(4.0), 20.0)
	test.Float(t, b.ValueAtTime(8.0), 30.0)

	e, err := Compile("bindings", "add(key(1).value, mul(sub(key(numKeys).time, inPoint), valueAtTime(time)));")
	test.Error(t, err)
	v, err := e.Run(b)
	test.Error(t, err)
	test.Float(t, v, 10.0+(6.0-2.0)*15.0)

	e, err = Compile("key", "key(3).time;")
	test.Error(t, err)
	_, err = e.Run(b)
	test.That(t, err != nil, "key out of range")
}

func TestExpressionBounds(t *testing.T) {
	// linear interpolation between the bounds by the curve's value, without clamping
	src, err := easing.Expression(easing.Overshoot{Tension: 2.0}, easing.DefaultExprOptions)
	test.Error(t, err)
	e, err := Compile("overshoot", src)
	test.Error(t, err)

	b := Bindings{Time: 2.0 + 4.0*5.0/9.0, InPoint: 2.0, OutPoint: 6.0, ValueIn: 10.0, ValueOut: 30.0}
	v, err := e.Run(b)
	test.Error(t, err)
	test.Float(t, v, 10.0+20.0*(1.0+32.0/243.0))

	// time is clamped to the bounds
	b.Time = 1.0
	v, err = e.Run(b)
	test.Error(t, err)
	test.Float(t, v, 10.0)
	b.Time = 7.0
	v, err = e.Run(b)
	test.Error(t, err)
	test.Float(t, v, 30.0)

	// zero-length bounds
	b.OutPoint = b.InPoint
	v, err = e.Run(b)
	test.Error(t, err)
	test.Float(t, v, 10.0)

	src, err = easing.Expression(easing.Overshoot{Tension: 2.0}, easing.ExprOptions{Bounds: easing.KeyBounds})
	test.Error(t, err)
	e, err = Compile("overshoot keys", src)
	test.Error(t, err)
	v, err = e.Run(Bindings{Time: 4.0, InPoint: 2.0, OutPoint: 6.0, ValueIn: 10.0, ValueOut: 30.0})
	test.Error(t, err)
	test.Float(t, v, 10.0+20.0*easing.Overshoot{Tension: 2.0}.Ease(0.5))
}

func TestExpressionShiftedBounds(t *testing.T) {
	samples := []float64{0.0, 0.1, 0.3, 0.5, 0.7, 0.9, 1.0}
	for _, d := range Registered() {
		r, err := easing.ResolveDescriptor(d)
		test.Error(t, err)
		for _, bounds := range []easing.Bounds{easing.LayerBounds, easing.KeyBounds} {
			for _, minify := range []bool{false, true} {
				opts := easing.ExprOptions{Bounds: bounds, Minify: minify}
				t.Run(fmt.Sprintf("%v/%v/minify=%v", d, bounds, minify), func(t *testing.T) {
					src, err := easing.Generate(d, opts)
					test.Error(t, err)
					e, err := Compile(d.String(), src)
					test.Error(t, err)
					for _, x := range samples {
						b := ShiftedBindings(x)
						v, err := e.Run(b)
						test.Error(t, err)
						want := b.ValueIn + (b.ValueOut-b.ValueIn)*r.Ease(x)
						test.That(t, math.Abs(v-want) < ParityTolerance*(b.ValueOut-b.ValueIn), x, v, want)
					}
				})
			}
		}
	}
}

func TestParitySpringVelocity(t *testing.T) {
	// the spring's velocity must not leak into the start value
	d := easing.NewDescriptor()
	d.SetPlatform(easing.IOS)
	d.SetCurve("springCustom")
	test.Error(t, d.SetParam("velocity", 3.0))
	r, err := easing.ResolveDescriptor(d)
	test.Error(t, err)

	src, err := easing.Generate(d, easing.DefaultExprOptions)
	test.Error(t, err)
	e, err := Compile("spring", src)
	test.Error(t, err)
	b := Bindings{Time: 0.5, InPoint: 0.0, OutPoint: 1.0, ValueIn: 100.0, ValueOut: 200.0}
	v, err := e.Run(b)
	test.Error(t, err)
	test.That(t, math.Abs(v-(100.0+100.0*r.Ease(0.5))) < 1e-6, v, r.Ease(0.5))
}

func TestParity(t *testing.T) {
	ds := Registered()
	test.T(t, len(ds), 29)
	for _, d := range ds {
		t.Run(d.String(), func(t *testing.T) {
			for _, bounds := range []easing.Bounds{easing.LayerBounds, easing.KeyBounds} {
				diff, err := Parity(d, easing.ExprOptions{Bounds: bounds}, DefaultSamples)
				test.Error(t, err)
				test.That(t, diff < ParityTolerance, bounds, diff)
			}
		})
	}
}

func TestParityFastOutSlowIn(t *testing.T) {
	d := easing.NewDescriptor()
	d.SetPlatform(easing.Android)
	d.SetCurve("fastOutSlowIn")
	src, err := easing.Generate(d, easing.DefaultExprOptions)
	test.Error(t, err)

	r, err := easing.ResolveDescriptor(d)
	test.Error(t, err)
	v, err := Eval(src, 0.5)
	test.Error(t, err)
	test.That(t, math.Abs(v-r.Ease(0.5)) < 1e-4, v, r.Ease(0.5))
}

func TestParityCustomParams(t *testing.T) {
	var tests = []struct {
		platform easing.Platform
		curve    string
		params   easing.Params
		easing   easing.Easing
	}{
		{easing.Rive, "elastic", easing.Params{"amplitude": 3.0, "period": 0.2}, easing.EaseInOut},
		{easing.Rive, "elastic", easing.Params{"amplitude": 1.0, "period": 5.0}, easing.EaseIn},
		{easing.Android, "accelerate", easing.Params{"factor": 2.5}, easing.EaseOut},
		{easing.Android, "decelerate", easing.Params{"factor": 0.3}, easing.EaseOut},
		{easing.Android, "anticipateOvershoot", easing.Params{"tension": 5.0}, easing.EaseOut},
		{easing.Android, "pathInterpolator", easing.Params{"x1": 1.0, "y1": -1.0, "x2": 0.0, "y2": 2.0}, easing.EaseOut},
		{easing.IOS, "springCustom", easing.Params{"damping": 1.0, "velocity": 2.0, "duration": 1.0}, easing.EaseOut},
		{easing.IOS, "springCustom", easing.Params{"damping": 1.5, "velocity": 3.0, "duration": 0.1}, easing.EaseOut},
		{easing.IOS, "springCustom", easing.Params{"damping": 0.1, "velocity": 0.0, "duration": 2.0}, easing.EaseOut},
		{easing.IOS, "caCustom", easing.Params{"x1": 0.0, "y1": 0.0, "x2": 0.0, "y2": 1.0}, easing.EaseOut},
	}
	samples := []float64{0.0, 0.05, 0.2, 0.45, 0.5, 0.55, 0.8, 0.95, 1.0}
	for _, tt := range tests {
		d := easing.NewDescriptor()
		d.SetPlatform(tt.platform)
		d.SetCurve(tt.curve)
		d.SetEasing(tt.easing)
		for name, v := range tt.params {
			test.Error(t, d.SetParam(name, v))
		}
		t.Run(d.String(), func(t *testing.T) {
			diff, err := Parity(d, easing.DefaultExprOptions, samples)
			test.Error(t, err)
			test.That(t, diff < ParityTolerance, diff)
		})
	}
}

func TestVerify(t *testing.T) {
	results := Verify(Registered(), DefaultSamples)
	test.T(t, len(results), 29)
	for _, res := range results {
		test.That(t, res.OK(), res.Descriptor, res.Err())
		test.That(t, res.MaxDiff < ParityTolerance, res.Descriptor, res.MaxDiff)
	}
}

func TestVerifyFailure(t *testing.T) {
	d := easing.NewDescriptor()
	d.SetPlatform(easing.Android)
	d.SetCurve("nonexistent")
	results := Verify([]*easing.Descriptor{d}, DefaultSamples)
	test.That(t, results[0].OK(), "fallback verifies", results[0].Err())
}
