package host

import (
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/tdewolff/easing"
	"golang.org/x/sync/errgroup"
)

// Tolerances of Verify.
const (
	ParityTolerance   = 1e-4
	BoundaryTolerance = 1e-3
)

// DefaultSamples are the times at which curves are compared against their expressions.
var DefaultSamples = []float64{0.0, 0.1, 0.25, 0.5, 0.75, 0.9, 1.0}

// Parity generates the expression for d with opts and returns the largest absolute difference between the expression run at the given times and the curve's value. Each time is run with UnitBindings and with ShiftedBindings, the latter normalized back to the unit range.
func Parity(d *easing.Descriptor, opts easing.ExprOptions, samples []float64) (float64, error) {
	r, err := easing.ResolveDescriptor(d)
	if err != nil {
		return 0.0, err
	}
	src, err := easing.Generate(d, opts)
	if err != nil {
		return 0.0, err
	}
	return parity(d.String(), src, r, samples)
}

func parity(name, src string, e easing.Easer, samples []float64) (float64, error) {
	expr, err := Compile(name, src)
	if err != nil {
		return 0.0, err
	}

	maxDiff := 0.0
	for _, t := range samples {
		y := e.Ease(t)
		v, err := expr.Run(UnitBindings(t))
		if err != nil {
			return 0.0, err
		}
		maxDiff = math.Max(maxDiff, math.Abs(v-y))

		b := ShiftedBindings(t)
		if v, err = expr.Run(b); err != nil {
			return 0.0, err
		}
		v = (v - b.ValueIn) / (b.ValueOut - b.ValueIn)
		maxDiff = math.Max(maxDiff, math.Abs(v-y))
	}
	return maxDiff, nil
}

// Result is the outcome of verifying one descriptor.
type Result struct {
	Descriptor *easing.Descriptor
	MaxDiff    float64 // largest difference between expression and curve over all bounds
	Errs       []error
}

// OK returns true if the descriptor passed all checks.
func (r Result) OK() bool {
	return len(r.Errs) == 0
}

// Err returns all errors joined, or nil.
func (r Result) Err() error {
	return errors.Join(r.Errs...)
}

// Verify checks each descriptor's curve for exact endpoints and finite values, checks the syntax of its plain and minified expressions for both bounds, and compares the expressions run by the host against the curve. The descriptors are verified concurrently.
func Verify(ds []*easing.Descriptor, samples []float64) []Result {
	results := make([]Result, len(ds))
	g := errgroup.Group{}
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, d := range ds {
		g.Go(func() error {
			results[i] = verify(d, samples)
			return nil
		})
	}
	g.Wait()
	return results
}

func verify(d *easing.Descriptor, samples []float64) Result {
	res := Result{Descriptor: d}
	fail := func(format string, args ...interface{}) {
		res.Errs = append(res.Errs, fmt.Errorf(format, args...))
	}

	r, err := easing.ResolveDescriptor(d)
	if err != nil {
		fail("resolve: %w", err)
		return res
	}
	if v := r.Ease(0.0); BoundaryTolerance < math.Abs(v) {
		fail("ease(0) = %v", v)
	}
	if v := r.Ease(1.0); BoundaryTolerance < math.Abs(v-1.0) {
		fail("ease(1) = %v", v)
	}
	for i := 0; i <= 100; i++ {
		t := float64(i) / 100.0
		if v := r.Ease(t); math.IsNaN(v) || math.IsInf(v, 0) {
			fail("ease(%v) = %v", t, v)
			break
		}
	}

	for _, bounds := range []easing.Bounds{easing.LayerBounds, easing.KeyBounds} {
		for _, minify := range []bool{false, true} {
			opts := easing.ExprOptions{Bounds: bounds, Minify: minify}
			src, err := easing.Generate(d, opts)
			if err != nil {
				fail("generate %v: %w", bounds, err)
				continue
			} else if err := easing.CheckExpression(src); err != nil {
				fail("%v: %w", bounds, err)
				continue
			}

			diff, err := parity(d.String(), src, r, samples)
			if err != nil {
				fail("%v: %w", bounds, err)
				continue
			}
			res.MaxDiff = math.Max(res.MaxDiff, diff)
			if ParityTolerance < diff {
				fail("%v: expression differs from curve by %v", bounds, diff)
			}
		}
	}
	return res
}

// Registered returns a descriptor with default parameters for every registered curve, and for curves with easing modes one per mode.
func Registered() []*easing.Descriptor {
	ds := []*easing.Descriptor{}
	for _, platform := range easing.Platforms {
		for _, f := range easing.Families(platform) {
			modes := []easing.Easing{easing.EaseOut}
			if f.Modes {
				modes = []easing.Easing{easing.EaseOut, easing.EaseIn, easing.EaseInOut}
			}
			for _, mode := range modes {
				d := easing.NewDescriptor()
				d.SetPlatform(platform)
				d.SetCurve(f.Key)
				d.SetEasing(mode)
				ds = append(ds, d)
			}
		}
	}
	return ds
}
