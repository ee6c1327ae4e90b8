// Package host runs generated curve expressions the way an animation host does: once per frame, with the current time and the bounds of the animated property bound as globals.
package host

import (
	"fmt"
	"math"

	"github.com/dop251/goja"
)

// Bindings are the host values available to an expression at one frame. The property is animated linearly from ValueIn at InPoint to ValueOut at OutPoint, which is also what valueAtTime and the two keyframes returned by key report.
type Bindings struct {
	Time     float64
	InPoint  float64
	OutPoint float64
	ValueIn  float64
	ValueOut float64
}

// UnitBindings returns the bindings for which an expression's value equals its curve's value at t.
func UnitBindings(t float64) Bindings {
	return Bindings{
		Time:     t,
		InPoint:  0.0,
		OutPoint: 1.0,
		ValueIn:  0.0,
		ValueOut: 1.0,
	}
}

// ShiftedBindings returns the bindings at normalized time t for a layer from time 2 to 6 whose property goes from 100 to 250.
func ShiftedBindings(t float64) Bindings {
	return Bindings{
		Time:     2.0 + 4.0*t,
		InPoint:  2.0,
		OutPoint: 6.0,
		ValueIn:  100.0,
		ValueOut: 250.0,
	}
}

// ValueAtTime returns the property value at time x, interpolated linearly between the bounds and held constant outside of them.
func (b Bindings) ValueAtTime(x float64) float64 {
	if x <= b.InPoint || b.OutPoint <= b.InPoint {
		return b.ValueIn
	} else if b.OutPoint <= x {
		return b.ValueOut
	}
	return b.ValueIn + (b.ValueOut-b.ValueIn)*(x-b.InPoint)/(b.OutPoint-b.InPoint)
}

// Expr is a compiled expression. It can be run concurrently, each run uses a fresh runtime.
type Expr struct {
	name string
	prg  *goja.Program
}

// Compile compiles an expression.
func Compile(name, src string) (*Expr, error) {
	prg, err := goja.Compile(name, src, false)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return &Expr{name, prg}, nil
}

// Run executes the expression for one frame and returns its value.
func (e *Expr) Run(b Bindings) (float64, error) {
	vm := goja.New()
	if err := bind(vm, b); err != nil {
		return 0.0, err
	}

	v, err := vm.RunProgram(e.prg)
	if err != nil {
		return 0.0, fmt.Errorf("run %s at time=%v: %w", e.name, b.Time, err)
	} else if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return 0.0, fmt.Errorf("run %s at time=%v: no value", e.name, b.Time)
	}

	f := v.ToFloat()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f, fmt.Errorf("run %s at time=%v: non-finite value %v", e.name, b.Time, f)
	}
	return f, nil
}

// Eval compiles and runs src with UnitBindings(t).
func Eval(src string, t float64) (float64, error) {
	e, err := Compile("expression", src)
	if err != nil {
		return 0.0, err
	}
	return e.Run(UnitBindings(t))
}

func bind(vm *goja.Runtime, b Bindings) error {
	key := func(call goja.FunctionCall) goja.Value {
		var t, v float64
		switch call.Argument(0).ToInteger() {
		case 1:
			t, v = b.InPoint, b.ValueIn
		case 2:
			t, v = b.OutPoint, b.ValueOut
		default:
			panic(vm.NewTypeError("key index %v out of range [1,2]", call.Argument(0)))
		}
		k := vm.NewObject()
		k.Set("time", t)
		k.Set("value", v)
		return k
	}

	globals := []struct {
		name  string
		value interface{}
	}{
		{"time", b.Time},
		{"inPoint", b.InPoint},
		{"outPoint", b.OutPoint},
		{"numKeys", 2},
		{"valueAtTime", b.ValueAtTime},
		{"key", key},
		{"add", func(a, b float64) float64 { return a + b }},
		{"sub", func(a, b float64) float64 { return a - b }},
		{"mul", func(a, b float64) float64 { return a * b }},
	}
	for _, g := range globals {
		if err := vm.Set(g.name, g.value); err != nil {
			return fmt.Errorf("bind %s: %w", g.name, err)
		}
	}
	return nil
}
