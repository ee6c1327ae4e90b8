package easing

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestDescriptorDefaults(t *testing.T) {
	d := NewDescriptor()
	test.T(t, d.Platform(), Rive)
	test.String(t, d.Curve(), "elastic")
	test.T(t, d.Easing(), EaseOut)
	test.T(t, d.Params(), Params{"amplitude": 1.0, "period": 0.5})
	test.String(t, d.String(), "rive/elastic easeOut amplitude=1 period=0.5")
	test.Error(t, d.Validate())
}

func TestDescriptorSetPlatform(t *testing.T) {
	d := NewDescriptor()
	test.Error(t, d.SetParam("amplitude", 2.0))

	test.Error(t, d.SetPlatform(Android))
	test.String(t, d.Curve(), "accelerate")
	test.T(t, d.Params(), Params{"factor": 1.0})

	test.Error(t, d.SetPlatform(IOS))
	test.String(t, d.Curve(), "easeInOut")
	test.T(t, len(d.Params()), 0)
	test.String(t, d.String(), "ios/easeInOut")

	err := d.SetPlatform(Platform(5))
	test.That(t, errors.Is(err, ErrUnknownPlatform), err)
	test.T(t, d.Platform(), IOS)
}

func TestDescriptorSetCurve(t *testing.T) {
	d := NewDescriptor()
	d.SetPlatform(Android)
	test.Error(t, d.SetParam("factor", 2.0))
	v, _ := d.Param("factor")
	test.Float(t, v, 2.0)

	// switching curves discards previous values
	d.SetCurve("decelerate")
	v, _ = d.Param("factor")
	test.Float(t, v, 1.0)

	d.SetCurve("anticipate")
	_, ok := d.Param("factor")
	test.T(t, ok, false)
	v, _ = d.Param("tension")
	test.Float(t, v, 2.0)

	// unknown curve types are kept and resolve to linear
	d.SetCurve("wobble")
	test.String(t, d.Curve(), "wobble")
	test.T(t, len(d.Params()), 0)
	test.Error(t, d.Validate())
	r, err := ResolveDescriptor(d)
	test.Error(t, err)
	test.T(t, r.Fallback, true)
}

func TestDescriptorSetParam(t *testing.T) {
	d := NewDescriptor()

	err := d.SetParam("amplitude", 20.0)
	var validationErr *ValidationError
	test.That(t, errors.As(err, &validationErr), err)

	err = d.SetParam("amplitude", 0.5)
	var domainErr *DomainError
	test.That(t, errors.As(err, &domainErr), err)

	err = d.SetParam("tension", 1.0)
	test.That(t, errors.Is(err, ErrUnknownParam), err)

	// failed updates leave the value untouched
	v, _ := d.Param("amplitude")
	test.Float(t, v, 1.0)
	_, ok := d.Param("tension")
	test.T(t, ok, false)

	test.Error(t, d.SetParam("period", 0.3))
	test.String(t, d.String(), "rive/elastic easeOut amplitude=1 period=0.3")

	d.SetCurve("nonexistent")
	err = d.SetParam("period", 0.3)
	test.That(t, errors.Is(err, ErrUnknownParam), err)
}

func TestDescriptorEasing(t *testing.T) {
	d := NewDescriptor()
	test.Error(t, d.SetEasing(EaseInOut))
	test.T(t, d.Easing(), EaseInOut)
	test.String(t, d.String(), "rive/elastic easeInOut amplitude=1 period=0.5")

	err := d.SetEasing(Easing(3))
	test.That(t, errors.Is(err, ErrUnknownEasing), err)
	test.T(t, d.Easing(), EaseInOut)

	d.Reset()
	test.T(t, d.Easing(), EaseOut)
}

func TestDescriptorParamsCopy(t *testing.T) {
	d := NewDescriptor()
	p := d.Params()
	p["amplitude"] = 5.0
	v, _ := d.Param("amplitude")
	test.Float(t, v, 1.0)
}

func TestDescriptorReset(t *testing.T) {
	d := NewDescriptor()
	d.SetPlatform(IOS)
	d.SetCurve("springCustom")
	test.Error(t, d.SetParam("damping", 1.0))
	test.Error(t, d.SetParam("velocity", 2.0))
	d.Reset()
	test.T(t, d.Params(), Params{"damping": 0.7, "velocity": 0.0, "duration": 0.5})
}
