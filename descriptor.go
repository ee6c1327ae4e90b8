package easing

import (
	"fmt"
	"strings"
)

// Descriptor is the mutable selection of a curve: its platform, curve type, easing mode and parameter values. Changing the platform or curve type resets the parameters to the family's defaults. A Descriptor owns its parameters exclusively; Params returns a copy.
type Descriptor struct {
	platform Platform
	curve    string
	easing   Easing
	params   Params
}

// NewDescriptor returns a descriptor for Rive's elastic curve with its default parameters.
func NewDescriptor() *Descriptor {
	d := &Descriptor{}
	d.SetPlatform(Rive)
	return d
}

// Platform returns the descriptor's platform.
func (d *Descriptor) Platform() Platform {
	return d.platform
}

// Curve returns the descriptor's curve type.
func (d *Descriptor) Curve() string {
	return d.curve
}

// Easing returns the descriptor's easing mode.
func (d *Descriptor) Easing() Easing {
	return d.easing
}

// Family returns the family of the descriptor's curve type, or false if the curve type is unknown for its platform.
func (d *Descriptor) Family() (*Family, bool) {
	return Lookup(d.platform, d.curve)
}

// SetPlatform switches the platform and selects its default curve with that curve's defaults.
func (d *Descriptor) SetPlatform(platform Platform) error {
	if platform < 0 || numPlatforms <= platform {
		return fmt.Errorf("%w: %v", ErrUnknownPlatform, platform)
	}
	d.platform = platform
	d.SetCurve(defaultCurves[platform].Family().Key)
	return nil
}

// SetCurve selects a curve type and resets the parameters and easing mode to the family's defaults. Unknown curve types are kept and resolve to the identity curve.
func (d *Descriptor) SetCurve(key string) {
	d.curve = key
	d.Reset()
}

// Reset restores the defaults of the current curve type.
func (d *Descriptor) Reset() {
	d.easing = EaseOut
	if f, ok := Lookup(d.platform, d.curve); ok {
		d.params = f.Defaults.Clone()
	} else {
		d.params = Params{}
	}
}

// SetParam sets a parameter of the current curve type. It returns ErrUnknownParam if the curve type has no such parameter, a *ValidationError if v lies outside its declared range and a *DomainError if the curve is undefined for v. The value is stored only if no error is returned.
func (d *Descriptor) SetParam(name string, v float64) error {
	f, ok := Lookup(d.platform, d.curve)
	if !ok || !f.HasParam(name) {
		return fmt.Errorf("%w: %s for %s/%s", ErrUnknownParam, name, d.platform, d.curve)
	}

	params := d.params.Clone()
	params[name] = v
	if _, err := f.New(params, d.easing); err != nil {
		return err
	}
	d.params[name] = v
	return nil
}

// SetEasing sets the easing mode. Curves without easing modes ignore it.
func (d *Descriptor) SetEasing(easing Easing) error {
	if easing < EaseOut || EaseInOut < easing {
		return fmt.Errorf("%w: %v", ErrUnknownEasing, easing)
	}
	d.easing = easing
	return nil
}

// Param returns the value of a parameter.
func (d *Descriptor) Param(name string) (float64, bool) {
	v, ok := d.params[name]
	return v, ok
}

// Params returns a copy of the parameters.
func (d *Descriptor) Params() Params {
	return d.params.Clone()
}

// Validate returns an error if the curve cannot be built from the current parameters. Unknown curve types are valid, they resolve to the identity curve.
func (d *Descriptor) Validate() error {
	_, err := ResolveDescriptor(d)
	return err
}

func (d *Descriptor) String() string {
	sb := strings.Builder{}
	sb.WriteString(d.platform.String())
	sb.WriteString("/")
	sb.WriteString(d.curve)
	if f, ok := Lookup(d.platform, d.curve); ok && f.Modes {
		sb.WriteString(" ")
		sb.WriteString(d.easing.String())
	}
	if 0 < len(d.params) {
		sb.WriteString(" ")
		sb.WriteString(d.params.String())
	}
	return sb.String()
}

// ResolveDescriptor resolves the descriptor's curve, see Resolve.
func ResolveDescriptor(d *Descriptor) (Resolved, error) {
	return Resolve(d.platform, d.curve, d.params, d.easing)
}
