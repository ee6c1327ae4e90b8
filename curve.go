package easing

import (
	"fmt"
	"strings"
)

// Platform is the animation platform whose curves are reproduced.
type Platform int

// see Platform
const (
	Rive Platform = iota
	Android
	IOS
	numPlatforms
)

// Platforms lists all platforms in display order.
var Platforms = []Platform{Rive, Android, IOS}

func (p Platform) String() string {
	switch p {
	case Rive:
		return "rive"
	case Android:
		return "android"
	case IOS:
		return "ios"
	}
	return fmt.Sprintf("Platform(%d)", int(p))
}

// Title returns the platform name as shown to users.
func (p Platform) Title() string {
	switch p {
	case Rive:
		return "Rive"
	case Android:
		return "Android"
	case IOS:
		return "iOS"
	}
	return p.String()
}

// ParsePlatform parses a platform name case-insensitively.
func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rive":
		return Rive, nil
	case "android":
		return Android, nil
	case "ios":
		return IOS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

// Easing selects which end(s) of a curve are eased. It is used by the elastic curve; the zero value is EaseOut.
type Easing int

// see Easing
const (
	EaseOut Easing = iota
	EaseIn
	EaseInOut
)

func (e Easing) String() string {
	switch e {
	case EaseOut:
		return "easeOut"
	case EaseIn:
		return "easeIn"
	case EaseInOut:
		return "easeInOut"
	}
	return fmt.Sprintf("Easing(%d)", int(e))
}

// ParseEasing parses easeIn, easeOut or easeInOut, case-insensitively and with optional dashes.
func ParseEasing(s string) (Easing, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "") {
	case "easeout", "out":
		return EaseOut, nil
	case "easein", "in":
		return EaseIn, nil
	case "easeinout", "inout":
		return EaseInOut, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEasing, s)
}

// Curve enumerates every registered (platform, curve type) pair. Its family is found in a table indexed by the curve, so adding a curve requires adding its table entry.
type Curve int

// see Curve
const (
	RiveElastic Curve = iota

	AndroidLinear
	AndroidAccelerate
	AndroidDecelerate
	AndroidAccelerateDecelerate
	AndroidAnticipate
	AndroidOvershoot
	AndroidAnticipateOvershoot
	AndroidBounce
	AndroidFastOutSlowIn
	AndroidFastOutLinearIn
	AndroidLinearOutSlowIn
	AndroidPathInterpolator

	IOSLinear
	IOSEaseIn
	IOSEaseOut
	IOSEaseInOut
	IOSSpringDefault
	IOSSpringGentle
	IOSSpringBouncy
	IOSSpringCustom
	IOSCADefault
	IOSCAEaseIn
	IOSCAEaseOut
	IOSCAEaseInEaseOut
	IOSCALinear
	IOSCACustom

	numCurves
)

// Family returns the curve's registration record.
func (c Curve) Family() *Family {
	if c < 0 || numCurves <= c {
		return &fallbackFamily
	}
	return &families[c]
}

func (c Curve) String() string {
	if c < 0 || numCurves <= c {
		return fmt.Sprintf("Curve(%d)", int(c))
	}
	return families[c].Platform.String() + "/" + families[c].Key
}
