package easing

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrUnknownEasing   = errors.New("unknown easing type")
	ErrUnknownParam    = errors.New("unknown parameter")
	ErrNoExpression    = errors.New("curve has no expression form")
)

// ValidationError is returned when a parameter lies outside of its declared range. The caller decides whether to reject the value or to clamp it with ParamSpec.Clamp.
type ValidationError struct {
	Spec  ParamSpec
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s=%s out of range [%s,%s]", e.Spec.Name, ftos(e.Value), ftos(e.Spec.Min), ftos(e.Spec.Max))
}

// DomainError is returned when a parameter is inside its declared range but the curve's formula is undefined for it, such as an elastic amplitude below one.
type DomainError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s=%s: %s", e.Name, ftos(e.Value), e.Reason)
}
