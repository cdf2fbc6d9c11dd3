package spring

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every parameter validation failure.
	// Use errors.As with *ParameterError to recover the offending field.
	ErrInvalidParameter = errors.New("invalid spring parameter")
	// ErrInvalidCrossSection is returned when a SectionFunc yields NaN or Inf.
	ErrInvalidCrossSection = errors.New("cross-section scale not finite")
)

// ParameterError describes a single rejected field of Parameters.
type ParameterError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g %s", ErrInvalidParameter, e.Name, e.Value, e.Reason)
}

// Unwrap makes ParameterError match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func paramErr(name string, v float64, reason string) error {
	return &ParameterError{Name: name, Value: v, Reason: reason}
}
